package cache

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// Loader carrega o conjunto completo de registros da fonte durável.
type Loader func(ctx context.Context) ([]domain.SaleRecord, error)

// DatasetCache mantém um snapshot do conjunto completo de vendas com
// expiração por TTL, evitando varrer o banco a cada interação de
// filtro. O snapshot é trocado atomicamente na renovação: um leitor
// nunca observa um estado intermediário. O conteúdo do snapshot é
// imutável por convenção — consumidores não devem alterá-lo.
type DatasetCache struct {
	mu     sync.RWMutex
	ttl    time.Duration
	loader Loader

	snapshot  []domain.SaleRecord
	fetchedAt time.Time
}

func NewDatasetCache(ttl time.Duration, loader Loader) *DatasetCache {
	return &DatasetCache{
		ttl:    ttl,
		loader: loader,
	}
}

// GetOrRefresh retorna o snapshot vigente, renovando-o primeiro caso
// o TTL tenha expirado ou nunca tenha sido carregado.
func (c *DatasetCache) GetOrRefresh(ctx context.Context) ([]domain.SaleRecord, error) {
	c.mu.RLock()
	if c.fresh() {
		snapshot := c.snapshot
		c.mu.RUnlock()
		return snapshot, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Outro chamador pode ter renovado enquanto aguardávamos o lock
	if c.fresh() {
		return c.snapshot, nil
	}

	records, err := c.loader(ctx)
	if err != nil {
		return nil, err
	}

	c.snapshot = records
	c.fetchedAt = time.Now()

	log.ForContext(ctx).WithFields(log.Fields{
		"records": len(records),
		"ttl":     c.ttl.String(),
	}).Debug("Snapshot do conjunto de vendas renovado")

	return c.snapshot, nil
}

// Invalidate força a renovação na próxima leitura.
func (c *DatasetCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchedAt = time.Time{}
}

// FetchedAt retorna o instante da última renovação bem-sucedida.
func (c *DatasetCache) FetchedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fetchedAt
}

// fresh exige mu (leitura ou escrita) pelo chamador.
func (c *DatasetCache) fresh() bool {
	return !c.fetchedAt.IsZero() && time.Since(c.fetchedAt) < c.ttl
}
