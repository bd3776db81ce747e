package bootstrapping

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/generating"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// Service popula um banco vazio com o conjunto sintético. A etapa é
// idempotente: o schema é garantido a cada execução e a geração só
// acontece quando a tabela está vazia.
type Service struct {
	cfg            *config.Config
	saleRepository repository.SaleRepository
	generator      *generating.Generator
}

func NewService(
	cfg *config.Config,
	saleRepo repository.SaleRepository,
	generator *generating.Generator,
) *Service {
	return &Service{
		cfg:            cfg,
		saleRepository: saleRepo,
		generator:      generator,
	}
}

// Run garante o schema e insere o conjunto sintético quando o banco
// está vazio. Retorna a quantidade de registros inseridos (zero
// quando o banco já estava populado).
func (s *Service) Run(ctx context.Context) (int64, error) {
	logger := log.ForContext(ctx)

	if err := s.saleRepository.EnsureSchema(ctx); err != nil {
		return 0, errors.Wrap(err, "erro ao garantir o schema de vendas")
	}

	empty, err := s.saleRepository.IsEmpty(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao verificar se o banco está vazio")
	}

	if !empty {
		logger.Debug("Banco de vendas já populado, bootstrap ignorado")
		return 0, nil
	}

	startDate, err := s.cfg.DatasetStart()
	if err != nil {
		return 0, errors.Wrap(err, "data inicial do conjunto sintético inválida")
	}

	records := s.generator.Generate(generating.Params{
		Seed:      s.cfg.Dataset.Seed,
		StartDate: startDate,
		Days:      s.cfg.Dataset.Days,
	})

	inserted, err := s.saleRepository.BulkInsert(ctx, records)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao inserir o conjunto sintético")
	}

	logger.WithFields(log.Fields{
		"records":    inserted,
		"seed":       s.cfg.Dataset.Seed,
		"start_date": s.cfg.Dataset.StartDate,
		"days":       s.cfg.Dataset.Days,
	}).Info("Banco de vendas populado com o conjunto sintético")

	return inserted, nil
}
