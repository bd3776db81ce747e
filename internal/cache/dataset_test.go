package cache

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	m.Run()
}

func countingLoader(calls *int, records []domain.SaleRecord) Loader {
	return func(ctx context.Context) ([]domain.SaleRecord, error) {
		*calls++
		return records, nil
	}
}

func TestDatasetCache_LoadsOnceWithinTTL(t *testing.T) {
	records := []domain.SaleRecord{{ID: 1, Region: "Sul"}}

	var calls int
	c := NewDatasetCache(time.Minute, countingLoader(&calls, records))

	ctx := context.Background()

	first, err := c.GetOrRefresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, first)

	second, err := c.GetOrRefresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, second)

	assert.Equal(t, 1, calls)
	assert.False(t, c.FetchedAt().IsZero())
}

func TestDatasetCache_ExpiredTTLTriggersReload(t *testing.T) {
	var calls int
	c := NewDatasetCache(time.Nanosecond, countingLoader(&calls, nil))

	ctx := context.Background()

	_, err := c.GetOrRefresh(ctx)
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	_, err = c.GetOrRefresh(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestDatasetCache_InvalidateForcesReload(t *testing.T) {
	var calls int
	c := NewDatasetCache(time.Minute, countingLoader(&calls, nil))

	ctx := context.Background()

	_, err := c.GetOrRefresh(ctx)
	require.NoError(t, err)

	c.Invalidate()
	assert.True(t, c.FetchedAt().IsZero())

	_, err = c.GetOrRefresh(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestDatasetCache_LoaderErrorIsPropagated(t *testing.T) {
	c := NewDatasetCache(time.Minute, func(ctx context.Context) ([]domain.SaleRecord, error) {
		return nil, errors.New("fonte indisponível")
	})

	_, err := c.GetOrRefresh(context.Background())
	assert.Error(t, err)

	// Falha na carga não marca o snapshot como renovado
	assert.True(t, c.FetchedAt().IsZero())
}
