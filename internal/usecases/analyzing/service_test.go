package analyzing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Cache:  config.Cache{TTLSeconds: 600},
		Report: config.Report{TopSales: 15},
	}
}

func TestService_SnapshotIsCachedAcrossQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSaleRepository(ctrl)

	// Uma única varredura alimenta várias consultas dentro do TTL
	mockRepo.EXPECT().
		ScanAll(gomock.Any()).
		Return(sampleRecords(), nil).
		Times(1)

	service := NewService(testConfig(), mockRepo)
	ctx := context.Background()

	summary, err := service.Summary(ctx, fullSpec())
	require.NoError(t, err)
	assert.Equal(t, 4, summary.TransactionCount)

	records, err := service.Records(ctx, fullSpec())
	require.NoError(t, err)
	assert.Len(t, records, 4)

	series, err := service.WeekdaySeries(ctx, fullSpec())
	require.NoError(t, err)
	assert.Len(t, series.Points, 7)
}

func TestService_RefreshSnapshotForcesRescan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSaleRepository(ctrl)
	mockRepo.EXPECT().
		ScanAll(gomock.Any()).
		Return(sampleRecords(), nil).
		Times(2)

	service := NewService(testConfig(), mockRepo)
	ctx := context.Background()

	_, err := service.Records(ctx, fullSpec())
	require.NoError(t, err)

	firstFetch := service.SnapshotFetchedAt()
	assert.False(t, firstFetch.IsZero())

	require.NoError(t, err)
	require.NoError(t, service.RefreshSnapshot(ctx))

	assert.False(t, service.SnapshotFetchedAt().Before(firstFetch))
}

func TestService_Dimensions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSaleRepository(ctrl)
	mockRepo.EXPECT().
		ScanAll(gomock.Any()).
		Return(sampleRecords(), nil).
		Times(1)

	service := NewService(testConfig(), mockRepo)

	dimensions, err := service.Dimensions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Norte", "Sudeste", "Sul"}, dimensions.Regions)
	assert.Equal(t, []string{"Alimentos", "Roupas"}, dimensions.Categories)
	assert.Equal(t, []string{"Bebidas", "Camiseta", "Casaco"}, dimensions.Products)

	require.NotNil(t, dimensions.MinDate)
	require.NotNil(t, dimensions.MaxDate)
	assert.Equal(t, day(2026, 1, 1), *dimensions.MinDate)
	assert.Equal(t, day(2026, 2, 10), *dimensions.MaxDate)
}

func TestService_Dimensions_EmptyDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSaleRepository(ctrl)
	mockRepo.EXPECT().
		ScanAll(gomock.Any()).
		Return(nil, nil).
		Times(1)

	service := NewService(testConfig(), mockRepo)

	dimensions, err := service.Dimensions(context.Background())
	require.NoError(t, err)

	assert.Nil(t, dimensions.MinDate)
	assert.Nil(t, dimensions.MaxDate)
	assert.Empty(t, dimensions.Regions)
}
