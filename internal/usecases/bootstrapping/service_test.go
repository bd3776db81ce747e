package bootstrapping

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/generating"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Dataset: config.Dataset{
			Seed:      42,
			StartDate: "2026-01-01",
			Days:      5,
		},
	}
}

func TestService_Run(t *testing.T) {
	t.Run("banco vazio recebe o conjunto sintético completo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockSaleRepository(ctrl)
		mockRepo.EXPECT().EnsureSchema(gomock.Any()).Return(nil)
		mockRepo.EXPECT().IsEmpty(gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			BulkInsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, records []domain.SaleRecord) (int64, error) {
				require.NotEmpty(t, records)
				return int64(len(records)), nil
			})

		service := NewService(testConfig(), mockRepo, generating.NewGenerator(domain.DefaultCatalog()))

		inserted, err := service.Run(context.Background())
		require.NoError(t, err)
		assert.Greater(t, inserted, int64(0))
	})

	t.Run("banco populado não gera nem insere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockSaleRepository(ctrl)
		mockRepo.EXPECT().EnsureSchema(gomock.Any()).Return(nil)
		mockRepo.EXPECT().IsEmpty(gomock.Any()).Return(false, nil)

		service := NewService(testConfig(), mockRepo, generating.NewGenerator(domain.DefaultCatalog()))

		inserted, err := service.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(0), inserted)
	})

	t.Run("erro ao garantir o schema interrompe o bootstrap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockSaleRepository(ctrl)
		mockRepo.EXPECT().EnsureSchema(gomock.Any()).Return(errors.New("ddl inválido"))

		service := NewService(testConfig(), mockRepo, generating.NewGenerator(domain.DefaultCatalog()))

		_, err := service.Run(context.Background())
		assert.Error(t, err)
	})

	t.Run("data inicial inválida interrompe antes da geração", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockSaleRepository(ctrl)
		mockRepo.EXPECT().EnsureSchema(gomock.Any()).Return(nil)
		mockRepo.EXPECT().IsEmpty(gomock.Any()).Return(true, nil)

		cfg := testConfig()
		cfg.Dataset.StartDate = "01/01/2026"

		service := NewService(cfg, mockRepo, generating.NewGenerator(domain.DefaultCatalog()))

		_, err := service.Run(context.Background())
		assert.Error(t, err)
	})
}
