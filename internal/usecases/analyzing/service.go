package analyzing

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/cache"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Service implementa Analyzer sobre o repositório de vendas, com o
// snapshot completo mantido pelo DatasetCache.
type Service struct {
	saleRepository repository.SaleRepository
	datasetCache   *cache.DatasetCache
}

func NewService(cfg *config.Config, saleRepo repository.SaleRepository) Analyzer {
	service := &Service{
		saleRepository: saleRepo,
	}

	service.datasetCache = cache.NewDatasetCache(cfg.CacheTTL(), func(ctx context.Context) ([]domain.SaleRecord, error) {
		return saleRepo.ScanAll(ctx)
	})

	return service
}

func (s *Service) Dimensions(ctx context.Context) (*domain.Dimensions, error) {
	records, err := s.datasetCache.GetOrRefresh(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar snapshot de vendas")
	}

	dimensions := &domain.Dimensions{
		Regions:    distinctSorted(records, func(r domain.SaleRecord) string { return r.Region }),
		Categories: distinctSorted(records, func(r domain.SaleRecord) string { return r.Category }),
		Products:   distinctSorted(records, func(r domain.SaleRecord) string { return r.Product }),
	}

	for i := range records {
		date := records[i].Date
		if dimensions.MinDate == nil || date.Before(*dimensions.MinDate) {
			minDate := date
			dimensions.MinDate = &minDate
		}
		if dimensions.MaxDate == nil || date.After(*dimensions.MaxDate) {
			maxDate := date
			dimensions.MaxDate = &maxDate
		}
	}

	return dimensions, nil
}

func (s *Service) Summary(ctx context.Context, spec domain.FilterSpec) (*domain.KpiSummary, error) {
	filtered, err := s.Records(ctx, spec)
	if err != nil {
		return nil, err
	}

	summary := Summarize(filtered)
	return &summary, nil
}

func (s *Service) Records(ctx context.Context, spec domain.FilterSpec) ([]domain.SaleRecord, error) {
	records, err := s.datasetCache.GetOrRefresh(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar snapshot de vendas")
	}

	return Filter(records, spec), nil
}

func (s *Service) TopRecords(ctx context.Context, spec domain.FilterSpec, k int) ([]domain.SaleRecord, error) {
	filtered, err := s.Records(ctx, spec)
	if err != nil {
		return nil, err
	}

	return TopByRevenue(filtered, k), nil
}

func (s *Service) DailySeries(ctx context.Context, spec domain.FilterSpec) (*domain.GroupedSeries, error) {
	return s.series(ctx, spec, DailyRevenue)
}

func (s *Service) CategorySeries(ctx context.Context, spec domain.FilterSpec) (*domain.GroupedSeries, error) {
	return s.series(ctx, spec, CategoryMix)
}

func (s *Service) RegionSeries(ctx context.Context, spec domain.FilterSpec) (*domain.GroupedSeries, error) {
	return s.series(ctx, spec, RegionalRevenue)
}

func (s *Service) WeekdaySeries(ctx context.Context, spec domain.FilterSpec) (*domain.GroupedSeries, error) {
	return s.series(ctx, spec, WeekdayAverage)
}

func (s *Service) RefreshSnapshot(ctx context.Context) error {
	s.datasetCache.Invalidate()

	if _, err := s.datasetCache.GetOrRefresh(ctx); err != nil {
		return errors.Wrap(err, "erro ao recarregar snapshot de vendas")
	}

	return nil
}

func (s *Service) SnapshotFetchedAt() time.Time {
	return s.datasetCache.FetchedAt()
}

func (s *Service) series(
	ctx context.Context,
	spec domain.FilterSpec,
	aggregate func([]domain.SaleRecord) domain.GroupedSeries,
) (*domain.GroupedSeries, error) {
	filtered, err := s.Records(ctx, spec)
	if err != nil {
		return nil, err
	}

	series := aggregate(filtered)
	return &series, nil
}

func distinctSorted(records []domain.SaleRecord, key func(domain.SaleRecord) string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)

	for _, record := range records {
		value := key(record)
		if !seen[value] {
			seen[value] = true
			values = append(values, value)
		}
	}

	sort.Strings(values)
	return values
}
