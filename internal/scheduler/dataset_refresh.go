// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
)

type DatasetRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// RefreshStatus descreve o estado atual do agendador para a rota de
// status dos cron jobs.
type RefreshStatus struct {
	Enabled           bool       `json:"enabled"`
	CronSchedule      string     `json:"cron_schedule"`
	Running           bool       `json:"running"`
	LastStartedAt     *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt   *time.Time `json:"last_completed_at,omitempty"`
	SnapshotFetchedAt *time.Time `json:"snapshot_fetched_at,omitempty"`
}

// DatasetRefreshService reaquece periodicamente o snapshot do
// conjunto de vendas, para que as consultas interativas nunca paguem
// o custo da varredura completa do banco.
type DatasetRefreshService struct {
	scheduler *gocron.Scheduler
	analyzer  analyzing.Analyzer
	config    DatasetRefreshConfig

	refreshRunning     bool
	refreshMutex       sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

func NewDatasetRefreshService(
	analyzer analyzing.Analyzer,
	cfg *config.Config,
) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: cfg.DatasetRefresh.CronSchedule,
		Enabled:      cfg.DatasetRefresh.Enabled, // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador de reaquecimento do snapshot carregada")

	return &DatasetRefreshService{
		scheduler: scheduler,
		analyzer:  analyzer,
		config:    refreshConfig,
	}
}

func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de reaquecimento do snapshot desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de reaquecimento do snapshot")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunNow(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no reaquecimento do snapshot")
		}
	})
	if err != nil {
		return errors.Wrap(err, "erro ao agendar reaquecimento do snapshot")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de reaquecimento do snapshot")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa um reaquecimento imediato. Execuções concorrentes
// são descartadas.
func (s *DatasetRefreshService) RunNow(ctx context.Context) error {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Warn("Reaquecimento do snapshot já está em execução")
		return nil
	}
	s.refreshRunning = true
	s.lastRunStartedAt = time.Now()
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.lastRunCompletedAt = time.Now()
		s.refreshMutex.Unlock()
	}()

	logrus.Info("Iniciando reaquecimento do snapshot de vendas")

	if err := s.analyzer.RefreshSnapshot(ctx); err != nil {
		return err
	}

	logrus.Info("Reaquecimento do snapshot concluído")
	return nil
}

func (s *DatasetRefreshService) Status() RefreshStatus {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	status := RefreshStatus{
		Enabled:      s.config.Enabled,
		CronSchedule: s.config.CronSchedule,
		Running:      s.refreshRunning,
	}

	if !s.lastRunStartedAt.IsZero() {
		startedAt := s.lastRunStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastRunCompletedAt.IsZero() {
		completedAt := s.lastRunCompletedAt
		status.LastCompletedAt = &completedAt
	}
	if fetchedAt := s.analyzer.SnapshotFetchedAt(); !fetchedAt.IsZero() {
		status.SnapshotFetchedAt = &fetchedAt
	}

	return status
}
