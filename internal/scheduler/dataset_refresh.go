package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/caching"
)

// ErrRefreshAlreadyRunning sinaliza que uma recarga manual foi recusada
// porque outra recarga ainda está em andamento.
var ErrRefreshAlreadyRunning = errors.New("recarga do dataset já em andamento")

// DatasetRefreshConfig representa a configuração do agendador de recarga do dataset
type DatasetRefreshConfig struct {
	CronSchedule   string
	RefreshEnabled bool
}

// DatasetRefreshService gerencia a recarga periódica do snapshot do
// dataset de vendas, com proteção contra execuções sobrepostas.
type DatasetRefreshService struct {
	scheduler    *gocron.Scheduler
	config       DatasetRefreshConfig
	datasetCache caching.DatasetCache

	refreshMutex           sync.Mutex
	refreshRunning         bool
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
	lastRefreshError       string
}

// NewDatasetRefreshService cria uma nova instância do serviço de recarga do dataset
func NewDatasetRefreshService(datasetCache caching.DatasetCache, appConfig *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule:   appConfig.DatasetRefresh.CronSchedule,
		RefreshEnabled: appConfig.DatasetRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.RefreshEnabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetRefreshService{
		scheduler:    scheduler,
		config:       refreshConfig,
		datasetCache: datasetCache,
	}
}

// Start inicia o agendador
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Recarga agendada do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		// Sobreposição já é tratada dentro de refreshDataset
		_ = s.refreshDataset()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshNow executa uma recarga manual síncrona, usada pelo endpoint de
// recarga do dataset. Devolve ErrRefreshAlreadyRunning se outra recarga
// ainda não terminou.
func (s *DatasetRefreshService) RefreshNow() error {
	logrus.Info("Iniciando recarga manual do dataset")
	return s.refreshDataset()
}

// refreshDataset recarrega o snapshot com proteção contra sobreposição.
func (s *DatasetRefreshService) refreshDataset() error {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando")
		return ErrRefreshAlreadyRunning
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	dataset, err := s.datasetCache.Refresh()

	s.refreshMutex.Lock()
	s.lastRefreshCompletedAt = time.Now()
	if err != nil {
		s.lastRefreshError = err.Error()
	} else {
		s.lastRefreshError = ""
	}
	s.refreshMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Erro ao recarregar o dataset de vendas")
		return err
	}

	logrus.WithField("row_count", dataset.RowCount).Info("Dataset de vendas recarregado")

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return map[string]any{
		"refresh_enabled":           s.config.RefreshEnabled,
		"refresh_cron":              s.config.CronSchedule,
		"refresh_running":           s.refreshRunning,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshCompletedAt,
		"last_refresh_error":        s.lastRefreshError,
	}
}
