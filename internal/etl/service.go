package etl

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Pipeline executa o ciclo completo de extração, transformação e carga.
type Pipeline interface {
	Run(ctx context.Context) (*RunReport, error)
}

// RunReport resume uma execução completa do pipeline.
type RunReport struct {
	JobID         string
	ExtractedRows int
	DroppedRows   int
	LoadedRows    int64
	Duration      time.Duration
}

type Service struct {
	cfg       *config.Config
	salesRepo repository.SalesRepository
}

func NewService(cfg *config.Config, salesRepo repository.SalesRepository) Pipeline {
	return &Service{
		cfg:       cfg,
		salesRepo: salesRepo,
	}
}

// Run executa as três etapas em sequência e aborta na primeira falha,
// devolvendo o erro marcado com a etapa de origem. A tabela de destino só
// muda se a carga inteira for bem-sucedida.
func (s *Service) Run(ctx context.Context) (*RunReport, error) {
	jobID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Não foi possível gerar o identificador do job")
	}

	logger := logrus.WithField("job_id", jobID)
	startedAt := time.Now()

	logger.WithField("raw_data_path", s.cfg.ETL.RawDataPath).Info("Iniciando pipeline de ETL")

	table, err := s.extract(s.cfg.ETL.RawDataPath)
	if err != nil {
		logger.WithError(err).Error("Extração falhou")
		return nil, NewExtractionError(err)
	}
	logger.Infof("Extraídas %d linhas de %s", len(table.Rows), s.cfg.ETL.RawDataPath)

	entries, report, err := s.transform(table)
	if err != nil {
		logger.WithError(err).Error("Transformação falhou")
		return nil, NewTransformationError(err)
	}

	if len(report.IgnoredColumns) > 0 {
		logger.Warnf(
			"Colunas fora do contrato da tabela sales ignoradas: %s",
			strings.Join(report.IgnoredColumns, ", "),
		)
	}
	logger.Infof(
		"Transformação concluída: restaram %d de %d linhas (%d descartadas)",
		report.SurvivorRows, report.InputRows, report.DroppedRows,
	)

	loaded, err := s.load(ctx, entries)
	if err != nil {
		logger.WithError(err).Error("Carga falhou")
		return nil, NewLoadError(err)
	}
	logger.Info("Dados carregados na tabela sales com sucesso")

	runReport := &RunReport{
		JobID:         jobID,
		ExtractedRows: len(table.Rows),
		DroppedRows:   report.DroppedRows,
		LoadedRows:    loaded,
		Duration:      time.Since(startedAt),
	}

	logger.WithFields(logrus.Fields{
		"extracted_rows": runReport.ExtractedRows,
		"dropped_rows":   runReport.DroppedRows,
		"loaded_rows":    runReport.LoadedRows,
		"duration_ms":    runReport.Duration.Milliseconds(),
	}).Info("Pipeline de ETL concluído")

	return runReport, nil
}
