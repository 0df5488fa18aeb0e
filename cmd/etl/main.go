package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/etl"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	// Além do stdout, o pipeline escreve em um arquivo de log rotacionado
	fileWriter, err := log.NewRotatingFileWriter(cfg.ETL.LogFilePath, cfg.ETL.LogMaxSizeMB)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o arquivo de log do ETL")
	}
	defer fileWriter.Close()

	logrus.SetOutput(io.MultiWriter(os.Stdout, fileWriter))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	salesRepo := repository.NewSalesRepository(conn)
	pipeline := etl.NewService(cfg, salesRepo)

	if _, err := pipeline.Run(ctx); err != nil {
		logrus.WithError(err).Error("Pipeline de ETL terminou com erro")
		os.Exit(1)
	}
}
