package caching

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// DatasetCache mantém em memória um snapshot da tabela sales, carregado
// uma única vez e compartilhado por todas as requisições do dashboard. O
// snapshot só muda por Refresh ou Invalidate; o ETL escrever no banco não
// o atualiza sozinho.
type DatasetCache interface {
	Snapshot() (*domain.Dataset, error)
	Refresh() (*domain.Dataset, error)
	Invalidate()
	Status() domain.DatasetStatus
}

// Service implementa a interface DatasetCache
type Service struct {
	salesRepo repository.SalesRepository

	mu      sync.RWMutex
	dataset *domain.Dataset
}

// NewService cria uma nova instância do cache de dataset
func NewService(salesRepo repository.SalesRepository) DatasetCache {
	return &Service{salesRepo: salesRepo}
}

// Snapshot devolve o snapshot em cache, carregando-o do banco na primeira
// chamada. Chamadas concorrentes durante a primeira carga aguardam a mesma
// consulta em vez de disparar consultas paralelas. O dataset devolvido é
// compartilhado: quem o recebe não deve modificá-lo.
func (s *Service) Snapshot() (*domain.Dataset, error) {
	s.mu.RLock()
	dataset := s.dataset
	s.mu.RUnlock()

	if dataset != nil {
		return dataset, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Outra goroutine pode ter carregado enquanto aguardávamos o lock
	if s.dataset != nil {
		return s.dataset, nil
	}

	dataset, err := s.loadDataset()
	if err != nil {
		return nil, err
	}

	s.dataset = dataset

	return dataset, nil
}

// Refresh recarrega o dataset do banco e substitui o snapshot atual de
// forma atômica. Se a consulta falhar, o snapshot anterior é mantido.
func (s *Service) Refresh() (*domain.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dataset, err := s.loadDataset()
	if err != nil {
		return nil, err
	}

	s.dataset = dataset

	return dataset, nil
}

// Invalidate descarta o snapshot atual; a próxima chamada a Snapshot
// recarrega o dataset do banco.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dataset = nil

	logrus.Info("Snapshot do dataset de vendas invalidado")
}

// Status descreve o estado atual do cache sem disparar uma carga.
func (s *Service) Status() domain.DatasetStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.dataset == nil {
		return domain.DatasetStatus{}
	}

	loadedAt := s.dataset.LoadedAt

	return domain.DatasetStatus{
		Loaded:   true,
		RowCount: s.dataset.RowCount,
		LoadedAt: &loadedAt,
	}
}

// loadDataset consulta a tabela sales inteira e interpreta as datas de
// pedido no formato dia-primeiro. Datas que não podem ser interpretadas
// ficam nulas em vez de derrubar a carga. Chamador deve deter o lock de
// escrita.
func (s *Service) loadDataset() (*domain.Dataset, error) {
	rows, err := s.salesRepo.ListAll()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar a tabela sales para o cache")
		return nil, err
	}

	records := make([]domain.SalesRecord, 0, len(rows))
	unparsedDates := 0

	for _, row := range rows {
		record := domain.SalesRecord{
			Region:      row.Region,
			Category:    row.Category,
			ProductName: row.ProductName,
			CustomerID:  row.CustomerID,
			Sales:       row.Sales,
		}

		orderDate, err := utils.ParseDayFirstDate(row.OrderDate)
		if err != nil {
			unparsedDates++
		} else {
			record.OrderDate = orderDate
		}

		records = append(records, record)
	}

	if unparsedDates > 0 {
		logrus.Warnf("%d datas de pedido não puderam ser interpretadas e ficaram nulas", unparsedDates)
	}

	dataset := &domain.Dataset{
		Records:  records,
		RowCount: len(records),
		LoadedAt: time.Now(),
	}

	logrus.WithField("row_count", dataset.RowCount).Info("Dataset de vendas carregado em memória")

	return dataset, nil
}
