package exporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/caching"
)

// Nomes de download e tipos de conteúdo fixos, independentes do filtro
const (
	csvFileName  = "filtered_sales.csv"
	xlsxFileName = "filtered_sales.xlsx"

	csvContentType  = "text/csv"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	sheetName = "Sales"
)

// File é um arquivo de exportação totalmente materializado em memória.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// Exporter materializa o subconjunto filtrado como arquivo para download.
type Exporter interface {
	SalesCSV(filters *domain.ReportFilters) (*File, error)
	SalesXLSX(filters *domain.ReportFilters) (*File, error)
}

// Service implementa a interface Exporter
type Service struct {
	datasetCache caching.DatasetCache
}

// NewService cria uma nova instância do serviço de exportação
func NewService(datasetCache caching.DatasetCache) Exporter {
	return &Service{datasetCache: datasetCache}
}

// SalesCSV exporta o subconjunto filtrado como CSV: linha de cabeçalho com
// os seis nomes de coluna normalizados e todas as linhas, sem limite.
// Datas saem como YYYY-MM-DD, vazias quando nulas.
func (s *Service) SalesCSV(filters *domain.ReportFilters) (*File, error) {
	records, err := s.filteredRecords(filters)
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	if err := writer.Write(domain.SalesColumns); err != nil {
		return nil, fmt.Errorf("erro ao escrever o cabeçalho do CSV: %w", err)
	}

	for i := range records {
		record := &records[i]

		row := []string{
			formatOrderDate(record.OrderDate),
			record.Region,
			record.Category,
			record.ProductName,
			record.CustomerID,
			strconv.FormatFloat(record.Sales, 'f', -1, 64),
		}

		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("erro ao escrever linha do CSV: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("erro ao finalizar o CSV: %w", err)
	}

	return &File{
		Name:        csvFileName,
		ContentType: csvContentType,
		Content:     buffer.Bytes(),
	}, nil
}

// SalesXLSX exporta o subconjunto filtrado como planilha de aba única
// chamada Sales, mesma ordem de colunas do CSV, sem formatação.
func (s *Service) SalesXLSX(filters *domain.ReportFilters) (*File, error) {
	records, err := s.filteredRecords(filters)
	if err != nil {
		return nil, err
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := workbook.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("erro ao nomear a aba da planilha: %w", err)
	}

	header := make([]interface{}, len(domain.SalesColumns))
	for i, column := range domain.SalesColumns {
		header[i] = column
	}

	if err := workbook.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("erro ao escrever o cabeçalho da planilha: %w", err)
	}

	for i := range records {
		record := &records[i]

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("erro ao calcular a célula da linha: %w", err)
		}

		row := []interface{}{
			formatOrderDate(record.OrderDate),
			record.Region,
			record.Category,
			record.ProductName,
			record.CustomerID,
			record.Sales,
		}

		if err := workbook.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("erro ao escrever linha da planilha: %w", err)
		}
	}

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a planilha: %w", err)
	}

	return &File{
		Name:        xlsxFileName,
		ContentType: xlsxContentType,
		Content:     buffer.Bytes(),
	}, nil
}

// filteredRecords aplica os filtros sobre o snapshot em cache.
func (s *Service) filteredRecords(filters *domain.ReportFilters) ([]domain.SalesRecord, error) {
	dataset, err := s.datasetCache.Snapshot()
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0, len(dataset.Records))
	for i := range dataset.Records {
		if filters.Matches(&dataset.Records[i]) {
			records = append(records, dataset.Records[i])
		}
	}

	return records, nil
}

// formatOrderDate serializa a data do pedido para exportação: YYYY-MM-DD,
// vazia quando a linha não tem data interpretável.
func formatOrderDate(orderDate *time.Time) string {
	if orderDate == nil {
		return ""
	}

	return orderDate.Format("2006-01-02")
}
