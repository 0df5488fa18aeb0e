package etl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// TransformReport resume a limpeza aplicada, para registro em log.
type TransformReport struct {
	InputRows      int
	DroppedRows    int
	SurvivorRows   int
	IgnoredColumns []string
}

// transform normaliza os nomes de coluna, valida o contrato de colunas e
// descarta linhas incompletas, sem tolerância configurável. Duas colunas
// que normalizam para o mesmo nome abortam a etapa em vez de uma
// sobrescrever a outra em silêncio.
func (s *Service) transform(table *RawTable) ([]domain.SalesRow, *TransformReport, error) {
	headers := normalizeHeaders(table.Headers)

	if dup := firstDuplicatedHeader(headers); dup != "" {
		return nil, nil, fmt.Errorf("%w: %q", ErrDuplicatedColumn, dup)
	}

	columnIndex := make(map[string]int, len(headers))
	for i, header := range headers {
		columnIndex[header] = i
	}

	var missing []string
	for _, column := range domain.SalesColumns {
		if _, ok := columnIndex[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	// Colunas além do contrato da tabela sales são ignoradas na carga
	var ignored []string
	required := make(map[string]bool, len(domain.SalesColumns))
	for _, column := range domain.SalesColumns {
		required[column] = true
	}
	for _, header := range headers {
		if !required[header] {
			ignored = append(ignored, header)
		}
	}

	entries := make([]domain.SalesRow, 0, len(table.Rows))
	dropped := 0

	for _, row := range table.Rows {
		entry, ok := buildSalesRow(row, columnIndex)
		if !ok {
			dropped++
			continue
		}
		entries = append(entries, entry)
	}

	report := &TransformReport{
		InputRows:      len(table.Rows),
		DroppedRows:    dropped,
		SurvivorRows:   len(entries),
		IgnoredColumns: ignored,
	}

	return entries, report, nil
}

// normalizeHeaders aplica a normalização de nomes de coluna: minúsculas,
// espaços das bordas removidos e espaços internos trocados por underscore.
func normalizeHeaders(headers []string) []string {
	normalized := make([]string, len(headers))
	for i, header := range headers {
		name := strings.ToLower(strings.TrimSpace(header))
		name = strings.ReplaceAll(name, " ", "_")
		normalized[i] = name
	}
	return normalized
}

func firstDuplicatedHeader(headers []string) string {
	seen := make(map[string]bool, len(headers))
	for _, header := range headers {
		if seen[header] {
			return header
		}
		seen[header] = true
	}
	return ""
}

// buildSalesRow monta a linha tipada a partir das colunas obrigatórias.
// Qualquer campo ausente (vazio após trim) ou um valor de sales que não é
// numérico descarta a linha inteira.
func buildSalesRow(row []string, columnIndex map[string]int) (domain.SalesRow, bool) {
	var entry domain.SalesRow

	values := make(map[string]string, len(domain.SalesColumns))
	for _, column := range domain.SalesColumns {
		idx := columnIndex[column]
		if idx >= len(row) {
			return entry, false
		}
		if strings.TrimSpace(row[idx]) == "" {
			return entry, false
		}
		values[column] = row[idx]
	}

	sales, err := strconv.ParseFloat(strings.TrimSpace(values["sales"]), 64)
	if err != nil {
		return entry, false
	}

	entry.OrderDate = values["order_date"]
	entry.Region = values["region"]
	entry.Category = values["category"]
	entry.ProductName = values["product_name"]
	entry.CustomerID = values["customer_id"]
	entry.Sales = sales

	return entry, true
}
