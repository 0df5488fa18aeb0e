package etl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestService_transform(t *testing.T) {
	service := &Service{}

	defaultHeaders := []string{"Order Date", " REGION ", "Category", "Product Name", "customer_id", "Sales"}

	tests := []struct {
		name            string
		table           *RawTable
		expectedRows    []domain.SalesRow
		expectedDropped int
		expectedIgnored []string
		wantErr         error
	}{
		{
			name: "Deve normalizar cabeçalhos e manter linhas completas",
			table: &RawTable{
				Headers: defaultHeaders,
				Rows: [][]string{
					{"05/01/2024", "EU", "A", "Widget", "C1", "100"},
					{"10/02/2024", "US", "B", "Gadget", "C2", "50.5"},
				},
			},
			expectedRows: []domain.SalesRow{
				{OrderDate: "05/01/2024", Region: "EU", Category: "A", ProductName: "Widget", CustomerID: "C1", Sales: 100},
				{OrderDate: "10/02/2024", Region: "US", Category: "B", ProductName: "Gadget", CustomerID: "C2", Sales: 50.5},
			},
			expectedDropped: 0,
		},
		{
			name: "Deve descartar linhas com campos ausentes e contar os descartes",
			table: &RawTable{
				Headers: defaultHeaders,
				Rows: [][]string{
					{"05/01/2024", "EU", "A", "Widget", "C1", "100"},
					{"06/01/2024", "", "A", "Widget", "C2", "80"},
					{"07/01/2024", "US", "B", "Gadget", "C3", "  "},
					{"08/01/2024", "US", "B", "Gadget", "C4", "40"},
				},
			},
			expectedRows: []domain.SalesRow{
				{OrderDate: "05/01/2024", Region: "EU", Category: "A", ProductName: "Widget", CustomerID: "C1", Sales: 100},
				{OrderDate: "08/01/2024", Region: "US", Category: "B", ProductName: "Gadget", CustomerID: "C4", Sales: 40},
			},
			expectedDropped: 2,
		},
		{
			name: "Deve descartar linha com valor de sales não numérico",
			table: &RawTable{
				Headers: defaultHeaders,
				Rows: [][]string{
					{"05/01/2024", "EU", "A", "Widget", "C1", "cem"},
					{"06/01/2024", "EU", "A", "Widget", "C2", "90"},
				},
			},
			expectedRows: []domain.SalesRow{
				{OrderDate: "06/01/2024", Region: "EU", Category: "A", ProductName: "Widget", CustomerID: "C2", Sales: 90},
			},
			expectedDropped: 1,
		},
		{
			name: "Deve descartar linha mais curta que o cabeçalho",
			table: &RawTable{
				Headers: defaultHeaders,
				Rows: [][]string{
					{"05/01/2024", "EU", "A"},
					{"06/01/2024", "EU", "A", "Widget", "C2", "90"},
				},
			},
			expectedRows: []domain.SalesRow{
				{OrderDate: "06/01/2024", Region: "EU", Category: "A", ProductName: "Widget", CustomerID: "C2", Sales: 90},
			},
			expectedDropped: 1,
		},
		{
			name: "Deve ignorar colunas fora do contrato sem perder as obrigatórias",
			table: &RawTable{
				Headers: []string{"order_date", "region", "category", "product_name", "customer_id", "sales", "Sales Rep"},
				Rows: [][]string{
					{"05/01/2024", "EU", "A", "Widget", "C1", "100", "Alice"},
				},
			},
			expectedRows: []domain.SalesRow{
				{OrderDate: "05/01/2024", Region: "EU", Category: "A", ProductName: "Widget", CustomerID: "C1", Sales: 100},
			},
			expectedDropped: 0,
			expectedIgnored: []string{"sales_rep"},
		},
		{
			name: "Deve rejeitar colunas que colidem após a normalização",
			table: &RawTable{
				Headers: []string{"order_date", "region", "category", "product_name", "customer_id", "Sales", " sales "},
				Rows:    [][]string{},
			},
			wantErr: ErrDuplicatedColumn,
		},
		{
			name: "Deve rejeitar arquivo sem as colunas obrigatórias",
			table: &RawTable{
				Headers: []string{"order_date", "region", "product_name", "sales"},
				Rows:    [][]string{},
			},
			wantErr: ErrMissingColumns,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, report, err := service.transform(tt.table)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, entries)
				assert.Nil(t, report)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, report)

			assert.Equal(t, tt.expectedRows, entries)
			assert.Equal(t, tt.expectedDropped, report.DroppedRows)
			assert.Equal(t, len(tt.table.Rows), report.InputRows)

			// O destino recebe exatamente as linhas de entrada menos as incompletas
			assert.Equal(t, report.InputRows-report.DroppedRows, report.SurvivorRows)
			assert.Len(t, entries, report.SurvivorRows)

			assert.Equal(t, tt.expectedIgnored, report.IgnoredColumns)
		})
	}
}

func TestNormalizeHeaders(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "Deve converter para minúsculas e trocar espaços internos por underscore",
			input:    []string{"Order Date", "Product Name"},
			expected: []string{"order_date", "product_name"},
		},
		{
			name:     "Deve remover espaços das bordas antes de trocar os internos",
			input:    []string{"  Region  ", " Customer ID "},
			expected: []string{"region", "customer_id"},
		},
		{
			name:     "Deve manter nomes já normalizados",
			input:    []string{"sales", "category"},
			expected: []string{"sales", "category"},
		},
		{
			name:     "Deve trocar cada espaço interno individualmente",
			input:    []string{"net  sales  amount"},
			expected: []string{"net__sales__amount"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeHeaders(tt.input))
		})
	}
}
