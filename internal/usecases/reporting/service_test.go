package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/caching/mocks"
	"go.uber.org/mock/gomock"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &date
}

// Dataset de referência: duas regiões, duas categorias, um registro sem
// data interpretável.
func testDataset() *domain.Dataset {
	return &domain.Dataset{
		Records: []domain.SalesRecord{
			{OrderDate: datePtr(2024, time.January, 5), Region: "EU", Category: "A", ProductName: "Widget", CustomerID: "C1", Sales: 100},
			{OrderDate: datePtr(2024, time.January, 20), Region: "EU", Category: "B", ProductName: "Gadget", CustomerID: "C2", Sales: 50},
			{OrderDate: datePtr(2024, time.February, 10), Region: "US", Category: "A", ProductName: "Widget", CustomerID: "C1", Sales: 75},
			{OrderDate: nil, Region: "US", Category: "B", ProductName: "Doohickey", CustomerID: "C3", Sales: 25},
		},
		RowCount: 4,
		LoadedAt: time.Date(2024, time.March, 1, 6, 0, 0, 0, time.UTC),
	}
}

func newTestReporter(t *testing.T, dataset *domain.Dataset) *Service {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockCache := mocks.NewMockDatasetCache(ctrl)
	mockCache.EXPECT().Snapshot().Return(dataset, nil).AnyTimes()

	return &Service{datasetCache: mockCache}
}

func TestService_Summary(t *testing.T) {
	t.Run("Deve calcular as cinco métricas sobre o dataset inteiro", func(t *testing.T) {
		service := newTestReporter(t, testDataset())

		summary, err := service.Summary(nil)

		require.NoError(t, err)
		assert.Equal(t, 4, summary.RowCount)
		assert.Equal(t, 250.0, summary.TotalSales)
		require.NotNil(t, summary.AverageOrderValue)
		assert.Equal(t, 62.5, *summary.AverageOrderValue)
		assert.Equal(t, 3, summary.UniqueCustomers)
		assert.Equal(t, "Widget", summary.TopProduct)
		assert.Equal(t, "EU", summary.BestRegion)
		assert.Equal(t, []domain.RegionShare{
			{Region: "EU", Revenue: 150, Share: 60},
			{Region: "US", Revenue: 100, Share: 40},
		}, summary.RegionShares)
	})

	t.Run("Deve excluir registros sem data quando o intervalo está ativo", func(t *testing.T) {
		service := newTestReporter(t, testDataset())

		summary, err := service.Summary(&domain.ReportFilters{
			StartDate: datePtr(2024, time.January, 1),
			EndDate:   datePtr(2024, time.February, 28),
		})

		require.NoError(t, err)
		assert.Equal(t, 3, summary.RowCount)
		assert.Equal(t, 225.0, summary.TotalSales)
		assert.Equal(t, "EU", summary.BestRegion)
		assert.Equal(t, []domain.RegionShare{
			{Region: "EU", Revenue: 150, Share: 66.67},
			{Region: "US", Revenue: 75, Share: 33.33},
		}, summary.RegionShares)
	})

	t.Run("Deve tratar o intervalo de datas como inclusivo nas duas pontas", func(t *testing.T) {
		service := newTestReporter(t, testDataset())

		summary, err := service.Summary(&domain.ReportFilters{
			StartDate: datePtr(2024, time.January, 20),
			EndDate:   datePtr(2024, time.January, 20),
		})

		require.NoError(t, err)
		assert.Equal(t, 1, summary.RowCount)
		assert.Equal(t, 50.0, summary.TotalSales)
		assert.Equal(t, "Gadget", summary.TopProduct)
	})

	t.Run("Deve combinar filtros de região, categoria e intervalo", func(t *testing.T) {
		service := newTestReporter(t, &domain.Dataset{
			Records: []domain.SalesRecord{
				{OrderDate: datePtr(2024, time.January, 5), Region: "EU", Category: "A", ProductName: "Widget", CustomerID: "C1", Sales: 100},
				{OrderDate: datePtr(2024, time.February, 10), Region: "US", Category: "B", ProductName: "Gadget", CustomerID: "C2", Sales: 50},
			},
			RowCount: 2,
		})

		summary, err := service.Summary(&domain.ReportFilters{
			Regions:    []string{"EU", "US"},
			Categories: []string{"A", "B"},
			StartDate:  datePtr(2024, time.January, 1),
			EndDate:    datePtr(2024, time.December, 31),
		})

		require.NoError(t, err)
		assert.Equal(t, 2, summary.RowCount)
		assert.Equal(t, 150.0, summary.TotalSales)
		require.NotNil(t, summary.AverageOrderValue)
		assert.Equal(t, 75.0, *summary.AverageOrderValue)
		assert.Equal(t, 2, summary.UniqueCustomers)
		assert.Equal(t, "Widget", summary.TopProduct)
		assert.Equal(t, "EU", summary.BestRegion)
		assert.Equal(t, []domain.RegionShare{
			{Region: "EU", Revenue: 100, Share: 66.67},
			{Region: "US", Revenue: 50, Share: 33.33},
		}, summary.RegionShares)
	})

	t.Run("Deve devolver os sentinelas com uma seleção explícita vazia", func(t *testing.T) {
		service := newTestReporter(t, testDataset())

		summary, err := service.Summary(&domain.ReportFilters{Regions: []string{}})

		require.NoError(t, err)
		assert.Equal(t, 0, summary.RowCount)
		assert.Equal(t, 0.0, summary.TotalSales)
		assert.Nil(t, summary.AverageOrderValue)
		assert.Equal(t, 0, summary.UniqueCustomers)
		assert.Equal(t, domain.MetricNotAvailable, summary.TopProduct)
		assert.Equal(t, domain.MetricNotAvailable, summary.BestRegion)
		assert.Empty(t, summary.RegionShares)
	})

	t.Run("Deve desempatar produto e região pelo menor nome alfabético", func(t *testing.T) {
		service := newTestReporter(t, &domain.Dataset{
			Records: []domain.SalesRecord{
				{OrderDate: datePtr(2024, time.January, 5), Region: "South", Category: "A", ProductName: "Widget", CustomerID: "C1", Sales: 100},
				{OrderDate: datePtr(2024, time.January, 6), Region: "North", Category: "A", ProductName: "Gadget", CustomerID: "C2", Sales: 100},
			},
			RowCount: 2,
		})

		summary, err := service.Summary(nil)

		require.NoError(t, err)
		assert.Equal(t, "Gadget", summary.TopProduct)
		assert.Equal(t, "North", summary.BestRegion)
	})

	t.Run("Deve recompor o total a partir das participações por região", func(t *testing.T) {
		service := newTestReporter(t, testDataset())

		summary, err := service.Summary(nil)
		require.NoError(t, err)

		recomposed := 0.0
		for _, share := range summary.RegionShares {
			recomposed += share.Share * summary.TotalSales / 100
		}

		assert.InDelta(t, summary.TotalSales, recomposed, 0.05)
	})

	t.Run("Deve propagar a falha do cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		mockCache := mocks.NewMockDatasetCache(ctrl)
		mockCache.EXPECT().Snapshot().Return(nil, errors.New("connection refused"))

		service := &Service{datasetCache: mockCache}

		summary, err := service.Summary(nil)

		assert.Error(t, err)
		assert.Nil(t, summary)
	})
}

func TestService_SalesByRegion(t *testing.T) {
	t.Run("Deve agregar a receita por região em ordem alfabética", func(t *testing.T) {
		service := newTestReporter(t, testDataset())

		series, err := service.SalesByRegion(nil)

		require.NoError(t, err)
		assert.Equal(t, "Sales by Region", series.Title)
		assert.Empty(t, series.Message)
		assert.Equal(t, []domain.ChartPoint{
			{Label: "EU", Value: 150},
			{Label: "US", Value: 100},
		}, series.Points)
	})

	t.Run("Deve respeitar o filtro de categoria", func(t *testing.T) {
		service := newTestReporter(t, testDataset())

		series, err := service.SalesByRegion(&domain.ReportFilters{Categories: []string{"A"}})

		require.NoError(t, err)
		assert.Equal(t, []domain.ChartPoint{
			{Label: "EU", Value: 100},
			{Label: "US", Value: 75},
		}, series.Points)
	})

	t.Run("Deve devolver série vazia com mensagem quando nada passa pelo filtro", func(t *testing.T) {
		service := newTestReporter(t, testDataset())

		series, err := service.SalesByRegion(&domain.ReportFilters{Regions: []string{}})

		require.NoError(t, err)
		assert.Empty(t, series.Points)
		assert.Equal(t, "No data matches the selected filters.", series.Message)
	})
}

func TestService_MonthlySales(t *testing.T) {
	t.Run("Deve agregar por mês calendário em ordem cronológica", func(t *testing.T) {
		service := newTestReporter(t, testDataset())

		series, err := service.MonthlySales(nil)

		require.NoError(t, err)
		assert.Equal(t, "Monthly Sales Trend", series.Title)
		assert.Equal(t, []domain.ChartPoint{
			{Label: "2024-01", Value: 150},
			{Label: "2024-02", Value: 75},
		}, series.Points)
	})

	t.Run("Deve ordenar meses de anos diferentes cronologicamente", func(t *testing.T) {
		service := newTestReporter(t, &domain.Dataset{
			Records: []domain.SalesRecord{
				{OrderDate: datePtr(2024, time.February, 1), Region: "EU", Category: "A", ProductName: "Widget", CustomerID: "C1", Sales: 10},
				{OrderDate: datePtr(2023, time.December, 1), Region: "EU", Category: "A", ProductName: "Widget", CustomerID: "C1", Sales: 20},
				{OrderDate: datePtr(2024, time.January, 1), Region: "EU", Category: "A", ProductName: "Widget", CustomerID: "C1", Sales: 30},
			},
			RowCount: 3,
		})

		series, err := service.MonthlySales(nil)

		require.NoError(t, err)
		assert.Equal(t, []domain.ChartPoint{
			{Label: "2023-12", Value: 20},
			{Label: "2024-01", Value: 30},
			{Label: "2024-02", Value: 10},
		}, series.Points)
	})

	t.Run("Deve devolver mensagem quando só restam registros sem data", func(t *testing.T) {
		service := newTestReporter(t, testDataset())

		series, err := service.MonthlySales(&domain.ReportFilters{
			Regions:    []string{"US"},
			Categories: []string{"B"},
		})

		require.NoError(t, err)
		assert.Empty(t, series.Points)
		assert.Equal(t, "No data matches the selected filters.", series.Message)
	})
}

func TestService_FilterOptions(t *testing.T) {
	t.Run("Deve listar valores distintos ordenados e os limites de data", func(t *testing.T) {
		service := newTestReporter(t, testDataset())

		options, err := service.FilterOptions()

		require.NoError(t, err)
		assert.Equal(t, []string{"EU", "US"}, options.Regions)
		assert.Equal(t, []string{"A", "B"}, options.Categories)
		require.NotNil(t, options.MinDate)
		require.NotNil(t, options.MaxDate)
		assert.Equal(t, *datePtr(2024, time.January, 5), *options.MinDate)
		assert.Equal(t, *datePtr(2024, time.February, 10), *options.MaxDate)
		assert.Equal(t, 4, options.RowsLoaded)
	})

	t.Run("Deve devolver listas vazias e datas nulas com o dataset vazio", func(t *testing.T) {
		service := newTestReporter(t, &domain.Dataset{Records: []domain.SalesRecord{}})

		options, err := service.FilterOptions()

		require.NoError(t, err)
		assert.Empty(t, options.Regions)
		assert.Empty(t, options.Categories)
		assert.Nil(t, options.MinDate)
		assert.Nil(t, options.MaxDate)
		assert.Zero(t, options.RowsLoaded)
	})
}
