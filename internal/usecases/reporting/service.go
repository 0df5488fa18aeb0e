package reporting

import (
	"maps"
	"slices"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/caching"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Títulos fixos dos gráficos e mensagem de estado vazio exibida pelo
// dashboard quando o filtro não corresponde a nenhuma linha
const (
	salesByRegionTitle = "Sales by Region"
	monthlySalesTitle  = "Monthly Sales Trend"

	emptySelectionMessage = "No data matches the selected filters."
)

// Reporter calcula as métricas, séries de gráfico e opções de filtro do
// dashboard sobre o snapshot do dataset.
type Reporter interface {
	FilterOptions() (*domain.FilterOptions, error)
	Summary(filters *domain.ReportFilters) (*domain.SalesSummary, error)
	SalesByRegion(filters *domain.ReportFilters) (*domain.ChartSeries, error)
	MonthlySales(filters *domain.ReportFilters) (*domain.ChartSeries, error)
}

// Service implementa a interface Reporter
type Service struct {
	datasetCache caching.DatasetCache
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(datasetCache caching.DatasetCache) Reporter {
	return &Service{datasetCache: datasetCache}
}

// FilterOptions deriva do snapshot os valores disponíveis para os
// controles do dashboard: regiões e categorias distintas em ordem
// alfabética e os limites das datas interpretáveis.
func (s *Service) FilterOptions() (*domain.FilterOptions, error) {
	dataset, err := s.datasetCache.Snapshot()
	if err != nil {
		return nil, err
	}

	regions := make(map[string]bool)
	categories := make(map[string]bool)

	var minDate, maxDate *time.Time

	for i := range dataset.Records {
		record := &dataset.Records[i]

		if record.Region != "" {
			regions[record.Region] = true
		}
		if record.Category != "" {
			categories[record.Category] = true
		}

		if record.OrderDate != nil {
			if minDate == nil || record.OrderDate.Before(*minDate) {
				minDate = record.OrderDate
			}
			if maxDate == nil || record.OrderDate.After(*maxDate) {
				maxDate = record.OrderDate
			}
		}
	}

	return &domain.FilterOptions{
		Regions:    slices.Sorted(maps.Keys(regions)),
		Categories: slices.Sorted(maps.Keys(categories)),
		MinDate:    minDate,
		MaxDate:    maxDate,
		RowsLoaded: dataset.RowCount,
	}, nil
}

// Summary calcula as cinco métricas do dashboard sobre o subconjunto
// filtrado. Subconjunto vazio devolve os sentinelas: média nula e "N/A"
// para produto e região de destaque.
func (s *Service) Summary(filters *domain.ReportFilters) (*domain.SalesSummary, error) {
	dataset, err := s.datasetCache.Snapshot()
	if err != nil {
		return nil, err
	}

	records := filterRecords(dataset, filters)

	summary := &domain.SalesSummary{
		RowCount:     len(records),
		TopProduct:   domain.MetricNotAvailable,
		BestRegion:   domain.MetricNotAvailable,
		RegionShares: []domain.RegionShare{},
	}

	if len(records) == 0 {
		return summary, nil
	}

	var totalSales float64

	productRevenue := make(map[string]float64)
	regionRevenue := make(map[string]float64)
	customers := make(map[string]bool)

	for i := range records {
		record := &records[i]

		totalSales += record.Sales
		productRevenue[record.ProductName] += record.Sales
		regionRevenue[record.Region] += record.Sales
		customers[record.CustomerID] = true
	}

	average := totalSales / float64(len(records))

	summary.TotalSales = totalSales
	summary.AverageOrderValue = &average
	summary.UniqueCustomers = len(customers)
	summary.TopProduct = highestRevenueKey(productRevenue)
	summary.RegionShares = buildRegionShares(regionRevenue, totalSales)

	// Com total zero não há participação definida, então não há região de destaque
	if totalSales != 0 {
		summary.BestRegion = highestRevenueKey(regionRevenue)
	}

	return summary, nil
}

// SalesByRegion agrega a receita por região, um ponto por região presente
// no subconjunto filtrado, em ordem alfabética.
func (s *Service) SalesByRegion(filters *domain.ReportFilters) (*domain.ChartSeries, error) {
	dataset, err := s.datasetCache.Snapshot()
	if err != nil {
		return nil, err
	}

	records := filterRecords(dataset, filters)

	series := &domain.ChartSeries{
		Title:  salesByRegionTitle,
		Points: []domain.ChartPoint{},
	}

	regionRevenue := make(map[string]float64)
	for i := range records {
		regionRevenue[records[i].Region] += records[i].Sales
	}

	for _, region := range slices.Sorted(maps.Keys(regionRevenue)) {
		series.Points = append(series.Points, domain.ChartPoint{
			Label: region,
			Value: regionRevenue[region],
		})
	}

	if len(series.Points) == 0 {
		series.Message = emptySelectionMessage
	}

	return series, nil
}

// MonthlySales agrega a receita por mês calendário em ordem cronológica,
// com rótulos de largura fixa YYYY-MM. Registros sem data interpretável
// ficam de fora da série.
func (s *Service) MonthlySales(filters *domain.ReportFilters) (*domain.ChartSeries, error) {
	dataset, err := s.datasetCache.Snapshot()
	if err != nil {
		return nil, err
	}

	records := filterRecords(dataset, filters)

	series := &domain.ChartSeries{
		Title:  monthlySalesTitle,
		Points: []domain.ChartPoint{},
	}

	monthRevenue := make(map[string]float64)
	for i := range records {
		if records[i].OrderDate == nil {
			continue
		}
		month := records[i].OrderDate.Format("2006-01")
		monthRevenue[month] += records[i].Sales
	}

	// Rótulos YYYY-MM ordenam cronologicamente em ordem lexicográfica
	for _, month := range slices.Sorted(maps.Keys(monthRevenue)) {
		series.Points = append(series.Points, domain.ChartPoint{
			Label: month,
			Value: monthRevenue[month],
		})
	}

	if len(series.Points) == 0 {
		series.Message = emptySelectionMessage
	}

	return series, nil
}

// filterRecords aplica os filtros ao snapshot e devolve o subconjunto que
// passa por todos eles.
func filterRecords(dataset *domain.Dataset, filters *domain.ReportFilters) []domain.SalesRecord {
	records := make([]domain.SalesRecord, 0, len(dataset.Records))

	for i := range dataset.Records {
		if filters.Matches(&dataset.Records[i]) {
			records = append(records, dataset.Records[i])
		}
	}

	return records
}

// highestRevenueKey elege a chave com a maior receita somada. Empates são
// resolvidos pelo menor nome em ordem alfabética, para que o resultado
// não dependa da ordem de iteração do mapa.
func highestRevenueKey(revenueByKey map[string]float64) string {
	best := ""
	bestRevenue := 0.0
	found := false

	for _, key := range slices.Sorted(maps.Keys(revenueByKey)) {
		if !found || revenueByKey[key] > bestRevenue {
			best = key
			bestRevenue = revenueByKey[key]
			found = true
		}
	}

	return best
}

// buildRegionShares monta a participação percentual de cada região no
// total filtrado, arredondada a duas casas, em ordem alfabética.
func buildRegionShares(regionRevenue map[string]float64, totalSales float64) []domain.RegionShare {
	shares := make([]domain.RegionShare, 0, len(regionRevenue))

	for _, region := range slices.Sorted(maps.Keys(regionRevenue)) {
		share := 0.0
		if totalSales != 0 {
			share = utils.RoundWithTwoDecimalPlace(regionRevenue[region] / totalSales * 100)
		}

		shares = append(shares, domain.RegionShare{
			Region:  region,
			Revenue: regionRevenue[region],
			Share:   share,
		})
	}

	return shares
}
