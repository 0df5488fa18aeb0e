package domain

// MetricNotAvailable é o sentinela exibido quando o subconjunto filtrado
// não permite eleger um produto ou região de destaque.
const MetricNotAvailable = "N/A"

// RegionShare é a participação percentual de uma região no total filtrado.
type RegionShare struct {
	Region  string  `json:"region"`
	Revenue float64 `json:"revenue"`
	Share   float64 `json:"share"`
}

// SalesSummary reúne as cinco métricas do dashboard sobre o subconjunto
// filtrado. AverageOrderValue é nulo quando não há linhas, nunca NaN.
type SalesSummary struct {
	RowCount          int           `json:"row_count"`
	TotalSales        float64       `json:"total_sales"`
	AverageOrderValue *float64      `json:"average_order_value"`
	UniqueCustomers   int           `json:"unique_customers"`
	TopProduct        string        `json:"top_product"`
	BestRegion        string        `json:"best_region"`
	RegionShares      []RegionShare `json:"region_shares"`
}
