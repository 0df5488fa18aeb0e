package domain

import "time"

// Dataset é um snapshot imutável da tabela sales, compartilhado por todas
// as requisições do dashboard até ser invalidado ou recarregado.
type Dataset struct {
	Records  []SalesRecord
	RowCount int
	LoadedAt time.Time
}

// DatasetStatus descreve o estado atual do snapshot em cache.
type DatasetStatus struct {
	Loaded   bool       `json:"loaded"`
	RowCount int        `json:"row_count"`
	LoadedAt *time.Time `json:"loaded_at"`
}

// FilterOptions são os valores disponíveis para os controles de filtro do
// dashboard, derivados do snapshot: regiões e categorias distintas e os
// limites de data observados.
type FilterOptions struct {
	Regions    []string   `json:"regions"`
	Categories []string   `json:"categories"`
	MinDate    *time.Time `json:"min_date"`
	MaxDate    *time.Time `json:"max_date"`
	RowsLoaded int        `json:"rows_loaded"`
}
