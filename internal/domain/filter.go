package domain

import "time"

// ReportFilters representa os três controles de filtro do dashboard.
// Um slice nulo significa "sem filtro"; um slice vazio é uma seleção
// explícita que não corresponde a nenhuma linha.
type ReportFilters struct {
	Regions    []string   `json:"regions"`
	Categories []string   `json:"categories"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
}

// Matches informa se o registro passa por todos os filtros ativos. O
// intervalo de datas é inclusivo nas duas pontas; registros sem data são
// excluídos sempre que um intervalo está ativo.
func (f *ReportFilters) Matches(record *SalesRecord) bool {
	if f == nil {
		return true
	}

	if f.Regions != nil && !containsString(f.Regions, record.Region) {
		return false
	}

	if f.Categories != nil && !containsString(f.Categories, record.Category) {
		return false
	}

	if f.StartDate != nil || f.EndDate != nil {
		if record.OrderDate == nil {
			return false
		}

		if f.StartDate != nil && record.OrderDate.Before(*f.StartDate) {
			return false
		}

		if f.EndDate != nil && record.OrderDate.After(*f.EndDate) {
			return false
		}
	}

	return true
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}

	return false
}
