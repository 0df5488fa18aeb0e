package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// parseReportFilters interpreta os parâmetros de filtro compartilhados
// pelas rotas de métricas, gráficos e exportação. Parâmetro ausente
// significa sem filtro; presente e vazio é uma seleção explícita que não
// corresponde a nada. As duas pontas do intervalo de datas vêm juntas ou
// não vêm. Em caso de erro a resposta já foi escrita e ok é falso.
func parseReportFilters(w http.ResponseWriter, r *http.Request) (*domain.ReportFilters, bool) {
	query := r.URL.Query()

	filters := &domain.ReportFilters{}

	if query.Has("regions") {
		filters.Regions = splitListParam(query.Get("regions"))
	}

	if query.Has("categories") {
		filters.Categories = splitListParam(query.Get("categories"))
	}

	startRaw := query.Get("start_date")
	endRaw := query.Get("end_date")

	if (startRaw == "") != (endRaw == "") {
		apiErrors.WriteError(w, apiErrors.ErrIncompleteInterval, "Informe start_date e end_date juntos ou nenhum dos dois", nil)
		return nil, false
	}

	if startRaw != "" {
		startDate, err := utils.ParseDate(startRaw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida, use o formato YYYY-MM-DD", map[string]any{
				"start_date": startRaw,
			})
			return nil, false
		}

		endDate, err := utils.ParseDate(endRaw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida, use o formato YYYY-MM-DD", map[string]any{
				"end_date": endRaw,
			})
			return nil, false
		}

		if startDate.After(*endDate) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "start_date não pode ser posterior a end_date", nil)
			return nil, false
		}

		filters.StartDate = startDate
		filters.EndDate = endDate
	}

	return filters, true
}

// splitListParam separa um parâmetro de lista por vírgulas, descartando
// segmentos vazios. Sempre devolve um slice não nulo: o chamador já
// decidiu que o parâmetro está presente.
func splitListParam(raw string) []string {
	values := []string{}

	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}

	return values
}
