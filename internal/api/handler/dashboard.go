package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetFilterOptions devolve os valores disponíveis para os controles de
// filtro do dashboard
func GetFilterOptions(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		options, err := service.FilterOptions()
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to load filter options")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar as opções de filtro", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(options); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode filter options")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetSummary calcula as métricas do dashboard sobre o subconjunto filtrado
func GetSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseReportFilters(w, r)
		if !ok {
			return
		}

		summary, err := service.Summary(filters)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to compute summary")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular as métricas", nil)
			return
		}

		logger.WithField("row_count", summary.RowCount).Debug("dashboard: summary computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode summary")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetSalesByRegion devolve a série de receita agregada por região
func GetSalesByRegion(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseReportFilters(w, r)
		if !ok {
			return
		}

		series, err := service.SalesByRegion(filters)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to build sales by region chart")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o gráfico de vendas por região", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(series); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode sales by region chart")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetMonthlySales devolve a série de receita agregada por mês calendário
func GetMonthlySales(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseReportFilters(w, r)
		if !ok {
			return
		}

		series, err := service.MonthlySales(filters)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to build monthly sales chart")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o gráfico de vendas mensais", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(series); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode monthly sales chart")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
