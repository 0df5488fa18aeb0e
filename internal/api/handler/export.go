package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// ExportSalesCSV baixa o subconjunto filtrado como filtered_sales.csv
func ExportSalesCSV(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseReportFilters(w, r)
		if !ok {
			return
		}

		file, err := service.SalesCSV(filters)
		if err != nil {
			logger.WithError(err).Error("export: failed to build CSV file")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar o arquivo CSV", nil)
			return
		}

		writeFile(w, file)
	})
}

// ExportSalesXLSX baixa o subconjunto filtrado como filtered_sales.xlsx
func ExportSalesXLSX(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseReportFilters(w, r)
		if !ok {
			return
		}

		file, err := service.SalesXLSX(filters)
		if err != nil {
			logger.WithError(err).Error("export: failed to build XLSX file")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar a planilha", nil)
			return
		}

		writeFile(w, file)
	})
}

// writeFile envia o arquivo materializado como download
func writeFile(w http.ResponseWriter, file *exporting.File) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))

	if _, err := w.Write(file.Content); err != nil {
		log.L.WithError(err).Warn("export: failed to write file to response")
	}
}
