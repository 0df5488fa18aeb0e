package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

func parseFiltersForTest(t *testing.T, target string) (*domain.ReportFilters, bool, *httptest.ResponseRecorder) {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)

	filters, ok := parseReportFilters(rec, req)

	return filters, ok, rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))

	return apiErr
}

func TestParseReportFilters(t *testing.T) {
	t.Run("sem parâmetros devolve filtros vazios", func(t *testing.T) {
		filters, ok, _ := parseFiltersForTest(t, "/v1/dashboard/summary")

		require.True(t, ok)
		assert.Nil(t, filters.Regions)
		assert.Nil(t, filters.Categories)
		assert.Nil(t, filters.StartDate)
		assert.Nil(t, filters.EndDate)
	})

	t.Run("parâmetro de lista presente e vazio é uma seleção explícita vazia", func(t *testing.T) {
		filters, ok, _ := parseFiltersForTest(t, "/v1/dashboard/summary?regions=")

		require.True(t, ok)
		require.NotNil(t, filters.Regions)
		assert.Empty(t, filters.Regions)
		assert.Nil(t, filters.Categories)
	})

	t.Run("listas separadas por vírgula são normalizadas", func(t *testing.T) {
		filters, ok, _ := parseFiltersForTest(t, "/v1/dashboard/summary?regions=EU,+US+,,&categories=Office+Supplies")

		require.True(t, ok)
		assert.Equal(t, []string{"EU", "US"}, filters.Regions)
		assert.Equal(t, []string{"Office Supplies"}, filters.Categories)
	})

	t.Run("intervalo válido é interpretado com as duas pontas", func(t *testing.T) {
		filters, ok, _ := parseFiltersForTest(t, "/v1/dashboard/summary?start_date=2024-01-01&end_date=2024-01-31")

		require.True(t, ok)
		require.NotNil(t, filters.StartDate)
		require.NotNil(t, filters.EndDate)
		assert.True(t, filters.StartDate.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
		assert.True(t, filters.EndDate.Equal(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)))
	})

	testCases := []struct {
		name     string
		target   string
		wantCode string
	}{
		{
			name:     "apenas start_date é rejeitada",
			target:   "/v1/dashboard/summary?start_date=2024-01-01",
			wantCode: apiErrors.ErrIncompleteInterval,
		},
		{
			name:     "apenas end_date é rejeitada",
			target:   "/v1/dashboard/summary?end_date=2024-01-31",
			wantCode: apiErrors.ErrIncompleteInterval,
		},
		{
			name:     "start_date em formato inválido é rejeitada",
			target:   "/v1/dashboard/summary?start_date=01/02/2024&end_date=2024-02-01",
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:     "end_date em formato inválido é rejeitada",
			target:   "/v1/dashboard/summary?start_date=2024-02-01&end_date=amanhã",
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:     "start_date posterior a end_date é rejeitada",
			target:   "/v1/dashboard/summary?start_date=2024-02-01&end_date=2024-01-01",
			wantCode: apiErrors.ErrInvalidRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			filters, ok, rec := parseFiltersForTest(t, tc.target)

			require.False(t, ok)
			assert.Nil(t, filters)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			apiErr := decodeAPIError(t, rec)
			assert.Equal(t, tc.wantCode, apiErr.Code)
		})
	}
}

func TestSplitListParam(t *testing.T) {
	assert.Equal(t, []string{"EU", "US"}, splitListParam("EU , US"))
	assert.Equal(t, []string{"Furniture"}, splitListParam(",Furniture,"))
	assert.Empty(t, splitListParam(""))
	assert.NotNil(t, splitListParam(""))
}
