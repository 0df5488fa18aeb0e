package caching

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestCache(t *testing.T) (*Service, *mocks.MockSalesRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)

	return &Service{salesRepo: mockSalesRepo}, mockSalesRepo
}

func TestService_Snapshot(t *testing.T) {
	t.Run("Deve consultar o banco apenas na primeira chamada", func(t *testing.T) {
		service, mockSalesRepo := newTestCache(t)

		mockSalesRepo.EXPECT().
			ListAll().
			Return([]domain.SalesRow{
				{OrderDate: "05/01/2024", Region: "EU", Category: "A", ProductName: "Widget", CustomerID: "C1", Sales: 100},
			}, nil).
			Times(1)

		first, err := service.Snapshot()
		require.NoError(t, err)

		second, err := service.Snapshot()
		require.NoError(t, err)

		// Mesmo snapshot compartilhado, sem nova consulta
		assert.Same(t, first, second)
		assert.Equal(t, 1, first.RowCount)
	})

	t.Run("Deve interpretar datas dia-primeiro e anular as inválidas", func(t *testing.T) {
		service, mockSalesRepo := newTestCache(t)

		mockSalesRepo.EXPECT().
			ListAll().
			Return([]domain.SalesRow{
				{OrderDate: "31/01/2024", Region: "EU", Category: "A", ProductName: "Widget", CustomerID: "C1", Sales: 100},
				{OrderDate: "2024-02-10", Region: "US", Category: "B", ProductName: "Gadget", CustomerID: "C2", Sales: 50},
				{OrderDate: "sem data", Region: "US", Category: "B", ProductName: "Gadget", CustomerID: "C3", Sales: 25},
			}, nil)

		dataset, err := service.Snapshot()
		require.NoError(t, err)
		require.Len(t, dataset.Records, 3)

		// 31/01/2024 é dia-primeiro: 31 de janeiro, nunca uma data inválida
		require.NotNil(t, dataset.Records[0].OrderDate)
		assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), *dataset.Records[0].OrderDate)

		require.NotNil(t, dataset.Records[1].OrderDate)
		assert.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), *dataset.Records[1].OrderDate)

		// Texto que não é data vira nulo em vez de derrubar a carga
		assert.Nil(t, dataset.Records[2].OrderDate)
	})

	t.Run("Deve propagar o erro do banco sem popular o cache", func(t *testing.T) {
		service, mockSalesRepo := newTestCache(t)

		mockSalesRepo.EXPECT().
			ListAll().
			Return(nil, errors.New("connection refused")).
			Times(2)

		dataset, err := service.Snapshot()
		assert.Error(t, err)
		assert.Nil(t, dataset)

		// A chamada seguinte tenta o banco de novo
		dataset, err = service.Snapshot()
		assert.Error(t, err)
		assert.Nil(t, dataset)
	})
}

func TestService_Refresh(t *testing.T) {
	t.Run("Deve substituir o snapshot pelo resultado de uma nova consulta", func(t *testing.T) {
		service, mockSalesRepo := newTestCache(t)

		gomock.InOrder(
			mockSalesRepo.EXPECT().ListAll().Return([]domain.SalesRow{
				{OrderDate: "05/01/2024", Region: "EU", Category: "A", ProductName: "Widget", CustomerID: "C1", Sales: 100},
			}, nil),
			mockSalesRepo.EXPECT().ListAll().Return([]domain.SalesRow{
				{OrderDate: "05/01/2024", Region: "EU", Category: "A", ProductName: "Widget", CustomerID: "C1", Sales: 100},
				{OrderDate: "06/01/2024", Region: "US", Category: "B", ProductName: "Gadget", CustomerID: "C2", Sales: 50},
			}, nil),
		)

		first, err := service.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, 1, first.RowCount)

		refreshed, err := service.Refresh()
		require.NoError(t, err)
		assert.Equal(t, 2, refreshed.RowCount)

		// Snapshot passa a devolver o dataset recarregado
		current, err := service.Snapshot()
		require.NoError(t, err)
		assert.Same(t, refreshed, current)
	})

	t.Run("Deve manter o snapshot anterior quando a recarga falha", func(t *testing.T) {
		service, mockSalesRepo := newTestCache(t)

		gomock.InOrder(
			mockSalesRepo.EXPECT().ListAll().Return([]domain.SalesRow{
				{OrderDate: "05/01/2024", Region: "EU", Category: "A", ProductName: "Widget", CustomerID: "C1", Sales: 100},
			}, nil),
			mockSalesRepo.EXPECT().ListAll().Return(nil, errors.New("connection refused")),
		)

		first, err := service.Snapshot()
		require.NoError(t, err)

		refreshed, err := service.Refresh()
		assert.Error(t, err)
		assert.Nil(t, refreshed)

		current, err := service.Snapshot()
		require.NoError(t, err)
		assert.Same(t, first, current)
	})
}

func TestService_Invalidate(t *testing.T) {
	t.Run("Deve forçar nova consulta na próxima leitura", func(t *testing.T) {
		service, mockSalesRepo := newTestCache(t)

		mockSalesRepo.EXPECT().
			ListAll().
			Return([]domain.SalesRow{
				{OrderDate: "05/01/2024", Region: "EU", Category: "A", ProductName: "Widget", CustomerID: "C1", Sales: 100},
			}, nil).
			Times(2)

		_, err := service.Snapshot()
		require.NoError(t, err)

		service.Invalidate()

		assert.False(t, service.Status().Loaded)

		_, err = service.Snapshot()
		require.NoError(t, err)
	})
}

func TestService_Status(t *testing.T) {
	t.Run("Deve informar dataset não carregado antes da primeira leitura", func(t *testing.T) {
		service, _ := newTestCache(t)

		status := service.Status()

		assert.False(t, status.Loaded)
		assert.Zero(t, status.RowCount)
		assert.Nil(t, status.LoadedAt)
	})

	t.Run("Deve informar contagem de linhas e momento da carga", func(t *testing.T) {
		service, mockSalesRepo := newTestCache(t)

		mockSalesRepo.EXPECT().
			ListAll().
			Return([]domain.SalesRow{
				{OrderDate: "05/01/2024", Region: "EU", Category: "A", ProductName: "Widget", CustomerID: "C1", Sales: 100},
				{OrderDate: "06/01/2024", Region: "US", Category: "B", ProductName: "Gadget", CustomerID: "C2", Sales: 50},
			}, nil)

		dataset, err := service.Snapshot()
		require.NoError(t, err)

		status := service.Status()

		assert.True(t, status.Loaded)
		assert.Equal(t, 2, status.RowCount)
		require.NotNil(t, status.LoadedAt)
		assert.Equal(t, dataset.LoadedAt, *status.LoadedAt)
	})
}
