package etl

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, rawDataPath string) (*Service, *mocks.MockSalesRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)

	service := &Service{
		cfg: &config.Config{
			ETL: config.ETL{RawDataPath: rawDataPath},
		},
		salesRepo: mockSalesRepo,
	}

	return service, mockSalesRepo
}

func TestService_Run(t *testing.T) {
	validCSV := "Order Date,Region,Category,Product Name,Customer ID,Sales\n" +
		"05/01/2024,EU,A,Widget,C1,100\n" +
		"06/01/2024,EU,A,Widget,C2,texto\n" +
		"10/02/2024,US,B,Gadget,C3,50.5\n"

	expectedEntries := []domain.SalesRow{
		{OrderDate: "05/01/2024", Region: "EU", Category: "A", ProductName: "Widget", CustomerID: "C1", Sales: 100},
		{OrderDate: "10/02/2024", Region: "US", Category: "B", ProductName: "Gadget", CustomerID: "C3", Sales: 50.5},
	}

	t.Run("Deve executar as três etapas e carregar apenas as linhas válidas", func(t *testing.T) {
		path := writeTempCSV(t, validCSV)
		service, mockSalesRepo := newTestService(t, path)

		mockSalesRepo.EXPECT().
			ReplaceAll(gomock.Any(), expectedEntries).
			Return(int64(2), nil)

		report, err := service.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 3, report.ExtractedRows)
		assert.Equal(t, 1, report.DroppedRows)
		assert.Equal(t, int64(2), report.LoadedRows)
	})

	t.Run("Deve substituir a tabela inteira a cada execução com a mesma origem", func(t *testing.T) {
		path := writeTempCSV(t, validCSV)
		service, mockSalesRepo := newTestService(t, path)

		mockSalesRepo.EXPECT().
			ReplaceAll(gomock.Any(), expectedEntries).
			Return(int64(2), nil).
			Times(2)

		first, err := service.Run(context.Background())
		require.NoError(t, err)

		second, err := service.Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, first.LoadedRows, second.LoadedRows)
		assert.Equal(t, first.DroppedRows, second.DroppedRows)
	})

	t.Run("Deve abortar na extração quando o arquivo não existe", func(t *testing.T) {
		service, _ := newTestService(t, "caminho/inexistente.csv")

		report, err := service.Run(context.Background())

		assert.Nil(t, report)
		assert.ErrorIs(t, err, ErrSourceUnreadable)

		stage, ok := StageOf(err)
		require.True(t, ok)
		assert.Equal(t, StageExtract, stage)
	})

	t.Run("Deve abortar na transformação sem tocar o banco quando faltam colunas", func(t *testing.T) {
		path := writeTempCSV(t, "order_date,region\n05/01/2024,EU\n")
		service, _ := newTestService(t, path)

		report, err := service.Run(context.Background())

		assert.Nil(t, report)
		assert.ErrorIs(t, err, ErrMissingColumns)

		stage, ok := StageOf(err)
		require.True(t, ok)
		assert.Equal(t, StageTransform, stage)
	})

	t.Run("Deve marcar a etapa de carga quando o banco falha", func(t *testing.T) {
		path := writeTempCSV(t, validCSV)
		service, mockSalesRepo := newTestService(t, path)

		mockSalesRepo.EXPECT().
			ReplaceAll(gomock.Any(), expectedEntries).
			Return(int64(0), errors.New("connection refused"))

		report, err := service.Run(context.Background())

		assert.Nil(t, report)
		assert.ErrorIs(t, err, ErrLoadFailed)

		stage, ok := StageOf(err)
		require.True(t, ok)
		assert.Equal(t, StageLoad, stage)
	})
}
