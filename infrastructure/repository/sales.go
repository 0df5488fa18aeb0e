package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const salesTable = "sales"

// O esquema espelha os tipos de campo de domain.SalesRow: texto para as
// colunas categóricas e a data original, numérico apenas para sales.
const (
	dropSalesTableSQL   = "DROP TABLE IF EXISTS sales"
	createSalesTableSQL = `
		CREATE TABLE sales (
			order_date   TEXT,
			region       TEXT,
			category     TEXT,
			product_name TEXT,
			customer_id  TEXT,
			sales        DOUBLE PRECISION
		)`
)

type SalesRepository interface {
	ListAll() ([]domain.SalesRow, error)
	ReplaceAll(ctx context.Context, entries []domain.SalesRow) (int64, error)
}

type salesRepository struct {
	conn *postgres.Connection
}

func NewSalesRepository(conn *postgres.Connection) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

func (r *salesRepository) ListAll() ([]domain.SalesRow, error) {
	query, args, err := squirrel.
		Select("order_date", "region", "category", "product_name", "customer_id", "sales").
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.SalesRow, 0)
	for rows.Next() {
		entry, err := r.scanSalesRow(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de vendas: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

// ReplaceAll substitui todo o conteúdo da tabela sales pelo conjunto
// recebido: drop, create e COPY em uma única transação, para que leitores
// nunca observem a tabela pela metade.
func (r *salesRepository) ReplaceAll(ctx context.Context, entries []domain.SalesRow) (int64, error) {
	var written int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.Exec(dropSalesTableSQL); err != nil {
			return fmt.Errorf("erro ao descartar a tabela sales: %w", err)
		}

		if _, err := tx.Exec(createSalesTableSQL); err != nil {
			return fmt.Errorf("erro ao recriar a tabela sales: %w", err)
		}

		stmt, err := tx.Prepare(pq.CopyIn(salesTable, domain.SalesColumns...))
		if err != nil {
			return fmt.Errorf("erro ao preparar o COPY: %w", err)
		}

		for _, entry := range entries {
			_, err := stmt.Exec(
				entry.OrderDate,
				entry.Region,
				entry.Category,
				entry.ProductName,
				entry.CustomerID,
				entry.Sales,
			)
			if err != nil {
				_ = stmt.Close()
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao enviar linha para o COPY: %w", err)
			}
		}

		if _, err := stmt.Exec(); err != nil {
			_ = stmt.Close()
			return fmt.Errorf("erro ao concluir o COPY: %w", err)
		}

		if err := stmt.Close(); err != nil {
			return fmt.Errorf("erro ao finalizar o COPY: %w", err)
		}

		written = int64(len(entries))
		return nil
	})
	if err != nil {
		return 0, err
	}

	return written, nil
}

func (r *salesRepository) scanSalesRow(rows *sql.Rows) (domain.SalesRow, error) {
	var entry domain.SalesRow
	var orderDate, region, category, productName, customerID sql.NullString
	var sales sql.NullFloat64

	err := rows.Scan(
		&orderDate,
		&region,
		&category,
		&productName,
		&customerID,
		&sales,
	)
	if err != nil {
		return entry, err
	}

	entry.OrderDate = orderDate.String
	entry.Region = region.String
	entry.Category = category.String
	entry.ProductName = productName.String
	entry.CustomerID = customerID.String
	entry.Sales = sales.Float64

	return entry, nil
}
