package domain

import "time"

// Colunas obrigatórias da tabela sales, na ordem em que são carregadas.
var SalesColumns = []string{
	"order_date",
	"region",
	"category",
	"product_name",
	"customer_id",
	"sales",
}

// SalesRow é a linha da tabela sales como o ETL a escreve: order_date
// permanece no texto original (dia-primeiro) e só é interpretada no lado
// do dashboard.
type SalesRow struct {
	OrderDate   string  `json:"order_date"`
	Region      string  `json:"region"`
	Category    string  `json:"category"`
	ProductName string  `json:"product_name"`
	CustomerID  string  `json:"customer_id"`
	Sales       float64 `json:"sales"`
}

// SalesRecord é a visão do dashboard sobre uma linha: data interpretada,
// nula quando o texto original não é uma data válida.
type SalesRecord struct {
	OrderDate   *time.Time `json:"order_date"`
	Region      string     `json:"region"`
	Category    string     `json:"category"`
	ProductName string     `json:"product_name"`
	CustomerID  string     `json:"customer_id"`
	Sales       float64    `json:"sales"`
}
