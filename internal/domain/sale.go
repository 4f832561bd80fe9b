package domain

import "time"

// SaleRecord é uma linha do histórico de vendas (nível item de pedido).
type SaleRecord struct {
	ProductCode string
	OrderID     string
	OrderDate   time.Time
	OrderTotal  float64
	UnitPrice   float64
	UnitCost    float64
	TablePrice  float64
	Quantity    float64
	OnPromotion bool
	CategoryID  string
}

// SalesAggregate agrega quantidade, valor vendido e preço médio de um
// produto em um período.
type SalesAggregate struct {
	Quantity     float64
	Value        float64
	AveragePrice float64
}

// InventoryRecord é uma linha da auditoria de estoque.
type InventoryRecord struct {
	ProductCode string
	RecordedAt  time.Time
	StockLevel  float64
}
