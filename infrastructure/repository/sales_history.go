package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/jocianoperin/PromoPredictor-sub000/infrastructure/database/postgres"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/domain"
)

const (
	salesHistoryTable = "sales_history sh"
)

// SalesHistoryRepository consulta o histórico de vendas (feed externo,
// somente leitura para o motor).
type SalesHistoryRepository interface {
	ListProductCodes(since time.Time) ([]string, error)
	GetPriceSeries(productCode string, since time.Time) ([]*domain.PriceObservation, error)
	AggregateSales(productCode string, startDate, endDate time.Time) (*domain.SalesAggregate, error)
	SumOrderTotals(productCode string, startDate, endDate time.Time) (float64, error)
	SumQuantity(productCode string, startDate, endDate time.Time) (float64, error)
	GetProductCategory(productCode string) (string, error)
	SumCategorySales(categoryID, excludeProductCode string, startDate, endDate time.Time) (float64, error)
}

type salesHistoryRepository struct {
	conn *postgres.Connection
}

func NewSalesHistoryRepository(conn *postgres.Connection) SalesHistoryRepository {
	return &salesHistoryRepository{
		conn: conn,
	}
}

// ListProductCodes retorna os produtos com vendas a partir da data
// informada, para o fan-out da fase de detecção.
func (r *salesHistoryRepository) ListProductCodes(since time.Time) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT sh.product_code").
		From(salesHistoryTable).
		Where(squirrel.GtOrEq{"sh.order_date": since.Format(time.DateOnly)}).
		OrderBy("sh.product_code ASC").
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

	codes := make([]string, 0)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("erro ao escanear código de produto: %w", err)
		}
		codes = append(codes, code)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return codes, nil
}

// GetPriceSeries monta a série diária de preços de um produto, ordenada
// por data. Dias com mais de uma venda são colapsados em uma observação.
func (r *salesHistoryRepository) GetPriceSeries(productCode string, since time.Time) ([]*domain.PriceObservation, error) {
	query, args, err := squirrel.
		Select(
			"sh.order_date::date AS day",
			"AVG(sh.unit_price) AS unit_price",
			"AVG(sh.unit_cost) AS unit_cost",
			"MAX(sh.table_price) AS table_price",
			"BOOL_OR(sh.on_promotion) AS on_promotion",
		).
		From(salesHistoryTable).
		Where(squirrel.Eq{"sh.product_code": productCode}).
		Where(squirrel.GtOrEq{"sh.order_date": since.Format(time.DateOnly)}).
		GroupBy("sh.order_date::date").
		OrderBy("day ASC").
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

	series := make([]*domain.PriceObservation, 0)
	for rows.Next() {
		obs := &domain.PriceObservation{ProductCode: productCode}
		err := rows.Scan(
			&obs.Date,
			&obs.UnitPrice,
			&obs.UnitCost,
			&obs.TablePrice,
			&obs.OnPromotion,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear série de preços: %w", err)
		}
		series = append(series, obs)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return series, nil
}

// AggregateSales soma quantidade e valor vendido do produto no período.
func (r *salesHistoryRepository) AggregateSales(productCode string, startDate, endDate time.Time) (*domain.SalesAggregate, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(sh.quantity), 0)",
			"COALESCE(SUM(sh.unit_price * sh.quantity), 0)",
			"COALESCE(AVG(sh.unit_price), 0)",
		).
		From(salesHistoryTable).
		Where(squirrel.Eq{"sh.product_code": productCode}).
		Where(squirrel.GtOrEq{"sh.order_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"sh.order_date": endDate.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	aggregate := &domain.SalesAggregate{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&aggregate.Quantity, &aggregate.Value, &aggregate.AveragePrice); err != nil {
		return nil, fmt.Errorf("erro ao escanear agregado de vendas: %w", err)
	}

	return aggregate, nil
}

// SumOrderTotals soma o total dos pedidos (nível pedido, contado uma vez
// por pedido) que contêm o produto no período.
func (r *salesHistoryRepository) SumOrderTotals(productCode string, startDate, endDate time.Time) (float64, error) {
	ordersQuery := squirrel.
		Select("DISTINCT sh.order_id", "sh.order_total").
		From(salesHistoryTable).
		Where(squirrel.Eq{"sh.product_code": productCode}).
		Where(squirrel.GtOrEq{"sh.order_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"sh.order_date": endDate.Format(time.DateOnly)})

	query, args, err := squirrel.
		Select("COALESCE(SUM(orders.order_total), 0)").
		FromSelect(ordersQuery, "orders").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao escanear total de pedidos: %w", err)
	}

	return total, nil
}

// SumQuantity soma a quantidade vendida do produto no período.
func (r *salesHistoryRepository) SumQuantity(productCode string, startDate, endDate time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(sh.quantity), 0)").
		From(salesHistoryTable).
		Where(squirrel.Eq{"sh.product_code": productCode}).
		Where(squirrel.GtOrEq{"sh.order_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"sh.order_date": endDate.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var quantity float64
	if err := r.conn.QueryRow(query, args...).Scan(&quantity); err != nil {
		return 0, fmt.Errorf("erro ao escanear quantidade: %w", err)
	}

	return quantity, nil
}

// GetProductCategory retorna a categoria mais recente do produto no
// histórico. Vazio quando o produto não tem vendas.
func (r *salesHistoryRepository) GetProductCategory(productCode string) (string, error) {
	query, args, err := squirrel.
		Select("sh.category_id").
		From(salesHistoryTable).
		Where(squirrel.Eq{"sh.product_code": productCode}).
		OrderBy("sh.order_date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var categoryID string
	if err := r.conn.QueryRow(query, args...).Scan(&categoryID); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("erro ao escanear categoria: %w", err)
	}

	return categoryID, nil
}

// SumCategorySales soma o valor vendido dos produtos irmãos da categoria
// (excluindo o próprio produto) no período.
func (r *salesHistoryRepository) SumCategorySales(categoryID, excludeProductCode string, startDate, endDate time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(sh.unit_price * sh.quantity), 0)").
		From(salesHistoryTable).
		Where(squirrel.Eq{"sh.category_id": categoryID}).
		Where(squirrel.NotEq{"sh.product_code": excludeProductCode}).
		Where(squirrel.GtOrEq{"sh.order_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"sh.order_date": endDate.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao escanear vendas da categoria: %w", err)
	}

	return total, nil
}
