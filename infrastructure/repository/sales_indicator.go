package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/jocianoperin/PromoPredictor-sub000/infrastructure/database/postgres"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/domain"
	"github.com/jocianoperin/PromoPredictor-sub000/pkg/utils"
)

// SalesIndicatorRepository persiste os indicadores derivados, uma linha
// por promoção (upsert por promotion_id).
type SalesIndicatorRepository interface {
	SaveOrUpdate(indicator *domain.SalesIndicator) error
	GetByPromotionID(promotionID string) (*domain.SalesIndicator, error)
}

type salesIndicatorRepository struct {
	conn *postgres.Connection
}

func NewSalesIndicatorRepository(conn *postgres.Connection) SalesIndicatorRepository {
	return &salesIndicatorRepository{
		conn: conn,
	}
}

func (r *salesIndicatorRepository) SaveOrUpdate(indicator *domain.SalesIndicator) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar ID de indicador: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("sales_indicators").
		Columns(
			"id", "promotion_id", "product_code", "start_date", "end_date",
			"quantity_total", "value_total_sold", "cost", "table_price",
			"average_unit_price_sold", "total_order_value", "average_ticket",
			"profit_margin", "average_discount_percent", "price_demand_elasticity",
			"average_stock_before_promotion", "stock_on_promotion_day",
			"category_impact_percent", "post_promotion_volume",
			"comparison_to_past_promotions",
		).
		Values(
			id,
			indicator.PromotionID,
			indicator.ProductCode,
			indicator.StartDate.Format(time.DateOnly),
			indicator.EndDate.Format(time.DateOnly),
			indicator.QuantityTotal,
			indicator.ValueTotalSold,
			indicator.Cost,
			indicator.TablePrice,
			indicator.AverageUnitPriceSold,
			indicator.TotalOrderValue,
			indicator.AverageTicket,
			indicator.ProfitMargin,
			indicator.AverageDiscountPercent,
			indicator.PriceDemandElasticity,
			indicator.AverageStockBefore,
			indicator.StockOnPromotionDay,
			indicator.CategoryImpactPercent,
			indicator.PostPromotionVolume,
			indicator.ComparisonPastPromotions,
		).
		Suffix(`
			ON CONFLICT (promotion_id) DO UPDATE SET
				product_code = EXCLUDED.product_code,
				start_date = EXCLUDED.start_date,
				end_date = EXCLUDED.end_date,
				quantity_total = EXCLUDED.quantity_total,
				value_total_sold = EXCLUDED.value_total_sold,
				cost = EXCLUDED.cost,
				table_price = EXCLUDED.table_price,
				average_unit_price_sold = EXCLUDED.average_unit_price_sold,
				total_order_value = EXCLUDED.total_order_value,
				average_ticket = EXCLUDED.average_ticket,
				profit_margin = EXCLUDED.profit_margin,
				average_discount_percent = EXCLUDED.average_discount_percent,
				price_demand_elasticity = EXCLUDED.price_demand_elasticity,
				average_stock_before_promotion = EXCLUDED.average_stock_before_promotion,
				stock_on_promotion_day = EXCLUDED.stock_on_promotion_day,
				category_impact_percent = EXCLUDED.category_impact_percent,
				post_promotion_volume = EXCLUDED.post_promotion_volume,
				comparison_to_past_promotions = EXCLUDED.comparison_to_past_promotions,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *salesIndicatorRepository) GetByPromotionID(promotionID string) (*domain.SalesIndicator, error) {
	query, args, err := squirrel.
		Select(
			"si.id", "si.promotion_id", "si.product_code", "si.start_date", "si.end_date",
			"si.quantity_total", "si.value_total_sold", "si.cost", "si.table_price",
			"si.average_unit_price_sold", "si.total_order_value", "si.average_ticket",
			"si.profit_margin", "si.average_discount_percent", "si.price_demand_elasticity",
			"si.average_stock_before_promotion", "si.stock_on_promotion_day",
			"si.category_impact_percent", "si.post_promotion_volume",
			"si.comparison_to_past_promotions", "si.created_at", "si.updated_at",
		).
		From("sales_indicators si").
		Where(squirrel.Eq{"si.promotion_id": promotionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	indicator := &domain.SalesIndicator{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&indicator.ID,
		&indicator.PromotionID,
		&indicator.ProductCode,
		&indicator.StartDate,
		&indicator.EndDate,
		&indicator.QuantityTotal,
		&indicator.ValueTotalSold,
		&indicator.Cost,
		&indicator.TablePrice,
		&indicator.AverageUnitPriceSold,
		&indicator.TotalOrderValue,
		&indicator.AverageTicket,
		&indicator.ProfitMargin,
		&indicator.AverageDiscountPercent,
		&indicator.PriceDemandElasticity,
		&indicator.AverageStockBefore,
		&indicator.StockOnPromotionDay,
		&indicator.CategoryImpactPercent,
		&indicator.PostPromotionVolume,
		&indicator.ComparisonPastPromotions,
		&indicator.CreatedAt,
		&indicator.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear indicador: %w", err)
	}

	return indicator, nil
}
