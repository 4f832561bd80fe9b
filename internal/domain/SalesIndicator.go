package domain

import "time"

// SalesIndicator reúne os indicadores de negócio derivados de uma
// promoção. Uma linha por promoção, recalculada (upsert) a cada execução
// do calculador. Elasticity é nil quando não há histórico pré-promoção ou
// quando o preço não variou.
type SalesIndicator struct {
	ID                       string    `json:"id"`
	PromotionID              string    `json:"promotion_id"`
	ProductCode              string    `json:"product_code"`
	StartDate                time.Time `json:"start_date"`
	EndDate                  time.Time `json:"end_date"`
	QuantityTotal            float64   `json:"quantity_total"`
	ValueTotalSold           float64   `json:"value_total_sold"`
	Cost                     float64   `json:"cost"`
	TablePrice               float64   `json:"table_price"`
	AverageUnitPriceSold     float64   `json:"average_unit_price_sold"`
	TotalOrderValue          float64   `json:"total_order_value"`
	AverageTicket            float64   `json:"average_ticket"`
	ProfitMargin             float64   `json:"profit_margin"`
	AverageDiscountPercent   float64   `json:"average_discount_percent"`
	PriceDemandElasticity    *float64  `json:"price_demand_elasticity"`
	AverageStockBefore       float64   `json:"average_stock_before_promotion"`
	StockOnPromotionDay      float64   `json:"stock_on_promotion_day"`
	CategoryImpactPercent    float64   `json:"category_impact_percent"`
	PostPromotionVolume      float64   `json:"post_promotion_volume"`
	ComparisonPastPromotions float64   `json:"comparison_to_past_promotions"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}
