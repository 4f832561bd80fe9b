package domain

import "time"

// PriceObservation representa um ponto da série de preços de um produto,
// ordenado por data. Somente leitura durante a detecção.
type PriceObservation struct {
	ProductCode string    `json:"product_code"`
	Date        time.Time `json:"date"`
	UnitPrice   float64   `json:"unit_price"`
	UnitCost    float64   `json:"unit_cost"`
	TablePrice  float64   `json:"table_price"`
	OnPromotion bool      `json:"on_promotion"`
}

// PromotionCandidate é um dia sinalizado pelo detector como possível
// promoção. Nunca é persistido diretamente; é consumido pelo merger.
type PromotionCandidate struct {
	ProductCode string    `json:"product_code"`
	Date        time.Time `json:"date"`
	UnitPrice   float64   `json:"unit_price"`
	UnitCost    float64   `json:"unit_cost"`
	TablePrice  float64   `json:"table_price"`
}
