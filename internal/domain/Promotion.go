package domain

import (
	"fmt"
	"time"
)

// Promotion representa um período canônico de preço promocional de um
// produto, armazenado no banco. Para um mesmo produto não podem existir
// duas linhas com períodos sobrepostos e os mesmos atributos de preço;
// candidatos sobrepostos são fundidos alargando start_date/end_date.
type Promotion struct {
	ID          string    `json:"id"`
	ProductCode string    `json:"product_code"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	UnitPrice   float64   `json:"unit_price"`
	UnitCost    float64   `json:"unit_cost"`
	TablePrice  float64   `json:"table_price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PromotionInterval é o intervalo produzido pelo merger antes da
// persistência (ainda sem ID).
type PromotionInterval struct {
	ProductCode string    `json:"product_code"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	UnitPrice   float64   `json:"unit_price"`
	UnitCost    float64   `json:"unit_cost"`
	TablePrice  float64   `json:"table_price"`
}

// Validate verifica as invariantes básicas do intervalo antes da escrita.
func (p *PromotionInterval) Validate() error {
	if p.ProductCode == "" {
		return fmt.Errorf("intervalo sem código de produto")
	}
	if p.StartDate.After(p.EndDate) {
		return fmt.Errorf("intervalo inválido para o produto %s: start_date %s posterior a end_date %s",
			p.ProductCode, p.StartDate.Format(time.DateOnly), p.EndDate.Format(time.DateOnly))
	}
	return nil
}

// DurationDays retorna a duração do intervalo em dias, inclusiva.
func (p *PromotionInterval) DurationDays() int {
	return int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}
