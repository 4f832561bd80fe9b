// Package indicating calcula os indicadores de negócio derivados de cada
// promoção persistida.
package indicating

import (
	"fmt"
	"time"

	"github.com/jocianoperin/PromoPredictor-sub000/infrastructure/repository"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/domain"
	"github.com/jocianoperin/PromoPredictor-sub000/pkg/utils"
)

// Calculator computa a bateria de indicadores de uma promoção a partir
// dos feeds de vendas e de auditoria de estoque. Cada promoção é
// independente das demais.
type Calculator struct {
	salesRepo         repository.SalesHistoryRepository
	inventoryRepo     repository.InventoryAuditRepository
	promotionRepo     repository.PromotionRepository
	postPromotionDays int
}

func NewCalculator(
	salesRepo repository.SalesHistoryRepository,
	inventoryRepo repository.InventoryAuditRepository,
	promotionRepo repository.PromotionRepository,
	postPromotionDays int,
) *Calculator {
	if postPromotionDays <= 0 {
		postPromotionDays = 7
	}

	return &Calculator{
		salesRepo:         salesRepo,
		inventoryRepo:     inventoryRepo,
		promotionRepo:     promotionRepo,
		postPromotionDays: postPromotionDays,
	}
}

// Compute calcula todos os indicadores da promoção. O pré-período usado
// para elasticidade e impacto de categoria tem a mesma duração da
// promoção, imediatamente anterior ao início.
func (c *Calculator) Compute(promotion *domain.Promotion) (*domain.SalesIndicator, error) {
	if promotion.StartDate.After(promotion.EndDate) {
		return nil, fmt.Errorf("promoção %s com período inválido", promotion.ID)
	}

	aggregate, err := c.salesRepo.AggregateSales(promotion.ProductCode, promotion.StartDate, promotion.EndDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar vendas da promoção %s: %w", promotion.ID, err)
	}

	totalOrderValue, err := c.salesRepo.SumOrderTotals(promotion.ProductCode, promotion.StartDate, promotion.EndDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao somar pedidos da promoção %s: %w", promotion.ID, err)
	}

	indicator := &domain.SalesIndicator{
		PromotionID:          promotion.ID,
		ProductCode:          promotion.ProductCode,
		StartDate:            promotion.StartDate,
		EndDate:              promotion.EndDate,
		QuantityTotal:        aggregate.Quantity,
		ValueTotalSold:       utils.RoundWithTwoDecimalPlace(aggregate.Value),
		Cost:                 promotion.UnitCost,
		TablePrice:           promotion.TablePrice,
		AverageUnitPriceSold: utils.RoundWithTwoDecimalPlace(aggregate.AveragePrice),
		TotalOrderValue:      utils.RoundWithTwoDecimalPlace(totalOrderValue),
	}

	// Ticket médio e margem protegidos contra divisão por zero
	if aggregate.Quantity > 0 {
		indicator.AverageTicket = utils.RoundWithTwoDecimalPlace(aggregate.Value / aggregate.Quantity)
	}
	if aggregate.Value > 0 {
		margin := (aggregate.Value - promotion.UnitCost*aggregate.Quantity) / aggregate.Value * 100
		indicator.ProfitMargin = utils.RoundWithTwoDecimalPlace(margin)
	}
	if promotion.TablePrice > 0 {
		discount := (promotion.TablePrice - promotion.UnitPrice) / promotion.TablePrice * 100
		indicator.AverageDiscountPercent = utils.RoundWithTwoDecimalPlace(discount)
	}

	preStart, preEnd := prePeriod(promotion)

	elasticity, err := c.computeElasticity(promotion, aggregate, preStart, preEnd)
	if err != nil {
		return nil, err
	}
	indicator.PriceDemandElasticity = elasticity

	averageStock, err := c.inventoryRepo.AverageStockBefore(promotion.ProductCode, promotion.StartDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular estoque médio da promoção %s: %w", promotion.ID, err)
	}
	indicator.AverageStockBefore = utils.RoundWithTwoDecimalPlace(averageStock)

	stockOnDay, err := c.inventoryRepo.LastStockAtOrBefore(promotion.ProductCode, promotion.StartDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter estoque do dia da promoção %s: %w", promotion.ID, err)
	}
	indicator.StockOnPromotionDay = stockOnDay

	categoryImpact, err := c.computeCategoryImpact(promotion, preStart, preEnd)
	if err != nil {
		return nil, err
	}
	indicator.CategoryImpactPercent = categoryImpact

	postVolume, err := c.salesRepo.SumQuantity(
		promotion.ProductCode,
		promotion.EndDate.AddDate(0, 0, 1),
		promotion.EndDate.AddDate(0, 0, c.postPromotionDays),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao somar volume pós-promoção %s: %w", promotion.ID, err)
	}
	indicator.PostPromotionVolume = postVolume

	comparison, err := c.computePastComparison(promotion)
	if err != nil {
		return nil, err
	}
	indicator.ComparisonPastPromotions = comparison

	return indicator, nil
}

// prePeriod retorna o período imediatamente anterior ao início da
// promoção, com a mesma duração.
func prePeriod(promotion *domain.Promotion) (time.Time, time.Time) {
	days := int(promotion.EndDate.Sub(promotion.StartDate).Hours()/24) + 1
	preEnd := promotion.StartDate.AddDate(0, 0, -1)
	preStart := promotion.StartDate.AddDate(0, 0, -days)
	return preStart, preEnd
}

// computeElasticity calcula ΔQuantidade% / ΔPreço% entre o pré-período e
// a promoção. Nil quando não há histórico pré-promoção ou o preço não
// variou.
func (c *Calculator) computeElasticity(
	promotion *domain.Promotion,
	aggregate *domain.SalesAggregate,
	preStart, preEnd time.Time,
) (*float64, error) {
	preAggregate, err := c.salesRepo.AggregateSales(promotion.ProductCode, preStart, preEnd)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar pré-período da promoção %s: %w", promotion.ID, err)
	}

	if preAggregate.Quantity == 0 || preAggregate.AveragePrice == 0 {
		return nil, nil
	}

	priceChange := (aggregate.AveragePrice - preAggregate.AveragePrice) / preAggregate.AveragePrice * 100
	if priceChange == 0 {
		return nil, nil
	}

	quantityChange := (aggregate.Quantity - preAggregate.Quantity) / preAggregate.Quantity * 100
	elasticity := utils.RoundWithTwoDecimalPlace(quantityChange / priceChange)
	return &elasticity, nil
}

// computeCategoryImpact compara as vendas dos produtos irmãos da mesma
// categoria durante a promoção contra o pré-período. Zero quando
// qualquer um dos lados não tem dados.
func (c *Calculator) computeCategoryImpact(promotion *domain.Promotion, preStart, preEnd time.Time) (float64, error) {
	categoryID, err := c.salesRepo.GetProductCategory(promotion.ProductCode)
	if err != nil {
		return 0, fmt.Errorf("erro ao obter categoria do produto %s: %w", promotion.ProductCode, err)
	}
	if categoryID == "" {
		return 0, nil
	}

	during, err := c.salesRepo.SumCategorySales(categoryID, promotion.ProductCode, promotion.StartDate, promotion.EndDate)
	if err != nil {
		return 0, fmt.Errorf("erro ao somar vendas da categoria %s: %w", categoryID, err)
	}

	baseline, err := c.salesRepo.SumCategorySales(categoryID, promotion.ProductCode, preStart, preEnd)
	if err != nil {
		return 0, fmt.Errorf("erro ao somar baseline da categoria %s: %w", categoryID, err)
	}

	if during == 0 || baseline == 0 {
		return 0, nil
	}

	return utils.RoundWithTwoDecimalPlace((during - baseline) / baseline * 100), nil
}

// computePastComparison retorna a média de quantidade vendida nas
// promoções do produto encerradas antes do início da atual. Zero quando
// não existem promoções anteriores.
func (c *Calculator) computePastComparison(promotion *domain.Promotion) (float64, error) {
	past, err := c.promotionRepo.ListClosedBefore(promotion.ProductCode, promotion.StartDate)
	if err != nil {
		return 0, fmt.Errorf("erro ao listar promoções anteriores do produto %s: %w", promotion.ProductCode, err)
	}
	if len(past) == 0 {
		return 0, nil
	}

	var total float64
	for _, previous := range past {
		quantity, err := c.salesRepo.SumQuantity(previous.ProductCode, previous.StartDate, previous.EndDate)
		if err != nil {
			return 0, fmt.Errorf("erro ao somar quantidade da promoção %s: %w", previous.ID, err)
		}
		total += quantity
	}

	return utils.RoundWithTwoDecimalPlace(total / float64(len(past))), nil
}
