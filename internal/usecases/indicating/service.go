package indicating

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jocianoperin/PromoPredictor-sub000/infrastructure/repository"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/config"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/domain"
)

// IndicatorProcessor calcula e persiste os indicadores de uma promoção.
type IndicatorProcessor interface {
	ListPromotions() ([]*domain.Promotion, error)
	ProcessPromotion(ctx context.Context, promotion *domain.Promotion) domain.TaskOutcome
}

type Service struct {
	calculator    *Calculator
	promotionRepo repository.PromotionRepository
	indicatorRepo repository.SalesIndicatorRepository
}

func NewService(
	cfg config.IndicatorSync,
	salesRepo repository.SalesHistoryRepository,
	inventoryRepo repository.InventoryAuditRepository,
	promotionRepo repository.PromotionRepository,
	indicatorRepo repository.SalesIndicatorRepository,
) *Service {
	return &Service{
		calculator:    NewCalculator(salesRepo, inventoryRepo, promotionRepo, cfg.PostPromotionDays),
		promotionRepo: promotionRepo,
		indicatorRepo: indicatorRepo,
	}
}

func (s *Service) ListPromotions() ([]*domain.Promotion, error) {
	return s.promotionRepo.ListPromotions()
}

// ProcessPromotion computa e grava os indicadores de uma promoção. Erros
// e panics são contidos na tarefa: a promoção é pulada e as demais do
// lote seguem normalmente.
func (s *Service) ProcessPromotion(ctx context.Context, promotion *domain.Promotion) (outcome domain.TaskOutcome) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"promotion_id": promotion.ID,
				"product_code": promotion.ProductCode,
				"panic_error":  r,
			}).Error("Panic ao calcular indicadores da promoção")
			outcome = domain.TaskOutcome{
				Key:    promotion.ID,
				Status: domain.TaskFailed,
				Reason: fmt.Sprintf("panic: %v", r),
			}
		}
	}()

	if err := ctx.Err(); err != nil {
		return domain.TaskOutcome{Key: promotion.ID, Status: domain.TaskSkipped, Reason: "execução cancelada"}
	}

	indicator, err := s.calculator.Compute(promotion)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"promotion_id": promotion.ID,
			"product_code": promotion.ProductCode,
			"start_date":   promotion.StartDate.Format(time.DateOnly),
			"end_date":     promotion.EndDate.Format(time.DateOnly),
			"error":        err.Error(),
		}).Error("Erro ao calcular indicadores da promoção")
		return domain.TaskOutcome{Key: promotion.ID, Status: domain.TaskFailed, Reason: err.Error()}
	}

	if err := s.indicatorRepo.SaveOrUpdate(indicator); err != nil {
		logrus.WithFields(logrus.Fields{
			"promotion_id": promotion.ID,
			"product_code": promotion.ProductCode,
			"error":        err.Error(),
		}).Error("Erro ao salvar indicadores da promoção")
		return domain.TaskOutcome{Key: promotion.ID, Status: domain.TaskFailed, Reason: err.Error()}
	}

	return domain.TaskOutcome{Key: promotion.ID, Status: domain.TaskSucceeded}
}
