package detecting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jocianoperin/PromoPredictor-sub000/infrastructure/repository"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/config"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/domain"
)

// PromotionDetector processa o pipeline de um produto: carrega a série
// de preços, detecta candidatos, funde em intervalos e persiste.
type PromotionDetector interface {
	ListProducts() ([]string, error)
	ProcessProduct(ctx context.Context, productCode string) domain.TaskOutcome
}

type Service struct {
	cfg           config.DetectionSync
	detector      Detector
	salesRepo     repository.SalesHistoryRepository
	promotionRepo repository.PromotionRepository
}

func NewService(
	cfg config.DetectionSync,
	salesRepo repository.SalesHistoryRepository,
	promotionRepo repository.PromotionRepository,
) (*Service, error) {
	detector, err := NewDetector(cfg.WindowSize, cfg.Threshold)
	if err != nil {
		return nil, fmt.Errorf("erro ao configurar detector: %w", err)
	}

	return &Service{
		cfg:           cfg,
		detector:      detector,
		salesRepo:     salesRepo,
		promotionRepo: promotionRepo,
	}, nil
}

// ListProducts retorna os produtos com histórico dentro da janela de
// lookback configurada.
func (s *Service) ListProducts() ([]string, error) {
	since := time.Now().AddDate(0, 0, -s.cfg.LookbackDays)
	return s.salesRepo.ListProductCodes(since)
}

// ProcessProduct executa detecção, fusão e persistência para um produto.
// Erros de um intervalo abortam apenas a transação daquele intervalo; os
// demais seguem. Erros de carga/dados abandonam o produto inteiro.
func (s *Service) ProcessProduct(ctx context.Context, productCode string) domain.TaskOutcome {
	since := time.Now().AddDate(0, 0, -s.cfg.LookbackDays)

	series, err := s.salesRepo.GetPriceSeries(productCode, since)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"product_code": productCode,
			"error":        err.Error(),
		}).Error("Erro ao carregar série de preços do produto")
		return domain.TaskOutcome{Key: productCode, Status: domain.TaskFailed, Reason: err.Error()}
	}

	if len(series) == 0 {
		return domain.TaskOutcome{Key: productCode, Status: domain.TaskSkipped, Reason: "produto sem histórico no período"}
	}

	candidates := s.detector.Detect(series)
	if len(candidates) == 0 {
		return domain.TaskOutcome{Key: productCode, Status: domain.TaskSkipped, Reason: "nenhum candidato a promoção"}
	}

	intervals := MergeCandidates(candidates)

	logrus.WithFields(logrus.Fields{
		"product_code": productCode,
		"candidates":   len(candidates),
		"intervals":    len(intervals),
	}).Debug("Candidatos fundidos em intervalos promocionais")

	persisted := 0
	failed := 0
	for _, interval := range intervals {
		if err := interval.Validate(); err != nil {
			// Invariante violada: fatal somente para este intervalo
			logrus.WithFields(logrus.Fields{
				"product_code": productCode,
				"error":        err.Error(),
			}).Error("Intervalo promocional inválido descartado")
			failed++
			continue
		}

		if _, err := s.promotionRepo.SaveOrMerge(ctx, interval); err != nil {
			logrus.WithFields(logrus.Fields{
				"product_code": productCode,
				"start_date":   interval.StartDate.Format(time.DateOnly),
				"end_date":     interval.EndDate.Format(time.DateOnly),
				"error":        err.Error(),
			}).Error("Erro ao persistir intervalo promocional")
			failed++
			continue
		}
		persisted++
	}

	if persisted == 0 && failed > 0 {
		return domain.TaskOutcome{
			Key:    productCode,
			Status: domain.TaskFailed,
			Reason: fmt.Sprintf("nenhum dos %d intervalos foi persistido", failed),
		}
	}

	return domain.TaskOutcome{
		Key:    productCode,
		Status: domain.TaskSucceeded,
		Reason: fmt.Sprintf("%d intervalos persistidos, %d com erro", persisted, failed),
	}
}
