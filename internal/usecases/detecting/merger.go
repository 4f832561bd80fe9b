package detecting

import (
	"github.com/jocianoperin/PromoPredictor-sub000/internal/domain"
	"github.com/jocianoperin/PromoPredictor-sub000/pkg/utils"
)

// MergeCandidates converte os candidatos de um produto, ordenados por
// data, em períodos promocionais contíguos. O intervalo corrente é
// estendido enquanto o próximo candidato cair exatamente um dia após o
// fim do intervalo e tiver os mesmos atributos de preço; caso contrário
// o intervalo é fechado e um novo é aberto. Passada única, O(n).
func MergeCandidates(candidates []*domain.PromotionCandidate) []*domain.PromotionInterval {
	intervals := make([]*domain.PromotionInterval, 0)

	var current *domain.PromotionInterval
	for _, candidate := range candidates {
		if current == nil {
			current = newInterval(candidate)
			continue
		}

		if extends(current, candidate) {
			// Datas repetidas são tratadas como extensão nula
			if candidate.Date.After(current.EndDate) {
				current.EndDate = candidate.Date
			}
			continue
		}

		intervals = append(intervals, current)
		current = newInterval(candidate)
	}

	if current != nil {
		intervals = append(intervals, current)
	}

	return intervals
}

func newInterval(candidate *domain.PromotionCandidate) *domain.PromotionInterval {
	return &domain.PromotionInterval{
		ProductCode: candidate.ProductCode,
		StartDate:   candidate.Date,
		EndDate:     candidate.Date,
		UnitPrice:   candidate.UnitPrice,
		UnitCost:    candidate.UnitCost,
		TablePrice:  candidate.TablePrice,
	}
}

func extends(current *domain.PromotionInterval, candidate *domain.PromotionCandidate) bool {
	if candidate.UnitPrice != current.UnitPrice ||
		candidate.UnitCost != current.UnitCost ||
		candidate.TablePrice != current.TablePrice {
		return false
	}

	return utils.SameDay(candidate.Date, current.EndDate) ||
		utils.SameDay(candidate.Date, utils.NextDay(current.EndDate))
}
