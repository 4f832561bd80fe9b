// Package detecting implementa a detecção de dias promocionais por
// produto e a fusão dos candidatos em períodos canônicos.
package detecting

import (
	"fmt"

	"github.com/jocianoperin/PromoPredictor-sub000/internal/domain"
)

// Detector aplica a regra de janela deslizante sobre a série de preços
// de um produto. É uma função pura: sem estado entre chamadas e sem
// efeitos colaterais.
type Detector struct {
	windowSize int
	threshold  float64
}

// NewDetector valida os parâmetros da regra. windowSize deve ser >= 1 e
// threshold uma fração negativa (ex.: -0.05 para queda de 5%).
func NewDetector(windowSize int, threshold float64) (Detector, error) {
	if windowSize < 1 {
		return Detector{}, fmt.Errorf("windowSize deve ser >= 1, recebido %d", windowSize)
	}
	if threshold >= 0 {
		return Detector{}, fmt.Errorf("threshold deve ser uma fração negativa, recebido %f", threshold)
	}

	return Detector{
		windowSize: windowSize,
		threshold:  threshold,
	}, nil
}

// Detect sinaliza os candidatos a promoção na série, que deve estar
// ordenada por data. Uma observação no índice i é candidata quando:
//
//  1. está marcada como em promoção na origem;
//  2. o preço unitário está abaixo do preço de tabela;
//  3. a variação fracionária de preço em relação ao índice i-windowSize
//     é menor ou igual ao threshold;
//  4. o custo unitário não variou na janela (exclui repricings de custo).
//
// Um bloco sinalizado se sustenta enquanto o preço permanecer no nível
// que o disparou: a partir do windowSize-ésimo dia do bloco a base da
// janela passa a ser o próprio preço promocional e a condição 3 deixaria
// de valer, então a continuidade (mesmo preço e custo, condições 1 e 2
// mantidas) conserva a sinalização até o preço sair desse nível.
//
// Observações com índice menor que windowSize nunca são sinalizadas.
func (d Detector) Detect(series []*domain.PriceObservation) []*domain.PromotionCandidate {
	candidates := make([]*domain.PromotionCandidate, 0)

	inRun := false
	var runPrice, runCost float64

	for i := d.windowSize; i < len(series); i++ {
		obs := series[i]
		base := series[i-d.windowSize]

		if !obs.OnPromotion || obs.UnitPrice >= obs.TablePrice {
			inRun = false
			continue
		}

		flagged := inRun && obs.UnitPrice == runPrice && obs.UnitCost == runCost
		// Preço base zerado ou ausente: não sinaliza, sem erro
		if !flagged && base.UnitPrice > 0 {
			change := (obs.UnitPrice - base.UnitPrice) / base.UnitPrice
			flagged = change <= d.threshold && obs.UnitCost == base.UnitCost
		}
		if !flagged {
			inRun = false
			continue
		}

		inRun = true
		runPrice = obs.UnitPrice
		runCost = obs.UnitCost

		candidates = append(candidates, &domain.PromotionCandidate{
			ProductCode: obs.ProductCode,
			Date:        obs.Date,
			UnitPrice:   obs.UnitPrice,
			UnitCost:    obs.UnitCost,
			TablePrice:  obs.TablePrice,
		})
	}

	return candidates
}
