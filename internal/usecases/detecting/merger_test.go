package detecting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jocianoperin/PromoPredictor-sub000/internal/domain"
)

func candidate(offset int, unitPrice float64) *domain.PromotionCandidate {
	return &domain.PromotionCandidate{
		ProductCode: "PROD001",
		Date:        day(offset),
		UnitPrice:   unitPrice,
		UnitCost:    6.00,
		TablePrice:  10.00,
	}
}

func TestMergeCandidates(t *testing.T) {
	tests := []struct {
		name       string
		candidates []*domain.PromotionCandidate
		validate   func(t *testing.T, intervals []*domain.PromotionInterval)
	}{
		{
			name: "Dias contíguos com mesmo preço - um único intervalo",
			candidates: []*domain.PromotionCandidate{
				candidate(0, 9.40),
				candidate(1, 9.40),
				candidate(2, 9.40),
			},
			validate: func(t *testing.T, intervals []*domain.PromotionInterval) {
				assert.Len(t, intervals, 1)
				assert.True(t, intervals[0].StartDate.Equal(day(0)))
				assert.True(t, intervals[0].EndDate.Equal(day(2)))
				assert.Equal(t, 9.40, intervals[0].UnitPrice)
				assert.Equal(t, 3, intervals[0].DurationDays())
			},
		},
		{
			name: "Lacuna de um dia - dois intervalos",
			candidates: []*domain.PromotionCandidate{
				candidate(0, 9.40),
				candidate(1, 9.40),
				candidate(3, 9.40),
			},
			validate: func(t *testing.T, intervals []*domain.PromotionInterval) {
				assert.Len(t, intervals, 2)
				assert.True(t, intervals[0].EndDate.Equal(day(1)))
				assert.True(t, intervals[1].StartDate.Equal(day(3)))
				assert.True(t, intervals[1].EndDate.Equal(day(3)))
			},
		},
		{
			name: "Preço diferente em dia contíguo - fecha o intervalo",
			candidates: []*domain.PromotionCandidate{
				candidate(0, 9.40),
				candidate(1, 9.40),
				candidate(2, 8.90),
			},
			validate: func(t *testing.T, intervals []*domain.PromotionInterval) {
				assert.Len(t, intervals, 2)
				assert.Equal(t, 9.40, intervals[0].UnitPrice)
				assert.Equal(t, 8.90, intervals[1].UnitPrice)
				assert.True(t, intervals[1].StartDate.Equal(day(2)))
			},
		},
		{
			name: "Data repetida com mesmo preço - extensão nula",
			candidates: []*domain.PromotionCandidate{
				candidate(0, 9.40),
				candidate(0, 9.40),
				candidate(1, 9.40),
			},
			validate: func(t *testing.T, intervals []*domain.PromotionInterval) {
				assert.Len(t, intervals, 1)
				assert.True(t, intervals[0].StartDate.Equal(day(0)))
				assert.True(t, intervals[0].EndDate.Equal(day(1)))
			},
		},
		{
			name: "Candidato único - intervalo de um dia",
			candidates: []*domain.PromotionCandidate{
				candidate(5, 9.40),
			},
			validate: func(t *testing.T, intervals []*domain.PromotionInterval) {
				assert.Len(t, intervals, 1)
				assert.True(t, intervals[0].StartDate.Equal(intervals[0].EndDate))
				assert.Equal(t, 1, intervals[0].DurationDays())
			},
		},
		{
			name:       "Sem candidatos - sem intervalos",
			candidates: []*domain.PromotionCandidate{},
			validate: func(t *testing.T, intervals []*domain.PromotionInterval) {
				assert.Empty(t, intervals)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intervals := MergeCandidates(tt.candidates)
			tt.validate(t, intervals)

			for _, interval := range intervals {
				assert.NoError(t, interval.Validate())
			}
		})
	}
}

func TestPromotionInterval_Validate(t *testing.T) {
	valid := &domain.PromotionInterval{
		ProductCode: "PROD001",
		StartDate:   day(0),
		EndDate:     day(2),
	}
	assert.NoError(t, valid.Validate())

	noProduct := &domain.PromotionInterval{
		StartDate: day(0),
		EndDate:   day(2),
	}
	assert.Error(t, noProduct.Validate())

	inverted := &domain.PromotionInterval{
		ProductCode: "PROD001",
		StartDate:   day(2),
		EndDate:     day(0),
	}
	assert.Error(t, inverted.Validate())
}

func TestMergeCandidates_PreservesPriceAttributes(t *testing.T) {
	candidates := []*domain.PromotionCandidate{
		{
			ProductCode: "PROD002",
			Date:        time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
			UnitPrice:   4.20,
			UnitCost:    2.10,
			TablePrice:  4.50,
		},
	}

	intervals := MergeCandidates(candidates)
	assert.Len(t, intervals, 1)
	assert.Equal(t, "PROD002", intervals[0].ProductCode)
	assert.Equal(t, 4.20, intervals[0].UnitPrice)
	assert.Equal(t, 2.10, intervals[0].UnitCost)
	assert.Equal(t, 4.50, intervals[0].TablePrice)
}
