package detecting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/jocianoperin/PromoPredictor-sub000/infrastructure/repository/mocks"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/config"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/domain"
)

func detectionConfig() config.DetectionSync {
	return config.DetectionSync{
		WindowSize:   2,
		Threshold:    -0.05,
		LookbackDays: 365,
	}
}

func promotionSeries() []*domain.PriceObservation {
	return []*domain.PriceObservation{
		observation(0, 10.00, 6.00, 10.00, false),
		observation(1, 10.00, 6.00, 10.00, false),
		observation(2, 9.40, 6.00, 10.00, true),
		observation(3, 9.40, 6.00, 10.00, true),
		observation(4, 9.40, 6.00, 10.00, true),
	}
}

func TestService_ProcessProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesHistoryRepository(ctrl)
	mockPromotionRepo := mocks.NewMockPromotionRepository(ctrl)

	service, err := NewService(detectionConfig(), mockSalesRepo, mockPromotionRepo)
	assert.NoError(t, err)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, outcome domain.TaskOutcome)
	}{
		{
			name: "Promoção detectada e persistida",
			setup: func() {
				mockSalesRepo.EXPECT().
					GetPriceSeries("PROD001", gomock.Any()).
					Return(promotionSeries(), nil)

				mockPromotionRepo.EXPECT().
					SaveOrMerge(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, interval *domain.PromotionInterval) (*domain.Promotion, error) {
						assert.Equal(t, "PROD001", interval.ProductCode)
						assert.True(t, interval.StartDate.Equal(day(2)))
						assert.True(t, interval.EndDate.Equal(day(4)))
						return &domain.Promotion{ID: "abc123"}, nil
					})
			},
			validate: func(t *testing.T, outcome domain.TaskOutcome) {
				assert.Equal(t, domain.TaskSucceeded, outcome.Status)
			},
		},
		{
			name: "Produto sem histórico no período - skipped",
			setup: func() {
				mockSalesRepo.EXPECT().
					GetPriceSeries("PROD001", gomock.Any()).
					Return([]*domain.PriceObservation{}, nil)
			},
			validate: func(t *testing.T, outcome domain.TaskOutcome) {
				assert.Equal(t, domain.TaskSkipped, outcome.Status)
			},
		},
		{
			name: "Série sem candidatos - skipped",
			setup: func() {
				mockSalesRepo.EXPECT().
					GetPriceSeries("PROD001", gomock.Any()).
					Return([]*domain.PriceObservation{
						observation(0, 10.00, 6.00, 10.00, false),
						observation(1, 10.00, 6.00, 10.00, false),
						observation(2, 10.00, 6.00, 10.00, false),
					}, nil)
			},
			validate: func(t *testing.T, outcome domain.TaskOutcome) {
				assert.Equal(t, domain.TaskSkipped, outcome.Status)
			},
		},
		{
			name: "Erro ao carregar série - failed",
			setup: func() {
				mockSalesRepo.EXPECT().
					GetPriceSeries("PROD001", gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, outcome domain.TaskOutcome) {
				assert.Equal(t, domain.TaskFailed, outcome.Status)
				assert.Contains(t, outcome.Reason, "connection refused")
			},
		},
		{
			name: "Erro de persistência no único intervalo - failed",
			setup: func() {
				mockSalesRepo.EXPECT().
					GetPriceSeries("PROD001", gomock.Any()).
					Return(promotionSeries(), nil)

				mockPromotionRepo.EXPECT().
					SaveOrMerge(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("deadlock detected"))
			},
			validate: func(t *testing.T, outcome domain.TaskOutcome) {
				assert.Equal(t, domain.TaskFailed, outcome.Status)
			},
		},
		{
			name: "Falha em um intervalo não derruba os demais",
			setup: func() {
				// Dois blocos promocionais com preços diferentes geram
				// dois intervalos independentes
				series := []*domain.PriceObservation{
					observation(0, 10.00, 6.00, 10.00, false),
					observation(1, 10.00, 6.00, 10.00, false),
					observation(2, 9.40, 6.00, 10.00, true),
					observation(3, 8.90, 6.00, 10.00, true),
				}
				mockSalesRepo.EXPECT().
					GetPriceSeries("PROD001", gomock.Any()).
					Return(series, nil)

				mockPromotionRepo.EXPECT().
					SaveOrMerge(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("deadlock detected")).
					Times(1)

				mockPromotionRepo.EXPECT().
					SaveOrMerge(gomock.Any(), gomock.Any()).
					Return(&domain.Promotion{ID: "abc123"}, nil).
					Times(1)
			},
			validate: func(t *testing.T, outcome domain.TaskOutcome) {
				// Um dos dois intervalos foi persistido, o produto conta
				// como sucesso
				assert.Equal(t, domain.TaskSucceeded, outcome.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			outcome := service.ProcessProduct(context.Background(), "PROD001")
			assert.Equal(t, "PROD001", outcome.Key)
			tt.validate(t, outcome)
		})
	}
}

func TestService_ListProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesHistoryRepository(ctrl)
	mockPromotionRepo := mocks.NewMockPromotionRepository(ctrl)

	service, err := NewService(detectionConfig(), mockSalesRepo, mockPromotionRepo)
	assert.NoError(t, err)

	mockSalesRepo.EXPECT().
		ListProductCodes(gomock.Any()).
		Return([]string{"PROD001", "PROD002"}, nil)

	products, err := service.ListProducts()
	assert.NoError(t, err)
	assert.Equal(t, []string{"PROD001", "PROD002"}, products)
}
