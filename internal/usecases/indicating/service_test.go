package indicating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/jocianoperin/PromoPredictor-sub000/infrastructure/repository/mocks"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/config"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/domain"
)

func TestService_ProcessPromotion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesHistoryRepository(ctrl)
	mockInventoryRepo := mocks.NewMockInventoryAuditRepository(ctrl)
	mockPromotionRepo := mocks.NewMockPromotionRepository(ctrl)
	mockIndicatorRepo := mocks.NewMockSalesIndicatorRepository(ctrl)

	service := NewService(
		config.IndicatorSync{PostPromotionDays: 7},
		mockSalesRepo,
		mockInventoryRepo,
		mockPromotionRepo,
		mockIndicatorRepo,
	)

	// Expectativas mínimas para um Compute completo sem categoria nem
	// promoções anteriores
	expectComputeCalls := func() {
		mockSalesRepo.EXPECT().
			AggregateSales("PROD001", date(5), date(7)).
			Return(&domain.SalesAggregate{Quantity: 10, Value: 94.00, AveragePrice: 9.40}, nil)
		mockSalesRepo.EXPECT().
			SumOrderTotals("PROD001", date(5), date(7)).
			Return(94.00, nil)
		mockSalesRepo.EXPECT().
			AggregateSales("PROD001", date(2), date(4)).
			Return(&domain.SalesAggregate{}, nil)
		mockInventoryRepo.EXPECT().
			AverageStockBefore("PROD001", date(5)).
			Return(0.0, nil)
		mockInventoryRepo.EXPECT().
			LastStockAtOrBefore("PROD001", date(5)).
			Return(0.0, nil)
		mockSalesRepo.EXPECT().
			GetProductCategory("PROD001").
			Return("", nil)
		mockSalesRepo.EXPECT().
			SumQuantity("PROD001", date(8), date(14)).
			Return(0.0, nil)
		mockPromotionRepo.EXPECT().
			ListClosedBefore("PROD001", date(5)).
			Return(nil, nil)
	}

	tests := []struct {
		name     string
		ctx      context.Context
		setup    func()
		validate func(t *testing.T, outcome domain.TaskOutcome)
	}{
		{
			name: "Indicadores calculados e persistidos",
			ctx:  context.Background(),
			setup: func() {
				expectComputeCalls()
				mockIndicatorRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(indicator *domain.SalesIndicator) error {
						assert.Equal(t, "abc123", indicator.PromotionID)
						return nil
					})
			},
			validate: func(t *testing.T, outcome domain.TaskOutcome) {
				assert.Equal(t, domain.TaskSucceeded, outcome.Status)
			},
		},
		{
			name: "Erro no cálculo - failed",
			ctx:  context.Background(),
			setup: func() {
				mockSalesRepo.EXPECT().
					AggregateSales("PROD001", date(5), date(7)).
					Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, outcome domain.TaskOutcome) {
				assert.Equal(t, domain.TaskFailed, outcome.Status)
				assert.Contains(t, outcome.Reason, "connection refused")
			},
		},
		{
			name: "Erro ao salvar indicadores - failed",
			ctx:  context.Background(),
			setup: func() {
				expectComputeCalls()
				mockIndicatorRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(errors.New("deadlock detected"))
			},
			validate: func(t *testing.T, outcome domain.TaskOutcome) {
				assert.Equal(t, domain.TaskFailed, outcome.Status)
			},
		},
		{
			name: "Panic durante o cálculo é contido na tarefa",
			ctx:  context.Background(),
			setup: func() {
				mockSalesRepo.EXPECT().
					AggregateSales("PROD001", date(5), date(7)).
					DoAndReturn(func(string, time.Time, time.Time) (*domain.SalesAggregate, error) {
						panic("índice fora do intervalo")
					})
			},
			validate: func(t *testing.T, outcome domain.TaskOutcome) {
				assert.Equal(t, domain.TaskFailed, outcome.Status)
				assert.Contains(t, outcome.Reason, "panic")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			outcome := service.ProcessPromotion(tt.ctx, promotion())
			assert.Equal(t, "abc123", outcome.Key)
			tt.validate(t, outcome)
		})
	}
}

func TestService_ProcessPromotion_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesHistoryRepository(ctrl)
	mockInventoryRepo := mocks.NewMockInventoryAuditRepository(ctrl)
	mockPromotionRepo := mocks.NewMockPromotionRepository(ctrl)
	mockIndicatorRepo := mocks.NewMockSalesIndicatorRepository(ctrl)

	service := NewService(
		config.IndicatorSync{PostPromotionDays: 7},
		mockSalesRepo,
		mockInventoryRepo,
		mockPromotionRepo,
		mockIndicatorRepo,
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Nenhuma chamada aos repositórios é esperada
	outcome := service.ProcessPromotion(ctx, promotion())
	assert.Equal(t, domain.TaskSkipped, outcome.Status)
}

func TestService_ListPromotions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesHistoryRepository(ctrl)
	mockInventoryRepo := mocks.NewMockInventoryAuditRepository(ctrl)
	mockPromotionRepo := mocks.NewMockPromotionRepository(ctrl)
	mockIndicatorRepo := mocks.NewMockSalesIndicatorRepository(ctrl)

	service := NewService(
		config.IndicatorSync{PostPromotionDays: 7},
		mockSalesRepo,
		mockInventoryRepo,
		mockPromotionRepo,
		mockIndicatorRepo,
	)

	mockPromotionRepo.EXPECT().
		ListPromotions().
		Return([]*domain.Promotion{{ID: "abc123"}}, nil)

	promotions, err := service.ListPromotions()
	assert.NoError(t, err)
	assert.Len(t, promotions, 1)
}
