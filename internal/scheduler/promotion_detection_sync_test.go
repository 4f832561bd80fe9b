package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jocianoperin/PromoPredictor-sub000/internal/config"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/domain"
)

// stubDetector simula o pipeline de detecção com desfechos
// pré-configurados por produto.
type stubDetector struct {
	products    []string
	outcomes    map[string]domain.TaskStatus
	delay       time.Duration
	inFlight    int32
	maxInFlight int32
}

func (s *stubDetector) ListProducts() ([]string, error) {
	return s.products, nil
}

func (s *stubDetector) ProcessProduct(ctx context.Context, productCode string) domain.TaskOutcome {
	current := atomic.AddInt32(&s.inFlight, 1)
	defer atomic.AddInt32(&s.inFlight, -1)

	for {
		max := atomic.LoadInt32(&s.maxInFlight)
		if current <= max || atomic.CompareAndSwapInt32(&s.maxInFlight, max, current) {
			break
		}
	}

	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	status, ok := s.outcomes[productCode]
	if !ok {
		status = domain.TaskSucceeded
	}
	return domain.TaskOutcome{Key: productCode, Status: status}
}

func detectionService(detector *stubDetector, maxConcurrent int) *PromotionDetectionSyncService {
	return &PromotionDetectionSyncService{
		config: config.DetectionSync{
			MaxConcurrentJobs: maxConcurrent,
			WindowSize:        2,
			Threshold:         -0.05,
			LookbackDays:      365,
		},
		detectionService: detector,
	}
}

func TestPromotionDetectionSyncService_processProducts(t *testing.T) {
	tests := []struct {
		name     string
		detector *stubDetector
		validate func(t *testing.T, summary domain.RunSummary)
	}{
		{
			name: "Todos os produtos processados com sucesso",
			detector: &stubDetector{
				products: []string{"PROD001", "PROD002", "PROD003"},
			},
			validate: func(t *testing.T, summary domain.RunSummary) {
				assert.Equal(t, 3, summary.Succeeded)
				assert.Equal(t, 0, summary.Failed)
				assert.Equal(t, 3, summary.Total())
			},
		},
		{
			name: "Falha de um produto não interrompe os demais",
			detector: &stubDetector{
				products: []string{"PROD001", "PROD002", "PROD003", "PROD004"},
				outcomes: map[string]domain.TaskStatus{
					"PROD002": domain.TaskFailed,
					"PROD004": domain.TaskSkipped,
				},
			},
			validate: func(t *testing.T, summary domain.RunSummary) {
				assert.Equal(t, 2, summary.Succeeded)
				assert.Equal(t, 1, summary.Skipped)
				assert.Equal(t, 1, summary.Failed)
				assert.Equal(t, 4, summary.Total())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := detectionService(tt.detector, 2)
			summary := service.processProducts(context.Background(), tt.detector.products)
			tt.validate(t, summary)
		})
	}
}

func TestPromotionDetectionSyncService_RespectsConcurrencyLimit(t *testing.T) {
	detector := &stubDetector{
		products: []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7", "P8"},
		delay:    10 * time.Millisecond,
	}
	service := detectionService(detector, 3)

	summary := service.processProducts(context.Background(), detector.products)

	assert.Equal(t, 8, summary.Total())
	assert.LessOrEqual(t, atomic.LoadInt32(&detector.maxInFlight), int32(3))
}

func TestPromotionDetectionSyncService_CancelledContext(t *testing.T) {
	detector := &stubDetector{
		products: []string{"PROD001", "PROD002"},
	}
	service := detectionService(detector, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary := service.processProducts(ctx, detector.products)

	// Nenhum produto é despachado após o cancelamento
	assert.Equal(t, 0, summary.Total())
}

func TestPromotionDetectionSyncService_GetStatus(t *testing.T) {
	service := detectionService(&stubDetector{}, 4)
	service.lastSummary = domain.RunSummary{Succeeded: 5, Skipped: 2, Failed: 1}

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, 2, status["window_size"])
	assert.Equal(t, -0.05, status["threshold"])
	assert.Equal(t, 4, status["sync_max_concurrent"])
	assert.Equal(t, 5, status["last_run_succeeded"])
	assert.Equal(t, 2, status["last_run_skipped"])
	assert.Equal(t, 1, status["last_run_failed"])
}

func TestPromotionDetectionSyncService_StatusDuringRun(t *testing.T) {
	detector := &stubDetector{
		products: []string{"PROD001", "PROD002"},
		delay:    10 * time.Millisecond,
	}
	service := detectionService(detector, 1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		service.runDetection(context.Background())
	}()

	// Leituras concorrentes de status durante a execução; todo o estado
	// mutável, incluindo last_sync_started_at, é lido sob o mesmo mutex
	// que o protege na escrita
	for i := 0; i < 20; i++ {
		_ = service.GetStatus()
		time.Sleep(time.Millisecond)
	}
	<-done

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestPromotionDetectionSyncService_SingleRunAtATime(t *testing.T) {
	detector := &stubDetector{
		products: []string{"PROD001"},
		delay:    50 * time.Millisecond,
	}
	service := detectionService(detector, 1)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			service.runDetection(context.Background())
		}()
	}
	wg.Wait()

	// Execuções concorrentes são ignoradas pelo guard de syncRunning;
	// ao final nenhuma permanece marcada como em andamento
	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
}
