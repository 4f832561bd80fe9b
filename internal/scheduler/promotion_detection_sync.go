// Package scheduler contém os serviços de agendamento das fases do motor
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/jocianoperin/PromoPredictor-sub000/internal/config"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/domain"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/usecases/detecting"
	"github.com/jocianoperin/PromoPredictor-sub000/pkg/log"
)

// PromotionDetectionSyncService agenda e executa a fase de detecção e
// fusão de promoções, com um worker por produto limitado por semáforo.
type PromotionDetectionSyncService struct {
	scheduler           *gocron.Scheduler
	config              config.DetectionSync
	detectionService    detecting.PromotionDetector
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         domain.RunSummary
}

func NewPromotionDetectionSyncService(
	detectionService detecting.PromotionDetector,
	appConfig *config.Config,
) *PromotionDetectionSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       appConfig.DetectionSync.CronSchedule,
		"window_size":         appConfig.DetectionSync.WindowSize,
		"threshold":           appConfig.DetectionSync.Threshold,
		"lookback_days":       appConfig.DetectionSync.LookbackDays,
		"max_concurrent_jobs": appConfig.DetectionSync.MaxConcurrentJobs,
		"sync_enabled":        appConfig.DetectionSync.Enabled,
	}).Info("Configuração do agendador de detecção de promoções carregada")

	return &PromotionDetectionSyncService{
		scheduler:        scheduler,
		config:           appConfig.DetectionSync,
		detectionService: detectionService,
	}
}

// Start inicia o agendador
func (s *PromotionDetectionSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Detecção de promoções desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de detecção de promoções")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDetection(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar detecção de promoções: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de detecção de promoções")
		s.scheduler.Stop()
	}()

	return nil
}

// runDetection percorre todos os produtos com histórico e processa cada
// um em um worker do pool.
func (s *PromotionDetectionSyncService) runDetection(ctx context.Context) {
	startTime := time.Now()

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Detecção de promoções já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	runCtx, correlationID := log.WithCorrelationID(ctx)

	logrus.WithField("correlation_id", correlationID).Info("Iniciando detecção de promoções para todos os produtos")

	productCodes, err := s.detectionService.ListProducts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar produtos para detecção de promoções")
		return
	}

	if len(productCodes) == 0 {
		logrus.Info("Nenhum produto com histórico para detecção de promoções")
		return
	}

	summary := s.processProducts(runCtx, productCodes)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"correlation_id": correlationID,
		"duration":       duration.String(),
		"products":       len(productCodes),
		"succeeded":      summary.Succeeded,
		"skipped":        summary.Skipped,
		"failed":         summary.Failed,
	}).Info("Detecção de promoções concluída")

	s.syncMutex.Lock()
	s.lastSummary = summary
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// processProducts distribui os produtos entre os workers do pool. O
// estado final não depende da ordem de processamento: a serialização
// por produto fica a cargo do lock transacional do promotion store.
func (s *PromotionDetectionSyncService) processProducts(ctx context.Context, productCodes []string) domain.RunSummary {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	outcomes := make(chan domain.TaskOutcome, len(productCodes))
	var wg sync.WaitGroup

	for _, productCode := range productCodes {
		if err := ctx.Err(); err != nil {
			logrus.Warn("Execução cancelada, interrompendo o despacho de produtos")
			break
		}

		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(code string) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			outcomes <- s.detectionService.ProcessProduct(ctx, code)
		}(productCode)
	}

	wg.Wait()
	close(outcomes)

	var summary domain.RunSummary
	for outcome := range outcomes {
		summary.Add(outcome)
		if outcome.Status == domain.TaskFailed {
			logrus.WithFields(logrus.Fields{
				"product_code": outcome.Key,
				"reason":       outcome.Reason,
			}).Warn("Produto com falha na detecção de promoções")
		}
	}

	return summary
}

// TriggerManualSync inicia manualmente uma detecção de promoções
func (s *PromotionDetectionSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Detecção de promoções já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando detecção manual de promoções")
	go s.runDetection(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *PromotionDetectionSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"window_size":            s.config.WindowSize,
		"threshold":              s.config.Threshold,
		"lookback_days":          s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run_succeeded":     s.lastSummary.Succeeded,
		"last_run_skipped":       s.lastSummary.Skipped,
		"last_run_failed":        s.lastSummary.Failed,
	}
}
