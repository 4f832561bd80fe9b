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
	"github.com/jocianoperin/PromoPredictor-sub000/internal/usecases/indicating"
	"github.com/jocianoperin/PromoPredictor-sub000/pkg/log"
)

// IndicatorSyncService agenda e executa o cálculo de indicadores, com um
// worker por promoção limitado por semáforo. A falha de uma promoção não
// interrompe as demais do lote.
type IndicatorSyncService struct {
	scheduler           *gocron.Scheduler
	config              config.IndicatorSync
	indicatorService    indicating.IndicatorProcessor
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         domain.RunSummary
}

func NewIndicatorSyncService(
	indicatorService indicating.IndicatorProcessor,
	appConfig *config.Config,
) *IndicatorSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       appConfig.IndicatorSync.CronSchedule,
		"max_concurrent_jobs": appConfig.IndicatorSync.MaxConcurrentJobs,
		"post_promotion_days": appConfig.IndicatorSync.PostPromotionDays,
		"sync_enabled":        appConfig.IndicatorSync.Enabled,
	}).Info("Configuração do agendador de indicadores carregada")

	return &IndicatorSyncService{
		scheduler:        scheduler,
		config:           appConfig.IndicatorSync,
		indicatorService: indicatorService,
	}
}

// Start inicia o agendador
func (s *IndicatorSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cálculo de indicadores desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de cálculo de indicadores")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runIndicators(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar cálculo de indicadores: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de cálculo de indicadores")
		s.scheduler.Stop()
	}()

	return nil
}

// runIndicators recalcula os indicadores de todas as promoções
// persistidas.
func (s *IndicatorSyncService) runIndicators(ctx context.Context) {
	startTime := time.Now()

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Cálculo de indicadores já em andamento, ignorando")
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

	logrus.WithField("correlation_id", correlationID).Info("Iniciando cálculo de indicadores para todas as promoções")

	promotions, err := s.indicatorService.ListPromotions()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar promoções para cálculo de indicadores")
		return
	}

	if len(promotions) == 0 {
		logrus.Info("Nenhuma promoção persistida para cálculo de indicadores")
		return
	}

	summary := s.processPromotions(runCtx, promotions)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"correlation_id": correlationID,
		"duration":       duration.String(),
		"promotions":     len(promotions),
		"succeeded":      summary.Succeeded,
		"skipped":        summary.Skipped,
		"failed":         summary.Failed,
	}).Info("Cálculo de indicadores concluído")

	s.syncMutex.Lock()
	s.lastSummary = summary
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// processPromotions distribui as promoções entre os workers do pool.
// Cada promoção é escrita por exatamente um worker, então não há
// contenção no indicator store.
func (s *IndicatorSyncService) processPromotions(ctx context.Context, promotions []*domain.Promotion) domain.RunSummary {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	outcomes := make(chan domain.TaskOutcome, len(promotions))
	var wg sync.WaitGroup

	for _, promotion := range promotions {
		if err := ctx.Err(); err != nil {
			logrus.Warn("Execução cancelada, interrompendo o despacho de promoções")
			break
		}

		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(p *domain.Promotion) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			outcomes <- s.indicatorService.ProcessPromotion(ctx, p)
		}(promotion)
	}

	wg.Wait()
	close(outcomes)

	var summary domain.RunSummary
	for outcome := range outcomes {
		summary.Add(outcome)
		if outcome.Status == domain.TaskFailed {
			logrus.WithFields(logrus.Fields{
				"promotion_id": outcome.Key,
				"reason":       outcome.Reason,
			}).Warn("Promoção com falha no cálculo de indicadores")
		}
	}

	return summary
}

// TriggerManualSync inicia manualmente um cálculo de indicadores
func (s *IndicatorSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Cálculo de indicadores já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando cálculo manual de indicadores")
	go s.runIndicators(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *IndicatorSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"post_promotion_days":    s.config.PostPromotionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run_succeeded":     s.lastSummary.Succeeded,
		"last_run_skipped":       s.lastSummary.Skipped,
		"last_run_failed":        s.lastSummary.Failed,
	}
}
