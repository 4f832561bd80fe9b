package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/jocianoperin/PromoPredictor-sub000/internal/scheduler"
	"github.com/jocianoperin/PromoPredictor-sub000/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDetection  = "detection"
	CronJobTypeIndicators = "indicators"
	CronJobTypeAll        = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DetectionSyncService *scheduler.PromotionDetectionSyncService
	IndicatorSyncService *scheduler.IndicatorSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDetection:
			if services.DetectionSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de detecção de promoções não disponível", nil)
				return
			}
			services.DetectionSyncService.TriggerManualSync()

		case CronJobTypeIndicators:
			if services.IndicatorSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de cálculo de indicadores não disponível", nil)
				return
			}
			services.IndicatorSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.DetectionSyncService != nil {
				services.DetectionSyncService.TriggerManualSync()
			}
			if services.IndicatorSyncService != nil {
				services.IndicatorSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: detection, indicators, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"detection":  services.DetectionSyncService.GetStatus(),
			"indicators": services.IndicatorSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
