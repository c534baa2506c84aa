package handler

import (
	"context"
	"net/http"

	"github.com/Eveneto/sistema-crm-simples-sub001/internal/usecases/reporting"
	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/apiErrors"
	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/log"
)

// InvalidationJob é o agendador de invalidação exposto para administração
type InvalidationJob interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// InvalidateCache descarta os resultados guardados do tenant do usuário
func InvalidateCache(service reporting.CacheInvalidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID, ok := tenantFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.InvalidateTenant(r.Context(), tenantID); err != nil {
			writeServiceError(w, r, err, "Erro ao invalidar cache de relatórios")
			return
		}

		log.ForContext(r.Context()).WithField("tenant_id", tenantID).Info("Cache invalidado manualmente")
		writeJSON(w, r, map[string]any{
			"message":   "Cache invalidado com sucesso",
			"tenant_id": tenantID,
		})
	}
}

// RunCacheInvalidation dispara manualmente a rodada de invalidação de todos os tenants
func RunCacheInvalidation(job InvalidationJob) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de invalidação de cache não disponível", nil)
			return
		}

		started := job.TriggerManualSync(r.Context())

		message := "Invalidação de cache iniciada com sucesso"
		if !started {
			message = "Invalidação de cache já está em andamento"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": message,
			"started": started,
		})
	}
}

// GetCacheInvalidationStatus retorna o status do agendador de invalidação
func GetCacheInvalidationStatus(job InvalidationJob) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de invalidação de cache não disponível", nil)
			return
		}

		writeJSON(w, r, job.GetStatus())
	}
}
