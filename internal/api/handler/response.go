package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"

	"github.com/Eveneto/sistema-crm-simples-sub001/internal/analytics"
	"github.com/Eveneto/sistema-crm-simples-sub001/internal/usecases/reporting"
	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/apiErrors"
	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/log"
	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON envia a resposta com status 200
func writeJSON(w http.ResponseWriter, r *http.Request, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// tenantFromRequest devolve o tenant do token ou responde 401
func tenantFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return "", false
	}

	if claims.TenantID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingTenant, "Token sem tenant associado", nil)
		return "", false
	}

	return claims.TenantID, true
}

// writeServiceError traduz os erros do domínio para a resposta da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var analyticsErr *analytics.AnalyticsError
	if pkgerrors.As(err, &analyticsErr) {
		logger.Warn(message)
		apiErrors.WriteError(w, analyticsErr.Code, analyticsErr.Details, map[string]string{"field": analyticsErr.Field})
		return
	}

	if analytics.IsInvalidArgument(err) {
		logger.Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return
	}

	var reportingErr *reporting.ReportingError
	if pkgerrors.As(err, &reportingErr) {
		logger.WithField("tenant_id", reportingErr.TenantID).Error(message)
		apiErrors.WriteError(w, reportingErr.Code, message, nil)
		return
	}

	if pkgerrors.Is(err, reporting.ErrTenantRequired) {
		apiErrors.WriteError(w, apiErrors.ErrMissingTenant, message, nil)
		return
	}

	logger.Error(message)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}
