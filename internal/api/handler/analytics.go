package handler

import (
	"net/http"
	"time"

	"github.com/Eveneto/sistema-crm-simples-sub001/internal/analytics"
	"github.com/Eveneto/sistema-crm-simples-sub001/internal/domain"
	"github.com/Eveneto/sistema-crm-simples-sub001/internal/usecases/reporting"
	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/apiErrors"
	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/utils"
)

// AnalyticsOptions carrega o fuso usado para ancorar as datas do calendário
type AnalyticsOptions struct {
	Location *time.Location
}

func (o AnalyticsOptions) location() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

// periodFromQuery lê ?period=, usando 30d quando ausente
func periodFromQuery(r *http.Request) (domain.Period, error) {
	raw := r.URL.Query().Get("period")
	if raw == "" {
		return analytics.DefaultPeriod, nil
	}
	return analytics.ParsePeriod(raw)
}

// GetRevenue retorna a receita realizada e esperada do período
func GetRevenue(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID, ok := tenantFromRequest(w, r)
		if !ok {
			return
		}

		period, err := periodFromQuery(r)
		if err != nil {
			writeServiceError(w, r, err, "Período inválido")
			return
		}

		revenue, err := service.GetRevenue(r.Context(), tenantID, period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular receita")
			return
		}

		writeJSON(w, r, revenue)
	}
}

// GetPipeline retorna a distribuição dos negócios abertos por etapa
func GetPipeline(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID, ok := tenantFromRequest(w, r)
		if !ok {
			return
		}

		pipeline, err := service.GetPipeline(r.Context(), tenantID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular distribuição do funil")
			return
		}

		writeJSON(w, r, pipeline)
	}
}

// GetPerformance aceita ?period= ou o par ?start_date=&end_date= (data final inclusiva)
func GetPerformance(service reporting.Reporter, opts AnalyticsOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID, ok := tenantFromRequest(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		startDate, endDate := query.Get("start_date"), query.Get("end_date")

		if startDate == "" && endDate == "" {
			period, err := periodFromQuery(r)
			if err != nil {
				writeServiceError(w, r, err, "Período inválido")
				return
			}

			performance, err := service.GetPeriodPerformance(r.Context(), tenantID, period)
			if err != nil {
				writeServiceError(w, r, err, "Erro ao calcular métricas de desempenho")
				return
			}

			writeJSON(w, r, performance)
			return
		}

		if startDate == "" || endDate == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "start_date e end_date devem ser informados juntos", nil)
			return
		}
		if query.Get("period") != "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Informe period ou start_date/end_date, não ambos", nil)
			return
		}

		start, err := utils.ParseDate(startDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato YYYY-MM-DD", nil)
			return
		}

		end, err := utils.ParseDate(endDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato YYYY-MM-DD", nil)
			return
		}

		dateRange, err := analytics.CustomDateRange(*start, *end, opts.location())
		if err != nil {
			writeServiceError(w, r, err, "Intervalo de datas inválido")
			return
		}

		performance, err := service.GetPerformance(r.Context(), tenantID, dateRange)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular métricas de desempenho")
			return
		}

		writeJSON(w, r, performance)
	}
}

// GetForecast projeta a receita para ?months= (1 a 12, padrão 3)
func GetForecast(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID, ok := tenantFromRequest(w, r)
		if !ok {
			return
		}

		months, err := analytics.ParseForecastMonths(r.URL.Query().Get("months"))
		if err != nil {
			writeServiceError(w, r, err, "Horizonte de previsão inválido")
			return
		}

		forecast, err := service.GetForecast(r.Context(), tenantID, months)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular previsão de receita")
			return
		}

		writeJSON(w, r, forecast)
	}
}

// GetTrends retorna as séries mês a mês e ano a ano
func GetTrends(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID, ok := tenantFromRequest(w, r)
		if !ok {
			return
		}

		trends, err := service.GetTrends(r.Context(), tenantID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular tendências")
			return
		}

		writeJSON(w, r, trends)
	}
}
