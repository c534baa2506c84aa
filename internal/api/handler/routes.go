package handler

import (
	"net/http"

	"github.com/Eveneto/sistema-crm-simples-sub001/internal/api/handler/router"
	"github.com/Eveneto/sistema-crm-simples-sub001/internal/usecases/reporting"
	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/middleware"
)

func Healthcheck(dependencies map[string]Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(dependencies),
		},
	}
}

func Analytics(service reporting.CachedReporter, opts AnalyticsOptions) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/revenue",
			Method:      http.MethodGet,
			Handler:     GetRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/pipeline",
			Method:      http.MethodGet,
			Handler:     GetPipeline(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/performance",
			Method:      http.MethodGet,
			Handler:     GetPerformance(service, opts),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/forecast",
			Method:      http.MethodGet,
			Handler:     GetForecast(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/trends",
			Method:      http.MethodGet,
			Handler:     GetTrends(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/cache/invalidate",
			Method:      http.MethodPost,
			Handler:     InvalidateCache(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CacheInvalidation(job InvalidationJob) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/cache-invalidation/run",
			Method:      http.MethodPost,
			Handler:     RunCacheInvalidation(job),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/cache-invalidation/status",
			Method:      http.MethodGet,
			Handler:     GetCacheInvalidationStatus(job),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
