package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Eveneto/sistema-crm-simples-sub001/internal/api/handler/router"
	"github.com/Eveneto/sistema-crm-simples-sub001/internal/usecases/reporting"
	"github.com/Eveneto/sistema-crm-simples-sub001/internal/usecases/reporting/mocks"
	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/apiErrors"
	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/middleware"
)

type fakeInvalidationJob struct {
	running   bool
	triggered int
}

func (f *fakeInvalidationJob) TriggerManualSync(ctx context.Context) bool {
	if f.running {
		return false
	}
	f.triggered++
	return true
}

func (f *fakeInvalidationJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": f.running}
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(ctx context.Context) error {
	return f.err
}

func TestInvalidateCache(t *testing.T) {
	tests := []struct {
		name       string
		role       int
		setup      func(service *mocks.MockCachedReporter)
		wantStatus int
		wantCode   string
	}{
		{
			name: "supervisor invalida o próprio tenant",
			role: middleware.RoleSupervisor,
			setup: func(service *mocks.MockCachedReporter) {
				service.EXPECT().InvalidateTenant(gomock.Any(), testTenant).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "cliente não pode invalidar",
			role:       middleware.RoleClient,
			setup:      func(service *mocks.MockCachedReporter) {},
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name: "falha no cache",
			role: middleware.RoleAdmin,
			setup: func(service *mocks.MockCachedReporter) {
				service.EXPECT().InvalidateTenant(gomock.Any(), testTenant).
					Return(reporting.NewReportingError(reporting.ErrInvalidateCache, apiErrors.ErrCacheOperation, testTenant, "redis down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrCacheOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockCachedReporter(ctrl)
			tt.setup(service)

			rec, apiErr := serve(t, service, userClaims(tt.role), http.MethodPost, "/v1/analytics/cache/invalidate")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

func TestCacheInvalidationRoutes(t *testing.T) {
	job := &fakeInvalidationJob{}
	rt := router.New(router.WithRoutes(CacheInvalidation(job)...))

	rec := httptest.NewRecorder()
	withClaims(userClaims(middleware.RoleAdmin), rt).
		ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/cache-invalidation/run", nil))

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, job.triggered)
	assert.Contains(t, rec.Body.String(), `"started":true`)

	job.running = true
	rec = httptest.NewRecorder()
	withClaims(userClaims(middleware.RoleAdmin), rt).
		ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/cache-invalidation/run", nil))

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, job.triggered)
	assert.Contains(t, rec.Body.String(), `"started":false`)

	rec = httptest.NewRecorder()
	withClaims(userClaims(middleware.RoleAdmin), rt).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/cache-invalidation/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sync_running":true`)

	rec = httptest.NewRecorder()
	withClaims(userClaims(middleware.RoleSupervisor), rt).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/cache-invalidation/status", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHealthcheck(t *testing.T) {
	tests := []struct {
		name       string
		deps       map[string]Pinger
		wantStatus int
		wantBody   string
	}{
		{
			name:       "dependências no ar",
			deps:       map[string]Pinger{"postgres": fakePinger{}},
			wantStatus: http.StatusOK,
			wantBody:   `"postgres":"up"`,
		},
		{
			name:       "banco fora do ar",
			deps:       map[string]Pinger{"postgres": fakePinger{err: errors.New("connection refused")}},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"postgres":"down"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := router.New(router.WithRoutes(Healthcheck(tt.deps)...))

			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
