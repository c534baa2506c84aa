package reporting

import (
	"context"
	"strconv"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Eveneto/sistema-crm-simples-sub001/infrastructure/cache"
	"github.com/Eveneto/sistema-crm-simples-sub001/infrastructure/repository"
	"github.com/Eveneto/sistema-crm-simples-sub001/internal/analytics"
	"github.com/Eveneto/sistema-crm-simples-sub001/internal/domain"
	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/apiErrors"
)

const (
	endpointRevenue     = "revenue"
	endpointPipeline    = "pipeline"
	endpointPerformance = "performance"
	endpointForecast    = "forecast"
	endpointTrends      = "trends"
)

// Service busca as linhas do tenant e delega os cálculos para o pacote analytics
type Service struct {
	dealRepository  repository.DealRepository
	stageRepository repository.StageRepository
	policy          analytics.ForecastPolicy
	nowFn           analytics.Clock
	resultCache     cache.ResultCache
	useCache        bool
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(
	dealRepo repository.DealRepository,
	stageRepo repository.StageRepository,
	policy analytics.ForecastPolicy,
) CachedReporter {
	return &Service{
		dealRepository:  dealRepo,
		stageRepository: stageRepo,
		policy:          policy,
		nowFn:           analytics.SystemClock,
		useCache:        false, // Inicialmente não usa cache
	}
}

// WithCache habilita o cache de resultados
func (s *Service) WithCache(resultCache cache.ResultCache) *Service {
	s.resultCache = resultCache
	s.useCache = resultCache != nil
	return s
}

// WithClock troca o relógio usado como "agora" nos cálculos
func (s *Service) WithClock(clock analytics.Clock) *Service {
	s.nowFn = clock
	return s
}

func (s *Service) GetRevenue(ctx context.Context, tenantID string, period domain.Period) (*domain.RevenueData, error) {
	if tenantID == "" {
		return nil, ErrTenantRequired
	}

	now := s.nowFn()
	current, err := analytics.CalculateDateRange(period, now)
	if err != nil {
		return nil, err
	}
	previous := analytics.CalculatePreviousPeriod(current)

	return cached(ctx, s, tenantID, endpointRevenue, string(period), func() (*domain.RevenueData, error) {
		deals, err := s.listDeals(ctx, tenantID, domain.DealFilter{
			Statuses:    []domain.DealStatus{domain.DealStatusWon},
			ClosedSince: &previous.Start,
			IncludeOpen: true,
		})
		if err != nil {
			return nil, err
		}

		return analytics.BuildRevenueData(deals, period, now)
	})
}

func (s *Service) GetPipeline(ctx context.Context, tenantID string) (*domain.PipelineDistribution, error) {
	if tenantID == "" {
		return nil, ErrTenantRequired
	}

	return cached(ctx, s, tenantID, endpointPipeline, "", func() (*domain.PipelineDistribution, error) {
		var (
			deals  []domain.Deal
			stages []domain.Stage
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			deals, err = s.listDeals(gctx, tenantID, domain.DealFilter{
				Statuses: []domain.DealStatus{domain.DealStatusOpen},
			})
			return err
		})
		g.Go(func() error {
			var err error
			stages, err = s.stageRepository.ListStages(gctx, tenantID)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"tenant_id": tenantID,
					"error":     err,
				}).Error("Erro ao buscar etapas do funil")
				return NewReportingError(ErrFetchStages, apiErrors.ErrDatabaseOperation, tenantID, err.Error())
			}
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		return analytics.BuildPipelineDistribution(deals, stages), nil
	})
}

// GetPerformance calcula as métricas de um intervalo explícito. A chave de cache usa os limites do intervalo.
func (s *Service) GetPerformance(ctx context.Context, tenantID string, dateRange domain.DateRange) (*domain.PerformanceMetrics, error) {
	if tenantID == "" {
		return nil, ErrTenantRequired
	}

	if dateRange.End.Before(dateRange.Start) {
		return nil, analytics.NewInvalidDateRangeError("range end is before start")
	}

	params := dateRange.Start.UTC().Format(time.RFC3339) + "_" + dateRange.End.UTC().Format(time.RFC3339)
	return s.performance(ctx, tenantID, dateRange, params)
}

// GetPeriodPerformance calcula as métricas da janela móvel do período. A chave de cache é o próprio período.
func (s *Service) GetPeriodPerformance(ctx context.Context, tenantID string, period domain.Period) (*domain.PerformanceMetrics, error) {
	if tenantID == "" {
		return nil, ErrTenantRequired
	}

	dateRange, err := analytics.CalculateDateRange(period, s.nowFn())
	if err != nil {
		return nil, err
	}

	return s.performance(ctx, tenantID, dateRange, string(period))
}

func (s *Service) performance(ctx context.Context, tenantID string, dateRange domain.DateRange, params string) (*domain.PerformanceMetrics, error) {
	previous := analytics.CalculatePreviousPeriod(dateRange)

	return cached(ctx, s, tenantID, endpointPerformance, params, func() (*domain.PerformanceMetrics, error) {
		deals, err := s.listDeals(ctx, tenantID, domain.DealFilter{
			Statuses:    []domain.DealStatus{domain.DealStatusWon, domain.DealStatusLost},
			ClosedSince: &previous.Start,
		})
		if err != nil {
			return nil, err
		}

		return analytics.BuildPerformanceMetrics(deals, dateRange), nil
	})
}

func (s *Service) GetForecast(ctx context.Context, tenantID string, months int) (*domain.ForecastData, error) {
	if tenantID == "" {
		return nil, ErrTenantRequired
	}

	if err := analytics.ValidateForecastMonths(months); err != nil {
		return nil, err
	}

	now := s.nowFn()

	return cached(ctx, s, tenantID, endpointForecast, strconv.Itoa(months), func() (*domain.ForecastData, error) {
		deals, err := s.listDeals(ctx, tenantID, domain.DealFilter{
			Statuses: []domain.DealStatus{domain.DealStatusOpen},
		})
		if err != nil {
			return nil, err
		}

		return analytics.BuildForecast(deals, months, now, s.policy)
	})
}

func (s *Service) GetTrends(ctx context.Context, tenantID string) (*domain.TrendsData, error) {
	if tenantID == "" {
		return nil, ErrTenantRequired
	}

	now := s.nowFn()
	since := trendsHistoryStart(now)

	return cached(ctx, s, tenantID, endpointTrends, "", func() (*domain.TrendsData, error) {
		deals, err := s.listDeals(ctx, tenantID, domain.DealFilter{
			Statuses:    []domain.DealStatus{domain.DealStatusWon},
			ClosedSince: &since,
		})
		if err != nil {
			return nil, err
		}

		return analytics.BuildTrendsData(deals, now), nil
	})
}

// trendsHistoryStart devolve 1º de janeiro do ano anterior, que já cobre a janela de 12 meses
// com o mês anterior a ela
func trendsHistoryStart(now time.Time) time.Time {
	return time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, now.Location())
}

func (s *Service) InvalidateTenant(ctx context.Context, tenantID string) error {
	if tenantID == "" {
		return ErrTenantRequired
	}

	if !s.useCache {
		return nil
	}

	if err := s.resultCache.Invalidate(ctx, tenantID); err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"error":     err,
		}).Error("Erro ao invalidar cache de relatórios")
		return NewReportingError(ErrInvalidateCache, apiErrors.ErrCacheOperation, tenantID, err.Error())
	}

	logrus.WithField("tenant_id", tenantID).Info("Cache de relatórios invalidado")
	return nil
}

func (s *Service) listDeals(ctx context.Context, tenantID string, filter domain.DealFilter) ([]domain.Deal, error) {
	deals, err := s.dealRepository.ListDeals(ctx, tenantID, filter)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"statuses":  filter.Statuses,
			"error":     err,
		}).Error("Erro ao buscar negócios do tenant")
		return nil, NewReportingError(ErrFetchDeals, apiErrors.ErrDatabaseOperation, tenantID,
			pkgerrors.Wrapf(err, "listando negócios").Error())
	}

	return deals, nil
}

// cached tenta o cache antes de calcular. Falhas do cache só geram log: o relatório é calculado assim mesmo.
func cached[T any](ctx context.Context, s *Service, tenantID, endpoint, params string, build func() (*T, error)) (*T, error) {
	if s.useCache {
		var hit T
		found, err := s.resultCache.Load(ctx, tenantID, endpoint, params, &hit)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"tenant_id": tenantID,
				"endpoint":  endpoint,
				"error":     err,
			}).Warn("Erro ao ler cache de relatórios, calculando novamente")
		}
		if found {
			logrus.WithFields(logrus.Fields{
				"tenant_id": tenantID,
				"endpoint":  endpoint,
			}).Debug("Relatório servido do cache")
			return &hit, nil
		}
	}

	result, err := build()
	if err != nil {
		return nil, err
	}

	if s.useCache {
		if err := s.resultCache.Save(ctx, tenantID, endpoint, params, result); err != nil {
			logrus.WithFields(logrus.Fields{
				"tenant_id": tenantID,
				"endpoint":  endpoint,
				"error":     err,
			}).Warn("Erro ao gravar cache de relatórios")
		}
	}

	return result, nil
}
