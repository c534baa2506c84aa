package reporting

import (
	"context"

	"github.com/Eveneto/sistema-crm-simples-sub001/internal/domain"
)

// Reporter expõe os relatórios analíticos de um tenant
type Reporter interface {
	// GetRevenue obtém a receita realizada e esperada do período com a série diária
	GetRevenue(ctx context.Context, tenantID string, period domain.Period) (*domain.RevenueData, error)

	// GetPipeline obtém a distribuição dos negócios abertos por etapa do funil
	GetPipeline(ctx context.Context, tenantID string) (*domain.PipelineDistribution, error)

	// GetPerformance obtém taxa de conversão, ticket médio e ciclo médio do intervalo
	GetPerformance(ctx context.Context, tenantID string, dateRange domain.DateRange) (*domain.PerformanceMetrics, error)

	// GetPeriodPerformance obtém as métricas de desempenho dos últimos N dias do período
	GetPeriodPerformance(ctx context.Context, tenantID string, period domain.Period) (*domain.PerformanceMetrics, error)

	// GetForecast projeta a receita dos próximos meses em três cenários
	GetForecast(ctx context.Context, tenantID string, months int) (*domain.ForecastData, error)

	// GetTrends obtém as séries mês a mês e ano a ano
	GetTrends(ctx context.Context, tenantID string) (*domain.TrendsData, error)
}

// CacheInvalidator descarta os resultados guardados de um tenant
type CacheInvalidator interface {
	InvalidateTenant(ctx context.Context, tenantID string) error
}

// CachedReporter é a interface completa usada pela API
type CachedReporter interface {
	Reporter
	CacheInvalidator
}
