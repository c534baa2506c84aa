package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/Eveneto/sistema-crm-simples-sub001/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// ComputeTrendPercent calcula a variação percentual inteira entre current e previous.
// Quando previous é zero o resultado é zero.
func ComputeTrendPercent(current, previous decimal.Decimal) int64 {
	if previous.IsZero() {
		return 0
	}

	return current.Sub(previous).Mul(hundred).Div(previous).Round(0).IntPart()
}

// BuildMetricWithTrend é o único construtor de métricas comparativas
func BuildMetricWithTrend(current, previous decimal.Decimal) domain.MetricWithTrend {
	return domain.MetricWithTrend{
		Current:      current,
		Previous:     previous,
		TrendPercent: ComputeTrendPercent(current, previous),
	}
}
