package analytics

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Eveneto/sistema-crm-simples-sub001/internal/domain"
	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/apiErrors"
	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/utils"
)

const (
	MinForecastMonths     = 1
	MaxForecastMonths     = 12
	DefaultForecastMonths = 3
)

// ForecastPolicy define os multiplicadores dos cenários e os limites de confiança
type ForecastPolicy struct {
	PessimisticMultiplier     decimal.Decimal
	RealisticMultiplier       decimal.Decimal
	OptimisticMultiplier      decimal.Decimal
	MediumConfidenceThreshold int
	HighConfidenceThreshold   int
}

func DefaultForecastPolicy() ForecastPolicy {
	return ForecastPolicy{
		PessimisticMultiplier:     decimal.NewFromFloat(0.7),
		RealisticMultiplier:       decimal.NewFromInt(1),
		OptimisticMultiplier:      decimal.NewFromFloat(1.3),
		MediumConfidenceThreshold: 5,
		HighConfidenceThreshold:   20,
	}
}

func (p ForecastPolicy) scenarios() []struct {
	label      domain.ScenarioLabel
	multiplier decimal.Decimal
} {
	return []struct {
		label      domain.ScenarioLabel
		multiplier decimal.Decimal
	}{
		{domain.ScenarioPessimistic, p.PessimisticMultiplier},
		{domain.ScenarioRealistic, p.RealisticMultiplier},
		{domain.ScenarioOptimistic, p.OptimisticMultiplier},
	}
}

// Confidence classifica a quantidade de negócios que sustentam a previsão
func (p ForecastPolicy) Confidence(dealsInPipeline int) domain.Confidence {
	switch {
	case dealsInPipeline < p.MediumConfidenceThreshold:
		return domain.ConfidenceLow
	case dealsInPipeline < p.HighConfidenceThreshold:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceHigh
	}
}

// ParseForecastMonths valida o horizonte de previsão recebido na borda
func ParseForecastMonths(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultForecastMonths, nil
	}

	months, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &AnalyticsError{
			Err:     ErrInvalidForecastMonths,
			Code:    apiErrors.ErrInvalidForecastMonths,
			Field:   "months",
			Details: "months must be an integer, got " + strconv.Quote(raw),
		}
	}

	if err := ValidateForecastMonths(months); err != nil {
		return 0, err
	}

	return months, nil
}

func ValidateForecastMonths(months int) error {
	if months < MinForecastMonths || months > MaxForecastMonths {
		return NewInvalidForecastMonthsError(months)
	}
	return nil
}

// BuildForecast projeta a receita dos próximos meses em três cenários.
// O mês corrente é o índice 1.
func BuildForecast(deals []domain.Deal, months int, now time.Time, policy ForecastPolicy) (*domain.ForecastData, error) {
	if err := ValidateForecastMonths(months); err != nil {
		return nil, err
	}

	loc := now.Location()
	firstMonth := utils.StartOfMonth(now, loc)

	baseline := make([]decimal.Decimal, months)
	for i := range baseline {
		baseline[i] = decimal.Zero
	}

	dealsInPipeline := 0
	for _, deal := range deals {
		if !deal.IsOpen() || deal.ExpectedCloseDate == nil {
			continue
		}

		y, m, _ := deal.ExpectedCloseDate.Date()
		offset := utils.MonthsBetween(firstMonth, time.Date(y, m, 1, 0, 0, 0, 0, loc))
		if offset < 0 || offset >= months {
			continue
		}

		baseline[offset] = baseline[offset].Add(deal.WeightedValue())
		dealsInPipeline++
	}

	scenarioPolicies := policy.scenarios()
	totals := make([]domain.ScenarioTotal, len(scenarioPolicies))
	for i, sp := range scenarioPolicies {
		totals[i] = domain.ScenarioTotal{Label: sp.label, Value: decimal.Zero}
	}

	scenarios := make([]domain.ForecastScenario, 0, months*len(scenarioPolicies))
	for offset, value := range baseline {
		month := firstMonth.AddDate(0, offset, 0).Format(utils.MonthLayout)
		for i, sp := range scenarioPolicies {
			projected := utils.RoundMoney(value.Mul(sp.multiplier))
			scenarios = append(scenarios, domain.ForecastScenario{
				Label:          sp.label,
				ProjectedValue: projected,
				MonthIndex:     offset + 1,
				Month:          month,
			})
			totals[i].Value = totals[i].Value.Add(projected)
		}
	}

	confidence := policy.Confidence(dealsInPipeline)

	return &domain.ForecastData{
		Months:    months,
		Scenarios: scenarios,
		Totals:    totals,
		Basis: domain.ForecastBasis{
			DealsInPipeline: dealsInPipeline,
			Confidence:      confidence,
		},
		Confidence: confidence,
	}, nil
}
