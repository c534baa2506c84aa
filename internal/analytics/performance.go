package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Eveneto/sistema-crm-simples-sub001/internal/domain"
	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/utils"
)

var secondsPerDay = decimal.NewFromInt(24 * 60 * 60)

// periodOutcome resume os negócios fechados dentro de um intervalo
type periodOutcome struct {
	won      int
	lost     int
	wonValue decimal.Decimal
	// soma dos ciclos dos negócios ganhos, em segundos
	cycleSeconds decimal.Decimal
}

func summarizeOutcome(deals []domain.Deal, r domain.DateRange) periodOutcome {
	outcome := periodOutcome{wonValue: decimal.Zero, cycleSeconds: decimal.Zero}

	for _, deal := range deals {
		switch {
		case deal.IsWon() && r.Contains(*deal.ClosedAt):
			outcome.won++
			outcome.wonValue = outcome.wonValue.Add(deal.Value)
			outcome.cycleSeconds = outcome.cycleSeconds.Add(cycleSeconds(deal))
		case deal.IsLost() && r.Contains(*deal.ClosedAt):
			outcome.lost++
		}
	}

	return outcome
}

func cycleSeconds(deal domain.Deal) decimal.Decimal {
	return decimal.NewFromInt(int64(deal.ClosedAt.Sub(deal.CreatedAt) / time.Second))
}

// winRate devolve o percentual de negócios ganhos entre os fechados, com uma casa decimal
func (o periodOutcome) winRate() decimal.Decimal {
	closed := o.won + o.lost
	if closed == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(o.won)).Mul(hundred).Div(decimal.NewFromInt(int64(closed))).Round(1)
}

func (o periodOutcome) averageTicket() decimal.Decimal {
	return utils.RoundMoney(utils.SafeDiv(o.wonValue, decimal.NewFromInt(int64(o.won))))
}

// averageCycle devolve a média de dias entre criação e fechamento dos negócios ganhos
func (o periodOutcome) averageCycle() decimal.Decimal {
	return utils.SafeDiv(o.cycleSeconds, secondsPerDay.Mul(decimal.NewFromInt(int64(o.won)))).Round(1)
}

// BuildPerformanceMetrics calcula taxa de conversão, ticket médio e ciclo médio contra o período anterior
func BuildPerformanceMetrics(deals []domain.Deal, r domain.DateRange) *domain.PerformanceMetrics {
	current := summarizeOutcome(deals, r)
	previous := summarizeOutcome(deals, CalculatePreviousPeriod(r))

	return &domain.PerformanceMetrics{
		Range:         r,
		WinRate:       BuildMetricWithTrend(current.winRate(), previous.winRate()),
		AverageTicket: BuildMetricWithTrend(current.averageTicket(), previous.averageTicket()),
		AverageCycle:  BuildMetricWithTrend(current.averageCycle(), previous.averageCycle()),
	}
}
