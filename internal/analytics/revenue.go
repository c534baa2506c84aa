package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Eveneto/sistema-crm-simples-sub001/internal/domain"
	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/utils"
)

// BuildRevenueData consolida a receita realizada e esperada do período com a série diária
func BuildRevenueData(deals []domain.Deal, period domain.Period, now time.Time) (*domain.RevenueData, error) {
	current, err := CalculateDateRange(period, now)
	if err != nil {
		return nil, err
	}

	realized := RealizedRevenue(deals, current)
	previous := RealizedRevenue(deals, CalculatePreviousPeriod(current))

	return &domain.RevenueData{
		Period:   period,
		Range:    current,
		Realized: realized,
		Expected: ExpectedRevenue(deals, current),
		Series:   DailyRevenueSeries(deals, current),
		Trend:    BuildMetricWithTrend(realized, previous),
	}, nil
}

// RealizedRevenue soma o valor dos negócios ganhos fechados dentro do intervalo
func RealizedRevenue(deals []domain.Deal, r domain.DateRange) decimal.Decimal {
	total := decimal.Zero
	for _, deal := range deals {
		if deal.IsWon() && r.Contains(*deal.ClosedAt) {
			total = total.Add(deal.Value)
		}
	}
	return utils.RoundMoney(total)
}

// ExpectedRevenue soma o valor ponderado dos negócios abertos com fechamento previsto no intervalo
func ExpectedRevenue(deals []domain.Deal, r domain.DateRange) decimal.Decimal {
	total := decimal.Zero
	for _, deal := range deals {
		if !deal.IsOpen() || deal.ExpectedCloseDate == nil {
			continue
		}
		if r.IncludesDay(*deal.ExpectedCloseDate) {
			total = total.Add(deal.WeightedValue())
		}
	}
	return utils.RoundMoney(total)
}

// DailyRevenueSeries devolve um ponto por dia do intervalo, preenchendo com zero os dias sem vendas
func DailyRevenueSeries(deals []domain.Deal, r domain.DateRange) []domain.RevenuePoint {
	loc := r.Start.Location()
	days := calendarDays(r)

	series := make([]domain.RevenuePoint, len(days))
	index := make(map[string]int, len(days))
	for i, day := range days {
		key := day.Format(utils.DateLayout)
		series[i] = domain.RevenuePoint{Date: key, Revenue: decimal.Zero}
		index[key] = i
	}

	for _, deal := range deals {
		if !deal.IsWon() || !r.Contains(*deal.ClosedAt) {
			continue
		}

		i, ok := index[deal.ClosedAt.In(loc).Format(utils.DateLayout)]
		if !ok {
			continue
		}

		series[i].Revenue = series[i].Revenue.Add(deal.Value)
		series[i].Deals++
	}

	for i := range series {
		series[i].Revenue = utils.RoundMoney(series[i].Revenue)
	}

	return series
}
