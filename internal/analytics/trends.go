package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Eveneto/sistema-crm-simples-sub001/internal/domain"
	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/utils"
)

const trailingMonths = 12

// BuildTrendsData monta a série mensal dos últimos 12 meses e a comparação ano a ano.
// Negócios fechados depois de now são desconsiderados.
func BuildTrendsData(deals []domain.Deal, now time.Time) *domain.TrendsData {
	loc := now.Location()
	currentMonth := utils.StartOfMonth(now, loc)
	windowStart := currentMonth.AddDate(0, -(trailingMonths - 1), 0)

	won := make([]domain.Deal, 0, len(deals))
	for _, deal := range deals {
		if deal.IsWon() && deal.ClosedAt.Before(now) {
			won = append(won, deal)
		}
	}

	return &domain.TrendsData{
		MonthOverMonth: monthOverMonth(won, windowStart, currentMonth, loc),
		YearOverYear:   yearOverYear(won, now),
	}
}

func monthOverMonth(won []domain.Deal, windowStart, currentMonth time.Time, loc *time.Location) []domain.MonthlyRevenue {
	start := currentMonth
	for _, deal := range won {
		month := utils.StartOfMonth(*deal.ClosedAt, loc)
		if month.Before(start) {
			start = month
		}
	}
	if start.Before(windowStart) {
		start = windowStart
	}

	size := utils.MonthsBetween(start, currentMonth) + 1
	revenue := make([]decimal.Decimal, size)
	counts := make([]int, size)
	for i := range revenue {
		revenue[i] = decimal.Zero
	}
	beforeStart := decimal.Zero
	previousMonth := start.AddDate(0, -1, 0)

	for _, deal := range won {
		month := utils.StartOfMonth(*deal.ClosedAt, loc)
		if month.Equal(previousMonth) {
			beforeStart = beforeStart.Add(deal.Value)
			continue
		}

		offset := utils.MonthsBetween(start, month)
		if offset < 0 || offset >= size {
			continue
		}
		revenue[offset] = revenue[offset].Add(deal.Value)
		counts[offset]++
	}

	series := make([]domain.MonthlyRevenue, size)
	previous := utils.RoundMoney(beforeStart)
	for i := range series {
		current := utils.RoundMoney(revenue[i])
		series[i] = domain.MonthlyRevenue{
			Month:   start.AddDate(0, i, 0).Format(utils.MonthLayout),
			Revenue: current,
			Deals:   counts[i],
			Growth:  BuildMetricWithTrend(current, previous),
		}
		previous = current
	}

	return series
}

func yearOverYear(won []domain.Deal, now time.Time) domain.YearOverYear {
	currentWindow := domain.DateRange{
		Start: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
		End:   now,
	}
	previousWindow := domain.DateRange{
		Start: currentWindow.Start.AddDate(-1, 0, 0),
		End:   sameInstantLastYear(now),
	}

	current := RealizedRevenue(won, currentWindow)
	previous := RealizedRevenue(won, previousWindow)

	return domain.YearOverYear{
		CurrentYear:   currentWindow.Start.Year(),
		PreviousYear:  previousWindow.Start.Year(),
		CurrentTotal:  current,
		PreviousTotal: previous,
		Trend:         BuildMetricWithTrend(current, previous),
	}
}

// sameInstantLastYear recua now um ano. Em 29/02 o resultado para no fim de fevereiro
// em vez de avançar para março.
func sameInstantLastYear(now time.Time) time.Time {
	lastYear := now.AddDate(-1, 0, 0)
	if lastYear.Month() != now.Month() {
		return utils.StartOfMonth(lastYear, now.Location())
	}
	return lastYear
}
