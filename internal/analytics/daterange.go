package analytics

import (
	"strings"
	"time"

	"github.com/Eveneto/sistema-crm-simples-sub001/internal/domain"
	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/utils"
)

// Clock devolve o instante atual. Injetado para deixar os cálculos determinísticos.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now().UTC()
}

var periodDays = map[domain.Period]int{
	domain.Period7Days:  7,
	domain.Period30Days: 30,
	domain.Period90Days: 90,
}

const DefaultPeriod = domain.Period30Days

// ParsePeriod valida o token de período recebido na borda
func ParsePeriod(raw string) (domain.Period, error) {
	period := domain.Period(strings.TrimSpace(strings.ToLower(raw)))
	if _, ok := periodDays[period]; !ok {
		return "", NewInvalidPeriodError(raw)
	}
	return period, nil
}

// PeriodDays devolve a quantidade de dias coberta pelo período
func PeriodDays(period domain.Period) (int, error) {
	days, ok := periodDays[period]
	if !ok {
		return 0, NewInvalidPeriodError(string(period))
	}
	return days, nil
}

// CalculateDateRange devolve [now - N dias, now).
// N dias são N*24h exatas, mesmo quando o fuso de now atravessa horário de verão.
func CalculateDateRange(period domain.Period, now time.Time) (domain.DateRange, error) {
	days, err := PeriodDays(period)
	if err != nil {
		return domain.DateRange{}, err
	}

	return domain.DateRange{
		Start: now.Add(-time.Duration(days) * 24 * time.Hour),
		End:   now,
	}, nil
}

// CalculatePreviousPeriod devolve o período imediatamente anterior com a mesma duração
func CalculatePreviousPeriod(current domain.DateRange) domain.DateRange {
	return domain.DateRange{
		Start: current.Start.Add(-current.Duration()),
		End:   current.Start,
	}
}

// CustomDateRange monta o intervalo a partir de datas do calendário.
// Ano, mês e dia são lidos como estão e ancorados em loc.
// A data final é inclusiva: o intervalo termina na meia-noite do dia seguinte.
func CustomDateRange(startDate, endDate time.Time, loc *time.Location) (domain.DateRange, error) {
	start := calendarDate(startDate, loc)
	end := calendarDate(endDate, loc)

	if end.Before(start) {
		return domain.DateRange{}, NewInvalidDateRangeError(
			"start_date " + start.Format(utils.DateLayout) + " is after end_date " + end.Format(utils.DateLayout))
	}

	return domain.DateRange{
		Start: start,
		End:   end.AddDate(0, 0, 1),
	}, nil
}

func calendarDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// calendarDays lista cada dia do calendário coberto pelo intervalo, sem repetições
func calendarDays(r domain.DateRange) []time.Time {
	loc := r.Start.Location()
	days := make([]time.Time, 0, int(r.Duration().Hours()/24)+1)

	for day := utils.StartOfDay(r.Start, loc); day.Before(r.End); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}

	return days
}
