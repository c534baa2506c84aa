package domain

import "time"

type Period string

const (
	Period7Days  Period = "7d"
	Period30Days Period = "30d"
	Period90Days Period = "90d"
)

// DateRange é um intervalo semiaberto [Start, End)
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r DateRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Contains verifica se t está dentro de [Start, End)
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// IncludesDay verifica se o dia do calendário de date pertence ao intervalo.
// O primeiro dia é o dia de Start e o último é o dia que contém o instante anterior a End.
func (r DateRange) IncludesDay(date time.Time) bool {
	loc := r.Start.Location()
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)

	sy, sm, sd := r.Start.Date()
	firstDay := time.Date(sy, sm, sd, 0, 0, 0, 0, loc)

	return !day.Before(firstDay) && day.Before(r.End)
}
