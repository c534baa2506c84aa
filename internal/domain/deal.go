package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DealStatus string

const (
	DealStatusOpen DealStatus = "open"
	DealStatusWon  DealStatus = "won"
	DealStatusLost DealStatus = "lost"
)

var hundred = decimal.NewFromInt(100)

// Deal representa uma oportunidade do funil, já tipada a partir da linha do banco
type Deal struct {
	ID                string          `json:"id"`
	TenantID          string          `json:"tenant_id"`
	Value             decimal.Decimal `json:"value"`
	StageID           string          `json:"stage_id"`
	Status            DealStatus      `json:"status"`
	Probability       *int            `json:"probability"`
	ExpectedCloseDate *time.Time      `json:"expected_close_date"`
	ClosedAt          *time.Time      `json:"closed_at"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (d Deal) IsOpen() bool {
	return d.Status == DealStatusOpen
}

func (d Deal) IsWon() bool {
	return d.Status == DealStatusWon && d.ClosedAt != nil
}

func (d Deal) IsLost() bool {
	return d.Status == DealStatusLost && d.ClosedAt != nil
}

// ProbabilityOrZero devolve a probabilidade do negócio, considerando 0 quando não informada
func (d Deal) ProbabilityOrZero() int {
	if d.Probability == nil {
		return 0
	}
	return *d.Probability
}

// WeightedValue calcula value * probability / 100
func (d Deal) WeightedValue() decimal.Decimal {
	probability := d.ProbabilityOrZero()
	if probability == 0 {
		return decimal.Zero
	}

	return d.Value.Mul(decimal.NewFromInt(int64(probability))).Div(hundred)
}

// DealFilter restringe as linhas buscadas no banco para um relatório
type DealFilter struct {
	Statuses    []DealStatus
	ClosedSince *time.Time
	IncludeOpen bool
}
