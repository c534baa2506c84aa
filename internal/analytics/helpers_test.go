package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Eveneto/sistema-crm-simples-sub001/internal/domain"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func intPtr(i int) *int {
	return &i
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func wonDeal(id, value string, createdAt, closedAt time.Time) domain.Deal {
	return domain.Deal{
		ID:        id,
		TenantID:  "TEN001",
		Value:     dec(value),
		StageID:   "STG-WON",
		Status:    domain.DealStatusWon,
		ClosedAt:  timePtr(closedAt),
		CreatedAt: createdAt,
		UpdatedAt: closedAt,
	}
}

func lostDeal(id, value string, closedAt time.Time) domain.Deal {
	return domain.Deal{
		ID:        id,
		TenantID:  "TEN001",
		Value:     dec(value),
		StageID:   "STG-LOST",
		Status:    domain.DealStatusLost,
		ClosedAt:  timePtr(closedAt),
		CreatedAt: closedAt.AddDate(0, 0, -10),
		UpdatedAt: closedAt,
	}
}

func openDeal(id, stageID, value string, probability *int, expectedClose *time.Time) domain.Deal {
	return domain.Deal{
		ID:                id,
		TenantID:          "TEN001",
		Value:             dec(value),
		StageID:           stageID,
		Status:            domain.DealStatusOpen,
		Probability:       probability,
		ExpectedCloseDate: expectedClose,
		CreatedAt:         fixedNow.AddDate(0, -1, 0),
		UpdatedAt:         fixedNow.AddDate(0, -1, 0),
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
