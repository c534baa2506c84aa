package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eveneto/sistema-crm-simples-sub001/internal/domain"
)

var dealColumns = []string{
	"id", "tenant_id", "value", "stage_id", "status", "probability",
	"expected_close_date", "closed_at", "created_at", "updated_at",
}

func TestDealRepository_ListDeals(t *testing.T) {
	createdAt := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	closedAt := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	expectedClose := time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC)
	since := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filter   domain.DealFilter
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, deals []domain.Deal, err error)
	}{
		{
			name: "fechados desde uma data mais os abertos",
			filter: domain.DealFilter{
				Statuses:    []domain.DealStatus{domain.DealStatusWon, domain.DealStatusLost},
				ClosedSince: &since,
				IncludeOpen: true,
			},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT d.id, (.+) FROM deals d WHERE (.+) ORDER BY d.created_at ASC, d.id ASC`).
					WithArgs("TEN001", "won", "lost", since, "open").
					WillReturnRows(sqlmock.NewRows(dealColumns).
						AddRow("D1", "TEN001", "1500.50", "STG1", "won", nil, nil, closedAt, createdAt, closedAt).
						AddRow("D2", "TEN001", "800", "STG2", "open", int64(60), expectedClose, nil, createdAt, createdAt))
			},
			validate: func(t *testing.T, deals []domain.Deal, err error) {
				require.NoError(t, err)
				require.Len(t, deals, 2)

				assert.Equal(t, "D1", deals[0].ID)
				assert.Equal(t, "1500.5", deals[0].Value.String())
				assert.Equal(t, domain.DealStatusWon, deals[0].Status)
				assert.Nil(t, deals[0].Probability)
				assert.Equal(t, 0, deals[0].ProbabilityOrZero())
				require.NotNil(t, deals[0].ClosedAt)
				assert.Equal(t, closedAt, *deals[0].ClosedAt)
				assert.Nil(t, deals[0].ExpectedCloseDate)

				assert.Equal(t, domain.DealStatusOpen, deals[1].Status)
				require.NotNil(t, deals[1].Probability)
				assert.Equal(t, 60, *deals[1].Probability)
				require.NotNil(t, deals[1].ExpectedCloseDate)
				assert.Equal(t, expectedClose, *deals[1].ExpectedCloseDate)
				assert.Nil(t, deals[1].ClosedAt)
			},
		},
		{
			name:   "apenas abertos",
			filter: domain.DealFilter{Statuses: []domain.DealStatus{domain.DealStatusOpen}},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT d.id, (.+) FROM deals d WHERE (.+)`).
					WithArgs("TEN001", "open").
					WillReturnRows(sqlmock.NewRows(dealColumns))
			},
			validate: func(t *testing.T, deals []domain.Deal, err error) {
				require.NoError(t, err)
				assert.NotNil(t, deals)
				assert.Empty(t, deals)
			},
		},
		{
			name:   "erro do banco",
			filter: domain.DealFilter{IncludeOpen: true},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT d.id, (.+) FROM deals d`).
					WithArgs("TEN001").
					WillReturnError(errors.New("connection refused"))
			},
			validate: func(t *testing.T, deals []domain.Deal, err error) {
				require.Error(t, err)
				assert.Nil(t, deals)
				assert.Contains(t, err.Error(), "connection refused")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			repo := NewDealRepository(db, time.Second)
			deals, err := repo.ListDeals(context.Background(), "TEN001", tt.filter)

			tt.validate(t, deals, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDealRepository_LastChanges(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dealsChanged := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	stageChanged := time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT tenant_id, MAX\(updated_at\), COUNT\(\*\) FROM deals GROUP BY tenant_id`).
		WillReturnRows(sqlmock.NewRows([]string{"tenant_id", "max", "count"}).
			AddRow("TEN001", dealsChanged, 10).
			AddRow("TEN002", dealsChanged, 3))
	mock.ExpectQuery(`SELECT tenant_id, MAX\(updated_at\), COUNT\(\*\) FROM pipeline_stages GROUP BY tenant_id`).
		WillReturnRows(sqlmock.NewRows([]string{"tenant_id", "max", "count"}).
			AddRow("TEN001", stageChanged, 5).
			AddRow("TEN003", stageChanged, 4))

	repo := NewDealRepository(db, 0)
	changes, err := repo.LastChanges(context.Background())

	require.NoError(t, err)
	require.Len(t, changes, 3)
	assert.Equal(t, domain.TenantChange{TenantID: "TEN001", ChangedAt: stageChanged, Rows: 15}, changes[0])
	assert.Equal(t, domain.TenantChange{TenantID: "TEN002", ChangedAt: dealsChanged, Rows: 3}, changes[1])
	assert.Equal(t, domain.TenantChange{TenantID: "TEN003", ChangedAt: stageChanged, Rows: 4}, changes[2])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealFilterClause(t *testing.T) {
	tests := []struct {
		name     string
		filter   domain.DealFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "sem filtro",
			filter:   domain.DealFilter{},
			wantSQL:  "(d.tenant_id = ?)",
			wantArgs: []any{"TEN001"},
		},
		{
			name:     "abertos sem restrição de fechados",
			filter:   domain.DealFilter{IncludeOpen: true},
			wantSQL:  "(d.tenant_id = ?)",
			wantArgs: []any{"TEN001"},
		},
		{
			name:     "apenas ganhos",
			filter:   domain.DealFilter{Statuses: []domain.DealStatus{domain.DealStatusWon}},
			wantSQL:  "(d.tenant_id = ? AND (d.status IN (?)))",
			wantArgs: []any{"TEN001", "won"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := dealFilterClause("TEN001", tt.filter).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
