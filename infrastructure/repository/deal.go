package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/Eveneto/sistema-crm-simples-sub001/infrastructure/database/postgres"
	"github.com/Eveneto/sistema-crm-simples-sub001/internal/domain"
)

const (
	dealsTable = "deals d"
)

type DealRepository interface {
	ListDeals(ctx context.Context, tenantID string, filter domain.DealFilter) ([]domain.Deal, error)
	LastChanges(ctx context.Context) ([]domain.TenantChange, error)
}

type dealRepository struct {
	conn    postgres.Queryer
	timeout time.Duration
}

func NewDealRepository(conn postgres.Queryer, queryTimeout time.Duration) DealRepository {
	return &dealRepository{
		conn:    conn,
		timeout: queryTimeout,
	}
}

func (r *dealRepository) ListDeals(ctx context.Context, tenantID string, filter domain.DealFilter) ([]domain.Deal, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	sqlQuery, args, err := squirrel.
		Select(
			"d.id",
			"d.tenant_id",
			"d.value",
			"d.stage_id",
			"d.status",
			"d.probability",
			"d.expected_close_date",
			"d.closed_at",
			"d.created_at",
			"d.updated_at",
		).
		From(dealsTable).
		Where(dealFilterClause(tenantID, filter)).
		OrderBy("d.created_at ASC", "d.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	deals := make([]domain.Deal, 0)
	for rows.Next() {
		deal, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear negócio: %w", err)
		}
		deals = append(deals, *deal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return deals, nil
}

// dealFilterClause monta o WHERE: negócios fechados que casam com o filtro, mais os abertos quando pedidos
func dealFilterClause(tenantID string, filter domain.DealFilter) squirrel.Sqlizer {
	where := squirrel.And{squirrel.Eq{"d.tenant_id": tenantID}}

	closed := squirrel.And{}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			statuses[i] = string(status)
		}
		closed = append(closed, squirrel.Eq{"d.status": statuses})
	}
	if filter.ClosedSince != nil {
		closed = append(closed, squirrel.GtOrEq{"d.closed_at": *filter.ClosedSince})
	}

	switch {
	case filter.IncludeOpen && len(closed) > 0:
		where = append(where, squirrel.Or{closed, squirrel.Eq{"d.status": string(domain.DealStatusOpen)}})
	case len(closed) > 0:
		where = append(where, closed)
	}

	return where
}

func scanDeal(rows *sql.Rows) (*domain.Deal, error) {
	var (
		deal              domain.Deal
		status            string
		value             decimal.NullDecimal
		probability       sql.NullInt32
		expectedCloseDate sql.NullTime
		closedAt          sql.NullTime
	)

	if err := rows.Scan(
		&deal.ID,
		&deal.TenantID,
		&value,
		&deal.StageID,
		&status,
		&probability,
		&expectedCloseDate,
		&closedAt,
		&deal.CreatedAt,
		&deal.UpdatedAt,
	); err != nil {
		return nil, err
	}

	deal.Status = domain.DealStatus(status)
	deal.Value = decimal.Zero
	if value.Valid {
		deal.Value = value.Decimal
	}
	if probability.Valid {
		p := int(probability.Int32)
		deal.Probability = &p
	}
	if expectedCloseDate.Valid {
		deal.ExpectedCloseDate = &expectedCloseDate.Time
	}
	if closedAt.Valid {
		deal.ClosedAt = &closedAt.Time
	}

	return &deal, nil
}

// LastChanges devolve a marca d'água de alteração por tenant, considerando negócios e etapas
func (r *dealRepository) LastChanges(ctx context.Context) ([]domain.TenantChange, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	changes := make(map[string]*domain.TenantChange)
	order := make([]string, 0)

	for _, table := range []string{"deals", "pipeline_stages"} {
		sqlQuery, args, err := squirrel.
			Select("tenant_id", "MAX(updated_at)", "COUNT(*)").
			From(table).
			GroupBy("tenant_id").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query: %w", err)
		}

		rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
		if err != nil {
			return nil, fmt.Errorf("erro ao executar a query em %s: %w", table, err)
		}

		for rows.Next() {
			var (
				tenantID  string
				changedAt time.Time
				count     int
			)
			if err := rows.Scan(&tenantID, &changedAt, &count); err != nil {
				rows.Close()
				return nil, fmt.Errorf("erro ao escanear marca d'água: %w", err)
			}

			change, ok := changes[tenantID]
			if !ok {
				change = &domain.TenantChange{TenantID: tenantID}
				changes[tenantID] = change
				order = append(order, tenantID)
			}
			if changedAt.After(change.ChangedAt) {
				change.ChangedAt = changedAt
			}
			change.Rows += count
		}

		err = rows.Err()
		rows.Close()
		if err != nil {
			return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
		}
	}

	result := make([]domain.TenantChange, 0, len(order))
	for _, tenantID := range order {
		result = append(result, *changes[tenantID])
	}

	return result, nil
}

func withQueryTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
