package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Eveneto/sistema-crm-simples-sub001/infrastructure/database/postgres"
	"github.com/Eveneto/sistema-crm-simples-sub001/internal/domain"
)

const (
	stagesTable = "pipeline_stages s"
)

type StageRepository interface {
	ListStages(ctx context.Context, tenantID string) ([]domain.Stage, error)
}

type stageRepository struct {
	conn    postgres.Queryer
	timeout time.Duration
}

func NewStageRepository(conn postgres.Queryer, queryTimeout time.Duration) StageRepository {
	return &stageRepository{
		conn:    conn,
		timeout: queryTimeout,
	}
}

func (r *stageRepository) ListStages(ctx context.Context, tenantID string) ([]domain.Stage, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	sqlQuery, args, err := squirrel.
		Select("s.id", "s.tenant_id", "s.name", "s.color", "s.position").
		From(stagesTable).
		Where(squirrel.Eq{"s.tenant_id": tenantID}).
		OrderBy("s.position ASC", "s.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stages := make([]domain.Stage, 0)
	for rows.Next() {
		var stage domain.Stage
		if err := rows.Scan(&stage.ID, &stage.TenantID, &stage.Name, &stage.Color, &stage.Order); err != nil {
			return nil, fmt.Errorf("erro ao escanear etapa: %w", err)
		}
		stages = append(stages, stage)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stages, nil
}
