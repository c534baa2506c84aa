package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eveneto/sistema-crm-simples-sub001/internal/domain"
)

func TestStageRepository_ListStages(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT s.id, s.tenant_id, s.name, s.color, s.position FROM pipeline_stages s WHERE s.tenant_id = \$1 ORDER BY s.position ASC, s.id ASC`).
		WithArgs("TEN001").
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name", "color", "position"}).
			AddRow("STG1", "TEN001", "Prospecção", "#3b82f6", 1).
			AddRow("STG2", "TEN001", "Proposta", "#f59e0b", 2))

	repo := NewStageRepository(db, time.Second)
	stages, err := repo.ListStages(context.Background(), "TEN001")

	require.NoError(t, err)
	assert.Equal(t, []domain.Stage{
		{ID: "STG1", TenantID: "TEN001", Name: "Prospecção", Color: "#3b82f6", Order: 1},
		{ID: "STG2", TenantID: "TEN001", Name: "Proposta", Color: "#f59e0b", Order: 2},
	}, stages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStageRepository_ListStages_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM pipeline_stages s`).
		WithArgs("TEN404").
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name", "color", "position"}))

	stages, err := NewStageRepository(db, 0).ListStages(context.Background(), "TEN404")

	require.NoError(t, err)
	assert.Empty(t, stages)
}
