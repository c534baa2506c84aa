package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de relatórios
var (
	ErrTenantRequired = errors.New("tenant ID is required")

	// Erros de banco de dados
	ErrFetchDeals  = errors.New("error fetching deals from database")
	ErrFetchStages = errors.New("error fetching pipeline stages from database")

	// Erros de cache
	ErrInvalidateCache = errors.New("error invalidating cached reports")
)

// ReportingError é um erro com contexto adicional para relatórios
type ReportingError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	TenantID string // Tenant envolvido
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReportingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReportingError) Unwrap() error {
	return e.Err
}

// NewReportingError cria um novo ReportingError
func NewReportingError(err error, code string, tenantID string, details string) *ReportingError {
	return &ReportingError{
		Err:      err,
		Code:     code,
		TenantID: tenantID,
		Details:  details,
	}
}
