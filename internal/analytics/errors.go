package analytics

import (
	"errors"
	"fmt"

	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/apiErrors"
)

// Erros de argumento inválido
var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrInvalidPeriod         = fmt.Errorf("%w: unsupported period", ErrInvalidArgument)
	ErrInvalidForecastMonths = fmt.Errorf("%w: forecast months out of range", ErrInvalidArgument)
	ErrInvalidDateRange      = fmt.Errorf("%w: start after end", ErrInvalidArgument)
)

// AnalyticsError carrega o código da API junto do erro de validação
type AnalyticsError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Field   string // Parâmetro rejeitado
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AnalyticsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

func NewInvalidPeriodError(raw string) *AnalyticsError {
	return &AnalyticsError{
		Err:     ErrInvalidPeriod,
		Code:    apiErrors.ErrInvalidPeriod,
		Field:   "period",
		Details: fmt.Sprintf("period %q is not one of 7d, 30d, 90d", raw),
	}
}

func NewInvalidForecastMonthsError(months int) *AnalyticsError {
	return &AnalyticsError{
		Err:     ErrInvalidForecastMonths,
		Code:    apiErrors.ErrInvalidForecastMonths,
		Field:   "months",
		Details: fmt.Sprintf("months must be between %d and %d, got %d", MinForecastMonths, MaxForecastMonths, months),
	}
}

func NewInvalidDateRangeError(details string) *AnalyticsError {
	return &AnalyticsError{
		Err:     ErrInvalidDateRange,
		Code:    apiErrors.ErrInvalidDateRange,
		Field:   "range",
		Details: details,
	}
}

// IsInvalidArgument verifica se o erro é de parâmetro fora do domínio
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
