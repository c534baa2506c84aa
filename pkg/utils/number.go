package utils

import "github.com/shopspring/decimal"

// RoundMoney arredonda valores monetários para duas casas
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	return d.Round(2)
}

// SafeDiv devolve zero quando o divisor é zero
func SafeDiv(numerator, denominator decimal.Decimal) decimal.Decimal {
	if denominator.IsZero() {
		return decimal.Zero
	}

	return numerator.Div(denominator)
}
