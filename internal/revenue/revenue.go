// internal/revenue/revenue.go

// Package revenue holds the commission arithmetic shared by the sales and
// analytics services. It is pure: no storage access, no side effects.
package revenue

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrRateOutOfRange   = errors.New("commission rate must be between 0 and 100")
)

var oneHundred = decimal.NewFromInt(100)

// Breakdown is the gross/commission/net split for one sales figure. Every
// field is rounded to two decimal places, and Gross - Commission == Net holds
// exactly so that stored rows reconcile when summed.
type Breakdown struct {
	Gross      decimal.Decimal `json:"gross"`
	Commission decimal.Decimal `json:"commission"`
	Net        decimal.Decimal `json:"net"`
}

// Compute derives the breakdown from quantity * unitPrice at the given
// commission rate percentage.
func Compute(quantity int, unitPrice, ratePercent decimal.Decimal) (Breakdown, error) {
	if quantity < 0 {
		return Breakdown{}, ErrNegativeQuantity
	}
	if unitPrice.IsNegative() {
		return Breakdown{}, ErrNegativeAmount
	}
	gross := unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
	return ComputeFromGross(gross, ratePercent)
}

// ComputeFromGross derives commission and net from an already-known gross
// figure, the manual-override path: the reported quantity is informational
// and plays no part in the arithmetic.
func ComputeFromGross(gross, ratePercent decimal.Decimal) (Breakdown, error) {
	if gross.IsNegative() {
		return Breakdown{}, ErrNegativeAmount
	}
	if ratePercent.IsNegative() || ratePercent.GreaterThan(oneHundred) {
		return Breakdown{}, ErrRateOutOfRange
	}

	gross = gross.Round(2)
	commission := gross.Mul(ratePercent).Div(oneHundred).Round(2)
	// Net is defined as the remainder, not an independent rounding, so the
	// three figures always reconcile.
	net := gross.Sub(commission)

	return Breakdown{Gross: gross, Commission: commission, Net: net}, nil
}

// ShareOfTotal returns part/total as a percentage rounded to one decimal
// place, or zero when the total is zero.
func ShareOfTotal(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(oneHundred).Round(1)
}
