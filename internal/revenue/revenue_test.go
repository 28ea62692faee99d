// internal/revenue/revenue_test.go
package revenue

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestComputeEtsyRate(t *testing.T) {
	// 3 units at 20.00 on a 6.5% platform.
	b, err := Compute(3, d("20.00"), d("6.5"))
	require.NoError(t, err)

	assert.True(t, b.Gross.Equal(d("60.00")), "gross = %s", b.Gross)
	assert.True(t, b.Commission.Equal(d("3.90")), "commission = %s", b.Commission)
	assert.True(t, b.Net.Equal(d("56.10")), "net = %s", b.Net)
}

func TestComputeZeroRate(t *testing.T) {
	b, err := Compute(5, d("9.99"), decimal.Zero)
	require.NoError(t, err)

	assert.True(t, b.Commission.IsZero())
	assert.True(t, b.Net.Equal(b.Gross))
}

func TestComputeFullRate(t *testing.T) {
	b, err := Compute(2, d("12.50"), d("100"))
	require.NoError(t, err)

	assert.True(t, b.Net.IsZero())
	assert.True(t, b.Commission.Equal(b.Gross))
}

func TestComputeReconcilesExactly(t *testing.T) {
	// Awkward rates must still leave gross - commission == net with no drift.
	rates := []string{"0", "2.9", "6.5", "13.37", "33.33", "50", "99.99", "100"}
	prices := []string{"0.01", "1.99", "20.00", "123.45", "9999.99"}

	for _, r := range rates {
		for _, p := range prices {
			for qty := 0; qty <= 7; qty++ {
				b, err := Compute(qty, d(p), d(r))
				require.NoError(t, err)
				assert.True(t, b.Gross.Sub(b.Commission).Equal(b.Net),
					"qty=%d price=%s rate=%s: %s - %s != %s",
					qty, p, r, b.Gross, b.Commission, b.Net)
			}
		}
	}
}

func TestComputeFromGrossOverride(t *testing.T) {
	// Manual gross override ignores quantity entirely.
	b, err := ComputeFromGross(d("150.00"), d("10"))
	require.NoError(t, err)

	assert.True(t, b.Gross.Equal(d("150.00")))
	assert.True(t, b.Commission.Equal(d("15.00")))
	assert.True(t, b.Net.Equal(d("135.00")))
}

func TestComputeRejectsBadInput(t *testing.T) {
	_, err := Compute(-1, d("10"), d("5"))
	assert.ErrorIs(t, err, ErrNegativeQuantity)

	_, err = Compute(1, d("-10"), d("5"))
	assert.ErrorIs(t, err, ErrNegativeAmount)

	_, err = ComputeFromGross(d("10"), d("101"))
	assert.ErrorIs(t, err, ErrRateOutOfRange)

	_, err = ComputeFromGross(d("10"), d("-0.01"))
	assert.ErrorIs(t, err, ErrRateOutOfRange)
}

func TestShareOfTotal(t *testing.T) {
	assert.True(t, ShareOfTotal(d("42"), d("100")).Equal(d("42")))
	assert.True(t, ShareOfTotal(d("1"), d("3")).Equal(d("33.3")))

	// Zero denominator reports zero, never NaN or an error.
	assert.True(t, ShareOfTotal(d("10"), decimal.Zero).IsZero())
}
