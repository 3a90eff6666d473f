package lending

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendpool/pkg/number"
)

func TestMaxBorrow(t *testing.T) {
	cases := map[string]string{
		"1000":       "500",
		"1001":       "500.5",
		"0":          "0",
		"0.00000003": "0.00000001",
	}

	for deposit, expect := range cases {
		t.Run(deposit, func(t *testing.T) {
			assert.Equal(t, expect, MaxBorrow(number.Decimal(deposit)).String())
		})
	}
}

func TestInterest(t *testing.T) {
	cases := []struct {
		principal string
		rateBps   int64
		expect    string
	}{
		{"400", 500, "20"},
		{"200", 500, "10"},
		{"1", 1, "0.0001"},
		{"100", 0, "0"},
		{"100", 3000, "30"},
	}

	for _, c := range cases {
		t.Run(c.principal, func(t *testing.T) {
			assert.Equal(t, c.expect, Interest(number.Decimal(c.principal), c.rateBps).String())
		})
	}
}

func TestHealthFactor(t *testing.T) {
	price := decimal.NewFromInt(1)

	hf := HealthFactor(number.Decimal("1000"), number.Decimal("400"), price, 8000)
	assert.Equal(t, "2", hf.String())
	assert.False(t, Liquidatable(hf))

	hf = HealthFactor(number.Decimal("1000"), number.Decimal("900"), price, 8000)
	assert.Equal(t, "0.88888888", hf.String())
	assert.True(t, Liquidatable(hf))

	// exactly at one is not liquidatable
	hf = HealthFactor(number.Decimal("1000"), number.Decimal("800"), price, 8000)
	require.Equal(t, "1", hf.String())
	assert.False(t, Liquidatable(hf))

	// no borrow, effectively infinite
	hf = HealthFactor(number.Decimal("1000"), decimal.Zero, price, 8000)
	assert.True(t, hf.Equal(HealthFactorMax))
}

func TestSeizeCollateral(t *testing.T) {
	seized := SeizeCollateral(number.Decimal("100"), number.Decimal("2"), 500)
	assert.Equal(t, "52.5", seized.String())

	seized = SeizeCollateral(number.Decimal("100"), number.Decimal("1"), 0)
	assert.Equal(t, "100", seized.String())
}
