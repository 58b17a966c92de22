package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalWithTax(t *testing.T) {
	tests := []struct {
		prixHT  float64
		tauxTVA float64
		want    float64
	}{
		{1000, 20, 1200},
		{1500.50, 20, 1800.60},
		{100, 0, 100},
		{333.33, 20, 400},
		{0.01, 20, 0.01},
	}

	for _, tt := range tests {
		got, err := TotalWithTax(tt.prixHT, tt.tauxTVA)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 0.001, "ht=%v taux=%v", tt.prixHT, tt.tauxTVA)
	}
}

func TestTotalWithTaxRejectsNonPositive(t *testing.T) {
	_, err := TotalWithTax(0, 20)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = TotalWithTax(-50, 20)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = TotalWithTax(100, -1)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestTaxAmount(t *testing.T) {
	got, err := TaxAmount(1000, 20)
	require.NoError(t, err)
	assert.Equal(t, 200.0, got)

	got, err = TaxAmount(1500.50, 14)
	require.NoError(t, err)
	assert.InDelta(t, 210.07, got, 0.001)
}

func TestPriceBeforeTaxRoundTrip(t *testing.T) {
	prices := []float64{100, 999.99, 1500.50, 12345.67}
	rates := []float64{0, 7, 10, 14, 20}

	for _, ht := range prices {
		for _, rate := range rates {
			ttc, err := TotalWithTax(ht, rate)
			require.NoError(t, err)

			back, err := PriceBeforeTax(ttc, rate)
			require.NoError(t, err)
			assert.InDelta(t, ht, back, 0.01, "ht=%v taux=%v", ht, rate)
		}
	}
}

func TestOutstanding(t *testing.T) {
	assert.Equal(t, 700.0, Outstanding(1200, 500))
	assert.Equal(t, 0.0, Outstanding(1200, 1200))
	// overpayment shows as a negative balance
	assert.Equal(t, -100.0, Outstanding(1200, 1300))
}
