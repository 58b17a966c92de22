package services

import "math"

// round2 rounds to the nearest centime, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// TotalWithTax computes the TTC amount from an HT price and a TVA rate
// expressed in percent. A rate of zero is allowed (exempt transport).
func TotalWithTax(prixHT, tauxTVA float64) (float64, error) {
	if prixHT <= 0 {
		return 0, ErrInvalidAmount
	}
	if tauxTVA < 0 {
		return 0, ErrInvalidAmount
	}
	return round2(prixHT * (1 + tauxTVA/100)), nil
}

// TaxAmount computes the TVA portion alone.
func TaxAmount(prixHT, tauxTVA float64) (float64, error) {
	if prixHT <= 0 || tauxTVA < 0 {
		return 0, ErrInvalidAmount
	}
	return round2(prixHT * tauxTVA / 100), nil
}

// PriceBeforeTax inverts TotalWithTax: given a TTC amount and the rate,
// recover the HT price. Round tripping stays within one centime.
func PriceBeforeTax(prixTTC, tauxTVA float64) (float64, error) {
	if prixTTC <= 0 || tauxTVA < 0 {
		return 0, ErrInvalidAmount
	}
	return round2(prixTTC / (1 + tauxTVA/100)), nil
}

// Outstanding computes the balance left to pay on an expedition.
func Outstanding(prixTTC, montantPaye float64) float64 {
	return round2(prixTTC - montantPaye)
}
