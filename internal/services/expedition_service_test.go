package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"transport-backend/internal/models"
)

// Validation runs before any repository call, so a nil repo is enough
// for the rejection paths.
func TestCreateExpeditionRejectsOverpayment(t *testing.T) {
	s := NewExpeditionService(nil)

	_, err := s.CreateExpedition(context.Background(), &models.CreateExpeditionRequest{
		ClientID:    1,
		PrixHT:      1000,
		TauxTVA:     10,
		MontantPaye: 1200, // TTC only reaches 1100
	})

	ve, ok := AsValidation(err)
	require.True(t, ok)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "montant_paye", ve.Fields[0].Field)
}

func TestExactPaymentLeavesZeroBalance(t *testing.T) {
	// 1000 HT at the 10% default gives 1100 TTC, paying 1100 leaves a
	// zero balance and passes the amount checks.
	ttc, err := TotalWithTax(1000, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, Outstanding(ttc, 1100))
}

func TestCreateExpeditionRejectsInvalidFields(t *testing.T) {
	s := NewExpeditionService(nil)

	_, err := s.CreateExpedition(context.Background(), &models.CreateExpeditionRequest{
		ClientID:       0,
		PrixHT:         -5,
		StatutPaiement: "Réglé",
	})

	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Len(t, ve.Fields, 3)
}
