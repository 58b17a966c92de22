package services

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"transport-backend/internal/models"
)

func TestRenderFacture(t *testing.T) {
	data := factureData{
		Title:       "Facture",
		Numero:      "042-2025",
		DateLine:    "Ait Melloul le 15/06/2025",
		NomEntite:   "STÉ ATLAS NÉGOCE",
		ICE:         "001234567000089",
		Trajet:      "AGADIR VERS CASABLANCA",
		Designation: "Primeurs",
		PrixHT:      4500,
		TauxTVA:     10,
		MontantTaxe: 450,
		PrixTTC:     4950,
		WordsLine:   "La présente facture est arrêtée à la somme de : Quatre mille neuf cent cinquante Dirhams",
	}

	out, err := renderFacture(data)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderFactureWithoutICE(t *testing.T) {
	// particulier without ICE gets the A/C placeholder
	out, err := renderFacture(factureData{
		Title:     "Facture",
		Numero:    "001-2025",
		DateLine:  "Ait Melloul le 01/01/2025",
		NomEntite: "Ahmed",
		Trajet:    "AGADIR VERS MARRAKECH",
		PrixHT:    1200,
		TauxTVA:   10,
		PrixTTC:   1320,
		WordsLine: "La présente facture est arrêtée à la somme de : Mille trois cent vingt Dirhams",
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateFactureModele(t *testing.T) {
	svc := NewPDFService(nil, nil, nil)

	out, filename, err := svc.GenerateFactureModele()
	require.NoError(t, err)
	assert.Equal(t, "facture_modele.pdf", filename)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestFilterLine(t *testing.T) {
	assert.Empty(t, filterLine(models.ExpeditionFilter{}))
	assert.Equal(t, "du 2025-01-01, au 2025-06-30",
		filterLine(models.ExpeditionFilter{DateDebut: "2025-01-01", DateFin: "2025-06-30"}))
	assert.Equal(t, "paiement Non Payé",
		filterLine(models.ExpeditionFilter{StatutPaiement: "Non Payé"}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "court", truncate("court", 12))
	assert.Equal(t, "une chaine t...", truncate("une chaine trop longue", 15))
}

func TestTruncateCutsOnRunes(t *testing.T) {
	// the cut must never split an accented character
	got := truncate("Expédition vers Casablanca", 14)
	assert.Equal(t, "Expédition ...", got)
	assert.True(t, utf8.ValidString(got))

	assert.Equal(t, "Expédition", truncate("Expédition", 10))
}
