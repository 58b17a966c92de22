package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"transport-backend/internal/models"
)

func strPtr(s string) *string   { return &s }
func intPtr(n int) *int         { return &n }
func f64Ptr(f float64) *float64 { return &f }

func TestBuildSetSkipsNilPointers(t *testing.T) {
	set, args := buildSet([]Field{
		{"nom_entite", strPtr("Transport X")},
		{"email", (*string)(nil)},
		{"prix_ht", f64Ptr(1500)},
		{"client_id", (*int)(nil)},
	})

	assert.Equal(t, "nom_entite=$1, prix_ht=$2", set)
	assert.Equal(t, []any{"Transport X", 1500.0}, args)
}

func TestBuildSetEmptyStringOverwrites(t *testing.T) {
	// a pointer to "" clears the column, unlike a nil pointer
	set, args := buildSet([]Field{
		{"notes", strPtr("")},
	})

	assert.Equal(t, "notes=$1", set)
	assert.Equal(t, []any{""}, args)
}

func TestBuildSetNothingChanged(t *testing.T) {
	set, args := buildSet([]Field{
		{"nom", (*string)(nil)},
	})

	assert.Empty(t, set)
	assert.Empty(t, args)
}

func TestNormalizePage(t *testing.T) {
	page, limit := normalizePage(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)

	page, limit = normalizePage(3, 50)
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, limit)

	page, limit = normalizePage(-1, -5)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)
}

func TestBuildClientWhere(t *testing.T) {
	where, args := BuildClientWhere(models.ClientFilter{})
	assert.Equal(t, "WHERE actif=TRUE", where)
	assert.Empty(t, args)

	where, args = BuildClientWhere(models.ClientFilter{Search: "garg", TypeClient: "Entreprise"})
	assert.Equal(t,
		"WHERE actif=TRUE AND (nom_entite ILIKE $1 OR numero_telephone ILIKE $1 OR ice ILIKE $1) AND type_client = $2",
		where)
	assert.Equal(t, []any{"%garg%", "Entreprise"}, args)
}

func TestBuildExpeditionWhere(t *testing.T) {
	where, args := BuildExpeditionWhere(models.ExpeditionFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = BuildExpeditionWhere(models.ExpeditionFilter{
		ClientID:        7,
		DateDebut:       "2025-01-01",
		DateFin:         "2025-12-31",
		StatutPaiement:  "Non Payé",
		StatutLivraison: "En Transit",
	})
	assert.Equal(t,
		"WHERE e.client_id = $1 AND e.date_expedition >= $2 AND e.date_expedition <= $3 AND e.statut_paiement = $4 AND e.statut_livraison = $5",
		where)
	assert.Len(t, args, 5)
}

func TestBuildChauffeurWhere(t *testing.T) {
	where, args := BuildChauffeurWhere(models.ChauffeurFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = BuildChauffeurWhere(models.ChauffeurFilter{Search: "has", ActifOnly: true})
	assert.Equal(t, "WHERE actif=TRUE AND (nom_complet ILIKE $1 OR telephone ILIKE $1)", where)
	assert.Equal(t, []any{"%has%"}, args)
}

func TestBuildCategorieFraisWhere(t *testing.T) {
	where, args := BuildCategorieFraisWhere(models.CategorieFraisFilter{})
	assert.Equal(t, "WHERE actif=TRUE", where)
	assert.Empty(t, args)

	where, args = BuildCategorieFraisWhere(models.CategorieFraisFilter{TypeCategorie: "Camion"})
	assert.Equal(t, "WHERE actif=TRUE AND type_categorie=$1", where)
	assert.Equal(t, []any{"Camion"}, args)
}

func TestBuildDevisWhere(t *testing.T) {
	where, args := BuildDevisWhere(models.DevisFilter{Statut: "En attente", Search: "tran"})
	assert.Equal(t,
		"WHERE d.statut = $1 AND (d.numero_devis ILIKE $2 OR c.nom_entite ILIKE $2)",
		where)
	assert.Equal(t, []any{"En attente", "%tran%"}, args)
}

func TestFraisParCategorieQueryCapsAtTen(t *testing.T) {
	q := fraisParCategorieQuery("FROM frais f JOIN categories_frais cf ON cf.id = f.categorie_id WHERE f.date_frais >= $1")

	assert.Contains(t, q, "WHERE f.date_frais >= $1")
	assert.Contains(t, q, "ORDER BY SUM(f.montant) DESC LIMIT 10")
}

func TestBuildFraisWhere(t *testing.T) {
	where, args := BuildFraisWhere(models.FraisFilter{
		DateDebut:     "2025-06-01",
		TypeCategorie: "Camion",
		NumeroCamion:  "4521",
		ModePaiement:  "Espèces",
	})
	assert.Equal(t,
		"WHERE f.date_frais >= $1 AND cf.type_categorie = $2 AND f.numero_camion ILIKE $3 AND f.mode_paiement = $4",
		where)
	assert.Equal(t, []any{"2025-06-01", "Camion", "%4521%", "Espèces"}, args)
}
