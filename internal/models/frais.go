package models

import "time"

// Expense category types
const (
	CategorieMagasin = "Magasin"
	CategorieCamion  = "Camion"
	CategorieAutre   = "Autre"
)

// Payment methods
const (
	PaiementEspeces  = "Espèces"
	PaiementCheque   = "Chèque"
	PaiementVirement = "Virement"
	PaiementCarte    = "Carte"
)

type CategorieFrais struct {
	ID            int       `json:"id"`
	Nom           string    `json:"nom"`
	TypeCategorie string    `json:"type_categorie"`
	Description   string    `json:"description"`
	Actif         bool      `json:"actif"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreateCategorieFraisRequest struct {
	Nom           string `json:"nom"`
	TypeCategorie string `json:"type_categorie"`
	Description   string `json:"description"`
}

type UpdateCategorieFraisRequest struct {
	Nom           *string `json:"nom"`
	TypeCategorie *string `json:"type_categorie"`
	Description   *string `json:"description"`
}

// CategorieFraisFilter narrows the category list.
type CategorieFraisFilter struct {
	TypeCategorie string
	Page          int
	Limit         int
}

type Frais struct {
	ID               int       `json:"id"`
	CategorieID      int       `json:"categorie_id"`
	NumeroCamion     string    `json:"numero_camion"`
	Montant          float64   `json:"montant"`
	DateFrais        time.Time `json:"date_frais"`
	Description      string    `json:"description"`
	ReferenceFacture string    `json:"reference_facture"`
	ModePaiement     string    `json:"mode_paiement"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`

	// Joined category columns
	CategorieNom  string `json:"categorie_nom,omitempty"`
	TypeCategorie string `json:"type_categorie,omitempty"`
}

type CreateFraisRequest struct {
	CategorieID      int     `json:"categorie_id"`
	NumeroCamion     string  `json:"numero_camion"`
	Montant          float64 `json:"montant"`
	DateFrais        string  `json:"date_frais"`
	Description      string  `json:"description"`
	ReferenceFacture string  `json:"reference_facture"`
	ModePaiement     string  `json:"mode_paiement"`
	Notes            string  `json:"notes"`
}

type UpdateFraisRequest struct {
	CategorieID      *int     `json:"categorie_id"`
	NumeroCamion     *string  `json:"numero_camion"`
	Montant          *float64 `json:"montant"`
	DateFrais        *string  `json:"date_frais"`
	Description      *string  `json:"description"`
	ReferenceFacture *string  `json:"reference_facture"`
	ModePaiement     *string  `json:"mode_paiement"`
	Notes            *string  `json:"notes"`
}

// FraisFilter narrows expense lists, stats and PDF exports.
type FraisFilter struct {
	DateDebut     string
	DateFin       string
	CategorieID   int
	TypeCategorie string
	NumeroCamion  string
	ModePaiement  string
	Page          int
	Limit         int
}

// FraisStats aggregates filtered expenses for the stats endpoint.
type FraisStats struct {
	Total        FraisTotal          `json:"total"`
	ParType      []FraisTypeTotal    `json:"parType"`
	ParCategorie []FraisCategorieTotal `json:"parCategorie"`
	Evolution    []FraisMonthTotal   `json:"evolution"`
}

type FraisTotal struct {
	MontantTotal float64 `json:"montant_total"`
	NombreFrais  int     `json:"nombre_frais"`
}

type FraisTypeTotal struct {
	TypeCategorie string  `json:"type_categorie"`
	MontantTotal  float64 `json:"montant_total"`
	NombreFrais   int     `json:"nombre_frais"`
}

type FraisCategorieTotal struct {
	CategorieNom  string  `json:"categorie_nom"`
	TypeCategorie string  `json:"type_categorie"`
	MontantTotal  float64 `json:"montant_total"`
	NombreFrais   int     `json:"nombre_frais"`
}

type FraisMonthTotal struct {
	Annee        int     `json:"annee"`
	Mois         int     `json:"mois"`
	MontantTotal float64 `json:"montant_total"`
	NombreFrais  int     `json:"nombre_frais"`
}
