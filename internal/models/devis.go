package models

import "time"

// Devis statuses
const (
	DevisEnAttente = "En attente"
	DevisAccepte   = "Accepté"
	DevisRefuse    = "Refusé"
	DevisConverti  = "Converti"
)

type Devis struct {
	ID               int       `json:"id"`
	ClientID         int       `json:"client_id"`
	NumeroDevis      string    `json:"numero_devis"`
	DateDevis        time.Time `json:"date_devis"`
	VilleDepart      string    `json:"ville_depart"`
	VilleArrivee     string    `json:"ville_arrivee"`
	TypeMarchandises string    `json:"type_marchandises"`
	PrixHT           float64   `json:"prix_ht"`
	TauxTVA          float64   `json:"taux_tva"`
	MontantTaxe      float64   `json:"montant_taxe"`
	PrixTTC          float64   `json:"prix_ttc"`
	Statut           string    `json:"statut"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`

	// Joined client columns
	NomEntite     string `json:"nom_entite,omitempty"`
	AdresseClient string `json:"adresse_client,omitempty"`
	ICE           string `json:"ice,omitempty"`
}

// CreateDevisRequest mirrors CreateExpeditionRequest minus delivery and
// payment tracking. An empty NumeroDevis triggers number assignment.
type CreateDevisRequest struct {
	ClientID         int     `json:"client_id"`
	NumeroDevis      string  `json:"numero_devis"`
	DateDevis        string  `json:"date_devis"`
	VilleDepart      string  `json:"ville_depart"`
	VilleArrivee     string  `json:"ville_arrivee"`
	TypeMarchandises string  `json:"type_marchandises"`
	PrixHT           float64 `json:"prix_ht"`
	TauxTVA          float64 `json:"taux_tva"`
	Statut           string  `json:"statut"`
	Notes            string  `json:"notes"`
}

// UpdateDevisRequest applies partial-field semantics.
type UpdateDevisRequest struct {
	ClientID         *int     `json:"client_id"`
	DateDevis        *string  `json:"date_devis"`
	VilleDepart      *string  `json:"ville_depart"`
	VilleArrivee     *string  `json:"ville_arrivee"`
	TypeMarchandises *string  `json:"type_marchandises"`
	PrixHT           *float64 `json:"prix_ht"`
	TauxTVA          *float64 `json:"taux_tva"`
	Statut           *string  `json:"statut"`
	Notes            *string  `json:"notes"`
}

// DevisFilter narrows devis lists.
type DevisFilter struct {
	ClientID  int
	DateDebut string
	DateFin   string
	Statut    string
	Search    string
	Page      int
	Limit     int
}
