package models

import "time"

// Payment statuses
const (
	PaiementNonPaye = "Non Payé"
	PaiementPartiel = "Partiel"
	PaiementPaye    = "Payé"
)

// Delivery statuses
const (
	LivraisonEnAttente = "En attente de collecte"
	LivraisonEnTransit = "En Transit"
	LivraisonLivre     = "Livré"
	LivraisonAnnule    = "Annulé"
)

type Expedition struct {
	ID                 int       `json:"id"`
	ClientID           int       `json:"client_id"`
	NumeroExpedition   string    `json:"numero_expedition"`
	DateExpedition     time.Time `json:"date_expedition"`
	TypeMarchandises   string    `json:"type_marchandises"`
	VilleDepart        string    `json:"ville_depart"`
	VilleArrivee       string    `json:"ville_arrivee"`
	TypeCamion         string    `json:"type_camion"`
	NumeroCamion       string    `json:"numero_camion"`
	NomChauffeur       string    `json:"nom_chauffeur"`
	TelephoneChauffeur string    `json:"telephone_chauffeur"`
	PrixHT             float64   `json:"prix_ht"`
	TauxTVA            float64   `json:"taux_tva"`
	MontantTaxe        float64   `json:"montant_taxe"`
	PrixTTC            float64   `json:"prix_ttc"`
	StatutPaiement     string    `json:"statut_paiement"`
	MontantPaye        float64   `json:"montant_paye"`
	SoldeRestant       float64   `json:"solde_restant"`
	StatutLivraison    string    `json:"statut_livraison"`
	Notes              string    `json:"notes"`
	CreatedAt          time.Time `json:"created_at"`

	// Joined client columns, present on list/detail reads
	NomEntite       string `json:"nom_entite,omitempty"`
	TelephoneClient string `json:"telephone_client,omitempty"`
	TypeClient      string `json:"type_client,omitempty"`
	AdresseClient   string `json:"adresse_client,omitempty"`
	ICE             string `json:"ice,omitempty"`
}

// CreateExpeditionRequest represents the request body for creating an
// expedition. An empty NumeroExpedition asks the server to assign the next
// number in the current year's sequence.
type CreateExpeditionRequest struct {
	ClientID           int     `json:"client_id"`
	NumeroExpedition   string  `json:"numero_expedition"`
	DateExpedition     string  `json:"date_expedition"`
	TypeMarchandises   string  `json:"type_marchandises"`
	VilleDepart        string  `json:"ville_depart"`
	VilleArrivee       string  `json:"ville_arrivee"`
	TypeCamion         string  `json:"type_camion"`
	NumeroCamion       string  `json:"numero_camion"`
	NomChauffeur       string  `json:"nom_chauffeur"`
	TelephoneChauffeur string  `json:"telephone_chauffeur"`
	PrixHT             float64 `json:"prix_ht"`
	TauxTVA            float64 `json:"taux_tva"`
	StatutPaiement     string  `json:"statut_paiement"`
	MontantPaye        float64 `json:"montant_paye"`
	StatutLivraison    string  `json:"statut_livraison"`
	Notes              string  `json:"notes"`
}

// UpdateExpeditionRequest applies partial-field semantics: nil keeps the
// stored value, non-nil overwrites.
type UpdateExpeditionRequest struct {
	DateExpedition     *string  `json:"date_expedition"`
	TypeMarchandises   *string  `json:"type_marchandises"`
	VilleDepart        *string  `json:"ville_depart"`
	VilleArrivee       *string  `json:"ville_arrivee"`
	TypeCamion         *string  `json:"type_camion"`
	NumeroCamion       *string  `json:"numero_camion"`
	NomChauffeur       *string  `json:"nom_chauffeur"`
	TelephoneChauffeur *string  `json:"telephone_chauffeur"`
	PrixHT             *float64 `json:"prix_ht"`
	TauxTVA            *float64 `json:"taux_tva"`
	StatutPaiement     *string  `json:"statut_paiement"`
	MontantPaye        *float64 `json:"montant_paye"`
	StatutLivraison    *string  `json:"statut_livraison"`
	Notes              *string  `json:"notes"`
}

// ExpeditionFilter narrows expedition lists and PDF exports.
// All set filters are ANDed together.
type ExpeditionFilter struct {
	ClientID        int
	DateDebut       string
	DateFin         string
	StatutPaiement  string
	StatutLivraison string
	Search          string
	Page            int
	Limit           int
}
