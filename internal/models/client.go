package models

import "time"

// Client types
const (
	ClientEntreprise  = "Entreprise"
	ClientParticulier = "Particulier"
)

type Client struct {
	ID              int       `json:"id"`
	TypeClient      string    `json:"type_client"`
	NomEntite       string    `json:"nom_entite"`
	NumeroTelephone string    `json:"numero_telephone"`
	AdresseComplete string    `json:"adresse_complete"`
	Email           string    `json:"email"`
	ICE             string    `json:"ice"`
	Notes           string    `json:"notes"`
	Actif           bool      `json:"actif"`
	DateAjout       time.Time `json:"date_ajout"`
}

// CreateClientRequest represents the request body for creating a client
type CreateClientRequest struct {
	TypeClient      string `json:"type_client"`
	NomEntite       string `json:"nom_entite"`
	NumeroTelephone string `json:"numero_telephone"`
	AdresseComplete string `json:"adresse_complete"`
	Email           string `json:"email"`
	ICE             string `json:"ice"`
	Notes           string `json:"notes"`
}

// UpdateClientRequest uses pointer fields: nil means keep the stored value,
// a non-nil pointer overwrites it (an empty string clears the column).
type UpdateClientRequest struct {
	TypeClient      *string `json:"type_client"`
	NomEntite       *string `json:"nom_entite"`
	NumeroTelephone *string `json:"numero_telephone"`
	AdresseComplete *string `json:"adresse_complete"`
	Email           *string `json:"email"`
	ICE             *string `json:"ice"`
	Notes           *string `json:"notes"`
}

// ClientFilter narrows the client list.
type ClientFilter struct {
	Search     string
	TypeClient string
	Page       int
	Limit      int
}
