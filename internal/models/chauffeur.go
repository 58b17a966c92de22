package models

import "time"

type Chauffeur struct {
	ID         int       `json:"id"`
	NomComplet string    `json:"nom_complet"`
	Telephone  string    `json:"telephone"`
	Adresse    string    `json:"adresse"`
	Permis     string    `json:"permis"`
	Actif      bool      `json:"actif"`
	DateAjout  time.Time `json:"date_ajout"`
}

type CreateChauffeurRequest struct {
	NomComplet string `json:"nom_complet"`
	Telephone  string `json:"telephone"`
	Adresse    string `json:"adresse"`
	Permis     string `json:"permis"`
}

type UpdateChauffeurRequest struct {
	NomComplet *string `json:"nom_complet"`
	Telephone  *string `json:"telephone"`
	Adresse    *string `json:"adresse"`
	Permis     *string `json:"permis"`
}

// ChauffeurFilter narrows the chauffeur list. ActifOnly defaults to true;
// passing actif=false in the query includes deactivated drivers.
type ChauffeurFilter struct {
	Search    string
	ActifOnly bool
	Page      int
	Limit     int
}
