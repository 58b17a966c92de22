package models

import "time"

// User roles
const (
	RoleAdmin     = "admin"
	RoleOperateur = "operateur"
)

type Utilisateur struct {
	ID                int        `json:"id"`
	NomUtilisateur    string     `json:"nom_utilisateur"`
	MotDePasse        string     `json:"-"`
	NomComplet        string     `json:"nom_complet"`
	Email             string     `json:"email"`
	Role              string     `json:"role"`
	Actif             bool       `json:"actif"`
	DerniereConnexion *time.Time `json:"derniere_connexion"`
	CreatedAt         time.Time  `json:"created_at"`
}

type LoginRequest struct {
	NomUtilisateur string `json:"nom_utilisateur"`
	MotDePasse     string `json:"mot_de_passe"`
}

type RegisterRequest struct {
	NomUtilisateur string `json:"nom_utilisateur"`
	MotDePasse     string `json:"mot_de_passe"`
	NomComplet     string `json:"nom_complet"`
	Email          string `json:"email"`
	Role           string `json:"role"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  Utilisateur `json:"user"`
}
