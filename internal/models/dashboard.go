package models

// DashboardStats summarizes activity for the home screen.
type DashboardStats struct {
	TotalClients        int     `json:"total_clients"`
	TotalExpeditions    int     `json:"total_expeditions"`
	TotalDevis          int     `json:"total_devis"`
	ChiffreAffaires     float64 `json:"chiffre_affaires"`
	MontantImpaye       float64 `json:"montant_impaye"`
	ExpeditionsEnCours  int     `json:"expeditions_en_cours"`
	DevisEnAttente      int     `json:"devis_en_attente"`
	TotalFraisMoisCours float64 `json:"total_frais_mois_courant"`
}

// MonthRevenue is one point of the revenue evolution series.
type MonthRevenue struct {
	Annee             int     `json:"annee"`
	Mois              int     `json:"mois"`
	ChiffreAffaires   float64 `json:"chiffre_affaires"`
	NombreExpeditions int     `json:"nombre_expeditions"`
}

// Alerte flags an expedition that needs attention.
type Alerte struct {
	Type       string     `json:"type"`
	Message    string     `json:"message"`
	Expedition Expedition `json:"expedition"`
}
