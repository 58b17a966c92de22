package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"transport-backend/internal/models"
)

type DashboardRepository struct {
	DB *pgxpool.Pool
}

func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{DB: db}
}

// Stats gathers the headline figures for the home screen in one query.
// Cancelled expeditions stay out of revenue and outstanding totals.
func (r *DashboardRepository) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var s models.DashboardStats
	err := r.DB.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM clients WHERE actif=TRUE),
			(SELECT COUNT(*) FROM expeditions),
			(SELECT COUNT(*) FROM devis),
			(SELECT COALESCE(SUM(prix_ttc), 0) FROM expeditions WHERE statut_livraison <> 'Annulé'),
			(SELECT COALESCE(SUM(solde_restant), 0) FROM expeditions
				WHERE statut_paiement <> 'Payé' AND statut_livraison <> 'Annulé'),
			(SELECT COUNT(*) FROM expeditions
				WHERE statut_livraison IN ('En attente de collecte', 'En Transit')),
			(SELECT COUNT(*) FROM devis WHERE statut = 'En attente'),
			(SELECT COALESCE(SUM(montant), 0) FROM frais
				WHERE date_frais >= date_trunc('month', CURRENT_DATE))
	`).Scan(&s.TotalClients, &s.TotalExpeditions, &s.TotalDevis,
		&s.ChiffreAffaires, &s.MontantImpaye, &s.ExpeditionsEnCours,
		&s.DevisEnAttente, &s.TotalFraisMoisCours)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Evolution returns the monthly revenue series for the last twelve
// months with recorded activity.
func (r *DashboardRepository) Evolution(ctx context.Context) ([]models.MonthRevenue, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT EXTRACT(YEAR FROM date_expedition)::int,
		       EXTRACT(MONTH FROM date_expedition)::int,
		       COALESCE(SUM(prix_ttc), 0), COUNT(*)
		FROM expeditions
		WHERE statut_livraison <> 'Annulé'
		GROUP BY 1, 2
		ORDER BY 1 DESC, 2 DESC
		LIMIT 12`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var series []models.MonthRevenue
	for rows.Next() {
		var m models.MonthRevenue
		if err := rows.Scan(&m.Annee, &m.Mois, &m.ChiffreAffaires, &m.NombreExpeditions); err != nil {
			return nil, err
		}
		series = append(series, m)
	}
	return series, rows.Err()
}
