package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"transport-backend/internal/models"
	"transport-backend/internal/timeutil"
	"transport-backend/pkg/utils"
)

type ExpeditionRepository struct {
	DB *pgxpool.Pool
}

func NewExpeditionRepository(db *pgxpool.Pool) *ExpeditionRepository {
	return &ExpeditionRepository{DB: db}
}

const expeditionColumns = `e.id, e.client_id, e.numero_expedition, e.date_expedition,
	e.type_marchandises, e.ville_depart, e.ville_arrivee,
	e.type_camion, e.numero_camion, e.nom_chauffeur, e.telephone_chauffeur,
	e.prix_ht, e.taux_tva, e.montant_taxe, e.prix_ttc,
	e.statut_paiement, e.montant_paye, e.solde_restant, e.statut_livraison,
	e.notes, e.created_at,
	c.nom_entite, c.numero_telephone, c.type_client, c.adresse_complete, c.ice`

func scanExpedition(row interface{ Scan(...any) error }) (*models.Expedition, error) {
	var e models.Expedition
	err := row.Scan(&e.ID, &e.ClientID, &e.NumeroExpedition, &e.DateExpedition,
		&e.TypeMarchandises, &e.VilleDepart, &e.VilleArrivee,
		&e.TypeCamion, &e.NumeroCamion, &e.NomChauffeur, &e.TelephoneChauffeur,
		&e.PrixHT, &e.TauxTVA, &e.MontantTaxe, &e.PrixTTC,
		&e.StatutPaiement, &e.MontantPaye, &e.SoldeRestant, &e.StatutLivraison,
		&e.Notes, &e.CreatedAt,
		&e.NomEntite, &e.TelephoneClient, &e.TypeClient, &e.AdresseClient, &e.ICE)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// latestNumeroForYear finds the highest assigned number within a year's
// sequence. Ordering by length first keeps four digit sequences after
// three digit ones.
func latestNumeroForYear(ctx context.Context, tx pgx.Tx, table, column string, year int) (string, error) {
	var latest string
	err := tx.QueryRow(ctx, fmt.Sprintf(
		`SELECT %s FROM %s WHERE %s LIKE $1 ORDER BY LENGTH(%s) DESC, %s DESC LIMIT 1`,
		column, table, column, column, column),
		fmt.Sprintf("%%-%d", year),
	).Scan(&latest)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	return latest, err
}

// Create inserts the expedition, assigning the next sequential number
// when the caller did not provide one. Lookup and insert run in one
// transaction so concurrent creates cannot hand out the same number;
// the UNIQUE constraint on numero_expedition is the final guard.
func (r *ExpeditionRepository) Create(ctx context.Context, e *models.Expedition) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if e.NumeroExpedition == "" {
		year := timeutil.Now().Year()
		latest, err := latestNumeroForYear(ctx, tx, "expeditions", "numero_expedition", year)
		if err != nil {
			return err
		}
		e.NumeroExpedition = utils.NextNumero(latest, year)
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO expeditions(numero_expedition, client_id, date_expedition, type_marchandises,
             ville_depart, ville_arrivee, type_camion, numero_camion, nom_chauffeur, telephone_chauffeur,
             prix_ht, taux_tva, montant_paye, statut_paiement, statut_livraison, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
         RETURNING id, montant_taxe, prix_ttc, solde_restant, created_at`,
		e.NumeroExpedition, e.ClientID, e.DateExpedition, e.TypeMarchandises,
		e.VilleDepart, e.VilleArrivee, e.TypeCamion, e.NumeroCamion, e.NomChauffeur, e.TelephoneChauffeur,
		e.PrixHT, e.TauxTVA, e.MontantPaye, e.StatutPaiement, e.StatutLivraison, e.Notes,
	).Scan(&e.ID, &e.MontantTaxe, &e.PrixTTC, &e.SoldeRestant, &e.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// NextNumero previews the number the next expedition would receive.
func (r *ExpeditionRepository) NextNumero(ctx context.Context) (string, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	year := timeutil.Now().Year()
	latest, err := latestNumeroForYear(ctx, tx, "expeditions", "numero_expedition", year)
	if err != nil {
		return "", err
	}
	return utils.NextNumero(latest, year), nil
}

func (r *ExpeditionRepository) Get(ctx context.Context, id int) (*models.Expedition, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+expeditionColumns+`
         FROM expeditions e JOIN clients c ON c.id = e.client_id
         WHERE e.id=$1`, id)
	return scanExpedition(row)
}

// BuildExpeditionWhere assembles the WHERE clause for a filtered list.
// All set filters are ANDed together.
func BuildExpeditionWhere(f models.ExpeditionFilter) (string, []any) {
	var conds []string
	var args []any

	if f.ClientID > 0 {
		args = append(args, f.ClientID)
		conds = append(conds, fmt.Sprintf("e.client_id = $%d", len(args)))
	}
	if f.DateDebut != "" {
		args = append(args, f.DateDebut)
		conds = append(conds, fmt.Sprintf("e.date_expedition >= $%d", len(args)))
	}
	if f.DateFin != "" {
		args = append(args, f.DateFin)
		conds = append(conds, fmt.Sprintf("e.date_expedition <= $%d", len(args)))
	}
	if f.StatutPaiement != "" {
		args = append(args, f.StatutPaiement)
		conds = append(conds, fmt.Sprintf("e.statut_paiement = $%d", len(args)))
	}
	if f.StatutLivraison != "" {
		args = append(args, f.StatutLivraison)
		conds = append(conds, fmt.Sprintf("e.statut_livraison = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(e.numero_expedition ILIKE $%d OR c.nom_entite ILIKE $%d OR e.ville_depart ILIKE $%d OR e.ville_arrivee ILIKE $%d)",
			n, n, n, n))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *ExpeditionRepository) List(ctx context.Context, f models.ExpeditionFilter) ([]*models.Expedition, int, error) {
	where, args := BuildExpeditionWhere(f)

	var total int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM expeditions e JOIN clients c ON c.id = e.client_id `+where,
		args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(f.Page, f.Limit)
	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf(
		`SELECT %s FROM expeditions e JOIN clients c ON c.id = e.client_id %s
         ORDER BY e.date_expedition DESC, e.id DESC LIMIT $%d OFFSET $%d`,
		expeditionColumns, where, len(args)-1, len(args))

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var expeditions []*models.Expedition
	for rows.Next() {
		e, err := scanExpedition(rows)
		if err != nil {
			return nil, 0, err
		}
		expeditions = append(expeditions, e)
	}
	return expeditions, total, rows.Err()
}

// ListFiltered returns every matching expedition without pagination,
// used by the list PDF export.
func (r *ExpeditionRepository) ListFiltered(ctx context.Context, f models.ExpeditionFilter) ([]*models.Expedition, error) {
	where, args := BuildExpeditionWhere(f)

	rows, err := r.DB.Query(ctx,
		`SELECT `+expeditionColumns+`
         FROM expeditions e JOIN clients c ON c.id = e.client_id `+where+`
         ORDER BY e.date_expedition ASC, e.id ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expeditions []*models.Expedition
	for rows.Next() {
		e, err := scanExpedition(rows)
		if err != nil {
			return nil, err
		}
		expeditions = append(expeditions, e)
	}
	return expeditions, rows.Err()
}

// ListByClient returns a client's full expedition history, newest first.
func (r *ExpeditionRepository) ListByClient(ctx context.Context, clientID int) ([]*models.Expedition, error) {
	return r.ListFilteredDesc(ctx, models.ExpeditionFilter{ClientID: clientID})
}

func (r *ExpeditionRepository) ListFilteredDesc(ctx context.Context, f models.ExpeditionFilter) ([]*models.Expedition, error) {
	where, args := BuildExpeditionWhere(f)

	rows, err := r.DB.Query(ctx,
		`SELECT `+expeditionColumns+`
         FROM expeditions e JOIN clients c ON c.id = e.client_id `+where+`
         ORDER BY e.date_expedition DESC, e.id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expeditions []*models.Expedition
	for rows.Next() {
		e, err := scanExpedition(rows)
		if err != nil {
			return nil, err
		}
		expeditions = append(expeditions, e)
	}
	return expeditions, rows.Err()
}

func (r *ExpeditionRepository) Update(ctx context.Context, id int, req *models.UpdateExpeditionRequest) (*models.Expedition, error) {
	set, args := buildSet([]Field{
		{"date_expedition", req.DateExpedition},
		{"type_marchandises", req.TypeMarchandises},
		{"ville_depart", req.VilleDepart},
		{"ville_arrivee", req.VilleArrivee},
		{"type_camion", req.TypeCamion},
		{"numero_camion", req.NumeroCamion},
		{"nom_chauffeur", req.NomChauffeur},
		{"telephone_chauffeur", req.TelephoneChauffeur},
		{"prix_ht", req.PrixHT},
		{"taux_tva", req.TauxTVA},
		{"statut_paiement", req.StatutPaiement},
		{"montant_paye", req.MontantPaye},
		{"statut_livraison", req.StatutLivraison},
		{"notes", req.Notes},
	})
	if set == "" {
		return r.Get(ctx, id)
	}

	args = append(args, id)
	tag, err := r.DB.Exec(ctx, fmt.Sprintf(
		`UPDATE expeditions SET %s WHERE id=$%d`, set, len(args)), args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}
	return r.Get(ctx, id)
}

func (r *ExpeditionRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM expeditions WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Alertes lists expeditions needing attention: delivered but not fully
// paid, and shipments sitting in transit for more than a week.
func (r *ExpeditionRepository) Alertes(ctx context.Context) ([]*models.Alerte, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+expeditionColumns+`,
            CASE
                WHEN e.statut_livraison = 'Livré' AND e.statut_paiement <> 'Payé' THEN 'paiement'
                ELSE 'livraison'
            END AS type_alerte
         FROM expeditions e JOIN clients c ON c.id = e.client_id
         WHERE (e.statut_livraison = 'Livré' AND e.statut_paiement <> 'Payé')
            OR (e.statut_livraison = 'En Transit' AND e.date_expedition < CURRENT_DATE - INTERVAL '7 days')
         ORDER BY e.date_expedition ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alertes []*models.Alerte
	for rows.Next() {
		var e models.Expedition
		var typeAlerte string
		err := rows.Scan(&e.ID, &e.ClientID, &e.NumeroExpedition, &e.DateExpedition,
			&e.TypeMarchandises, &e.VilleDepart, &e.VilleArrivee,
			&e.TypeCamion, &e.NumeroCamion, &e.NomChauffeur, &e.TelephoneChauffeur,
			&e.PrixHT, &e.TauxTVA, &e.MontantTaxe, &e.PrixTTC,
			&e.StatutPaiement, &e.MontantPaye, &e.SoldeRestant, &e.StatutLivraison,
			&e.Notes, &e.CreatedAt,
			&e.NomEntite, &e.TelephoneClient, &e.TypeClient, &e.AdresseClient, &e.ICE,
			&typeAlerte)
		if err != nil {
			return nil, err
		}

		var message string
		if typeAlerte == "paiement" {
			message = fmt.Sprintf("Expédition %s livrée mais non payée (reste %.2f DH)",
				e.NumeroExpedition, e.SoldeRestant)
		} else {
			message = fmt.Sprintf("Expédition %s en transit depuis plus de 7 jours", e.NumeroExpedition)
		}
		alertes = append(alertes, &models.Alerte{Type: typeAlerte, Message: message, Expedition: e})
	}
	return alertes, rows.Err()
}
