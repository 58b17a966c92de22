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

type DevisRepository struct {
	DB *pgxpool.Pool
}

func NewDevisRepository(db *pgxpool.Pool) *DevisRepository {
	return &DevisRepository{DB: db}
}

const devisColumns = `d.id, d.client_id, d.numero_devis, d.date_devis,
	d.ville_depart, d.ville_arrivee, d.type_marchandises,
	d.prix_ht, d.taux_tva, d.montant_taxe, d.prix_ttc,
	d.statut, d.notes, d.created_at,
	c.nom_entite, c.adresse_complete, c.ice`

func scanDevis(row interface{ Scan(...any) error }) (*models.Devis, error) {
	var d models.Devis
	err := row.Scan(&d.ID, &d.ClientID, &d.NumeroDevis, &d.DateDevis,
		&d.VilleDepart, &d.VilleArrivee, &d.TypeMarchandises,
		&d.PrixHT, &d.TauxTVA, &d.MontantTaxe, &d.PrixTTC,
		&d.Statut, &d.Notes, &d.CreatedAt,
		&d.NomEntite, &d.AdresseClient, &d.ICE)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts the devis, assigning the next number in the current
// year's sequence when none is provided. Same transactional scheme as
// expedition creation; devis numbers form their own sequence.
func (r *DevisRepository) Create(ctx context.Context, d *models.Devis) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if d.NumeroDevis == "" {
		year := timeutil.Now().Year()
		latest, err := latestNumeroForYear(ctx, tx, "devis", "numero_devis", year)
		if err != nil {
			return err
		}
		d.NumeroDevis = utils.NextNumero(latest, year)
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO devis(numero_devis, client_id, date_devis, ville_depart, ville_arrivee,
             type_marchandises, prix_ht, taux_tva, statut, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
         RETURNING id, montant_taxe, prix_ttc, created_at`,
		d.NumeroDevis, d.ClientID, d.DateDevis, d.VilleDepart, d.VilleArrivee,
		d.TypeMarchandises, d.PrixHT, d.TauxTVA, d.Statut, d.Notes,
	).Scan(&d.ID, &d.MontantTaxe, &d.PrixTTC, &d.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// NextNumero previews the number the next devis would receive.
func (r *DevisRepository) NextNumero(ctx context.Context) (string, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	year := timeutil.Now().Year()
	latest, err := latestNumeroForYear(ctx, tx, "devis", "numero_devis", year)
	if err != nil {
		return "", err
	}
	return utils.NextNumero(latest, year), nil
}

func (r *DevisRepository) Get(ctx context.Context, id int) (*models.Devis, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+devisColumns+`
         FROM devis d JOIN clients c ON c.id = d.client_id
         WHERE d.id=$1`, id)
	return scanDevis(row)
}

// BuildDevisWhere assembles the WHERE clause for a filtered devis list.
func BuildDevisWhere(f models.DevisFilter) (string, []any) {
	var conds []string
	var args []any

	if f.ClientID > 0 {
		args = append(args, f.ClientID)
		conds = append(conds, fmt.Sprintf("d.client_id = $%d", len(args)))
	}
	if f.DateDebut != "" {
		args = append(args, f.DateDebut)
		conds = append(conds, fmt.Sprintf("d.date_devis >= $%d", len(args)))
	}
	if f.DateFin != "" {
		args = append(args, f.DateFin)
		conds = append(conds, fmt.Sprintf("d.date_devis <= $%d", len(args)))
	}
	if f.Statut != "" {
		args = append(args, f.Statut)
		conds = append(conds, fmt.Sprintf("d.statut = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(d.numero_devis ILIKE $%d OR c.nom_entite ILIKE $%d)", n, n))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *DevisRepository) List(ctx context.Context, f models.DevisFilter) ([]*models.Devis, int, error) {
	where, args := BuildDevisWhere(f)

	var total int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM devis d JOIN clients c ON c.id = d.client_id `+where,
		args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(f.Page, f.Limit)
	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf(
		`SELECT %s FROM devis d JOIN clients c ON c.id = d.client_id %s
         ORDER BY d.date_devis DESC, d.id DESC LIMIT $%d OFFSET $%d`,
		devisColumns, where, len(args)-1, len(args))

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []*models.Devis
	for rows.Next() {
		d, err := scanDevis(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, d)
	}
	return list, total, rows.Err()
}

// ListByClient returns a client's devis history, newest first.
func (r *DevisRepository) ListByClient(ctx context.Context, clientID int) ([]*models.Devis, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+devisColumns+`
         FROM devis d JOIN clients c ON c.id = d.client_id
         WHERE d.client_id=$1
         ORDER BY d.date_devis DESC, d.id DESC`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Devis
	for rows.Next() {
		d, err := scanDevis(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *DevisRepository) Update(ctx context.Context, id int, req *models.UpdateDevisRequest) (*models.Devis, error) {
	set, args := buildSet([]Field{
		{"client_id", req.ClientID},
		{"date_devis", req.DateDevis},
		{"ville_depart", req.VilleDepart},
		{"ville_arrivee", req.VilleArrivee},
		{"type_marchandises", req.TypeMarchandises},
		{"prix_ht", req.PrixHT},
		{"taux_tva", req.TauxTVA},
		{"statut", req.Statut},
		{"notes", req.Notes},
	})
	if set == "" {
		return r.Get(ctx, id)
	}

	args = append(args, id)
	tag, err := r.DB.Exec(ctx, fmt.Sprintf(
		`UPDATE devis SET %s WHERE id=$%d`, set, len(args)), args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}
	return r.Get(ctx, id)
}

func (r *DevisRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM devis WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Convert turns an accepted devis into an expedition. Both writes run
// in one transaction: the devis flips to Converti and the expedition is
// created with the next number in the expedition sequence.
func (r *DevisRepository) Convert(ctx context.Context, id int) (*models.Expedition, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	d, err := scanDevis(tx.QueryRow(ctx,
		`SELECT `+devisColumns+`
         FROM devis d JOIN clients c ON c.id = d.client_id
         WHERE d.id=$1`, id))
	if err != nil {
		return nil, err
	}
	if d.Statut == models.DevisConverti {
		return nil, ErrAlreadyConverted
	}

	year := timeutil.Now().Year()
	latest, err := latestNumeroForYear(ctx, tx, "expeditions", "numero_expedition", year)
	if err != nil {
		return nil, err
	}

	e := &models.Expedition{
		ClientID:         d.ClientID,
		NumeroExpedition: utils.NextNumero(latest, year),
		DateExpedition:   timeutil.Now(),
		TypeMarchandises: d.TypeMarchandises,
		VilleDepart:      d.VilleDepart,
		VilleArrivee:     d.VilleArrivee,
		PrixHT:           d.PrixHT,
		TauxTVA:          d.TauxTVA,
		StatutPaiement:   models.PaiementNonPaye,
		StatutLivraison:  models.LivraisonEnAttente,
		Notes:            d.Notes,
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO expeditions(numero_expedition, client_id, date_expedition, type_marchandises,
             ville_depart, ville_arrivee, prix_ht, taux_tva, statut_paiement, statut_livraison, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
         RETURNING id, montant_taxe, prix_ttc, solde_restant, created_at`,
		e.NumeroExpedition, e.ClientID, e.DateExpedition, e.TypeMarchandises,
		e.VilleDepart, e.VilleArrivee, e.PrixHT, e.TauxTVA,
		e.StatutPaiement, e.StatutLivraison, e.Notes,
	).Scan(&e.ID, &e.MontantTaxe, &e.PrixTTC, &e.SoldeRestant, &e.CreatedAt)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE devis SET statut=$1 WHERE id=$2`, models.DevisConverti, id); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	e.NomEntite = d.NomEntite
	e.AdresseClient = d.AdresseClient
	e.ICE = d.ICE
	return e, nil
}
