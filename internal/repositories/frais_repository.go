package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"transport-backend/internal/models"
)

type FraisRepository struct {
	DB *pgxpool.Pool
}

func NewFraisRepository(db *pgxpool.Pool) *FraisRepository {
	return &FraisRepository{DB: db}
}

const fraisColumns = `f.id, f.categorie_id, f.numero_camion, f.montant, f.date_frais,
	f.description, f.reference_facture, f.mode_paiement, f.notes, f.created_at,
	cf.nom, cf.type_categorie`

func scanFrais(row interface{ Scan(...any) error }) (*models.Frais, error) {
	var f models.Frais
	err := row.Scan(&f.ID, &f.CategorieID, &f.NumeroCamion, &f.Montant, &f.DateFrais,
		&f.Description, &f.ReferenceFacture, &f.ModePaiement, &f.Notes, &f.CreatedAt,
		&f.CategorieNom, &f.TypeCategorie)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FraisRepository) Create(ctx context.Context, f *models.Frais) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO frais(categorie_id, numero_camion, montant, date_frais,
             description, reference_facture, mode_paiement, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id, created_at`,
		f.CategorieID, f.NumeroCamion, f.Montant, f.DateFrais,
		f.Description, f.ReferenceFacture, f.ModePaiement, f.Notes,
	).Scan(&f.ID, &f.CreatedAt)
}

func (r *FraisRepository) Get(ctx context.Context, id int) (*models.Frais, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+fraisColumns+`
         FROM frais f JOIN categories_frais cf ON cf.id = f.categorie_id
         WHERE f.id=$1`, id)
	return scanFrais(row)
}

// BuildFraisWhere assembles the WHERE clause for a filtered expense list.
func BuildFraisWhere(f models.FraisFilter) (string, []any) {
	var conds []string
	var args []any

	if f.DateDebut != "" {
		args = append(args, f.DateDebut)
		conds = append(conds, fmt.Sprintf("f.date_frais >= $%d", len(args)))
	}
	if f.DateFin != "" {
		args = append(args, f.DateFin)
		conds = append(conds, fmt.Sprintf("f.date_frais <= $%d", len(args)))
	}
	if f.CategorieID > 0 {
		args = append(args, f.CategorieID)
		conds = append(conds, fmt.Sprintf("f.categorie_id = $%d", len(args)))
	}
	if f.TypeCategorie != "" {
		args = append(args, f.TypeCategorie)
		conds = append(conds, fmt.Sprintf("cf.type_categorie = $%d", len(args)))
	}
	if f.NumeroCamion != "" {
		args = append(args, "%"+f.NumeroCamion+"%")
		conds = append(conds, fmt.Sprintf("f.numero_camion ILIKE $%d", len(args)))
	}
	if f.ModePaiement != "" {
		args = append(args, f.ModePaiement)
		conds = append(conds, fmt.Sprintf("f.mode_paiement = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *FraisRepository) List(ctx context.Context, f models.FraisFilter) ([]*models.Frais, int, error) {
	where, args := BuildFraisWhere(f)

	var total int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM frais f JOIN categories_frais cf ON cf.id = f.categorie_id `+where,
		args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(f.Page, f.Limit)
	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf(
		`SELECT %s FROM frais f JOIN categories_frais cf ON cf.id = f.categorie_id %s
         ORDER BY f.date_frais DESC, f.id DESC LIMIT $%d OFFSET $%d`,
		fraisColumns, where, len(args)-1, len(args))

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []*models.Frais
	for rows.Next() {
		fr, err := scanFrais(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, fr)
	}
	return list, total, rows.Err()
}

// ListFiltered returns every matching expense without pagination,
// grouped by type then date, for the expense report PDF.
func (r *FraisRepository) ListFiltered(ctx context.Context, f models.FraisFilter) ([]*models.Frais, error) {
	where, args := BuildFraisWhere(f)

	rows, err := r.DB.Query(ctx,
		`SELECT `+fraisColumns+`
         FROM frais f JOIN categories_frais cf ON cf.id = f.categorie_id `+where+`
         ORDER BY cf.type_categorie ASC, f.date_frais ASC, f.id ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Frais
	for rows.Next() {
		fr, err := scanFrais(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, fr)
	}
	return list, rows.Err()
}

func (r *FraisRepository) Update(ctx context.Context, id int, req *models.UpdateFraisRequest) (*models.Frais, error) {
	set, args := buildSet([]Field{
		{"categorie_id", req.CategorieID},
		{"numero_camion", req.NumeroCamion},
		{"montant", req.Montant},
		{"date_frais", req.DateFrais},
		{"description", req.Description},
		{"reference_facture", req.ReferenceFacture},
		{"mode_paiement", req.ModePaiement},
		{"notes", req.Notes},
	})
	if set == "" {
		return r.Get(ctx, id)
	}

	args = append(args, id)
	tag, err := r.DB.Exec(ctx, fmt.Sprintf(
		`UPDATE frais SET %s WHERE id=$%d`, set, len(args)), args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}
	return r.Get(ctx, id)
}

func (r *FraisRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM frais WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// fraisParCategorieQuery keeps the per category breakdown to the ten
// largest totals.
func fraisParCategorieQuery(from string) string {
	return `SELECT cf.nom, cf.type_categorie, COALESCE(SUM(f.montant), 0), COUNT(*) ` + from + `
         GROUP BY cf.nom, cf.type_categorie ORDER BY SUM(f.montant) DESC LIMIT 10`
}

// Stats aggregates the filtered expenses: overall total, per category
// type, per category and a twelve month evolution series.
func (r *FraisRepository) Stats(ctx context.Context, f models.FraisFilter) (*models.FraisStats, error) {
	where, args := BuildFraisWhere(f)
	from := `FROM frais f JOIN categories_frais cf ON cf.id = f.categorie_id ` + where

	stats := &models.FraisStats{}

	err := r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(f.montant), 0), COUNT(*) `+from, args...,
	).Scan(&stats.Total.MontantTotal, &stats.Total.NombreFrais)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx,
		`SELECT cf.type_categorie, COALESCE(SUM(f.montant), 0), COUNT(*) `+from+`
         GROUP BY cf.type_categorie ORDER BY cf.type_categorie`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var t models.FraisTypeTotal
		if err := rows.Scan(&t.TypeCategorie, &t.MontantTotal, &t.NombreFrais); err != nil {
			return nil, err
		}
		stats.ParType = append(stats.ParType, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.DB.Query(ctx, fraisParCategorieQuery(from), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var c models.FraisCategorieTotal
		if err := rows.Scan(&c.CategorieNom, &c.TypeCategorie, &c.MontantTotal, &c.NombreFrais); err != nil {
			return nil, err
		}
		stats.ParCategorie = append(stats.ParCategorie, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.DB.Query(ctx,
		`SELECT EXTRACT(YEAR FROM f.date_frais)::int, EXTRACT(MONTH FROM f.date_frais)::int,
                COALESCE(SUM(f.montant), 0), COUNT(*) `+from+`
         GROUP BY 1, 2 ORDER BY 1 DESC, 2 DESC LIMIT 12`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var m models.FraisMonthTotal
		if err := rows.Scan(&m.Annee, &m.Mois, &m.MontantTotal, &m.NombreFrais); err != nil {
			return nil, err
		}
		stats.Evolution = append(stats.Evolution, m)
	}
	return stats, rows.Err()
}
