package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"transport-backend/internal/models"
)

type CategorieFraisRepository struct {
	DB *pgxpool.Pool
}

func NewCategorieFraisRepository(db *pgxpool.Pool) *CategorieFraisRepository {
	return &CategorieFraisRepository{DB: db}
}

const categorieColumns = `id, nom, type_categorie, description, actif, created_at`

func scanCategorie(row interface{ Scan(...any) error }) (*models.CategorieFrais, error) {
	var c models.CategorieFrais
	err := row.Scan(&c.ID, &c.Nom, &c.TypeCategorie, &c.Description, &c.Actif, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategorieFraisRepository) Create(ctx context.Context, c *models.CategorieFrais) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO categories_frais(nom, type_categorie, description)
         VALUES($1, $2, $3)
         RETURNING id, actif, created_at`,
		c.Nom, c.TypeCategorie, c.Description,
	).Scan(&c.ID, &c.Actif, &c.CreatedAt)
}

func (r *CategorieFraisRepository) Get(ctx context.Context, id int) (*models.CategorieFrais, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+categorieColumns+` FROM categories_frais WHERE id=$1 AND actif=TRUE`, id)
	return scanCategorie(row)
}

// BuildCategorieFraisWhere assembles the WHERE clause for a filtered category list.
func BuildCategorieFraisWhere(f models.CategorieFraisFilter) (string, []any) {
	where := `WHERE actif=TRUE`
	var args []any
	if f.TypeCategorie != "" {
		args = append(args, f.TypeCategorie)
		where += fmt.Sprintf(" AND type_categorie=$%d", len(args))
	}
	return where, args
}

func (r *CategorieFraisRepository) List(ctx context.Context, f models.CategorieFraisFilter) ([]*models.CategorieFrais, int, error) {
	where, args := BuildCategorieFraisWhere(f)

	var total int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM categories_frais `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(f.Page, f.Limit)
	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf(`SELECT %s FROM categories_frais %s ORDER BY type_categorie ASC, nom ASC LIMIT $%d OFFSET $%d`,
		categorieColumns, where, len(args)-1, len(args))

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var categories []*models.CategorieFrais
	for rows.Next() {
		c, err := scanCategorie(rows)
		if err != nil {
			return nil, 0, err
		}
		categories = append(categories, c)
	}
	return categories, total, rows.Err()
}

func (r *CategorieFraisRepository) Update(ctx context.Context, id int, req *models.UpdateCategorieFraisRequest) (*models.CategorieFrais, error) {
	set, args := buildSet([]Field{
		{"nom", req.Nom},
		{"type_categorie", req.TypeCategorie},
		{"description", req.Description},
	})
	if set == "" {
		return r.Get(ctx, id)
	}

	args = append(args, id)
	row := r.DB.QueryRow(ctx, fmt.Sprintf(
		`UPDATE categories_frais SET %s WHERE id=$%d AND actif=TRUE RETURNING %s`,
		set, len(args), categorieColumns), args...)
	return scanCategorie(row)
}

// CountFrais reports how many expenses reference the category. Deletion
// is refused while the count is non zero.
func (r *CategorieFraisRepository) CountFrais(ctx context.Context, id int) (int, error) {
	var n int
	err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM frais WHERE categorie_id=$1`, id).Scan(&n)
	return n, err
}

func (r *CategorieFraisRepository) SoftDelete(ctx context.Context, id int) (bool, error) {
	tag, err := r.DB.Exec(ctx, `UPDATE categories_frais SET actif=FALSE WHERE id=$1 AND actif=TRUE`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
