package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"transport-backend/internal/models"
)

type ChauffeurRepository struct {
	DB *pgxpool.Pool
}

func NewChauffeurRepository(db *pgxpool.Pool) *ChauffeurRepository {
	return &ChauffeurRepository{DB: db}
}

const chauffeurColumns = `id, nom_complet, telephone, adresse, permis, actif, date_ajout`

func scanChauffeur(row interface{ Scan(...any) error }) (*models.Chauffeur, error) {
	var c models.Chauffeur
	err := row.Scan(&c.ID, &c.NomComplet, &c.Telephone, &c.Adresse, &c.Permis, &c.Actif, &c.DateAjout)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChauffeurRepository) Create(ctx context.Context, c *models.Chauffeur) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO chauffeurs(nom_complet, telephone, adresse, permis)
         VALUES($1, $2, $3, $4)
         RETURNING id, actif, date_ajout`,
		c.NomComplet, c.Telephone, c.Adresse, c.Permis,
	).Scan(&c.ID, &c.Actif, &c.DateAjout)
}

func (r *ChauffeurRepository) Get(ctx context.Context, id int) (*models.Chauffeur, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+chauffeurColumns+` FROM chauffeurs WHERE id=$1`, id)
	return scanChauffeur(row)
}

// BuildChauffeurWhere assembles the WHERE clause for a filtered chauffeur list.
func BuildChauffeurWhere(f models.ChauffeurFilter) (string, []any) {
	var conds []string
	var args []any

	if f.ActifOnly {
		conds = append(conds, "actif=TRUE")
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(nom_complet ILIKE $%d OR telephone ILIKE $%d)", n, n))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *ChauffeurRepository) List(ctx context.Context, f models.ChauffeurFilter) ([]*models.Chauffeur, int, error) {
	where, args := BuildChauffeurWhere(f)

	var total int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM chauffeurs `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(f.Page, f.Limit)
	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf(`SELECT %s FROM chauffeurs %s ORDER BY nom_complet ASC LIMIT $%d OFFSET $%d`,
		chauffeurColumns, where, len(args)-1, len(args))

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var chauffeurs []*models.Chauffeur
	for rows.Next() {
		c, err := scanChauffeur(rows)
		if err != nil {
			return nil, 0, err
		}
		chauffeurs = append(chauffeurs, c)
	}
	return chauffeurs, total, rows.Err()
}

func (r *ChauffeurRepository) Update(ctx context.Context, id int, req *models.UpdateChauffeurRequest) (*models.Chauffeur, error) {
	set, args := buildSet([]Field{
		{"nom_complet", req.NomComplet},
		{"telephone", req.Telephone},
		{"adresse", req.Adresse},
		{"permis", req.Permis},
	})
	if set == "" {
		return r.Get(ctx, id)
	}

	args = append(args, id)
	row := r.DB.QueryRow(ctx, fmt.Sprintf(
		`UPDATE chauffeurs SET %s WHERE id=$%d RETURNING %s`,
		set, len(args), chauffeurColumns), args...)
	return scanChauffeur(row)
}

// SoftDelete deactivates a chauffeur instead of removing the row.
func (r *ChauffeurRepository) SoftDelete(ctx context.Context, id int) (bool, error) {
	tag, err := r.DB.Exec(ctx, `UPDATE chauffeurs SET actif=FALSE WHERE id=$1 AND actif=TRUE`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
