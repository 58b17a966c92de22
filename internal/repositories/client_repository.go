package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"transport-backend/internal/models"
)

type ClientRepository struct {
	DB *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{DB: db}
}

const clientColumns = `id, type_client, nom_entite, numero_telephone, adresse_complete, email, ice, notes, actif, date_ajout`

func scanClient(row interface{ Scan(...any) error }) (*models.Client, error) {
	var c models.Client
	err := row.Scan(&c.ID, &c.TypeClient, &c.NomEntite, &c.NumeroTelephone, &c.AdresseComplete,
		&c.Email, &c.ICE, &c.Notes, &c.Actif, &c.DateAjout)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) Create(ctx context.Context, c *models.Client) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO clients(type_client, nom_entite, numero_telephone, adresse_complete, email, ice, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, actif, date_ajout`,
		c.TypeClient, c.NomEntite, c.NumeroTelephone, c.AdresseComplete, c.Email, c.ICE, c.Notes,
	).Scan(&c.ID, &c.Actif, &c.DateAjout)
}

func (r *ClientRepository) Get(ctx context.Context, id int) (*models.Client, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id=$1 AND actif=TRUE`, id)
	return scanClient(row)
}

// BuildClientWhere assembles the WHERE clause for a filtered client list.
func BuildClientWhere(f models.ClientFilter) (string, []any) {
	conds := []string{"actif=TRUE"}
	var args []any

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(nom_entite ILIKE $%d OR numero_telephone ILIKE $%d OR ice ILIKE $%d)", n, n, n))
	}
	if f.TypeClient != "" {
		args = append(args, f.TypeClient)
		conds = append(conds, fmt.Sprintf("type_client = $%d", len(args)))
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *ClientRepository) List(ctx context.Context, f models.ClientFilter) ([]*models.Client, int, error) {
	where, args := BuildClientWhere(f)

	var total int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM clients `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(f.Page, f.Limit)
	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf(`SELECT %s FROM clients %s ORDER BY nom_entite ASC LIMIT $%d OFFSET $%d`,
		clientColumns, where, len(args)-1, len(args))

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, err
		}
		clients = append(clients, c)
	}
	return clients, total, rows.Err()
}

// Update applies only the fields present in the request.
func (r *ClientRepository) Update(ctx context.Context, id int, req *models.UpdateClientRequest) (*models.Client, error) {
	set, args := buildSet([]Field{
		{"type_client", req.TypeClient},
		{"nom_entite", req.NomEntite},
		{"numero_telephone", req.NumeroTelephone},
		{"adresse_complete", req.AdresseComplete},
		{"email", req.Email},
		{"ice", req.ICE},
		{"notes", req.Notes},
	})
	if set == "" {
		return r.Get(ctx, id)
	}

	args = append(args, id)
	row := r.DB.QueryRow(ctx, fmt.Sprintf(
		`UPDATE clients SET %s WHERE id=$%d AND actif=TRUE RETURNING %s`,
		set, len(args), clientColumns), args...)
	return scanClient(row)
}

// SoftDelete deactivates a client, preserving its expedition history.
func (r *ClientRepository) SoftDelete(ctx context.Context, id int) (bool, error) {
	tag, err := r.DB.Exec(ctx, `UPDATE clients SET actif=FALSE WHERE id=$1 AND actif=TRUE`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
