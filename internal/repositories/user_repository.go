package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"transport-backend/internal/models"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, nom_utilisateur, mot_de_passe, nom_complet, email, role, actif, derniere_connexion, created_at`

func scanUser(row interface{ Scan(...any) error }) (*models.Utilisateur, error) {
	var u models.Utilisateur
	err := row.Scan(&u.ID, &u.NomUtilisateur, &u.MotDePasse, &u.NomComplet, &u.Email, &u.Role, &u.Actif, &u.DerniereConnexion, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *models.Utilisateur) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO utilisateurs(nom_utilisateur, mot_de_passe, nom_complet, email, role)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, actif, created_at`,
		u.NomUtilisateur, u.MotDePasse, u.NomComplet, u.Email, u.Role,
	).Scan(&u.ID, &u.Actif, &u.CreatedAt)
}

// TouchLastLogin stamps derniere_connexion for the user.
func (r *UserRepository) TouchLastLogin(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE utilisateurs SET derniere_connexion = NOW() WHERE id=$1`, id)
	return err
}

func (r *UserRepository) Get(ctx context.Context, id int) (*models.Utilisateur, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+userColumns+` FROM utilisateurs WHERE id=$1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByUsername(ctx context.Context, nomUtilisateur string) (*models.Utilisateur, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+userColumns+` FROM utilisateurs WHERE nom_utilisateur=$1`, nomUtilisateur)
	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context) ([]*models.Utilisateur, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+userColumns+` FROM utilisateurs ORDER BY nom_utilisateur ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.Utilisateur
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
