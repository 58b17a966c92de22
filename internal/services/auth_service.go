package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"transport-backend/internal/auth"
	"transport-backend/internal/models"
	"transport-backend/internal/repositories"
	"transport-backend/pkg/utils"
)

type AuthService struct {
	Repo       *repositories.UserRepository
	JWTManager *auth.JWTManager
}

func NewAuthService(repo *repositories.UserRepository, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{Repo: repo, JWTManager: jwtManager}
}

// Login checks the credentials and returns a signed token with the user
// profile. Wrong username and wrong password share one error so callers
// cannot probe for accounts.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.NomUtilisateur == "" || req.MotDePasse == "" {
		return nil, newValidationError([]utils.FieldError{
			{Field: "nom_utilisateur", Message: "Nom d'utilisateur et mot de passe requis"},
		})
	}

	user, err := s.Repo.GetByUsername(ctx, req.NomUtilisateur)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidLogin
		}
		return nil, mapDBError(err)
	}

	if !auth.VerifyPassword(user.MotDePasse, req.MotDePasse) {
		return nil, ErrInvalidLogin
	}
	if !user.Actif {
		return nil, ErrAccountDisabled
	}

	if err := s.Repo.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, mapDBError(err)
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

// Register creates a new back office user with a hashed password.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.Utilisateur, error) {
	var fields []utils.FieldError
	if req.NomUtilisateur == "" {
		fields = append(fields, utils.FieldError{Field: "nom_utilisateur", Message: "Le nom d'utilisateur est obligatoire"})
	}
	if len(req.MotDePasse) < 6 {
		fields = append(fields, utils.FieldError{Field: "mot_de_passe", Message: "Le mot de passe doit contenir au moins 6 caractères"})
	}
	if req.NomComplet == "" {
		fields = append(fields, utils.FieldError{Field: "nom_complet", Message: "Le nom complet est obligatoire"})
	}
	if req.Role != "" && req.Role != models.RoleAdmin && req.Role != models.RoleOperateur {
		fields = append(fields, utils.FieldError{Field: "role", Message: "Rôle invalide"})
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	if _, err := s.Repo.GetByUsername(ctx, req.NomUtilisateur); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, mapDBError(err)
	}

	hash, err := auth.HashPassword(req.MotDePasse)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleOperateur
	}

	user := &models.Utilisateur{
		NomUtilisateur: req.NomUtilisateur,
		MotDePasse:     hash,
		NomComplet:     req.NomComplet,
		Email:          req.Email,
		Role:           role,
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		if errors.Is(mapDBError(err), ErrDuplicateNumber) {
			return nil, ErrUsernameTaken
		}
		return nil, mapDBError(err)
	}
	return user, nil
}
