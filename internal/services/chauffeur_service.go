package services

import (
	"context"

	"transport-backend/internal/models"
	"transport-backend/internal/repositories"
	"transport-backend/pkg/utils"
)

type ChauffeurService struct {
	Repo *repositories.ChauffeurRepository
}

func NewChauffeurService(repo *repositories.ChauffeurRepository) *ChauffeurService {
	return &ChauffeurService{Repo: repo}
}

func (s *ChauffeurService) CreateChauffeur(ctx context.Context, req *models.CreateChauffeurRequest) (*models.Chauffeur, error) {
	if req.NomComplet == "" {
		return nil, newValidationError([]utils.FieldError{
			{Field: "nom_complet", Message: "Le nom complet est obligatoire"},
		})
	}

	c := &models.Chauffeur{
		NomComplet: req.NomComplet,
		Telephone:  req.Telephone,
		Adresse:    req.Adresse,
		Permis:     req.Permis,
	}

	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, mapDBError(err)
	}
	return c, nil
}

func (s *ChauffeurService) GetChauffeur(ctx context.Context, id int) (*models.Chauffeur, error) {
	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, mapDBError(err)
	}
	return c, nil
}

func (s *ChauffeurService) ListChauffeurs(ctx context.Context, f models.ChauffeurFilter) ([]*models.Chauffeur, int, error) {
	chauffeurs, total, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, 0, mapDBError(err)
	}
	return chauffeurs, total, nil
}

func (s *ChauffeurService) UpdateChauffeur(ctx context.Context, id int, req *models.UpdateChauffeurRequest) (*models.Chauffeur, error) {
	if req.NomComplet != nil && *req.NomComplet == "" {
		return nil, newValidationError([]utils.FieldError{
			{Field: "nom_complet", Message: "Le nom complet ne peut pas être vide"},
		})
	}

	c, err := s.Repo.Update(ctx, id, req)
	if err != nil {
		return nil, mapDBError(err)
	}
	return c, nil
}

func (s *ChauffeurService) DeleteChauffeur(ctx context.Context, id int) error {
	ok, err := s.Repo.SoftDelete(ctx, id)
	if err != nil {
		return mapDBError(err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
