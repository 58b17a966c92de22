package services

import (
	"context"

	"transport-backend/internal/models"
	"transport-backend/internal/repositories"
	"transport-backend/pkg/utils"
)

type CategorieFraisService struct {
	Repo *repositories.CategorieFraisRepository
}

func NewCategorieFraisService(repo *repositories.CategorieFraisRepository) *CategorieFraisService {
	return &CategorieFraisService{Repo: repo}
}

var validTypesCategorie = map[string]bool{
	models.CategorieMagasin: true,
	models.CategorieCamion:  true,
	models.CategorieAutre:   true,
}

func (s *CategorieFraisService) CreateCategorie(ctx context.Context, req *models.CreateCategorieFraisRequest) (*models.CategorieFrais, error) {
	var fields []utils.FieldError
	if req.Nom == "" {
		fields = append(fields, utils.FieldError{Field: "nom", Message: "Le nom est obligatoire"})
	}
	if !validTypesCategorie[req.TypeCategorie] {
		fields = append(fields, utils.FieldError{Field: "type_categorie", Message: "Type de catégorie invalide"})
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	c := &models.CategorieFrais{
		Nom:           req.Nom,
		TypeCategorie: req.TypeCategorie,
		Description:   req.Description,
	}

	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, mapDBError(err)
	}
	return c, nil
}

func (s *CategorieFraisService) GetCategorie(ctx context.Context, id int) (*models.CategorieFrais, error) {
	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, mapDBError(err)
	}
	return c, nil
}

func (s *CategorieFraisService) ListCategories(ctx context.Context, f models.CategorieFraisFilter) ([]*models.CategorieFrais, int, error) {
	categories, total, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, 0, mapDBError(err)
	}
	return categories, total, nil
}

func (s *CategorieFraisService) UpdateCategorie(ctx context.Context, id int, req *models.UpdateCategorieFraisRequest) (*models.CategorieFrais, error) {
	var fields []utils.FieldError
	if req.Nom != nil && *req.Nom == "" {
		fields = append(fields, utils.FieldError{Field: "nom", Message: "Le nom ne peut pas être vide"})
	}
	if req.TypeCategorie != nil && !validTypesCategorie[*req.TypeCategorie] {
		fields = append(fields, utils.FieldError{Field: "type_categorie", Message: "Type de catégorie invalide"})
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	c, err := s.Repo.Update(ctx, id, req)
	if err != nil {
		return nil, mapDBError(err)
	}
	return c, nil
}

// DeleteCategorie refuses to remove a category still referenced by
// expenses, so historic reports keep their labels.
func (s *CategorieFraisService) DeleteCategorie(ctx context.Context, id int) error {
	n, err := s.Repo.CountFrais(ctx, id)
	if err != nil {
		return mapDBError(err)
	}
	if n > 0 {
		return ErrCategoryInUse
	}

	ok, err := s.Repo.SoftDelete(ctx, id)
	if err != nil {
		return mapDBError(err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
