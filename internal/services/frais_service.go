package services

import (
	"context"

	"transport-backend/internal/models"
	"transport-backend/internal/repositories"
	"transport-backend/internal/timeutil"
	"transport-backend/pkg/utils"
)

type FraisService struct {
	Repo *repositories.FraisRepository
}

func NewFraisService(repo *repositories.FraisRepository) *FraisService {
	return &FraisService{Repo: repo}
}

var validModesPaiement = map[string]bool{
	models.PaiementEspeces:  true,
	models.PaiementCheque:   true,
	models.PaiementVirement: true,
	models.PaiementCarte:    true,
}

func (s *FraisService) CreateFrais(ctx context.Context, req *models.CreateFraisRequest) (*models.Frais, error) {
	var fields []utils.FieldError
	if req.CategorieID <= 0 {
		fields = append(fields, utils.FieldError{Field: "categorie_id", Message: "La catégorie est obligatoire"})
	}
	if req.Montant <= 0 {
		fields = append(fields, utils.FieldError{Field: "montant", Message: "Le montant doit être strictement positif"})
	}
	if req.ModePaiement != "" && !validModesPaiement[req.ModePaiement] {
		fields = append(fields, utils.FieldError{Field: "mode_paiement", Message: "Mode de paiement invalide"})
	}

	dateFrais := timeutil.Now()
	if req.DateFrais != "" {
		d, err := parseDate(req.DateFrais)
		if err != nil {
			fields = append(fields, utils.FieldError{Field: "date_frais", Message: "Date invalide, format attendu AAAA-MM-JJ"})
		} else {
			dateFrais = d
		}
	}

	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	modePaiement := req.ModePaiement
	if modePaiement == "" {
		modePaiement = models.PaiementEspeces
	}

	f := &models.Frais{
		CategorieID:      req.CategorieID,
		NumeroCamion:     req.NumeroCamion,
		Montant:          req.Montant,
		DateFrais:        dateFrais,
		Description:      req.Description,
		ReferenceFacture: req.ReferenceFacture,
		ModePaiement:     modePaiement,
		Notes:            req.Notes,
	}

	if err := s.Repo.Create(ctx, f); err != nil {
		return nil, mapDBError(err)
	}
	return s.GetFrais(ctx, f.ID)
}

func (s *FraisService) GetFrais(ctx context.Context, id int) (*models.Frais, error) {
	f, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, mapDBError(err)
	}
	return f, nil
}

func (s *FraisService) ListFrais(ctx context.Context, f models.FraisFilter) ([]*models.Frais, int, error) {
	list, total, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, 0, mapDBError(err)
	}
	return list, total, nil
}

func (s *FraisService) UpdateFrais(ctx context.Context, id int, req *models.UpdateFraisRequest) (*models.Frais, error) {
	var fields []utils.FieldError
	if req.CategorieID != nil && *req.CategorieID <= 0 {
		fields = append(fields, utils.FieldError{Field: "categorie_id", Message: "Catégorie invalide"})
	}
	if req.Montant != nil && *req.Montant <= 0 {
		fields = append(fields, utils.FieldError{Field: "montant", Message: "Le montant doit être strictement positif"})
	}
	if req.ModePaiement != nil && !validModesPaiement[*req.ModePaiement] {
		fields = append(fields, utils.FieldError{Field: "mode_paiement", Message: "Mode de paiement invalide"})
	}
	if req.DateFrais != nil {
		if _, err := parseDate(*req.DateFrais); err != nil {
			fields = append(fields, utils.FieldError{Field: "date_frais", Message: "Date invalide, format attendu AAAA-MM-JJ"})
		}
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	f, err := s.Repo.Update(ctx, id, req)
	if err != nil {
		return nil, mapDBError(err)
	}
	return f, nil
}

func (s *FraisService) DeleteFrais(ctx context.Context, id int) error {
	ok, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return mapDBError(err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *FraisService) Stats(ctx context.Context, f models.FraisFilter) (*models.FraisStats, error) {
	stats, err := s.Repo.Stats(ctx, f)
	if err != nil {
		return nil, mapDBError(err)
	}
	return stats, nil
}
