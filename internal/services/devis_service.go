package services

import (
	"context"
	"errors"

	"transport-backend/internal/models"
	"transport-backend/internal/repositories"
	"transport-backend/internal/timeutil"
	"transport-backend/pkg/utils"
)

type DevisService struct {
	Repo *repositories.DevisRepository
}

func NewDevisService(repo *repositories.DevisRepository) *DevisService {
	return &DevisService{Repo: repo}
}

var validStatutsDevis = map[string]bool{
	models.DevisEnAttente: true,
	models.DevisAccepte:   true,
	models.DevisRefuse:    true,
	models.DevisConverti:  true,
}

func (s *DevisService) CreateDevis(ctx context.Context, req *models.CreateDevisRequest) (*models.Devis, error) {
	var fields []utils.FieldError
	if req.ClientID <= 0 {
		fields = append(fields, utils.FieldError{Field: "client_id", Message: "Le client est obligatoire"})
	}
	if req.PrixHT <= 0 {
		fields = append(fields, utils.FieldError{Field: "prix_ht", Message: "Le prix HT doit être strictement positif"})
	}
	if req.TauxTVA < 0 {
		fields = append(fields, utils.FieldError{Field: "taux_tva", Message: "Le taux de TVA ne peut pas être négatif"})
	}
	if req.Statut != "" && !validStatutsDevis[req.Statut] {
		fields = append(fields, utils.FieldError{Field: "statut", Message: "Statut de devis invalide"})
	}

	dateDevis := timeutil.Now()
	if req.DateDevis != "" {
		d, err := parseDate(req.DateDevis)
		if err != nil {
			fields = append(fields, utils.FieldError{Field: "date_devis", Message: "Date invalide, format attendu AAAA-MM-JJ"})
		} else {
			dateDevis = d
		}
	}

	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	statut := req.Statut
	if statut == "" {
		statut = models.DevisEnAttente
	}
	tauxTVA := req.TauxTVA
	if tauxTVA == 0 {
		tauxTVA = 10
	}

	d := &models.Devis{
		ClientID:         req.ClientID,
		NumeroDevis:      req.NumeroDevis,
		DateDevis:        dateDevis,
		VilleDepart:      req.VilleDepart,
		VilleArrivee:     req.VilleArrivee,
		TypeMarchandises: req.TypeMarchandises,
		PrixHT:           req.PrixHT,
		TauxTVA:          tauxTVA,
		Statut:           statut,
		Notes:            req.Notes,
	}

	if err := s.Repo.Create(ctx, d); err != nil {
		return nil, mapDBError(err)
	}
	return s.GetDevis(ctx, d.ID)
}

func (s *DevisService) GetDevis(ctx context.Context, id int) (*models.Devis, error) {
	d, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, mapDBError(err)
	}
	return d, nil
}

func (s *DevisService) ListDevis(ctx context.Context, f models.DevisFilter) ([]*models.Devis, int, error) {
	list, total, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, 0, mapDBError(err)
	}
	return list, total, nil
}

func (s *DevisService) UpdateDevis(ctx context.Context, id int, req *models.UpdateDevisRequest) (*models.Devis, error) {
	var fields []utils.FieldError
	if req.ClientID != nil && *req.ClientID <= 0 {
		fields = append(fields, utils.FieldError{Field: "client_id", Message: "Client invalide"})
	}
	if req.PrixHT != nil && *req.PrixHT <= 0 {
		fields = append(fields, utils.FieldError{Field: "prix_ht", Message: "Le prix HT doit être strictement positif"})
	}
	if req.TauxTVA != nil && *req.TauxTVA < 0 {
		fields = append(fields, utils.FieldError{Field: "taux_tva", Message: "Le taux de TVA ne peut pas être négatif"})
	}
	if req.Statut != nil && !validStatutsDevis[*req.Statut] {
		fields = append(fields, utils.FieldError{Field: "statut", Message: "Statut de devis invalide"})
	}
	if req.DateDevis != nil {
		if _, err := parseDate(*req.DateDevis); err != nil {
			fields = append(fields, utils.FieldError{Field: "date_devis", Message: "Date invalide, format attendu AAAA-MM-JJ"})
		}
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	d, err := s.Repo.Update(ctx, id, req)
	if err != nil {
		return nil, mapDBError(err)
	}
	return d, nil
}

func (s *DevisService) DeleteDevis(ctx context.Context, id int) error {
	ok, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return mapDBError(err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// NextNumero previews the number the next devis would receive.
func (s *DevisService) NextNumero(ctx context.Context) (string, error) {
	numero, err := s.Repo.NextNumero(ctx)
	if err != nil {
		return "", mapDBError(err)
	}
	return numero, nil
}

// ConvertDevis turns a devis into an expedition and marks it Converti.
func (s *DevisService) ConvertDevis(ctx context.Context, id int) (*models.Expedition, error) {
	e, err := s.Repo.Convert(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyConverted) {
			return nil, ErrNotConvertible
		}
		return nil, mapDBError(err)
	}
	return e, nil
}
