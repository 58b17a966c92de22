package services

import (
	"context"

	"transport-backend/internal/models"
	"transport-backend/internal/repositories"
	"transport-backend/pkg/utils"
)

type ClientService struct {
	Repo           *repositories.ClientRepository
	ExpeditionRepo *repositories.ExpeditionRepository
	DevisRepo      *repositories.DevisRepository
}

func NewClientService(repo *repositories.ClientRepository, expeditionRepo *repositories.ExpeditionRepository, devisRepo *repositories.DevisRepository) *ClientService {
	return &ClientService{Repo: repo, ExpeditionRepo: expeditionRepo, DevisRepo: devisRepo}
}

func validateClient(typeClient, nomEntite, numeroTelephone string) []utils.FieldError {
	var fields []utils.FieldError
	if nomEntite == "" {
		fields = append(fields, utils.FieldError{Field: "nom_entite", Message: "Le nom est obligatoire"})
	}
	if numeroTelephone == "" {
		fields = append(fields, utils.FieldError{Field: "numero_telephone", Message: "Le numéro de téléphone est obligatoire"})
	}
	if typeClient != "" && typeClient != models.ClientEntreprise && typeClient != models.ClientParticulier {
		fields = append(fields, utils.FieldError{Field: "type_client", Message: "Type de client invalide"})
	}
	return fields
}

func (s *ClientService) CreateClient(ctx context.Context, req *models.CreateClientRequest) (*models.Client, error) {
	if fields := validateClient(req.TypeClient, req.NomEntite, req.NumeroTelephone); len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	typeClient := req.TypeClient
	if typeClient == "" {
		typeClient = models.ClientEntreprise
	}

	client := &models.Client{
		TypeClient:      typeClient,
		NomEntite:       req.NomEntite,
		NumeroTelephone: req.NumeroTelephone,
		AdresseComplete: req.AdresseComplete,
		Email:           req.Email,
		ICE:             req.ICE,
		Notes:           req.Notes,
	}

	if err := s.Repo.Create(ctx, client); err != nil {
		return nil, mapDBError(err)
	}
	return client, nil
}

func (s *ClientService) GetClient(ctx context.Context, id int) (*models.Client, error) {
	client, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, mapDBError(err)
	}
	return client, nil
}

func (s *ClientService) ListClients(ctx context.Context, f models.ClientFilter) ([]*models.Client, int, error) {
	clients, total, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, 0, mapDBError(err)
	}
	return clients, total, nil
}

func (s *ClientService) UpdateClient(ctx context.Context, id int, req *models.UpdateClientRequest) (*models.Client, error) {
	var fields []utils.FieldError
	if req.NomEntite != nil && *req.NomEntite == "" {
		fields = append(fields, utils.FieldError{Field: "nom_entite", Message: "Le nom ne peut pas être vide"})
	}
	if req.NumeroTelephone != nil && *req.NumeroTelephone == "" {
		fields = append(fields, utils.FieldError{Field: "numero_telephone", Message: "Le numéro de téléphone ne peut pas être vide"})
	}
	if req.TypeClient != nil && *req.TypeClient != models.ClientEntreprise && *req.TypeClient != models.ClientParticulier {
		fields = append(fields, utils.FieldError{Field: "type_client", Message: "Type de client invalide"})
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	client, err := s.Repo.Update(ctx, id, req)
	if err != nil {
		return nil, mapDBError(err)
	}
	return client, nil
}

func (s *ClientService) DeleteClient(ctx context.Context, id int) error {
	ok, err := s.Repo.SoftDelete(ctx, id)
	if err != nil {
		return mapDBError(err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// ClientHistory bundles a client's expeditions and devis, newest first.
type ClientHistory struct {
	Client      *models.Client       `json:"client"`
	Expeditions []*models.Expedition `json:"expeditions"`
	Devis       []*models.Devis      `json:"devis"`
}

func (s *ClientService) GetClientHistory(ctx context.Context, id int) (*ClientHistory, error) {
	client, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, mapDBError(err)
	}

	expeditions, err := s.ExpeditionRepo.ListByClient(ctx, id)
	if err != nil {
		return nil, mapDBError(err)
	}

	devis, err := s.DevisRepo.ListByClient(ctx, id)
	if err != nil {
		return nil, mapDBError(err)
	}

	return &ClientHistory{Client: client, Expeditions: expeditions, Devis: devis}, nil
}
