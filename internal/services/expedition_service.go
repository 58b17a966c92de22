package services

import (
	"context"
	"time"

	"transport-backend/internal/models"
	"transport-backend/internal/repositories"
	"transport-backend/internal/timeutil"
	"transport-backend/pkg/utils"
)

type ExpeditionService struct {
	Repo *repositories.ExpeditionRepository
}

func NewExpeditionService(repo *repositories.ExpeditionRepository) *ExpeditionService {
	return &ExpeditionService{Repo: repo}
}

var validPaiements = map[string]bool{
	models.PaiementNonPaye: true,
	models.PaiementPartiel: true,
	models.PaiementPaye:    true,
}

var validLivraisons = map[string]bool{
	models.LivraisonEnAttente: true,
	models.LivraisonEnTransit: true,
	models.LivraisonLivre:     true,
	models.LivraisonAnnule:    true,
}

// parseDate accepts the wire format YYYY-MM-DD.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, timeutil.Location())
}

func (s *ExpeditionService) CreateExpedition(ctx context.Context, req *models.CreateExpeditionRequest) (*models.Expedition, error) {
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
	if req.MontantPaye < 0 {
		fields = append(fields, utils.FieldError{Field: "montant_paye", Message: "Le montant payé ne peut pas être négatif"})
	}
	if req.StatutPaiement != "" && !validPaiements[req.StatutPaiement] {
		fields = append(fields, utils.FieldError{Field: "statut_paiement", Message: "Statut de paiement invalide"})
	}
	if req.StatutLivraison != "" && !validLivraisons[req.StatutLivraison] {
		fields = append(fields, utils.FieldError{Field: "statut_livraison", Message: "Statut de livraison invalide"})
	}

	dateExpedition := timeutil.Now()
	if req.DateExpedition != "" {
		d, err := parseDate(req.DateExpedition)
		if err != nil {
			fields = append(fields, utils.FieldError{Field: "date_expedition", Message: "Date invalide, format attendu AAAA-MM-JJ"})
		} else {
			dateExpedition = d
		}
	}

	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	statutPaiement := req.StatutPaiement
	if statutPaiement == "" {
		statutPaiement = models.PaiementNonPaye
	}
	statutLivraison := req.StatutLivraison
	if statutLivraison == "" {
		statutLivraison = models.LivraisonEnAttente
	}
	tauxTVA := req.TauxTVA
	if tauxTVA == 0 {
		tauxTVA = 10
	}

	ttc, err := TotalWithTax(req.PrixHT, tauxTVA)
	if err != nil {
		return nil, err
	}
	if Outstanding(ttc, req.MontantPaye) < 0 {
		return nil, newValidationError([]utils.FieldError{
			{Field: "montant_paye", Message: "Le montant payé ne peut pas dépasser le montant TTC"},
		})
	}

	e := &models.Expedition{
		ClientID:           req.ClientID,
		NumeroExpedition:   req.NumeroExpedition,
		DateExpedition:     dateExpedition,
		TypeMarchandises:   req.TypeMarchandises,
		VilleDepart:        req.VilleDepart,
		VilleArrivee:       req.VilleArrivee,
		TypeCamion:         req.TypeCamion,
		NumeroCamion:       req.NumeroCamion,
		NomChauffeur:       req.NomChauffeur,
		TelephoneChauffeur: req.TelephoneChauffeur,
		PrixHT:             req.PrixHT,
		TauxTVA:            tauxTVA,
		StatutPaiement:     statutPaiement,
		MontantPaye:        req.MontantPaye,
		StatutLivraison:    statutLivraison,
		Notes:              req.Notes,
	}

	if err := s.Repo.Create(ctx, e); err != nil {
		return nil, mapDBError(err)
	}
	return s.GetExpedition(ctx, e.ID)
}

func (s *ExpeditionService) GetExpedition(ctx context.Context, id int) (*models.Expedition, error) {
	e, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, mapDBError(err)
	}
	return e, nil
}

func (s *ExpeditionService) ListExpeditions(ctx context.Context, f models.ExpeditionFilter) ([]*models.Expedition, int, error) {
	expeditions, total, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, 0, mapDBError(err)
	}
	return expeditions, total, nil
}

func (s *ExpeditionService) UpdateExpedition(ctx context.Context, id int, req *models.UpdateExpeditionRequest) (*models.Expedition, error) {
	var fields []utils.FieldError
	if req.PrixHT != nil && *req.PrixHT <= 0 {
		fields = append(fields, utils.FieldError{Field: "prix_ht", Message: "Le prix HT doit être strictement positif"})
	}
	if req.TauxTVA != nil && *req.TauxTVA < 0 {
		fields = append(fields, utils.FieldError{Field: "taux_tva", Message: "Le taux de TVA ne peut pas être négatif"})
	}
	if req.MontantPaye != nil && *req.MontantPaye < 0 {
		fields = append(fields, utils.FieldError{Field: "montant_paye", Message: "Le montant payé ne peut pas être négatif"})
	}
	if req.StatutPaiement != nil && !validPaiements[*req.StatutPaiement] {
		fields = append(fields, utils.FieldError{Field: "statut_paiement", Message: "Statut de paiement invalide"})
	}
	if req.StatutLivraison != nil && !validLivraisons[*req.StatutLivraison] {
		fields = append(fields, utils.FieldError{Field: "statut_livraison", Message: "Statut de livraison invalide"})
	}
	if req.DateExpedition != nil {
		if _, err := parseDate(*req.DateExpedition); err != nil {
			fields = append(fields, utils.FieldError{Field: "date_expedition", Message: "Date invalide, format attendu AAAA-MM-JJ"})
		}
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	e, err := s.Repo.Update(ctx, id, req)
	if err != nil {
		return nil, mapDBError(err)
	}
	return e, nil
}

func (s *ExpeditionService) DeleteExpedition(ctx context.Context, id int) error {
	ok, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return mapDBError(err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// NextNumero previews the number the next expedition would receive.
func (s *ExpeditionService) NextNumero(ctx context.Context) (string, error) {
	numero, err := s.Repo.NextNumero(ctx)
	if err != nil {
		return "", mapDBError(err)
	}
	return numero, nil
}

func (s *ExpeditionService) Alertes(ctx context.Context) ([]*models.Alerte, error) {
	alertes, err := s.Repo.Alertes(ctx)
	if err != nil {
		return nil, mapDBError(err)
	}
	return alertes, nil
}
