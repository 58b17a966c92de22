package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"transport-backend/internal/models"
	"transport-backend/internal/services"
	"transport-backend/pkg/utils"
)

type PDFHandler struct {
	Service *services.PDFService
}

func NewPDFHandler(s *services.PDFService) *PDFHandler {
	return &PDFHandler{Service: s}
}

func writePDF(w http.ResponseWriter, data []byte, filename string) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.Write(data)
}

func (h *PDFHandler) Facture(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	data, filename, err := h.Service.GenerateFacture(r.Context(), id)
	if err != nil {
		handleServiceError(w, err, "Expédition non trouvée")
		return
	}
	writePDF(w, data, filename)
}

func (h *PDFHandler) DevisPDF(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Fail(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	data, filename, err := h.Service.GenerateDevisPDF(r.Context(), id)
	if err != nil {
		handleServiceError(w, err, "Devis non trouvé")
		return
	}
	writePDF(w, data, filename)
}

func (h *PDFHandler) FactureModele(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.Service.GenerateFactureModele()
	if err != nil {
		handleServiceError(w, err, "Document non trouvé")
		return
	}
	writePDF(w, data, filename)
}

// listePDFRequest is the filter body posted by the list export screen.
type listePDFRequest struct {
	ClientID        int    `json:"client_id"`
	DateDebut       string `json:"date_debut"`
	DateFin         string `json:"date_fin"`
	StatutPaiement  string `json:"statut_paiement"`
	StatutLivraison string `json:"statut_livraison"`
	Search          string `json:"search"`
}

func (h *PDFHandler) ListeExpeditions(w http.ResponseWriter, r *http.Request) {
	var req listePDFRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.Fail(w, http.StatusBadRequest, "Corps de requête invalide")
			return
		}
	}

	f := models.ExpeditionFilter{
		ClientID:        req.ClientID,
		DateDebut:       req.DateDebut,
		DateFin:         req.DateFin,
		StatutPaiement:  req.StatutPaiement,
		StatutLivraison: req.StatutLivraison,
		Search:          req.Search,
	}

	data, filename, err := h.Service.GenerateListeExpeditions(r.Context(), f)
	if err != nil {
		handleServiceError(w, err, "Aucune expédition trouvée")
		return
	}
	writePDF(w, data, filename)
}

type fraisPDFRequest struct {
	DateDebut     string `json:"date_debut"`
	DateFin       string `json:"date_fin"`
	CategorieID   int    `json:"categorie_id"`
	TypeCategorie string `json:"type_categorie"`
	NumeroCamion  string `json:"numero_camion"`
	ModePaiement  string `json:"mode_paiement"`
}

func (h *PDFHandler) FraisExport(w http.ResponseWriter, r *http.Request) {
	var req fraisPDFRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.Fail(w, http.StatusBadRequest, "Corps de requête invalide")
			return
		}
	}

	f := models.FraisFilter{
		DateDebut:     req.DateDebut,
		DateFin:       req.DateFin,
		CategorieID:   req.CategorieID,
		TypeCategorie: req.TypeCategorie,
		NumeroCamion:  req.NumeroCamion,
		ModePaiement:  req.ModePaiement,
	}

	data, filename, err := h.Service.GenerateFraisExport(r.Context(), f)
	if err != nil {
		handleServiceError(w, err, "Aucun frais trouvé")
		return
	}
	writePDF(w, data, filename)
}
