package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"transport-backend/internal/handlers"
	"transport-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	clientHandler *handlers.ClientHandler,
	expeditionHandler *handlers.ExpeditionHandler,
	devisHandler *handlers.DevisHandler,
	chauffeurHandler *handlers.ChauffeurHandler,
	fraisHandler *handlers.FraisHandler,
	categorieHandler *handlers.CategorieFraisHandler,
	dashboardHandler *handlers.DashboardHandler,
	pdfHandler *handlers.PDFHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	// Protected API routes - Authentication (admin creates accounts)
	r.Handle("/api/auth/register", authMiddleware.RequireAdmin(
		http.HandlerFunc(authHandler.Register))).Methods("POST")

	// Protected API routes - Clients
	clientsAPI := r.PathPrefix("/api/clients").Subrouter()
	clientsAPI.Use(authMiddleware.Authenticate)
	clientsAPI.HandleFunc("", clientHandler.ListClients).Methods("GET")
	clientsAPI.HandleFunc("", clientHandler.CreateClient).Methods("POST")
	clientsAPI.HandleFunc("/{id}", clientHandler.GetClient).Methods("GET")
	clientsAPI.HandleFunc("/{id}", clientHandler.UpdateClient).Methods("PUT")
	clientsAPI.HandleFunc("/{id}", clientHandler.DeleteClient).Methods("DELETE")
	clientsAPI.HandleFunc("/{id}/expeditions", clientHandler.GetClientHistory).Methods("GET")

	// Protected API routes - Expeditions
	expeditionsAPI := r.PathPrefix("/api/expeditions").Subrouter()
	expeditionsAPI.Use(authMiddleware.Authenticate)
	expeditionsAPI.HandleFunc("", expeditionHandler.ListExpeditions).Methods("GET")
	expeditionsAPI.HandleFunc("", expeditionHandler.CreateExpedition).Methods("POST")
	expeditionsAPI.HandleFunc("/next-number", expeditionHandler.NextNumero).Methods("GET")
	expeditionsAPI.HandleFunc("/alertes", expeditionHandler.Alertes).Methods("GET")
	expeditionsAPI.HandleFunc("/{id}", expeditionHandler.GetExpedition).Methods("GET")
	expeditionsAPI.HandleFunc("/{id}", expeditionHandler.UpdateExpedition).Methods("PUT")
	expeditionsAPI.HandleFunc("/{id}", expeditionHandler.DeleteExpedition).Methods("DELETE")

	// Protected API routes - Devis
	devisAPI := r.PathPrefix("/api/devis").Subrouter()
	devisAPI.Use(authMiddleware.Authenticate)
	devisAPI.HandleFunc("", devisHandler.ListDevis).Methods("GET")
	devisAPI.HandleFunc("", devisHandler.CreateDevis).Methods("POST")
	devisAPI.HandleFunc("/next-number", devisHandler.NextNumero).Methods("GET")
	devisAPI.HandleFunc("/{id}", devisHandler.GetDevis).Methods("GET")
	devisAPI.HandleFunc("/{id}", devisHandler.UpdateDevis).Methods("PUT")
	devisAPI.HandleFunc("/{id}", devisHandler.DeleteDevis).Methods("DELETE")
	devisAPI.HandleFunc("/{id}/convertir", devisHandler.ConvertDevis).Methods("POST")

	// Protected API routes - Chauffeurs
	chauffeursAPI := r.PathPrefix("/api/chauffeurs").Subrouter()
	chauffeursAPI.Use(authMiddleware.Authenticate)
	chauffeursAPI.HandleFunc("", chauffeurHandler.ListChauffeurs).Methods("GET")
	chauffeursAPI.HandleFunc("", chauffeurHandler.CreateChauffeur).Methods("POST")
	chauffeursAPI.HandleFunc("/{id}", chauffeurHandler.GetChauffeur).Methods("GET")
	chauffeursAPI.HandleFunc("/{id}", chauffeurHandler.UpdateChauffeur).Methods("PUT")
	chauffeursAPI.HandleFunc("/{id}", chauffeurHandler.DeleteChauffeur).Methods("DELETE")

	// Protected API routes - Frais
	fraisAPI := r.PathPrefix("/api/frais").Subrouter()
	fraisAPI.Use(authMiddleware.Authenticate)
	fraisAPI.HandleFunc("", fraisHandler.ListFrais).Methods("GET")
	fraisAPI.HandleFunc("", fraisHandler.CreateFrais).Methods("POST")
	fraisAPI.HandleFunc("/stats", fraisHandler.Stats).Methods("GET")
	fraisAPI.HandleFunc("/{id}", fraisHandler.GetFrais).Methods("GET")
	fraisAPI.HandleFunc("/{id}", fraisHandler.UpdateFrais).Methods("PUT")
	fraisAPI.HandleFunc("/{id}", fraisHandler.DeleteFrais).Methods("DELETE")

	// Protected API routes - Catégories de frais
	categoriesAPI := r.PathPrefix("/api/categories-frais").Subrouter()
	categoriesAPI.Use(authMiddleware.Authenticate)
	categoriesAPI.HandleFunc("", categorieHandler.ListCategories).Methods("GET")
	categoriesAPI.HandleFunc("", categorieHandler.CreateCategorie).Methods("POST")
	categoriesAPI.HandleFunc("/{id}", categorieHandler.GetCategorie).Methods("GET")
	categoriesAPI.HandleFunc("/{id}", categorieHandler.UpdateCategorie).Methods("PUT")
	categoriesAPI.HandleFunc("/{id}", categorieHandler.DeleteCategorie).Methods("DELETE")

	// Protected API routes - Dashboard
	dashboardAPI := r.PathPrefix("/api/dashboard").Subrouter()
	dashboardAPI.Use(authMiddleware.Authenticate)
	dashboardAPI.HandleFunc("/stats", dashboardHandler.Stats).Methods("GET")
	dashboardAPI.HandleFunc("/evolution", dashboardHandler.Evolution).Methods("GET")

	// PDF routes. The blank invoice template is public, everything else
	// goes through Authenticate, which also accepts ?token= for direct
	// browser downloads.
	r.HandleFunc("/api/pdf/facture/model", pdfHandler.FactureModele).Methods("GET")

	pdfAPI := r.PathPrefix("/api/pdf").Subrouter()
	pdfAPI.Use(authMiddleware.Authenticate)
	pdfAPI.HandleFunc("/facture/{id}", pdfHandler.Facture).Methods("GET")
	pdfAPI.HandleFunc("/devis/{id}", pdfHandler.DevisPDF).Methods("GET")
	pdfAPI.HandleFunc("/liste", pdfHandler.ListeExpeditions).Methods("POST")

	fraisPDFAPI := r.PathPrefix("/api/frais-pdf").Subrouter()
	fraisPDFAPI.Use(authMiddleware.Authenticate)
	fraisPDFAPI.HandleFunc("/export", pdfHandler.FraisExport).Methods("POST")

	// Health endpoint (no auth required - for probes)
	r.HandleFunc("/api/health", healthHandler.Check).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
