package services

import (
	"context"
	"fmt"

	"transport-backend/internal/models"
	"transport-backend/internal/timeutil"
)

// GenerateListeExpeditions renders the filtered expedition list in
// landscape with running TTC, paid and outstanding totals.
func (s *PDFService) GenerateListeExpeditions(ctx context.Context, f models.ExpeditionFilter) ([]byte, string, error) {
	expeditions, err := s.ExpeditionRepo.ListFiltered(ctx, f)
	if err != nil {
		return nil, "", mapDBError(err)
	}

	pdf, tr := newDocument("L")

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(267, 10, "GARGAA TRANSPORT", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(267, 8, tr("Liste des Expéditions"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(267, 6, tr(fmt.Sprintf("Généré le : %s", timeutil.Now().Format("02/01/2006"))), "", 1, "C", false, 0, "")

	if line := filterLine(f); line != "" {
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(267, 5, tr("Filtres : "+line), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	widths := []float64{26, 22, 48, 60, 26, 26, 26, 33}
	headers := []string{"N° Exp.", "Date", "Client", "Trajet", "TTC", "Payé", "Solde", "Statut"}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(220, 220, 220)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	var totalTTC, totalPaye, totalSolde float64
	for _, e := range expeditions {
		if pdf.GetY() > 180 {
			pdf.AddPage()
		}

		trajet := fmt.Sprintf("%s → %s", e.VilleDepart, e.VilleArrivee)
		row := []string{
			truncate(e.NumeroExpedition, 12),
			e.DateExpedition.Format("02/01/2006"),
			truncate(e.NomEntite, 24),
			truncate(trajet, 30),
			fmt.Sprintf("%.0f DH", e.PrixTTC),
			fmt.Sprintf("%.0f DH", e.MontantPaye),
			fmt.Sprintf("%.0f DH", e.SoldeRestant),
			e.StatutPaiement,
		}
		for i, cell := range row {
			align := "L"
			if i >= 4 && i <= 6 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)

		totalTTC += e.PrixTTC
		totalPaye += e.MontantPaye
		totalSolde += e.SoldeRestant
	}

	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(267, 7, tr(fmt.Sprintf(
		"TOTAUX : %d expéditions | TTC : %.2f DH | Payé : %.2f DH | Solde : %.2f DH",
		len(expeditions), totalTTC, totalPaye, totalSolde)), "", 1, "L", false, 0, "")

	out, err := outputPDF(pdf, "liste")
	if err != nil {
		return nil, "", err
	}
	return out, fmt.Sprintf("liste_expeditions_%d.pdf", timeutil.Now().Unix()), nil
}

func filterLine(f models.ExpeditionFilter) string {
	var parts []string
	if f.DateDebut != "" {
		parts = append(parts, "du "+f.DateDebut)
	}
	if f.DateFin != "" {
		parts = append(parts, "au "+f.DateFin)
	}
	if f.StatutPaiement != "" {
		parts = append(parts, "paiement "+f.StatutPaiement)
	}
	if f.StatutLivraison != "" {
		parts = append(parts, "livraison "+f.StatutLivraison)
	}
	if len(parts) == 0 {
		return ""
	}
	line := parts[0]
	for _, p := range parts[1:] {
		line += ", " + p
	}
	return line
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
