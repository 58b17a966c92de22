package services

import (
	"context"
	"fmt"

	"transport-backend/internal/models"
	"transport-backend/internal/timeutil"
)

// GenerateFraisExport renders the filtered expense report with per-type
// subtotals. Returns ErrNotFound when no expense matches the filter.
func (s *PDFService) GenerateFraisExport(ctx context.Context, f models.FraisFilter) ([]byte, string, error) {
	frais, err := s.FraisRepo.ListFiltered(ctx, f)
	if err != nil {
		return nil, "", mapDBError(err)
	}
	if len(frais) == 0 {
		return nil, "", ErrNotFound
	}

	pdf, tr := newDocument("P")

	pdf.SetFont("Times", "B", 16)
	pdf.SetTextColor(30, 64, 175)
	pdf.CellFormat(180, 8, "GARGAA TRANSPORT SARL", "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(180, 5, tr("Rapport des Frais / Dépenses"), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(51, 51, 51)
	pdf.CellFormat(180, 5, tr("Généré le "+timeutil.Now().Format("02/01/2006")), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// Active filters
	pdf.SetFont("Arial", "", 9)
	switch {
	case f.DateDebut != "" && f.DateFin != "":
		pdf.CellFormat(180, 5, tr(fmt.Sprintf("Période : du %s au %s", f.DateDebut, f.DateFin)), "", 1, "L", false, 0, "")
	case f.DateDebut != "":
		pdf.CellFormat(180, 5, tr("À partir du : "+f.DateDebut), "", 1, "L", false, 0, "")
	case f.DateFin != "":
		pdf.CellFormat(180, 5, tr("Jusqu'au : "+f.DateFin), "", 1, "L", false, 0, "")
	}
	if f.TypeCategorie != "" {
		pdf.CellFormat(180, 5, tr("Type : "+f.TypeCategorie), "", 1, "L", false, 0, "")
	}
	if f.NumeroCamion != "" {
		pdf.CellFormat(180, 5, tr("Camion : "+f.NumeroCamion), "", 1, "L", false, 0, "")
	}
	if f.ModePaiement != "" {
		pdf.CellFormat(180, 5, tr("Mode de paiement : "+f.ModePaiement), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(180, 8, tr("Note de frais"), "", 1, "L", false, 0, "")
	pdf.Ln(1)

	widths := []float64{22, 22, 34, 26, 24, 52}
	headers := []string{"Date", "Type", "Catégorie", "Montant", "Paiement", "Description"}

	drawHeader := func() {
		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(220, 220, 220)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	drawHeader()

	totauxParType := map[string]float64{}
	var totalGeneral float64

	pdf.SetFont("Arial", "", 7)
	for _, fr := range frais {
		if pdf.GetY() > 250 {
			pdf.AddPage()
			drawHeader()
			pdf.SetFont("Arial", "", 7)
		}

		pdf.CellFormat(widths[0], 6, fr.DateFrais.Format("02/01/2006"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, tr(fr.TypeCategorie), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, tr(truncate(fr.CategorieNom, 20)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%.2f DH", fr.Montant), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, tr(fr.ModePaiement), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[5], 6, tr(truncate(fr.Description, 34)), "1", 1, "L", false, 0, "")

		totauxParType[fr.TypeCategorie] += fr.Montant
		totalGeneral += fr.Montant
	}
	pdf.Ln(5)

	// Per-type subtotals, only the ones with expenses
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(180, 7, tr("Résumé"), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, t := range []string{models.CategorieMagasin, models.CategorieCamion, models.CategorieAutre} {
		if totauxParType[t] <= 0 {
			continue
		}
		pdf.CellFormat(60, 7, tr("Total "+t), "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, fmt.Sprintf("%.2f DH", totauxParType[t]), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(220, 220, 220)
	pdf.CellFormat(60, 8, tr("TOTAL GÉNÉRAL"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 8, fmt.Sprintf("%.2f DH", totalGeneral), "1", 1, "R", true, 0, "")

	pdf.SetY(-20)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(180, 5, tr("GARGAA TRANSPORT SARL - Rapport généré automatiquement"), "", 1, "C", false, 0, "")

	out, err := outputPDF(pdf, "frais")
	if err != nil {
		return nil, "", err
	}
	return out, fmt.Sprintf("frais_export_%s.pdf", timeutil.Now().Format("2006-01-02")), nil
}
