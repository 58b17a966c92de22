package services

import (
	"context"
	"fmt"
	"strings"

	"transport-backend/pkg/utils"
)

// factureData carries the fields shared by facture and devis rendering.
type factureData struct {
	Title       string
	Numero      string
	DateLine    string
	NomEntite   string
	ICE         string
	Trajet      string
	Designation string
	PrixHT      float64
	TauxTVA     float64
	MontantTaxe float64
	PrixTTC     float64
	WordsLine   string
}

// GenerateFacture renders the invoice for an expedition.
func (s *PDFService) GenerateFacture(ctx context.Context, id int) ([]byte, string, error) {
	e, err := s.ExpeditionRepo.Get(ctx, id)
	if err != nil {
		return nil, "", mapDBError(err)
	}

	data := factureData{
		Title:       "Facture",
		Numero:      e.NumeroExpedition,
		DateLine:    fmt.Sprintf("Ait Melloul le %s", e.DateExpedition.Format("02/01/2006")),
		NomEntite:   e.NomEntite,
		ICE:         e.ICE,
		Trajet:      strings.ToUpper(fmt.Sprintf("%s vers %s", e.VilleDepart, e.VilleArrivee)),
		Designation: e.TypeMarchandises,
		PrixHT:      e.PrixHT,
		TauxTVA:     e.TauxTVA,
		MontantTaxe: e.MontantTaxe,
		PrixTTC:     e.PrixTTC,
		WordsLine: fmt.Sprintf("La présente facture est arrêtée à la somme de : %s Dirhams",
			utils.FrenchWordsCapitalized(int(e.PrixTTC))),
	}

	out, err := renderFacture(data)
	if err != nil {
		return nil, "", err
	}
	return out, fmt.Sprintf("facture_%s.pdf", e.NumeroExpedition), nil
}

// GenerateDevisPDF renders the quote document for a devis.
func (s *PDFService) GenerateDevisPDF(ctx context.Context, id int) ([]byte, string, error) {
	d, err := s.DevisRepo.Get(ctx, id)
	if err != nil {
		return nil, "", mapDBError(err)
	}

	data := factureData{
		Title:       "Devis",
		Numero:      d.NumeroDevis,
		DateLine:    fmt.Sprintf("Ait Melloul le %s", d.DateDevis.Format("02/01/2006")),
		NomEntite:   d.NomEntite,
		ICE:         d.ICE,
		Trajet:      strings.ToUpper(fmt.Sprintf("%s vers %s", d.VilleDepart, d.VilleArrivee)),
		Designation: d.TypeMarchandises,
		PrixHT:      d.PrixHT,
		TauxTVA:     d.TauxTVA,
		MontantTaxe: d.MontantTaxe,
		PrixTTC:     d.PrixTTC,
		WordsLine: fmt.Sprintf("La présente facture (Devis) est arrêtée à la somme de : %s Dirhams",
			utils.FrenchWordsCapitalized(int(d.PrixTTC))),
	}

	out, err := renderFacture(data)
	if err != nil {
		return nil, "", err
	}
	return out, fmt.Sprintf("devis_%s.pdf", d.NumeroDevis), nil
}

// GenerateFactureModele renders the blank invoice template operators
// print and fill by hand. No authentication, no database access.
func (s *PDFService) GenerateFactureModele() ([]byte, string, error) {
	dots := strings.Repeat(".", 60)

	data := factureData{
		Title:     "Facture",
		Numero:    dots[:30],
		DateLine:  "Ait Melloul le " + dots[:30],
		NomEntite: dots,
		ICE:       dots[:40],
		WordsLine: "La présente facture est arrêtée à la somme de : " + dots + " Dirhams",
	}

	out, err := renderFacture(data)
	if err != nil {
		return nil, "", err
	}
	return out, "facture_modele.pdf", nil
}

func renderFacture(data factureData) ([]byte, error) {
	pdf, tr := newDocument("P")
	letterhead(pdf, tr, data.DateLine)

	// Client box, centred
	pdf.SetY(55)
	pdf.SetDrawColor(51, 51, 51)
	pdf.SetLineWidth(0.6)
	pdf.SetX(45)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(120, 10, tr("Client : "+data.NomEntite), "LTR", 1, "C", false, 0, "")
	pdf.SetX(45)
	pdf.SetFont("Arial", "", 10)
	ice := data.ICE
	if ice == "" {
		ice = "A/C"
	}
	pdf.CellFormat(120, 10, tr("ICE : "+ice), "LBR", 1, "C", false, 0, "")
	pdf.SetLineWidth(0.2)
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(180, 7, tr(fmt.Sprintf("%s N° : %s", data.Title, data.Numero)), "", 1, "L", false, 0, "")
	pdf.Ln(15)

	// TRAJET / DESIGNATION / P.U / P.T HT table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(220, 220, 220)
	pdf.CellFormat(45, 8, "TRAJET", "1", 0, "C", true, 0, "")
	pdf.CellFormat(70, 8, "DESIGNATION", "1", 0, "C", true, 0, "")
	pdf.CellFormat(32, 8, "P.U", "1", 0, "C", true, 0, "")
	pdf.CellFormat(33, 8, "P.T HT", "1", 1, "C", true, 0, "")

	designation := data.Designation
	if designation == "" && data.Trajet != "" {
		designation = "TRANSPORT DE MARCHANDISE"
	}
	montant := ""
	if data.PrixHT > 0 {
		montant = fmt.Sprintf("%.2f", data.PrixHT)
	}

	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(45, 14, tr(data.Trajet), "1", 0, "C", false, 0, "")
	pdf.CellFormat(70, 14, tr(designation), "1", 0, "C", false, 0, "")
	pdf.CellFormat(32, 14, montant, "1", 0, "R", false, 0, "")
	pdf.CellFormat(33, 14, montant, "1", 1, "R", false, 0, "")

	// Totals, right aligned under the price columns
	tvaLabel := "TVA"
	if data.TauxTVA > 0 {
		tvaLabel = tr(fmt.Sprintf("TVA %g%%", data.TauxTVA))
	}
	totalHT, totalTVA, totalTTC := "", "", ""
	if data.PrixHT > 0 {
		totalHT = fmt.Sprintf("%.2f", data.PrixHT)
		totalTVA = fmt.Sprintf("%.2f", data.MontantTaxe)
		totalTTC = fmt.Sprintf("%.2f", data.PrixTTC)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetX(130)
	pdf.CellFormat(32, 8, "TOTAL HT", "1", 0, "L", true, 0, "")
	pdf.CellFormat(33, 8, totalHT, "1", 1, "R", false, 0, "")
	pdf.SetX(130)
	pdf.CellFormat(32, 8, tvaLabel, "1", 0, "L", true, 0, "")
	pdf.CellFormat(33, 8, totalTVA, "1", 1, "R", false, 0, "")
	pdf.SetX(130)
	pdf.CellFormat(32, 8, "TOTAL TTC", "1", 0, "L", true, 0, "")
	pdf.CellFormat(33, 8, totalTTC, "1", 1, "R", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(180, 6, tr(data.WordsLine), "", "L", false)

	legalFooter(pdf, tr)
	return outputPDF(pdf, strings.ToLower(data.Title))
}
