package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
	"transport-backend/internal/metrics"
	"transport-backend/internal/repositories"
)

// Company letterhead shown on every generated document.
const (
	companyName    = "STE GARGAA TRANS SARL AU"
	companyTagline = "TRANSPORT DE MARCHANDISES"
	companyAddress = "Adresse : RDC NR 100 BLOC C LOTISSEMENT ADMINE AIT MELLOUL"
	companyEmail   = "Email : gargaatrans@gmail.com"
	companyPhone   = "Tél : 0528243694 / 0619348787"
	companyFiscal  = "ICE 003855059000033 | TP 49818274 | RC 34567 | IF 71003179 | CNSS 6580902"
	companyBank    = "ATTIJARI WAFA BANK - RIB : 007 022 0012965000000270 47"
)

// PDFService renders the printable documents: factures, devis, the
// blank facture template, the expedition list and the expense report.
type PDFService struct {
	ExpeditionRepo *repositories.ExpeditionRepository
	DevisRepo      *repositories.DevisRepository
	FraisRepo      *repositories.FraisRepository
}

func NewPDFService(expeditionRepo *repositories.ExpeditionRepository, devisRepo *repositories.DevisRepository, fraisRepo *repositories.FraisRepository) *PDFService {
	return &PDFService{
		ExpeditionRepo: expeditionRepo,
		DevisRepo:      devisRepo,
		FraisRepo:      fraisRepo,
	}
}

// newDocument builds an A4 page with the company letterhead on top.
// The returned translator maps UTF-8 to the cp1252 core fonts so the
// French accents render.
func newDocument(orientation string) (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	return pdf, tr
}

// letterhead draws the company block top right with the document date.
func letterhead(pdf *gofpdf.Fpdf, tr func(string) string, dateLine string) {
	pdf.SetFont("Times", "B", 16)
	pdf.SetTextColor(30, 64, 175)
	pdf.CellFormat(180, 8, tr(companyName), "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(180, 5, tr(companyTagline), "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(51, 51, 51)
	pdf.CellFormat(180, 6, tr(dateLine), "", 1, "R", false, 0, "")
	pdf.Ln(6)
	pdf.SetTextColor(0, 0, 0)
}

// legalFooter prints the address, contact and fiscal identifiers at the
// bottom of the page.
func legalFooter(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetY(-45)
	pdf.SetDrawColor(51, 51, 51)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(51, 51, 51)
	pdf.CellFormat(180, 4, tr(companyAddress), "", 1, "C", false, 0, "")
	pdf.CellFormat(180, 4, tr(companyEmail), "", 1, "C", false, 0, "")
	pdf.CellFormat(180, 4, tr(companyPhone), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(180, 4, tr(companyFiscal), "", 1, "C", false, 0, "")
	pdf.CellFormat(180, 4, tr(companyBank), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func outputPDF(pdf *gofpdf.Fpdf, kind string) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}
	metrics.PDFGeneratedTotal.WithLabelValues(kind).Inc()
	return buf.Bytes(), nil
}
