package export

import (
	"bytes"
	"fmt"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const ContentTypePDF = "application/pdf"

type PDFConfig struct {
	PageSize   string
	MarginsMM  float64
	FontFamily string
}

func DefaultPDFConfig() PDFConfig {
	return PDFConfig{PageSize: "A4", MarginsMM: 15, FontFamily: "Helvetica"}
}

type PDFRenderer struct {
	cfg PDFConfig
}

func NewPDFRenderer(cfg PDFConfig) *PDFRenderer {
	return &PDFRenderer{cfg: cfg}
}

// Render lays out the same sections as RenderText on A4 pages.
func (p *PDFRenderer) Render(d Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", p.cfg.PageSize, "")
	pdf.SetMargins(p.cfg.MarginsMM, p.cfg.MarginsMM, p.cfg.MarginsMM)
	pdf.SetAutoPageBreak(true, p.cfg.MarginsMM)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	titleCase := cases.Title(language.English)

	pdf.SetTitle(titleCase.String(strings.ToLower(DocumentTitle)), true)
	pdf.AddPage()

	// ---------- title ----------
	pdf.SetFont(p.cfg.FontFamily, "B", 18)
	pdf.CellFormat(0, 12, tr(DocumentTitle), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ---------- sections ----------
	for _, s := range d.sections() {
		pdf.SetFont(p.cfg.FontFamily, "B", 13)
		heading := titleCase.String(strings.ToLower(strings.TrimSuffix(s.title, ":")))
		pdf.CellFormat(0, 9, tr(heading), "B", 1, "L", false, 0, "")
		pdf.Ln(2)

		pdf.SetFont(p.cfg.FontFamily, "", 11)
		for _, line := range s.body {
			pdf.MultiCell(0, 6, tr(line), "", "L", false)
		}
		pdf.Ln(4)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to lay out pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
