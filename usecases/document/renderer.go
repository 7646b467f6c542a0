// Package document lays out the printable copy of a FIR.
package document

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/phpdave11/gofpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Adityakk9031/FirAgent/models"
)

const (
	fontFamily = "Helvetica"
	timeLayout = "02 Jan 2006 15:04 MST"
)

type Renderer struct {
	authority string
	now       func() time.Time
}

func NewRenderer(authority string) Renderer {
	if authority == "" {
		authority = "Police Station"
	}
	return Renderer{
		authority: authority,
		now:       time.Now,
	}
}

// RenderFir writes a PDF with the FIR fields followed by its status history.
func (r Renderer) RenderFir(w io.Writer, fir models.Fir, history []models.StatusUpdate) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(16, 16, 16)
	pdf.SetAutoPageBreak(true, 16)
	pdf.SetTitle("First Information Report "+fir.FirId, false)
	pdf.SetCreator(r.authority, false)
	// a Caser is stateful, one per document
	title := cases.Title(language.English)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(flatten(s)) }

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 5, fmt.Sprintf("%s - page %d", fir.FirId, pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.SetTextColor(20, 20, 20)
	pdf.CellFormat(0, 9, "FIRST INFORMATION REPORT", "", 1, "C", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.SetTextColor(70, 70, 70)
	pdf.CellFormat(0, 6, text(r.authority), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "Generated on "+r.now().UTC().Format(timeLayout), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	section := func(heading string) {
		pdf.Ln(2)
		pdf.SetFont(fontFamily, "B", 12)
		pdf.SetTextColor(20, 20, 20)
		pdf.CellFormat(0, 7, heading, "B", 1, "L", false, 0, "")
		pdf.Ln(1)
	}
	field := func(label, value string) {
		pdf.SetFont(fontFamily, "B", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.CellFormat(45, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 10)
		pdf.MultiCell(0, 6, text(orDash(value)), "", "L", false)
	}

	section("Case")
	field("FIR number", fir.FirId)
	field("Status", title.String(fir.Status.Label()))
	field("Registered on", fir.CreatedAt.UTC().Format(timeLayout))
	field("Last updated", fir.UpdatedAt.UTC().Format(timeLayout))
	if fir.ClosedAt != nil {
		field("Closed on", fir.ClosedAt.UTC().Format(timeLayout))
	}
	field("Priority", fmt.Sprintf("%d / %d", fir.Priority, models.MaxFirPriority))

	section("Offence")
	field("Crime", title.String(fir.Crime))
	field("Sections", strings.Join(fir.IpcSections, ", "))
	field("Date and time", deref(fir.IncidentDateTime))
	field("Location", deref(fir.Location))
	field("District", deref(fir.District))
	field("State", deref(fir.State))
	if fir.Latitude != nil && fir.Longitude != nil {
		field("Coordinates", strconv.FormatFloat(*fir.Latitude, 'f', 6, 64)+", "+
			strconv.FormatFloat(*fir.Longitude, 'f', 6, 64))
	}

	section("Persons")
	if fir.IsAnonymous {
		field("Complainant", "Anonymous")
	}
	field("Suspects", strings.Join(fir.Suspects, "; "))
	field("Victims", strings.Join(fir.Victims, "; "))
	field("Witnesses", strings.Join(fir.Witnesses, "; "))

	section("Summary")
	pdf.SetFont(fontFamily, "", 10)
	pdf.SetTextColor(30, 30, 30)
	pdf.MultiCell(0, 5.5, text(fir.Summary), "", "L", false)

	section("Status history")
	if len(history) == 0 {
		pdf.SetFont(fontFamily, "I", 10)
		pdf.MultiCell(0, 5, "(none)", "", "L", false)
	}
	for _, update := range history {
		if !update.IsPublic {
			continue
		}
		pdf.SetFont(fontFamily, "B", 10)
		pdf.SetTextColor(20, 20, 20)
		pdf.CellFormat(0, 5.5, fmt.Sprintf("%s  %s",
			update.CreatedAt.UTC().Format(timeLayout), title.String(update.Status.Label())), "", 1, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 9)
		pdf.SetTextColor(60, 60, 60)
		pdf.MultiCell(0, 4.5, text(update.Description), "", "L", false)
		pdf.Ln(1)
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "could not render fir document")
	}
	return nil
}

func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
