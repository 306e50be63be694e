package report

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/go-pdf/fpdf"

	"unipact/internal/core/port"
)

// PDF renders completion reports with fpdf and stores them through a
// port.FileStorage under reports/<campaign id>.pdf. Regenerating a report
// overwrites the previous file.
type PDF struct {
	files port.FileStorage
	now   func() time.Time
}

func NewPDF(files port.FileStorage) *PDF {
	return &PDF{files: files, now: time.Now}
}

func (g *PDF) Generate(ctx context.Context, in port.ReportInput) (string, error) {
	var buf bytes.Buffer
	if err := g.render(&buf, in); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key := path.Join("reports", in.Campaign.ID.String()+".pdf")
	return g.files.Put(ctx, key, "application/pdf", &buf)
}

func (g *PDF) render(buf *bytes.Buffer, in port.ReportInput) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Campaign report: "+in.Campaign.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("Campaign Completion Report"))
	pdf.Ln(14)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(45, 7, tr(label))
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 7, tr(value), "", "L", false)
	}
	row("Campaign", in.Campaign.Title)
	row("Type", string(in.Campaign.Type))
	row("Company", in.Company.Name)
	row("Budget", "MYR "+in.Campaign.Budget.StringFixed(2))
	if in.Campaign.Deadline != nil {
		row("Deadline", in.Campaign.Deadline.Format(time.DateOnly))
	}
	row("Status", string(in.Campaign.Status))

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr("Awarded club"))
	pdf.Ln(9)
	if in.Club != nil {
		row("Club", in.Club.Name)
		row("University", in.Club.University)
		row("Rank", string(in.Club.Rank))
	} else {
		row("Club", "none")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Deliverables (%d)", len(in.Deliverables))))
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	for i, d := range in.Deliverables {
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d. %s  (%s)", i+1, d.FileRef, d.UploadedAt.UTC().Format(time.RFC3339))), "", "L", false)
	}
	if len(in.Deliverables) == 0 {
		pdf.Cell(0, 6, tr("No deliverables were submitted."))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 5, tr("Generated "+g.now().UTC().Format(time.RFC1123)))

	return pdf.Output(buf)
}
