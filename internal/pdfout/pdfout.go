// Package pdfout renders a loaded document into a PDF file instead of a
// window.
package pdfout

import (
    "context"
    "errors"
    "fmt"
    "strings"

    "github.com/jung-kurt/gofpdf"
    "github.com/rs/zerolog/log"

    "github.com/hyperifyio/cehta/internal/dialog"
    "github.com/hyperifyio/cehta/internal/extract"
    "github.com/hyperifyio/cehta/internal/host"
    "github.com/hyperifyio/cehta/internal/textenc"
)

// Launcher writes each shown document to OutPath.
type Launcher struct {
    OutPath   string
    Extractor extract.Extractor
}

var _ dialog.Launcher = (*Launcher)(nil)

// page is both the window and the document sink of a PDF "dialog".
type page struct {
    title string
    name  string
    text  textenc.Text
}

func (p *page) Parent() host.Window          { return nil }
func (p *page) SetTitle(title string)        { p.title = title }
func (p *page) Foreground()                  {}
func (p *page) Children() []host.Control     { return nil }
func (p *page) Window() (host.Window, error) { return p, nil }
func (p *page) SetName(name string)          { p.name = name }

func (p *page) Write(text textenc.Text) error {
    p.text = text
    return nil
}

// Show attaches b, renders the document and returns 0.
func (l *Launcher) Show(ctx context.Context, b host.Behavior, options string) (int, error) {
    if strings.TrimSpace(l.OutPath) == "" {
        return 0, errors.New("pdf output path is not set")
    }
    pg := &page{}
    if err := b.Attach(pg); err != nil {
        return 0, fmt.Errorf("attach document: %w", err)
    }
    if err := ctx.Err(); err != nil {
        return 0, err
    }
    ex := l.Extractor
    if ex == nil {
        ex = extract.MarkupExtractor{}
    }
    doc := ex.Extract(pg.text.String())
    title := doc.Title
    if title == "" {
        title = pg.title
    }
    if err := writePDF(l.OutPath, title, b.CommandLine(), doc.Text, dialog.ParseOptions(options)); err != nil {
        return 0, err
    }
    b.SetStatusText("Saved " + l.OutPath)
    log.Info().Str("out", l.OutPath).Msg("wrote pdf")
    return 0, nil
}

// writePDF lays out title and paragraphs on A4 pages. Blank lines separate
// paragraphs; a dialog width in em narrows the text column.
func writePDF(outPath, title, subject, text string, opts dialog.Options) error {
    pdf := gofpdf.New("P", "mm", "A4", "")
    tr := pdf.UnicodeTranslatorFromDescriptor("")
    pdf.SetTitle(tr(title), false)
    pdf.SetSubject(tr(subject), false)
    pdf.SetCreator("cehta", false)
    pdf.SetFont("Helvetica", "", 11)
    pdf.AddPage()

    colWidth := 0.0
    if w := opts.Width.Cells(8); w > 0 {
        // roughly 2.2mm per em at 11pt
        left, _, right, _ := pdf.GetMargins()
        pageW, _ := pdf.GetPageSize()
        colWidth = float64(w) * 2.2
        if avail := pageW - left - right; colWidth > avail {
            colWidth = 0
        }
    }

    if strings.TrimSpace(title) != "" {
        pdf.SetFont("Helvetica", "B", 14)
        pdf.MultiCell(colWidth, 8, tr(title), "", "L", false)
        pdf.SetFont("Helvetica", "", 11)
        pdf.Ln(2)
    }
    for _, line := range strings.Split(text, "\n") {
        s := strings.TrimSpace(line)
        if s == "" {
            pdf.Ln(3)
            continue
        }
        pdf.MultiCell(colWidth, 5, tr(s), "", "L", false)
    }
    return pdf.OutputFileAndClose(outPath)
}
