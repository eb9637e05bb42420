// Package console shows a loaded document as a framed text dialog on a
// terminal.
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/hyperifyio/cehta/internal/dialog"
	"github.com/hyperifyio/cehta/internal/extract"
	"github.com/hyperifyio/cehta/internal/host"
)

const (
	defaultWidth = 80
	// Pixel sizes of one character cell, used for px dialog sizes.
	cellWidthPx  = 8
	cellHeightPx = 16
)

// Launcher renders the dialog to Out. Width is capped at TermWidth when that
// is positive.
type Launcher struct {
	Out       io.Writer
	Extractor extract.Extractor
	TermWidth int
	TTY       bool
	NoColor   bool
}

var _ dialog.Launcher = (*Launcher)(nil)

// NewLauncher returns a Launcher writing to f, sized to f when it is a
// terminal.
func NewLauncher(f *os.File, noColor bool) *Launcher {
	l := &Launcher{Out: f, Extractor: extract.MarkupExtractor{}, NoColor: noColor}
	if fd := int(f.Fd()); term.IsTerminal(fd) {
		l.TTY = true
		if w, _, err := term.GetSize(fd); err == nil {
			l.TermWidth = w
		}
	}
	return l
}

// Show attaches b to a fresh document, renders it and returns 0; the console
// dialog has no way to set a result of its own.
func (l *Launcher) Show(ctx context.Context, b host.Behavior, options string) (int, error) {
	opts := dialog.ParseOptions(options)
	win := newWindow(l.Out, l.TTY)
	doc := &Document{win: win}
	if err := b.Attach(doc); err != nil {
		return 0, fmt.Errorf("attach document: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	ex := l.Extractor
	if ex == nil {
		ex = extract.MarkupExtractor{}
	}
	page := ex.Extract(doc.text.String())
	b.SetStatusText("Done")

	title := page.Title
	if title == "" {
		title = win.Title()
	}
	_, err := io.WriteString(l.Out, l.render(opts, title, page.Text, win.status.Text())+"\n")
	log.Debug().Str("name", doc.name).Int("chars", len(page.Text)).Msg("dialog rendered")
	return 0, err
}

func (l *Launcher) render(opts dialog.Options, title, body, status string) string {
	width := opts.Width.Cells(cellWidthPx)
	if width <= 0 {
		width = defaultWidth
	}
	if l.TermWidth > 0 && width > l.TermWidth {
		width = l.TermWidth
	}
	// two columns of border
	inner := width - 2
	if inner < 1 {
		inner = 1
	}

	r := lipgloss.NewRenderer(l.Out)
	lines := strings.Split(r.NewStyle().Width(inner).Render(body), "\n")
	if height := opts.Height.Cells(cellHeightPx); height > 0 && !opts.Resizable {
		// two rows of border
		limit := height - 2
		if limit < 1 {
			limit = 1
		}
		if len(lines) > limit {
			lines = lines[:limit]
		}
	}

	frame := r.NewStyle().Border(lipgloss.RoundedBorder())
	heading := r.NewStyle().Bold(true).MaxWidth(width)
	statusStyle := r.NewStyle().Faint(true).MaxWidth(width)
	if !l.NoColor {
		frame = frame.BorderForeground(lipgloss.Color("63"))
		heading = heading.Foreground(lipgloss.Color("212"))
	}

	parts := []string{heading.Render(title), frame.Render(strings.Join(lines, "\n"))}
	if opts.Status && status != "" {
		parts = append(parts, statusStyle.Render(status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
