package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/cehta/internal/host"
	"github.com/hyperifyio/cehta/internal/textenc"
)

// Window is the terminal standing in for a top-level dialog window. Its only
// child is a status bar.
type Window struct {
	out    io.Writer
	tty    bool
	title  string
	status *StatusBar
}

func newWindow(out io.Writer, tty bool) *Window {
	return &Window{out: out, tty: tty, status: &StatusBar{}}
}

func (w *Window) Parent() host.Window { return nil }

// SetTitle records the title with control characters removed; on a terminal
// it is also sent as a window title escape sequence.
func (w *Window) SetTitle(title string) {
	title = stripControl(title)
	w.title = title
	if w.tty {
		fmt.Fprintf(w.out, "\x1b]0;%s\x07", title)
	}
}

func (w *Window) Title() string { return w.title }

// stripControl drops C0 and C1 control characters, ESC and BEL included, so
// a title cannot end the escape sequence it is sent in.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// Foreground has nothing to do on a terminal.
func (w *Window) Foreground() {
	log.Debug().Str("title", w.title).Msg("window to foreground")
}

func (w *Window) Children() []host.Control {
	return []host.Control{w.status}
}

// StatusBar keeps the last status text for display under the dialog.
type StatusBar struct {
	simple bool
	text   string
}

func (s *StatusBar) ClassName() string   { return host.StatusBarClass }
func (s *StatusBar) SetSimple(on bool)   { s.simple = on }
func (s *StatusBar) SetText(text string) { s.text = text }
func (s *StatusBar) Text() string        { return s.text }

var errAlreadyWritten = errors.New("document already written")

// Document is the sink a Behavior attaches to. It accepts one write.
type Document struct {
	win     *Window
	name    string
	text    textenc.Text
	written bool
}

func (d *Document) Window() (host.Window, error) { return d.win, nil }

func (d *Document) SetName(name string) { d.name = name }

func (d *Document) Write(text textenc.Text) error {
	if d.written {
		return errAlreadyWritten
	}
	d.text, d.written = text, true
	return nil
}
