// Package loader reads a document named on the command line, decodes it and
// splits it into prolog and payload, then hands it to a rendering engine.
package loader

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/cehta/internal/host"
	"github.com/hyperifyio/cehta/internal/prolog"
	"github.com/hyperifyio/cehta/internal/source"
	"github.com/hyperifyio/cehta/internal/textenc"
)

// Loader owns a document from the moment it is read until it is attached to
// a sink. It is not safe for concurrent use.
type Loader struct {
	cmdline string
	path    string

	text    textenc.Text
	payload int

	status host.StatusLine
}

var _ host.Behavior = (*Loader)(nil)

// New returns a Loader for the given raw command line. The document path is
// its first token; see SplitPath.
func New(cmdline string) *Loader {
	return &Loader{cmdline: cmdline, path: SplitPath(cmdline)}
}

// SplitPath returns the path part of a command line. A leading double quote
// makes the path run to the matching quote, or to the end when there is none.
// Otherwise the path ends at the first space, tab, CR or LF.
func SplitPath(cmdline string) string {
	if strings.HasPrefix(cmdline, `"`) {
		rest := cmdline[1:]
		if end := strings.IndexByte(rest, '"'); end >= 0 {
			return rest[:end]
		}
		return rest
	}
	if end := strings.IndexAny(cmdline, " \t\r\n"); end >= 0 {
		return cmdline[:end]
	}
	return cmdline
}

// Open reads, decodes and scans the document. It stops at the first failing
// stage and returns a *Error tagged with that stage.
func (l *Loader) Open() error {
	l.text, l.payload = nil, 0

	raw, err := source.Read(l.path)
	if err != nil {
		stage := "open"
		var f *source.Failure
		if errors.As(err, &f) {
			stage = f.Op
		}
		return ioError(stage, err)
	}
	log.Debug().Str("path", l.path).Int("bytes", len(raw)).Bool("bom", textenc.HasBOM(raw)).Msg("document read")

	text, err := textenc.Normalize(raw)
	if err != nil {
		return decodeError(err)
	}

	l.text = text
	l.payload = prolog.Locate(text)
	log.Debug().Int("units", len(text)).Int("payload", l.payload).Msg("document decoded")
	return nil
}

// CommandLine returns the raw command line, as given to New.
func (l *Loader) CommandLine() string { return l.cmdline }

// Path returns the document path taken from the command line.
func (l *Loader) Path() string { return l.path }

// Text returns the decoded document, or nil before Open or after Consume.
func (l *Loader) Text() textenc.Text { return l.text }

// Payload returns the offset in Text where markup starts.
func (l *Loader) Payload() int { return l.payload }

// QueryProcessingInstruction returns the parameter string of the named
// instruction found in the prolog. A miss is not an error.
func (l *Loader) QueryProcessingInstruction(name string) (string, bool) {
	params, ok := prolog.Instruction(l.text, l.payload, name)
	if !ok {
		log.Debug().Str("name", name).Msg("processing instruction not found")
	}
	return params, ok
}

// Consume hands over the decoded text and drops the loader's reference to it.
// Later calls return nil.
func (l *Loader) Consume() textenc.Text {
	text := l.text
	l.text, l.payload = nil, 0
	return text
}

// Attach labels the window the sink lives in with the document path, finds
// its status line and writes the document into the sink. The sink owns the
// text afterwards.
func (l *Loader) Attach(sink host.Sink) error {
	if w, err := sink.Window(); err != nil {
		log.Debug().Err(err).Msg("sink has no window; skipping window labeling")
	} else if top := host.TopLevel(w); top != nil {
		top.SetTitle(l.path)
		top.Foreground()
		l.status = host.FindStatusLine(top)
		if l.status != nil {
			l.status.SetSimple(true)
		}
	}
	sink.SetName(l.path)

	text := l.Consume()
	if text == nil {
		return ErrNotLoaded
	}
	return sink.Write(text)
}

// SetStatusText shows text in the status line found by Attach, if any.
func (l *Loader) SetStatusText(text string) {
	if l.status == nil {
		return
	}
	l.status.SetText(text)
}
