// Package host defines the contracts between the loader and the rendering
// engine that displays a loaded document.
package host

import (
	"strings"

	"github.com/hyperifyio/cehta/internal/textenc"
)

// StatusBarClass is the class name a status line control reports.
const StatusBarClass = "msctls_statusbar32"

// Control is a child of a Window, identified by its class name.
type Control interface {
	ClassName() string
}

// StatusLine is a Control that can show a single line of text.
type StatusLine interface {
	Control
	// SetSimple switches the control to a single undivided text part.
	SetSimple(on bool)
	SetText(text string)
}

// Window is a host window. Parent returns nil for a top-level window.
type Window interface {
	Parent() Window
	SetTitle(title string)
	Foreground()
	Children() []Control
}

// Sink is the document side of the rendering engine.
type Sink interface {
	// Window returns the window the document is displayed in.
	Window() (Window, error)
	// SetName sets the name scripts see for the document's window.
	SetName(name string)
	// Write hands text to the engine, which takes ownership of it.
	Write(text textenc.Text) error
}

// Behavior is what a loaded document can call back into. A Launcher calls
// Attach once the engine is ready to receive content.
type Behavior interface {
	Attach(sink Sink) error
	CommandLine() string
	SetStatusText(text string)
}

// TopLevel follows Parent links up from w.
func TopLevel(w Window) Window {
	if w == nil {
		return nil
	}
	for p := w.Parent(); p != nil; p = p.Parent() {
		w = p
	}
	return w
}

// FindStatusLine returns the first child of w whose class name matches
// StatusBarClass, ignoring case, or nil.
func FindStatusLine(w Window) StatusLine {
	if w == nil {
		return nil
	}
	for _, c := range w.Children() {
		if c == nil || !strings.EqualFold(c.ClassName(), StatusBarClass) {
			continue
		}
		if s, ok := c.(StatusLine); ok {
			return s
		}
	}
	return nil
}
