// Package hosttest provides recording fakes of the host contracts for tests.
package hosttest

import (
	"errors"

	"github.com/hyperifyio/cehta/internal/host"
	"github.com/hyperifyio/cehta/internal/textenc"
)

// Control is a child control with a fixed class name.
type Control struct {
	Class string
}

func (c *Control) ClassName() string { return c.Class }

// StatusLine records what it was told.
type StatusLine struct {
	Class  string
	Simple bool
	Texts  []string
}

func (s *StatusLine) ClassName() string   { return s.Class }
func (s *StatusLine) SetSimple(on bool)   { s.Simple = on }
func (s *StatusLine) SetText(text string) { s.Texts = append(s.Texts, text) }

// Window records title changes and foreground requests.
type Window struct {
	Up          *Window
	Kids        []host.Control
	Title       string
	Foregrounds int
}

func (w *Window) Parent() host.Window {
	if w.Up == nil {
		return nil
	}
	return w.Up
}

func (w *Window) SetTitle(title string)    { w.Title = title }
func (w *Window) Foreground()              { w.Foregrounds++ }
func (w *Window) Children() []host.Control { return w.Kids }

// Sink records writes. WindowErr, when set, is returned from Window.
type Sink struct {
	Win       *Window
	WindowErr error
	Name      string
	Writes    []textenc.Text
}

func (s *Sink) Window() (host.Window, error) {
	if s.WindowErr != nil {
		return nil, s.WindowErr
	}
	if s.Win == nil {
		return nil, errors.New("no window")
	}
	return s.Win, nil
}

func (s *Sink) SetName(name string) { s.Name = name }

func (s *Sink) Write(text textenc.Text) error {
	s.Writes = append(s.Writes, text)
	return nil
}
