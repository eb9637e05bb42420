package app

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/cehta/internal/console"
	"github.com/hyperifyio/cehta/internal/dialog"
	"github.com/hyperifyio/cehta/internal/loader"
	"github.com/hyperifyio/cehta/internal/pdfout"
)

// App loads one document and shows it through a Launcher.
type App struct {
	cfg      Config
	launcher dialog.Launcher
}

// New returns an App. The launcher is created once by the caller, usually
// with NewLauncher, and may be replaced in tests.
func New(cfg Config, launcher dialog.Launcher) *App {
	if cfg.OptionsInstruction == "" {
		cfg.OptionsInstruction = dialog.OptionsInstruction
	}
	if cfg.DefaultOptions == "" {
		cfg.DefaultOptions = dialog.DefaultOptions
	}
	return &App{cfg: cfg, launcher: launcher}
}

// NewLauncher builds the launcher selected by cfg.Renderer.
func NewLauncher(cfg Config) (dialog.Launcher, error) {
	switch cfg.Renderer {
	case "", RendererConsole:
		return console.NewLauncher(os.Stdout, cfg.NoColor), nil
	case RendererPDF:
		return &pdfout.Launcher{OutPath: cfg.PDFOutPath}, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", cfg.Renderer)
	}
}

// Run opens the document and shows it. It returns the dialog's result, or
// the first error; a load failure is returned as *loader.Error unchanged.
func (a *App) Run(ctx context.Context) (int, error) {
	l := loader.New(a.cfg.CommandLine)
	log.Debug().Str("path", l.Path()).Str("cmdline", l.CommandLine()).Msg("loading document")
	if err := l.Open(); err != nil {
		return 0, err
	}

	options := dialog.ResolveOptions(l, a.cfg.OptionsInstruction, a.cfg.DefaultOptions)
	log.Debug().Str("options", options).Msg("dialog options")

	if a.launcher == nil {
		return 0, fmt.Errorf("no launcher configured")
	}
	code, err := a.launcher.Show(ctx, l, options)
	if err != nil {
		return 0, fmt.Errorf("show dialog: %w", err)
	}
	log.Debug().Int("result", code).Msg("dialog closed")
	return code, nil
}
