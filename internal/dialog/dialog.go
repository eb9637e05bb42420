// Package dialog describes how a loaded document is shown as a modal dialog
// and how the dialog's options are chosen and parsed.
package dialog

import (
	"context"

	"github.com/hyperifyio/cehta/internal/host"
)

// Launcher shows a modal dialog and blocks until it is closed. The launcher
// calls b.Attach once it can accept content, and returns the dialog's result.
// A dialog closed without a result yields 0.
type Launcher interface {
	Show(ctx context.Context, b host.Behavior, options string) (int, error)
}

// LauncherFunc adapts a function to Launcher.
type LauncherFunc func(ctx context.Context, b host.Behavior, options string) (int, error)

func (f LauncherFunc) Show(ctx context.Context, b host.Behavior, options string) (int, error) {
	return f(ctx, b, options)
}

// InstructionSource is implemented by the loader.
type InstructionSource interface {
	QueryProcessingInstruction(name string) (string, bool)
}

// ResolveOptions returns the parameters of instruction name from src, or
// def when the document does not carry it.
func ResolveOptions(src InstructionSource, name, def string) string {
	if src != nil {
		if opts, ok := src.QueryProcessingInstruction(name); ok {
			return opts
		}
	}
	return def
}
