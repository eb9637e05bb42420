package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	apppkg "github.com/hyperifyio/cehta/internal/app"
)

// Smoke test: a document renders to PDF and the exit code is the dialog result.
func TestRun_PDFRendererSucceeds(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "page.hta")
	out := filepath.Join(dir, "page.pdf")
	if err := os.WriteFile(in, []byte("<?cehta-options dialogWidth=40 ?><title>T</title><p>body</p>"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	cfg := apppkg.Config{
		CommandLine: apppkg.JoinCommandLine([]string{in, "arg"}),
		Renderer:    apppkg.RendererPDF,
		PDFOutPath:  out,
	}
	var stderr bytes.Buffer
	if code := run(cfg, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr=%q", code, stderr.String())
	}
	if info, err := os.Stat(out); err != nil || info.Size() == 0 {
		t.Fatalf("expected pdf output, err=%v", err)
	}
}

// A missing document exits with the OS error number and explains it.
func TestRun_MissingDocument(t *testing.T) {
	cfg := apppkg.Config{
		CommandLine: filepath.Join(t.TempDir(), "missing.hta"),
		Renderer:    apppkg.RendererPDF,
		PDFOutPath:  filepath.Join(t.TempDir(), "x.pdf"),
	}
	var stderr bytes.Buffer
	code := run(cfg, &stderr)
	if code != int(syscall.ENOENT) {
		t.Fatalf("exit code = %d, want ENOENT", code)
	}
	if !strings.Contains(stderr.String(), "cehta failed with 0x00000002") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestRun_UnknownRenderer(t *testing.T) {
	var stderr bytes.Buffer
	if code := run(apppkg.Config{CommandLine: "x.hta", Renderer: "gui"}, &stderr); code == 0 {
		t.Fatalf("expected failure exit code")
	}
}

func TestExplicitFlags(t *testing.T) {
	fs := flag.NewFlagSet("cehta", flag.ContinueOnError)
	fs.String(apppkg.FlagRender, apppkg.RendererConsole, "")
	fs.String(apppkg.FlagPDFOut, "", "")
	if err := fs.Parse([]string{"-render", "console", "doc.hta"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	set := explicitFlags(fs)
	if !set[apppkg.FlagRender] {
		t.Fatalf("-render given with its default value must be recorded")
	}
	if set[apppkg.FlagPDFOut] {
		t.Fatalf("-pdf.out was not given")
	}
}
