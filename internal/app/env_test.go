package app

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/hyperifyio/cehta/internal/dialog"
)

// LoadEnvFiles reads KEY=VALUE pairs and populates the process environment.
func TestLoadEnvFiles_LoadsKeyValues(t *testing.T) {
    t.Setenv("FOO", "")
    t.Setenv("BAR", "")
    t.Setenv("BAZ", "")

    dir := t.TempDir()
    envPath := filepath.Join(dir, ".env.test")
    content := "\n# sample dotenv file\nFOO=alpha\nexport BAR='beta # kept'\nBAZ=gamma # dropped\nmalformed\n"
    if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
        t.Fatalf("write dotenv: %v", err)
    }

    if err := LoadEnvFiles(envPath, filepath.Join(dir, "missing.env")); err != nil {
        t.Fatalf("LoadEnvFiles error: %v", err)
    }

    if got := os.Getenv("FOO"); got != "alpha" {
        t.Fatalf("FOO=%q, want alpha", got)
    }
    if got := os.Getenv("BAR"); got != "beta # kept" {
        t.Fatalf("BAR=%q, want quoted value verbatim", got)
    }
    if got := os.Getenv("BAZ"); got != "gamma" {
        t.Fatalf("BAZ=%q, want gamma", got)
    }
}

// Later files override earlier ones when loading multiple dotenv files.
func TestLoadEnvFiles_OverrideOrder(t *testing.T) {
    t.Setenv("K", "")
    dir := t.TempDir()
    a := filepath.Join(dir, ".env.a")
    b := filepath.Join(dir, ".env.b")
    if err := os.WriteFile(a, []byte("K=first\n"), 0o600); err != nil { t.Fatalf("write a: %v", err) }
    if err := os.WriteFile(b, []byte("K=second\n"), 0o600); err != nil { t.Fatalf("write b: %v", err) }

    if err := LoadEnvFiles(a, b); err != nil {
        t.Fatalf("LoadEnvFiles error: %v", err)
    }
    if got := os.Getenv("K"); got != "second" {
        t.Fatalf("override order failed: got %q, want second", got)
    }
}

func TestApplyEnvToConfig_FromEnv(t *testing.T) {
    t.Setenv("CEHTA_RENDER", "PDF")
    t.Setenv("CEHTA_PDF_OUT", "/tmp/out.pdf")
    t.Setenv("CEHTA_OPTIONS_PI", "<?my-options")
    t.Setenv("CEHTA_DEFAULT_OPTIONS", "dialogWidth=10")
    t.Setenv("NO_COLOR", "")
    t.Setenv("VERBOSE", "yes")

    cfg := Config{Renderer: RendererConsole, OptionsInstruction: dialog.OptionsInstruction, DefaultOptions: dialog.DefaultOptions}
    ApplyEnvToConfig(&cfg)
    if cfg.Renderer != RendererPDF {
        t.Fatalf("Renderer=%q, want pdf", cfg.Renderer)
    }
    if cfg.PDFOutPath != "/tmp/out.pdf" {
        t.Fatalf("PDFOutPath=%q", cfg.PDFOutPath)
    }
    if cfg.OptionsInstruction != "<?my-options" || cfg.DefaultOptions != "dialogWidth=10" {
        t.Fatalf("options not taken from env: %+v", cfg)
    }
    if !cfg.NoColor {
        t.Fatalf("NO_COLOR present (even empty) should disable color")
    }
    if !cfg.Verbose {
        t.Fatalf("VERBOSE=yes should enable verbose")
    }
}

// Values given explicitly on the command line win over env.
func TestApplyEnvToConfig_FlagsWin(t *testing.T) {
    t.Setenv("CEHTA_PDF_OUT", "/tmp/env.pdf")
    t.Setenv("CEHTA_DEFAULT_OPTIONS", "dialogWidth=10")
    cfg := Config{PDFOutPath: "/tmp/flag.pdf", DefaultOptions: "dialogWidth=20"}
    ApplyEnvToConfig(&cfg)
    if cfg.PDFOutPath != "/tmp/flag.pdf" || cfg.DefaultOptions != "dialogWidth=20" {
        t.Fatalf("explicit values overridden: %+v", cfg)
    }
}

// A flag given explicitly wins even when its value equals the default.
func TestApplyEnvToConfig_ExplicitDefaultFlagsWin(t *testing.T) {
    t.Setenv("CEHTA_RENDER", "pdf")
    t.Setenv("CEHTA_OPTIONS_PI", "<?env-options")
    t.Setenv("CEHTA_DEFAULT_OPTIONS", "dialogWidth=10")
    t.Setenv("VERBOSE", "1")

    cfg := Config{
        Renderer:           RendererConsole,
        OptionsInstruction: dialog.OptionsInstruction,
        DefaultOptions:     dialog.DefaultOptions,
        Explicit: map[string]bool{
            FlagRender:         true,
            FlagOptionsPI:      true,
            FlagDefaultOptions: true,
            FlagVerbose:        true,
        },
    }
    ApplyEnvToConfig(&cfg)
    if cfg.Renderer != RendererConsole {
        t.Fatalf("Renderer=%q, explicit -render console must win", cfg.Renderer)
    }
    if cfg.OptionsInstruction != dialog.OptionsInstruction || cfg.DefaultOptions != dialog.DefaultOptions {
        t.Fatalf("explicit options flags overridden: %+v", cfg)
    }
    if cfg.Verbose {
        t.Fatalf("explicit -v=false overridden by VERBOSE")
    }
}
