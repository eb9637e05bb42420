package app

import (
    "os"
    "strings"

    "github.com/hyperifyio/cehta/internal/dialog"
)

// ApplyEnvToConfig populates fields of cfg that are unset or at their flag
// default from environment variables. Flags named in cfg.Explicit are left
// alone, even when they were given their default value.
func ApplyEnvToConfig(cfg *Config) {
    if cfg == nil { return }

    if !cfg.explicit(FlagRender) && (cfg.Renderer == "" || cfg.Renderer == RendererConsole) {
        if v := strings.TrimSpace(os.Getenv("CEHTA_RENDER")); v != "" {
            cfg.Renderer = strings.ToLower(v)
        }
    }
    if !cfg.explicit(FlagPDFOut) && cfg.PDFOutPath == "" {
        cfg.PDFOutPath = os.Getenv("CEHTA_PDF_OUT")
    }
    if !cfg.explicit(FlagOptionsPI) && (cfg.OptionsInstruction == "" || cfg.OptionsInstruction == dialog.OptionsInstruction) {
        if v := os.Getenv("CEHTA_OPTIONS_PI"); v != "" {
            cfg.OptionsInstruction = v
        }
    }
    if !cfg.explicit(FlagDefaultOptions) && (cfg.DefaultOptions == "" || cfg.DefaultOptions == dialog.DefaultOptions) {
        if v := os.Getenv("CEHTA_DEFAULT_OPTIONS"); v != "" {
            cfg.DefaultOptions = v
        }
    }

    // NO_COLOR is honored when present at all, per no-color.org
    if !cfg.explicit(FlagNoColor) && !cfg.NoColor {
        if _, ok := os.LookupEnv("NO_COLOR"); ok {
            cfg.NoColor = true
        }
    }
    if !cfg.explicit(FlagVerbose) && !cfg.Verbose {
        switch strings.ToLower(strings.TrimSpace(os.Getenv("VERBOSE"))) {
        case "1", "true", "yes", "on":
            cfg.Verbose = true
        }
    }
}
