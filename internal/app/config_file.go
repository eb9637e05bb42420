package app

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strings"

    toml "github.com/pelletier/go-toml/v2"
    yaml "gopkg.in/yaml.v3"

    "github.com/hyperifyio/cehta/internal/dialog"
    "github.com/hyperifyio/cehta/internal/loader"
)

// FileConfig is the configuration file schema. The same keys are used for
// YAML, JSON and TOML.
type FileConfig struct {
    Render  string `yaml:"render" json:"render" toml:"render"`
    NoColor bool   `yaml:"noColor" json:"noColor" toml:"noColor"`
    Verbose bool   `yaml:"verbose" json:"verbose" toml:"verbose"`

    PDF struct {
        Out string `yaml:"out" json:"out" toml:"out"`
    } `yaml:"pdf" json:"pdf" toml:"pdf"`

    Options struct {
        Instruction string `yaml:"instruction" json:"instruction" toml:"instruction"`
        Default     string `yaml:"default" json:"default" toml:"default"`
    } `yaml:"options" json:"options" toml:"options"`
}

// LoadConfigFile reads YAML, JSON or TOML into FileConfig, chosen by file
// extension. Unknown extensions are tried as YAML, then JSON, then TOML.
func LoadConfigFile(path string) (FileConfig, error) {
    var fc FileConfig
    b, err := os.ReadFile(path)
    if err != nil {
        return fc, err
    }
    switch ext := strings.ToLower(filepath.Ext(path)); ext {
    case ".yaml", ".yml":
        if err := yaml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse yaml: %w", err)
        }
    case ".json":
        if err := json.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse json: %w", err)
        }
    case ".toml":
        if err := toml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse toml: %w", err)
        }
    default:
        yerr := yaml.Unmarshal(b, &fc)
        if yerr == nil {
            return fc, nil
        }
        fc = FileConfig{}
        jerr := json.Unmarshal(b, &fc)
        if jerr == nil {
            return fc, nil
        }
        fc = FileConfig{}
        if terr := toml.Unmarshal(b, &fc); terr != nil {
            return fc, fmt.Errorf("parse config: %v (yaml) / %v (json) / %v (toml)", yerr, jerr, terr)
        }
    }
    return fc, nil
}

// ApplyFileConfig fills fields of cfg that are still unset or at their flag
// default from fc. Flags and env have already been applied; flags named in
// cfg.Explicit are never overridden.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
    if cfg == nil { return }

    if !cfg.explicit(FlagRender) && (cfg.Renderer == "" || cfg.Renderer == RendererConsole) && fc.Render != "" {
        cfg.Renderer = fc.Render
    }
    if !cfg.explicit(FlagPDFOut) && cfg.PDFOutPath == "" && fc.PDF.Out != "" { cfg.PDFOutPath = fc.PDF.Out }
    if !cfg.explicit(FlagNoColor) && !cfg.NoColor && fc.NoColor { cfg.NoColor = true }
    if !cfg.explicit(FlagVerbose) && !cfg.Verbose && fc.Verbose { cfg.Verbose = true }

    if !cfg.explicit(FlagOptionsPI) && (cfg.OptionsInstruction == "" || cfg.OptionsInstruction == dialog.OptionsInstruction) && fc.Options.Instruction != "" {
        cfg.OptionsInstruction = fc.Options.Instruction
    }
    if !cfg.explicit(FlagDefaultOptions) && (cfg.DefaultOptions == "" || cfg.DefaultOptions == dialog.DefaultOptions) && fc.Options.Default != "" {
        cfg.DefaultOptions = fc.Options.Default
    }
}

// ValidateConfig rejects configurations the app cannot run with.
func ValidateConfig(cfg Config) error {
    if strings.TrimSpace(cfg.CommandLine) == "" {
        return errors.New("config: a document path is required")
    }
    if cfg.DocumentPath != "" && loader.SplitPath(cfg.CommandLine) != cfg.DocumentPath {
        return fmt.Errorf("config: document path %q cannot be passed on a command line; use a path without double quotes", cfg.DocumentPath)
    }
    switch cfg.Renderer {
    case "", RendererConsole:
    case RendererPDF:
        if strings.TrimSpace(cfg.PDFOutPath) == "" {
            return errors.New("config: pdf renderer requires pdf.out (or CEHTA_PDF_OUT)")
        }
    default:
        return fmt.Errorf("config: unknown renderer %q", cfg.Renderer)
    }
    if strings.TrimSpace(cfg.OptionsInstruction) == "" {
        return errors.New("config: options instruction name must not be empty")
    }
    return nil
}
