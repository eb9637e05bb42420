package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/cehta/internal/app"
	"github.com/hyperifyio/cehta/internal/dialog"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath     string
		envFiles       string
		renderer       string
		pdfOut         string
		optionsPI      string
		defaultOptions string
		rawCmdline     string
		noColor        bool
		verbose        bool
		showVersion    bool
	)

	flag.StringVar(&configPath, "config", os.Getenv("CEHTA_CONFIG"), "Path to YAML, JSON or TOML config file")
	flag.StringVar(&envFiles, "env", ".env", "Comma-separated dotenv files to load (missing files are ignored)")
	flag.StringVar(&renderer, app.FlagRender, app.RendererConsole, "Renderer: console or pdf")
	flag.StringVar(&pdfOut, app.FlagPDFOut, "", "Output path for the pdf renderer")
	flag.StringVar(&optionsPI, app.FlagOptionsPI, dialog.OptionsInstruction, "Processing instruction carrying dialog options")
	flag.StringVar(&defaultOptions, app.FlagDefaultOptions, dialog.DefaultOptions, "Dialog options used when the document has none")
	flag.StringVar(&rawCmdline, "cmdline", "", "Raw command line; overrides positional arguments")
	flag.BoolVar(&noColor, app.FlagNoColor, false, "Disable colored output")
	flag.BoolVar(&verbose, app.FlagVerbose, false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: cehta [flags] <document> [args...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Println(app.VersionString())
		return
	}

	if err := app.LoadEnvFiles(strings.Split(envFiles, ",")...); err != nil {
		log.Warn().Err(err).Msg("load env files")
	}

	cfg := app.Config{
		CommandLine:        rawCmdline,
		Renderer:           strings.ToLower(strings.TrimSpace(renderer)),
		PDFOutPath:         pdfOut,
		NoColor:            noColor,
		OptionsInstruction: optionsPI,
		DefaultOptions:     defaultOptions,
		Verbose:            verbose,
	}
	if cfg.CommandLine == "" && flag.NArg() > 0 {
		cfg.DocumentPath = flag.Arg(0)
		cfg.CommandLine = app.JoinCommandLine(flag.Args())
	}
	cfg.Explicit = explicitFlags(flag.CommandLine)

	// Precedence: flags, then env, then config file
	app.ApplyEnvToConfig(&cfg)
	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config")
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		flag.Usage()
		os.Exit(2)
	}

	os.Exit(run(cfg, os.Stderr))
}

// explicitFlags returns the names of the flags that were actually set.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// run loads and shows the document and returns the process exit code: the
// dialog's result, or the failure code after writing the failure message.
func run(cfg app.Config, stderr io.Writer) int {
	launcher, err := app.NewLauncher(cfg)
	if err != nil {
		return fail(stderr, err)
	}
	code, err := app.New(cfg, launcher).Run(context.Background())
	if err != nil {
		return fail(stderr, err)
	}
	return code
}

func fail(stderr io.Writer, err error) int {
	log.Error().Err(err).Msg("run failed")
	fmt.Fprint(stderr, app.FailureMessage(err))
	return app.FailureCode(err)
}
