package app

// Renderer names accepted in Config.Renderer.
const (
	RendererConsole = "console"
	RendererPDF     = "pdf"
)

// Config holds runtime configuration for the application.
type Config struct {
	// CommandLine is the raw command line; its first token is the document
	// path and the whole string is exposed to the document.
	CommandLine string
	// DocumentPath is the document argument the command line was built from,
	// when it was built from separate arguments. Empty for a raw command line.
	DocumentPath string

	// Rendering
	Renderer   string
	PDFOutPath string
	NoColor    bool

	// Dialog options
	OptionsInstruction string
	DefaultOptions     string

	Verbose bool

	// Explicit holds the names of flags given on the command line. Env and
	// the config file never override these.
	Explicit map[string]bool
}

// Flag names recorded in Config.Explicit.
const (
	FlagRender         = "render"
	FlagPDFOut         = "pdf.out"
	FlagOptionsPI      = "options.pi"
	FlagDefaultOptions = "options.default"
	FlagNoColor        = "no-color"
	FlagVerbose        = "v"
)

func (c *Config) explicit(name string) bool { return c.Explicit[name] }
