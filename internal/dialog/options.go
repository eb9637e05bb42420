package dialog

import (
	"strconv"
	"strings"
)

// OptionsInstruction names the processing instruction that carries dialog
// options in a document prolog.
const OptionsInstruction = "<?cehta-options"

// DefaultOptions is used when a document does not carry its own options.
const DefaultOptions = "dialogWidth=80;dialogHeight=50;resizable=yes"

// Length is a size with its unit as written, e.g. 40em or 300px.
// An empty Unit means the value was a bare number.
type Length struct {
	Value float64
	Unit  string
}

// Cells converts the length to character cells, taking an em as one cell
// and cellPx pixels per cell for px values.
func (l Length) Cells(cellPx float64) int {
	v := l.Value
	if l.Unit == "px" && cellPx > 0 {
		v /= cellPx
	}
	if v < 0 {
		return 0
	}
	return int(v + 0.5)
}

// Options is the typed view of an options string. Raw is kept verbatim
// because launchers pass it on unchanged.
type Options struct {
	Raw       string
	Width     Length
	Height    Length
	Resizable bool
	Status    bool
	Center    bool
	// Extra holds name/value pairs that are not recognized, keyed by
	// lower-cased name.
	Extra map[string]string
}

// ParseOptions splits s into ';'-separated name=value or name:value pairs.
// Names are matched case-insensitively. Malformed pairs are skipped.
func ParseOptions(s string) Options {
	o := Options{Raw: s}
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sep := strings.IndexAny(part, "=:")
		if sep <= 0 {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(part[:sep]))
		value := strings.TrimSpace(part[sep+1:])
		switch name {
		case "dialogwidth":
			if l, ok := parseLength(value); ok {
				o.Width = l
			}
		case "dialogheight":
			if l, ok := parseLength(value); ok {
				o.Height = l
			}
		case "resizable":
			o.Resizable = parseFlag(value)
		case "status":
			o.Status = parseFlag(value)
		case "center":
			o.Center = parseFlag(value)
		default:
			if o.Extra == nil {
				o.Extra = make(map[string]string)
			}
			o.Extra[name] = value
		}
	}
	return o
}

func parseLength(s string) (Length, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	i := len(s)
	for i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z' {
		i--
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64)
	if err != nil {
		return Length{}, false
	}
	return Length{Value: v, Unit: s[i:]}, true
}

func parseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "1", "on", "true":
		return true
	}
	return false
}
