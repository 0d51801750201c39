package render

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/muesli/termenv"

	"github.com/bethropolis/medhapad/internal/syntax"
)

// FormatterName picks the chroma terminal formatter for a colour profile.
func FormatterName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal16"
	default:
		return "noop"
	}
}

// DetectProfile returns the colour profile of stdout's terminal.
func DetectProfile() termenv.Profile {
	return termenv.EnvColorProfile()
}

// ANSIRenderer renders span lines with terminal escape sequences.
type ANSIRenderer struct {
	style     *chroma.Style
	formatter chroma.Formatter
}

// NewANSIRenderer builds a renderer for the named chroma style and profile.
func NewANSIRenderer(styleName string, profile termenv.Profile) *ANSIRenderer {
	return &ANSIRenderer{
		style:     lookupStyle(styleName),
		formatter: formatters.Get(FormatterName(profile)),
	}
}

// Render writes lines to w.
func (r *ANSIRenderer) Render(w io.Writer, lines [][]syntax.Span) error {
	it := chroma.Literator(tokens(lines, "")...)
	if err := r.formatter.Format(w, r.style, it); err != nil {
		return fmt.Errorf("terminal format: %w", err)
	}
	return nil
}
