package app

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/bethropolis/medhapad/internal/render"
	"github.com/bethropolis/medhapad/internal/syntax"
)

// ExportHTML writes text as highlighted HTML.
func ExportHTML(w io.Writer, text string, opts render.HTMLOptions) error {
	return render.NewHTMLRenderer(opts).Render(w, syntax.Tokenize(text))
}

// PrintANSI writes text with terminal colours for profile.
func PrintANSI(w io.Writer, text, style string, profile termenv.Profile) error {
	return render.NewANSIRenderer(style, profile).Render(w, syntax.Tokenize(text))
}

// DumpTokens writes one line per source line listing its spans.
func DumpTokens(w io.Writer, text string) error {
	for i, line := range syntax.Tokenize(text) {
		if _, err := fmt.Fprintf(w, "%d:", i+1); err != nil {
			return err
		}
		for _, span := range line {
			if _, err := fmt.Fprintf(w, " %s%q", span.Kind, span.Text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
