package render

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/bethropolis/medhapad/internal/logger"
	"github.com/bethropolis/medhapad/internal/syntax"
)

// HTMLOptions control HTML export.
type HTMLOptions struct {
	Style       string // chroma style name
	Classes     bool   // emit CSS classes instead of inline styles
	LineNumbers bool
	Standalone  bool // full document with <html> and <body>
	FontSize    int  // pixels, 0 leaves the browser default
	TabWidth    int
}

// HTMLRenderer renders span lines as a highlighted HTML block.
type HTMLRenderer struct {
	style     *chroma.Style
	formatter *html.Formatter
	opts      HTMLOptions
}

// lookupStyle returns the named chroma style or chroma's fallback.
func lookupStyle(name string) *chroma.Style {
	if _, ok := styles.Registry[name]; !ok && name != "" {
		logger.Warnf("Render: unknown style '%s', using '%s'", name, styles.Fallback.Name)
	}
	return styles.Get(name)
}

// NewHTMLRenderer builds a renderer for opts.
func NewHTMLRenderer(opts HTMLOptions) *HTMLRenderer {
	formatterOpts := []html.Option{
		html.WithClasses(opts.Classes),
		html.WithLineNumbers(opts.LineNumbers),
		html.Standalone(opts.Standalone),
	}
	if opts.TabWidth > 0 {
		formatterOpts = append(formatterOpts, html.TabWidth(opts.TabWidth))
	}
	if opts.FontSize > 0 {
		formatterOpts = append(formatterOpts, html.WithCustomCSS(map[chroma.TokenType]string{
			chroma.PreWrapper: fmt.Sprintf("font-size: %dpx;", opts.FontSize),
		}))
	}
	return &HTMLRenderer{
		style:     lookupStyle(opts.Style),
		formatter: html.New(formatterOpts...),
		opts:      opts,
	}
}

// Render writes lines to w.
func (r *HTMLRenderer) Render(w io.Writer, lines [][]syntax.Span) error {
	it := chroma.Literator(tokens(lines, placeholderText)...)
	if err := r.formatter.Format(w, r.style, it); err != nil {
		return fmt.Errorf("html format: %w", err)
	}
	return nil
}

// WriteCSS writes the stylesheet that goes with class-based output.
func (r *HTMLRenderer) WriteCSS(w io.Writer) error {
	if err := r.formatter.WriteCSS(w, r.style); err != nil {
		return fmt.Errorf("html css: %w", err)
	}
	return nil
}
