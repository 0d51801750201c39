// Package render turns span lines into styled output and keeps the editor
// views scrolled together.
package render

import (
	"github.com/alecthomas/chroma/v2"

	"github.com/bethropolis/medhapad/internal/syntax"
)

// StyleName returns the theme style used for spans of kind k.
func StyleName(k syntax.Kind) string {
	switch k {
	case syntax.PreprocessorDirective:
		return "keyword.directive"
	case syntax.PreprocessorArgument:
		return "string.import"
	case syntax.LineComment:
		return "comment.line"
	case syntax.BlockComment:
		return "comment.block"
	case syntax.StringOrCharLiteral:
		return "string"
	case syntax.NumericLiteral:
		return "number"
	case syntax.Keyword:
		return "keyword"
	case syntax.TypeName:
		return "type.builtin"
	case syntax.LibraryCall:
		return "function.builtin"
	case syntax.CallIdentifier:
		return "function.call"
	case syntax.PlainIdentifier:
		return "variable"
	case syntax.Operator:
		return "operator"
	case syntax.Bracket:
		return "punctuation.bracket"
	case syntax.Separator:
		return "punctuation.delimiter"
	case syntax.PlainText:
		return "Default"
	}
	return "Default"
}

// TokenType maps k to the chroma token type used by the chroma formatters.
func TokenType(k syntax.Kind) chroma.TokenType {
	switch k {
	case syntax.PreprocessorDirective:
		return chroma.CommentPreproc
	case syntax.PreprocessorArgument:
		return chroma.CommentPreprocFile
	case syntax.LineComment:
		return chroma.CommentSingle
	case syntax.BlockComment:
		return chroma.CommentMultiline
	case syntax.StringOrCharLiteral:
		return chroma.LiteralString
	case syntax.NumericLiteral:
		return chroma.LiteralNumber
	case syntax.Keyword:
		return chroma.Keyword
	case syntax.TypeName:
		return chroma.KeywordType
	case syntax.LibraryCall:
		return chroma.NameBuiltin
	case syntax.CallIdentifier:
		return chroma.NameFunction
	case syntax.PlainIdentifier:
		return chroma.Name
	case syntax.Operator:
		return chroma.Operator
	case syntax.Bracket, syntax.Separator:
		return chroma.Punctuation
	case syntax.PlainText:
		return chroma.Text
	}
	return chroma.Text
}

// placeholderText is shown for an empty line so it keeps its height.
const placeholderText = "\u00a0"

// tokens flattens span lines into chroma tokens, one newline per line.
func tokens(lines [][]syntax.Span, placeholder string) []chroma.Token {
	var out []chroma.Token
	for _, line := range lines {
		for _, span := range line {
			text := span.Text
			if span.IsPlaceholder() {
				text = placeholder
			}
			if text == "" {
				continue
			}
			out = append(out, chroma.Token{Type: TokenType(span.Kind), Value: text})
		}
		out = append(out, chroma.Token{Type: chroma.Text, Value: "\n"})
	}
	return out
}
