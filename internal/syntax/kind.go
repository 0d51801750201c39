// Package syntax splits C/C++ source lines into classified spans for display.
//
// The tokenizer is a highlighter, not a compiler front end: it keeps no state
// between lines, has no grammar and accepts any input.
package syntax

// Kind is the lexical category of a span.
type Kind uint8

const (
	PreprocessorDirective Kind = iota // "#include"
	PreprocessorArgument              // rest of a directive line
	LineComment
	BlockComment
	StringOrCharLiteral
	NumericLiteral
	Keyword
	TypeName    // built-in types and STL containers
	LibraryCall // standard-library identifiers
	CallIdentifier
	PlainIdentifier
	Operator
	Bracket
	Separator
	PlainText

	kindCount
)

var kindNames = [kindCount]string{
	PreprocessorDirective: "PreprocessorDirective",
	PreprocessorArgument:  "PreprocessorArgument",
	LineComment:           "LineComment",
	BlockComment:          "BlockComment",
	StringOrCharLiteral:   "StringOrCharLiteral",
	NumericLiteral:        "NumericLiteral",
	Keyword:               "Keyword",
	TypeName:              "TypeName",
	LibraryCall:           "LibraryCall",
	CallIdentifier:        "CallIdentifier",
	PlainIdentifier:       "PlainIdentifier",
	Operator:              "Operator",
	Bracket:               "Bracket",
	Separator:             "Separator",
	PlainText:             "PlainText",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k < kindCount
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Span is a contiguous run of one line's bytes classified under one kind.
type Span struct {
	Kind Kind
	Text string
}

// IsPlaceholder reports whether s is the span emitted for an empty line.
func (s Span) IsPlaceholder() bool {
	return s.Kind == PlainText && s.Text == ""
}
