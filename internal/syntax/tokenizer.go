package syntax

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const operatorChars = "+-*/%=<>!&|^~?:"

// placeholder stands in for an empty line so it still occupies a row.
var placeholder = Span{Kind: PlainText}

// scanner walks one line. Spans are slices of the line, so they always
// concatenate back to it.
type scanner struct {
	line  string
	pos   int
	spans []Span
}

func (s *scanner) emit(kind Kind, start int) {
	if s.pos > start {
		s.spans = append(s.spans, Span{Kind: kind, Text: s.line[start:s.pos]})
	}
}

func (s *scanner) peek(offset int) byte {
	if i := s.pos + offset; i < len(s.line) {
		return s.line[i]
	}
	return 0
}

func (s *scanner) hasPrefix(prefix string) bool {
	return strings.HasPrefix(s.line[s.pos:], prefix)
}

func (s *scanner) runeAt(i int) (rune, int) {
	return utf8.DecodeRuneInString(s.line[i:])
}

// TokenizeLine classifies one line of source. It never fails: every input,
// including partial or malformed code, yields spans that cover the line.
func TokenizeLine(line string) []Span {
	if line == "" {
		return []Span{placeholder}
	}
	s := &scanner{line: line, spans: make([]Span, 0, len(line)/2+1)}
	for s.pos < len(s.line) {
		s.next()
	}
	return s.spans
}

// next emits exactly one span and advances by at least one byte.
func (s *scanner) next() {
	start := s.pos
	c := s.line[s.pos]

	switch {
	case c == '#' && s.onlySpaceBefore():
		s.directive()
	case s.hasPrefix("//"):
		s.pos = len(s.line)
		s.emit(LineComment, start)
	case s.hasPrefix("/*"):
		s.blockComment()
	case c == '"' || c == '\'':
		s.literal(c)
	case isDigit(c) || (c == '.' && isDigit(s.peek(1))):
		s.number()
	case isWordStart(s.runeAt(s.pos)):
		s.word()
	case strings.IndexByte(operatorChars, c) >= 0:
		s.operator()
	case strings.IndexByte("(){}[]", c) >= 0:
		s.pos++
		s.emit(Bracket, start)
	case c == ';' || c == ',':
		s.pos++
		s.emit(Separator, start)
	default:
		_, size := s.runeAt(s.pos)
		s.pos += size
		s.emit(PlainText, start)
	}
}

// onlySpaceBefore reports whether nothing but whitespace precedes pos.
func (s *scanner) onlySpaceBefore() bool {
	return strings.TrimSpace(s.line[:s.pos]) == ""
}

// directive consumes "#name" and the remainder of the line.
func (s *scanner) directive() {
	start := s.pos
	s.pos++
	for s.pos < len(s.line) && isASCIILetter(s.line[s.pos]) {
		s.pos++
	}
	s.emit(PreprocessorDirective, start)
	argStart := s.pos
	s.pos = len(s.line)
	s.emit(PreprocessorArgument, argStart)
}

// blockComment consumes up to and including "*/", or to end of line.
func (s *scanner) blockComment() {
	start := s.pos
	if end := strings.Index(s.line[s.pos+2:], "*/"); end >= 0 {
		s.pos += 2 + end + 2
	} else {
		s.pos = len(s.line)
	}
	s.emit(BlockComment, start)
}

// literal consumes a quoted literal; a backslash escapes the next byte.
func (s *scanner) literal(quote byte) {
	start := s.pos
	s.pos++
	for s.pos < len(s.line) {
		switch s.line[s.pos] {
		case '\\':
			s.pos += 2
		case quote:
			s.pos++
			s.emit(StringOrCharLiteral, start)
			return
		default:
			s.pos++
		}
	}
	s.pos = len(s.line)
	s.emit(StringOrCharLiteral, start)
}

func (s *scanner) number() {
	start := s.pos
run:
	for s.pos < len(s.line) {
		c := s.line[s.pos]
		switch {
		case isDigit(c) || c == '.' || c == 'x' || c == 'X' || isHexLetter(c):
			s.pos++
		case (c == '+' || c == '-') && s.pos > start && isExponent(s.line[s.pos-1]):
			s.pos++
		default:
			break run
		}
	}
	for s.pos < len(s.line) && strings.IndexByte("fFlLuU", s.line[s.pos]) >= 0 {
		s.pos++
	}
	s.emit(NumericLiteral, start)
}

func (s *scanner) word() {
	start := s.pos
	for s.pos < len(s.line) {
		r, size := s.runeAt(s.pos)
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		s.pos += size
	}
	s.spans = append(s.spans, Span{
		Kind: Classify(s.line[start:s.pos], s.peek(0)),
		Text: s.line[start:s.pos],
	})
}

// operator consumes a run of operator characters, stopping in front of a
// comment opener.
func (s *scanner) operator() {
	start := s.pos
	for s.pos < len(s.line) && strings.IndexByte(operatorChars, s.line[s.pos]) >= 0 {
		if s.pos > start && (s.hasPrefix("//") || s.hasPrefix("/*")) {
			break
		}
		s.pos++
	}
	s.emit(Operator, start)
}

func isDigit(c byte) bool       { return c >= '0' && c <= '9' }
func isASCIILetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isHexLetter(c byte) bool   { return (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') }
func isExponent(c byte) bool    { return c == 'e' || c == 'E' }

func isWordStart(r rune, size int) bool {
	return size > 0 && r != utf8.RuneError && (r == '_' || unicode.IsLetter(r))
}

// Lines splits text into the lines the tokenizer works on.
func Lines(text string) []string {
	return strings.Split(text, "\n")
}

// LineCount returns the number of lines in text. An empty text has one line.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

// Tokenize classifies every line of text.
func Tokenize(text string) [][]Span {
	lines := Lines(text)
	out := make([][]Span, len(lines))
	for i, line := range lines {
		out[i] = TokenizeLine(line)
	}
	return out
}
