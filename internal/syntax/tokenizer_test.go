package syntax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sp(kind Kind, text string) Span { return Span{Kind: kind, Text: text} }

func join(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestTokenizeLineExamples(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Span
	}{
		{
			name: "include",
			line: "#include <iostream>",
			want: []Span{sp(PreprocessorDirective, "#include"), sp(PreprocessorArgument, " <iostream>")},
		},
		{
			name: "declaration",
			line: "int x = 5;",
			want: []Span{
				sp(Keyword, "int"), sp(PlainText, " "), sp(PlainIdentifier, "x"), sp(PlainText, " "),
				sp(Operator, "="), sp(PlainText, " "), sp(NumericLiteral, "5"), sp(Separator, ";"),
			},
		},
		{
			name: "stream output",
			line: `cout << "hi";`,
			want: []Span{
				sp(LibraryCall, "cout"), sp(PlainText, " "), sp(Operator, "<<"), sp(PlainText, " "),
				sp(StringOrCharLiteral, `"hi"`), sp(Separator, ";"),
			},
		},
		{
			name: "line comment",
			line: "// comment",
			want: []Span{sp(LineComment, "// comment")},
		},
		{
			name: "template brackets are operators",
			line: "vector<int> v;",
			want: []Span{
				sp(TypeName, "vector"), sp(Operator, "<"), sp(Keyword, "int"), sp(Operator, ">"),
				sp(PlainText, " "), sp(PlainIdentifier, "v"), sp(Separator, ";"),
			},
		},
		{
			name: "call identifier",
			line: "solve(n, k)",
			want: []Span{
				sp(CallIdentifier, "solve"), sp(Bracket, "("), sp(PlainIdentifier, "n"), sp(Separator, ","),
				sp(PlainText, " "), sp(PlainIdentifier, "k"), sp(Bracket, ")"),
			},
		},
		{
			name: "space before paren is not a call",
			line: "solve (n)",
			want: []Span{
				sp(PlainIdentifier, "solve"), sp(PlainText, " "), sp(Bracket, "("), sp(PlainIdentifier, "n"), sp(Bracket, ")"),
			},
		},
		{
			name: "library call wins over call identifier",
			line: "printf(",
			want: []Span{sp(LibraryCall, "printf"), sp(Bracket, "(")},
		},
		{
			name: "indented directive",
			line: "  #define N 10",
			want: []Span{
				sp(PlainText, " "), sp(PlainText, " "), sp(PreprocessorDirective, "#define"), sp(PreprocessorArgument, " N 10"),
			},
		},
		{
			name: "bare hash",
			line: "#",
			want: []Span{sp(PreprocessorDirective, "#")},
		},
		{
			name: "hash after code is plain text",
			line: "a#",
			want: []Span{sp(PlainIdentifier, "a"), sp(PlainText, "#")},
		},
		{
			name: "block comment closed",
			line: "/* a */int",
			want: []Span{sp(BlockComment, "/* a */"), sp(Keyword, "int")},
		},
		{
			name: "block comment unterminated",
			line: "x /* open",
			want: []Span{sp(PlainIdentifier, "x"), sp(PlainText, " "), sp(BlockComment, "/* open")},
		},
		{
			name: "escaped quote",
			line: `"a\"b" c`,
			want: []Span{sp(StringOrCharLiteral, `"a\"b"`), sp(PlainText, " "), sp(PlainIdentifier, "c")},
		},
		{
			name: "char literal",
			line: `'\''`,
			want: []Span{sp(StringOrCharLiteral, `'\''`)},
		},
		{
			name: "unterminated string",
			line: `"abc`,
			want: []Span{sp(StringOrCharLiteral, `"abc`)},
		},
		{
			name: "trailing backslash",
			line: `"abc\`,
			want: []Span{sp(StringOrCharLiteral, `"abc\`)},
		},
		{
			name: "hex and suffix",
			line: "0x1Fu",
			want: []Span{sp(NumericLiteral, "0x1Fu")},
		},
		{
			name: "float exponent",
			line: "1.5e-3f",
			want: []Span{sp(NumericLiteral, "1.5e-3f")},
		},
		{
			name: "leading dot",
			line: ".5",
			want: []Span{sp(NumericLiteral, ".5")},
		},
		{
			name: "minus after digit is an operator",
			line: "1-2",
			want: []Span{sp(NumericLiteral, "1"), sp(Operator, "-"), sp(NumericLiteral, "2")},
		},
		{
			name: "long suffix",
			line: "10UL",
			want: []Span{sp(NumericLiteral, "10UL")},
		},
		{
			name: "member dot",
			line: "v.size()",
			want: []Span{sp(PlainIdentifier, "v"), sp(PlainText, "."), sp(LibraryCall, "size"), sp(Bracket, "("), sp(Bracket, ")")},
		},
		{
			name: "operator run",
			line: "a+=b",
			want: []Span{sp(PlainIdentifier, "a"), sp(Operator, "+="), sp(PlainIdentifier, "b")},
		},
		{
			name: "operator stops at comment",
			line: "a=//x",
			want: []Span{sp(PlainIdentifier, "a"), sp(Operator, "="), sp(LineComment, "//x")},
		},
		{
			name: "scope resolution",
			line: "std::endl",
			want: []Span{sp(LibraryCall, "std"), sp(Operator, "::"), sp(LibraryCall, "endl")},
		},
		{
			name: "brackets",
			line: "{[]}",
			want: []Span{sp(Bracket, "{"), sp(Bracket, "["), sp(Bracket, "]"), sp(Bracket, "}")},
		},
		{
			name: "underscore identifier",
			line: "_tmp1",
			want: []Span{sp(PlainIdentifier, "_tmp1")},
		},
		{
			name: "operator run stops before line comment",
			line: "a=//c",
			want: []Span{sp(PlainIdentifier, "a"), sp(Operator, "="), sp(LineComment, "//c")},
		},
		{
			name: "operator run stops before block comment",
			line: "x+/*y*/",
			want: []Span{sp(PlainIdentifier, "x"), sp(Operator, "+"), sp(BlockComment, "/*y*/")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenizeLine(tt.line))
		})
	}
}

func TestTokenizeLineEmptyPlaceholder(t *testing.T) {
	spans := TokenizeLine("")
	require.Len(t, spans, 1)
	assert.True(t, spans[0].IsPlaceholder())
	assert.Equal(t, "", join(spans))
}

var corpus = []string{
	"",
	" ",
	"\t\t",
	`"`,
	`'`,
	"/*",
	"*/",
	"/",
	`\`,
	"#",
	"#include",
	`printf("%d\n", x);`,
	"for (int i = 0; i < n; ++i) { sum += a[i]; }",
	"std::map<std::string, std::vector<int>> m;",
	"x = y ? 0x7fffffffLL : -1.0e+10;",
	"template <typename T> T max_of(T a, T b) { return a > b ? a : b; }",
	"héllo wörld",
	"变量 = 1;",
	"\xff\xfe bad bytes \x80",
	"a\r",
	"'unterminated \\",
	"/* a */ /* b",
	"#define MAX(a, b) ((a) > (b) ? (a) : (b)) // macro",
}

func TestTokenizeLineRoundTrip(t *testing.T) {
	for _, line := range corpus {
		spans := TokenizeLine(line)
		require.NotEmpty(t, spans, "line %q", line)
		assert.Equal(t, line, join(spans), "line %q", line)
		for _, s := range spans {
			assert.True(t, s.Kind.Valid(), "line %q", line)
			if line != "" {
				assert.NotEmpty(t, s.Text, "empty span in %q", line)
			}
		}
	}
}

func TestTokenizeLineTotal(t *testing.T) {
	// Every prefix of every corpus line, so partial input is covered too.
	for _, line := range corpus {
		for i := 0; i <= len(line); i++ {
			prefix := line[:i]
			assert.NotPanics(t, func() {
				assert.Equal(t, prefix, join(TokenizeLine(prefix)))
			})
		}
	}
}

func TestTokenizeLineWhitespaceIsPlainText(t *testing.T) {
	for _, s := range TokenizeLine(" \t ") {
		assert.Equal(t, PlainText, s.Kind)
		assert.Len(t, s.Text, 1)
	}
}

func TestTokenize(t *testing.T) {
	text := "#include <cstdio>\n\nint main() {\n  return 0;\n}"
	lines := Tokenize(text)
	require.Len(t, lines, 5)
	assert.Equal(t, LineCount(text), len(lines))
	assert.True(t, lines[1][0].IsPlaceholder())
	assert.Equal(t, sp(CallIdentifier, "main"), lines[2][2])

	var rebuilt []string
	for _, spans := range lines {
		rebuilt = append(rebuilt, join(spans))
	}
	assert.Equal(t, text, strings.Join(rebuilt, "\n"))
}

func TestBlockCommentDoesNotCarryAcrossLines(t *testing.T) {
	lines := Tokenize("/* start\nint x;")
	assert.Equal(t, []Span{sp(BlockComment, "/* start")}, lines[0])
	assert.Equal(t, sp(Keyword, "int"), lines[1][0])
}

func TestLineCount(t *testing.T) {
	assert.Equal(t, 1, LineCount(""))
	assert.Equal(t, 1, LineCount("abc"))
	assert.Equal(t, 2, LineCount("a\n"))
	assert.Equal(t, 3, LineCount("a\nb\nc"))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Keyword, Classify("return", '('))
	assert.Equal(t, TypeName, Classify("string", '('))
	assert.Equal(t, LibraryCall, Classify("sort", '('))
	assert.Equal(t, CallIdentifier, Classify("dfs", '('))
	assert.Equal(t, PlainIdentifier, Classify("dfs", ' '))
	assert.Equal(t, PlainIdentifier, Classify("dfs", 0))
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, int(kindCount))
	seen := map[string]bool{}
	for _, k := range kinds {
		assert.True(t, k.Valid())
		assert.NotEqual(t, "Kind(?)", k.String())
		assert.False(t, seen[k.String()], "duplicate name %s", k)
		seen[k.String()] = true
	}
	assert.False(t, kindCount.Valid())
	assert.Equal(t, "Kind(?)", Kind(200).String())
}

func BenchmarkTokenizeLine(b *testing.B) {
	line := "for (int i = 0; i < (int)v.size(); ++i) { cout << v[i] << \" \"; } // print"
	for i := 0; i < b.N; i++ {
		TokenizeLine(line)
	}
}
