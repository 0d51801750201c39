package diagnose

import (
	"context"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckValidSource(t *testing.T) {
	c := NewChecker()
	src := "#include <iostream>\n\nint main() {\n    std::cout << \"hi\" << std::endl;\n    return 0;\n}\n"
	problems, err := c.Check(context.Background(), []byte(src))
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestCheckReportsBrokenLine(t *testing.T) {
	c := NewChecker()
	src := "int a;\nint b = ;\nint c;\n"
	problems, err := c.Check(context.Background(), []byte(src))
	require.NoError(t, err)
	require.NotEmpty(t, problems)
	assert.Contains(t, Lines(problems), 1)
	assert.NotContains(t, Lines(problems), 0)
}

func TestCheckEmpty(t *testing.T) {
	problems, err := NewChecker().Check(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestLines(t *testing.T) {
	lines := Lines([]Problem{{Line: 4}, {Line: 1}, {Line: 4, Col: 3}})
	assert.Equal(t, []int{1, 4}, lines)
	assert.Empty(t, Lines(nil))
}

func TestProblemString(t *testing.T) {
	assert.Equal(t, "2:5: missing ;", Problem{Line: 1, Col: 4, Missing: true, Node: ";"}.String())
	assert.Equal(t, "1:1: syntax error", Problem{}.String())
}

func TestColumnsCountRunes(t *testing.T) {
	src := "const char *s = \"héllo wörld\"; int x = ;\n"
	problems, err := NewChecker().Check(context.Background(), []byte(src))
	require.NoError(t, err)
	require.NotEmpty(t, problems)
	for _, p := range problems {
		if p.Line == 0 {
			assert.LessOrEqual(t, p.Col, utf8.RuneCountInString(src)-1)
		}
	}
}
