// Package diagnose finds syntax problems in C/C++ source with tree-sitter.
// Results only mark gutter lines; highlighting never depends on them.
package diagnose

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"

	"github.com/bethropolis/medhapad/internal/logger"
	"github.com/bethropolis/medhapad/internal/utils"
)

// Problem is one ERROR or MISSING node.
type Problem struct {
	Line    int // 0-based
	Col     int // rune column
	Missing bool
	Node    string // node type, the expected token for MISSING nodes
}

func (p Problem) String() string {
	if p.Missing {
		return fmt.Sprintf("%d:%d: missing %s", p.Line+1, p.Col+1, p.Node)
	}
	return fmt.Sprintf("%d:%d: syntax error", p.Line+1, p.Col+1)
}

// Checker parses whole buffers. It is safe for concurrent use; parses are
// serialized.
type Checker struct {
	mu     sync.Mutex
	parser *sitter.Parser
}

// NewChecker creates a checker for the C++ grammar.
func NewChecker() *Checker {
	parser := sitter.NewParser()
	parser.SetLanguage(cpp.GetLanguage())
	return &Checker{parser: parser}
}

// Check parses source and returns its problems in source order.
func (c *Checker) Check(ctx context.Context, source []byte) ([]Problem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tree, err := c.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	defer tree.Close()

	var problems []Problem
	collect(tree.RootNode(), &problems)
	lines := bytes.Split(source, []byte("\n"))
	for i := range problems {
		if p := &problems[i]; p.Line < len(lines) {
			p.Col = utils.ByteOffsetToRuneIndex(string(lines[p.Line]), p.Col)
		}
	}
	logger.DebugTagf("diagnose", "Diagnose: %d problems in %d bytes", len(problems), len(source))
	return problems, nil
}

// collect walks only subtrees that contain errors.
func collect(n *sitter.Node, out *[]Problem) {
	if n == nil || !n.HasError() && !n.IsMissing() {
		return
	}
	if n.IsError() || n.IsMissing() {
		p := n.StartPoint()
		*out = append(*out, Problem{
			Line:    int(p.Row),
			Col:     int(p.Column),
			Missing: n.IsMissing(),
			Node:    n.Type(),
		})
		if n.IsMissing() {
			return
		}
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		collect(n.Child(i), out)
	}
}

// Lines returns the distinct problem lines in order.
func Lines(problems []Problem) []int {
	seen := make(map[int]struct{}, len(problems))
	lines := make([]int, 0, len(problems))
	for _, p := range problems {
		if _, ok := seen[p.Line]; ok {
			continue
		}
		seen[p.Line] = struct{}{}
		lines = append(lines, p.Line)
	}
	sort.Ints(lines)
	return lines
}
