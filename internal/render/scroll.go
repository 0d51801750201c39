package render

import (
	"github.com/bethropolis/medhapad/internal/logger"
	"github.com/bethropolis/medhapad/internal/types"
)

// ScrollTarget is a view that can be scrolled.
type ScrollTarget interface {
	ScrollOffset() types.Offset
	SetScrollOffset(types.Offset)
}

// Sync keeps the gutter, the span overlay and the input surface at one offset.
type Sync struct {
	Gutter  ScrollTarget
	Overlay ScrollTarget
	Input   ScrollTarget
}

// NewSync binds the three views.
func NewSync(gutter, overlay, input ScrollTarget) *Sync {
	return &Sync{Gutter: gutter, Overlay: overlay, Input: input}
}

// SetOffset applies o, with negatives raised to zero, to all three views.
func (s *Sync) SetOffset(o types.Offset) types.Offset {
	o = o.Clamped()
	s.Input.SetScrollOffset(o)
	s.Gutter.SetScrollOffset(o)
	s.Overlay.SetScrollOffset(o)
	return o
}

// InputScrolled pushes the input surface's current offset to the other views.
// Call it whenever the input surface scrolls by itself.
func (s *Sync) InputScrolled() types.Offset {
	o := s.SetOffset(s.Input.ScrollOffset())
	logger.DebugTagf("scroll", "Sync: views at top=%d left=%d", o.Top, o.Left)
	return o
}

// Offset returns the input surface offset.
func (s *Sync) Offset() types.Offset {
	return s.Input.ScrollOffset()
}

// InSync reports whether all three views share one offset.
func (s *Sync) InSync() bool {
	o := s.Input.ScrollOffset()
	return s.Gutter.ScrollOffset() == o && s.Overlay.ScrollOffset() == o
}
