// internal/types/position.go
package types

// Position represents a cursor position within the buffer.
// Line is the 0-based line index.
// Col is the 0-based column (rune) index within the line.
type Position struct {
	Line int
	Col  int // Rune index
}

// Offset is a scroll offset shared by the editor views.
// Top is the first visible line, Left the first visible visual column.
type Offset struct {
	Top  int
	Left int
}

// Clamped returns o with negative components raised to zero.
func (o Offset) Clamped() Offset {
	if o.Top < 0 {
		o.Top = 0
	}
	if o.Left < 0 {
		o.Left = 0
	}
	return o
}
