package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchInOrder(t *testing.T) {
	m := NewManager()
	var got []int
	m.Subscribe(TypeTextChanged, func(e Event) bool { got = append(got, 1); return false })
	m.Subscribe(TypeTextChanged, func(e Event) bool { got = append(got, 2); return false })
	m.Subscribe(TypeBufferSaved, func(e Event) bool { got = append(got, 99); return false })

	m.Dispatch(TypeTextChanged, TextChangedData{Source: SourceEdit})
	assert.Equal(t, []int{1, 2}, got)
}

func TestConsumedStopsPropagation(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeAppQuit, func(e Event) bool { calls++; return true })
	m.Subscribe(TypeAppQuit, func(e Event) bool { calls++; return false })

	m.Dispatch(TypeAppQuit, nil)
	assert.Equal(t, 1, calls)
}

func TestDispatchCarriesData(t *testing.T) {
	m := NewManager()
	var data TextChangedData
	m.Subscribe(TypeTextChanged, func(e Event) bool {
		data = e.Data.(TextChangedData)
		return false
	})
	m.Dispatch(TypeTextChanged, TextChangedData{Source: SourceUndo, LineCount: 3, Revision: 7})
	assert.Equal(t, TextChangedData{Source: SourceUndo, LineCount: 3, Revision: 7}, data)
}

func TestNilManagerDispatchIsSafe(t *testing.T) {
	var m *Manager
	assert.NotPanics(t, func() { m.Dispatch(TypeAppReady, nil) })
}
