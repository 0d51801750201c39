package utils

import (
	"sync"
	"time"
	"unicode/utf8"
)

// RuneIndexToByteOffset converts a rune index to a byte offset in s.
// Returns -1 if runeIndex is out of bounds.
func RuneIndexToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	byteOffset := 0
	currentRune := 0
	for byteOffset < len(s) {
		if currentRune == runeIndex {
			return byteOffset
		}
		_, size := utf8.DecodeRuneInString(s[byteOffset:])
		byteOffset += size
		currentRune++
	}
	if currentRune == runeIndex {
		return len(s)
	} // Allow index at the very end
	return -1
}

// ByteOffsetToRuneIndex converts a byte offset to a rune index in s.
func ByteOffsetToRuneIndex(s string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset > len(s) {
		byteOffset = len(s)
	}
	runeIndex := 0
	currentOffset := 0
	for currentOffset < byteOffset {
		_, size := utf8.DecodeRuneInString(s[currentOffset:])
		if currentOffset+size > byteOffset {
			break
		} // Don't count rune if offset is within it
		currentOffset += size
		runeIndex++
	}
	return runeIndex
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Debouncer provides a way to debounce function calls
type Debouncer struct {
	mutex sync.Mutex
	timer *time.Timer
}

// Debounce calls fn after duration, canceling any previous pending call.
func (d *Debouncer) Debounce(duration time.Duration, fn func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(duration, func() {
		d.mutex.Lock()
		if d.timer != t {
			// superseded after firing
			d.mutex.Unlock()
			return
		}
		d.timer = nil
		d.mutex.Unlock()
		fn()
	})
	d.timer = t
}

// Stop cancels a pending call.
func (d *Debouncer) Stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
