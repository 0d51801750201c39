// internal/buffer/buffer.go
package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoPath is returned when saving a document that has never had a path.
var ErrNoPath = errors.New("no file path specified for saving")

// Document is the source buffer of an editor session: the full text plus the
// file it came from.
type Document struct {
	text     string
	filePath string
	saved    string // content as last loaded or saved
}

// NewDocument creates an unmodified document holding text.
func NewDocument(text string) *Document {
	return &Document{text: text, saved: text}
}

// Load reads a file into the document, replacing its content. A missing file
// yields an empty document bound to that path.
func (d *Document) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			d.text = ""
			d.filePath = filePath
			d.saved = ""
			return nil
		}
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	// Editor lines never carry carriage returns
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	d.text = strings.TrimSuffix(string(data), "\n")
	d.filePath = filePath
	d.saved = d.text
	return nil
}

// Save writes the document to filePath, or to its own path when filePath is empty.
func (d *Document) Save(filePath string) error {
	path := d.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return ErrNoPath
	}

	// Load strips one trailing newline; put it back
	content := d.text
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	d.filePath = path
	d.saved = d.text
	return nil
}

// Text returns the full content.
func (d *Document) Text() string {
	return d.text
}

// Set replaces the content and reports whether it changed.
func (d *Document) Set(text string) bool {
	if text == d.text {
		return false
	}
	d.text = text
	return true
}

// IsModified reports whether the content differs from what was last loaded
// or saved.
func (d *Document) IsModified() bool {
	return d.text != d.saved
}

// FilePath returns the bound path, possibly empty.
func (d *Document) FilePath() string {
	return d.filePath
}
