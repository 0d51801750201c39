package buffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.cpp")
	d := NewDocument("old")
	require.NoError(t, d.Load(path))
	assert.Equal(t, "", d.Text())
	assert.Equal(t, path, d.FilePath())
	assert.False(t, d.IsModified())
}

func TestLoadNormalizesLineEndings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.cpp")
	require.NoError(t, os.WriteFile(path, []byte("int a;\r\nint b;\r\n"), 0o644))

	d := NewDocument("")
	require.NoError(t, d.Load(path))
	assert.Equal(t, "int a;\nint b;", d.Text())
}

func TestLoadDirectoryFails(t *testing.T) {
	d := NewDocument("")
	assert.Error(t, d.Load(t.TempDir()))
}

func TestSetAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.c")
	d := NewDocument("")

	assert.False(t, d.Set(""))
	assert.True(t, d.Set("int main() {}"))
	assert.True(t, d.IsModified())

	assert.ErrorIs(t, d.Save(""), ErrNoPath)

	require.NoError(t, d.Save(path))
	assert.False(t, d.IsModified())
	assert.Equal(t, path, d.FilePath())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "int main() {}\n", string(data))
}

func TestSaveLoadKeepsTrailingEmptyLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.c")
	d := NewDocument("int x;\n")
	require.NoError(t, d.Save(path))

	loaded := NewDocument("")
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, "int x;\n", loaded.Text())
}

func TestModifiedComparesWithSavedText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.c")
	d := NewDocument("a")
	assert.False(t, d.IsModified())

	d.Set("ab")
	assert.True(t, d.IsModified())
	d.Set("a")
	assert.False(t, d.IsModified(), "back to the original text")

	d.Set("abc")
	require.NoError(t, d.Save(path))
	d.Set("a")
	assert.True(t, d.IsModified())
	d.Set("abc")
	assert.False(t, d.IsModified())
}
