package seen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkUnmarkContains(t *testing.T) {
	t.Parallel()

	set := NewSet()
	assert.False(t, set.Contains("2101.00001"))

	set.Mark("2101.00001")
	assert.True(t, set.Contains("2101.00001"))

	set.Mark("2101.00001")
	assert.Equal(t, 1, set.Len(), "marking twice should be idempotent")

	set.Unmark("2101.00001")
	assert.False(t, set.Contains("2101.00001"))

	set.Unmark("2101.00001")
	assert.Equal(t, 0, set.Len(), "unmarking an absent id should be a no-op")
}

func TestLoadMissingFileYieldsEmptySet(t *testing.T) {
	t.Parallel()

	set, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seen")
	set := NewSet()
	for _, id := range []string{"a", "b", "c"} {
		set.Mark(id)
	}
	require.NoError(t, set.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	for _, id := range []string{"a", "b", "c"} {
		assert.True(t, loaded.Contains(id))
	}
	assert.False(t, loaded.Contains("d"))
}

func TestSaveTruncatesPreviousContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seen")
	first := NewSet()
	first.Mark("old-entry")
	require.NoError(t, first.Save(path))

	second := NewSet()
	second.Mark("new-entry")
	require.NoError(t, second.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.False(t, loaded.Contains("old-entry"))
	assert.True(t, loaded.Contains("new-entry"))
}

func TestLoadSkipsBlankLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seen")
	require.NoError(t, os.WriteFile(path, []byte("a\n\n b \n"), 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())
	assert.True(t, loaded.Contains("b"))
}

func TestSaveReportsUnwritablePath(t *testing.T) {
	t.Parallel()

	set := NewSet()
	set.Mark("a")
	err := set.Save(filepath.Join(t.TempDir(), "missing-dir", "seen"))
	require.Error(t, err)
}
