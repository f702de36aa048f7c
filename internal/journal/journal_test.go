package journal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "nested", "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestRecordAndEntries(t *testing.T) {
	j := setupTestJournal(t)

	run, err := j.BeginRun("/shots")
	require.NoError(t, err)
	require.NotZero(t, run)

	require.NoError(t, j.Record(Entry{RunID: run, Directory: "/shots", OldName: "a.png", NewName: "ports.png", Status: "renamed"}))
	require.NoError(t, j.Record(Entry{RunID: run, Directory: "/shots", OldName: "b.png", NewName: "ports_2.png", Status: "rename failed", Error: "target exists"}))

	entries, err := j.Entries(run)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.png", entries[0].OldName)
	assert.Equal(t, "ports.png", entries[0].NewName)
	assert.Equal(t, "rename failed", entries[1].Status)
	assert.Equal(t, "target exists", entries[1].Error)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestEntries_ScopedToRun(t *testing.T) {
	j := setupTestJournal(t)

	first, err := j.BeginRun("/a")
	require.NoError(t, err)
	second, err := j.BeginRun("/b")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	require.NoError(t, j.Record(Entry{RunID: first, Directory: "/a", OldName: "x.txt", NewName: "notes.txt", Status: "renamed"}))

	entries, err := j.Entries(second)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecord_UnknownRunRejected(t *testing.T) {
	j := setupTestJournal(t)
	err := j.Record(Entry{RunID: 999, Directory: "/a", OldName: "x", NewName: "y", Status: "renamed"})
	assert.Error(t, err, "foreign key must be enforced")
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := Open(path)
	require.NoError(t, err)
	run, err := j.BeginRun("/a")
	require.NoError(t, err)
	require.NoError(t, j.Record(Entry{RunID: run, Directory: "/a", OldName: "x", NewName: "y", Status: "renamed"}))
	require.NoError(t, j.Close())

	j, err = Open(path)
	require.NoError(t, err)
	defer j.Close()
	entries, err := j.Entries(run)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, path, j.Path())
}
