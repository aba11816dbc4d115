package journal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournal_RunLifecycle(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "journal.db")
	j, err := New(dbFile)
	require.NoError(t, err)
	defer j.Close()

	assert.NotEmpty(t, j.RunID())

	j.Begin("send", 1700000040)
	j.Item(1, "report.pdf", "file", "deadbeef", "sent")
	j.Item(2, "photos", "dir", "n/a", "sent")
	j.End("ok")

	var role, status string
	var window int64
	var finished *int64
	err = j.db.QueryRow("SELECT role, window, finished, status FROM runs WHERE id = ?", j.RunID()).
		Scan(&role, &window, &finished, &status)
	require.NoError(t, err)
	assert.Equal(t, "send", role)
	assert.Equal(t, int64(1700000040), window)
	assert.Equal(t, "ok", status)
	assert.NotNil(t, finished)

	var count int
	err = j.db.QueryRow("SELECT COUNT(*) FROM items WHERE run_id = ?", j.RunID()).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var name, kind, itemStatus string
	err = j.db.QueryRow("SELECT name, kind, status FROM items WHERE run_id = ? AND idx = 2", j.RunID()).
		Scan(&name, &kind, &itemStatus)
	require.NoError(t, err)
	assert.Equal(t, "photos", name)
	assert.Equal(t, "dir", kind)
	assert.Equal(t, "sent", itemStatus)
}

func TestJournal_TwoRunsShareFile(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "journal.db")

	j1, err := New(dbFile)
	require.NoError(t, err)
	j1.Begin("send", 100)
	j1.End("ok")
	require.NoError(t, j1.Close())

	j2, err := New(dbFile)
	require.NoError(t, err)
	defer j2.Close()
	j2.Begin("receive", 200)

	assert.NotEqual(t, j1.RunID(), j2.RunID())

	var count int
	err = j2.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestJournal_BadPath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "no-such-dir", "x", "journal.db"))
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	var n Nop
	n.Begin("send", 1)
	n.Item(1, "a", "file", "h", "sent")
	n.End("ok")
	assert.NoError(t, n.Close())
}
