package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(day int, source string, count int) Session {
	started := time.Date(2026, 8, day, 10, 0, 0, 0, time.UTC)
	return Session{
		Started: started,
		Ended:   started.Add(time.Hour),
		Source:  source,
		Count:   count,
	}
}

func TestRecordAndSessions(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Record(testSession(1, "dir", 3)))
	require.NoError(t, store.Record(testSession(2, "signal", 5)))

	sessions, err := store.Sessions()
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	// Most recent first.
	assert.Equal(t, "signal", sessions[0].Source)
	assert.Equal(t, 5, sessions[0].Count)
	assert.Equal(t, "dir", sessions[1].Source)
}

func TestSessionsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Record(testSession(1, "dir", 7)))
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	total, err := store.LifetimeTotal()
	require.NoError(t, err)
	assert.Equal(t, 7, total)
}

func TestLifetimeTotal(t *testing.T) {
	store, err := Open("")
	require.NoError(t, err)

	require.NoError(t, store.Record(testSession(1, "dir", 2)))
	require.NoError(t, store.Record(testSession(2, "dir", 3)))

	total, err := store.LifetimeTotal()
	require.NoError(t, err)
	assert.Equal(t, 5, total)
}

func TestMemoryOnlyMode(t *testing.T) {
	store, err := Open("")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Record(testSession(1, "interval", 4)))

	sessions, err := store.Sessions()
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 4, sessions[0].Count)
}

func TestSearch(t *testing.T) {
	store, err := Open("")
	require.NoError(t, err)

	require.NoError(t, store.Record(testSession(1, "dir", 3)))
	require.NoError(t, store.Record(testSession(2, "signal", 5)))
	require.NoError(t, store.Record(testSession(3, "interval", 1)))

	matched, err := store.Search("signal")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "signal", matched[0].Source)

	all, err := store.Search("")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSessionLabel(t *testing.T) {
	sess := testSession(30, "dir", 12)
	assert.Equal(t, "2026-08-30 10:00 dir 12", sess.Label())
}
