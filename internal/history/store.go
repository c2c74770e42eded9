package history

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketSessions = []byte("sessions")
)

// Session is one completed app run.
type Session struct {
	Started time.Time `json:"started"`
	Ended   time.Time `json:"ended"`
	Source  string    `json:"source"` // event source kind used for the run
	Count   int       `json:"count"`  // final tally of the run
}

// Label is the searchable display form of a session, e.g.
// "2026-08-30 dir 12".
func (s Session) Label() string {
	return fmt.Sprintf("%s %s %d", s.Started.Format("2006-01-02 15:04"), s.Source, s.Count)
}

// Store persists completed sessions using BoltDB. With an empty path it runs
// memory-only: nothing touches disk and sessions vanish on exit. The live
// counter value is never stored or restored; only finished runs are recorded.
type Store struct {
	db *bolt.DB

	mu       sync.RWMutex
	sessions []Session // memory-only mode
}

// Open opens (or creates) the history database at path. An empty path yields
// a memory-only store.
func Open(path string) (*Store, error) {
	if path == "" {
		// Memory-only mode (no persistence)
		return &Store{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSessions)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record appends a completed session.
func (s *Store) Record(sess Session) error {
	if s.db == nil {
		s.mu.Lock()
		s.sessions = append(s.sessions, sess)
		s.mu.Unlock()
		return nil
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSessions)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		return b.Put(key, data)
	})
}

// Sessions returns all recorded sessions, most recent first.
func (s *Store) Sessions() ([]Session, error) {
	var out []Session

	if s.db == nil {
		s.mu.RLock()
		out = append(out, s.sessions...)
		s.mu.RUnlock()
	} else {
		err := s.db.View(func(tx *bolt.Tx) error {
			return tx.Bucket(bucketSessions).ForEach(func(_, v []byte) error {
				var sess Session
				if err := json.Unmarshal(v, &sess); err != nil {
					return err
				}
				out = append(out, sess)
				return nil
			})
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Started.After(out[j].Started) })
	return out, nil
}

// LifetimeTotal sums the counts of all recorded sessions.
func (s *Store) LifetimeTotal() (int, error) {
	sessions, err := s.Sessions()
	if err != nil {
		return 0, err
	}
	total := 0
	for _, sess := range sessions {
		total += sess.Count
	}
	return total, nil
}

// Search returns sessions whose label fuzzy-matches query, best match first.
// An empty query returns everything.
func (s *Store) Search(query string) ([]Session, error) {
	sessions, err := s.Sessions()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return sessions, nil
	}

	labels := make([]string, len(sessions))
	for i, sess := range sessions {
		labels[i] = sess.Label()
	}

	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	sort.Sort(ranks)

	matched := make([]Session, 0, len(ranks))
	for _, r := range ranks {
		matched = append(matched, sessions[r.OriginalIndex])
	}
	return matched, nil
}
