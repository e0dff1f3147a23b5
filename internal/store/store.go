package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/mmcdole/pomo/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketCycles = []byte("cycles")
)

// keyLayout sorts lexically in time order
const keyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// JournalStore implements domain.Journal using BoltDB.
type JournalStore struct {
	db     *bolt.DB
	mu     sync.RWMutex // Protects memory records and seq
	seq    uint64
	closed bool

	// Memory-only mode keeps every record here instead of in BoltDB
	memory []memRecord
}

type memRecord struct {
	key  string
	data []byte
}

// NewJournalStore opens (or creates) the journal at path.
// An empty path keeps the journal in memory.
func NewJournalStore(path string) (*JournalStore, error) {
	if path == "" {
		return &JournalStore{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCycles)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &JournalStore{db: db}, nil
}

// Close releases the database. Further calls return domain.ErrJournalClosed.
func (s *JournalStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// recordKey is the completion time followed by a per-store sequence, so
// records completed in the same nanosecond keep insertion order.
func (s *JournalStore) recordKey(t time.Time) string {
	s.seq++
	return fmt.Sprintf("%s#%08d", t.UTC().Format(keyLayout), s.seq)
}

func (s *JournalStore) Append(rec domain.CycleRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrJournalClosed
	}

	key := s.recordKey(rec.CompletedAt)

	if s.db == nil {
		s.memory = append(s.memory, memRecord{key: key, data: data})
		sort.SliceStable(s.memory, func(i, j int) bool { return s.memory[i].key < s.memory[j].key })
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCycles).Put([]byte(key), data)
	})
}

func (s *JournalStore) Since(t time.Time) ([]domain.CycleRecord, error) {
	from := t.UTC().Format(keyLayout)
	var out []domain.CycleRecord

	err := s.scan(false, from, func(key string, data []byte) (bool, error) {
		if key < from {
			return true, nil
		}
		var rec domain.CycleRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return false, err
		}
		out = append(out, rec)
		return true, nil
	})
	return out, err
}

func (s *JournalStore) Recent(n int) ([]domain.CycleRecord, error) {
	if n <= 0 {
		return nil, nil
	}
	out := make([]domain.CycleRecord, 0, n)

	err := s.scan(true, "", func(_ string, data []byte) (bool, error) {
		var rec domain.CycleRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return false, err
		}
		out = append(out, rec)
		return len(out) < n, nil
	})
	return out, err
}

// scan walks records in key order (or reverse) starting at seek, calling fn
// until it returns false or an error.
func (s *JournalStore) scan(reverse bool, seek string, fn func(key string, data []byte) (bool, error)) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return domain.ErrJournalClosed
	}

	if s.db == nil {
		if reverse {
			for i := len(s.memory) - 1; i >= 0; i-- {
				if cont, err := fn(s.memory[i].key, s.memory[i].data); err != nil || !cont {
					return err
				}
			}
			return nil
		}
		for _, r := range s.memory {
			if cont, err := fn(r.key, r.data); err != nil || !cont {
				return err
			}
		}
		return nil
	}

	return s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketCycles).Cursor()
		if reverse {
			for k, v := c.Last(); k != nil; k, v = c.Prev() {
				if cont, err := fn(string(k), v); err != nil || !cont {
					return err
				}
			}
			return nil
		}
		k, v := c.First()
		if seek != "" {
			k, v = c.Seek([]byte(seek))
		}
		for ; k != nil; k, v = c.Next() {
			if cont, err := fn(string(k), v); err != nil || !cont {
				return err
			}
		}
		return nil
	})
}
