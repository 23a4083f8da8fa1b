package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"sync"

	"golang.org/x/xerrors"

	"go.dedis.ch/sssrecover/types"
)

// ResultStore keeps solve results indexed by the digest of their input.
type ResultStore interface {
	Get(digest string) (types.SolveResult, bool)
	Put(digest string, result types.SolveResult) error
	Del(digest string) error
	For(func(digest string, result types.SolveResult) error) error
	Len() int
}

// MemoryStore is a map-backed ResultStore safe for concurrent use.
type MemoryStore struct {
	sync.RWMutex
	store map[string]types.SolveResult
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		store: make(map[string]types.SolveResult),
	}
}

func (s *MemoryStore) Get(digest string) (types.SolveResult, bool) {
	s.RLock()
	defer s.RUnlock()
	result, ok := s.store[digest]
	return result, ok
}

func (s *MemoryStore) Put(digest string, result types.SolveResult) error {
	if digest == "" {
		return xerrors.Errorf("empty digest")
	}
	s.Lock()
	defer s.Unlock()
	s.store[digest] = result
	return nil
}

func (s *MemoryStore) Del(digest string) error {
	s.Lock()
	defer s.Unlock()
	delete(s.store, digest)
	return nil
}

// For calls action on every entry in ascending digest order and stops at the
// first error.
func (s *MemoryStore) For(action func(digest string, result types.SolveResult) error) error {
	s.RLock()
	sorted := make([]string, 0, len(s.store))
	snapshot := make(map[string]types.SolveResult, len(s.store))
	for d, r := range s.store {
		sorted = append(sorted, d)
		snapshot[d] = r
	}
	s.RUnlock()

	sort.Strings(sorted)
	for _, d := range sorted {
		err := action(d, snapshot[d])
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *MemoryStore) Len() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.store)
}

// Digest returns the hex sha256 of the canonical JSON of the test case,
// salted with the identity of the configuration that solves it.
func Digest(tc types.TestCase, identity string) (string, error) {
	bytes, err := json.Marshal(tc)
	if err != nil {
		return "", xerrors.Errorf("failed to encode test case: %v", err)
	}

	h := sha256.New()
	h.Write([]byte(identity))
	h.Write([]byte{0})
	h.Write(bytes)

	return hex.EncodeToString(h.Sum(nil)), nil
}
