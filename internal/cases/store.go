// Package cases manages research-plan case artifacts: write-once
// records with opaque unique ids, looked up until process termination.
//
// Two Store implementations exist: MemStore (the default, a locked
// map matching the lab's durability contract — cases vanish on
// restart) and SQLiteStore (an optional file-backed convenience,
// still with no durability guarantee claimed).
package cases

import (
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/itsmlab/itsmd/internal/plan"
)

// ErrNotFound is returned by Get for unknown case ids. It is an
// expected negative result — a restarted process loses all cases —
// and callers must branch on it with errors.Is, not treat it as a
// fault.
var ErrNotFound = errors.New("case not found")

// Case is a persisted research-plan artifact. Created once, never
// mutated, no update or delete path.
type Case struct {
	CaseID           string            `json:"case_id"`
	CreatedAt        string            `json:"created_at"`
	ShortDescription string            `json:"short_description"`
	Details          string            `json:"details"`
	Plan             plan.ResearchPlan `json:"plan"`
}

// Store is the case registry. Create allocates a fresh unique id and
// never overwrites an existing case; Get is a pure lookup.
type Store interface {
	Create(shortDescription, details string, p plan.ResearchPlan) (string, error)
	Get(caseID string) (*Case, error)
}

// NewCaseID allocates an opaque case identifier: "CASE-" plus the
// first ten uppercase hex digits of a random UUID. Random, not a
// counter, so ids stay unique across restarts if persistence is ever
// added.
func NewCaseID() string {
	u := uuid.New()
	return "CASE-" + strings.ToUpper(hex.EncodeToString(u[:])[:10])
}

// MemStore is the in-memory Store. Safe for concurrent use; create
// and get are individually atomic.
type MemStore struct {
	mu    sync.RWMutex
	cases map[string]*Case
}

// NewMemStore creates an empty in-memory case store.
func NewMemStore() *MemStore {
	return &MemStore{cases: make(map[string]*Case)}
}

// Create stores a new immutable case and returns its id. On the
// (negligible) chance of an id collision it draws a fresh id rather
// than overwrite.
func (s *MemStore) Create(shortDescription, details string, p plan.ResearchPlan) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := NewCaseID()
	for _, exists := s.cases[id]; exists; _, exists = s.cases[id] {
		id = NewCaseID()
	}

	s.cases[id] = &Case{
		CaseID:           id,
		CreatedAt:        time.Now().UTC().Format(time.RFC3339),
		ShortDescription: shortDescription,
		Details:          details,
		Plan:             p,
	}
	return id, nil
}

// Get looks up a case by id. Unknown ids return ErrNotFound.
func (s *MemStore) Get(caseID string) (*Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cases[strings.TrimSpace(caseID)]
	if !ok {
		return nil, ErrNotFound
	}
	// Return a copy so callers can't reach the stored record.
	out := *c
	return &out, nil
}
