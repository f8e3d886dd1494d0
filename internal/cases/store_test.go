package cases

import (
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/itsmlab/itsmd/internal/plan"
	"github.com/itsmlab/itsmd/internal/triage"
)

func testPlan() plan.ResearchPlan {
	return plan.Build(triage.CategoryIdentityAccess, triage.SeverityHigh,
		"Users cannot login (SSO error)", "SAML errors since 09:30 UTC")
}

func TestNewCaseID_Shape(t *testing.T) {
	pattern := regexp.MustCompile(`^CASE-[0-9A-F]{10}$`)
	for i := 0; i < 100; i++ {
		id := NewCaseID()
		if !pattern.MatchString(id) {
			t.Fatalf("NewCaseID() = %q, want CASE- plus 10 uppercase hex digits", id)
		}
	}
}

func TestNewCaseID_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewCaseID()
		if seen[id] {
			t.Fatalf("NewCaseID() repeated %q within 1000 draws", id)
		}
		seen[id] = true
	}
}

func TestMemStore_CreateGetRoundtrip(t *testing.T) {
	store := NewMemStore()
	p := testPlan()

	id, err := store.Create("Users cannot login (SSO error)", "SAML errors since 09:30 UTC", p)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	c, err := store.Get(id)
	if err != nil {
		t.Fatalf("Get(%s) failed: %v", id, err)
	}
	if c.CaseID != id {
		t.Errorf("CaseID = %s, want %s", c.CaseID, id)
	}
	if c.ShortDescription != "Users cannot login (SSO error)" {
		t.Errorf("ShortDescription = %q", c.ShortDescription)
	}
	if c.CreatedAt == "" {
		t.Error("CreatedAt not set")
	}
	// The stored plan must be exactly what was passed to Create.
	if diff := cmp.Diff(p, c.Plan); diff != "" {
		t.Errorf("plan mismatch (-created +stored):\n%s", diff)
	}
}

func TestMemStore_GetUnknownIsNotFound(t *testing.T) {
	store := NewMemStore()

	_, err := store.Get("CASE-DOESNOTEX")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on unknown id = %v, want ErrNotFound", err)
	}
}

func TestMemStore_GetTrimsID(t *testing.T) {
	store := NewMemStore()
	id, _ := store.Create("s", "d", testPlan())

	if _, err := store.Get("  " + id + " "); err != nil {
		t.Errorf("Get with surrounding whitespace failed: %v", err)
	}
}

func TestMemStore_RepeatedCreateYieldsDistinctCases(t *testing.T) {
	store := NewMemStore()
	p := testPlan()

	id1, _ := store.Create("same description", "same details", p)
	id2, _ := store.Create("same description", "same details", p)
	if id1 == id2 {
		t.Fatalf("two creates returned the same id %s", id1)
	}

	for _, id := range []string{id1, id2} {
		if _, err := store.Get(id); err != nil {
			t.Errorf("Get(%s) failed: %v", id, err)
		}
	}
}

func TestMemStore_GetReturnsCopy(t *testing.T) {
	store := NewMemStore()
	id, _ := store.Create("s", "d", testPlan())

	c1, _ := store.Get(id)
	c1.ShortDescription = "mutated"

	c2, _ := store.Get(id)
	if c2.ShortDescription != "s" {
		t.Error("mutation through a Get result reached the store")
	}
}

func TestMemStore_ConcurrentCreates(t *testing.T) {
	store := NewMemStore()
	p := testPlan()

	const n = 50
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := store.Create("s", "d", p)
			if err != nil {
				t.Errorf("Create failed: %v", err)
				return
			}
			ids[i] = id
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate id %s from concurrent creates", id)
		}
		seen[id] = true
	}
}
