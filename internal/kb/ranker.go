package kb

import (
	"sort"
	"strings"

	"github.com/itsmlab/itsmd/internal/triage"
)

// Result-count clamp bounds for Rank.
const (
	minResults = 1
	maxResults = 10
)

// Ranker scores catalog articles against a category and a free-text
// query. It is initialized once from an immutable catalog slice and is
// safe for concurrent use.
type Ranker struct {
	catalog []Article
}

// NewRanker creates a Ranker over the given catalog.
func NewRanker(catalog []Article) *Ranker {
	return &Ranker{catalog: catalog}
}

// Rank returns article ids ordered by relevance, highest score first.
// Scoring per article: +3 for a category match, +2 per tag contained
// in the query text, +1 if the lower-cased title is contained in the
// query text. Zero-score articles are excluded entirely — results are
// never padded. Ties keep catalog order. max is clamped to [1, 10].
func (r *Ranker) Rank(category triage.Category, queryText string, max int) []string {
	q := strings.ToLower(queryText)

	type scored struct {
		id    string
		score int
	}
	results := make([]scored, 0, len(r.catalog))
	for _, a := range r.catalog {
		score := 0
		for _, c := range a.Categories {
			if c == category {
				score += 3
				break
			}
		}
		for _, tag := range a.Tags {
			if strings.Contains(q, tag) {
				score += 2
			}
		}
		if strings.Contains(q, strings.ToLower(a.Title)) {
			score++
		}
		if score > 0 {
			results = append(results, scored{id: a.ID, score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	limit := max
	if limit > maxResults {
		limit = maxResults
	}
	if limit < minResults {
		limit = minResults
	}
	if len(results) > limit {
		results = results[:limit]
	}

	ids := make([]string, len(results))
	for i, s := range results {
		ids[i] = s.id
	}
	return ids
}
