// Package hitlog accumulates the human-readable change log for a
// reconciliation run: which vault ids were added, removed, switched or
// updated, and in what order.
package hitlog

import (
	"encoding/json"
	"sync"

	"github.com/yieldops/harvest-syncer/internal/domain"
)

// Hit is the change record for a single vault id. A given id may
// accumulate multiple change kinds during a run, in the order observed.
type Hit struct {
	ID    string
	Kinds []domain.ChangeKind
}

// hitJSON is the persisted shape: "type" is a scalar for a single kind
// and an ordered array once a second kind is merged in.
type hitJSON struct {
	ID   string      `json:"id"`
	Type interface{} `json:"type"`
}

// MarshalJSON encodes the hit with a scalar "type" when only one change
// kind was recorded
func (h Hit) MarshalJSON() ([]byte, error) {
	out := hitJSON{ID: h.ID}
	if len(h.Kinds) == 1 {
		out.Type = h.Kinds[0]
	} else {
		out.Type = h.Kinds
	}
	return json.Marshal(out)
}

// HitLog accumulates change kinds per vault id. It preserves the
// first-insertion order of ids, and within an id the order kinds were
// recorded. Safe for concurrent use; there is no removal operation.
type HitLog struct {
	mu    sync.Mutex
	order []string
	kinds map[string][]domain.ChangeKind
}

// New creates an empty hit log
func New() *HitLog {
	return &HitLog{
		kinds: make(map[string][]domain.ChangeKind),
	}
}

// Add records a change kind against a vault id, merging with any kinds
// already recorded for that id
func (l *HitLog) Add(id string, kind domain.ChangeKind) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.kinds[id]; !ok {
		l.order = append(l.order, id)
	}
	l.kinds[id] = append(l.kinds[id], kind)
}

// Len returns the number of vault ids with recorded changes
func (l *HitLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.order)
}

// Hits returns the accumulated records in first-insertion order of id
func (l *HitLog) Hits() []Hit {
	l.mu.Lock()
	defer l.mu.Unlock()

	hits := make([]Hit, 0, len(l.order))
	for _, id := range l.order {
		hits = append(hits, Hit{ID: id, Kinds: l.kinds[id]})
	}
	return hits
}
