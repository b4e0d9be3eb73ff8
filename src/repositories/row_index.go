package repositories

import (
	"sync"
)

// RowIndex is the transient id -> row position lookup used to target updates
// and deletes. It is rebuilt from full-table reads and invalidated wholesale
// whenever row positions may have shifted. It is best-effort: concurrent
// writers may still race on stale positions, and it is never a source of
// truth for record contents.
type RowIndex struct {
	mu        sync.Mutex
	positions map[string]int
}

func NewRowIndex() *RowIndex {
	return &RowIndex{positions: map[string]int{}}
}

// Lookup returns the cached 1-indexed row position for id.
func (i *RowIndex) Lookup(id string) (int, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	pos, ok := i.positions[id]
	return pos, ok
}

// Replace swaps in a freshly built position map.
func (i *RowIndex) Replace(positions map[string]int) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.positions = positions
}

// Invalidate drops every cached position.
func (i *RowIndex) Invalidate() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.positions = map[string]int{}
}
