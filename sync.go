package domaintree

import (
	"sync"
)

// SyncTree wraps a Tree with a read-write lock so that Insert may run
// concurrently with lookups.
type SyncTree struct {
	mx   sync.RWMutex
	tree *Tree
}

// NewSync creates an empty SyncTree configured with the specified Opts.
func NewSync(opts *Opts) *SyncTree {
	return &SyncTree{tree: New(opts)}
}

// Insert is like Tree.Insert.
func (st *SyncTree) Insert(pattern string) error {
	st.mx.Lock()
	defer st.mx.Unlock()
	return st.tree.Insert(pattern)
}

// InsertAll is like Tree.InsertAll. The whole batch is inserted under a single
// lock, so lookups see either none or all of the patterns preceding a failure.
func (st *SyncTree) InsertAll(patterns ...string) error {
	st.mx.Lock()
	defer st.mx.Unlock()
	return st.tree.InsertAll(patterns...)
}

// Lookup is like Tree.Lookup.
func (st *SyncTree) Lookup(domain string) (string, bool, error) {
	st.mx.RLock()
	defer st.mx.RUnlock()
	return st.tree.Lookup(domain)
}

// Contains is like Tree.Contains.
func (st *SyncTree) Contains(domain string) bool {
	st.mx.RLock()
	defer st.mx.RUnlock()
	return st.tree.Contains(domain)
}

// Len is like Tree.Len.
func (st *SyncTree) Len() int {
	st.mx.RLock()
	defer st.mx.RUnlock()
	return st.tree.Len()
}

// Snapshot returns the entries present at the time of the call.
func (st *SyncTree) Snapshot() []string {
	st.mx.RLock()
	defer st.mx.RUnlock()
	result := make([]string, 0, st.tree.Len())
	for p := range st.tree.All() {
		result = append(result, p)
	}
	return result
}
