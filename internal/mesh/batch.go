package mesh

// Batch collects fragments in insertion order and merges them once.
// Appending is O(1) per fragment; the single Finalize merge avoids rebuilding
// an ever-growing buffer every time a fragment is added.
type Batch struct {
	frags  []*Fragment
	merged *Fragment
}

// NewBatch creates a batch with room for n fragments.
func NewBatch(n int) *Batch {
	return &Batch{frags: make([]*Fragment, 0, n)}
}

// Add appends a fragment. Empty fragments are not counted.
// Adding to a finalized batch panics.
func (b *Batch) Add(f *Fragment) {
	if b.merged != nil {
		panic("mesh: Add on finalized batch")
	}
	if f.Empty() {
		return
	}
	b.frags = append(b.frags, f)
}

// Len returns the number of fragments added so far.
func (b *Batch) Len() int {
	return len(b.frags)
}

// Finalize merges all fragments and returns the result. Later calls return
// the same fragment.
func (b *Batch) Finalize() *Fragment {
	if b.merged == nil {
		b.merged = Merge(b.frags...)
	}
	return b.merged
}
