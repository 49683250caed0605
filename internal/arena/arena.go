// Package arena provides a chunked bump allocator. Everything allocated
// through one Arena stays valid until Free is called on it, at which point
// the whole run of allocations is released together.
package arena

const minBlockCap = 64

// Arena hands out stable pointers into internally owned blocks. Blocks are
// never grown in place, so a pointer returned by Alloc or a slice returned
// by AllocSlice is valid until Free. Not safe for concurrent use.
type Arena[T any] struct {
	blocks [][]T
	// capacity of the next block; doubles on every growth
	nextCap int
}

// New creates an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{nextCap: minBlockCap}
}

// Alloc stores v in the arena and returns a stable pointer to the copy.
func (a *Arena[T]) Alloc(v T) *T {
	s := a.AllocSlice(1)
	s[0] = v
	return &s[0]
}

// AllocSlice returns a zeroed slice of length n backed by arena memory.
// The slice must not be appended to past its capacity.
func (a *Arena[T]) AllocSlice(n int) []T {
	if n == 0 {
		return nil
	}
	cur := len(a.blocks) - 1
	if cur < 0 || len(a.blocks[cur])+n > cap(a.blocks[cur]) {
		a.grow(n)
		cur = len(a.blocks) - 1
	}
	block := a.blocks[cur]
	start := len(block)
	a.blocks[cur] = block[: start+n : cap(block)]
	return a.blocks[cur][start : start+n : start+n]
}

// grow appends a block large enough for a request of n elements. Block
// capacity doubles each time so the block count stays logarithmic in the
// total allocation size.
func (a *Arena[T]) grow(n int) {
	c := a.nextCap
	if n > c {
		c = n
	}
	a.blocks = append(a.blocks, make([]T, 0, c))
	a.nextCap *= 2
}

// Len reports the number of elements allocated so far.
func (a *Arena[T]) Len() int {
	total := 0
	for _, b := range a.blocks {
		total += len(b)
	}
	return total
}

// Free releases every allocation made through the arena. Pointers obtained
// earlier must not be used afterwards.
func (a *Arena[T]) Free() {
	a.blocks = nil
	a.nextCap = minBlockCap
}
