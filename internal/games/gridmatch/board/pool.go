package board

import "fmt"

// Pool is a bounded Allocator. It hands out cells with fresh IDs until
// Capacity cells are in use.
type Pool struct {
	Capacity int

	inUse  int
	nextID uint64
}

// NewPool creates a pool that can have at most capacity cells in use.
func NewPool(capacity int) *Pool {
	return &Pool{Capacity: capacity}
}

// Acquire returns a new alive cell of the given kind.
func (p *Pool) Acquire(kind Kind) (Cell, error) {
	if p.inUse >= p.Capacity {
		return Cell{}, fmt.Errorf("%w: %d of %d cells in use", ErrAllocationExhausted, p.inUse, p.Capacity)
	}
	p.inUse++
	p.nextID++
	return Cell{ID: p.nextID, Kind: kind, Alive: true}, nil
}

// Release returns a cell to the pool.
func (p *Pool) Release(Cell) {
	if p.inUse > 0 {
		p.inUse--
	}
}

// InUse returns the number of cells currently handed out.
func (p *Pool) InUse() int {
	return p.inUse
}

// Reset forgets every outstanding cell. Used when the board is rebuilt.
func (p *Pool) Reset() {
	p.inUse = 0
}
