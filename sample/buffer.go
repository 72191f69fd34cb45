package sample

import (
	"fmt"
	"sort"
)

// Buffer accumulates float64 values with amortized doubling growth.
// It passes through exactly two states: building (append-only,
// unsorted) and finalized (sorted ascending, read-only). Sort performs
// the transition; there is no way back.
type Buffer struct {
	values []float64
	sorted bool
}

// New returns an empty Buffer backed by storage for initialCap values.
// initialCap must be positive.
func New(initialCap int) (*Buffer, error) {
	if initialCap <= 0 {
		return nil, fmt.Errorf("initial capacity must be positive, got %d", initialCap)
	}

	return &Buffer{values: make([]float64, 0, initialCap)}, nil
}

// Append stores v at the end of the buffer. When the buffer is full
// the backing storage is reallocated to exactly twice its capacity;
// doubling is the sole resize policy and there is no shrink operation.
// Append panics on a finalized buffer.
func (b *Buffer) Append(v float64) {
	if b.sorted {
		panic("sample: Append on finalized buffer")
	}
	if len(b.values) == cap(b.values) {
		grown := make([]float64, len(b.values), 2*cap(b.values))
		copy(grown, b.values)
		b.values = grown
	}
	b.values = append(b.values, v)
}

// Sort orders the values ascending in place and finalizes the buffer.
// It must be called exactly once, after ingestion; a second call
// panics. NaN values are out of scope.
func (b *Buffer) Sort() {
	if b.sorted {
		panic("sample: Sort on finalized buffer")
	}
	sort.Float64s(b.values)
	b.sorted = true
}

// Values returns the underlying slice.
func (b *Buffer) Values() []float64 {
	return b.values
}

// Len returns the current number of values.
func (b *Buffer) Len() int {
	return len(b.values)
}

// Cap returns the current capacity of the backing storage.
func (b *Buffer) Cap() int {
	return cap(b.values)
}

// Unused returns the number of allocated but unoccupied slots,
// Cap() - Len(). It reflects the doubling policy's over-allocation.
func (b *Buffer) Unused() int {
	return cap(b.values) - len(b.values)
}

// Sorted reports whether the buffer has been finalized with Sort.
func (b *Buffer) Sorted() bool {
	return b.sorted
}
