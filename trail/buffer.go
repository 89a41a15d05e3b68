// Package trail keeps a bounded history of electron positions and maps it to a tapering ribbon
package trail

import "github.com/go-gl/mathgl/mgl64"

// Sample is one recorded world-space position with its capture time in seconds
type Sample struct {
	Pos  mgl64.Vec3
	Time float64
}

// Buffer is a fixed-capacity ring of samples
// Pushing into a full buffer evicts the oldest sample
type Buffer struct {
	data []Sample
	next int // write index
	n    int
}

// NewBuffer creates a buffer holding at most capacity samples, minimum 1
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{data: make([]Sample, capacity)}
}

// Push appends s as the newest sample, returns true if the oldest was evicted
func (b *Buffer) Push(s Sample) bool {
	b.data[b.next] = s
	b.next++
	if b.next == len(b.data) {
		b.next = 0
	}
	if b.n < len(b.data) {
		b.n++
		return false
	}
	return true
}

// Len returns the number of stored samples
func (b *Buffer) Len() int {
	return b.n
}

// Cap returns the sample capacity
func (b *Buffer) Cap() int {
	return len(b.data)
}

// At returns the i-th sample counted from the newest (i = 0)
// Out-of-range indices return the zero Sample and false
func (b *Buffer) At(i int) (Sample, bool) {
	if i < 0 || i >= b.n {
		return Sample{}, false
	}
	idx := b.next - 1 - i
	if idx < 0 {
		idx += len(b.data)
	}
	return b.data[idx], true
}

// Reset drops all samples
func (b *Buffer) Reset() {
	b.next = 0
	b.n = 0
}
