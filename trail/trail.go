/*
Package trail keeps the most recent tip positions of an epicycle chain.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package trail

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/queues/circularbuffer"
	"github.com/npillmayer/epicycles"
)

// ErrCapacity indicates a trail which could not hold a single point.
var ErrCapacity = errors.New("trail capacity must be at least 1")

// Trail is a bounded FIFO of points, oldest first. Pushing onto a full trail
// drops the oldest point.
type Trail struct {
	buf *circularbuffer.Queue
	cap int
}

// New creates an empty trail for at most capacity points.
func New(capacity int) (*Trail, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrCapacity, capacity)
	}
	return &Trail{
		buf: circularbuffer.New(capacity),
		cap: capacity,
	}, nil
}

// Push appends v, dropping the oldest point if the trail is full.
func (tr *Trail) Push(v epicycles.Pair) {
	tr.buf.Enqueue(v)
}

// Len is the number of points held.
func (tr *Trail) Len() int {
	return tr.buf.Size()
}

// Cap is the maximum number of points held.
func (tr *Trail) Cap() int {
	return tr.cap
}

// At returns the i-th oldest point. It panics if i is out of range
// [0, Len()), as a slice would.
func (tr *Trail) At(i int) epicycles.Pair {
	if i < 0 || i >= tr.Len() {
		panic(fmt.Sprintf("trail index %d out of range [0,%d)", i, tr.Len()))
	}
	return tr.buf.Values()[i].(epicycles.Pair)
}

// Points returns a copy of all points, oldest first.
func (tr *Trail) Points() []epicycles.Pair {
	values := tr.buf.Values()
	points := make([]epicycles.Pair, len(values))
	for i, v := range values {
		points[i] = v.(epicycles.Pair)
	}
	return points
}

// Reset empties the trail.
func (tr *Trail) Reset() {
	tr.buf.Clear()
}
