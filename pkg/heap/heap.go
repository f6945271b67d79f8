// Package heap implements an array backed binary min-heap generic over its
// key type. Each node pairs a value with the key it is ordered by; the heap
// never looks inside the value.
package heap

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"go-bibsort/pkg/customerrors"
	"go-bibsort/util/helpers"
	"go-bibsort/util/logger"
)

// Less reports whether a orders strictly before b. It must be a strict weak
// ordering over K.
type Less[K any] func(a, b K) bool

type node[K, V any] struct {
	key K
	val V
}

// Heap is not safe for concurrent use.
type Heap[K, V any] struct {
	// len(nodes) is the heap size, cap(nodes) its capacity
	nodes     []node[K, V]
	less      Less[K]
	maxCap    int
	destroyed bool
}

// New creates an empty heap with capacity max(initialCapacity, 1), clamped
// to opts.MaxCapacity.
func New[K, V any](initialCapacity int, less Less[K], opts *Options) (*Heap[K, V], error) {
	if less == nil {
		return nil, errors.New("heap: nil comparison function")
	}

	maxCap := opts.maxCapacity()
	capacity := helpers.Min(helpers.Max(initialCapacity, 1), maxCap)

	nodes, err := allocate[K, V](capacity)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create heap with capacity %d", capacity)
	}

	return &Heap[K, V]{
		nodes:  nodes,
		less:   less,
		maxCap: maxCap,
	}, nil
}

// NewOrdered creates a heap ordered by K's natural ascending order. Strings
// compare byte-wise.
func NewOrdered[K constraints.Ordered, V any](initialCapacity int, opts *Options) (*Heap[K, V], error) {
	return New[K, V](initialCapacity, func(a, b K) bool { return a < b }, opts)
}

// IsEmpty is true for an empty, destroyed or nil heap.
func (h *Heap[K, V]) IsEmpty() bool {
	return h == nil || h.destroyed || len(h.nodes) == 0
}

func (h *Heap[K, V]) Len() int {
	if h == nil {
		return 0
	}
	return len(h.nodes)
}

func (h *Heap[K, V]) Cap() int {
	if h == nil {
		return 0
	}
	return cap(h.nodes)
}

// Insert adds val ordered by key. If the heap is full it grows first; when
// growth is impossible the heap is left untouched and the error is returned.
func (h *Heap[K, V]) Insert(val V, key K) error {
	if err := h.usable(); err != nil {
		return err
	}

	if err := h.ensureCapacity(); err != nil {
		return err
	}

	h.nodes = append(h.nodes, node[K, V]{key: key, val: val})
	h.up(len(h.nodes) - 1)
	return nil
}

// ExtractMin removes and returns the value with the smallest key.
func (h *Heap[K, V]) ExtractMin() (V, error) {
	var zero V
	if h == nil {
		return zero, customerrors.ErrEmptyQueue
	}
	if err := h.usable(); err != nil {
		return zero, err
	}
	if len(h.nodes) == 0 {
		return zero, customerrors.ErrEmptyQueue
	}

	min := h.nodes[0]
	last := len(h.nodes) - 1
	h.nodes[0] = h.nodes[last]
	h.nodes[last] = node[K, V]{}
	h.nodes = h.nodes[:last]

	if last > 0 {
		h.down(0)
	}
	return min.val, nil
}

// Peek returns the minimum value and its key without removing it.
func (h *Heap[K, V]) Peek() (V, K, error) {
	var (
		zeroV V
		zeroK K
	)
	if h == nil {
		return zeroV, zeroK, customerrors.ErrEmptyQueue
	}
	if err := h.usable(); err != nil {
		return zeroV, zeroK, err
	}
	if len(h.nodes) == 0 {
		return zeroV, zeroK, customerrors.ErrEmptyQueue
	}
	return h.nodes[0].val, h.nodes[0].key, nil
}

// Destroy drops every remaining node and the backing storage. The heap must
// not be used afterwards; doing so returns customerrors.ErrHeapDestroyed.
func (h *Heap[K, V]) Destroy() {
	if h == nil || h.destroyed {
		return
	}
	clear(h.nodes)
	h.nodes = nil
	h.destroyed = true
}

// Valid reports whether every node's key is not greater than its
// children's keys.
func (h *Heap[K, V]) Valid() bool {
	if h == nil {
		return true
	}
	for i := range h.nodes {
		for _, c := range [2]int{2*i + 1, 2*i + 2} {
			if c < len(h.nodes) && h.less(h.nodes[c].key, h.nodes[i].key) {
				return false
			}
		}
	}
	return true
}

func (h *Heap[K, V]) usable() error {
	if h == nil || h.destroyed {
		return customerrors.ErrHeapDestroyed
	}
	return nil
}

func (h *Heap[K, V]) ensureCapacity() error {
	size, capacity := len(h.nodes), cap(h.nodes)
	if size < capacity {
		return nil
	}

	if capacity >= h.maxCap {
		logger.WithPrefix("heap").Warnf("capacity exhausted at %d nodes", capacity)
		return errors.Wrapf(customerrors.ErrCapacityExhausted, "cannot grow past %d", h.maxCap)
	}

	newCap := capacity * 2
	if newCap <= capacity || newCap > h.maxCap {
		// overflow, or doubling overshoots the bound
		newCap = h.maxCap
	}
	if newCap < 1 {
		newCap = 1
	}

	nodes, err := allocate[K, V](newCap)
	if err != nil {
		return errors.Wrapf(err, "failed to grow heap from %d to %d", capacity, newCap)
	}

	h.nodes = append(nodes, h.nodes...)
	return nil
}

func (h *Heap[K, V]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.nodes[i].key, h.nodes[parent].key) {
			break
		}
		h.nodes[i], h.nodes[parent] = h.nodes[parent], h.nodes[i]
		i = parent
	}
}

func (h *Heap[K, V]) down(i int) {
	n := len(h.nodes)
	for {
		left, right, smallest := 2*i+1, 2*i+2, i

		if left < n && h.less(h.nodes[left].key, h.nodes[smallest].key) {
			smallest = left
		}
		if right < n && h.less(h.nodes[right].key, h.nodes[smallest].key) {
			smallest = right
		}
		if smallest == i {
			return
		}

		h.nodes[i], h.nodes[smallest] = h.nodes[smallest], h.nodes[i]
		i = smallest
	}
}

// allocate returns an empty node slice with the given capacity, turning a
// runtime allocation panic into customerrors.ErrAllocation.
func allocate[K, V any](capacity int) (nodes []node[K, V], err error) {
	defer func() {
		if r := recover(); r != nil {
			nodes, err = nil, errors.Wrap(customerrors.ErrAllocation, fmt.Sprint(r))
		}
	}()
	return make([]node[K, V], 0, capacity), nil
}
