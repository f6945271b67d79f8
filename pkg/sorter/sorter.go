// Package sorter orders article sequences by building a min-heap keyed by
// the chosen criterion and draining it.
package sorter

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"go-bibsort/pkg/article"
	"go-bibsort/pkg/criteria"
	"go-bibsort/pkg/customerrors"
	"go-bibsort/pkg/heap"
	"go-bibsort/util/logger"
)

// SortBy returns a new slice holding the same *Article pointers as records,
// ordered by c ascending. records itself is not modified and no article is
// copied.
func SortBy(records []*article.Article, c criteria.Criterion, opts ...Option) ([]*article.Article, error) {
	if len(records) == 0 {
		return nil, customerrors.ErrInvalidInput
	}
	for i, r := range records {
		if r == nil {
			return nil, errors.Wrapf(customerrors.ErrInvalidInput, "nil record at index %d", i)
		}
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	start := time.Now()
	var (
		sorted []*article.Article
		err    error
	)

	switch c.Kind() {
	case criteria.IntKey:
		sorted, err = sortByKey(records, func(a *article.Article) (int, error) {
			return criteria.IntKeyOf(a, c)
		}, o)
	case criteria.StringKey:
		sorted, err = sortByKey(records, func(a *article.Article) (string, error) {
			return criteria.StringKeyOf(a, c)
		}, o)
	default:
		return nil, errors.Wrapf(customerrors.ErrInvalidCriterion, "%d", uint8(c))
	}

	if err != nil {
		return nil, errors.Wrapf(err, "failed to sort by %s", c)
	}

	logger.WithPrefix("sorter").Debugf("sorted %d articles by %s in %v", len(sorted), c, time.Since(start))
	return sorted, nil
}

// ranked orders by key first and input position second.
type ranked[K constraints.Ordered] struct {
	key K
	pos int
}

func sortByKey[K constraints.Ordered](
	records []*article.Article,
	keyOf func(*article.Article) (K, error),
	o *options,
) ([]*article.Article, error) {
	if o.stable {
		return drain(records, func(i int, a *article.Article) (ranked[K], error) {
			k, err := keyOf(a)
			return ranked[K]{key: k, pos: i}, err
		}, func(a, b ranked[K]) bool {
			if a.key != b.key {
				return a.key < b.key
			}
			return a.pos < b.pos
		}, o.heap)
	}

	return drain(records, func(_ int, a *article.Article) (K, error) {
		return keyOf(a)
	}, func(a, b K) bool { return a < b }, o.heap)
}

// drain inserts every record into a heap pre-sized to len(records) and
// extracts them all. The heap is destroyed on every path.
func drain[K any](
	records []*article.Article,
	keyOf func(int, *article.Article) (K, error),
	less heap.Less[K],
	ho *heap.Options,
) ([]*article.Article, error) {
	h, err := heap.New[K, *article.Article](len(records), less, ho)
	if err != nil {
		return nil, err
	}
	defer h.Destroy()

	for i, r := range records {
		key, err := keyOf(i, r)
		if err != nil {
			return nil, err
		}
		if err := h.Insert(r, key); err != nil {
			return nil, errors.Wrapf(err, "failed to insert record %d", i)
		}
	}

	sorted := make([]*article.Article, 0, len(records))
	for !h.IsEmpty() {
		r, err := h.ExtractMin()
		if err != nil {
			return nil, err
		}
		sorted = append(sorted, r)
	}

	return sorted, nil
}
