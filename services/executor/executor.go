package executor

import (
	"sync"

	"github.com/pkg/errors"

	"go-bibsort/config"
	"go-bibsort/pkg/article"
	"go-bibsort/pkg/criteria"
	"go-bibsort/pkg/customerrors"
	"go-bibsort/pkg/heap"
	"go-bibsort/pkg/sorter"
	"go-bibsort/util/logger"
)

var log = logger.WithPrefix("executor")

// Request asks for the loaded articles ordered by Criterion. Limit keeps the
// first Limit results; 0 means all of them.
type Request struct {
	Criterion criteria.Criterion
	Limit     int
	Stable    bool
}

type Result struct {
	Criterion criteria.Criterion
	Total     int
	Items     []*article.Article
}

// ExecutorService owns the article set loaded at startup and runs one sort
// at a time against it.
type ExecutorService struct {
	m       sync.Mutex
	records []*article.Article
	configs *config.SortConfig
}

func New(records []*article.Article, configs *config.SortConfig) *ExecutorService {
	if configs == nil {
		configs = config.NewSortConfig()
	}
	return &ExecutorService{
		records: records,
		configs: configs,
	}
}

func (es *ExecutorService) Total() int {
	return len(es.records)
}

func (es *ExecutorService) Exec(req Request) (*Result, error) {
	if err := es.validate(req); err != nil {
		return nil, errors.Wrapf(err, "validation error")
	}

	es.m.Lock()
	defer es.m.Unlock()

	opts := []sorter.Option{sorter.WithStable(req.Stable || es.configs.Stable)}
	if bound := es.configs.MaxHeapCapacity; bound > 0 {
		// the heap always has room for the whole set, so a sort never aborts
		// on capacity exhaustion
		if bound < len(es.records) {
			log.Debugf("raising heap bound %d to %d articles", bound, len(es.records))
			bound = len(es.records)
		}
		opts = append(opts, sorter.WithHeapOptions(&heap.Options{MaxCapacity: bound}))
	}

	sorted, err := sorter.SortBy(es.records, req.Criterion, opts...)
	if err != nil {
		log.Errorf("sort by %s failed: %v", req.Criterion, err)
		return nil, err
	}

	if es.configs.Verify && !sorter.IsSorted(sorted, req.Criterion) {
		return nil, errors.Errorf("result is not ordered by %s", req.Criterion)
	}

	limit := req.Limit
	if limit == 0 {
		limit = len(sorted)
	}

	return &Result{
		Criterion: req.Criterion,
		Total:     len(es.records),
		Items:     sorted[:limit],
	}, nil
}

func (es *ExecutorService) validate(req Request) error {
	if !req.Criterion.Valid() {
		return errors.Wrapf(customerrors.ErrInvalidCriterion, "%d", uint8(req.Criterion))
	}
	if len(es.records) == 0 {
		return errors.Wrap(customerrors.ErrInvalidInput, "no articles loaded")
	}
	if req.Limit < 0 || req.Limit > len(es.records) {
		return errors.Wrapf(customerrors.ErrInvalidInput, "limit %d out of range (1 - %d)", req.Limit, len(es.records))
	}
	return nil
}
