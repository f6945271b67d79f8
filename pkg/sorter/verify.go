package sorter

import (
	"go-bibsort/pkg/article"
	"go-bibsort/pkg/criteria"
)

// IsSorted reports whether records are in non-decreasing order of c.
func IsSorted(records []*article.Article, c criteria.Criterion) bool {
	if len(records) < 2 {
		return true
	}

	switch c.Kind() {
	case criteria.IntKey:
		for i := 1; i < len(records); i++ {
			prev, _ := criteria.IntKeyOf(records[i-1], c)
			cur, _ := criteria.IntKeyOf(records[i], c)
			if prev > cur {
				return false
			}
		}
	case criteria.StringKey:
		for i := 1; i < len(records); i++ {
			prev, _ := criteria.StringKeyOf(records[i-1], c)
			cur, _ := criteria.StringKeyOf(records[i], c)
			if prev > cur {
				return false
			}
		}
	default:
		return false
	}

	return true
}
