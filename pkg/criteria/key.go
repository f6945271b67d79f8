package criteria

import (
	"github.com/pkg/errors"

	"go-bibsort/pkg/article"
	"go-bibsort/pkg/customerrors"
)

// IntKeyOf returns the integer key of a for an IntKey criterion.
func IntKeyOf(a *article.Article, c Criterion) (int, error) {
	switch c {
	case WordCount:
		return a.TitleWords(), nil
	case Year:
		return a.Year(), nil
	}
	return 0, errors.Wrapf(customerrors.ErrInvalidCriterion, "'%s' has no integer key", c)
}

// StringKeyOf returns the text key of a for a StringKey criterion.
func StringKeyOf(a *article.Article, c Criterion) (string, error) {
	switch c {
	case Title:
		return a.Title(), nil
	case Path:
		return a.Path(), nil
	}
	return "", errors.Wrapf(customerrors.ErrInvalidCriterion, "'%s' has no text key", c)
}

// Key returns the key of a for any criterion, boxed. Useful for display.
func Key(a *article.Article, c Criterion) (any, error) {
	switch c.Kind() {
	case IntKey:
		return IntKeyOf(a, c)
	case StringKey:
		return StringKeyOf(a, c)
	}
	return nil, errors.Wrapf(customerrors.ErrInvalidCriterion, "%d", uint8(c))
}
