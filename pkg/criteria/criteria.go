// Package criteria maps an article and a sort criterion to the key the
// article is ordered by.
package criteria

import (
	"strings"

	"github.com/pkg/errors"

	"go-bibsort/pkg/customerrors"
)

type Criterion uint8

const (
	Title     Criterion = iota + 1 // title text, byte-wise
	WordCount                      // number of words in the title
	Path                           // file path text, byte-wise
	Year                           // publication year
)

// KeyKind tells which heap instantiation a criterion needs.
type KeyKind uint8

const (
	IntKey KeyKind = iota + 1
	StringKey
)

var names = map[Criterion]string{
	Title:     "title",
	WordCount: "words",
	Path:      "path",
	Year:      "year",
}

var aliases = map[string]Criterion{
	"title":      Title,
	"words":      WordCount,
	"word_count": WordCount,
	"wordcount":  WordCount,
	"path":       Path,
	"file":       Path,
	"year":       Year,
}

// All lists the criteria in menu order.
func All() []Criterion {
	return []Criterion{Title, WordCount, Path, Year}
}

// Parse accepts a criterion name or one of its aliases, case-insensitively.
func Parse(name string) (Criterion, error) {
	c, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.Wrapf(customerrors.ErrInvalidCriterion, "'%s'", name)
	}
	return c, nil
}

func (c Criterion) Valid() bool {
	_, ok := names[c]
	return ok
}

func (c Criterion) Kind() KeyKind {
	switch c {
	case Title, Path:
		return StringKey
	case WordCount, Year:
		return IntKey
	}
	return 0
}

func (c Criterion) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "unknown"
}

func (c Criterion) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, errors.Wrapf(customerrors.ErrInvalidCriterion, "%d", uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Criterion) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
