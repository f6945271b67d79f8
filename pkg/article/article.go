// Package article holds the bibliographic record the rest of the system
// sorts. An Article is immutable once built: fields are unexported and only
// readable through getters, so a *Article can be shared freely between the
// loaded set, a heap and a sorted result.
package article

import (
	"fmt"

	"go-bibsort/util/helpers"
)

type Article struct {
	firstName string
	lastName  string
	title     string
	path      string
	year      int
	abstract  string
}

// New builds an Article. A year of 0 means it could not be parsed.
func New(firstName, lastName, title, path string, year int, abstract string) *Article {
	return &Article{
		firstName: firstName,
		lastName:  lastName,
		title:     title,
		path:      path,
		year:      year,
		abstract:  abstract,
	}
}

func (a *Article) FirstName() string { return a.firstName }
func (a *Article) LastName() string  { return a.lastName }
func (a *Article) Title() string     { return a.title }
func (a *Article) Path() string      { return a.path }
func (a *Article) Year() int         { return a.year }
func (a *Article) Abstract() string  { return a.abstract }

// Author returns "first last", or whichever half is present.
func (a *Article) Author() string {
	switch {
	case a.firstName == "":
		return a.lastName
	case a.lastName == "":
		return a.firstName
	}
	return a.firstName + " " + a.lastName
}

// TitleWords is the number of whitespace separated tokens in the title.
func (a *Article) TitleWords() int {
	return helpers.CountWords(a.title)
}

// Equal compares field values, not identity.
func (a *Article) Equal(b *Article) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (a *Article) String() string {
	return fmt.Sprintf("%s (%d) %q [%s]", a.Author(), a.year, a.title, a.path)
}
