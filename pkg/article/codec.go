package article

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Document is the wire form of an Article.
type Document struct {
	FirstName  string `json:"first_name" msgpack:"first_name"`
	LastName   string `json:"last_name" msgpack:"last_name"`
	Title      string `json:"title" msgpack:"title"`
	Path       string `json:"path" msgpack:"path"`
	Year       int    `json:"year" msgpack:"year"`
	Abstract   string `json:"abstract" msgpack:"abstract"`
	TitleWords int    `json:"title_words" msgpack:"title_words"`
}

func (a *Article) Document() Document {
	return Document{
		FirstName:  a.firstName,
		LastName:   a.lastName,
		Title:      a.title,
		Path:       a.path,
		Year:       a.year,
		Abstract:   a.abstract,
		TitleWords: a.TitleWords(),
	}
}

// Article builds a fresh Article from the document. TitleWords is derived,
// so whatever the document carries for it is ignored.
func (d Document) Article() *Article {
	return New(d.FirstName, d.LastName, d.Title, d.Path, d.Year, d.Abstract)
}

func (a *Article) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Document())
}

func (a *Article) UnmarshalJSON(data []byte) error {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return errors.Wrap(err, "failed to unmarshal article")
	}
	*a = *d.Article()
	return nil
}

func (a *Article) MarshalMsgpack() ([]byte, error) {
	return msgpack.Marshal(a.Document())
}

func (a *Article) UnmarshalMsgpack(data []byte) error {
	var d Document
	if err := msgpack.Unmarshal(data, &d); err != nil {
		return errors.Wrap(err, "failed to unmarshal article")
	}
	*a = *d.Article()
	return nil
}

// Documents converts a record sequence to its wire form, preserving order.
func Documents(records []*Article) []Document {
	docs := make([]Document, len(records))
	for i, r := range records {
		docs[i] = r.Document()
	}
	return docs
}
