package printer

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"go-bibsort/pkg/article"
	"go-bibsort/pkg/criteria"
)

type Format string

const (
	TEXT    Format = "text"
	JSON    Format = "json"
	MSGPACK Format = "msgpack"
)

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case TEXT, JSON, MSGPACK:
		return f, nil
	case "":
		return TEXT, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "'%s'", s)
}

// Page is the encoded form of a sort result.
type Page struct {
	Criterion criteria.Criterion `json:"criterion" msgpack:"criterion"`
	Total     int                `json:"total" msgpack:"total"`
	Items     []article.Document `json:"items" msgpack:"items"`
}

func NewPage(c criteria.Criterion, total int, records []*article.Article) *Page {
	return &Page{
		Criterion: c,
		Total:     total,
		Items:     article.Documents(records),
	}
}

func Write(w io.Writer, p *Page, f Format) error {
	switch f {
	case TEXT:
		return writeText(w, p)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(p), "failed to encode json")
	case MSGPACK:
		return errors.Wrap(msgpack.NewEncoder(w).Encode(p), "failed to encode msgpack")
	}
	return errors.Wrapf(ErrUnknownFormat, "'%s'", f)
}

func writeText(w io.Writer, p *Page) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d of %d articles ordered by %s\n", len(p.Items), p.Total, p.Criterion)
	for i, d := range p.Items {
		fmt.Fprintf(bw, "\n%d. %s\n", i+1, keyOf(d, p.Criterion))
		fmt.Fprintf(bw, "   title:  %s\n", d.Title)
		fmt.Fprintf(bw, "   author: %s %s\n", d.FirstName, d.LastName)
		fmt.Fprintf(bw, "   path:   %s\n", d.Path)
		fmt.Fprintf(bw, "   year:   %d   words: %d\n", d.Year, d.TitleWords)
	}

	return errors.Wrap(bw.Flush(), "failed to write text")
}

func keyOf(d article.Document, c criteria.Criterion) string {
	switch c {
	case criteria.Title:
		return fmt.Sprintf("[title] %q", d.Title)
	case criteria.WordCount:
		return fmt.Sprintf("[words] %d", d.TitleWords)
	case criteria.Path:
		return fmt.Sprintf("[path] %s", d.Path)
	case criteria.Year:
		return fmt.Sprintf("[year] %d", d.Year)
	}
	return ""
}
