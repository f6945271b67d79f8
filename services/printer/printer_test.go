package printer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"go-bibsort/pkg/article"
	"go-bibsort/pkg/criteria"
)

func page() *Page {
	return NewPage(criteria.Year, 10, []*article.Article{
		article.New("Ana", "Mora", "Corruption in Latin America", "docs/c.txt", 1950, "abs"),
		article.New("Luis", "Soto", "Heaps", "docs/h.txt", 1999, ""),
	})
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": TEXT, "text": TEXT, "JSON": JSON, " msgpack ": MSGPACK} {
		f, err := ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, f)
	}

	_, err := ParseFormat("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteText(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, page(), TEXT))

	out := buf.String()
	require.Contains(t, out, "2 of 10 articles ordered by year")
	require.Contains(t, out, "1. [year] 1950")
	require.Contains(t, out, "2. [year] 1999")
	require.Contains(t, out, "title:  Corruption in Latin America")
	require.Contains(t, out, "author: Luis Soto")
	require.Contains(t, out, "words: 4")
}

func TestWriteJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, page(), JSON))

	decoded := Page{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, *page(), decoded)
	require.Contains(t, buf.String(), `"criterion": "year"`)
}

func TestWriteMsgpack(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, page(), MSGPACK))

	decoded := Page{}
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, *page(), decoded)
}

func TestWriteUnknown(t *testing.T) {
	require.ErrorIs(t, Write(&bytes.Buffer{}, page(), Format("xml")), ErrUnknownFormat)
}
