package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"go-bibsort/config"
	"go-bibsort/pkg/article"
	"go-bibsort/services/executor"
	"go-bibsort/services/printer"
)

func newMenu(configs *config.SortConfig) *Menu {
	es := executor.New([]*article.Article{
		article.New("Ana", "Mora", "Zebra crossings", "docs/z.txt", 2020, ""),
		article.New("Luis", "Soto", "apple orchards of the south", "docs/a.txt", 1999, ""),
		article.New("Eva", "Rojas", "Banana", "docs/b.txt", 1950, ""),
	}, configs)
	return New(es, printer.TEXT)
}

func run(t *testing.T, m *Menu, input string) string {
	t.Helper()
	out := &bytes.Buffer{}
	require.NoError(t, m.Run(strings.NewReader(input), out))
	return out.String()
}

func TestExit(t *testing.T) {
	out := run(t, newMenu(nil), "5\n")
	require.Contains(t, out, "===== MAIN MENU =====")
	require.Contains(t, out, "Bye.")
	require.NotContains(t, out, "How many")
}

func TestSortByYear(t *testing.T) {
	out := run(t, newMenu(nil), "4\n2\n5\n")

	require.Contains(t, out, "There are 3 articles loaded.")
	require.Contains(t, out, "2 of 3 articles ordered by year")
	require.Contains(t, out, "1. [year] 1950")
	require.Contains(t, out, "2. [year] 1999")
	require.NotContains(t, out, "3. [year]")
}

func TestSortByTitle(t *testing.T) {
	out := run(t, newMenu(nil), "1\n3\n5\n")

	banana := strings.Index(out, "title:  Banana")
	zebra := strings.Index(out, "title:  Zebra crossings")
	apple := strings.Index(out, "title:  apple orchards")
	require.True(t, banana >= 0 && banana < zebra && zebra < apple)
}

func TestInvalidInput(t *testing.T) {
	out := run(t, newMenu(nil), "abc\n\n9\n2\n0\nx\n3\n5\n")

	require.Equal(t, 3, strings.Count(out, "Invalid input. Try again."))
	require.Equal(t, 1, strings.Count(out, "Option out of range. Try again."))
	require.Equal(t, 1, strings.Count(out, "Amount out of range. Try again."))
	require.Contains(t, out, "3 of 3 articles ordered by words")
}

func TestEOFEndsSession(t *testing.T) {
	out := run(t, newMenu(nil), "3\n")
	require.Contains(t, out, "How many")
	require.Contains(t, out, "Bye.")

	out = run(t, newMenu(nil), "")
	require.Contains(t, out, "Bye.")
}

func TestFailedSortContinues(t *testing.T) {
	es := executor.New([]*article.Article{
		article.New("Ana", "Mora", "Zebra crossings", "docs/z.txt", 2020, ""),
		nil,
	}, nil)

	out := run(t, New(es, printer.TEXT), "2\n1\n5\n")
	require.Contains(t, out, "Could not sort by words")
	require.Equal(t, 2, strings.Count(out, "===== MAIN MENU ====="))
	require.Contains(t, out, "Bye.")
}

func TestSmallHeapBoundStillSorts(t *testing.T) {
	out := run(t, newMenu(&config.SortConfig{MaxHeapCapacity: 1}), "4\n3\n5\n")
	require.NotContains(t, out, "Could not sort")
	require.Contains(t, out, "3. [year] 2020")
}
