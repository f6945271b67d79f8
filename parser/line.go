package parser

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"

	"go-bibsort/pkg/article"
	"go-bibsort/util/helpers"
)

const (
	FieldSeparator = '|'
	fieldCount     = 6
)

var ErrEmptyLine = errors.New("line has no fields")

// LineDivider is a bufio.SplitFunc yielding one index line per token.
// Line endings (\n or \r\n) are dropped and runs of blank lines are
// consumed together with the line that follows them. A nil token is only
// returned once nothing but blank lines is left.
func LineDivider(data []byte, atEOF bool) (advance int, token []byte, err error) {
	for {
		i := bytes.IndexByte(data[advance:], '\n')
		if i < 0 {
			break
		}
		line := trimCR(data[advance : advance+i])
		advance += i + 1
		if !isBlank(line) {
			return advance, line, nil
		}
	}

	if atEOF {
		if rest := trimCR(data[advance:]); !isBlank(rest) {
			return len(data), rest, nil
		}
		return len(data), nil, nil
	}

	// Request more data, dropping the blank lines seen so far
	return advance, nil, nil
}

func trimCR(line []byte) []byte {
	return bytes.TrimSuffix(line, []byte{'\r'})
}

func isBlank(line []byte) bool {
	return len(bytes.TrimSpace(line)) == 0
}

// ParseLine reads "first|last|title|path|year|abstract|". Empty fields
// collapse, so a line with fewer than six fields leaves the trailing ones
// empty. The year is read like C atoi and is 0 when unparseable.
func ParseLine(line string) (*article.Article, error) {
	line = helpers.TrimSuffix(helpers.TrimSuffix(line, "\n"), "\r")

	fields := make([]string, 0, fieldCount)
	for _, f := range strings.Split(line, string(FieldSeparator)) {
		if f == "" {
			continue
		}
		fields = append(fields, f)
		if len(fields) == fieldCount {
			break
		}
	}
	if len(fields) == 0 {
		return nil, ErrEmptyLine
	}

	for len(fields) < fieldCount {
		fields = append(fields, "")
	}

	return article.New(
		fields[0],
		fields[1],
		fields[2],
		fields[3],
		helpers.Atoi(fields[4]),
		fields[5],
	), nil
}
