package loader

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"

	"go-bibsort/config"
	"go-bibsort/parser"
	"go-bibsort/pkg/article"
	"go-bibsort/util/helpers"
	"go-bibsort/util/logger"
)

// The scanner never lets a line grow past the larger of its initial
// buffer and maxLineBytes, so the initial buffer must not exceed the limit.
const initialBufferBytes = 4096

var log = logger.WithPrefix("loader")

type LoaderServiceT struct {
	maxLineBytes int
}

func New(configs *config.LoaderConfig) *LoaderServiceT {
	maxLine := configs.MaxLineBytes
	if maxLine <= 0 {
		maxLine = config.NewLoaderConfig().MaxLineBytes
	}
	return &LoaderServiceT{maxLineBytes: maxLine}
}

// Load reads every article of the index file at path.
func (ls *LoaderServiceT) Load(path string) ([]*article.Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open index file '%s'", path)
	}
	defer f.Close()

	records, err := ls.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load '%s'", path)
	}
	return records, nil
}

// Parse reads one article per non-blank line of r. Lines with no fields at
// all are skipped with a warning.
func (ls *LoaderServiceT) Parse(r io.Reader) ([]*article.Article, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, helpers.Min(initialBufferBytes, ls.maxLineBytes)), ls.maxLineBytes)
	s.Split(parser.LineDivider)

	records := []*article.Article{}
	lines := 0
	for s.Scan() {
		lines++
		a, err := parser.ParseLine(s.Text())
		if err != nil {
			log.Warnf("skipping line %d: %v", lines, err)
			continue
		}
		records = append(records, a)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed after %d lines", lines)
	}

	log.Infof("found %d articles", lines)
	log.Infof("loaded %d articles", len(records))
	return records, nil
}
