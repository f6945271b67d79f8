package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-bibsort/pkg/criteria"
	"go-bibsort/services/executor"
	"go-bibsort/services/printer"
)

const optionExit = 5

// options maps menu entries 1-4 to criteria.
var options = []struct {
	label     string
	criterion criteria.Criterion
}{
	{"Sort by title (A-Z)", criteria.Title},
	{"Sort by number of words in the title", criteria.WordCount},
	{"Sort by file name (path)", criteria.Path},
	{"Sort by year", criteria.Year},
}

type Menu struct {
	es     *executor.ExecutorService
	format printer.Format
}

func New(es *executor.ExecutorService, format printer.Format) *Menu {
	return &Menu{es: es, format: format}
}

// Run serves the menu until the user picks exit or in reaches EOF. A failed
// sort is reported and the session continues.
func (m *Menu) Run(in io.Reader, out io.Writer) error {
	s := bufio.NewScanner(in)

	for {
		opt, ok := m.chooseOption(s, out)
		if !ok || opt == optionExit {
			fmt.Fprintln(out, "Bye.")
			return s.Err()
		}

		limit, ok := m.chooseLimit(s, out)
		if !ok {
			fmt.Fprintln(out, "Bye.")
			return s.Err()
		}

		c := options[opt-1].criterion
		res, err := m.es.Exec(executor.Request{Criterion: c, Limit: limit})
		if err != nil {
			fmt.Fprintf(out, "Could not sort by %s: %v\n", c, err)
			continue
		}

		if err := printer.Write(out, printer.NewPage(res.Criterion, res.Total, res.Items), m.format); err != nil {
			return err
		}
	}
}

func (m *Menu) chooseOption(s *bufio.Scanner, out io.Writer) (int, bool) {
	return readInt(s, out, 1, optionExit, "Option out of range. Try again.", func() {
		fmt.Fprintln(out, "\n===== MAIN MENU =====")
		for i, o := range options {
			fmt.Fprintf(out, "%d. %s\n", i+1, o.label)
		}
		fmt.Fprintf(out, "%d. Exit\n", optionExit)
		fmt.Fprintf(out, "Choose an option (1-%d): ", optionExit)
	})
}

func (m *Menu) chooseLimit(s *bufio.Scanner, out io.Writer) (int, bool) {
	total := m.es.Total()
	return readInt(s, out, 1, total, "Amount out of range. Try again.", func() {
		fmt.Fprintf(out, "There are %d articles loaded.\n", total)
		fmt.Fprintf(out, "How many articles do you want to show? (1 - %d): ", total)
	})
}

// readInt prompts until a line holding an integer in [min, max] is read.
// It returns false on EOF.
func readInt(s *bufio.Scanner, out io.Writer, min, max int, outOfRange string, prompt func()) (int, bool) {
	for {
		prompt()
		if !s.Scan() {
			fmt.Fprintln(out)
			return 0, false
		}

		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			fmt.Fprintln(out, "Invalid input. Try again.")
			continue
		}

		n, err := strconv.Atoi(fields[0])
		if err != nil {
			fmt.Fprintln(out, "Invalid input. Try again.")
			continue
		}
		if n < min || n > max {
			fmt.Fprintln(out, outOfRange)
			continue
		}
		return n, true
	}
}
