package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/octofit/pkg/types"
)

// WriteText writes the panel for a terminal.
func WriteText(w io.Writer, p Panel) error {
	switch ph := p.Phase.(type) {
	case types.Loading:
		_, err := fmt.Fprintf(w, "Loading %s...\n", p.View)
		return err
	case types.Failed:
		_, err := fmt.Fprintf(w, "Error loading %s\n%s\n", p.View, ph.Message)
		return err
	}

	if p.IsEmpty() {
		_, err := fmt.Fprintf(w, "%s\n%s\n", p.Empty.Title, p.Empty.Hint)
		return err
	}
	if p.Table != nil {
		return writeTable(w, *p.Table)
	}
	return writeCards(w, p.Cards)
}

// writeTable prints rows through a tabwriter, trimming trailing padding.
func writeTable(w io.Writer, t Table) error {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	headers := make([]string, len(t.Columns))
	rules := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = strings.ToUpper(c)
		rules[i] = strings.Repeat("-", len(c))
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	fmt.Fprintln(tw, strings.Join(rules, "\t"))

	for _, r := range t.Rows {
		cells := make([]string, len(r.Cells))
		for i, c := range r.Cells {
			cells[i] = cellText(c)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total: %d record(s)\n", len(t.Rows))
	return err
}

func writeCards(w io.Writer, cards []Card) error {
	for i, c := range cards {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "[%s]\n", c.Title)
		if c.Body != "" {
			fmt.Fprintf(w, "  %s\n", c.Body)
		}

		tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
		for _, f := range c.Fields {
			fmt.Fprintf(tw, "  %s:\t%s\n", f.Label, cellText(f.Value))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if c.Note != "" {
			fmt.Fprintf(w, "  %s\n", c.Note)
		}
	}
	_, err := fmt.Fprintf(w, "Total: %d record(s)\n", len(cards))
	return err
}

func cellText(c Cell) string {
	s := c.Text
	if c.Avatar != "" {
		s = fmt.Sprintf("(%s) %s", c.Avatar, s)
	}
	if c.Tag == "" {
		return s
	}
	return fmt.Sprintf("%s [%s]", s, c.Tag)
}
