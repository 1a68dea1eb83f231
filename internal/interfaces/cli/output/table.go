// Package output renders command results for terminals.
package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table writes aligned columns.
type Table struct {
	w *tabwriter.Writer
}

func NewTable(w io.Writer, headers ...string) *Table {
	t := &Table{w: tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)}
	fmt.Fprintln(t.w, strings.Join(headers, "\t"))
	return t
}

func (t *Table) Row(cells ...any) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(t.w, strings.Join(parts, "\t"))
}

func (t *Table) Flush() error {
	return t.w.Flush()
}

// Outcome renders a per-item success flag.
func Outcome(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}
