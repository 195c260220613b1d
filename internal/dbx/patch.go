package dbx

import (
	"fmt"
	"strings"
)

// Patch accumulates "column = $n" assignments for a partial UPDATE.
// Columns are always compile-time constants chosen by the repository;
// only values travel as arguments.
type Patch struct {
	cols []string
	args []any
}

// Set records an assignment.
func (p *Patch) Set(col string, value any) {
	p.cols = append(p.cols, col)
	p.args = append(p.args, value)
}

// Empty reports whether nothing was set.
func (p *Patch) Empty() bool { return len(p.cols) == 0 }

// Clause renders "a = $1, b = $2" and returns the arguments in order.
// The next free placeholder index is len(args)+1.
func (p *Patch) Clause() (string, []any) {
	parts := make([]string, len(p.cols))
	for i, c := range p.cols {
		parts[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	return strings.Join(parts, ", "), append([]any(nil), p.args...)
}
