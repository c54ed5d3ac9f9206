// Package report prints demo results to the console.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"oodesign/internal/quadrature"
)

// Printer writes results to w. Styling is only applied when w is a terminal
// that supports it.
type Printer struct {
	w      io.Writer
	label  lipgloss.Style
	header lipgloss.Style
	muted  lipgloss.Style
}

// NewPrinter creates a Printer bound to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:      w,
		label:  r.NewStyle().Bold(true),
		header: r.NewStyle().Bold(true).Underline(true),
		muted:  r.NewStyle().Faint(true),
	}
}

// Row is one line of a sweep table.
type Row struct {
	quadrature.Estimate
	// Exact is NaN when the exact integral is unknown.
	Exact float64
}

// Area prints the total area of a set of shapes.
func (p *Printer) Area(total float64) error {
	_, err := fmt.Fprintf(p.w, "%s %s\n", p.label.Render("Total area:"), formatFloat(total))
	return err
}

// Estimate prints one labelled integration result, e.g. "Simpson: 0.3333333333333333".
func (p *Printer) Estimate(label string, value float64) error {
	_, err := fmt.Fprintf(p.w, "%s %s\n", p.label.Render(Title(label)+":"), formatFloat(value))
	return err
}

// Table prints sweep rows with the effective partition count and, when the
// exact value is known, the absolute error.
func (p *Printer) Table(rows []Row) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p.header.Render(fmt.Sprintf("%-12s %6s %6s %22s %12s", "method", "n", "used", "estimate", "abs error")))
	for _, r := range rows {
		errCol := p.muted.Render(fmt.Sprintf("%12s", "-"))
		if !math.IsNaN(r.Exact) {
			errCol = fmt.Sprintf("%12.3e", math.Abs(r.Value-r.Exact))
		}
		fmt.Fprintf(&b, "%-12s %6d %6d %22s %s\n", r.Strategy, r.N, r.EffectiveN, formatFloat(r.Value), errCol)
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

// Title upper-cases the first letter of a strategy name for display.
func Title(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// formatFloat prints the shortest representation that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
