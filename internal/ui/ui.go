package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	colorSuccess = lipgloss.Color("#10B981") // emerald
	colorError   = lipgloss.Color("#EF4444") // red
	colorWarning = lipgloss.Color("#F59E0B") // amber
	colorMuted   = lipgloss.Color("#6B7280") // gray-500
	colorSubtle  = lipgloss.Color("#9CA3AF") // gray-400
)

// Icons
const (
	iconSuccess = "✓"
	iconBullet  = "•"
)

// Printer writes styled status lines to one writer. Styling comes from a
// renderer bound to that writer, so output to a pipe or buffer is plain.
type Printer struct {
	w io.Writer

	success lipgloss.Style
	err     lipgloss.Style
	warn    lipgloss.Style
	dim     lipgloss.Style
	label   lipgloss.Style
}

// New creates a Printer for w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		success: r.NewStyle().Foreground(colorSuccess).Bold(true),
		err:     r.NewStyle().Foreground(colorError).Bold(true),
		warn:    r.NewStyle().Foreground(colorWarning).Bold(true),
		dim:     r.NewStyle().Foreground(colorMuted),
		label:   r.NewStyle().Foreground(colorSubtle),
	}
}

// Println prints an unstyled message line.
func (p *Printer) Println(msg string) {
	fmt.Fprintln(p.w, msg)
}

// Error prints an error message.
func (p *Printer) Error(msg string, args ...any) {
	fmt.Fprintln(p.w, p.err.Render(fmt.Sprintf(msg, args...)))
}

// Warn prints a warning message.
func (p *Printer) Warn(msg string, args ...any) {
	fmt.Fprintln(p.w, p.warn.Render(fmt.Sprintf(msg, args...)))
}

// Success prints a success message with a check mark.
func (p *Printer) Success(msg string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.success.Render(iconSuccess), fmt.Sprintf(msg, args...))
}

// Step prints an indented bullet line.
func (p *Printer) Step(msg string, args ...any) {
	fmt.Fprintf(p.w, "  %s %s\n", p.dim.Render(iconBullet), fmt.Sprintf(msg, args...))
}

// Label prints a key-value pair with the key padded to a fixed width.
func (p *Printer) Label(key, value string) {
	fmt.Fprintf(p.w, "  %s %s\n", p.label.Render(fmt.Sprintf("%-12s", key)), value)
}

// Dim prints dimmed, indented text.
func (p *Printer) Dim(msg string, args ...any) {
	fmt.Fprintf(p.w, "  %s\n", p.dim.Render(fmt.Sprintf(msg, args...)))
}

// Table renders a simple table.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a new table with headers.
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{headers: headers, widths: widths}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for i, c := range cols {
		if i < len(t.widths) && len(c) > t.widths[i] {
			t.widths[i] = len(c)
		}
	}
	t.rows = append(t.rows, cols)
}

// Render prints the table through p.
func (t *Table) Render(p *Printer) {
	fmt.Fprintf(p.w, "  %s\n", p.dim.Render(t.line(t.headers)))

	sep := make([]string, len(t.widths))
	for i, w := range t.widths {
		sep[i] = strings.Repeat("─", w)
	}
	fmt.Fprintf(p.w, "  %s\n", p.dim.Render(strings.Join(sep, "  ")))

	for _, row := range t.rows {
		fmt.Fprintf(p.w, "  %s\n", t.line(row))
	}
}

func (t *Table) line(cols []string) string {
	var b strings.Builder
	for i, col := range cols {
		if i > 0 {
			b.WriteString("  ")
		}
		if i < len(t.widths) && i < len(cols)-1 {
			fmt.Fprintf(&b, "%-*s", t.widths[i], col)
		} else {
			b.WriteString(col)
		}
	}
	return b.String()
}

// FormatDuration formats duration as human readable string.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
