package ui

import (
	"bytes"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{0, "0ms"},
		{500 * time.Millisecond, "500ms"},
		{999 * time.Millisecond, "999ms"},
		{1 * time.Second, "1.0s"},
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Second, "90.0s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatDuration(tt.duration); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.duration, got, tt.want)
			}
		})
	}
}

func TestPrinter_PlainOutput(t *testing.T) {
	tests := []struct {
		name  string
		print func(p *Printer)
		want  string
	}{
		{"println", func(p *Printer) { p.Println("Cleaning project...") }, "Cleaning project...\n"},
		{"error", func(p *Printer) { p.Error("Executable does not exist.") }, "Executable does not exist.\n"},
		{"error format", func(p *Printer) { p.Error("Directory does not exist: %s", "/p/build") }, "Directory does not exist: /p/build\n"},
		{"warn", func(p *Printer) { p.Warn("generator exited with status %d", 1) }, "generator exited with status 1\n"},
		{"success", func(p *Printer) { p.Success("removed %d file(s)", 3) }, "✓ removed 3 file(s)\n"},
		{"step", func(p *Printer) { p.Step("removed %s", "a.sln") }, "  • removed a.sln\n"},
		{"label", func(p *Printer) { p.Label("root", "/p") }, "  root         /p\n"},
		{"dim", func(p *Printer) { p.Dim("took %s", "1.0s") }, "  took 1.0s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(New(&buf))
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTable(t *testing.T) {
	t.Run("basic table", func(t *testing.T) {
		tbl := NewTable("NAME", "SIZE", "COUNT")

		if len(tbl.headers) != 3 {
			t.Errorf("len(headers) = %d, want 3", len(tbl.headers))
		}
		if tbl.widths[0] != 4 { // "NAME"
			t.Errorf("widths[0] = %d, want 4", tbl.widths[0])
		}
	})

	t.Run("add row updates widths", func(t *testing.T) {
		tbl := NewTable("A", "B")
		tbl.AddRow("longer-value", "x")

		if tbl.widths[0] != 12 {
			t.Errorf("widths[0] = %d, want 12", tbl.widths[0])
		}
		if tbl.widths[1] != 1 {
			t.Errorf("widths[1] = %d, want 1", tbl.widths[1])
		}
	})

	t.Run("render", func(t *testing.T) {
		tbl := NewTable("NAME", "EXECUTABLE")
		tbl.AddRow("TP1_Nurbs", "TP1_Nurbs/TP1_Nurbs")
		tbl.AddRow("TP2", "TP2/TP2")

		var buf bytes.Buffer
		tbl.Render(New(&buf))

		want := "  NAME       EXECUTABLE\n" +
			"  ─────────  ───────────────────\n" +
			"  TP1_Nurbs  TP1_Nurbs/TP1_Nurbs\n" +
			"  TP2        TP2/TP2\n"
		if got := buf.String(); got != want {
			t.Errorf("Render() =\n%s\nwant\n%s", got, want)
		}
	})
}
