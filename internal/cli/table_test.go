package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"Name", "Age", "City"})

	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Name", "Age"})

	table.AddRow([]string{"Alice", "30"})
	table.AddRow([]string{"Bob"})
	table.AddRow([]string{"Charlie", "25", "Extra"})

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	if len(table.rows[1]) != 2 || table.rows[1][1] != "" {
		t.Errorf("Expected short row to be padded, got %q", table.rows[1])
	}
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected long row to be truncated, got %q", table.rows[2])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"K", "OUTPUT"})
	table.SetAlignRight(0)
	table.AddRow([]string{"4", "a.png"})
	table.AddRow([]string{"16", "b.png"})

	want := strings.Join([]string{
		" K  OUTPUT",
		"--  ------",
		" 4  a.png",
		"16  b.png",
		"",
	}, "\n")

	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestPadding(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Errorf("padRight() = %q", got)
	}
	if got := padLeft("ab", 4); got != "  ab" {
		t.Errorf("padLeft() = %q", got)
	}
	if got := padLeft("abcdef", 4); got != "abcdef" {
		t.Errorf("padLeft() = %q", got)
	}
}
