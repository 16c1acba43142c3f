package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestFitCanvas(t *testing.T) {
	tests := []struct {
		name                       string
		termW, termH, reserved     int
		wantCols, wantRows         int
		wantOffCol, wantOffRow     int
	}{
		{"width bound", 120, 41, 1, 120, 33, 0, 4},
		{"height bound", 200, 21, 1, 71, 20, 64, 1},
		{"tiny terminal", 1, 1, 1, 1, 1, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows, offCol, offRow := FitCanvas(tt.termW, tt.termH, tt.reserved, 960, 540)
			if cols != tt.wantCols || rows != tt.wantRows {
				t.Errorf("size = %dx%d, want %dx%d", cols, rows, tt.wantCols, tt.wantRows)
			}
			if offCol != tt.wantOffCol || offRow != tt.wantOffRow {
				t.Errorf("offset = (%d,%d), want (%d,%d)", offCol, offRow, tt.wantOffCol, tt.wantOffRow)
			}
		})
	}
}

func TestFillCircleAlwaysMarksCenter(t *testing.T) {
	// 96 columns for 960 logical units: a radius-7 orb is under one pixel wide.
	c := NewScaledCanvas(96, 27, 960, 540)
	c.FillCircle(480, 270, 0.1, InkOrb)

	if got := c.Pixel(48, 27); got != InkOrb {
		t.Fatalf("center pixel = %v, want InkOrb", got)
	}
}

func TestFillCircleCoversRadius(t *testing.T) {
	c := NewScaledCanvas(100, 50, 100, 100) // 1 logical unit per pixel
	c.FillCircle(50, 50, 10, InkHazard)

	if c.Pixel(50, 50) != InkHazard {
		t.Error("center should be filled")
	}
	if c.Pixel(55, 50) != InkHazard {
		t.Error("pixel inside radius should be filled")
	}
	if c.Pixel(62, 50) != InkNone {
		t.Error("pixel outside radius should be empty")
	}
}

func TestTintKeepsDrawnPixels(t *testing.T) {
	c := NewScaledCanvas(12, 4, 12, 8)
	c.FillRect(0, 0, 12, 8, InkPlayer)
	c.Tint(InkSlowTint)

	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			if c.Pixel(x, y) != InkPlayer {
				t.Fatalf("pixel (%d,%d) overwritten by tint", x, y)
			}
		}
	}

	c.Clear()
	c.Tint(InkSlowTint)
	if c.Pixel(0, 1) != InkSlowTint {
		t.Error("tint should stipple empty pixels")
	}
}

func TestRenderEmitsOnlyChangedCells(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.FillRect(0, 0, 1, 2, InkHazard) // one full cell at (1,1)

	var first bytes.Buffer
	if err := c.Render(&first); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.ContainsRune(first.String(), BlockFull) {
		t.Fatalf("first render missing full block: %q", first.String())
	}

	var second bytes.Buffer
	if err := c.Render(&second); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if second.Len() != 0 {
		t.Errorf("unchanged frame should emit nothing, got %q", second.String())
	}

	c.Clear()
	var third bytes.Buffer
	if err := c.Render(&third); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(third.String(), "\033[1;1H") {
		t.Errorf("cleared cell should be rewritten, got %q", third.String())
	}

	c.ForceRedraw()
	var forced bytes.Buffer
	if err := c.Render(&forced); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := strings.Count(forced.String(), "H"); got != 50 {
		t.Errorf("forced render moved cursor %d times, want 50", got)
	}
}

func TestCellGlyph(t *testing.T) {
	tests := []struct {
		c    cell
		want rune
	}{
		{cell{}, BlockEmpty},
		{cell{InkOrb, InkOrb}, BlockFull},
		{cell{InkOrb, InkNone}, BlockUpperHalf},
		{cell{InkNone, InkOrb}, BlockLowerHalf},
		{cell{InkOrb, InkHazard}, BlockUpperHalf},
	}
	for _, tt := range tests {
		if got, _ := cellGlyph(tt.c); got != tt.want {
			t.Errorf("cellGlyph(%v) = %q, want %q", tt.c, got, tt.want)
		}
	}
	if _, params := cellGlyph(cell{InkOrb, InkHazard}); !strings.Contains(params, "48;5;") {
		t.Errorf("two-ink cell should set a background, got %q", params)
	}
}

func TestLogicalToTerminal(t *testing.T) {
	c := NewScaledCanvas(100, 50, 100, 100)
	c.SetOffset(3, 2)
	col, row := c.LogicalToTerminal(10, 10)
	if col != 14 || row != 8 {
		t.Errorf("LogicalToTerminal = (%d,%d), want (14,8)", col, row)
	}
}
