package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(10, 10)

	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("expected top-left dot to be set")
	}

	// Out-of-range dots must be dropped silently.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(1000, 1000)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(3, 3)
	c.Clear()

	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("expected empty canvas after clear")
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 39)

	set := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				set++
			}
		}
	}
	if set == 0 {
		t.Error("expected line to set cells")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(5, 3)
	out := c.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 rows, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 5 {
			t.Errorf("expected 5 runes per row, got %d", len([]rune(line)))
		}
	}
}

func TestPhasePlotMapping(t *testing.T) {
	p := NewPhasePlot(10, 10, 100, 50)

	// Origin maps to the bottom-left sub-pixel.
	px, py := p.pixel(0, 0)
	if px != 0 || py != 10*4-1 {
		t.Errorf("origin mapped to (%d, %d)", px, py)
	}

	// The far corner maps to the top-right sub-pixel.
	px, py = p.pixel(100, 50)
	if px != 10*2-1 || py != 0 {
		t.Errorf("far corner mapped to (%d, %d)", px, py)
	}
}

func TestPhasePlotFixedBounds(t *testing.T) {
	p := NewPhasePlot(10, 10, 100, 50)

	// Data beyond the display bounds clips instead of rescaling.
	p.Point(500, 500)
	p.Marker(-20, -20)

	xMax, yMax := p.Bounds()
	if xMax != 100 || yMax != 50 {
		t.Errorf("bounds changed to (%f, %f)", xMax, yMax)
	}
}
