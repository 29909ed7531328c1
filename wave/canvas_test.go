package wave

import (
	"math"
	"testing"
	"time"
)

// TestCanvasPlot verifies dot-to-cell mapping and the braille rune
// composition.
func TestCanvasPlot(t *testing.T) {
	c := NewCanvas(4, 2) // 8x8 dots

	c.Plot(0, 0, 1.0)
	r, intensity := c.Cell(0, 0)
	if r != rune(0x2801) {
		t.Errorf("Expected rune U+2801 for top-left dot, got U+%04X", r)
	}
	if intensity != 1.0 {
		t.Errorf("Expected intensity 1.0, got %v", intensity)
	}

	// Dot (3,5) lands in cell (1,1), right column, second row: bit 0x10.
	c.Plot(3, 5, 0.5)
	r, _ = c.Cell(1, 1)
	if r != rune(0x2810) {
		t.Errorf("Expected rune U+2810, got U+%04X", r)
	}

	// Out-of-range plots are ignored.
	c.Plot(-1, 0, 1.0)
	c.Plot(0, -1, 1.0)
	c.Plot(8, 0, 1.0)
	c.Plot(0, 8, 1.0)
}

// TestCanvasPlotKeepsBrighter verifies a dim plot never darkens a cell.
func TestCanvasPlotKeepsBrighter(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Plot(0, 0, 1.0)
	c.Plot(1, 0, 0.3) // same cell, dimmer
	if _, intensity := c.Cell(0, 0); intensity != 1.0 {
		t.Errorf("Expected cell to keep intensity 1.0, got %v", intensity)
	}
}

// TestCanvasFade verifies decay and removal below the glow floor.
func TestCanvasFade(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Plot(0, 0, 1.0)

	c.Fade()
	_, intensity := c.Cell(0, 0)
	if intensity >= 1.0 || intensity <= 0 {
		t.Errorf("Expected decayed intensity in (0,1), got %v", intensity)
	}

	for i := 0; i < 40; i++ {
		c.Fade()
	}
	if r, _ := c.Cell(0, 0); r != 0 {
		t.Errorf("Expected faded cell to clear, got rune U+%04X", r)
	}
}

// TestDrawFrameStrokesTrace verifies a frame lights cells and that the
// brightest cells sit on the path while glow cells are dimmer.
func TestDrawFrameStrokesTrace(t *testing.T) {
	c := NewCanvas(40, 10)
	s := NewScroll(60)

	DrawFrame(c, &s)

	lit := 0
	bright := 0
	for cy := 0; cy < c.H; cy++ {
		for cx := 0; cx < c.W; cx++ {
			r, intensity := c.Cell(cx, cy)
			if r == 0 {
				continue
			}
			lit++
			if intensity == 1.0 {
				bright++
			}
		}
	}
	if lit == 0 {
		t.Fatal("Expected a stroked trace, canvas is empty")
	}
	if bright == 0 {
		t.Error("Expected full-intensity cells along the path")
	}

	// Every column carries at least one dot: the trace is connected.
	for cx := 0; cx < c.W; cx++ {
		found := false
		for cy := 0; cy < c.H; cy++ {
			if r, _ := c.Cell(cx, cy); r != 0 {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("Expected trace coverage in column %d", cx)
		}
	}
}

// TestDrawFrameGlowDecays verifies old strokes dim over successive
// frames instead of accumulating at full brightness.
func TestDrawFrameGlowDecays(t *testing.T) {
	c := NewCanvas(40, 10)
	s := NewScroll(60)

	for i := 0; i < 8; i++ {
		DrawFrame(c, &s)
	}

	levels := map[float64]bool{}
	for cy := 0; cy < c.H; cy++ {
		for cx := 0; cx < c.W; cx++ {
			if r, intensity := c.Cell(cx, cy); r != 0 {
				levels[intensity] = true
			}
		}
	}
	if len(levels) < 2 {
		t.Errorf("Expected mixed intensities from the fading trail, got %d level(s)", len(levels))
	}
}

// TestDrawFrameFlatColumns verifies columns that round to the same dot
// row as their neighbor finish without a vertical join. The trace sits
// exactly on the baseline between complexes, so equal rows occur on
// every frame, and a join started there has no gap to close.
func TestDrawFrameFlatColumns(t *testing.T) {
	c := NewCanvas(40, 12)
	s := NewScroll(72)

	done := make(chan struct{})
	go func() {
		DrawFrame(c, &s)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("DrawFrame did not return on a trace with flat runs")
	}

	// Flat runs stroke only the path dot and its glow neighbors. Check
	// cells deep enough in a flat stretch that no join from a preceding
	// slope can land in either of their dot columns.
	mid := float64(c.DotHeight()) / 2
	row := func(x int) int {
		return int(math.Round(Y(float64(x), s.Offset, s.BeatWidth, mid)))
	}
	checked := 0
	for x := 2; x < c.DotWidth()-1; x++ {
		y := row(x)
		if row(x-2) != y || row(x-1) != y || row(x+1) != y {
			continue
		}
		lo, hi := (y-1)/4, (y+1)/4
		for cy := 0; cy < c.H; cy++ {
			if r, _ := c.Cell(x/2, cy); r != 0 && (cy < lo || cy > hi) {
				t.Fatalf("Expected column %d confined to cell rows %d..%d, found row %d", x, lo, hi, cy)
			}
		}
		checked++
	}
	if checked == 0 {
		t.Fatal("Expected flat columns on the baseline")
	}
}

// TestDrawBaselineDashed verifies the stopped state renders dashes on
// the midline only.
func TestDrawBaselineDashed(t *testing.T) {
	c := NewCanvas(20, 8)
	DrawBaseline(c)

	midCell := (c.DotHeight() / 2) / 4
	litCols, gapCols := 0, 0
	for cx := 0; cx < c.W; cx++ {
		for cy := 0; cy < c.H; cy++ {
			r, _ := c.Cell(cx, cy)
			if cy != midCell && r != 0 {
				t.Fatalf("Expected dots only on the midline, found cell (%d,%d)", cx, cy)
			}
		}
		if r, _ := c.Cell(cx, midCell); r != 0 {
			litCols++
		} else {
			gapCols++
		}
	}
	if litCols == 0 || gapCols == 0 {
		t.Errorf("Expected dashed pattern, got %d lit and %d gap columns", litCols, gapCols)
	}
}
