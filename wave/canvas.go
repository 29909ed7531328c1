package wave

import (
	"math"

	"github.com/bengous/heartbeat-audio-visualizer/constant"
)

// brailleBits maps a dot position within a cell (column, row) to its bit
// in the braille pattern block.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

type cell struct {
	bits      uint8
	intensity float64
}

// Canvas is a grid of braille cells, 2x4 dots each, with a per-cell glow
// intensity that decays frame by frame. It is the terminal stand-in for
// an alpha-faded drawing surface.
type Canvas struct {
	W, H  int // cells
	cells []cell
}

// NewCanvas returns an empty canvas of w x h cells.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{W: w, H: h, cells: make([]cell, w*h)}
}

// Resize adjusts the grid, dropping previous content.
func (c *Canvas) Resize(w, h int) {
	if w == c.W && h == c.H {
		return
	}
	c.W, c.H = w, h
	c.cells = make([]cell, w*h)
}

// DotWidth returns the horizontal resolution in dots.
func (c *Canvas) DotWidth() int { return c.W * 2 }

// DotHeight returns the vertical resolution in dots.
func (c *Canvas) DotHeight() int { return c.H * 4 }

// Plot lights the dot at (x, y) in dot coordinates. A dimmer plot never
// darkens a cell that is already brighter.
func (c *Canvas) Plot(x, y int, intensity float64) {
	if x < 0 || y < 0 || x >= c.DotWidth() || y >= c.DotHeight() {
		return
	}
	idx := (y/4)*c.W + x/2
	c.cells[idx].bits |= brailleBits[x%2][y%4]
	if intensity > c.cells[idx].intensity {
		c.cells[idx].intensity = intensity
	}
}

// Fade decays every cell's intensity and clears cells that fall below
// the glow floor.
func (c *Canvas) Fade() {
	for i := range c.cells {
		if c.cells[i].bits == 0 {
			continue
		}
		c.cells[i].intensity *= constant.GlowDecayFactor
		if c.cells[i].intensity < constant.GlowFloor {
			c.cells[i] = cell{}
		}
	}
}

// Clear drops all dots.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{}
	}
}

// Cell returns the rune and intensity at cell (cx, cy). The rune is 0
// for an empty cell.
func (c *Canvas) Cell(cx, cy int) (rune, float64) {
	if cx < 0 || cy < 0 || cx >= c.W || cy >= c.H {
		return 0, 0
	}
	cl := c.cells[cy*c.W+cx]
	if cl.bits == 0 {
		return 0, 0
	}
	return rune(0x2800 | int(cl.bits)), cl.intensity
}

// DrawFrame fades the previous frame, advances the scroll, and strokes
// the trace twice: a widened glow pass one dot above and below the path,
// then the path itself at full intensity. Steep transitions are joined
// with vertical runs so the trace stays connected.
func DrawFrame(c *Canvas, s *Scroll) {
	c.Fade()
	s.Advance()

	mid := float64(c.DotHeight()) / 2
	prev := math.MinInt32
	for x := 0; x < c.DotWidth(); x++ {
		y := int(math.Round(Y(float64(x), s.Offset, s.BeatWidth, mid)))

		if prev != math.MinInt32 && y != prev {
			step := 1
			if y < prev {
				step = -1
			}
			for yy := prev + step; yy != y; yy += step {
				c.Plot(x, yy-1, constant.GlowStrokeIntensity)
				c.Plot(x, yy+1, constant.GlowStrokeIntensity)
				c.Plot(x, yy, 1.0)
			}
		}

		c.Plot(x, y-1, constant.GlowStrokeIntensity)
		c.Plot(x, y+1, constant.GlowStrokeIntensity)
		c.Plot(x, y, 1.0)
		prev = y
	}
}

// DrawBaseline clears the canvas and strokes the static dashed baseline
// shown while stopped.
func DrawBaseline(c *Canvas) {
	c.Clear()
	mid := c.DotHeight() / 2
	onDots := constant.BaselineDashOn * 2
	period := (constant.BaselineDashOn + constant.BaselineDashOff) * 2
	for x := 0; x < c.DotWidth(); x++ {
		if x%period < onDots {
			c.Plot(x, mid, 1.0)
		}
	}
}
