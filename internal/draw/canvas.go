package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// cell is the pair of half-block pixels shown by one terminal character.
type cell struct {
	top, bottom Ink
}

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
// Render only emits cells that changed since the previous frame.
type Canvas struct {
	termWidth      int   // Canvas columns
	termHeight     int   // Canvas rows
	subPixelHeight int   // termHeight * 2
	pixels         []Ink // Flat slice: [y * termWidth + x]
	prev           []cell
	forceRedraw    bool

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets (columns/rows to skip) for centering.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the canvas dimensions in terminal cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]Ink, subPixelHeight*termWidth)
		c.prev = make([]cell, termHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
		c.forceRedraw = true
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// FitCanvas computes canvas dimensions that keep the logical aspect ratio
// inside a terminal of termWidth x termHeight, leaving reservedRows free at
// the top. Sub-pixels are treated as square (a cell is one column by two sub-pixels).
func FitCanvas(termWidth, termHeight, reservedRows int, logicalWidth, logicalHeight float64) (cols, rows, offCol, offRow int) {
	availRows := termHeight - reservedRows
	if availRows < 1 {
		availRows = 1
	}
	if termWidth < 1 {
		termWidth = 1
	}

	aspect := logicalWidth / logicalHeight
	cols = termWidth
	rows = int(math.Floor(float64(cols) / aspect / 2))
	if rows > availRows {
		rows = availRows
		cols = int(math.Floor(float64(rows) * 2 * aspect))
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	offCol = (termWidth - cols) / 2
	offRow = reservedRows + (availRows-rows)/2
	return cols, rows, offCol, offRow
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.forceRedraw = true
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render emit every cell, e.g. after the screen was cleared.
func (c *Canvas) ForceRedraw() {
	c.forceRedraw = true
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, ink Ink) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = ink
	}
}

// Pixel returns the ink at pixel coordinates, or InkNone when out of range.
func (c *Canvas) Pixel(x, y int) Ink {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		return c.pixels[y*c.termWidth+x]
	}
	return InkNone
}

// FillCircle fills a circle given in logical coordinates.
// The center pixel is always set so tiny entities stay visible.
func (c *Canvas) FillCircle(x, y, r float64, ink Ink) {
	cx, cy := x*c.scaleX, y*c.scaleY
	rx, ry := r*c.scaleX, r*c.scaleY

	c.setPixel(int(math.Floor(cx)), int(math.Floor(cy)), ink)
	if rx <= 0 || ry <= 0 {
		return
	}

	x0, x1 := int(math.Floor(cx-rx)), int(math.Ceil(cx+rx))
	y0, y1 := int(math.Floor(cy-ry)), int(math.Ceil(cy+ry))
	for py := y0; py <= y1; py++ {
		dy := (float64(py) + 0.5 - cy) / ry
		for px := x0; px <= x1; px++ {
			dx := (float64(px) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				c.setPixel(px, py, ink)
			}
		}
	}
}

// FillRect fills an axis-aligned rectangle given in logical coordinates.
func (c *Canvas) FillRect(x, y, w, h float64, ink Ink) {
	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := int(math.Ceil((x+w)*c.scaleX)) - 1
	y1 := int(math.Ceil((y+h)*c.scaleY)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			c.setPixel(px, py, ink)
		}
	}
}

// StrokeRect outlines a rectangle given in logical coordinates.
func (c *Canvas) StrokeRect(x, y, w, h float64, ink Ink) {
	tl := Point{X: x, Y: y}
	tr := Point{X: x + w, Y: y}
	br := Point{X: x + w, Y: y + h}
	bl := Point{X: x, Y: y + h}
	c.DrawLine(tl, tr, ink)
	c.DrawLine(tr, br, ink)
	c.DrawLine(br, bl, ink)
	c.DrawLine(bl, tl, ink)
}

// Tint stipples empty pixels with the given ink. A terminal cannot blend,
// so a sparse dot pattern stands in for translucency.
func (c *Canvas) Tint(ink Ink) {
	for y := 1; y < c.subPixelHeight; y += 4 {
		shift := (y / 4 % 2) * 3
		for x := shift; x < c.termWidth; x += 6 {
			if c.pixels[y*c.termWidth+x] == InkNone {
				c.pixels[y*c.termWidth+x] = ink
			}
		}
	}
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, ink Ink) {
	x1 := clampInt(int(math.Floor(p1.X*c.scaleX)), 0, c.termWidth-1)
	y1 := clampInt(int(math.Floor(p1.Y*c.scaleY)), 0, c.subPixelHeight-1)
	x2 := clampInt(int(math.Floor(p2.X*c.scaleX)), 0, c.termWidth-1)
	y2 := clampInt(int(math.Floor(p2.Y*c.scaleY)), 0, c.subPixelHeight-1)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, ink)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render outputs the changed cells to the writer using half-block characters.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()

	lastSGR := ""
	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			cur := cell{top: c.pixels[topOffset+col], bottom: c.pixels[bottomOffset+col]}
			idx := row*c.termWidth + col
			if !c.forceRedraw && c.prev[idx] == cur {
				continue
			}
			c.prev[idx] = cur

			ch, params := cellGlyph(cur)
			c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			if params != lastSGR {
				c.renderBuf.WriteString("\033[")
				c.renderBuf.WriteString(params)
				c.renderBuf.WriteByte('m')
				lastSGR = params
			}
			c.renderBuf.WriteRune(ch)
		}
	}
	c.forceRedraw = false

	if lastSGR != "" && lastSGR != "0" {
		c.renderBuf.WriteString("\033[0m")
	}

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// cellGlyph picks the half-block character and SGR parameters for a cell.
func cellGlyph(c cell) (rune, string) {
	switch {
	case c.top == InkNone && c.bottom == InkNone:
		return BlockEmpty, "0"
	case c.top == c.bottom:
		return BlockFull, sgr(c.top, InkNone)
	case c.bottom == InkNone:
		return BlockUpperHalf, sgr(c.top, InkNone)
	case c.top == InkNone:
		return BlockLowerHalf, sgr(c.bottom, InkNone)
	default:
		return BlockUpperHalf, sgr(c.top, c.bottom)
	}
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// LogicalWidth returns the logical width (target resolution).
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height (target resolution).
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the canvas column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row).
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1 + c.offsetCol, py/2 + 1 + c.offsetRow
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
