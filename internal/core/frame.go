package core

// Drawable is implemented by every entity the render adapter can draw.
type Drawable interface {
	// ID identifies the entity, e.g. "snake" or "food".
	ID() string
	// Positions lists the occupied cells. For the snake the head comes first.
	Positions() []Point
	// Color is the uniform color of all occupied cells.
	Color() Color
	// Glyph returns the rune used for the i-th position in text renderings.
	Glyph(i int) rune
}

// FrameCell is one occupied grid cell of a frame.
type FrameCell struct {
	Pos   Point
	Color Color
	Glyph rune
}

// Frame is the per-tick drawable state handed to the render adapter.
// The renderer clears the board to Background before drawing Cells.
type Frame struct {
	Width      int // Board width in cells
	Height     int // Board height in cells
	CellSize   int // Cell size in pixels
	Background Color
	Cells      []FrameCell
}

// NewFrame builds a frame from drawables, in the given order.
func NewFrame(w, h, cellSize int, bg Color, items ...Drawable) Frame {
	f := Frame{
		Width:      w,
		Height:     h,
		CellSize:   cellSize,
		Background: bg,
	}
	for _, d := range items {
		f.Add(d)
	}
	return f
}

// Add appends every position of d to the frame.
func (f *Frame) Add(d Drawable) {
	color := d.Color()
	for i, p := range d.Positions() {
		f.Cells = append(f.Cells, FrameCell{Pos: p, Color: color, Glyph: d.Glyph(i)})
	}
}

// At returns the last cell drawn at p, if any.
func (f Frame) At(p Point) (FrameCell, bool) {
	for i := len(f.Cells) - 1; i >= 0; i-- {
		if f.Cells[i].Pos == p {
			return f.Cells[i], true
		}
	}
	return FrameCell{}, false
}

// PixelRect returns the pixel-space rectangle covered by cell p.
func (f Frame) PixelRect(p Point) Rect {
	return NewRect(p.X*f.CellSize, p.Y*f.CellSize, f.CellSize, f.CellSize)
}
