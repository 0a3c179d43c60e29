package render

// Viewport is a clamped window over a larger board. Offsets always satisfy
// 0 <= offsetX <= boardWidth-width and 0 <= offsetY <= boardHeight-height.
type Viewport struct {
	offsetX     int
	offsetY     int
	width       int
	height      int
	boardWidth  int
	boardHeight int
}

// NewViewport returns a viewport at the board origin. A window larger than the
// board shrinks to the board.
func NewViewport(width, height, boardWidth, boardHeight int) *Viewport {
	boardWidth = max(boardWidth, 0)
	boardHeight = max(boardHeight, 0)
	v := &Viewport{
		width:       clampInt(width, 0, boardWidth),
		height:      clampInt(height, 0, boardHeight),
		boardWidth:  boardWidth,
		boardHeight: boardHeight,
	}
	return v
}

func (v *Viewport) OffsetX() int     { return v.offsetX }
func (v *Viewport) OffsetY() int     { return v.offsetY }
func (v *Viewport) Width() int       { return v.width }
func (v *Viewport) Height() int      { return v.height }
func (v *Viewport) BoardWidth() int  { return v.boardWidth }
func (v *Viewport) BoardHeight() int { return v.boardHeight }

// Pan moves the window by (dx, dy), clamping at the board edges.
func (v *Viewport) Pan(dx, dy int) {
	v.MoveTo(v.offsetX+dx, v.offsetY+dy)
}

// MoveTo places the window's top-left corner at (x, y), clamped.
func (v *Viewport) MoveTo(x, y int) {
	v.offsetX = clampInt(x, 0, v.boardWidth-v.width)
	v.offsetY = clampInt(y, 0, v.boardHeight-v.height)
}

// Center moves the window so that (x, y) is as close to its middle as the board allows.
func (v *Viewport) Center(x, y int) {
	v.MoveTo(x-v.width/2, y-v.height/2)
}

func (v *Viewport) IsAtTop() bool    { return v.offsetY == 0 }
func (v *Viewport) IsAtBottom() bool { return v.offsetY+v.height >= v.boardHeight }
func (v *Viewport) IsAtLeft() bool   { return v.offsetX == 0 }
func (v *Viewport) IsAtRight() bool  { return v.offsetX+v.width >= v.boardWidth }

// Edges reports which sides of the window touch the board boundary.
func (v *Viewport) Edges() Edges {
	return Edges{
		Top:    v.IsAtTop(),
		Bottom: v.IsAtBottom(),
		Left:   v.IsAtLeft(),
		Right:  v.IsAtRight(),
	}
}

// window resolves the iterated rectangle for a board of the given size. A nil
// viewport covers the whole board. The edge flags describe the clamped
// rectangle against boardWidth x boardHeight, which may differ from the board
// the viewport was built for.
func (v *Viewport) window(boardWidth, boardHeight int) (x0, y0, w, h int, edges Edges) {
	if v == nil {
		return 0, 0, boardWidth, boardHeight, AllEdges
	}
	x0 = clampInt(v.offsetX, 0, boardWidth)
	y0 = clampInt(v.offsetY, 0, boardHeight)
	w = clampInt(v.width, 0, boardWidth-x0)
	h = clampInt(v.height, 0, boardHeight-y0)
	edges = Edges{
		Top:    y0 == 0,
		Bottom: y0+h >= boardHeight,
		Left:   x0 == 0,
		Right:  x0+w >= boardWidth,
	}
	return x0, y0, w, h, edges
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
