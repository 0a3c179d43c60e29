package render

// Edges records which sides of the rendered window coincide with the board
// boundary. A false side has more board beyond it.
type Edges struct {
	Top    bool
	Bottom bool
	Left   bool
	Right  bool
}

// AllEdges is the whole board: every side solid.
var AllEdges = Edges{Top: true, Bottom: true, Left: true, Right: true}

const (
	boxTopLeft     = '╔'
	boxTopRight    = '╗'
	boxBottomLeft  = '╚'
	boxBottomRight = '╝'
	boxHorizontal  = '═'
	boxVertical    = '║'

	arrowUp        = '↑'
	arrowDown      = '↓'
	arrowLeft      = '←'
	arrowRight     = '→'
	arrowUpLeft    = '↖'
	arrowUpRight   = '↗'
	arrowDownLeft  = '↙'
	arrowDownRight = '↘'
)

func corner(atEdge, atAdjacent bool, solid, edgeArrow, adjacentArrow, diagonal rune) rune {
	switch {
	case atEdge && atAdjacent:
		return solid
	case atAdjacent:
		return edgeArrow
	case atEdge:
		return adjacentArrow
	default:
		return diagonal
	}
}

// TopLeftCorner selects the top-left corner glyph.
func TopLeftCorner(atTop, atLeft bool) rune {
	return corner(atTop, atLeft, boxTopLeft, arrowUp, arrowLeft, arrowUpLeft)
}

// TopRightCorner selects the top-right corner glyph.
func TopRightCorner(atTop, atRight bool) rune {
	return corner(atTop, atRight, boxTopRight, arrowUp, arrowRight, arrowUpRight)
}

// BottomLeftCorner selects the bottom-left corner glyph.
func BottomLeftCorner(atBottom, atLeft bool) rune {
	return corner(atBottom, atLeft, boxBottomLeft, arrowDown, arrowLeft, arrowDownLeft)
}

// BottomRightCorner selects the bottom-right corner glyph.
func BottomRightCorner(atBottom, atRight bool) rune {
	return corner(atBottom, atRight, boxBottomRight, arrowDown, arrowRight, arrowDownRight)
}

// HorizontalEdge selects a top (top=true) or bottom edge glyph.
func HorizontalEdge(atEdge, top bool) rune {
	switch {
	case atEdge:
		return boxHorizontal
	case top:
		return arrowUp
	default:
		return arrowDown
	}
}

// VerticalEdge selects a left (left=true) or right edge glyph.
func VerticalEdge(atEdge, left bool) rune {
	switch {
	case atEdge:
		return boxVertical
	case left:
		return arrowLeft
	default:
		return arrowRight
	}
}

// borderPainter turns edge flags into border glyphs and colors. It is shared
// by every boxed geometry.
type borderPainter struct {
	edges Edges
	theme *Theme
}

func (b borderPainter) color(solid bool) Color {
	if solid {
		return b.theme.BorderFg
	}
	return b.theme.BorderScrollFg
}

// top returns the glyph at column k of a top border spanning width content
// columns (k = 0 and k = width+1 are the corners).
func (b borderPainter) top(k, width int) (rune, Color) {
	switch k {
	case 0:
		return TopLeftCorner(b.edges.Top, b.edges.Left), b.color(b.edges.Top && b.edges.Left)
	case width + 1:
		return TopRightCorner(b.edges.Top, b.edges.Right), b.color(b.edges.Top && b.edges.Right)
	default:
		return HorizontalEdge(b.edges.Top, true), b.color(b.edges.Top)
	}
}

func (b borderPainter) bottom(k, width int) (rune, Color) {
	switch k {
	case 0:
		return BottomLeftCorner(b.edges.Bottom, b.edges.Left), b.color(b.edges.Bottom && b.edges.Left)
	case width + 1:
		return BottomRightCorner(b.edges.Bottom, b.edges.Right), b.color(b.edges.Bottom && b.edges.Right)
	default:
		return HorizontalEdge(b.edges.Bottom, false), b.color(b.edges.Bottom)
	}
}

func (b borderPainter) left() (rune, Color) {
	return VerticalEdge(b.edges.Left, true), b.color(b.edges.Left)
}

func (b borderPainter) right() (rune, Color) {
	return VerticalEdge(b.edges.Right, false), b.color(b.edges.Right)
}
