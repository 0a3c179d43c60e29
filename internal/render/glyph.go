package render

// Glyph is one self-describing screen cell. Glyphs compare with ==; two glyphs
// are equal iff foreground, background and character all match.
type Glyph struct {
	Fg   Color
	Bg   Color
	Char rune
}

// NewlineGlyph terminates a row. It carries no color.
var NewlineGlyph = Glyph{Char: '\n'}

// IsNewline reports whether g is a row terminator.
func (g Glyph) IsNewline() bool {
	return g.Char == '\n'
}

// Glyphs folds a token stream into glyphs, stamping each character with the
// most recent foreground and background directives. A reset stamps
// ColorDefault on both layers, which is what the terminal shows after SGR 0.
type Glyphs struct {
	_ noCopy

	src TokenSource
	fg  Color
	bg  Color
}

// NewGlyphs wraps src.
func NewGlyphs(src TokenSource) *Glyphs {
	g := &Glyphs{}
	g.Reset(src)
	return g
}

// Reset re-arms the fold over a new token stream.
func (g *Glyphs) Reset(src TokenSource) {
	g.src = src
	g.fg = ColorNone
	g.bg = ColorNone
}

func (g *Glyphs) Next() (Glyph, bool) {
	for {
		tok, ok := g.src.Next()
		if !ok {
			return Glyph{}, false
		}
		switch tok.Kind {
		case TokenForeground:
			g.fg = tok.Color
		case TokenBackground:
			g.bg = tok.Color
		case TokenReset:
			g.fg = ColorDefault
			g.bg = ColorDefault
		case TokenChar:
			if tok.Char == '\n' {
				return NewlineGlyph, true
			}
			return Glyph{Fg: g.fg, Bg: g.bg, Char: tok.Char}, true
		default:
			panic("render: unknown token kind")
		}
	}
}

func (g *Glyphs) Err() error {
	return g.src.Err()
}

// NormalizedGlyphs re-stamps every glyph with its effective color and rejects
// any color outside the known palette. Downstream equality is only trustworthy
// on its output.
type NormalizedGlyphs struct {
	_ noCopy

	src GlyphSource
	fg  Color
	bg  Color
}

// NewNormalizedGlyphs wraps src.
func NewNormalizedGlyphs(src GlyphSource) *NormalizedGlyphs {
	n := &NormalizedGlyphs{}
	n.Reset(src)
	return n
}

// Reset re-arms the normalizer over a new glyph stream.
func (n *NormalizedGlyphs) Reset(src GlyphSource) {
	n.src = src
	n.fg = ColorNone
	n.bg = ColorNone
}

func (n *NormalizedGlyphs) Next() (Glyph, bool) {
	g, ok := n.src.Next()
	if !ok {
		return Glyph{}, false
	}
	if g.IsNewline() {
		return NewlineGlyph, true
	}
	if g.Fg != ColorNone {
		mustKnow(g.Fg)
		n.fg = g.Fg
	}
	if g.Bg != ColorNone {
		mustKnow(g.Bg)
		n.bg = g.Bg
	}
	g.Fg = n.fg
	g.Bg = n.bg
	return g, true
}

func (n *NormalizedGlyphs) Err() error {
	return n.src.Err()
}
