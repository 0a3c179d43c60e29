package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/yitzhaks/gameoflife/internal/life"
)

func blinkerBoard(t *testing.T) (*life.Rect, *life.Generation) {
	t.Helper()
	topo := life.NewRect(5, 5, false)
	gen := life.NewGeneration(topo)
	for x := 1; x <= 3; x++ {
		gen.Set(life.Point{X: x, Y: 2}, life.Alive)
	}
	return topo, gen
}

func hashTheme() Theme {
	theme := DefaultTheme()
	theme.AliveChar = '#'
	theme.DeadChar = '.'
	return theme
}

// collect drains src and returns the glyphs plus the re-encoded text.
func collect(t *testing.T, src GlyphSource) ([]Glyph, string) {
	t.Helper()
	var glyphs []Glyph
	var b strings.Builder
	for {
		g, ok := src.Next()
		if !ok {
			break
		}
		glyphs = append(glyphs, g)
		b.WriteRune(g.Char)
	}
	if err := src.Err(); err != nil {
		t.Fatalf("glyph stream: %v", err)
	}
	return glyphs, b.String()
}

func TestBlinkerStillFrame(t *testing.T) {
	topo, gen := blinkerBoard(t)
	r := NewRenderer(GeometryCells, hashTheme())
	_, text := collect(t, r.Glyphs(topo, gen, nil))
	want := strings.Join([]string{
		"╔═════╗",
		"║.....║",
		"║.....║",
		"║.###.║",
		"║.....║",
		"║.....║",
		"╚═════╝",
	}, "\n") + "\n"
	if text != want {
		t.Fatalf("frame =\n%s\nwant\n%s", text, want)
	}
}

func TestCellTokensEmitColorsLazily(t *testing.T) {
	topo, gen := blinkerBoard(t)
	theme := hashTheme()
	theme.Border = false
	src := NewCellTokens(topo, gen, &theme, nil)
	var fg, bg int
	for {
		tok, ok := src.Next()
		if !ok {
			break
		}
		switch tok.Kind {
		case TokenForeground:
			fg++
		case TokenBackground:
			bg++
		}
	}
	// dead -> alive -> dead on the blinker row; every other cell reuses the
	// previous directive.
	if fg != 3 {
		t.Fatalf("foreground directives = %d, want 3", fg)
	}
	if bg != 1 {
		t.Fatalf("background directives = %d, want 1", bg)
	}
}

func TestTokenStreamStartsWithReset(t *testing.T) {
	topo, gen := blinkerBoard(t)
	theme := hashTheme()
	tok, ok := NewCellTokens(topo, gen, &theme, nil).Next()
	if !ok || tok.Kind != TokenReset {
		t.Fatalf("first token = %+v, want reset", tok)
	}
}

func TestHalfBlockPacking(t *testing.T) {
	topo := life.NewRect(1, 2, false)
	gen := life.NewGeneration(topo)
	gen.Set(life.Point{X: 0, Y: 0}, life.Alive)
	theme := DefaultTheme()
	theme.Border = false
	theme.DeadBg = ColorBlack
	r := NewRenderer(GeometryHalfBlock, theme)
	glyphs, _ := collect(t, r.Glyphs(topo, gen, nil))
	if len(glyphs) != 2 {
		t.Fatalf("glyphs = %d, want 2", len(glyphs))
	}
	want := Glyph{Fg: theme.AliveFg, Bg: theme.DeadBg, Char: '▀'}
	if glyphs[0] != want {
		t.Fatalf("glyph = %+v, want %+v", glyphs[0], want)
	}
	if !glyphs[1].IsNewline() {
		t.Fatalf("second glyph = %+v, want newline", glyphs[1])
	}
}

func TestHalfBlockCharacters(t *testing.T) {
	topo := life.NewRect(4, 2, false)
	gen := life.NewGeneration(topo)
	gen.Set(life.Point{X: 0, Y: 0}, life.Alive)
	gen.Set(life.Point{X: 0, Y: 1}, life.Alive)
	gen.Set(life.Point{X: 1, Y: 0}, life.Alive)
	gen.Set(life.Point{X: 2, Y: 1}, life.Alive)
	theme := DefaultTheme()
	theme.Border = false
	r := NewRenderer(GeometryHalfBlock, theme)
	glyphs, text := collect(t, r.Glyphs(topo, gen, nil))
	if text != "█▀▄ \n" {
		t.Fatalf("text = %q", text)
	}
	lower := glyphs[2]
	if lower.Fg != theme.AliveFg || lower.Bg != theme.DeadBg {
		t.Fatalf("lower half colors = %v/%v, want %v/%v", lower.Fg, lower.Bg, theme.AliveFg, theme.DeadBg)
	}
}

func TestHalfBlockOddHeight(t *testing.T) {
	topo := life.NewRect(2, 3, false)
	gen := life.NewGeneration(topo)
	gen.Set(life.Point{X: 0, Y: 2}, life.Alive)
	theme := hashTheme()
	r := NewRenderer(GeometryHalfBlock, theme)
	_, text := collect(t, r.Glyphs(topo, gen, nil))
	want := "╔══╗\n║  ║\n║▀ ║\n╚══╝\n"
	if text != want {
		t.Fatalf("text = %q, want %q", text, want)
	}
}

func TestOutsideTopologyHole(t *testing.T) {
	topo := life.NewMasked(life.NewRect(3, 1, false), life.Point{X: 1, Y: 0})
	gen := life.NewGeneration(topo)
	gen.Set(life.Point{X: 1, Y: 0}, life.Alive)
	theme := hashTheme()
	theme.Border = false
	r := NewRenderer(GeometryCells, theme)
	glyphs, text := collect(t, r.Glyphs(topo, gen, nil))
	if text != ". .\n" {
		t.Fatalf("text = %q", text)
	}
	want := Glyph{Fg: theme.OutsideFg, Bg: theme.OutsideBg, Char: ' '}
	if glyphs[1] != want {
		t.Fatalf("hole glyph = %+v, want %+v", glyphs[1], want)
	}
}

func TestMissingStateIsAnError(t *testing.T) {
	topo := life.NewRect(3, 3, false)
	sparse := life.Sparse{{X: 1, Y: 1}: life.Alive}
	r := NewRenderer(GeometryCells, hashTheme())

	var out bytes.Buffer
	err := r.Frame(&out, topo, sparse, nil, 1)
	if !errors.Is(err, ErrMissingState) {
		t.Fatalf("Frame error = %v, want ErrMissingState", err)
	}
	if !strings.Contains(err.Error(), "(0,0)") {
		t.Fatalf("error %q should name the coordinate", err)
	}

	if err := r.Frame(&out, topo, life.WithDefault(sparse, life.Dead), nil, 1); err != nil {
		t.Fatalf("Frame with default: %v", err)
	}
}

func TestHexLayout(t *testing.T) {
	topo := life.NewHex(1)
	gen := life.NewGeneration(topo)
	gen.Set(life.Point{X: 0, Y: 0}, life.Alive)
	r := NewRenderer(GeometryHex, hashTheme())
	glyphs, text := collect(t, r.Glyphs(topo, gen, nil))
	want := " . .\n. # .\n . .\n"
	if text != want {
		t.Fatalf("text = %q, want %q", text, want)
	}
	if len(glyphs) > HexCapacity(1) {
		t.Fatalf("hex frame %d glyphs exceeds capacity %d", len(glyphs), HexCapacity(1))
	}
	for i, g := range glyphs {
		if !g.IsNewline() && g.Fg == ColorNone {
			t.Fatalf("glyph %d %q has no foreground", i, g.Char)
		}
	}
}

func TestGlyphRoundTrip(t *testing.T) {
	for _, border := range []bool{true, false} {
		for seed := uint64(1); seed <= 5; seed++ {
			topo := life.NewRect(9, 6, true)
			gen := life.NewGeneration(topo)
			life.Randomize(gen, 0.4, seed)
			theme := hashTheme()
			theme.Border = border
			r := NewRenderer(GeometryCells, theme)
			_, text := collect(t, r.Glyphs(topo, gen, nil))

			lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
			rows, cols := 6, 9
			if border {
				rows, cols = 8, 11
			}
			if len(lines) != rows {
				t.Fatalf("border=%v seed=%d: %d rows, want %d", border, seed, len(lines), rows)
			}
			for y, line := range lines {
				if n := len([]rune(line)); n != cols {
					t.Fatalf("row %d has %d chars, want %d", y, n, cols)
				}
			}
			off := 0
			if border {
				off = 1
			}
			for y := 0; y < 6; y++ {
				row := []rune(lines[y+off])
				for x := 0; x < 9; x++ {
					s, _ := gen.StateAt(life.Point{X: x, Y: y})
					want := theme.DeadChar
					if s == life.Alive {
						want = theme.AliveChar
					}
					if row[x+off] != want {
						t.Fatalf("cell (%d,%d) = %q, want %q", x, y, row[x+off], want)
					}
				}
			}
		}
	}
}

func TestNormalizedGlyphsCarryEffectiveColor(t *testing.T) {
	topo := life.NewRect(7, 4, false)
	gen := life.NewGeneration(topo)
	life.Randomize(gen, 0.5, 3)
	for _, geometry := range []Geometry{GeometryCells, GeometryHalfBlock} {
		r := NewRenderer(geometry, DefaultTheme())
		glyphs, _ := collect(t, r.Glyphs(topo, gen, nil))
		for i, g := range glyphs {
			if g.IsNewline() {
				if g != NewlineGlyph {
					t.Fatalf("%s: newline %d carries color %+v", geometry, i, g)
				}
				continue
			}
			if g.Fg == ColorNone || g.Bg == ColorNone {
				t.Fatalf("%s: glyph %d %q missing color %+v", geometry, i, g.Char, g)
			}
		}
	}
}

type fixedGlyphs struct {
	glyphs []Glyph
}

func (f *fixedGlyphs) Next() (Glyph, bool) {
	if len(f.glyphs) == 0 {
		return Glyph{}, false
	}
	g := f.glyphs[0]
	f.glyphs = f.glyphs[1:]
	return g, true
}

func (f *fixedGlyphs) Err() error { return nil }

func TestNormalizerRejectsUnknownColor(t *testing.T) {
	n := NewNormalizedGlyphs(&fixedGlyphs{glyphs: []Glyph{
		{Fg: ColorGreen, Bg: ColorDefault, Char: 'a'},
		{Fg: Color(200), Char: 'b'},
	}})
	if _, ok := n.Next(); !ok {
		t.Fatalf("expected first glyph")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on unknown color")
		}
	}()
	n.Next()
}

func TestNormalizerRestampsCurrentColor(t *testing.T) {
	n := NewNormalizedGlyphs(&fixedGlyphs{glyphs: []Glyph{
		{Fg: ColorGreen, Bg: ColorBlack, Char: 'a'},
		{Char: 'b'},
		NewlineGlyph,
		{Bg: ColorRed, Char: 'c'},
	}})
	want := []Glyph{
		{Fg: ColorGreen, Bg: ColorBlack, Char: 'a'},
		{Fg: ColorGreen, Bg: ColorBlack, Char: 'b'},
		NewlineGlyph,
		{Fg: ColorGreen, Bg: ColorRed, Char: 'c'},
	}
	for i, w := range want {
		g, ok := n.Next()
		if !ok || g != w {
			t.Fatalf("glyph %d = %+v, want %+v", i, g, w)
		}
	}
}

func TestGlyphsFoldResetClearsColors(t *testing.T) {
	src := &fixedTokens{tokens: []Token{
		ForegroundToken(ColorRed),
		CharToken('a'),
		ResetToken(),
		CharToken('b'),
		BackgroundToken(ColorBlue),
		CharToken('\n'),
	}}
	g := NewGlyphs(src)
	want := []Glyph{
		{Fg: ColorRed, Char: 'a'},
		{Fg: ColorDefault, Bg: ColorDefault, Char: 'b'},
		NewlineGlyph,
	}
	for i, w := range want {
		got, ok := g.Next()
		if !ok || got != w {
			t.Fatalf("glyph %d = %+v, want %+v", i, got, w)
		}
	}
	if _, ok := g.Next(); ok {
		t.Fatalf("expected end of stream")
	}
}

func TestNormalizerFollowsMidStreamReset(t *testing.T) {
	n := NewNormalizedGlyphs(NewGlyphs(&fixedTokens{tokens: []Token{
		ForegroundToken(ColorRed),
		BackgroundToken(ColorBlue),
		CharToken('a'),
		ResetToken(),
		CharToken('b'),
		ForegroundToken(ColorGreen),
		CharToken('c'),
	}}))
	want := []Glyph{
		{Fg: ColorRed, Bg: ColorBlue, Char: 'a'},
		{Fg: ColorDefault, Bg: ColorDefault, Char: 'b'},
		{Fg: ColorGreen, Bg: ColorDefault, Char: 'c'},
	}
	for i, w := range want {
		g, ok := n.Next()
		if !ok || g != w {
			t.Fatalf("glyph %d = %+v, want %+v", i, g, w)
		}
	}
}

type fixedTokens struct {
	tokens []Token
}

func (f *fixedTokens) Next() (Token, bool) {
	if len(f.tokens) == 0 {
		return Token{}, false
	}
	tok := f.tokens[0]
	f.tokens = f.tokens[1:]
	return tok, true
}

func (f *fixedTokens) Err() error { return nil }

func TestFrameBufferPanicsPastCapacity(t *testing.T) {
	fb := NewFrameBuffer(1)
	fb.Append(Glyph{Char: 'a'})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected capacity panic")
		}
	}()
	fb.Append(Glyph{Char: 'b'})
}

func TestFrameBufferClearKeepsStorage(t *testing.T) {
	fb := NewFrameBuffer(4)
	fb.Append(Glyph{Char: 'a'})
	fb.Append(NewlineGlyph)
	if fb.String() != "a\n" {
		t.Fatalf("String = %q", fb.String())
	}
	fb.Clear()
	if fb.Len() != 0 || fb.Cap() != 4 {
		t.Fatalf("after Clear len=%d cap=%d", fb.Len(), fb.Cap())
	}
}

func TestCapacityExactFit(t *testing.T) {
	topo := life.NewRect(40, 30, true)
	gen := life.NewGeneration(topo)
	life.Randomize(gen, 0.3, 11)
	engine := life.NewEngine(topo, life.Conway, gen)

	for _, size := range [][2]int{{1, 1}, {5, 3}, {12, 9}, {40, 30}} {
		vp := NewViewport(size[0], size[1], 40, 30)
		r := NewRenderer(GeometryCells, DefaultTheme())
		for i := 0; i < 6; i++ {
			var out bytes.Buffer
			if err := r.Frame(&out, topo, engine.Generation(), vp, 2); err != nil {
				t.Fatalf("frame %d: %v", i, err)
			}
			captured := r.frames[r.cur]
			if captured.Len() != FrameCapacity(size[0], size[1]) {
				t.Fatalf("%dx%d frame holds %d glyphs, want exactly %d", size[0], size[1], captured.Len(), FrameCapacity(size[0], size[1]))
			}
			if captured.Cap() != FrameCapacity(size[0], size[1]) {
				t.Fatalf("buffer capacity %d, want %d", captured.Cap(), FrameCapacity(size[0], size[1]))
			}
			engine.Step()
			vp.Pan(3, 2)
		}
	}
}

func TestHalfBlockCapacityFits(t *testing.T) {
	topo := life.NewRect(9, 7, false)
	gen := life.NewGeneration(topo)
	r := NewRenderer(GeometryHalfBlock, DefaultTheme())
	var out bytes.Buffer
	if err := r.Frame(&out, topo, gen, nil, 1); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if got, want := r.frames[r.cur].Len(), HalfBlockCapacity(9, 7); got != want {
		t.Fatalf("half-block frame holds %d glyphs, want %d", got, want)
	}
}

func TestRenderWritesPlainLines(t *testing.T) {
	topo, gen := blinkerBoard(t)
	var out bytes.Buffer
	if err := Render(&out, GeometryCells, topo, gen, hashTheme()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	plain := stripSGR(out.String())
	if !strings.Contains(plain, "║.###.║\n") {
		t.Fatalf("render output missing blinker row:\n%s", plain)
	}
	if strings.Count(plain, "\n") != 7 {
		t.Fatalf("render output has %d lines, want 7", strings.Count(plain, "\n"))
	}
}

func TestRenderRejectsWideThemeGlyph(t *testing.T) {
	topo, gen := blinkerBoard(t)
	theme := hashTheme()
	theme.AliveChar = '漢'
	if err := Render(&bytes.Buffer{}, GeometryCells, topo, gen, theme); err == nil {
		t.Fatalf("expected theme validation error")
	}
}

func TestParseColorAndGeometry(t *testing.T) {
	for name, want := range map[string]Color{
		"green":     ColorGreen,
		"Dark-Gray": ColorDarkGray,
		"darkgray":  ColorDarkGray,
		"dark_red":  ColorDarkRed,
		"default":   ColorDefault,
	} {
		got, err := ParseColor(name)
		if err != nil || got != want {
			t.Fatalf("ParseColor(%q) = %v, %v, want %v", name, got, err, want)
		}
	}
	if _, err := ParseColor("none"); err == nil {
		t.Fatalf("ParseColor(none) should fail")
	}
	if _, err := ParseColor("mauve"); err == nil {
		t.Fatalf("ParseColor(mauve) should fail")
	}
	for name, want := range map[string]Geometry{
		"cells":      GeometryCells,
		"half-block": GeometryHalfBlock,
		"HEX":        GeometryHex,
	} {
		got, err := ParseGeometry(name)
		if err != nil || got != want {
			t.Fatalf("ParseGeometry(%q) = %v, %v, want %v", name, got, err, want)
		}
	}
}

func TestColorCodes(t *testing.T) {
	cases := []struct {
		c      Color
		fg, bg int
	}{
		{ColorDefault, 39, 49},
		{ColorBlack, 30, 40},
		{ColorGray, 37, 47},
		{ColorDarkGray, 90, 100},
		{ColorWhite, 97, 107},
	}
	for _, tc := range cases {
		if tc.c.FgCode() != tc.fg || tc.c.BgCode() != tc.bg {
			t.Fatalf("%s codes = %d/%d, want %d/%d", tc.c, tc.c.FgCode(), tc.c.BgCode(), tc.fg, tc.bg)
		}
	}
}

func TestMoveToWritesCursorPosition(t *testing.T) {
	var out bytes.Buffer
	if err := MoveTo(&out, 12, 345); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	if out.String() != "\x1b[12;345H" {
		t.Fatalf("MoveTo wrote %q", out.String())
	}
}

// stripSGR removes color sequences from s.
func stripSGR(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func TestHexTokensPanicOnBorderPhase(t *testing.T) {
	topo := life.NewHex(1)
	theme := DefaultTheme()
	h := NewHexTokens(topo, life.NewGeneration(topo), &theme, 1)
	h.phase = phaseTopBorder
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on a phase hex rows never use")
		}
	}()
	h.Next()
}

func TestGeometryMismatchIsAnError(t *testing.T) {
	theme := hashTheme()
	rect := life.NewRect(5, 5, false)
	hex := life.NewHex(2)

	var out bytes.Buffer
	if err := Render(&out, GeometryHex, rect, life.NewGeneration(rect), theme); !errors.Is(err, ErrGeometryMismatch) {
		t.Fatalf("Render(hex geometry, rect) = %v, want ErrGeometryMismatch", err)
	}
	if out.Len() != 0 {
		t.Fatalf("mismatched render wrote %q", out.String())
	}

	r := NewRenderer(GeometryCells, theme)
	if err := r.Frame(&out, hex, life.NewGeneration(hex), nil, 1); !errors.Is(err, ErrGeometryMismatch) {
		t.Fatalf("Frame(cells geometry, hex) = %v, want ErrGeometryMismatch", err)
	}
	src := r.Glyphs(hex, life.NewGeneration(hex), nil)
	if _, ok := src.Next(); ok || !errors.Is(src.Err(), ErrGeometryMismatch) {
		t.Fatalf("Glyphs on a mismatched topology should be empty with ErrGeometryMismatch, got %v", src.Err())
	}

	masked := life.NewMasked(hex, life.Point{X: 0, Y: 0})
	if !Hexagonal(masked) || GeometryHex.Fits(masked) != nil {
		t.Fatalf("masked hex should stay hexagonal")
	}
	if Hexagonal(rect) || GeometryHalfBlock.Fits(rect) != nil {
		t.Fatalf("rect should fit boxed geometries")
	}
}
