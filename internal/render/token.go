package render

// TokenKind discriminates Token.
type TokenKind uint8

const (
	TokenChar TokenKind = iota + 1
	TokenForeground
	TokenBackground
	TokenReset
)

// Token is one unit of the render stream: a character or a color directive.
type Token struct {
	Kind  TokenKind
	Char  rune
	Color Color
}

func CharToken(r rune) Token        { return Token{Kind: TokenChar, Char: r} }
func ForegroundToken(c Color) Token { return Token{Kind: TokenForeground, Color: c} }
func BackgroundToken(c Color) Token { return Token{Kind: TokenBackground, Color: c} }
func ResetToken() Token             { return Token{Kind: TokenReset} }

// TokenSource is a single-pass token stream. Next returns false once the
// stream ends; Err then reports why, or nil at a normal end.
type TokenSource interface {
	Next() (Token, bool)
	Err() error
}

// GlyphSource is a single-pass glyph stream with the same contract as TokenSource.
type GlyphSource interface {
	Next() (Glyph, bool)
	Err() error
}

// noCopy trips go vet's copylocks check. Enumerators hold an iteration
// position; a copied enumerator forks that position and the two copies drift.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// tokenQueue holds the tokens produced by one phase step. Steps produce at
// most a background directive, a foreground directive and a character.
type tokenQueue struct {
	buf  [4]Token
	head int
	n    int
}

func (q *tokenQueue) push(t Token) {
	if q.n == len(q.buf) {
		panic("render: token queue overflow")
	}
	q.buf[(q.head+q.n)%len(q.buf)] = t
	q.n++
}

func (q *tokenQueue) pop() (Token, bool) {
	if q.n == 0 {
		return Token{}, false
	}
	t := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return t, true
}

func (q *tokenQueue) reset() {
	q.head = 0
	q.n = 0
}

// lazyColors emits color directives only when they change.
type lazyColors struct {
	fg Color
	bg Color
}

func (l *lazyColors) reset() {
	l.fg = ColorNone
	l.bg = ColorNone
}

// emit queues the directives needed to reach fg/bg followed by ch. ColorNone
// leaves that layer untouched.
func (l *lazyColors) emit(q *tokenQueue, fg, bg Color, ch rune) {
	l.directives(q, fg, bg)
	q.push(CharToken(ch))
}

func (l *lazyColors) directives(q *tokenQueue, fg, bg Color) {
	if fg != ColorNone && fg != l.fg {
		q.push(ForegroundToken(fg))
		l.fg = fg
	}
	if bg != ColorNone && bg != l.bg {
		q.push(BackgroundToken(bg))
		l.bg = bg
	}
}
