package emu

const (
	stateGround = iota
	stateEscape
	stateCSI
	stateOSC
)

type parserState struct {
	state int

	private   bool
	params    []int
	paramSeen bool
	current   int
	hasParam  bool

	oscEsc bool

	utf8Buf []byte
}

func (p *parserState) resetCSI() {
	p.private = false
	p.params = p.params[:0]
	p.paramSeen = false
	p.current = 0
	p.hasParam = false
}

func (p *parserState) addDigit(d int) {
	p.paramSeen = true
	if !p.hasParam {
		p.current = 0
		p.hasParam = true
	}
	p.current = p.current*10 + d
}

func (p *parserState) nextParam() {
	if p.hasParam {
		p.params = append(p.params, p.current)
	} else {
		p.params = append(p.params, -1)
	}
	p.hasParam = false
	p.current = 0
}

// finalizeParams closes the parameter list. The returned slice aliases the
// parser's storage and is valid until the next sequence.
func (p *parserState) finalizeParams() []int {
	if p.hasParam {
		p.params = append(p.params, p.current)
	} else if len(p.params) == 0 {
		p.params = append(p.params, -1)
	}
	p.hasParam = false
	p.current = 0
	return p.params
}

func param(params []int, idx, def int) int {
	if idx >= len(params) || params[idx] <= 0 {
		return def
	}
	return params[idx]
}
