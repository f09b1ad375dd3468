package lexer

// The RuneSupplier gives us something simpler than a lexer, which we can use inside the
// lexer and also to decode string literals after the fact.
type RuneSupplier struct {
	code      []rune
	pos       int
	lineNo    int
	lineStart int
}

func NewRuneSupplier(code []rune) *RuneSupplier {
	return &RuneSupplier{code: code, lineNo: 1}
}

func (rs *RuneSupplier) CurrentRune() rune {
	if rs.pos < len(rs.code) {
		return rs.code[rs.pos]
	}
	return 0
}

func (rs *RuneSupplier) PeekRune() rune {
	if rs.pos+1 < len(rs.code) {
		return rs.code[rs.pos+1]
	}
	return 0
}

func (rs *RuneSupplier) AtEnd() bool {
	return rs.pos >= len(rs.code)
}

func (rs *RuneSupplier) Next() {
	if rs.pos >= len(rs.code) {
		return
	}
	if rs.code[rs.pos] == '\n' {
		rs.lineNo++
		rs.lineStart = rs.pos + 1
	}
	rs.pos++
}

// Returns the line number and the character position within the line.
func (rs *RuneSupplier) Position() (int, int) {
	return rs.lineNo, rs.pos - rs.lineStart
}

// The source text between two offsets, clipped to the length of the code.
func (rs *RuneSupplier) Slice(start, end int) string {
	end = min(end, len(rs.code))
	if start >= end {
		return ""
	}
	return string(rs.code[start:end])
}
