package notation

import (
	"strconv"

	"github.com/nickmafra/sym-balls/internal/domain"
)

// Parser turns cycle notation into cycles over positions [0, Length).
// A zero Length disables the range check.
type Parser struct {
	Length int
}

func NewParser(length int) *Parser { return &Parser{Length: length} }

// Parse reads every group of text in order. Position order inside a group is
// kept as written since it encodes the rotation direction.
func (p *Parser) Parse(text string) ([]domain.Cycle, error) {
	s := scanner{text: text}
	cycles := []domain.Cycle{}
	for {
		s.skipSpace()
		if s.done() {
			return cycles, nil
		}
		switch c := s.peek(); c {
		case '(':
			cyc, err := p.group(&s)
			if err != nil {
				return nil, err
			}
			cycles = append(cycles, cyc)
		case ')':
			return nil, s.fail(s.pos, s.pos+1, "unbalanced ')'")
		default:
			return nil, s.fail(s.pos, s.tokenEnd(s.pos), "expected '('")
		}
	}
}

// group reads one "( … )" starting at the opening parenthesis.
func (p *Parser) group(s *scanner) (domain.Cycle, error) {
	open := s.pos
	s.pos++
	cyc := domain.Cycle{}
	s.skipSpace()
	if !s.done() && s.peek() == ')' {
		s.pos++
		return cyc, nil
	}
	for {
		if s.done() {
			return nil, s.fail(open, len(s.text), "unbalanced '('")
		}
		if s.peek() == '(' {
			return nil, s.fail(s.pos, s.pos+1, "nested '('")
		}
		n, err := p.index(s)
		if err != nil {
			return nil, err
		}
		cyc = append(cyc, n)

		s.skipSpace()
		if s.done() {
			return nil, s.fail(open, len(s.text), "unbalanced '('")
		}
		switch c := s.peek(); {
		case c == ')':
			s.pos++
			return cyc, nil
		case c == ',':
			s.pos++
			s.skipSpace()
			if s.done() {
				return nil, s.fail(open, len(s.text), "unbalanced '('")
			}
			if !isDigit(s.peek()) {
				return nil, s.fail(s.pos, s.tokenEnd(s.pos), "expected index after ','")
			}
		case c == '(':
			return nil, s.fail(s.pos, s.pos+1, "nested '('")
		case isDigit(c):
			// space separated index
		default:
			return nil, s.fail(s.pos, s.tokenEnd(s.pos), "unexpected character")
		}
	}
}

func (p *Parser) index(s *scanner) (int, error) {
	start := s.pos
	for !s.done() && isDigit(s.peek()) {
		s.pos++
	}
	if s.pos == start || (!s.done() && !isDelim(s.peek())) {
		return 0, s.fail(start, s.tokenEnd(start), "not a non-negative integer")
	}
	n, err := strconv.Atoi(s.text[start:s.pos])
	if err != nil {
		return 0, s.fail(start, s.pos, "index too large")
	}
	if p.Length > 0 && n >= p.Length {
		return 0, s.fail(start, s.pos, "index out of range [0,"+strconv.Itoa(p.Length)+")")
	}
	return n, nil
}

type scanner struct {
	text string
	pos  int
}

func (s *scanner) done() bool { return s.pos >= len(s.text) }
func (s *scanner) peek() byte { return s.text[s.pos] }

func (s *scanner) skipSpace() {
	for !s.done() && isSpace(s.peek()) {
		s.pos++
	}
}

// tokenEnd returns the end of the run starting at i that contains no delimiter.
func (s *scanner) tokenEnd(i int) int {
	j := i
	for j < len(s.text) && !isDelim(s.text[j]) {
		j++
	}
	if j == i && j < len(s.text) {
		j++
	}
	return j
}

func (s *scanner) fail(from, to int, reason string) *ParseError {
	return &ParseError{Text: s.text, Offending: s.text[from:to], Offset: from, Reason: reason}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
func isDelim(c byte) bool { return isSpace(c) || c == ',' || c == '(' || c == ')' }
