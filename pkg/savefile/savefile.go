// Package savefile converts a live-cell set to and from its saved text form.
//
// The format is a set-of-pairs literal:
//
//	{(0, 0), (1, 0), (2, -1)}
//
// The empty set is written as set(); {} is accepted when reading. Pairs are
// written sorted by x, then y, so equal sets produce identical files.
package savefile

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"sparse-life/pkg/core"
)

// ErrMalformed reports save data that does not parse into coordinate pairs.
var ErrMalformed = errors.New("malformed save data")

// Empty is the text of an empty live-cell set.
const Empty = "set()"

// Encode renders cells in the saved text form.
func Encode(cells []core.Cell) []byte {
	if len(cells) == 0 {
		return []byte(Empty)
	}
	sorted := slices.Clone(cells)
	slices.SortFunc(sorted, core.Compare)
	sorted = slices.Compact(sorted)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range sorted {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteByte('(')
		buf.WriteString(strconv.Itoa(c.X))
		buf.WriteString(", ")
		buf.WriteString(strconv.Itoa(c.Y))
		buf.WriteByte(')')
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

// Decode parses saved text back into a sorted live-cell set. Errors wrap
// ErrMalformed.
func Decode(data []byte) ([]core.Cell, error) {
	p := &parser{lex: newLexer(data)}
	p.advance()
	cells, err := p.parseSet()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenEOF {
		return nil, p.errorf("unexpected %s after set", p.describe())
	}
	slices.SortFunc(cells, core.Compare)
	return slices.Compact(cells), nil
}

type parser struct {
	lex *lexer
	tok token
}

func (p *parser) advance() { p.tok = p.lex.next() }

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", ErrMalformed, p.tok.pos, fmt.Sprintf(format, args...))
}

func (p *parser) describe() string {
	if p.tok.kind == tokenEOF {
		return p.tok.kind.String()
	}
	return strconv.Quote(p.tok.text)
}

func (p *parser) expect(kind tokenKind) error {
	if p.tok.kind != kind {
		return p.errorf("expected %s, found %s", kind, p.describe())
	}
	p.advance()
	return nil
}

func (p *parser) parseSet() ([]core.Cell, error) {
	switch p.tok.kind {
	case tokenIdent:
		if p.tok.text != "set" {
			return nil, p.errorf("unexpected %s", p.describe())
		}
		p.advance()
		if err := p.expect(tokenLParen); err != nil {
			return nil, err
		}
		if err := p.expect(tokenRParen); err != nil {
			return nil, err
		}
		return nil, nil
	case tokenLBrace:
		p.advance()
	default:
		return nil, p.errorf("expected '{' or set(), found %s", p.describe())
	}

	var cells []core.Cell
	if p.tok.kind == tokenRBrace {
		p.advance()
		return cells, nil
	}
	for {
		c, err := p.parsePair()
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
		switch p.tok.kind {
		case tokenComma:
			p.advance()
		case tokenRBrace:
			p.advance()
			return cells, nil
		default:
			return nil, p.errorf("expected ',' or '}', found %s", p.describe())
		}
	}
}

func (p *parser) parsePair() (core.Cell, error) {
	if err := p.expect(tokenLParen); err != nil {
		return core.Cell{}, err
	}
	x, err := p.parseInt()
	if err != nil {
		return core.Cell{}, err
	}
	if err := p.expect(tokenComma); err != nil {
		return core.Cell{}, err
	}
	y, err := p.parseInt()
	if err != nil {
		return core.Cell{}, err
	}
	if err := p.expect(tokenRParen); err != nil {
		return core.Cell{}, err
	}
	return core.Cell{X: x, Y: y}, nil
}

func (p *parser) parseInt() (int, error) {
	if p.tok.kind != tokenInt {
		return 0, p.errorf("expected integer, found %s", p.describe())
	}
	v, err := strconv.Atoi(p.tok.text)
	if err != nil {
		return 0, p.errorf("bad integer %q", p.tok.text)
	}
	p.advance()
	return v, nil
}
