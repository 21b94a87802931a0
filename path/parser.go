package path

import (
	"fmt"
	"strconv"
)

// Parse reads the text of a `d` attribute into path data. Command letters
// may be upper case (absolute) or lower case (relative); parameters are
// separated by whitespace, commas, or a leading sign.
func Parse(s string) (Data, error) {
	p := &parser{input: s}
	return p.parse()
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parse() (Data, error) {
	data := New()
	for {
		p.skipSeparators()
		if p.pos >= len(p.input) {
			return data, nil
		}

		ch := p.input[p.pos]
		symbol, position, ok := classify(ch)
		if !ok {
			return nil, fmt.Errorf("svg/path: unexpected character %q at offset %d", ch, p.pos)
		}
		p.pos++

		var parameters []float64
		if symbol != ClosePath {
			var err error
			parameters, err = p.readParameters()
			if err != nil {
				return nil, err
			}
		}
		data = append(data, Command{Symbol: symbol, Position: position, Parameters: parameters})
	}
}

func (p *parser) readParameters() ([]float64, error) {
	var parameters []float64
	for {
		p.skipSeparators()
		if p.pos >= len(p.input) || !startsNumber(p.input[p.pos]) {
			return parameters, nil
		}
		value, err := p.readNumber()
		if err != nil {
			return nil, err
		}
		parameters = append(parameters, value)
	}
}

func (p *parser) readNumber() (float64, error) {
	start := p.pos
	if p.input[p.pos] == '+' || p.input[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
		p.pos++
	}
	if p.pos < len(p.input) && p.input[p.pos] == '.' {
		p.pos++
		for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
			p.pos++
		}
	}
	if p.pos < len(p.input) && (p.input[p.pos] == 'e' || p.input[p.pos] == 'E') {
		p.pos++
		if p.pos < len(p.input) && (p.input[p.pos] == '+' || p.input[p.pos] == '-') {
			p.pos++
		}
		for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
			p.pos++
		}
	}
	value, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("svg/path: malformed number %q at offset %d", p.input[start:p.pos], start)
	}
	return value, nil
}

func (p *parser) skipSeparators() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r', ',':
			p.pos++
		default:
			return
		}
	}
}

// classify maps a command letter to its canonical symbol and position.
func classify(ch byte) (byte, Position, bool) {
	position := Absolute
	if ch >= 'a' && ch <= 'z' {
		position = Relative
		ch -= 'a' - 'A'
	}
	switch ch {
	case Move, Line, HorizontalLine, VerticalLine, QuadraticCurve,
		SmoothQuadraticCurve, CubicCurve, SmoothCubicCurve, EllipticalArc:
		return ch, position, true
	case ClosePath:
		return ch, Absolute, true
	}
	return 0, Absolute, false
}

func startsNumber(ch byte) bool {
	return isDigit(ch) || ch == '+' || ch == '-' || ch == '.'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
