package svg

import (
	"io"
	"strings"

	"github.com/KimNorgaard/go-svg/internal/scanner"
)

// A Parser turns raw SVG markup into a stream of Events. It is a one-pass,
// forward-only iterator: each call to Next consumes input and the stream
// cannot be rewound.
type Parser struct {
	s *scanner.Scanner
}

// NewParser creates a Parser over data. The whole input is held in memory;
// the Parser borrows the buffer for its lifetime.
func NewParser(data []byte) *Parser {
	return &Parser{s: scanner.New(data)}
}

// Position returns the current byte offset into the input.
func (p *Parser) Position() int {
	return p.s.Position()
}

// Next returns the next event. It returns io.EOF once the input is
// exhausted. Any other error is a *ParseError and terminates the stream at
// that point.
//
// Text runs are trimmed of surrounding whitespace; runs that are whitespace
// only produce no event. The composer re-establishes inter-event whitespace
// as one newline per boundary, so trimming is what keeps parse and compose
// inverses of each other.
func (p *Parser) Next() (Event, error) {
	if text, ok := p.s.Capture(func() bool { return p.s.ConsumeUntil('<') }); ok {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return NewText(trimmed), nil
		}
	}

	ahead := p.s.Peek(4)
	switch {
	case ahead == "":
		return Event{}, io.EOF
	case strings.HasPrefix(ahead, "<!--"):
		return p.readComment()
	case strings.HasPrefix(ahead, "<!"):
		return p.readDeclaration()
	case strings.HasPrefix(ahead, "<?"):
		return p.readInstruction()
	case strings.HasPrefix(ahead, "<"):
		return p.readTag()
	default:
		return Event{}, parseErrorf(p.s.Position(), "found an unknown sequence")
	}
}

func (p *Parser) readComment() (Event, error) {
	raw, ok := p.s.Capture(p.s.ConsumeComment)
	if !ok {
		return Event{}, parseErrorf(p.s.Position(), "found a malformed comment")
	}
	body := raw[4 : len(raw)-3]
	if content, padded := strings.CutPrefix(body, " "); padded {
		if content, padded = strings.CutSuffix(content, " "); padded {
			return NewComment(content), nil
		}
	}
	return NewUnpaddedComment(body), nil
}

func (p *Parser) readDeclaration() (Event, error) {
	raw, ok := p.s.Capture(p.s.ConsumeDeclaration)
	if !ok {
		return Event{}, parseErrorf(p.s.Position(), "found a malformed declaration")
	}
	return NewDeclaration(raw[2 : len(raw)-1]), nil
}

func (p *Parser) readInstruction() (Event, error) {
	raw, ok := p.s.Capture(p.s.ConsumeInstruction)
	if !ok {
		return Event{}, parseErrorf(p.s.Position(), "found a malformed instruction")
	}
	return NewInstruction(raw[2 : len(raw)-2]), nil
}

func (p *Parser) readTag() (Event, error) {
	start := p.s.Position()
	raw, ok := p.s.Capture(p.s.ConsumeTag)
	if !ok {
		return Event{}, parseErrorf(start, "found a malformed tag")
	}
	return parseTag(raw[1:len(raw)-1], start+1)
}
