// Package scanner provides the low-level cursor the SVG tokenizer is built
// on. It knows nothing about markup grammar beyond the handful of consume
// rules the tokenizer needs: it locates construct boundaries in raw bytes
// and hands back zero-copy slices of the input buffer.
package scanner

// Scanner is a forward-only cursor over an in-memory buffer.
type Scanner struct {
	input []byte
	pos   int
}

// New creates a Scanner over input. The Scanner borrows the buffer; callers
// must not mutate it while the Scanner is in use.
func New(input []byte) *Scanner {
	return &Scanner{input: input}
}

// Position returns the current byte offset, used for diagnostics.
func (s *Scanner) Position() int {
	return s.pos
}

// Peek returns up to n upcoming bytes without consuming them. At end of
// input it returns the empty string.
func (s *Scanner) Peek(n int) string {
	end := s.pos + n
	if end > len(s.input) {
		end = len(s.input)
	}
	return string(s.input[s.pos:end])
}

// Capture runs a consume rule and returns the bytes it consumed as a slice
// into the input buffer. If the rule reports failure, or consumed nothing,
// the cursor is restored to where it was and ok is false.
func (s *Scanner) Capture(rule func() bool) (text string, ok bool) {
	start := s.pos
	if !rule() || s.pos == start {
		s.pos = start
		return "", false
	}
	return string(s.input[start:s.pos]), true
}

// ConsumeUntil advances the cursor up to, but not including, the next
// occurrence of b, or to end of input. It reports whether it advanced.
func (s *Scanner) ConsumeUntil(b byte) bool {
	start := s.pos
	for s.pos < len(s.input) && s.input[s.pos] != b {
		s.pos++
	}
	return s.pos > start
}

// ConsumeComment consumes a complete comment: the literal "<!--" through
// the first following "-->". It reports whether a complete comment was
// present at the cursor.
func (s *Scanner) ConsumeComment() bool {
	if !s.consumeLiteral("<!--") {
		return false
	}
	return s.consumeThrough("-->")
}

// ConsumeDeclaration consumes a complete declaration: "<!" through the next
// '>' that is not inside a quoted region. Quote-awareness matters because
// DOCTYPE declarations carry quoted system identifiers.
func (s *Scanner) ConsumeDeclaration() bool {
	if !s.consumeLiteral("<!") {
		return false
	}
	return s.consumeToUnquoted('>')
}

// ConsumeInstruction consumes a complete processing instruction: "<?"
// through the first following "?>".
func (s *Scanner) ConsumeInstruction() bool {
	if !s.consumeLiteral("<?") {
		return false
	}
	return s.consumeThrough("?>")
}

// ConsumeTag consumes a complete tag: '<' through the next '>' that is not
// inside a single- or double-quoted attribute value. An attribute value may
// legally contain '>', so a bare index of '>' would split the tag early.
func (s *Scanner) ConsumeTag() bool {
	if !s.consumeLiteral("<") {
		return false
	}
	return s.consumeToUnquoted('>')
}

func (s *Scanner) consumeLiteral(lit string) bool {
	if len(s.input)-s.pos < len(lit) {
		return false
	}
	if string(s.input[s.pos:s.pos+len(lit)]) != lit {
		return false
	}
	s.pos += len(lit)
	return true
}

// consumeThrough advances past the first occurrence of end, consuming it.
func (s *Scanner) consumeThrough(end string) bool {
	for s.pos < len(s.input) {
		if s.input[s.pos] == end[0] && s.consumeLiteral(end) {
			return true
		}
		s.pos++
	}
	return false
}

// consumeToUnquoted advances past the first occurrence of b that is outside
// any single- or double-quoted region, consuming it.
func (s *Scanner) consumeToUnquoted(b byte) bool {
	var quote byte
	for s.pos < len(s.input) {
		ch := s.input[s.pos]
		s.pos++
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"':
			quote = ch
		case ch == b:
			return true
		}
	}
	return false
}
