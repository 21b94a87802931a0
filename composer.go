package svg

import (
	"io"
	"sort"
	"strings"
)

// A Composer serializes events to an output sink, one per line. Rendering
// is deterministic: attributes are sorted by name and quote characters are
// chosen by a fixed rule, so the same events always produce the same bytes.
type Composer struct {
	w     io.Writer
	wrote bool
}

// NewComposer creates a Composer writing to w.
func NewComposer(w io.Writer) *Composer {
	return &Composer{w: w}
}

// Write serializes one event. Consecutive events are separated by exactly
// one newline: none before the first, none after the last.
//
// Attribute values use double quotes, or single quotes when the value
// contains a double quote and no single quote. A value containing both
// quote characters cannot be represented under this scheme and the
// attribute is dropped from the output. Write failures propagate
// immediately and leave the output partially written.
func (c *Composer) Write(event Event) error {
	if c.wrote {
		if err := c.writeString("\n"); err != nil {
			return err
		}
	}
	c.wrote = true

	switch event.Type {
	case EventTag:
		return c.writeTag(event)
	case EventText:
		return c.writeString(event.Content)
	case EventComment:
		if event.Padded {
			return c.writeString("<!-- " + event.Content + " -->")
		}
		return c.writeString("<!--" + event.Content + "-->")
	case EventDeclaration:
		return c.writeString("<!" + event.Content + ">")
	case EventInstruction:
		return c.writeString("<?" + event.Content + "?>")
	default:
		return c.writeString(event.Content)
	}
}

func (c *Composer) writeTag(event Event) error {
	var b strings.Builder
	b.WriteByte('<')
	if event.Kind == End {
		// End tags carry no attributes; any present are discarded.
		b.WriteByte('/')
		b.WriteString(event.Name)
		b.WriteByte('>')
		return c.writeString(b.String())
	}
	b.WriteString(event.Name)
	writeAttributes(&b, event.Attributes)
	if event.Kind == Empty {
		b.WriteByte('/')
	}
	b.WriteByte('>')
	return c.writeString(b.String())
}

func writeAttributes(b *strings.Builder, attributes Attributes) {
	names := make([]string, 0, len(attributes))
	for name := range attributes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := attributes[name].String()
		quote := `"`
		if strings.Contains(value, `"`) {
			if strings.Contains(value, `'`) {
				continue
			}
			quote = `'`
		}
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(quote)
		b.WriteString(value)
		b.WriteString(quote)
	}
}

func (c *Composer) writeString(s string) error {
	_, err := io.WriteString(c.w, s)
	return err
}
