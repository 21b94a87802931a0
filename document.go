package svg

import "io"

// A Document is a parsed SVG file: any number of non-element nodes before
// the single root element, the root itself, and any non-element nodes after
// it. The document exclusively owns its node tree.
type Document struct {
	Prolog   []Node
	Root     *Element
	Trailing []Node
}

// NewDocument creates a document whose root is an empty `svg` element.
func NewDocument() *Document {
	return &Document{Root: NewElement("svg")}
}

// Events flattens the document back into its event sequence.
func (d *Document) Events() []Event {
	var events []Event
	for _, node := range d.Prolog {
		events = node.appendEvents(events)
	}
	if d.Root != nil {
		events = d.Root.appendEvents(events)
	}
	for _, node := range d.Trailing {
		events = node.appendEvents(events)
	}
	return events
}

func (d *Document) String() string {
	return composeToString(d.Events())
}

// ParseDocument drains the parser and builds a Document, enforcing
// structural well-formedness: every Start tag must be closed by an End tag
// with the identical name, strictly nested, and exactly one element may
// appear at the top level. Errors are terminal; no partial document is
// returned.
//
// Nesting is tracked with an explicit frame stack rather than recursion, so
// adversarially deep input cannot exhaust the call stack.
func ParseDocument(p *Parser) (*Document, error) {
	document := &Document{}

	// Prolog: everything up to the first Start or Empty tag.
	var event Event
	var err error
	for {
		event, err = p.Next()
		if err == io.EOF {
			return nil, parseErrorf(p.Position(), "no element in document")
		}
		if err != nil {
			return nil, err
		}
		if event.Type == EventTag {
			if event.Kind == End {
				return nil, parseErrorf(p.Position(), "found closing tag </%s> before any opening tag", event.Name)
			}
			break
		}
		document.Prolog = append(document.Prolog, leafNode(event))
	}

	root, err := buildElement(p, event)
	if err != nil {
		return nil, err
	}
	document.Root = root

	// Trailing: only non-element nodes may follow the root.
	for {
		event, err = p.Next()
		if err == io.EOF {
			return document, nil
		}
		if err != nil {
			return nil, err
		}
		if event.Type == EventTag {
			return nil, parseErrorf(p.Position(), "unexpected second top-level element")
		}
		document.Trailing = append(document.Trailing, leafNode(event))
	}
}

// An openFrame is one element whose End tag has not been seen yet.
type openFrame struct {
	name       string
	attributes Attributes
	children   []Node
}

// buildElement consumes events until the Start or Empty tag in first is
// fully closed, returning the completed element.
func buildElement(p *Parser, first Event) (*Element, error) {
	if first.Kind == Empty {
		return &Element{Name: first.Name, Attributes: first.Attributes}, nil
	}

	stack := []*openFrame{{name: first.Name, attributes: first.Attributes}}
	for {
		event, err := p.Next()
		if err == io.EOF {
			return nil, parseErrorf(p.Position(), "missing closing tag </%s>", stack[len(stack)-1].name)
		}
		if err != nil {
			return nil, err
		}

		if event.Type != EventTag {
			top := stack[len(stack)-1]
			top.children = append(top.children, leafNode(event))
			continue
		}

		switch event.Kind {
		case Start:
			stack = append(stack, &openFrame{name: event.Name, attributes: event.Attributes})
		case Empty:
			top := stack[len(stack)-1]
			top.children = append(top.children, &Element{Name: event.Name, Attributes: event.Attributes})
		case End:
			top := stack[len(stack)-1]
			if event.Name != top.name {
				return nil, parseErrorf(p.Position(), "expected closing tag </%s>, found </%s>", top.name, event.Name)
			}
			closed := &Element{Name: top.name, Attributes: top.attributes, Children: top.children}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return closed, nil
			}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, closed)
		}
	}
}

func leafNode(event Event) Node {
	switch event.Type {
	case EventText:
		return Text{Content: event.Content}
	case EventComment:
		return Comment{Content: event.Content, Padded: event.Padded}
	case EventDeclaration:
		return Declaration{Content: event.Content}
	default:
		return Instruction{Content: event.Content}
	}
}
