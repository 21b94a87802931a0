package svg

import "strings"

// A Node is one element of a document tree: the owning counterpart of an
// Event. Elements nest; the other kinds are leaves. The set of kinds is
// closed: Element, Text, Comment, Declaration and Instruction.
type Node interface {
	// appendEvents flattens the node onto events in serialization order.
	appendEvents(events []Event) []Event
}

// An Element is a named node with attributes and ordered children. Child
// order is insertion order and is serialization order.
type Element struct {
	Name       string
	Attributes Attributes
	Children   []Node
}

// NewElement creates an element with no attributes and no children. This is
// the single factory behind every tag name; `NewElement("circle")` is what
// a per-tag constructor catalog reduces to.
func NewElement(name string) *Element {
	return &Element{Name: name, Attributes: make(Attributes)}
}

// Append adds child nodes, returning the element for chaining.
func (e *Element) Append(children ...Node) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// Assign sets an attribute, returning the element for chaining. The value
// is rendered with NewValue; assigning an existing name replaces it.
func (e *Element) Assign(name string, value any) *Element {
	if e.Attributes == nil {
		e.Attributes = make(Attributes)
	}
	e.Attributes[name] = NewValue(value)
	return e
}

// Events flattens the element into its event sequence: a single Empty tag
// when childless, otherwise a Start tag, the children's events, and a
// matching End tag.
func (e *Element) Events() []Event {
	return e.appendEvents(nil)
}

func (e *Element) appendEvents(events []Event) []Event {
	if len(e.Children) == 0 {
		return append(events, NewTag(e.Name, Empty, e.Attributes))
	}
	events = append(events, NewTag(e.Name, Start, e.Attributes))
	for _, child := range e.Children {
		events = child.appendEvents(events)
	}
	return append(events, NewTag(e.Name, End, nil))
}

func (e *Element) String() string {
	return composeToString(e.Events())
}

// Text is a run of character data.
type Text struct {
	Content string
}

func (t Text) appendEvents(events []Event) []Event {
	return append(events, NewText(t.Content))
}

func (t Text) String() string { return t.Content }

// A Comment is a `<!-- -->` node. Padded records whether the delimiters are
// separated from the content by exactly one space on each side; Content
// never includes those spaces.
type Comment struct {
	Content string
	Padded  bool
}

func (c Comment) appendEvents(events []Event) []Event {
	if c.Padded {
		return append(events, NewComment(c.Content))
	}
	return append(events, NewUnpaddedComment(c.Content))
}

// A Declaration holds the raw interior of a `<! >` node, such as a DOCTYPE.
type Declaration struct {
	Content string
}

func (d Declaration) appendEvents(events []Event) []Event {
	return append(events, NewDeclaration(d.Content))
}

// An Instruction holds the raw interior of a `<? ?>` node.
type Instruction struct {
	Content string
}

func (i Instruction) appendEvents(events []Event) []Event {
	return append(events, NewInstruction(i.Content))
}

func composeToString(events []Event) string {
	var b strings.Builder
	c := NewComposer(&b)
	for _, event := range events {
		// strings.Builder writes cannot fail.
		_ = c.Write(event)
	}
	return b.String()
}
