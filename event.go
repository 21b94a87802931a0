package svg

// EventType identifies the kind of lexical unit an Event represents.
type EventType int

const (
	// EventTag is an opening, self-closing, or closing tag.
	EventTag EventType = iota
	// EventText is a run of character data between tags.
	EventText
	// EventComment is a `<!-- -->` comment.
	EventComment
	// EventDeclaration is the raw interior of a `<! >` declaration.
	EventDeclaration
	// EventInstruction is the raw interior of a `<? ?>` instruction.
	EventInstruction
)

// TagKind distinguishes the three tag forms.
type TagKind int

const (
	// Start is an opening tag: `<a>`.
	Start TagKind = iota
	// Empty is a self-closing tag: `<a/>`.
	Empty
	// End is a closing tag: `</a>`.
	End
)

// An Event is one lexical unit produced by the Parser. Which fields are
// meaningful depends on Type: tags use Name, Kind and Attributes (End tags
// carry no attributes; any present are ignored and never emitted), comments
// use Content and Padded, and the remaining kinds use Content alone.
type Event struct {
	Type       EventType
	Name       string
	Kind       TagKind
	Attributes Attributes
	Content    string
	Padded     bool
}

// NewTag creates a tag event.
func NewTag(name string, kind TagKind, attributes Attributes) Event {
	return Event{Type: EventTag, Name: name, Kind: kind, Attributes: attributes}
}

// NewText creates a text event.
func NewText(content string) Event {
	return Event{Type: EventText, Content: content}
}

// NewComment creates a padded comment event; it serializes with one space
// on each side of the content, as `<!-- content -->`.
func NewComment(content string) Event {
	return Event{Type: EventComment, Content: content, Padded: true}
}

// NewUnpaddedComment creates an unpadded comment event; it serializes as
// `<!--content-->`.
func NewUnpaddedComment(content string) Event {
	return Event{Type: EventComment, Content: content}
}

// NewDeclaration creates a declaration event from the interior of `<! >`.
func NewDeclaration(content string) Event {
	return Event{Type: EventDeclaration, Content: content}
}

// NewInstruction creates an instruction event from the interior of `<? ?>`.
func NewInstruction(content string) Event {
	return Event{Type: EventInstruction, Content: content}
}
