/*
Package svg parses and composes SVG markup with byte-level fidelity to its
formatting conventions: attribute ordering, quote-character choice, and
comment padding.

The package offers two workflows depending on the use case.

1. Streaming Events

A Parser yields one Event per lexical unit — tag, text run, comment,
declaration or processing instruction — in a single forward pass, which is
enough to extract data without materializing a tree:

	parser, err := svg.Open("image.svg")
	if err != nil {
		// handle error
	}
	for {
		event, err := parser.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			// handle error
		}
		if event.Type == svg.EventTag && event.Name == "path" {
			data, err := path.Parse(event.Attributes["d"].String())
			// ...
		}
	}

2. Document Trees

ParseDocument consumes the event stream and builds a Document — prolog
nodes, one root element, trailing nodes — enforcing that tags nest and
match. Documents can also be built programmatically and serialized:

	data := path.New().
		MoveTo(10, 10).
		LineBy(0, 50).
		LineBy(50, 0).
		LineBy(0, -50).
		Close()

	p := svg.NewElement("path").
		Assign("fill", "none").
		Assign("stroke", "black").
		Assign("stroke-width", 3).
		Assign("d", data)

	document := svg.NewDocument()
	document.Root.Assign("viewBox", []int{0, 0, 70, 70}).Append(p)

	if err := svg.Save("image.svg", document); err != nil {
		// handle error
	}

Composition is deterministic: attributes serialize in sorted name order,
one event per line, so composing the same tree always produces the same
bytes. The package performs no schema validation, no entity escaping or
unescaping, and no namespace resolution.
*/
package svg
