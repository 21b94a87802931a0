package svg_test

import (
	"strings"
	"testing"

	svg "github.com/KimNorgaard/go-svg"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	input := `<?xml version="1.0"?>
<!-- header -->
<!DOCTYPE svg>
<svg width="70">
<rect x="1"/>
<g>
<circle r="5"/>
</g>
</svg>
<!-- trailer -->`

	document, err := svg.Parse([]byte(input))
	require.NoError(t, err)

	require.Len(t, document.Prolog, 3)
	require.IsType(t, svg.Instruction{}, document.Prolog[0])
	require.IsType(t, svg.Comment{}, document.Prolog[1])
	require.IsType(t, svg.Declaration{}, document.Prolog[2])

	root := document.Root
	require.Equal(t, "svg", root.Name)
	require.Equal(t, svg.Value("70"), root.Attributes["width"])
	require.Len(t, root.Children, 2)

	rect, ok := root.Children[0].(*svg.Element)
	require.True(t, ok)
	require.Equal(t, "rect", rect.Name)
	require.Empty(t, rect.Children)

	g, ok := root.Children[1].(*svg.Element)
	require.True(t, ok)
	require.Equal(t, "g", g.Name)
	require.Len(t, g.Children, 1)

	require.Len(t, document.Trailing, 1)
	require.Equal(t, svg.Comment{Content: "trailer", Padded: true}, document.Trailing[0])
}

func TestParseDocumentEmptyRoot(t *testing.T) {
	document, err := svg.Parse([]byte("<svg/>"))
	require.NoError(t, err)
	require.Equal(t, "svg", document.Root.Name)
	require.Empty(t, document.Root.Children)
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"empty input", "", "no element in document"},
		{"prolog only", "<!-- nothing else -->", "no element in document"},
		{"close before open", "</a>", "found closing tag </a> before any opening tag"},
		{"mismatched close", "<a></b>", "expected closing tag </a>, found </b>"},
		{"mismatched nested close", "<a><b></a></b>", "expected closing tag </b>, found </a>"},
		{"missing close", "<a>", "missing closing tag </a>"},
		{"missing nested close", "<a><b>", "missing closing tag </b>"},
		{"second top-level element", "<a/><b/>", "unexpected second top-level element"},
		{"close after root", "<a/></a>", "unexpected second top-level element"},
		{"tokenizer error surfaces", "<a><!-- broken", "found a malformed comment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svg.Parse([]byte(tt.input))
			require.Error(t, err)
			var perr *svg.ParseError
			require.ErrorAs(t, err, &perr)
			require.Contains(t, perr.Message, tt.message)
		})
	}
}

// Deep nesting must not exhaust the call stack: the builder keeps an
// explicit frame stack instead of recursing.
func TestParseDocumentDeepNesting(t *testing.T) {
	const depth = 200000
	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString("<g>")
	}
	b.WriteString("<path/>")
	for i := 0; i < depth; i++ {
		b.WriteString("</g>")
	}

	document, err := svg.Parse([]byte(b.String()))
	require.NoError(t, err)

	element := document.Root
	for i := 0; i < depth-1; i++ {
		require.Len(t, element.Children, 1)
		element = element.Children[0].(*svg.Element)
	}
	require.Len(t, element.Children, 1)
	path := element.Children[0].(*svg.Element)
	require.Equal(t, "path", path.Name)
}

func TestDocumentEvents(t *testing.T) {
	document := svg.NewDocument()
	document.Prolog = append(document.Prolog, svg.Instruction{Content: `xml version="1.0"`})
	document.Root.Assign("width", 70).Append(svg.NewElement("rect"))
	document.Trailing = append(document.Trailing, svg.Comment{Content: "done", Padded: true})

	events := document.Events()
	require.Len(t, events, 5)
	require.Equal(t, svg.EventInstruction, events[0].Type)
	require.Equal(t, svg.Start, events[1].Kind)
	require.Equal(t, svg.Empty, events[2].Kind)
	require.Equal(t, svg.End, events[3].Kind)
	require.Equal(t, svg.EventComment, events[4].Type)

	require.Equal(t, "<?xml version=\"1.0\"?>\n<svg width=\"70\">\n<rect/>\n</svg>\n<!-- done -->", document.String())
}
