package svg_test

import (
	"errors"
	"strings"
	"testing"

	svg "github.com/KimNorgaard/go-svg"
	"github.com/stretchr/testify/require"
)

// compose serializes events and returns the output.
func compose(t *testing.T, events ...svg.Event) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, svg.WriteEvents(&b, events))
	return b.String()
}

func TestWriteTagKinds(t *testing.T) {
	tests := []struct {
		event svg.Event
		want  string
	}{
		{svg.NewTag("svg", svg.Start, nil), "<svg>"},
		{svg.NewTag("rect", svg.Empty, nil), "<rect/>"},
		{svg.NewTag("svg", svg.End, nil), "</svg>"},
		{svg.NewText("hello > world"), "hello > world"},
		{svg.NewComment("valid"), "<!-- valid -->"},
		{svg.NewUnpaddedComment("tight"), "<!--tight-->"},
		{svg.NewDeclaration("DOCTYPE svg"), "<!DOCTYPE svg>"},
		{svg.NewInstruction(`xml version="1.0"`), `<?xml version="1.0"?>`},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, compose(t, tt.event))
	}
}

func TestAttributesSortedByName(t *testing.T) {
	event := svg.NewTag("foo", svg.Empty, svg.Attributes{
		"x": svg.NewValue(-10),
		"y": svg.NewValue("10px"),
		"s": svg.NewValue([]float64{12.5, 13.0}),
		"c": svg.NewValue("green"),
	})
	require.Equal(t, `<foo c="green" s="12.5 13" x="-10" y="10px"/>`, compose(t, event))
}

func TestQuoteSelection(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"plain", `<a v="plain"/>`},
		{"it's", `<a v="it's"/>`},
		{`say "hi"`, `<a v='say "hi"'/>`},
	}
	for _, tt := range tests {
		event := svg.NewTag("a", svg.Empty, svg.Attributes{"v": svg.NewValue(tt.value)})
		require.Equal(t, tt.want, compose(t, event), "value %q", tt.value)
	}
}

// A value holding both quote characters has no representable form under the
// two-quote scheme; the attribute is dropped rather than emitted broken.
func TestUnquotableAttributeIsDropped(t *testing.T) {
	event := svg.NewTag("a", svg.Empty, svg.Attributes{
		"bad":  svg.NewValue(`both ' and "`),
		"good": svg.NewValue("kept"),
	})
	require.Equal(t, `<a good="kept"/>`, compose(t, event))
}

func TestEndTagAttributesDiscarded(t *testing.T) {
	event := svg.NewTag("svg", svg.End, svg.Attributes{"x": svg.NewValue(1)})
	require.Equal(t, "</svg>", compose(t, event))
}

func TestSeparatorBetweenEvents(t *testing.T) {
	got := compose(t,
		svg.NewTag("svg", svg.Start, nil),
		svg.NewText("hi"),
		svg.NewTag("svg", svg.End, nil),
	)
	require.Equal(t, "<svg>\nhi\n</svg>", got)
}

func TestSingleEventHasNoSeparator(t *testing.T) {
	require.Equal(t, "<svg/>", compose(t, svg.NewTag("svg", svg.Empty, nil)))
}

// failWriter fails after a fixed number of writes.
type failWriter struct {
	remaining int
}

var errSink = errors.New("sink failed")

func (w *failWriter) Write(p []byte) (int, error) {
	if w.remaining == 0 {
		return 0, errSink
	}
	w.remaining--
	return len(p), nil
}

func TestWriteErrorPropagates(t *testing.T) {
	w := &failWriter{remaining: 2}
	err := svg.WriteEvents(w, []svg.Event{
		svg.NewTag("a", svg.Empty, nil),
		svg.NewTag("b", svg.Empty, nil),
	})
	require.ErrorIs(t, err, errSink)
}
