package xmlscan_test

import (
	"testing"

	"github.com/yaklabco/xmlnav/pkg/xmlscan"
)

// event is a flattened token for comparison in tests.
type event struct {
	kind xmlscan.TokenKind
	text string
}

func collect(t *testing.T, input string) []event {
	t.Helper()

	var events []event
	xmlscan.Scan([]byte(input), func(tok xmlscan.Token) xmlscan.Action {
		switch tok.Kind {
		case xmlscan.TokStartTag, xmlscan.TokEndTag:
			events = append(events, event{kind: tok.Kind, text: string(tok.Name)})
		case xmlscan.TokText:
			events = append(events, event{kind: tok.Kind, text: string(tok.Text)})
		}
		return xmlscan.Continue
	})
	return events
}

func TestScan_Tokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []event
	}{
		{
			name:  "simple element with text",
			input: "<a>hello</a>",
			expected: []event{
				{xmlscan.TokStartTag, "a"},
				{xmlscan.TokText, "hello"},
				{xmlscan.TokEndTag, "a"},
			},
		},
		{
			name:  "nested elements",
			input: "<a><b>1</b><b>2</b><c/></a>",
			expected: []event{
				{xmlscan.TokStartTag, "a"},
				{xmlscan.TokStartTag, "b"},
				{xmlscan.TokText, "1"},
				{xmlscan.TokEndTag, "b"},
				{xmlscan.TokStartTag, "b"},
				{xmlscan.TokText, "2"},
				{xmlscan.TokEndTag, "b"},
				{xmlscan.TokStartTag, "c"},
				{xmlscan.TokEndTag, "c"},
				{xmlscan.TokEndTag, "a"},
			},
		},
		{
			name:  "self-closing with attributes",
			input: `<img src="x.png" />`,
			expected: []event{
				{xmlscan.TokStartTag, "img"},
				{xmlscan.TokEndTag, "img"},
			},
		},
		{
			name:  "comment is invisible",
			input: `<a x="1"><!-- skip --><b/></a>`,
			expected: []event{
				{xmlscan.TokStartTag, "a"},
				{xmlscan.TokStartTag, "b"},
				{xmlscan.TokEndTag, "b"},
				{xmlscan.TokEndTag, "a"},
			},
		},
		{
			name:  "processing instruction is invisible",
			input: `<?xml version="1.0"?><a/>`,
			expected: []event{
				{xmlscan.TokStartTag, "a"},
				{xmlscan.TokEndTag, "a"},
			},
		},
		{
			name:  "text is trimmed",
			input: "<a>\n  padded  \n</a>",
			expected: []event{
				{xmlscan.TokStartTag, "a"},
				{xmlscan.TokText, "padded"},
				{xmlscan.TokEndTag, "a"},
			},
		},
		{
			name:  "whitespace-only text is not emitted",
			input: "<a>\n\t \n<b/></a>",
			expected: []event{
				{xmlscan.TokStartTag, "a"},
				{xmlscan.TokStartTag, "b"},
				{xmlscan.TokEndTag, "b"},
				{xmlscan.TokEndTag, "a"},
			},
		},
		{
			name:  "truncated input ends cleanly",
			input: "<a><b>",
			expected: []event{
				{xmlscan.TokStartTag, "a"},
				{xmlscan.TokStartTag, "b"},
			},
		},
		{
			name:  "unterminated tag ends the scan",
			input: "<a><b attr=",
			expected: []event{
				{xmlscan.TokStartTag, "a"},
			},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "no elements",
			input:    "   \n  ",
			expected: nil,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := collect(t, testCase.input)
			if len(got) != len(testCase.expected) {
				t.Fatalf("expected %d tokens, got %d: %v", len(testCase.expected), len(got), got)
			}
			for i, want := range testCase.expected {
				if got[i] != want {
					t.Errorf("token %d: expected %v, got %v", i, want, got[i])
				}
			}
		})
	}
}

func TestScan_StartEndBalance(t *testing.T) {
	t.Parallel()

	docs := []string{
		"<a/>",
		"<a><b>1</b><b>2</b><c/></a>",
		`<root><x y="1"/><x y="2"><deep><deeper/></deep></x></root>`,
		"<a>text<b>more</b>tail</a>",
	}

	for _, doc := range docs {
		starts, ends := 0, 0
		xmlscan.Scan([]byte(doc), func(tok xmlscan.Token) xmlscan.Action {
			switch tok.Kind {
			case xmlscan.TokStartTag:
				starts++
			case xmlscan.TokEndTag:
				ends++
			}
			return xmlscan.Continue
		})
		if starts != ends {
			t.Errorf("%q: %d start tags but %d end tags", doc, starts, ends)
		}
	}
}

func TestScan_EarlyStop(t *testing.T) {
	t.Parallel()

	seen := 0
	xmlscan.Scan([]byte("<a><b/><c/><d/></a>"), func(tok xmlscan.Token) xmlscan.Action {
		seen++
		if tok.Kind == xmlscan.TokStartTag && string(tok.Name) == "b" {
			return xmlscan.Stop
		}
		return xmlscan.Continue
	})

	// StartTag(a) then StartTag(b); the synthetic EndTag(b) and everything
	// after must not be delivered.
	if seen != 2 {
		t.Errorf("expected 2 tokens before stop, got %d", seen)
	}
}

func TestScan_Offsets(t *testing.T) {
	t.Parallel()

	input := []byte(`<a><b x="1">hi</b></a>`)
	var offsets []int
	xmlscan.Scan(input, func(tok xmlscan.Token) xmlscan.Action {
		if tok.Kind == xmlscan.TokStartTag {
			offsets = append(offsets, tok.Offset)
		}
		return xmlscan.Continue
	})

	if len(offsets) != 2 {
		t.Fatalf("expected 2 start tags, got %d", len(offsets))
	}
	for i, off := range offsets {
		if input[off] != '<' {
			t.Errorf("start tag %d: offset %d does not point at '<'", i, off)
		}
	}
	if offsets[0] != 0 || offsets[1] != 3 {
		t.Errorf("expected offsets [0 3], got %v", offsets)
	}
}

func TestScan_RawAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no attributes", "<a>", ""},
		{"single attribute", `<a x="1">`, ` x="1"`},
		{"self-closing keeps slash out", `<a x="1"/>`, ` x="1"`},
		{"multiple attributes", `<a x="1" y='2'>`, ` x="1" y='2'`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var raw string
			xmlscan.Scan([]byte(testCase.input), func(tok xmlscan.Token) xmlscan.Action {
				if tok.Kind == xmlscan.TokStartTag {
					raw = string(tok.RawAttrs)
					return xmlscan.Stop
				}
				return xmlscan.Continue
			})
			if raw != testCase.expected {
				t.Errorf("expected raw attrs %q, got %q", testCase.expected, raw)
			}
		})
	}
}

func TestScan_SelfClosingNameIdentity(t *testing.T) {
	t.Parallel()

	input := []byte("<x/>")
	var names [][]byte
	xmlscan.Scan(input, func(tok xmlscan.Token) xmlscan.Action {
		names = append(names, tok.Name)
		return xmlscan.Continue
	})

	if len(names) != 2 {
		t.Fatalf("expected start and synthetic end tag, got %d tokens", len(names))
	}
	// The synthetic end tag must carry the byte-identical name slice.
	if &names[0][0] != &names[1][0] || len(names[0]) != len(names[1]) {
		t.Error("synthetic end tag name is not the identical slice")
	}
}
