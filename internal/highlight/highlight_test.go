package highlight

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var _ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestHighlighter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
	}{
		{desc: "procedure", give: "add :: proc(a, b: int) -> int"},
		{desc: "struct", give: "Vec2 :: struct"},
		{desc: "constant", give: `VERSION :: "1.0"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var h Highlighter
			got := h.Highlight(tt.give)

			// Escapes interleave between tokens,
			// but stripping them must recover the input.
			assert.Equal(t, tt.give, _ansi.ReplaceAllString(got, ""))
			assert.False(t, strings.HasSuffix(got, "\n"),
				"highlighted text must not grow a newline")
		})
	}
}

func TestHighlighter_unknownStyle(t *testing.T) {
	t.Parallel()

	h := Highlighter{Style: "no-such-style"}
	got := h.Highlight("x :: proc()")
	assert.Equal(t, "x :: proc()", _ansi.ReplaceAllString(got, ""))
}
