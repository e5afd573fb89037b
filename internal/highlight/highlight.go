// Package highlight colorizes Odin declarations
// for terminal display with ANSI escape sequences.
package highlight

import (
	"strings"
	"sync"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter colorizes Odin source text.
//
// The zero value uses the default style
// and a 256-color terminal formatter.
type Highlighter struct {
	// Style is the name of the chroma style to use.
	// Empty or unknown names fall back to the default style.
	Style string

	once  sync.Once
	lexer chroma.Lexer
	fmter chroma.Formatter
	style *chroma.Style
}

func (h *Highlighter) init() {
	h.once.Do(func() {
		lexer := lexers.Get("odin")
		if lexer == nil {
			lexer = lexers.Fallback
		}
		h.lexer = chroma.Coalesce(lexer)

		h.fmter = formatters.Get("terminal256")
		if h.fmter == nil {
			h.fmter = formatters.Fallback
		}

		h.style = styles.Get(h.Style)
		if h.style == nil {
			h.style = styles.Fallback
		}
	})
}

// Highlight returns src with ANSI color escapes applied.
// If src cannot be tokenized or formatted, it is returned unchanged.
func (h *Highlighter) Highlight(src string) string {
	h.init()

	it, err := h.lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}

	var sb strings.Builder
	if err := h.fmter.Format(&sb, h.style, it); err != nil {
		return src
	}

	// Lexers normalize input to end with a newline.
	// The caller owns line breaks, so undo that here.
	return strings.TrimRight(sb.String(), "\n")
}
