// Package banner expands short strings into large multi-line text.
package banner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xvierd/countdown-cli/internal/ports"
)

// ErrUnsupportedRune is returned when a glyph is missing from the font.
var ErrUnsupportedRune = errors.New("unsupported character")

// glyphHeight is the number of lines of every glyph.
const glyphHeight = 5

// glyphs maps each digit and unit letter to a 5-line block representation.
// All rows of a glyph have the same width.
var glyphs = map[rune][glyphHeight]string{
	'0': {
		"████",
		"█  █",
		"█  █",
		"█  █",
		"████",
	},
	'1': {
		" █ ",
		"██ ",
		" █ ",
		" █ ",
		"███",
	},
	'2': {
		"████",
		"   █",
		"████",
		"█   ",
		"████",
	},
	'3': {
		"████",
		"   █",
		"████",
		"   █",
		"████",
	},
	'4': {
		"█  █",
		"█  █",
		"████",
		"   █",
		"   █",
	},
	'5': {
		"████",
		"█   ",
		"████",
		"   █",
		"████",
	},
	'6': {
		"████",
		"█   ",
		"████",
		"█  █",
		"████",
	},
	'7': {
		"████",
		"   █",
		"  █ ",
		" █  ",
		" █  ",
	},
	'8': {
		"████",
		"█  █",
		"████",
		"█  █",
		"████",
	},
	'9': {
		"████",
		"█  █",
		"████",
		"   █",
		"████",
	},
	'd': {
		"   █",
		"   █",
		"████",
		"█  █",
		"████",
	},
	'h': {
		"█   ",
		"█   ",
		"████",
		"█  █",
		"█  █",
	},
	'm': {
		"     ",
		"     ",
		"█████",
		"█ █ █",
		"█ █ █",
	},
	's': {
		"   ",
		"███",
		"█  ",
		"  █",
		"███",
	},
}

// Block renders text with the built-in block font.
type Block struct{}

// NewBlock creates a block font banner.
func NewBlock() *Block {
	return &Block{}
}

// Render returns five lines of block glyphs separated by one column.
func (b *Block) Render(text string) ([]string, error) {
	var rows [glyphHeight]strings.Builder
	for i, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			return nil, fmt.Errorf("%w %q at offset %d", ErrUnsupportedRune, ch, i)
		}
		for r := range rows {
			if rows[r].Len() > 0 {
				rows[r].WriteByte(' ')
			}
			rows[r].WriteString(glyph[r])
		}
	}

	lines := make([]string, glyphHeight)
	for r := range rows {
		lines[r] = rows[r].String()
	}
	return lines, nil
}

// Ensure Block implements ports.Banner.
var _ ports.Banner = (*Block)(nil)
