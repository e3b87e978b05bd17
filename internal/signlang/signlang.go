// Package signlang renders text as a sequence of sign-language glyph images.
package signlang

import (
	"fmt"
	"strings"
	"unicode"
)

// wordGlyphs maps whole words to their sign images. Tokens that match
// here are shown as a single sign instead of being fingerspelled.
var wordGlyphs = map[string]string{
	"hello": "https://www.lifeprint.com/asl101/gifs/h/hello.gif",
	"thank": "https://www.lifeprint.com/asl101/gifs/t/thank-you.gif",
	"love":  "https://www.lifeprint.com/asl101/gifs/l/love.gif",
	"happy": "https://www.lifeprint.com/asl101/gifs/h/happy.gif",
}

// letterGlyphs holds the fingerspelling image for each letter a-z.
var letterGlyphs = map[rune]string{}

func init() {
	for r := 'a'; r <= 'z'; r++ {
		letterGlyphs[r] = fmt.Sprintf("https://www.lifeprint.com/asl101/fingerspelling/%c.gif", r)
	}
}

const (
	containerOpen  = "<div style='overflow-x: auto; white-space: nowrap; display: flex;'>"
	containerClose = "</div>"
)

// Render maps the text to sign-language markup: one image per matched
// whole word, otherwise one image per fingerspelled letter. Letters and
// tokens without a glyph are skipped silently. The result is always a
// well-formed container, even for empty input.
func Render(text string) string {
	var b strings.Builder
	b.WriteString(containerOpen)

	for _, word := range strings.Fields(strings.ToLower(text)) {
		clean := stripNonAlpha(word)
		if clean == "" {
			continue
		}

		if src, ok := wordGlyphs[clean]; ok {
			writeGlyph(&b, src, 5)
			continue
		}

		for _, r := range clean {
			if src, ok := letterGlyphs[r]; ok {
				writeGlyph(&b, src, 2)
			}
		}
	}

	b.WriteString(containerClose)
	return b.String()
}

func writeGlyph(b *strings.Builder, src string, marginPx int) {
	fmt.Fprintf(b, "<img src='%s' style='width: 50px; height: 50px; margin-right: %dpx;'>", src, marginPx)
}

func stripNonAlpha(word string) string {
	var b strings.Builder
	for _, r := range word {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
