package signlang

import (
	"strings"
	"testing"
)

func TestRenderWholeWord(t *testing.T) {
	markup := Render("love")

	if !strings.Contains(markup, "gifs/l/love.gif") {
		t.Errorf("Render(\"love\") missing whole-word glyph: %s", markup)
	}
	if strings.Contains(markup, "fingerspelling") {
		t.Errorf("Render(\"love\") should not fingerspell a known word: %s", markup)
	}
}

func TestRenderFingerspellsUnknownWord(t *testing.T) {
	markup := Render("fox")

	for _, letter := range []string{"f.gif", "o.gif", "x.gif"} {
		if !strings.Contains(markup, "fingerspelling/"+letter) {
			t.Errorf("Render(\"fox\") missing fingerspelled %s: %s", letter, markup)
		}
	}
}

func TestRenderStripsPunctuationAndCase(t *testing.T) {
	// "Thank," cleans to "thank", a whole-word glyph
	markup := Render("Thank,")

	if !strings.Contains(markup, "thank-you.gif") {
		t.Errorf("Render(\"Thank,\") missing whole-word glyph: %s", markup)
	}
}

func TestRenderSkipsUnknownCharacters(t *testing.T) {
	// digits strip away entirely; the token contributes nothing
	markup := Render("42")

	if strings.Contains(markup, "<img") {
		t.Errorf("Render(\"42\") should emit no glyphs: %s", markup)
	}
}

func TestRenderEmptyInput(t *testing.T) {
	markup := Render("")

	if !strings.HasPrefix(markup, "<div") || !strings.HasSuffix(markup, "</div>") {
		t.Errorf("Render(\"\") should be a well-formed empty container: %s", markup)
	}
	if strings.Contains(markup, "<img") {
		t.Errorf("Render(\"\") should contain no glyphs: %s", markup)
	}
}

func TestRenderMixedSentence(t *testing.T) {
	markup := Render("The fox loves thanking everyone")

	// "loves" and "thanking" are not whole-word entries; they fingerspell
	if !strings.Contains(markup, "fingerspelling/t.gif") {
		t.Errorf("expected fingerspelled letters in: %s", markup)
	}
	// order preserved: container opens before any glyph
	if strings.Index(markup, "<div") > strings.Index(markup, "<img") {
		t.Error("container must wrap the glyph sequence")
	}
}

func TestRenderIdempotent(t *testing.T) {
	first := Render("hello happy world")
	second := Render("hello happy world")

	if first != second {
		t.Error("Render is not a pure function of its input")
	}
}
