package report

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	ghtml "github.com/yuin/goldmark/renderer/html"

	"github.com/locnguyen04/digest-flow/internal/pipeline"
)

// md renders the report markdown. WithUnsafe lets the raw sign-language
// markup pass through into the HTML output.
var md = goldmark.New(
	goldmark.WithRendererOptions(ghtml.WithUnsafe()),
)

func (w *implWriter) writeHTML(path, title string, res *pipeline.Result) error {
	var doc strings.Builder

	fmt.Fprintf(&doc, "# %s\n\n", title)
	fmt.Fprintf(&doc, "## Summary & Emotion\n\n%s\n\n", res.DisplaySummary)
	fmt.Fprintf(&doc, "## English Text\n\n%s\n\n", res.EnglishSummary)
	fmt.Fprintf(&doc, "## Selected Language Text\n\n%s\n\n", res.TargetSummary)

	if res.SignMarkup != "" {
		fmt.Fprintf(&doc, "## Sign Language\n\n%s\n\n", res.SignMarkup)
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(doc.String()), &buf); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}
