package report

import (
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/locnguyen04/digest-flow/internal/pipeline"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// writeDocx renders the text fields of the bundle as a styled document.
// Audio and sign markup stay out; they are not printable artifacts.
func writeDocx(path, title string, res *pipeline.Result) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addHeading(doc, title, 16)
	doc.AddParagraph("")

	addHeading(doc, "Summary & Emotion", 15)
	addBody(doc, res.DisplaySummary)

	addHeading(doc, "English Text", 15)
	addBody(doc, res.EnglishSummary)

	addHeading(doc, "Selected Language Text", 15)
	addBody(doc, res.TargetSummary)

	return doc.SaveTo(path)
}

func addHeading(doc *docx.RootDoc, text string, size uint64) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(size).Color("000000").Bold(true)
}

func addBody(doc *docx.RootDoc, text string) {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		p := doc.AddParagraph("")
		p.AddText(trimmed).Font(fontName).Size(fontSize).Color("000000")
	}
	doc.AddParagraph("")
}
