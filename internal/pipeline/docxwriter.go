package pipeline

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	fontColor = "000000"
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^\d+\.\s+(.+)$`)
)

// writeMinutesDocx lays out the minutes as a styled Word document.
func writeMinutesDocx(m minutes, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), m.Title, true, 16)
	addStyledRun(doc.AddParagraph(""), m.GeneratedAt.Format("2006-01-02 15:04"), false, fontSize)

	addStyledRun(doc.AddParagraph(""), "Summary", true, headingSize(2))
	addMarkdown(doc, m.Summary.Text)

	addStyledRun(doc.AddParagraph(""), "Action Items", true, headingSize(2))
	if !m.ActionItems.OK() {
		addRichText(doc.AddParagraph(""), m.ActionItems.Failure.Error())
		if raw := m.ActionItems.Failure.RawOutput; raw != "" {
			addPlainLines(doc, raw)
		}
		return doc.SaveTo(outputPath)
	}

	items := m.ActionItems.Items
	for _, person := range people(items) {
		addStyledRun(doc.AddParagraph(""), person, true, headingSize(3))
		addBullets(doc, items.IndividualActions[person])
	}
	if len(items.TeamActions) > 0 {
		addStyledRun(doc.AddParagraph(""), "Team", true, headingSize(3))
		addBullets(doc, items.TeamActions)
	}
	if len(items.Entities) > 0 {
		addRichText(doc.AddParagraph(""), "**Participants:** "+strings.Join(items.Entities, ", "))
	}

	return doc.SaveTo(outputPath)
}

// addMarkdown renders the subset of markdown chat models tend to produce.
func addMarkdown(doc *docx.RootDoc, markdown string) {
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			addStyledRun(doc.AddParagraph(""), m[2], true, headingSize(len(m[1])))
			continue
		}
		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addRichText(doc.AddParagraph(""), "• "+m[1])
			continue
		}
		if reNumbered.MatchString(trimmed) {
			addRichText(doc.AddParagraph(""), trimmed)
			continue
		}
		addRichText(doc.AddParagraph(""), trimmed)
	}
}

func addBullets(doc *docx.RootDoc, tasks []string) {
	for _, task := range tasks {
		addRichText(doc.AddParagraph(""), "• "+task)
	}
}

// addPlainLines keeps raw model output verbatim, one paragraph per line.
func addPlainLines(doc *docx.RootDoc, text string) {
	for _, line := range strings.Split(text, "\n") {
		doc.AddParagraph("").AddText(line).Font(fontName).Size(fontSize).Color(fontColor)
	}
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color(fontColor)
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color(fontColor)
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color(fontColor).Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
