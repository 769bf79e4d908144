package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ritmo/internal/content"
)

var lessonIcons = map[content.LessonType]string{
	content.LessonRead:   "📖",
	content.LessonAction: "✋",
	content.LessonVideo:  "▶",
}

// FormatPillars renders the method view. Locked pillars show no lessons.
func FormatPillars(pillars []content.Pillar, currentID int) string {
	var b strings.Builder
	b.WriteString(Header("O método") + "\n\n")

	for _, p := range pillars {
		title := fmt.Sprintf("%d. %s", p.ID, p.Title)
		switch {
		case !p.Unlocked:
			b.WriteString(Dim("🔒 "+title+"  "+p.Subtitle) + "\n")
			continue
		case p.ID == currentID:
			b.WriteString(StyleGreen.Render("● ") + Bold(title) + "  " + StyleSage.Render(p.Subtitle) + "\n")
		default:
			b.WriteString(StyleDim.Render("● ") + Bold(title) + "  " + StyleSage.Render(p.Subtitle) + "\n")
		}
		b.WriteString("   " + Dim(p.Description) + "\n")
		for _, l := range p.Lessons {
			b.WriteString(fmt.Sprintf("     %s %s %s\n", lessonIcons[l.Type], l.Title, Dim(l.Duration)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
