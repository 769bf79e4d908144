package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ritmo/internal/content"
	"github.com/alexanderramin/ritmo/internal/service"
)

// FormatRoutine renders the current week with its themes and the
// time-of-day suggestions.
func FormatRoutine(week []service.WeekDay) string {
	var b strings.Builder
	b.WriteString(Header("Sua rotina") + "\n\n")

	for _, d := range week {
		wd := d.Date.Weekday()
		label := fmt.Sprintf("%-4s %02d", content.WeekdayShort(wd), d.Date.Day)
		theme := content.WeeklyFocus(wd)
		switch {
		case d.IsToday:
			b.WriteString(fmt.Sprintf("%s %s  %s\n", StyleGreen.Render("▸"), Bold(label), Bold(theme)))
		case d.IsFuture:
			b.WriteString(fmt.Sprintf("  %s  %s\n", Dim(label), Dim(theme)))
		default:
			b.WriteString(fmt.Sprintf("  %s  %s %s\n", label, theme, Check(d.FocusCompleted || d.MissionCompleted)))
		}
	}

	b.WriteString("\n" + Bold("Ao longo do dia") + "\n")
	for _, s := range content.TimeSuggestions() {
		line := fmt.Sprintf("  %-6s %s %s", s.Period, s.Suggestion, Dim("("+s.Duration+")"))
		if s.Optional {
			line += Dim(" opcional")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
