package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ritmo/internal/content"
	"github.com/alexanderramin/ritmo/internal/mission"
	"github.com/alexanderramin/ritmo/internal/service"
)

func FormatProgress(sum *service.ProgressSummary) string {
	var b strings.Builder

	b.WriteString(Header("Seu progresso") + "\n\n")

	stats := [][2]string{
		{"Sequência atual", fmt.Sprintf("%d %s", sum.Streak, Pluralize(sum.Streak, "dia", "dias"))},
		{"Dia do ciclo", fmt.Sprintf("%d de %d", sum.MissionDay, mission.CycleLength)},
		{"Missões concluídas", fmt.Sprintf("%d", sum.CompletedDays)},
		{"Maior sequência", fmt.Sprintf("%d", sum.LongestStreak)},
		{"Check-ins", fmt.Sprintf("%d", sum.CheckIns)},
	}
	for _, s := range stats {
		b.WriteString(fmt.Sprintf("  %-20s %s\n", s[0], Bold(s[1])))
	}
	b.WriteString("\n  " + RenderProgress(sum.CycleProgress, 24) + "\n\n")

	b.WriteString(Bold("Esta semana") + "\n  ")
	b.WriteString(FormatWeekStrip(sum.Week))
	b.WriteString("\n\n")

	b.WriteString(Bold("Conquistas") + "\n")
	for _, m := range sum.Milestones {
		b.WriteString("  " + formatMilestone(m) + "\n")
	}
	b.WriteString("\n" + Dim(Wrap(content.ProgressEncouragement, 60)) + "\n")
	return b.String()
}

func formatMilestone(m content.Milestone) string {
	if m.Achieved {
		return fmt.Sprintf("%s %s %s", StyleYellow.Render("★"), Bold(m.Title), Dim(m.Description))
	}
	return Dim(fmt.Sprintf("☆ %s  %s", m.Title, m.Description))
}

// FormatWeekStrip renders the Monday-to-Sunday strip used by the progress
// and routine views.
func FormatWeekStrip(week []service.WeekDay) string {
	cells := make([]string, 0, len(week))
	for _, d := range week {
		label := content.WeekdayShort(d.Date.Weekday())
		var mark string
		switch {
		case d.IsFuture:
			mark = Dim("·")
		case d.MissionCompleted:
			mark = StyleGreen.Render("✓")
		case d.IsToday:
			mark = StyleYellow.Render("○")
		default:
			mark = StyleDim.Render("✗")
		}
		if d.IsToday {
			label = Bold(label)
		}
		cells = append(cells, label+" "+mark)
	}
	return strings.Join(cells, "  ")
}
