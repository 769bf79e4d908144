package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/ritmo/internal/content"
	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/alexanderramin/ritmo/internal/mission"
)

// UpcomingCount is how many following days the mission view previews.
const UpcomingCount = 3

// FormatMission renders the weight-loss view for today's row.
func FormatMission(state *domain.DailyState) string {
	m, err := mission.ForDay(state.MissionDay)
	if err != nil {
		return StyleRed.Render(err.Error()) + "\n"
	}
	var b strings.Builder

	b.WriteString(Header("Emagrecimento") + "\n")
	b.WriteString(StyleSage.Render(content.MissionMotto) + "\n\n")

	b.WriteString(fmt.Sprintf("Dia %s de %d\n", Bold(strconv.Itoa(m.Day)), mission.CycleLength))
	b.WriteString(RenderProgress(mission.CycleProgress(m.Day), 20) + "\n")
	b.WriteString(PhaseStyle(m.Phase).Render(m.Phase.Label()) + "\n\n")

	body := m.Title + "\n" + Dim(m.Description)
	if state.MissionCompleted {
		body += "\n\n" + Success("Missão concluída")
	} else {
		body += "\n\n" + Dim("ritmo mission done  quando terminar")
	}
	b.WriteString(RenderBox("Missão de hoje", body))
	b.WriteString("\n\n")

	if next := mission.Upcoming(m.Day, UpcomingCount); len(next) > 0 {
		b.WriteString(Bold("Próximos dias") + "\n")
		for _, n := range next {
			b.WriteString(fmt.Sprintf("  %s %s\n", Dim(fmt.Sprintf("Dia %2d", n.Day)), n.Title))
		}
		b.WriteString("\n")
	}
	b.WriteString(Dim(content.MissionFooter) + "\n")
	return b.String()
}

// FormatMissionList renders the whole cycle, marking the current day.
func FormatMissionList(currentDay int, currentDone bool) string {
	var rows [][]string
	for _, m := range mission.All() {
		marker := " "
		switch {
		case m.Day < currentDay:
			marker = Dim("·")
		case m.Day == currentDay:
			marker = Check(currentDone)
		}
		day := strconv.Itoa(m.Day)
		if m.Day == currentDay {
			day = Bold(day)
		}
		rows = append(rows, []string{marker, day, PhaseStyle(m.Phase).Render(string(m.Phase)), m.Title})
	}
	return RenderTable([]string{"", "DIA", "FASE", "MISSÃO"}, rows)
}

// FormatMissionCompleted renders the one-time completion feedback.
func FormatMissionCompleted(day int, message string) string {
	return RenderBox("", Success(fmt.Sprintf("Dia %d concluído", day))+"\n\n"+StyleSage.Render(message)) + "\n"
}
