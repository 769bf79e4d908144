package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ritmo/internal/content"
	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/alexanderramin/ritmo/internal/mission"
)

// TodayView is everything the today screen shows.
type TodayView struct {
	Hour    int
	Profile *domain.Profile
	State   *domain.DailyState
	Focus   content.Focus
}

func FormatToday(v TodayView) string {
	var b strings.Builder

	b.WriteString(StyleDim.Render(content.Greeting(v.Hour)) + "\n")
	b.WriteString(Bold(v.Profile.Name) + "\n\n")

	streak := v.State.Streak
	b.WriteString(fmt.Sprintf("%s %d %s\n\n",
		StyleYellow.Render("🔥"), streak, Pluralize(streak, "dia seguido", "dias seguidos")))

	focus := fmt.Sprintf("%s %s\n%s\n%s",
		Check(v.State.FocusCompleted), Bold(v.Focus.Title),
		v.Focus.Description,
		Dim(v.Focus.Duration))
	if v.State.FocusCompleted {
		focus += "\n" + StyleGreen.Render("Feito por hoje")
	} else {
		focus += "\n" + Dim("ritmo focus done  para marcar como feito")
	}
	b.WriteString(RenderBox("Foco de hoje", focus))
	b.WriteString("\n\n")

	b.WriteString(StyleSage.Render(content.MotivationalMessage(streak, v.State.FocusCompleted)))
	b.WriteString("\n\n")

	if m, err := mission.ForDay(v.State.MissionDay); err == nil {
		b.WriteString(fmt.Sprintf("%s Missão do dia %d: %s\n",
			Check(v.State.MissionCompleted), m.Day, m.Title))
	}
	if v.State.Notes != nil {
		b.WriteString(Dim("Nota: ") + *v.State.Notes + "\n")
	}
	return b.String()
}
