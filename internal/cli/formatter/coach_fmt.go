package formatter

import "github.com/alexanderramin/ritmo/internal/coach"

// FormatCoachAnswer renders one coach reply.
func FormatCoachAnswer(a coach.Answer) string {
	return StylePurple.Render("coach ") + Wrap(a.Text, 72)
}

// FormatUserLine renders a question typed by the user.
func FormatUserLine(q string) string {
	return Dim("você ") + q
}

// FormatCoachWelcome opens a chat session.
func FormatCoachWelcome(name string) string {
	s := StylePurple.Render("coach ") + Wrap(coach.Welcome(name), 72) + "\n" + Dim(coach.Disclaimer)
	for _, q := range coach.QuickQuestions() {
		s += "\n  " + Dim("• "+q)
	}
	return s
}
