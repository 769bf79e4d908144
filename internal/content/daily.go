package content

// Focus is the small action suggested for the day, independent of the
// mission cycle.
type Focus struct {
	Title       string
	Description string
	Duration    string
}

var defaultFocus = Focus{
	Title:       "Seu primeiro passo",
	Description: "Beba um copo de água morna ao acordar. Simples assim.",
	Duration:    "2 min",
}

// TodayFocus returns the focus task for the day.
func TodayFocus() Focus {
	return defaultFocus
}

// Greeting returns the salutation for the given hour of day (0-23).
func Greeting(hour int) string {
	switch {
	case hour < 12:
		return "Bom dia,"
	case hour < 18:
		return "Boa tarde,"
	default:
		return "Boa noite,"
	}
}

// MotivationalMessage picks the line shown under today's focus.
func MotivationalMessage(streak int, focusCompleted bool) string {
	switch {
	case focusCompleted:
		return "Você fez o que precisava ser feito hoje. Isso é tudo que importa."
	case streak == 0:
		return "A jornada começa com um único passo. Hoje é o seu primeiro."
	case streak < 7:
		return "Constância se constrói um dia de cada vez. Continue."
	default:
		return "Você está criando um novo padrão. Seu corpo agradece."
	}
}

// MissionMotto is the central message of the weight-loss view.
const MissionMotto = "Emagrecer é repetir pequenos hábitos todos os dias."

// MissionFooter closes the weight-loss view.
const MissionFooter = "Não é sobre perfeição. É sobre constância."

// ProgressEncouragement closes the progress view.
const ProgressEncouragement = "Progresso não é linear. Alguns dias serão mais fáceis, outros nem tanto. " +
	"O que importa é continuar, um passo de cada vez."
