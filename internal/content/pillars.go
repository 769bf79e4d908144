// Package content holds the static educational and motivational text shown
// around the daily loop: method pillars, the default daily focus, routine
// suggestions, milestones and greetings.
package content

type LessonType string

const (
	LessonRead   LessonType = "read"
	LessonAction LessonType = "action"
	LessonVideo  LessonType = "video"
)

type Lesson struct {
	ID       string
	Title    string
	Duration string
	Type     LessonType
}

type Pillar struct {
	ID          int
	Title       string
	Subtitle    string
	Description string
	Unlocked    bool
	Lessons     []Lesson
}

var pillars = []Pillar{
	{
		ID:          1,
		Title:       "Hidratação Inteligente",
		Subtitle:    "A base de tudo",
		Description: "Como a água transforma seu metabolismo de dentro pra fora.",
		Unlocked:    true,
		Lessons: []Lesson{
			{ID: "1-1", Title: "Por que hidratação importa", Duration: "3 min", Type: LessonRead},
			{ID: "1-2", Title: "Seu ritual da manhã", Duration: "2 min", Type: LessonAction},
			{ID: "1-3", Title: "Sinais do corpo", Duration: "4 min", Type: LessonRead},
		},
	},
	{
		ID:          2,
		Title:       "Alimentação Consciente",
		Subtitle:    "Sem dieta, com clareza",
		Description: "Entenda o que comer e quando, sem neuras.",
		Unlocked:    true,
		Lessons: []Lesson{
			{ID: "2-1", Title: "Os 4 grupos essenciais", Duration: "5 min", Type: LessonRead},
			{ID: "2-2", Title: "Montando seu prato", Duration: "3 min", Type: LessonAction},
			{ID: "2-3", Title: "Lanches que ajudam", Duration: "4 min", Type: LessonRead},
		},
	},
	{
		ID:          3,
		Title:       "Sono Reparador",
		Subtitle:    "Quando o corpo transforma",
		Description: "Otimize suas noites para acordar renovada.",
	},
	{
		ID:          4,
		Title:       "Movimento Natural",
		Subtitle:    "Sem academia obrigatória",
		Description: "Encontre formas de se mexer que fazem sentido pra você.",
	},
	{
		ID:          5,
		Title:       "Mente Leve",
		Subtitle:    "A chave da constância",
		Description: "Como sua mentalidade influencia seu corpo.",
	},
}

// Pillars returns the method pillars in order. Callers get their own copy.
func Pillars() []Pillar {
	out := make([]Pillar, len(pillars))
	for i, p := range pillars {
		p.Lessons = append([]Lesson(nil), p.Lessons...)
		out[i] = p
	}
	return out
}

// CurrentPillar returns the last unlocked pillar.
func CurrentPillar() Pillar {
	current := pillars[0]
	for _, p := range pillars {
		if p.Unlocked {
			current = p
		}
	}
	return current
}
