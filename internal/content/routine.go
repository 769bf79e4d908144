package content

import "time"

// TimeSuggestion is a small habit tied to a period of the day.
type TimeSuggestion struct {
	Period     string
	Suggestion string
	Duration   string
	Optional   bool
}

var timeSuggestions = []TimeSuggestion{
	{Period: "Manhã", Suggestion: "Água com limão ao acordar", Duration: "2 min"},
	{Period: "Tarde", Suggestion: "Lanche com proteína", Duration: "10 min", Optional: true},
	{Period: "Noite", Suggestion: "Preparar ambiente para dormir", Duration: "5 min", Optional: true},
}

// TimeSuggestions returns the routine suggestions in period order.
func TimeSuggestions() []TimeSuggestion {
	return append([]TimeSuggestion(nil), timeSuggestions...)
}

// weeklyFocus maps each weekday to the focus theme of the routine plan.
var weeklyFocus = map[time.Weekday]string{
	time.Monday:    "Hidratação matinal",
	time.Tuesday:   "Café da manhã nutritivo",
	time.Wednesday: "Caminhada leve",
	time.Thursday:  "Seu primeiro passo",
	time.Friday:    "Preparação do jantar",
	time.Saturday:  "Dia de descanso ativo",
	time.Sunday:    "Reflexão semanal",
}

// WeeklyFocus returns the routine theme for a weekday.
func WeeklyFocus(day time.Weekday) string {
	return weeklyFocus[day]
}

var weekdayShort = [...]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// WeekdayShort returns the three-letter Portuguese weekday label.
func WeekdayShort(day time.Weekday) string {
	return weekdayShort[day]
}
