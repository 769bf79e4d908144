package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/ritmo/internal/auth"
	"github.com/alexanderramin/ritmo/internal/cli/formatter"
	"github.com/alexanderramin/ritmo/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ritmoHuhTheme returns a huh theme in the formatter palette.
func ritmoHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorSage)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func credentialsForm(title string, email, password *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("E-mail").
				Value(email).
				Validate(validateRequired),
			huh.NewInput().
				Title("Senha").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(validatePassword),
		),
	).WithTheme(ritmoHuhTheme()).WithShowHelp(false)
}

// onboardingAnswers is the form-backed view of a ProfilePatch.
type onboardingAnswers struct {
	Name          string
	Goal          domain.Goal
	Rhythm        domain.Rhythm
	Consistency   domain.Consistency
	Support       domain.SupportLevel
	MorningPerson bool
	Challenge     domain.Challenge
}

func newOnboardingAnswers(p *domain.Profile) *onboardingAnswers {
	return &onboardingAnswers{
		Name:          p.Name,
		Goal:          p.MainGoal,
		Rhythm:        p.Rhythm,
		Consistency:   p.Consistency,
		Support:       p.SupportLevel,
		MorningPerson: p.MorningPerson,
		Challenge:     p.CurrentChallenge,
	}
}

func (o *onboardingAnswers) patch() domain.ProfilePatch {
	return domain.ProfilePatch{
		Name:             domain.Ptr(strings.TrimSpace(o.Name)),
		MainGoal:         domain.Ptr(o.Goal),
		Rhythm:           domain.Ptr(o.Rhythm),
		Consistency:      domain.Ptr(o.Consistency),
		SupportLevel:     domain.Ptr(o.Support),
		MorningPerson:    domain.Ptr(o.MorningPerson),
		CurrentChallenge: domain.Ptr(o.Challenge),
	}
}

func options[T ~string](values []T, label func(T) string) []huh.Option[T] {
	out := make([]huh.Option[T], len(values))
	for i, v := range values {
		out[i] = huh.NewOption(label(v), v)
	}
	return out
}

func onboardingForm(o *onboardingAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Como podemos te chamar?").
				Value(&o.Name).
				Validate(validateName),
			huh.NewSelect[domain.Goal]().
				Title("Qual é o seu principal objetivo?").
				Options(options([]domain.Goal{
					domain.GoalEnergy, domain.GoalLightness, domain.GoalBalance,
					domain.GoalConfidence, domain.GoalWeightLoss,
				}, formatter.GoalLabel)...).
				Value(&o.Goal),
		),
		huh.NewGroup(
			huh.NewSelect[domain.Rhythm]().
				Title("Qual ritmo combina com você?").
				Options(options([]domain.Rhythm{
					domain.RhythmCalm, domain.RhythmModerate, domain.RhythmIntense,
				}, formatter.RhythmLabel)...).
				Value(&o.Rhythm),
			huh.NewSelect[domain.Consistency]().
				Title("Como está sua constância hoje?").
				Options(options([]domain.Consistency{
					domain.ConsistencyStarting, domain.ConsistencyBuilding, domain.ConsistencyEstablished,
				}, formatter.ConsistencyLabel)...).
				Value(&o.Consistency),
			huh.NewSelect[domain.SupportLevel]().
				Title("Quanto apoio você quer?").
				Options(options([]domain.SupportLevel{
					domain.SupportMinimal, domain.SupportRegular, domain.SupportIntensive,
				}, formatter.SupportLabel)...).
				Value(&o.Support),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Você é uma pessoa matinal?").
				Affirmative("Sim").
				Negative("Não").
				Value(&o.MorningPerson),
			huh.NewSelect[domain.Challenge]().
				Title("O que mais te desafia hoje?").
				Options(options([]domain.Challenge{
					domain.ChallengeRoutine, domain.ChallengeMotivation,
					domain.ChallengeKnowledge, domain.ChallengeTime,
				}, formatter.ChallengeLabel)...).
				Value(&o.Challenge),
		),
	).WithTheme(ritmoHuhTheme()).WithShowHelp(false)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func validatePassword(s string) error {
	if len(s) < auth.MinPasswordLength {
		return auth.ErrWeakPassword
	}
	return nil
}

func validateName(s string) error {
	if err := validateRequired(s); err != nil {
		return err
	}
	return domain.ProfilePatch{Name: &s}.Validate()
}
