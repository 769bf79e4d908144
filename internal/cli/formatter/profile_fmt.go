package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ritmo/internal/domain"
)

var goalLabels = map[domain.Goal]string{
	domain.GoalEnergy:     "Mais energia",
	domain.GoalLightness:  "Sentir-se mais leve",
	domain.GoalBalance:    "Equilíbrio",
	domain.GoalConfidence: "Autoconfiança",
	domain.GoalWeightLoss: "Emagrecer",
}

var rhythmLabels = map[domain.Rhythm]string{
	domain.RhythmCalm:     "Tranquilo",
	domain.RhythmModerate: "Moderado",
	domain.RhythmIntense:  "Intenso",
}

var consistencyLabels = map[domain.Consistency]string{
	domain.ConsistencyStarting:    "Começando",
	domain.ConsistencyBuilding:    "Construindo",
	domain.ConsistencyEstablished: "Estabelecida",
}

var supportLabels = map[domain.SupportLevel]string{
	domain.SupportMinimal:   "Mínimo",
	domain.SupportRegular:   "Regular",
	domain.SupportIntensive: "Intensivo",
}

var challengeLabels = map[domain.Challenge]string{
	domain.ChallengeRoutine:    "Manter a rotina",
	domain.ChallengeMotivation: "Motivação",
	domain.ChallengeKnowledge:  "Saber o que fazer",
	domain.ChallengeTime:       "Falta de tempo",
}

// GoalLabel returns the display label for g, falling back to its code.
func GoalLabel(g domain.Goal) string { return labelOr(goalLabels, g) }

func RhythmLabel(r domain.Rhythm) string { return labelOr(rhythmLabels, r) }

func ConsistencyLabel(c domain.Consistency) string { return labelOr(consistencyLabels, c) }

func SupportLabel(s domain.SupportLevel) string { return labelOr(supportLabels, s) }

func ChallengeLabel(c domain.Challenge) string { return labelOr(challengeLabels, c) }

func labelOr[K ~string](labels map[K]string, k K) string {
	if l, ok := labels[k]; ok {
		return l
	}
	return string(k)
}

func FormatProfile(p *domain.Profile, email string) string {
	var b strings.Builder
	b.WriteString(Header("Perfil") + "\n\n")

	name := p.Name
	if !p.IsOnboarded() {
		name = Dim("(onboarding pendente)")
	}
	morning := "Não"
	if p.MorningPerson {
		morning = "Sim"
	}
	rows := [][2]string{
		{"Nome", name},
		{"E-mail", email},
		{"Objetivo", GoalLabel(p.MainGoal)},
		{"Ritmo", RhythmLabel(p.Rhythm)},
		{"Constância", ConsistencyLabel(p.Consistency)},
		{"Apoio", SupportLabel(p.SupportLevel)},
		{"Matinal", morning},
		{"Desafio", ChallengeLabel(p.CurrentChallenge)},
	}
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("  %-12s %s\n", Dim(r[0]), r[1]))
	}
	return b.String()
}
