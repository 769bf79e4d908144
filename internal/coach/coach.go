// Package coach answers chat questions from a fixed set of canned replies
// selected by keyword. There is no model behind it.
package coach

import (
	"fmt"
	"strings"
)

type Topic string

const (
	TopicMotivation Topic = "motivation"
	TopicRoutine    Topic = "routine"
	TopicFood       Topic = "food"
	TopicWeight     Topic = "weight"
	TopicGeneral    Topic = "general"
)

// DefaultName addresses users who have not told us their name yet.
const DefaultName = "querida"

// Answer is a coach reply and the topic that produced it.
type Answer struct {
	Topic Topic
	Text  string
}

type rule struct {
	topic    Topic
	keywords []string
	reply    func(name string) string
}

// rules are checked in order; the first keyword hit wins.
var rules = []rule{
	{
		topic:    TopicMotivation,
		keywords: []string{"motivação", "ânimo", "desanima"},
		reply: func(name string) string {
			return fmt.Sprintf("%s, é completamente normal ter dias assim. O que diferencia quem transforma de quem desiste "+
				"não é nunca cair — é voltar mais leve. Hoje, foque em uma única coisa simples. Pode ser só beber um copo "+
				"de água. Amanhã, você decide o próximo passo. 💚", name)
		},
	},
	{
		topic:    TopicRoutine,
		keywords: []string{"rotina", "adaptar", "tempo"},
		reply: func(string) string {
			return "Entendo! A rotina precisa caber na sua vida real, não o contrário. Vamos simplificar: escolha apenas " +
				"uma coisa do seu dia de hoje e faça com atenção. O resto pode esperar. Constância vem de fazer pouco bem " +
				"feito, não muito mal feito. 🌿"
		},
	},
	{
		topic:    TopicFood,
		keywords: []string{"comer", "jantar", "almoço", "fome"},
		reply: func(string) string {
			return "Para o jantar, pense assim: metade do prato com vegetais variados, um quarto com proteína (frango, " +
				"peixe, ovo ou leguminosas) e um quarto com carboidrato (arroz, batata). Simples, nutritivo e sem neura. " +
				"O mais importante é comer com calma e atenção. 🥗"
		},
	},
	{
		topic:    TopicWeight,
		keywords: []string{"peso", "emagrecer", "balança"},
		reply: func(name string) string {
			return fmt.Sprintf("%s, aqui focamos em como você se sente, não em números. A balança não conta a história "+
				"completa do seu corpo. Pergunte-se: estou com mais energia? Dormindo melhor? Me sentindo mais leve? "+
				"Esses são os sinais que importam. 💚", name)
		},
	},
}

func generalReply(name string) string {
	return fmt.Sprintf("Ótima pergunta, %s! Baseado no método, o mais importante agora é focar no seu foco de hoje. "+
		"Cada pequeno passo conta. Se precisar de algo mais específico sobre hidratação, alimentação ou rotina, "+
		"me pergunte! Estou aqui pra te guiar. 🌱", name)
}

// Reply answers question for the user called name. Blank questions get an
// empty answer.
func Reply(question, name string) Answer {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" {
		return Answer{}
	}
	name = displayName(name)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return Answer{Topic: r.topic, Text: r.reply(name)}
			}
		}
	}
	return Answer{Topic: TopicGeneral, Text: generalReply(name)}
}

// Welcome is the first message of a chat.
func Welcome(name string) string {
	return fmt.Sprintf("Olá, %s! 💚 Sou sua coach digital. Estou aqui para te ajudar a encontrar clareza no seu "+
		"caminho. O que você precisa hoje?", displayName(name))
}

// Disclaimer reminds users of the limits of the coach.
const Disclaimer = "Posso te orientar sobre o método, rotina e motivação. Para questões médicas, consulte um profissional."

var quickQuestions = []string{
	"O que fazer quando perco a motivação?",
	"Como adaptar minha rotina?",
	"O que comer no jantar?",
}

// QuickQuestions returns the suggested opening questions.
func QuickQuestions() []string {
	return append([]string(nil), quickQuestions...)
}

func displayName(name string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return DefaultName
}
