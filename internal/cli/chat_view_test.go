package cli

import (
	"testing"

	"github.com/alexanderramin/ritmo/internal/coach"
	"github.com/alexanderramin/ritmo/internal/teatest"
	"github.com/stretchr/testify/assert"
)

func newChatDriver(t *testing.T, name string) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newChatModel(name), teatest.WithSize(100, 30))
	d.DrainInit()
	return d
}

func chatState(d *teatest.Driver) chatModel {
	return d.Model.(chatModel)
}

func TestChat_WelcomesByName(t *testing.T) {
	d := newChatDriver(t, "Ana")

	assert.Contains(t, d.View(), "Olá, Ana!")
	for _, q := range coach.QuickQuestions() {
		assert.Contains(t, d.View(), q)
	}
}

func TestChat_AnswersQuestion(t *testing.T) {
	d := newChatDriver(t, "Ana")

	d.Submit("Como adaptar minha rotina?")

	m := chatState(d)
	assert.Equal(t, coach.TopicRoutine, m.last.Topic)
	assert.Len(t, m.messages, 3)
	assert.Contains(t, d.View(), "você Como adaptar minha rotina?")
	assert.Empty(t, m.input.Value())
}

func TestChat_BlankInputIgnored(t *testing.T) {
	d := newChatDriver(t, "")

	d.Submit("   ")

	assert.Len(t, chatState(d).messages, 1)
	assert.Contains(t, d.View(), "Olá, "+coach.DefaultName)
}

func TestChat_Clear(t *testing.T) {
	d := newChatDriver(t, "Ana")
	d.Submit("o que comer no jantar")
	d.Submit("/clear")

	assert.Len(t, chatState(d).messages, 1)
	assert.False(t, d.Quitting)
}

func TestChat_QuitCommands(t *testing.T) {
	for _, quit := range []func(d *teatest.Driver){
		func(d *teatest.Driver) { d.Submit("/quit") },
		func(d *teatest.Driver) { d.PressEsc() },
		func(d *teatest.Driver) { d.PressCtrlC() },
	} {
		d := newChatDriver(t, "Ana")
		quit(d)
		assert.True(t, d.Quitting)
	}
}
