package cli

import (
	"strings"

	"github.com/alexanderramin/ritmo/internal/cli/formatter"
	"github.com/alexanderramin/ritmo/internal/coach"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// chromeHeight is the number of rows below the transcript.
const chromeHeight = 2

// chatModel is the coach conversation: a scrolling transcript over a single
// line input.
type chatModel struct {
	name       string
	input      textinput.Model
	transcript viewport.Model
	messages   []string
	last       coach.Answer
}

func newChatModel(name string) chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.Placeholder = "Pergunte algo ou /quit"
	ti.CharLimit = 500

	m := chatModel{
		name:       name,
		input:      ti,
		transcript: viewport.New(80, 20),
	}
	m.messages = append(m.messages, formatter.FormatCoachWelcome(name))
	m.refresh()
	return m
}

func (m *chatModel) refresh() {
	m.transcript.SetContent(strings.Join(m.messages, "\n\n"))
	m.transcript.GotoBottom()
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.transcript.Width = msg.Width
		m.transcript.Height = max(msg.Height-chromeHeight, 1)
		m.input.Width = max(msg.Width-8, 10)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if text == "" {
				return m, nil
			}
			return m.handleInput(text)
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.transcript, cmd = m.transcript.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) handleInput(text string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(text) {
	case "/quit", "/exit", "/q":
		return m, tea.Quit
	case "/clear":
		m.messages = m.messages[:1]
		m.refresh()
		return m, nil
	}

	m.last = coach.Reply(text, m.name)
	m.messages = append(m.messages, formatter.FormatUserLine(text), formatter.FormatCoachAnswer(m.last))
	m.refresh()
	return m, nil
}

func (m chatModel) View() string {
	var b strings.Builder
	b.WriteString(m.transcript.View())
	b.WriteString("\n")
	b.WriteString(formatter.StylePurple.Render("você") + formatter.Dim("> "))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(formatter.Dim("enter enviar · pgup/pgdn rolar · esc sair"))
	return b.String()
}
