package ui

import (
	"fmt"
	"strings"

	"fleetd/network"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type enqueuedMsg struct {
	CommandID uint
	Err       error
}

// CommandFormModel collects an agent name and a command payload and
// queues it on submit.
type CommandFormModel struct {
	Client  *network.Client
	Inputs  []textinput.Model
	Focused int
	Status  string
	Err     error
}

func NewCommandFormModel(client *network.Client, agentName string) CommandFormModel {
	name := textinput.New()
	name.Placeholder = "agent name"
	name.SetValue(agentName)
	name.CharLimit = 191

	cmd := textinput.New()
	cmd.Placeholder = "e.g. uptime"
	cmd.CharLimit = 4096

	m := CommandFormModel{Client: client, Inputs: []textinput.Model{name, cmd}}
	if agentName != "" {
		m.Focused = 1
	}
	m.Inputs[m.Focused].Focus()
	return m
}

func (m CommandFormModel) submit() tea.Cmd {
	name := m.Inputs[0].Value()
	text := m.Inputs[1].Value()
	return func() tea.Msg {
		id, err := m.Client.Enqueue(name, text)
		return enqueuedMsg{CommandID: id, Err: err}
	}
}

func (m CommandFormModel) Update(msg tea.Msg) (CommandFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			m.Inputs[m.Focused].Blur()
			m.Focused = (m.Focused + 1) % len(m.Inputs)
			m.Inputs[m.Focused].Focus()
			return m, nil
		case "enter":
			return m, m.submit()
		}
	case enqueuedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		m.Status = fmt.Sprintf("queued as command %d", msg.CommandID)
		m.Inputs[1].SetValue("")
		return m, nil
	}
	var cmd tea.Cmd
	m.Inputs[m.Focused], cmd = m.Inputs[m.Focused].Update(msg)
	return m, cmd
}

func (m CommandFormModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Send Command") + "\n\n")
	labels := []string{"Agent", "Command"}
	for i, in := range m.Inputs {
		label := labels[i]
		if i == m.Focused {
			b.WriteString(focusedStyle.Render("> "+label) + "\n")
		} else {
			b.WriteString(blurredStyle.Render("  "+label) + "\n")
		}
		b.WriteString(in.View() + "\n\n")
	}
	b.WriteString(blurredStyle.Render("tab switch field · enter queue · esc back"))
	if m.Status != "" {
		b.WriteString("\n" + statusMessageStyle(m.Status))
	}
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
