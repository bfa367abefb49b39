package ui

import (
	"strconv"
	"strings"

	"fleetd/network"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type responseMsg struct {
	Text string
	Err  error
}

// ResponseViewModel looks up a stored response by command id.
type ResponseViewModel struct {
	Client *network.Client
	Input  textinput.Model
	Text   string
	Err    error
}

func NewResponseViewModel(client *network.Client) ResponseViewModel {
	in := textinput.New()
	in.Placeholder = "command id"
	in.CharLimit = 10
	in.Focus()
	return ResponseViewModel{Client: client, Input: in}
}

func (m ResponseViewModel) fetch() tea.Cmd {
	raw := m.Input.Value()
	return func() tea.Msg {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return responseMsg{Err: err}
		}
		text, err := m.Client.FetchResponse(uint(id))
		return responseMsg{Text: text, Err: err}
	}
}

func (m ResponseViewModel) Update(msg tea.Msg) (ResponseViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			return m, m.fetch()
		}
	case responseMsg:
		m.Text, m.Err = msg.Text, msg.Err
		return m, nil
	}
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m ResponseViewModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Command Response") + "\n\n")
	b.WriteString(m.Input.View() + "\n\n")
	b.WriteString(blurredStyle.Render("enter fetch · esc back"))
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	if m.Text != "" {
		b.WriteString("\n\n" + m.Text)
	}
	return b.String()
}
