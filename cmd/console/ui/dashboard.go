package ui

import (
	"fmt"
	"strings"

	"fleetd/backend/app/dto"
	"fleetd/network"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type agentsMsg struct {
	Agents []dto.AgentEntry
	Err    error
}

func refreshAgents(client *network.Client) tea.Cmd {
	return func() tea.Msg {
		agents, err := client.ListAgents()
		return agentsMsg{Agents: agents, Err: err}
	}
}

type DashboardModel struct {
	Client *network.Client
	Table  table.Model
	Err    error
}

func NewDashboardModel(client *network.Client, height int) DashboardModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Address", Width: 18},
		{Title: "Status", Width: 8},
		{Title: "Freq", Width: 6},
		{Title: "Ping", Width: 10},
		{Title: "Last Checkin", Width: 20},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 5)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("62")).
		Bold(false)
	t.SetStyles(s)
	return DashboardModel{Client: client, Table: t}
}

func (m DashboardModel) Init() tea.Cmd { return refreshAgents(m.Client) }

// SelectedAgent returns the highlighted agent name, if any.
func (m DashboardModel) SelectedAgent() string {
	row := m.Table.SelectedRow()
	if len(row) == 0 {
		return ""
	}
	return row[0]
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, refreshAgents(m.Client)
		}
	case agentsMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		rows := make([]table.Row, 0, len(msg.Agents))
		for _, a := range msg.Agents {
			last := "never"
			if a.LastCheckin != nil {
				last = a.LastCheckin.Format("2006-01-02 15:04:05")
			}
			rows = append(rows, table.Row{a.Name, a.Address, a.Status, fmt.Sprintf("%d", a.Freq), a.Ping, last})
		}
		m.Table.SetRows(rows)
	}
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m DashboardModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Fleet - Agents") + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("r refresh · c send command · v view response · q quit"))
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
