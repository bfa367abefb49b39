package ui

import (
	"fleetd/network"

	tea "github.com/charmbracelet/bubbletea"
)

type view int

const (
	viewDashboard view = iota
	viewCommandForm
	viewResponse
)

// RootModel owns the active view and routes messages to it.
type RootModel struct {
	Client    *network.Client
	Active    view
	Dashboard DashboardModel
	Form      CommandFormModel
	Response  ResponseViewModel
	Height    int
}

func NewRootModel(client *network.Client) RootModel {
	return RootModel{
		Client:    client,
		Active:    viewDashboard,
		Dashboard: NewDashboardModel(client, 24),
	}
}

func (m RootModel) Init() tea.Cmd { return m.Dashboard.Init() }

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Height = msg.Height
		m.Dashboard = NewDashboardModel(m.Client, msg.Height)
		return m, m.Dashboard.Init()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.Active != viewDashboard {
				m.Active = viewDashboard
				return m, refreshAgents(m.Client)
			}
		}
		if m.Active == viewDashboard {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "c":
				m.Form = NewCommandFormModel(m.Client, m.Dashboard.SelectedAgent())
				m.Active = viewCommandForm
				return m, nil
			case "v":
				m.Response = NewResponseViewModel(m.Client)
				m.Active = viewResponse
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.Active {
	case viewCommandForm:
		m.Form, cmd = m.Form.Update(msg)
	case viewResponse:
		m.Response, cmd = m.Response.Update(msg)
	default:
		m.Dashboard, cmd = m.Dashboard.Update(msg)
	}
	return m, cmd
}

func (m RootModel) View() string {
	switch m.Active {
	case viewCommandForm:
		return docStyle.Render(m.Form.View())
	case viewResponse:
		return docStyle.Render(m.Response.View())
	default:
		return docStyle.Render(m.Dashboard.View())
	}
}
