package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dpetrov/lodestar/internal/cli/formatter"
	"github.com/dpetrov/lodestar/internal/domain"
)

// roadmapsLoadedMsg signals that roadmap list data has been loaded.
type roadmapsLoadedMsg struct {
	roadmaps []*domain.Roadmap
	err      error
}

type browserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

var browserKeys = browserKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// roadmapBrowser is a two-level bubbletea view: a navigable roadmap list,
// and a scrollable detail viewport for the selected roadmap.
type roadmapBrowser struct {
	app      *App
	roadmaps []*domain.Roadmap
	cursor   int
	loading  bool
	err      error

	detail   *domain.Roadmap
	viewport viewport.Model
	width    int
	height   int
}

func newRoadmapBrowser(app *App) *roadmapBrowser {
	return &roadmapBrowser{app: app, loading: true}
}

// runRoadmapBrowser starts the interactive roadmap browser and blocks until
// the user quits.
func runRoadmapBrowser(ctx context.Context, app *App) error {
	roadmaps, err := app.Roadmaps.List(ctx)
	if err != nil {
		return err
	}
	if len(roadmaps) == 0 {
		fmt.Println("No roadmaps saved yet. Run 'lodestar plan --save' to create one.")
		return nil
	}

	_, err = tea.NewProgram(newRoadmapBrowser(app), tea.WithAltScreen()).Run()
	return err
}

func (m *roadmapBrowser) Init() tea.Cmd {
	return m.loadRoadmaps()
}

func (m *roadmapBrowser) loadRoadmaps() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		roadmaps, err := app.Roadmaps.List(context.Background())
		return roadmapsLoadedMsg{roadmaps: roadmaps, err: err}
	}
}

func (m *roadmapBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case roadmapsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.roadmaps = msg.roadmaps
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(msg.Width, msg.Height-2)
		if m.detail != nil {
			m.viewport.SetContent(formatter.FormatRoadmap(m.detail))
		}
		return m, nil

	case tea.KeyMsg:
		if m.detail != nil {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *roadmapBrowser) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, browserKeys.Quit), key.Matches(msg, browserKeys.Back):
		return m, tea.Quit
	case key.Matches(msg, browserKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, browserKeys.Down):
		if m.cursor < len(m.roadmaps)-1 {
			m.cursor++
		}
	case key.Matches(msg, browserKeys.Select):
		if m.cursor < len(m.roadmaps) {
			m.detail = m.roadmaps[m.cursor]
			if m.width > 0 {
				m.viewport = viewport.New(m.width, m.height-2)
			}
			m.viewport.SetContent(formatter.FormatRoadmap(m.detail))
		}
	}
	return m, nil
}

func (m *roadmapBrowser) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, browserKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, browserKeys.Back):
		m.detail = nil
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *roadmapBrowser) View() string {
	if m.loading {
		return formatter.Dim("Loading roadmaps...")
	}
	if m.err != nil {
		return formatter.StyleRed.Render("Error: " + m.err.Error())
	}
	if m.detail != nil {
		return m.viewport.View() + "\n" + formatter.Dim("↑/↓ scroll · esc back · q quit")
	}

	var b []byte
	b = append(b, formatter.Header("Roadmaps")...)
	b = append(b, "\n\n"...)
	for i, r := range m.roadmaps {
		line := fmt.Sprintf("%s  %s", formatter.TruncID(r.ID), roadmapLabel(r))
		if i == m.cursor {
			line = formatter.StyleHeader.Render("> ") + formatter.Bold(line)
		} else {
			line = "  " + formatter.StyleFg.Render(line)
		}
		b = append(b, line...)
		b = append(b, '\n')
	}
	b = append(b, '\n')
	b = append(b, formatter.Dim("↑/↓ move · enter open · esc quit")...)
	return string(b)
}

func roadmapLabel(r *domain.Roadmap) string {
	label := fmt.Sprintf("%d units, %d periods", r.TotalUnits, r.TotalPeriods)
	if r.GoalName != "" {
		label = r.GoalName + " — " + label
	}
	return label
}
