package cmd

import (
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// cellsDoneMsg carries the orchestrator's running count of fetched grid
// cells into the progress bar.
type cellsDoneMsg int

// progressModel renders one gradient bar for the whole grid search and
// quits on its own once every cell has reported in.
type progressModel struct {
	bar   progress.Model
	total int
	done  int
}

func newProgressBar(total int) progressModel {
	return progressModel{
		bar:   progress.New(progress.WithDefaultGradient()),
		total: total,
	}
}

func (m progressModel) Init() tea.Cmd { return nil }

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {

	case cellsDoneMsg:
		m.done = int(v)
		cmd := m.bar.SetPercent(float64(m.done) / float64(m.total))
		if m.done >= m.total {
			// let the final frame render before exiting
			return m, tea.Batch(cmd, tea.Quit)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.bar.Width = v.Width - 4
		return m, nil

	case progress.FrameMsg:
		b, cmd := m.bar.Update(msg)
		m.bar = b.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	const clearLine = "\r\033[K"
	return clearLine + m.bar.View()
}
