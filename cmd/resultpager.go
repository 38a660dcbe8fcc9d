// Copyright (c) 2025 horeilly
//
// This software is licensed under the MIT License.
// See the LICENSE file in the root of the repository for details.

package cmd

import (
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/horeilly/qdl-tee-times/pkg/models"
	"github.com/horeilly/qdl-tee-times/pkg/output"
)

const recordsPerPage = 18 // rows per page

type pagerModel struct {
	lines     []string // fully-rendered record strings
	paginator paginator.Model
}

func newPagerModel(lines []string) pagerModel {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = recordsPerPage
	p.InactiveDot = "·"
	p.ActiveDot = "●"
	p.SetTotalPages(len(lines))

	return pagerModel{lines: lines, paginator: p}
}

func (m pagerModel) Init() tea.Cmd { return nil }

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c", "enter":
			return m, tea.Quit
		}
	}

	// pass input to paginator (h/l, space, left/right, etc.)
	var cmd tea.Cmd
	m.paginator, cmd = m.paginator.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if len(m.lines) == 0 {
		return "No available tee times\n"
	}

	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render(" Available Tee Times ") + "\n\n")

	// slice for the current page
	start, end := m.paginator.GetSliceBounds(len(m.lines))
	for _, l := range m.lines[start:end] {
		b.WriteString("    • " + l + "\n")
	}

	b.WriteString("\n  " + m.paginator.View())

	help := controlStyle.Render("\n\n  h/l ←/→ page • q/enter: quit\n")
	b.WriteString(help)

	return b.String()
}

// pageRecords shows the result set in an interactive pager.
func pageRecords(records []models.TeeTimeRecord) error {
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = output.Line(r)
	}

	p := tea.NewProgram(newPagerModel(lines))
	_, err := p.Run()
	return err
}
