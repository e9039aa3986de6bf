package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/wjlenhart/minLPsolver/pkg/check"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// violationModel is the bubbletea model for browsing constraint violations.
type violationModel struct {
	report *check.Report
	cursor int
	height int
	offset int
}

// newViolationModel creates a violation browser for the given report.
func newViolationModel(report *check.Report) violationModel {
	return violationModel{
		report: report,
		height: 15,
	}
}

func (m violationModel) Init() tea.Cmd {
	return nil
}

func (m violationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.report.Violations)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m violationModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Constraint Violations"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.report.Violations) {
		end = len(m.report.Violations)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		v := m.report.Violations[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		detail := v.Expression
		if detail == "" {
			detail = v.Description
		}
		rows = append(rows, []string{cursor, v.Type, strconv.Itoa(v.Index), detail, v.Violation})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Kind", "Row", "Constraint", "Violation").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.offset+row == m.cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	// Detail pane for the selected violation.
	if m.cursor < len(m.report.Violations) {
		v := m.report.Violations[m.cursor]
		if v.LHS != nil && v.RHS != nil {
			b.WriteString(listDimStyle.Render(fmt.Sprintf("  lhs %g  rhs %g", *v.LHS, *v.RHS)))
			b.WriteString("\n")
		}
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.report.Violations))))

	return b.String()
}
