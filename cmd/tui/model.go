package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chuckfs/fileintel/app"
	"github.com/chuckfs/fileintel/models"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	inputStyle = lipgloss.NewStyle().
			Margin(1, 0, 1, 0)
	tableStyle = lipgloss.NewStyle().
			Margin(0, 0, 1, 0)
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

type model struct {
	textInput textinput.Model
	table     table.Model
	searcher  *app.Searcher
	results   []models.SearchResult
	status    string
	err       error
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	var enter = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("⏎", "search/open"),
	)
	var toggleFocus = key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "toggle focus"),
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, enter):
			if m.textInput.Focused() {
				query := m.textInput.Value()
				if query != "" {
					resp, err := m.searcher.Search(context.Background(), query, nil, 100)
					if err != nil {
						m.err = err
						return m, nil
					}
					m.err = nil
					m.results = resp.Results
					m.status = fmt.Sprintf("%d results in %.3fs", resp.TotalFound, resp.SearchTime)
					m.updateTable()
					m.textInput.Blur()
					m.table.Focus()
				}
				return m, nil
			} else if m.table.Focused() && len(m.results) > 0 {
				selected := m.table.Cursor()
				if selected < len(m.results) {
					if err := openFile(m.results[selected].Path); err != nil {
						m.err = err
					}
				}
				return m, nil
			}
		case key.Matches(msg, toggleFocus):
			if m.textInput.Focused() {
				m.textInput.Blur()
				m.table.Focus()
			} else {
				m.table.Blur()
				m.textInput.Focus()
			}
			return m, nil
		case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
			return m, tea.Quit
		}

		if m.textInput.Focused() {
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}
		if m.table.Focused() {
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		var tiCmd, tCmd tea.Cmd
		m.textInput, tiCmd = m.textInput.Update(msg)
		m.table, tCmd = m.table.Update(msg)
		return m, tea.Batch(tiCmd, tCmd)

	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(msg.Height - 9)
		return m, nil
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(inputStyle.Render(m.textInput.View()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(fmt.Sprintf("Error: %v\n", m.err))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
		if m.status != "" {
			b.WriteString(statusStyle.Render(m.status))
			b.WriteString("\n")
		}
	}

	b.WriteString("\nPress Enter to search (in input) or open file (in table), Tab to toggle focus, Esc to quit.\n")

	return baseStyle.Render(b.String())
}

func (m *model) updateTable() {
	rows := []table.Row{}
	for _, result := range m.results {
		rows = append(rows, table.Row{
			result.Name,
			formatSize(result.Size),
			result.Category,
			fmt.Sprintf("%.2f", result.RelevanceScore),
		})
	}
	m.table.SetRows(rows)
}
