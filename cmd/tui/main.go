package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/chuckfs/fileintel/app"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	flag.Parse()

	cfg := app.DefaultConfig()
	if *configPath != "" {
		loaded, err := app.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	var history *app.History
	if h, err := app.NewHistory(cfg.History.DBPath); err == nil {
		history = h
		defer history.Close()
	}

	searcher := app.NewSearcher(cfg, history)

	fd := os.Stdout.Fd()
	width, _, err := term.GetSize(fd)
	if err != nil {
		width = 100
	}

	sizeCol := 10
	categoryCol := 14
	scoreCol := 7
	nameCol := width - sizeCol - categoryCol - scoreCol - 6
	if nameCol < 20 {
		nameCol = 20
	}

	ti := textinput.New()
	ti.Placeholder = "Describe what you're looking for..."
	ti.Focus()
	ti.Width = 60

	columns := []table.Column{
		{Title: "Name", Width: nameCol},
		{Title: "Size", Width: sizeCol},
		{Title: "Category", Width: categoryCol},
		{Title: "Score", Width: scoreCol},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows([]table.Row{}),
		table.WithHeight(12),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)

	m := model{
		textInput: ti,
		table:     t,
		searcher:  searcher,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting program: %v\n", err)
		os.Exit(1)
	}
}
