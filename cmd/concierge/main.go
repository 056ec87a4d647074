// Command concierge runs the Insightlane chat widget in the terminal.
//
// It is a thin host around the dialogue engine: the engine owns the
// transcript and timers, the TUI only renders snapshots and forwards input.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/insightlane/concierge/internal/config"
	"github.com/insightlane/concierge/internal/convo"
	"github.com/insightlane/concierge/internal/engine"
	"github.com/insightlane/concierge/internal/logging"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	statusStyle    = lipgloss.NewStyle().Faint(true).Italic(true)
	footerStyle    = lipgloss.NewStyle().Faint(true)
	trialStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

func main() {
	configPath := flag.String("config", "concierge.toml", "path to the widget config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "concierge: %v\n", err)
		os.Exit(1)
	}

	// stdout belongs to the TUI, so logs go to a file next to the config
	logger := logging.NewFile(filepath.Join(filepath.Dir(*configPath), "concierge.log"), cfg.Logging.Level)
	defer func() { _ = logger.Sync() }()

	updates := make(chan struct{}, 16)
	eng := engine.New(&engine.Config{
		Locale: cfg.Locale(),
		Timing: cfg.EngineTiming(),
		Logger: logger,
		OnTrialRequest: func() {
			logger.Info("trial requested", zap.String("url", cfg.Widget.TrialURL))
		},
		OnUpdate: func() {
			select {
			case updates <- struct{}{}:
			default:
			}
		},
	})

	if _, err := tea.NewProgram(newModel(eng, cfg, updates), tea.WithAltScreen()).Run(); err != nil {
		eng.Close()
		fmt.Fprintf(os.Stderr, "concierge: %v\n", err)
		os.Exit(1)
	}
}

// refreshMsg tells the TUI the engine mutated the transcript.
type refreshMsg struct{}

type model struct {
	eng      *engine.Engine
	input    textinput.Model
	updates  chan struct{}
	trialURL string
	width    int
}

func newModel(eng *engine.Engine, cfg *config.Config, updates chan struct{}) model {
	ti := textinput.New()
	ti.Placeholder = "Zadaj pytanie…"
	if cfg.Widget.Locale == "en" {
		ti.Placeholder = "Ask a question…"
	}
	ti.CharLimit = 500
	ti.Focus()

	return model{
		eng:      eng,
		input:    ti,
		updates:  updates,
		trialURL: cfg.Widget.TrialURL,
	}
}

func waitForUpdate(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return refreshMsg{}
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForUpdate(m.updates))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case refreshMsg:
		return m, waitForUpdate(m.updates)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			// cancel any in-flight turn before leaving
			m.eng.Close()
			return m, tea.Quit
		case tea.KeyEnter:
			if m.eng.CanSubmit(m.input.Value()) {
				m.eng.Submit(m.input.Value())
				m.input.Reset()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Insightlane Concierge"))
	b.WriteString("\n\n")

	for _, turn := range m.eng.Transcript() {
		switch {
		case turn.Kind == convo.KindStatus:
			b.WriteString(statusStyle.Render("⋯ " + turn.Text))
		case turn.Author == convo.AuthorUser:
			b.WriteString(userStyle.Render("Ty › "))
			b.WriteString(turn.Text)
		default:
			b.WriteString(assistantStyle.Render("Concierge › "))
			b.WriteString(turn.Text)
		}
		b.WriteString("\n\n")
	}

	if m.eng.Context().TrialInterest == convo.TrialYes {
		b.WriteString(trialStyle.Render("→ " + m.trialURL))
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")

	snap := m.eng.Stats()
	footer := fmt.Sprintf("%d turns · esc to quit", snap.TurnCount)
	if m.eng.Pending() {
		footer = "thinking… · " + footer
	}
	b.WriteString(footerStyle.Render(footer))

	return b.String()
}
