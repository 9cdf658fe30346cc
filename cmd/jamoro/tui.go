package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jusunglee/jamoro/internal/db"
	"github.com/jusunglee/jamoro/internal/hangul"
	"github.com/jusunglee/jamoro/internal/romanize"
)

type model struct {
	textInput textinput.Model
	repo      db.Repository // nil disables saving
	result    romanize.Result
	err       error
	saved     string
	width     int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)
)

func initialModel(repo db.Repository) model {
	ti := textinput.New()
	ti.Placeholder = "좋아요."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return model{textInput: ti, repo: repo}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.save(), nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.saved = ""

	text := m.textInput.Value()
	if text == "" {
		m.result = romanize.Result{}
		m.err = nil
		return m, cmd
	}

	m.result, m.err = romanize.Romanize(text)
	return m, cmd
}

// save persists the current result to the history store, if one is
// configured and there is a valid result to keep.
func (m model) save() model {
	if m.repo == nil || m.err != nil || m.result.Input == "" {
		return m
	}

	rec, err := m.repo.SaveRomanization(context.Background(), db.SaveRomanizationParams{
		Input:         m.result.Input,
		Roman:         m.result.Roman,
		Jamo:          m.result.Jamo,
		Hangul:        m.result.Hangul,
		AppliedRoman:  m.result.AppliedRoman,
		AppliedJamo:   m.result.AppliedJamo,
		AppliedHangul: m.result.AppliedHangul,
	})
	if err != nil {
		m.err = fmt.Errorf("saving to history: %w", err)
		return m
	}

	m.saved = fmt.Sprintf("saved to history as #%d", rec.ID)
	return m
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("jamoro - Korean romanizer"))
	s.WriteString("\n\n")
	s.WriteString(m.textInput.View())
	s.WriteString("\n\n")

	switch {
	case m.err != nil && errors.Is(m.err, hangul.ErrUnknownRomanization):
		s.WriteString(errorStyle.Render("no valid rule-applied form for this text"))
		s.WriteString("\n")
	case m.err != nil:
		s.WriteString(errorStyle.Render(m.err.Error()))
		s.WriteString("\n")
	case m.result.Input != "":
		s.WriteString(m.renderResult())
	default:
		s.WriteString(subtleStyle.Render("type Korean text to see its romanization"))
		s.WriteString("\n")
	}

	if m.saved != "" {
		s.WriteString(labelStyle.Render(m.saved))
		s.WriteString("\n")
	}

	hint := "esc/ctrl+c=quit"
	if m.repo != nil {
		hint = "enter=save  " + hint
	}
	s.WriteString("\n")
	s.WriteString(subtleStyle.Render(hint))

	return boxStyle.Render(s.String())
}

func (m model) renderResult() string {
	rows := []struct {
		label string
		value string
	}{
		{"Roman", m.result.Roman},
		{"Jamo", m.result.Jamo},
		{"Hangul", m.result.Hangul},
		{"Roman*", m.result.AppliedRoman},
		{"Jamo*", m.result.AppliedJamo},
		{"Hangul*", m.result.AppliedHangul},
	}

	var s strings.Builder
	for _, row := range rows {
		s.WriteString(labelStyle.Render(padLabel(row.label)))
		s.WriteString(" ")
		s.WriteString(valueStyle.Render(row.value))
		s.WriteString("\n")
	}
	s.WriteString("\n")
	s.WriteString(subtleStyle.Render("* after phonological rules"))
	s.WriteString("\n")
	return s.String()
}

func padLabel(label string) string {
	const width = 8
	if len(label) >= width {
		return label
	}
	return label + strings.Repeat(" ", width-len(label))
}
