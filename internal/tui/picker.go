// Package tui provides the interactive terminal UI for upstream selection.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"headrev/internal/registry"
)

var ErrCancelled = errors.New("selection cancelled")

type pickerModel struct {
	all       []registry.Upstream
	filtered  []registry.Upstream
	input     textinput.Model
	cursor    int
	choice    registry.Upstream
	done      bool
	cancelled bool
	width     int
	height    int
}

// SelectUpstream shows a single-select picker over the configured
// upstreams and returns the chosen one.
func SelectUpstream(items []registry.Upstream) (registry.Upstream, error) {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "filter upstreams"
	input.Focus()

	model := pickerModel{
		all:      items,
		filtered: items,
		input:    input,
	}

	program := tea.NewProgram(model)
	result, err := program.Run()
	if err != nil {
		return registry.Upstream{}, err
	}

	final := result.(pickerModel)
	if final.cancelled {
		return registry.Upstream{}, ErrCancelled
	}
	return final.choice, nil
}

func (m pickerModel) Init() tea.Cmd {
	return tea.RequestBackgroundColor
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.BackgroundColorMsg:
		appStyles = newStyles()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "up", "ctrl+k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+j":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if len(m.filtered) == 0 {
				return m, nil
			}
			m.choice = m.filtered[clampCursor(m.cursor, len(m.filtered))]
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filtered = FilterUpstreams(strings.TrimSpace(m.input.Value()), m.all)
	m.cursor = clampCursor(m.cursor, len(m.filtered))
	return m, cmd
}

func (m pickerModel) View() tea.View {
	lines := []string{
		getStyles().SelectedStyle.Render("Pick an upstream"),
		getStyles().SearchInputStyle.Render(m.input.View()),
		"",
	}

	if len(m.filtered) == 0 {
		lines = append(lines, getStyles().SubtleStyle.Render("  no upstreams match"))
	}
	for i, u := range m.filtered {
		row := fmt.Sprintf("  %s  %s", u.Name, getStyles().SubtleStyle.Render(u.URL))
		if i == m.cursor {
			row = getStyles().SelectedStyle.Render(fmt.Sprintf("> %s  %s", u.Name, u.URL))
		}
		lines = append(lines, row)
	}

	lines = append(lines, "", getStyles().FooterStyle.Render("Enter select • Esc cancel"))

	v := tea.NewView("")
	v.SetContent(getStyles().BorderStyle.Render(strings.Join(lines, "\n")))
	return v
}

func clampCursor(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}
