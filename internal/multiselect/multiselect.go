// Package multiselect is a reusable tag-picker widget: a free-text query
// filters a fixed option list, chosen values render as removable tags.
// The widget is controlled — it never owns the selected set; additions
// and removals flow through callbacks that the parent applies to its own
// state and mirrors back via SetSelected.
package multiselect

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxVisible = 6

// Candidates returns the options offered for the given query: an option
// is shown iff it case-insensitively contains the query and is not
// already selected. Order follows the option list.
func Candidates(options, selected []string, query string) []string {
	q := strings.ToLower(query)
	chosen := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		chosen[s] = struct{}{}
	}
	var out []string
	for _, opt := range options {
		if _, ok := chosen[opt]; ok {
			continue
		}
		if strings.Contains(strings.ToLower(opt), q) {
			out = append(out, opt)
		}
	}
	return out
}

// Model is the widget state. OnAdd and OnRemove report selection changes
// to the owning form.
type Model struct {
	Label    string
	OnAdd    func(value string)
	OnRemove func(value string)

	input    textinput.Model
	options  []string
	selected []string
	open     bool

	labelStyle lipgloss.Style
	itemStyle  lipgloss.Style
	firstStyle lipgloss.Style
	chipStyle  lipgloss.Style
}

// New creates a widget over a fixed option list.
func New(label, placeholder string, options []string) Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Width = 32

	return Model{
		Label:      label,
		input:      ti,
		options:    options,
		labelStyle: lipgloss.NewStyle().Bold(true),
		itemStyle:  lipgloss.NewStyle().PaddingLeft(2),
		firstStyle: lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("205")),
		chipStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1).
			MarginRight(1),
	}
}

// SetSelected mirrors the parent-owned selection into the widget.
func (m *Model) SetSelected(selected []string) {
	m.selected = selected
}

// Selected returns the mirrored selection.
func (m Model) Selected() []string { return m.selected }

// SetOptions replaces the candidate vocabulary.
func (m *Model) SetOptions(options []string) {
	m.options = options
}

// Query returns the current free-text query.
func (m Model) Query() string { return m.input.Value() }

// Focus gives the widget keyboard focus.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur drops focus and dismisses the suggestion list without altering the
// selection — the terminal analogue of clicking outside the widget.
func (m *Model) Blur() {
	m.input.Blur()
	m.open = false
}

// Focused reports whether the widget has keyboard focus.
func (m Model) Focused() bool { return m.input.Focused() }

// Update handles one message. Enter accepts the first offered candidate,
// clears the query, and closes the list. Esc closes the list. Backspace
// on an empty query removes the most recently added tag.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.input.Focused() {
		switch key.String() {
		case "enter":
			candidates := Candidates(m.options, m.selected, m.input.Value())
			if len(candidates) > 0 {
				if m.OnAdd != nil {
					m.OnAdd(candidates[0])
				}
				m.input.SetValue("")
			}
			m.open = false
			return m, nil
		case "esc":
			m.open = false
			return m, nil
		case "backspace":
			if m.input.Value() == "" && len(m.selected) > 0 {
				if m.OnRemove != nil {
					m.OnRemove(m.selected[len(m.selected)-1])
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.open = true
	}
	return m, cmd
}

// View renders the label, input, open suggestion list, and selected tags.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.labelStyle.Render(m.Label))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.open && m.input.Focused() {
		candidates := Candidates(m.options, m.selected, m.input.Value())
		if len(candidates) > maxVisible {
			candidates = candidates[:maxVisible]
		}
		for i, c := range candidates {
			if i == 0 && m.input.Value() != "" {
				b.WriteString(m.firstStyle.Render("> " + c))
			} else {
				b.WriteString(m.itemStyle.Render(c))
			}
			b.WriteString("\n")
		}
	}

	if len(m.selected) > 0 {
		chips := make([]string, len(m.selected))
		for i, s := range m.selected {
			chips[i] = m.chipStyle.Render(s + " ×")
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chips...))
		b.WriteString("\n")
	}

	return b.String()
}
