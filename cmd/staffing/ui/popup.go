package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/refdata"
	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/staging"
)

// assignmentPopup is the "add project assignment" overlay. A project name
// matching the catalog references the existing project; any other name
// stages a project creation.
type assignmentPopup struct {
	catalog *refdata.Catalog

	project textinput.Model
	role    textinput.Model
	alloc   textinput.Model
	start   textinput.Model
	end     textinput.Model

	active bool
	focus  int

	styles Styles
}

const popupFields = 6

func newAssignmentPopup(catalog *refdata.Catalog) *assignmentPopup {
	project := textinput.New()
	project.Placeholder = "Project name..."

	role := textinput.New()
	role.Placeholder = "Role, e.g. Backend"

	alloc := textinput.New()
	alloc.Placeholder = "100"
	alloc.CharLimit = 4

	start := textinput.New()
	start.Placeholder = "YYYY-MM-DD"
	start.CharLimit = 10

	end := textinput.New()
	end.Placeholder = "YYYY-MM-DD"
	end.CharLimit = 10

	return &assignmentPopup{
		catalog: catalog,
		project: project,
		role:    role,
		alloc:   alloc,
		start:   start,
		end:     end,
		active:  true,
		styles:  DefaultStyles(),
	}
}

// Focus gives the first popup field keyboard focus.
func (p *assignmentPopup) Focus() tea.Cmd {
	return p.project.Focus()
}

// Update handles one key. It reports done=true when the popup closed;
// add is non-nil when the user confirmed the staged assignment.
func (p *assignmentPopup) Update(msg tea.KeyMsg) (done bool, add *staging.AssignmentAddition, cmd tea.Cmd) {
	switch msg.String() {
	case "esc":
		return true, nil, nil
	case "tab", "enter":
		if msg.String() == "enter" && p.focus == popupFields-1 {
			return true, p.build(), nil
		}
		p.setFocus((p.focus + 1) % popupFields)
		return false, nil, nil
	case "shift+tab":
		p.setFocus((p.focus + popupFields - 1) % popupFields)
		return false, nil, nil
	case " ":
		if p.focus == 3 {
			p.active = !p.active
			return false, nil, nil
		}
	}

	switch p.focus {
	case 0:
		p.project, cmd = p.project.Update(msg)
	case 1:
		p.role, cmd = p.role.Update(msg)
	case 2:
		p.alloc, cmd = p.alloc.Update(msg)
	case 4:
		p.start, cmd = p.start.Update(msg)
	case 5:
		p.end, cmd = p.end.Update(msg)
	}
	return false, nil, cmd
}

func (p *assignmentPopup) setFocus(i int) {
	p.focus = i
	p.project.Blur()
	p.role.Blur()
	p.alloc.Blur()
	p.start.Blur()
	p.end.Blur()
	switch i {
	case 0:
		p.project.Focus()
	case 1:
		p.role.Focus()
	case 2:
		p.alloc.Focus()
	case 4:
		p.start.Focus()
	case 5:
		p.end.Focus()
	}
}

func (p *assignmentPopup) build() *staging.AssignmentAddition {
	alloc, err := strconv.Atoi(strings.TrimSpace(p.alloc.Value()))
	if err != nil {
		alloc = 100
	}

	add := &staging.AssignmentAddition{
		Role:              strings.TrimSpace(p.role.Value()),
		AllocationPercent: staging.ClampAllocation(alloc),
		IsActive:          p.active,
		StartDate:         strings.TrimSpace(p.start.Value()),
		EndDate:           strings.TrimSpace(p.end.Value()),
	}

	name := strings.TrimSpace(p.project.Value())
	if project, ok := p.catalog.ProjectByName(name); ok {
		add.ProjectID = project.ID
		add.ProjectName = project.Name
	} else {
		add.NewName = name
	}
	return add
}

// View renders the popup body.
func (p *assignmentPopup) View() string {
	var b strings.Builder
	b.WriteString(p.styles.Title.Render("Add project assignment"))
	b.WriteString("\n\n")
	b.WriteString(p.renderField(0, "Project", p.project.View()))
	b.WriteString(p.renderField(1, "Role", p.role.View()))
	b.WriteString(p.renderField(2, "Allocation %", p.alloc.View()))

	mark := "[ ]"
	if p.active {
		mark = "[x]"
	}
	line := mark + " Active"
	if p.focus == 3 {
		line = p.styles.Focused.Render(line)
	}
	b.WriteString(line)
	b.WriteString("\n")

	b.WriteString(p.renderField(4, "Start date", p.start.View()))
	b.WriteString(p.renderField(5, "End date", p.end.View()))
	b.WriteString("\n")
	b.WriteString(p.styles.Help.Render("enter on last field: stage · esc: cancel"))
	return b.String()
}

func (p *assignmentPopup) renderField(zone int, label, input string) string {
	l := p.styles.Label.Render(label)
	if p.focus == zone {
		l = p.styles.Focused.Render(label)
	}
	return l + "\n" + input + "\n"
}
