// Package ui holds the interactive consultant form: base fields, a skill
// picker, staged project assignments, and a pending-change list, saved
// through the commit sequencer. All edits stay local until the user
// saves; cancelling discards the staged state.
package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/api"
	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/multiselect"
	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/refdata"
	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/staging"
)

// Focus zones, cycled with tab.
const (
	focusName = iota
	focusEmail
	focusYears
	focusWantsNew
	focusRemote
	focusSkills
	focusAssignments
	focusPending
	focusCount
)

// commitMsg carries the sequencer result back into the update loop.
type commitMsg struct {
	result *staging.Result
}

// Outcome is what the form produced once the program exits.
type Outcome struct {
	Cancelled bool
	Result    *staging.Result
}

// Form is the add/edit consultant screen.
type Form struct {
	cs      *staging.Changeset
	catalog *refdata.Catalog
	seq     *staging.Sequencer

	name  textinput.Model
	email textinput.Model
	years textinput.Model

	wantsNew bool
	remote   bool

	skills       multiselect.Model
	stagedSkills []string

	popup *assignmentPopup

	focus      int
	cursor     int // highlighted row in the assignments zone
	saving     bool
	fieldError string
	outcome    Outcome

	styles Styles
}

// NewForm builds the form for the given changeset. The catalog must be
// fully loaded before the form is shown; the form never renders with
// partial reference data.
func NewForm(cs *staging.Changeset, catalog *refdata.Catalog, seq *staging.Sequencer) *Form {
	fields := cs.Fields()

	name := textinput.New()
	name.Placeholder = "Full name..."
	name.SetValue(fields.Name)
	name.Focus()

	email := textinput.New()
	email.Placeholder = "name@example.com"
	email.SetValue(fields.Email)

	years := textinput.New()
	years.Placeholder = "0"
	years.CharLimit = 2
	if fields.YearsOfExperience > 0 {
		years.SetValue(strconv.Itoa(fields.YearsOfExperience))
	}

	f := &Form{
		cs:       cs,
		catalog:  catalog,
		seq:      seq,
		name:     name,
		email:    email,
		years:    years,
		wantsNew: fields.WantsNewProject,
		remote:   fields.OpenToRemote,
		skills:   multiselect.New("Skills", "Search skills...", cs.AvailableSkills(catalog.SkillNames())),
		styles:   DefaultStyles(),
	}

	f.skills.OnAdd = func(value string) {
		skill, ok := catalog.SkillByName(value)
		if !ok {
			return
		}
		// Years default to 0 here; the non-interactive flags carry
		// explicit per-skill years.
		if err := cs.StageExistingSkill(*skill, 0); err != nil {
			f.fieldError = err.Error()
		}
	}
	f.skills.OnRemove = func(value string) {
		for i, ch := range cs.Changes() {
			if ch.Kind == staging.KindAddSkill && ch.Skill.Name() == value {
				_ = cs.Unstage(i)
				break
			}
		}
	}
	f.refreshSkills()

	return f
}

// Outcome returns the form result after the program has exited.
func (f *Form) Outcome() Outcome { return f.outcome }

// Init implements tea.Model.
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commitMsg:
		f.saving = false
		f.outcome.Result = msg.result
		return f, tea.Quit

	case tea.KeyMsg:
		if f.saving {
			// Save disabled while a sequence is in flight.
			return f, nil
		}
		if f.popup != nil {
			return f.updatePopup(msg)
		}

		switch msg.String() {
		case "ctrl+c":
			f.outcome.Cancelled = true
			return f, tea.Quit
		case "esc":
			if f.focus == focusSkills && f.skills.Focused() {
				break // let the widget close its own suggestion list
			}
			f.outcome.Cancelled = true
			return f, tea.Quit
		case "ctrl+s":
			return f.save()
		case "tab":
			f.setFocus((f.focus + 1) % focusCount)
			return f, nil
		case "shift+tab":
			f.setFocus((f.focus + focusCount - 1) % focusCount)
			return f, nil
		}

		switch f.focus {
		case focusWantsNew:
			if msg.String() == " " || msg.String() == "enter" {
				f.wantsNew = !f.wantsNew
			}
			return f, nil
		case focusRemote:
			if msg.String() == " " || msg.String() == "enter" {
				f.remote = !f.remote
			}
			return f, nil
		case focusAssignments:
			return f.updateAssignments(msg)
		case focusPending:
			if msg.String() == "u" && f.cs.Len() > 0 {
				_ = f.cs.Unstage(f.cs.Len() - 1)
				f.refreshSkills()
			}
			return f, nil
		}
	}

	return f.updateInputs(msg)
}

func (f *Form) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case focusName:
		f.name, cmd = f.name.Update(msg)
	case focusEmail:
		f.email, cmd = f.email.Update(msg)
	case focusYears:
		f.years, cmd = f.years.Update(msg)
	case focusSkills:
		f.skills, cmd = f.skills.Update(msg)
		// The OnAdd/OnRemove callbacks mutate the queue while the widget
		// copy is in flight, so the mirror is re-derived afterwards.
		f.refreshSkills()
	}
	return f, cmd
}

// updateAssignments handles the assignment zone: navigate existing
// assignments, stage deactivations and removals, open the add popup.
func (f *Form) updateAssignments(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	assignments := f.assignmentRows()
	switch msg.String() {
	case "up", "k":
		if f.cursor > 0 {
			f.cursor--
		}
	case "down", "j":
		if f.cursor < len(assignments)-1 {
			f.cursor++
		}
	case "d":
		if f.cursor < len(assignments) {
			if err := f.cs.StageDeactivation(assignments[f.cursor].ProjectID); err != nil {
				f.fieldError = err.Error()
			} else {
				f.fieldError = ""
			}
		}
	case "x":
		if f.cursor < len(assignments) {
			if err := f.cs.StageRemoval(assignments[f.cursor].ProjectID); err != nil {
				f.fieldError = err.Error()
			} else {
				f.fieldError = ""
			}
		}
	case "a":
		f.popup = newAssignmentPopup(f.catalog)
		return f, f.popup.Focus()
	}
	return f, nil
}

func (f *Form) updatePopup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	done, add, cmd := f.popup.Update(msg)
	if done {
		f.popup = nil
		if add != nil {
			if err := f.cs.StageAssignment(*add); err != nil {
				f.fieldError = err.Error()
			} else {
				f.fieldError = ""
			}
		}
	}
	return f, cmd
}

// save pushes the edited base fields into the changeset and launches the
// commit sequence. While in flight every key is ignored and the footer
// shows "Saving...".
func (f *Form) save() (tea.Model, tea.Cmd) {
	years, err := strconv.Atoi(strings.TrimSpace(f.years.Value()))
	if err != nil && strings.TrimSpace(f.years.Value()) != "" {
		f.fieldError = "years of experience must be a number"
		return f, nil
	}

	f.cs.SetFields(api.ConsultantFields{
		Name:              strings.TrimSpace(f.name.Value()),
		Email:             strings.TrimSpace(f.email.Value()),
		YearsOfExperience: years,
		WantsNewProject:   f.wantsNew,
		OpenToRemote:      f.remote,
	})

	f.saving = true
	f.fieldError = ""
	cs, seq := f.cs, f.seq
	return f, func() tea.Msg {
		return commitMsg{result: seq.Commit(context.Background(), cs)}
	}
}

func (f *Form) setFocus(zone int) {
	f.focus = zone
	f.name.Blur()
	f.email.Blur()
	f.years.Blur()
	f.skills.Blur()
	switch zone {
	case focusName:
		f.name.Focus()
	case focusEmail:
		f.email.Focus()
	case focusYears:
		f.years.Focus()
	case focusSkills:
		f.skills.Focus()
	case focusAssignments:
		f.cursor = 0
	}
}

// refreshSkills re-derives the widget's option list and tag mirror from
// the queue state, so staged skills stop being offered as candidates.
func (f *Form) refreshSkills() {
	f.stagedSkills = f.stagedSkills[:0]
	for _, ch := range f.cs.Changes() {
		if ch.Kind == staging.KindAddSkill {
			f.stagedSkills = append(f.stagedSkills, ch.Skill.Name())
		}
	}
	f.skills.SetOptions(f.cs.AvailableSkills(f.catalog.SkillNames()))
	f.skills.SetSelected(f.stagedSkills)
}

type assignmentRow struct {
	ProjectID   string
	ProjectName string
	Role        string
	IsActive    bool
}

func (f *Form) assignmentRows() []assignmentRow {
	var rows []assignmentRow
	for _, a := range f.cs.ExistingAssignments() {
		rows = append(rows, assignmentRow{
			ProjectID:   a.ProjectID,
			ProjectName: a.ProjectName,
			Role:        a.Role,
			IsActive:    a.IsActive,
		})
	}
	return rows
}

// View implements tea.Model.
func (f *Form) View() string {
	var b strings.Builder

	title := "Add consultant"
	if !f.cs.IsDraft() {
		title = "Edit consultant"
	}
	b.WriteString(f.styles.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(f.renderField(focusName, "Name", f.name.View()))
	b.WriteString(f.renderField(focusEmail, "Email", f.email.View()))
	b.WriteString(f.renderField(focusYears, "Years of experience", f.years.View()))
	b.WriteString(f.renderToggle(focusWantsNew, "Wants new project", f.wantsNew))
	b.WriteString(f.renderToggle(focusRemote, "Open to remote", f.remote))
	b.WriteString("\n")

	b.WriteString(f.skills.View())
	b.WriteString("\n")

	b.WriteString(f.renderAssignments())
	b.WriteString(f.renderPending())

	if f.popup != nil {
		b.WriteString("\n")
		b.WriteString(f.styles.Popup.Render(f.popup.View()))
	}

	if f.fieldError != "" {
		b.WriteString("\n")
		b.WriteString(f.styles.Error.Render(f.fieldError))
	}

	b.WriteString("\n\n")
	if f.saving {
		b.WriteString(f.styles.Help.Render("Saving..."))
	} else {
		b.WriteString(f.styles.Help.Render("tab: next field · a: add assignment · d/x: deactivate/remove · u: undo staged · ctrl+s: save · esc: cancel"))
	}
	b.WriteString("\n")

	return b.String()
}

func (f *Form) renderField(zone int, label, input string) string {
	l := f.styles.Label.Render(label)
	if f.focus == zone {
		l = f.styles.Focused.Render(label)
	}
	return fmt.Sprintf("%s\n%s\n", l, input)
}

func (f *Form) renderToggle(zone int, label string, on bool) string {
	mark := "[ ]"
	if on {
		mark = "[x]"
	}
	line := fmt.Sprintf("%s %s", mark, label)
	if f.focus == zone {
		line = f.styles.Focused.Render(line)
	}
	return line + "\n"
}

func (f *Form) renderAssignments() string {
	rows := f.assignmentRows()
	if f.cs.IsDraft() && len(rows) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(f.styles.Label.Render("Project assignments"))
	b.WriteString("\n")
	for i, a := range rows {
		state := "inactive"
		if a.IsActive {
			state = "active"
		}
		line := fmt.Sprintf("  %s as %s (%s)", a.ProjectName, a.Role, state)
		if f.focus == focusAssignments && i == f.cursor {
			line = f.styles.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(rows) == 0 {
		b.WriteString(f.styles.Help.Render("  (none)"))
		b.WriteString("\n")
	}
	return b.String()
}

func (f *Form) renderPending() string {
	changes := f.cs.Changes()
	if len(changes) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(f.styles.Label.Render("Pending changes"))
	b.WriteString("\n")
	for i, ch := range changes {
		b.WriteString(f.styles.Pending.Render(fmt.Sprintf("  %d. %s", i+1, ch.Describe())))
		b.WriteString("\n")
	}
	avail := "assigned"
	if f.cs.AvailabilityPreview() {
		avail = "available"
	}
	b.WriteString(f.styles.Help.Render("  after save: " + avail))
	b.WriteString("\n")
	return b.String()
}
