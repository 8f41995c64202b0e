// Package staging accumulates not-yet-persisted edits against a single
// consultant and replays them against the backend in a fixed order on
// save. Until Commit, nothing touches the backend; a staged entry can be
// undone for free, and an abandoned changeset costs nothing.
package staging

import "fmt"

// Kind tags a staged action variant.
type Kind string

const (
	// KindDeactivate marks an existing assignment for server-side
	// deactivation (soft — preserves history).
	KindDeactivate Kind = "deactivate"

	// KindRemove marks an existing assignment for hard removal.
	KindRemove Kind = "remove"

	// KindAddSkill stages a skill association, creating the skill first
	// when it is new to the catalog.
	KindAddSkill Kind = "add-skill"

	// KindAssignProject stages a project assignment, creating the project
	// first when it is new to the catalog.
	KindAssignProject Kind = "assign-project"
)

// SkillAddition is a staged skill association. Either SkillID references
// an existing catalog skill, or NewName (plus optional NewSynonyms) names
// a skill to be created first on commit.
type SkillAddition struct {
	SkillID     string
	SkillName   string
	NewName     string
	NewSynonyms []string
	Years       int
}

// IsNew reports whether the addition requires creating a catalog skill.
func (s *SkillAddition) IsNew() bool { return s.SkillID == "" }

// Name returns the display name of the staged skill.
func (s *SkillAddition) Name() string {
	if s.IsNew() {
		return s.NewName
	}
	return s.SkillName
}

// AssignmentAddition is a staged project assignment. Either ProjectID
// references an existing project, or NewName (plus the New* fields) names
// a project to be created first on commit. Dates are day-precision
// "YYYY-MM-DD" strings.
type AssignmentAddition struct {
	ProjectID   string
	ProjectName string

	NewName      string
	NewCompanyID string
	NewStartDate string
	NewEndDate   string

	Role              string
	AllocationPercent int
	IsActive          bool
	StartDate         string
	EndDate           string
}

// IsNew reports whether the addition requires creating a project.
func (a *AssignmentAddition) IsNew() bool { return a.ProjectID == "" }

// Name returns the display name of the staged project.
func (a *AssignmentAddition) Name() string {
	if a.IsNew() {
		return a.NewName
	}
	return a.ProjectName
}

// Change is one tagged staged action. Exactly one payload field matching
// the kind is set; deactivations and removals carry only the target
// project identity.
type Change struct {
	Kind Kind

	Skill      *SkillAddition
	Assignment *AssignmentAddition

	// ProjectID and ProjectName identify the targeted assignment for
	// deactivations and removals.
	ProjectID   string
	ProjectName string
}

// Describe returns a short human-readable label for review lists.
func (c Change) Describe() string {
	switch c.Kind {
	case KindDeactivate:
		return fmt.Sprintf("deactivate assignment on %q", c.ProjectName)
	case KindRemove:
		return fmt.Sprintf("remove assignment on %q", c.ProjectName)
	case KindAddSkill:
		if c.Skill.IsNew() {
			return fmt.Sprintf("add new skill %q (%d years)", c.Skill.NewName, c.Skill.Years)
		}
		return fmt.Sprintf("add skill %q (%d years)", c.Skill.SkillName, c.Skill.Years)
	case KindAssignProject:
		if c.Assignment.IsNew() {
			return fmt.Sprintf("assign to new project %q as %s", c.Assignment.NewName, c.Assignment.Role)
		}
		return fmt.Sprintf("assign to %q as %s", c.Assignment.ProjectName, c.Assignment.Role)
	}
	return string(c.Kind)
}
