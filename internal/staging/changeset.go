package staging

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/api"
	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var (
	// ErrAlreadyStaged is returned when a staging action duplicates an
	// entry already in the queue.
	ErrAlreadyStaged = errors.New("already staged")

	// ErrDateOrder is returned when a start date falls after its end date.
	ErrDateOrder = errors.New("start date must not be after end date")
)

// Changeset is the pending-change queue for one consultant, existing or
// about-to-be-created. All staging actions are local; the backend is only
// touched when the queue is drained by Commit.
type Changeset struct {
	consultant *models.Consultant // nil for the add-consultant flow
	fields     api.ConsultantFields
	changes    []Change
}

// NewFor opens a changeset against an existing consultant, seeding the
// editable base fields from the current record.
func NewFor(consultant *models.Consultant) *Changeset {
	return &Changeset{
		consultant: consultant,
		fields: api.ConsultantFields{
			Name:              consultant.Name,
			Email:             consultant.Email,
			YearsOfExperience: consultant.YearsOfExperience,
			WantsNewProject:   consultant.WantsNewProject,
			OpenToRemote:      consultant.OpenToRemote,
		},
	}
}

// NewDraft opens a changeset for a consultant that does not exist yet.
// Commit will create the record first and run the queue against the new
// identity.
func NewDraft() *Changeset {
	return &Changeset{}
}

// IsDraft reports whether this changeset creates a new consultant.
func (cs *Changeset) IsDraft() bool { return cs.consultant == nil }

// ConsultantID returns the target consultant's identity, or "" for drafts.
func (cs *Changeset) ConsultantID() string {
	if cs.consultant == nil {
		return ""
	}
	return cs.consultant.ID
}

// Fields returns the current editable base fields.
func (cs *Changeset) Fields() api.ConsultantFields { return cs.fields }

// SetFields replaces the editable base fields. Validation is deferred to
// Commit so a form can hold incomplete state while the user types.
func (cs *Changeset) SetFields(fields api.ConsultantFields) {
	fields.YearsOfExperience = clampMin(fields.YearsOfExperience, 0)
	cs.fields = fields
}

// Changes returns the queue in staging order.
func (cs *Changeset) Changes() []Change { return cs.changes }

// Len returns the number of staged entries.
func (cs *Changeset) Len() int { return len(cs.changes) }

// Unstage removes the staged entry at index i. This is a pure undo: the
// entry is dropped with no backend interaction.
func (cs *Changeset) Unstage(i int) error {
	if i < 0 || i >= len(cs.changes) {
		return fmt.Errorf("unstage: index %d out of range", i)
	}
	cs.changes = append(cs.changes[:i], cs.changes[i+1:]...)
	return nil
}

// StageExistingSkill queues an association with a catalog skill. The skill
// must not already be staged or persisted on the consultant. Years are
// clamped to >= 0.
func (cs *Changeset) StageExistingSkill(skill models.Skill, years int) error {
	if skill.ID == "" {
		return fmt.Errorf("stage skill: missing skill id")
	}
	if cs.consultant != nil && cs.consultant.HasSkill(skill.ID) {
		return fmt.Errorf("stage skill %q: %w", skill.Name, ErrAlreadyStaged)
	}
	if cs.stagedSkillName(skill.Name) {
		return fmt.Errorf("stage skill %q: %w", skill.Name, ErrAlreadyStaged)
	}
	cs.changes = append(cs.changes, Change{
		Kind: KindAddSkill,
		Skill: &SkillAddition{
			SkillID:   skill.ID,
			SkillName: skill.Name,
			Years:     clampMin(years, 0),
		},
	})
	return nil
}

// StageNewSkill queues a skill that does not exist in the catalog yet.
// The skill is created on commit before being associated.
func (cs *Changeset) StageNewSkill(name string, synonyms []string, years int) error {
	if name == "" {
		return fmt.Errorf("stage skill: name must not be empty")
	}
	if cs.stagedSkillName(name) {
		return fmt.Errorf("stage skill %q: %w", name, ErrAlreadyStaged)
	}
	cs.changes = append(cs.changes, Change{
		Kind: KindAddSkill,
		Skill: &SkillAddition{
			NewName:     name,
			NewSynonyms: synonyms,
			Years:       clampMin(years, 0),
		},
	})
	return nil
}

// StageAssignment queues a project assignment. The addition must carry a
// non-empty role and either an existing project identity (not already
// staged or assigned) or a new project name. Allocation is clamped to
// [0,100] and date pairs must be ordered.
func (cs *Changeset) StageAssignment(add AssignmentAddition) error {
	if add.Role == "" {
		return fmt.Errorf("stage assignment: role must not be empty")
	}
	if add.ProjectID == "" && add.NewName == "" {
		return fmt.Errorf("stage assignment: project or new project name required")
	}
	if add.ProjectID != "" {
		if cs.consultant != nil && cs.consultant.HasAssignment(add.ProjectID) {
			return fmt.Errorf("stage assignment %q: %w", add.ProjectName, ErrAlreadyStaged)
		}
		if cs.stagedProjectID(add.ProjectID) {
			return fmt.Errorf("stage assignment %q: %w", add.ProjectName, ErrAlreadyStaged)
		}
	}
	if err := checkDateOrder(add.StartDate, add.EndDate); err != nil {
		return fmt.Errorf("stage assignment: %w", err)
	}
	if err := checkDateOrder(add.NewStartDate, add.NewEndDate); err != nil {
		return fmt.Errorf("stage assignment: project dates: %w", err)
	}
	add.AllocationPercent = ClampAllocation(add.AllocationPercent)
	cs.changes = append(cs.changes, Change{Kind: KindAssignProject, Assignment: &add})
	return nil
}

// StageDeactivation marks an existing active assignment for soft
// deactivation on commit.
func (cs *Changeset) StageDeactivation(projectID string) error {
	assignment, err := cs.targetAssignment(projectID)
	if err != nil {
		return fmt.Errorf("stage deactivation: %w", err)
	}
	if !assignment.IsActive {
		return fmt.Errorf("stage deactivation: assignment on %q is not active", assignment.ProjectName)
	}
	if cs.stagedAgainst(projectID) {
		return fmt.Errorf("stage deactivation %q: %w", assignment.ProjectName, ErrAlreadyStaged)
	}
	cs.changes = append(cs.changes, Change{
		Kind:        KindDeactivate,
		ProjectID:   projectID,
		ProjectName: assignment.ProjectName,
	})
	return nil
}

// StageRemoval marks an existing assignment for hard removal on commit.
func (cs *Changeset) StageRemoval(projectID string) error {
	assignment, err := cs.targetAssignment(projectID)
	if err != nil {
		return fmt.Errorf("stage removal: %w", err)
	}
	if cs.stagedAgainst(projectID) {
		return fmt.Errorf("stage removal %q: %w", assignment.ProjectName, ErrAlreadyStaged)
	}
	cs.changes = append(cs.changes, Change{
		Kind:        KindRemove,
		ProjectID:   projectID,
		ProjectName: assignment.ProjectName,
	})
	return nil
}

// ExistingAssignments returns the persisted assignments of the target
// consultant, or nil for drafts.
func (cs *Changeset) ExistingAssignments() []models.ProjectAssignment {
	if cs.consultant == nil {
		return nil
	}
	return cs.consultant.ProjectAssignments
}

// AvailabilityPreview predicts the availability the backend will derive
// once the queue is committed: true iff no active assignment remains after
// staged deactivations, removals, and active additions are applied.
func (cs *Changeset) AvailabilityPreview() bool {
	active := 0
	if cs.consultant != nil {
		active = cs.consultant.ActiveAssignments()
	}
	for _, ch := range cs.changes {
		switch ch.Kind {
		case KindDeactivate, KindRemove:
			if cs.targetIsActive(ch.ProjectID) {
				active--
			}
		case KindAssignProject:
			if ch.Assignment.IsActive {
				active++
			}
		}
	}
	return active == 0
}

// AvailableSkills filters the catalog skill name vocabulary down to names
// not already staged or persisted on the consultant.
func (cs *Changeset) AvailableSkills(catalog []string) []string {
	out := make([]string, 0, len(catalog))
	for _, name := range catalog {
		if cs.stagedSkillName(name) {
			continue
		}
		if cs.consultant != nil && hasSkillName(cs.consultant, name) {
			continue
		}
		out = append(out, name)
	}
	return out
}

// AvailableProjects filters the project catalog down to projects not
// already staged or assigned.
func (cs *Changeset) AvailableProjects(projects []models.Project) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if cs.stagedProjectID(p.ID) {
			continue
		}
		if cs.consultant != nil && cs.consultant.HasAssignment(p.ID) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (cs *Changeset) targetAssignment(projectID string) (*models.ProjectAssignment, error) {
	if cs.consultant == nil {
		return nil, fmt.Errorf("draft consultant has no assignments")
	}
	for i := range cs.consultant.ProjectAssignments {
		if cs.consultant.ProjectAssignments[i].ProjectID == projectID {
			return &cs.consultant.ProjectAssignments[i], nil
		}
	}
	return nil, fmt.Errorf("no assignment on project %q", projectID)
}

func (cs *Changeset) targetIsActive(projectID string) bool {
	a, err := cs.targetAssignment(projectID)
	return err == nil && a.IsActive
}

func (cs *Changeset) stagedSkillName(name string) bool {
	for _, ch := range cs.changes {
		if ch.Kind == KindAddSkill && ch.Skill.Name() == name {
			return true
		}
	}
	return false
}

func (cs *Changeset) stagedProjectID(projectID string) bool {
	for _, ch := range cs.changes {
		if ch.Kind == KindAssignProject && ch.Assignment.ProjectID == projectID {
			return true
		}
	}
	return false
}

// stagedAgainst reports whether a deactivation or removal is already
// queued for the given assignment.
func (cs *Changeset) stagedAgainst(projectID string) bool {
	for _, ch := range cs.changes {
		if (ch.Kind == KindDeactivate || ch.Kind == KindRemove) && ch.ProjectID == projectID {
			return true
		}
	}
	return false
}

func hasSkillName(c *models.Consultant, name string) bool {
	for _, s := range c.Skills {
		if s.SkillName == name {
			return true
		}
	}
	return false
}

// ClampAllocation clamps an allocation percentage to [0,100].
func ClampAllocation(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func clampMin(n, min int) int {
	if n < min {
		return min
	}
	return n
}

// checkDateOrder validates that start <= end for a pair of day-precision
// dates. Empty values are unconstrained; malformed values are rejected.
func checkDateOrder(start, end string) error {
	const layout = "2006-01-02"
	var from, to time.Time
	var err error
	if start != "" {
		if from, err = time.Parse(layout, start); err != nil {
			return fmt.Errorf("invalid start date %q", start)
		}
	}
	if end != "" {
		if to, err = time.Parse(layout, end); err != nil {
			return fmt.Errorf("invalid end date %q", end)
		}
	}
	if start != "" && end != "" && from.After(to) {
		return ErrDateOrder
	}
	return nil
}
