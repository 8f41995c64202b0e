package staging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/api"
	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/metrics"
	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/models"
)

// Backend is the slice of the staffing API the sequencer drives. The
// api.Client satisfies it; tests substitute a recording fake.
type Backend interface {
	CreateConsultant(ctx context.Context, fields api.ConsultantFields) (*models.Consultant, error)
	UpdateConsultant(ctx context.Context, id string, fields api.ConsultantFields) (*models.Consultant, error)
	CreateSkill(ctx context.Context, req api.CreateSkillRequest) (*models.Skill, error)
	AddSkill(ctx context.Context, consultantID string, req api.AddSkillRequest) (*models.Consultant, error)
	CreateProject(ctx context.Context, req api.CreateProjectRequest) (*models.Project, error)
	AssignProject(ctx context.Context, consultantID string, req api.AssignProjectRequest) (*models.Consultant, error)
	DeactivateAssignment(ctx context.Context, consultantID, projectID string) (*models.Consultant, error)
	RemoveAssignment(ctx context.Context, consultantID, projectID string) (*models.Consultant, error)
}

// Result reports how far a commit sequence got. Applied lists every
// backend call that succeeded, in execution order; when Err is set the
// remaining steps were skipped and nothing was rolled back.
type Result struct {
	ConsultantID string
	Applied      []string
	Failed       string
	Err          error
}

// Sequencer turns a changeset into an ordered sequence of backend calls.
type Sequencer struct {
	backend Backend
	logger  *slog.Logger
}

// NewSequencer creates a commit sequencer over the given backend.
func NewSequencer(backend Backend, logger *slog.Logger) *Sequencer {
	return &Sequencer{backend: backend, logger: logger}
}

// Commit drains the changeset against the backend. Step order is fixed:
// deactivations, removals, skill additions (creating new skills first),
// project assignments (creating new projects first), then the base-field
// update — except for drafts, where the consultant is created before the
// skill and assignment steps so they target the new identity.
//
// Steps run strictly sequentially; the first rejection aborts the rest.
// Already-applied steps are not rolled back — the Result says which prefix
// landed. The queue is consumed whether the sequence finishes or fails.
func (s *Sequencer) Commit(ctx context.Context, cs *Changeset) *Result {
	res := &Result{ConsultantID: cs.ConsultantID()}
	metrics.Inc(metrics.CommitsTotal)

	fields := cs.Fields()
	if err := validate.Struct(fields); err != nil {
		res.Err = fmt.Errorf("commit: invalid consultant fields: %w", err)
		return res
	}

	defer func() {
		// Consumed on success and failure alike; the form never re-offers
		// steps that may already have landed.
		cs.changes = nil
	}()

	changes := cs.changes

	if cs.IsDraft() {
		created, err := s.backend.CreateConsultant(ctx, fields)
		if err != nil {
			s.fail(res, fmt.Sprintf("create consultant %q", fields.Name), err)
			return res
		}
		res.ConsultantID = created.ID
		s.applied(res, fmt.Sprintf("create consultant %q", fields.Name))
	}

	id := res.ConsultantID

	for _, ch := range filterKind(changes, KindDeactivate) {
		step := fmt.Sprintf("deactivate assignment on %q", ch.ProjectName)
		if _, err := s.backend.DeactivateAssignment(ctx, id, ch.ProjectID); err != nil {
			s.fail(res, step, err)
			return res
		}
		s.applied(res, step)
	}

	for _, ch := range filterKind(changes, KindRemove) {
		step := fmt.Sprintf("remove assignment on %q", ch.ProjectName)
		if _, err := s.backend.RemoveAssignment(ctx, id, ch.ProjectID); err != nil {
			s.fail(res, step, err)
			return res
		}
		s.applied(res, step)
	}

	for _, ch := range filterKind(changes, KindAddSkill) {
		add := ch.Skill
		skillID := add.SkillID
		if add.IsNew() {
			step := fmt.Sprintf("create skill %q", add.NewName)
			created, err := s.backend.CreateSkill(ctx, api.CreateSkillRequest{
				Name:     add.NewName,
				Synonyms: add.NewSynonyms,
			})
			if err != nil {
				s.fail(res, step, err)
				return res
			}
			skillID = created.ID
			s.applied(res, step)
		}
		step := fmt.Sprintf("add skill %q", add.Name())
		_, err := s.backend.AddSkill(ctx, id, api.AddSkillRequest{
			SkillID:                skillID,
			SkillYearsOfExperience: add.Years,
		})
		if err != nil {
			s.fail(res, step, err)
			return res
		}
		s.applied(res, step)
	}

	for _, ch := range filterKind(changes, KindAssignProject) {
		add := ch.Assignment
		projectID := add.ProjectID
		if add.IsNew() {
			step := fmt.Sprintf("create project %q", add.NewName)
			created, err := s.backend.CreateProject(ctx, api.CreateProjectRequest{
				Name:      add.NewName,
				CompanyID: add.NewCompanyID,
				StartDate: dayStart(add.NewStartDate),
				EndDate:   dayStart(add.NewEndDate),
			})
			if err != nil {
				s.fail(res, step, err)
				return res
			}
			projectID = created.ID
			s.applied(res, step)
		}
		step := fmt.Sprintf("assign project %q", add.Name())
		_, err := s.backend.AssignProject(ctx, id, api.AssignProjectRequest{
			ProjectID:         projectID,
			Role:              add.Role,
			AllocationPercent: add.AllocationPercent,
			IsActive:          add.IsActive,
			StartDate:         dayStart(add.StartDate),
			EndDate:           dayStart(add.EndDate),
		})
		if err != nil {
			s.fail(res, step, err)
			return res
		}
		s.applied(res, step)
	}

	if !cs.IsDraft() {
		step := fmt.Sprintf("update consultant %q", fields.Name)
		if _, err := s.backend.UpdateConsultant(ctx, id, fields); err != nil {
			s.fail(res, step, err)
			return res
		}
		s.applied(res, step)
	}

	return res
}

func (s *Sequencer) applied(res *Result, step string) {
	res.Applied = append(res.Applied, step)
	metrics.Inc(metrics.CommitSteps)
	s.logger.Debug("commit step applied", "step", step, "consultant", res.ConsultantID)
}

func (s *Sequencer) fail(res *Result, step string, err error) {
	res.Failed = step
	metrics.Inc(metrics.CommitFailures)
	res.Err = fmt.Errorf("commit: %s: %w", step, err)
	s.logger.Error("commit step failed, aborting remaining steps",
		"step", step, "applied", len(res.Applied), "error", err)
}

func filterKind(changes []Change, kind Kind) []Change {
	var out []Change
	for _, ch := range changes {
		if ch.Kind == kind {
			out = append(out, ch)
		}
	}
	return out
}

// dayStart widens a day-precision date to the backend's datetime form.
func dayStart(date string) string {
	if date == "" {
		return ""
	}
	return date + "T00:00:00"
}
