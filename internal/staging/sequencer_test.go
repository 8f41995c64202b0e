package staging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/api"
	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/models"
)

// fakeBackend records every call in order and can be told to fail a
// specific operation.
type fakeBackend struct {
	calls  []string
	failOn string
	nextID int
}

var errInjected = errors.New("injected failure")

func (f *fakeBackend) record(call string) error {
	f.calls = append(f.calls, call)
	if f.failOn != "" && len(call) >= len(f.failOn) && call[:len(f.failOn)] == f.failOn {
		return errInjected
	}
	return nil
}

func (f *fakeBackend) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *fakeBackend) CreateConsultant(_ context.Context, fields api.ConsultantFields) (*models.Consultant, error) {
	if err := f.record("create-consultant " + fields.Name); err != nil {
		return nil, err
	}
	return &models.Consultant{ID: f.id("c"), Name: fields.Name, Email: fields.Email}, nil
}

func (f *fakeBackend) UpdateConsultant(_ context.Context, id string, fields api.ConsultantFields) (*models.Consultant, error) {
	if err := f.record(fmt.Sprintf("update-consultant %s %s", id, fields.Name)); err != nil {
		return nil, err
	}
	return &models.Consultant{ID: id, Name: fields.Name}, nil
}

func (f *fakeBackend) CreateSkill(_ context.Context, req api.CreateSkillRequest) (*models.Skill, error) {
	if err := f.record("create-skill " + req.Name); err != nil {
		return nil, err
	}
	return &models.Skill{ID: f.id("s"), Name: req.Name}, nil
}

func (f *fakeBackend) AddSkill(_ context.Context, consultantID string, req api.AddSkillRequest) (*models.Consultant, error) {
	if err := f.record(fmt.Sprintf("add-skill %s %s %d", consultantID, req.SkillID, req.SkillYearsOfExperience)); err != nil {
		return nil, err
	}
	return &models.Consultant{ID: consultantID}, nil
}

func (f *fakeBackend) CreateProject(_ context.Context, req api.CreateProjectRequest) (*models.Project, error) {
	if err := f.record("create-project " + req.Name); err != nil {
		return nil, err
	}
	return &models.Project{ID: f.id("p"), Name: req.Name}, nil
}

func (f *fakeBackend) AssignProject(_ context.Context, consultantID string, req api.AssignProjectRequest) (*models.Consultant, error) {
	if err := f.record(fmt.Sprintf("assign-project %s %s %s %d %t", consultantID, req.ProjectID, req.Role, req.AllocationPercent, req.IsActive)); err != nil {
		return nil, err
	}
	return &models.Consultant{ID: consultantID}, nil
}

func (f *fakeBackend) DeactivateAssignment(_ context.Context, consultantID, projectID string) (*models.Consultant, error) {
	if err := f.record(fmt.Sprintf("deactivate %s %s", consultantID, projectID)); err != nil {
		return nil, err
	}
	return &models.Consultant{ID: consultantID}, nil
}

func (f *fakeBackend) RemoveAssignment(_ context.Context, consultantID, projectID string) (*models.Consultant, error) {
	if err := f.record(fmt.Sprintf("remove %s %s", consultantID, projectID)); err != nil {
		return nil, err
	}
	return &models.Consultant{ID: consultantID}, nil
}

func newTestSequencer(backend Backend) *Sequencer {
	return NewSequencer(backend, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCommitAddConsultantFlow(t *testing.T) {
	backend := &fakeBackend{}
	seq := newTestSequencer(backend)

	cs := NewDraft()
	cs.SetFields(api.ConsultantFields{Name: "Jane Doe", Email: "jane@x.com", YearsOfExperience: 5})
	require.NoError(t, cs.StageNewSkill("Rust", nil, 3))
	require.NoError(t, cs.StageAssignment(AssignmentAddition{
		NewName:           "Atlas",
		Role:              "Backend",
		AllocationPercent: 80,
		IsActive:          true,
	}))

	res := seq.Commit(context.Background(), cs)
	require.NoError(t, res.Err)
	assert.Equal(t, "c-1", res.ConsultantID)

	assert.Equal(t, []string{
		"create-consultant Jane Doe",
		"create-skill Rust",
		"add-skill c-1 s-2 3",
		"create-project Atlas",
		"assign-project c-1 p-3 Backend 80 true",
	}, backend.calls)

	assert.Equal(t, 0, cs.Len(), "queue must be consumed on success")
}

func TestCommitEditFlowStepOrder(t *testing.T) {
	backend := &fakeBackend{}
	seq := newTestSequencer(backend)

	cs := NewFor(existingConsultant())
	// Stage out of execution order on purpose.
	require.NoError(t, cs.StageExistingSkill(models.Skill{ID: "s-go", Name: "Go"}, 2))
	require.NoError(t, cs.StageAssignment(AssignmentAddition{ProjectID: "p-nova", ProjectName: "Nova", Role: "Lead", AllocationPercent: 50}))
	require.NoError(t, cs.StageRemoval("p-old"))
	require.NoError(t, cs.StageDeactivation("p-atlas"))

	res := seq.Commit(context.Background(), cs)
	require.NoError(t, res.Err)

	assert.Equal(t, []string{
		"deactivate c-1 p-atlas",
		"remove c-1 p-old",
		"add-skill c-1 s-go 2",
		"assign-project c-1 p-nova Lead 50 false",
		"update-consultant c-1 Ola Nordmann",
	}, backend.calls)
}

func TestCommitUndoneEntryMakesNoCalls(t *testing.T) {
	backend := &fakeBackend{}
	seq := newTestSequencer(backend)

	cs := NewFor(existingConsultant())
	require.NoError(t, cs.StageDeactivation("p-atlas"))
	require.NoError(t, cs.Unstage(0))

	res := seq.Commit(context.Background(), cs)
	require.NoError(t, res.Err)

	for _, call := range backend.calls {
		assert.NotContains(t, call, "p-atlas")
	}
	assert.Equal(t, []string{"update-consultant c-1 Ola Nordmann"}, backend.calls)
}

func TestCommitStopsOnFirstFailure(t *testing.T) {
	backend := &fakeBackend{failOn: "add-skill"}
	seq := newTestSequencer(backend)

	cs := NewFor(existingConsultant())
	require.NoError(t, cs.StageDeactivation("p-atlas"))
	require.NoError(t, cs.StageExistingSkill(models.Skill{ID: "s-go", Name: "Go"}, 2))
	require.NoError(t, cs.StageAssignment(AssignmentAddition{ProjectID: "p-nova", ProjectName: "Nova", Role: "Lead"}))

	res := seq.Commit(context.Background(), cs)
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, errInjected)

	// The deactivation landed, nothing after the failing step ran.
	assert.Equal(t, []string{"deactivate c-1 p-atlas", "add-skill c-1 s-go 2"}, backend.calls)
	assert.Equal(t, []string{"deactivate assignment on \"Atlas\""}, res.Applied)
	assert.Equal(t, "add skill \"Go\"", res.Failed)

	assert.Equal(t, 0, cs.Len(), "queue is consumed on failure too")
}

func TestCommitValidatesFieldsBeforeAnyCall(t *testing.T) {
	backend := &fakeBackend{}
	seq := newTestSequencer(backend)

	cs := NewDraft()
	cs.SetFields(api.ConsultantFields{Name: "Jane Doe", Email: "not-an-email"})

	res := seq.Commit(context.Background(), cs)
	require.Error(t, res.Err)
	assert.Empty(t, backend.calls)

	cs = NewDraft()
	cs.SetFields(api.ConsultantFields{Email: "jane@x.com"})
	res = seq.Commit(context.Background(), cs)
	require.Error(t, res.Err)
	assert.Empty(t, backend.calls)
}

func TestCommitNewProjectDatesWidened(t *testing.T) {
	backend := &fakeBackend{}
	seq := newTestSequencer(backend)

	cs := NewDraft()
	cs.SetFields(api.ConsultantFields{Name: "Kari", Email: "kari@x.com"})
	require.NoError(t, cs.StageAssignment(AssignmentAddition{
		NewName:      "Nettbank",
		NewStartDate: "2026-01-01",
		NewEndDate:   "2026-06-30",
		Role:         "Frontend",
		StartDate:    "2026-02-01",
	}))

	res := seq.Commit(context.Background(), cs)
	require.NoError(t, res.Err)
	assert.Contains(t, backend.calls, "create-project Nettbank")
}
