package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/models"
	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/search"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   []byte
}

// newFakeBackend returns an httptest server that answers every staffing
// endpoint with minimal valid JSON and records each request. Created
// entities get server-minted ids, mirroring the real backend.
func newFakeBackend(t *testing.T, requests *[]recordedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*requests = append(*requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   body,
		})

		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && (r.URL.Path == "/skills" || r.URL.Path == "/companies" || r.URL.Path == "/projects" || r.URL.Path == "/consultants" || r.URL.Path == "/consultants/search"):
			_, _ = w.Write([]byte("[]"))
		case r.Method == http.MethodPost && r.URL.Path == "/skills":
			var req CreateSkillRequest
			require.NoError(t, json.Unmarshal(body, &req))
			_ = json.NewEncoder(w).Encode(models.Skill{ID: uuid.NewString(), Name: req.Name, Synonyms: req.Synonyms})
		case r.Method == http.MethodPost && r.URL.Path == "/projects":
			var req CreateProjectRequest
			require.NoError(t, json.Unmarshal(body, &req))
			_ = json.NewEncoder(w).Encode(models.Project{ID: uuid.NewString(), Name: req.Name})
		case r.Method == http.MethodPost && r.URL.Path == "/consultants":
			var fields ConsultantFields
			require.NoError(t, json.Unmarshal(body, &fields))
			_ = json.NewEncoder(w).Encode(models.Consultant{ID: uuid.NewString(), Name: fields.Name, Email: fields.Email})
		case r.URL.Path == "/consultants/missing":
			http.NotFound(w, r)
		default:
			_ = json.NewEncoder(w).Encode(models.Consultant{ID: "c-1"})
		}
	}))
}

func newTestClient(t *testing.T) (*Client, *[]recordedRequest) {
	t.Helper()
	requests := &[]recordedRequest{}
	srv := newFakeBackend(t, requests)
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(srv.URL, 5*time.Second, logger), requests
}

func TestCreateSkillPayload(t *testing.T) {
	client, requests := newTestClient(t)

	skill, err := client.CreateSkill(context.Background(), CreateSkillRequest{Name: "Rust"})
	require.NoError(t, err)
	assert.NotEmpty(t, skill.ID)
	assert.Equal(t, "Rust", skill.Name)

	req := (*requests)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/skills", req.Path)
	// Synonyms default to an empty list, never null.
	assert.JSONEq(t, `{"name":"Rust","synonyms":[]}`, string(req.Body))
}

func TestCreateProjectOmitsEmptyOptionals(t *testing.T) {
	client, requests := newTestClient(t)

	_, err := client.CreateProject(context.Background(), CreateProjectRequest{Name: "Atlas"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"name":"Atlas"}`, string((*requests)[0].Body))
}

func TestUpdateConsultantNeverSendsAvailability(t *testing.T) {
	client, requests := newTestClient(t)

	_, err := client.UpdateConsultant(context.Background(), "c-1", ConsultantFields{
		Name:              "Ola",
		Email:             "ola@example.com",
		YearsOfExperience: 8,
		WantsNewProject:   true,
	})
	require.NoError(t, err)

	req := (*requests)[0]
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/consultants/c-1", req.Path)
	assert.NotContains(t, string(req.Body), "availability")
}

func TestAssignmentEndpoints(t *testing.T) {
	client, requests := newTestClient(t)
	ctx := context.Background()

	_, err := client.AddSkill(ctx, "c-1", AddSkillRequest{SkillID: "s-1", SkillYearsOfExperience: 3})
	require.NoError(t, err)

	_, err = client.AssignProject(ctx, "c-1", AssignProjectRequest{ProjectID: "p-1", Role: "Backend", AllocationPercent: 80, IsActive: true})
	require.NoError(t, err)

	_, err = client.DeactivateAssignment(ctx, "c-1", "p-1")
	require.NoError(t, err)

	_, err = client.RemoveAssignment(ctx, "c-1", "p-1")
	require.NoError(t, err)

	paths := make([]string, len(*requests))
	methods := make([]string, len(*requests))
	for i, r := range *requests {
		paths[i] = r.Path
		methods[i] = r.Method
	}
	assert.Equal(t, []string{
		"/consultants/c-1/skills",
		"/consultants/c-1/projects",
		"/consultants/c-1/projects/p-1/deactivate",
		"/consultants/c-1/projects/p-1",
	}, paths)
	assert.Equal(t, []string{
		http.MethodPost,
		http.MethodPost,
		http.MethodPatch,
		http.MethodDelete,
	}, methods)
}

func TestSearchConsultantsQuery(t *testing.T) {
	client, requests := newTestClient(t)

	_, err := client.SearchConsultants(context.Background(), &search.Filters{
		SkillNames:   []string{"Go", "Rust"},
		Roles:        []string{"Backend"},
		Availability: search.Bool(true),
	})
	require.NoError(t, err)

	req := (*requests)[0]
	assert.Equal(t, "/consultants/search", req.Path)
	assert.Equal(t, "availability=true&role=Backend&skillNames=Go&skillNames=Rust", req.Query)
}

func TestSearchConsultantsNoFilters(t *testing.T) {
	client, requests := newTestClient(t)

	_, err := client.SearchConsultants(context.Background(), &search.Filters{})
	require.NoError(t, err)
	assert.Empty(t, (*requests)[0].Query)
}

func TestGetConsultantNotFound(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.GetConsultant(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNon2xxReportsStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := New(srv.URL, time.Second, logger)

	_, err := client.ListSkills(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "boom")
}

func TestDeleteConsultant(t *testing.T) {
	client, requests := newTestClient(t)

	require.NoError(t, client.DeleteConsultant(context.Background(), "c-1"))
	assert.Equal(t, http.MethodDelete, (*requests)[0].Method)
	assert.Equal(t, "/consultants/c-1", (*requests)[0].Path)
}
