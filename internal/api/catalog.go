package api

import (
	"context"
	"net/http"

	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/models"
)

// CreateSkillRequest is the payload for POST /skills.
type CreateSkillRequest struct {
	Name     string   `json:"name"`
	Synonyms []string `json:"synonyms"`
}

// CreateProjectRequest is the payload for POST /projects. Dates are
// day-precision datetimes in "YYYY-MM-DDT00:00:00" form.
type CreateProjectRequest struct {
	Name      string `json:"name"`
	CompanyID string `json:"companyId,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// ListSkills fetches the full skill catalog.
func (c *Client) ListSkills(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	if err := c.do(ctx, http.MethodGet, "/skills", nil, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// CreateSkill creates a catalog skill and returns it with its
// backend-assigned identity.
func (c *Client) CreateSkill(ctx context.Context, req CreateSkillRequest) (*models.Skill, error) {
	if req.Synonyms == nil {
		req.Synonyms = []string{}
	}
	var skill models.Skill
	if err := c.do(ctx, http.MethodPost, "/skills", req, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

// ListCompanies fetches the full company catalog.
func (c *Client) ListCompanies(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	if err := c.do(ctx, http.MethodGet, "/companies", nil, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// ListProjects fetches the full project catalog.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject creates a project and returns it with its backend-assigned
// identity.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodPost, "/projects", req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}
