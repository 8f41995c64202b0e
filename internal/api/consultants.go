package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/models"
	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/search"
)

// ConsultantFields is the client-settable part of a consultant record,
// used for both creation and base-field updates. Availability is derived
// server-side and deliberately absent.
type ConsultantFields struct {
	Name              string `json:"name" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	YearsOfExperience int    `json:"yearsOfExperience" validate:"gte=0"`
	WantsNewProject   bool   `json:"wantsNewProject"`
	OpenToRemote      bool   `json:"openToRemote"`
}

// AddSkillRequest is the payload for POST /consultants/{id}/skills.
type AddSkillRequest struct {
	SkillID                string `json:"skillId"`
	SkillYearsOfExperience int    `json:"skillYearsOfExperience"`
}

// AssignProjectRequest is the payload for POST /consultants/{id}/projects.
type AssignProjectRequest struct {
	ProjectID         string `json:"projectId"`
	Role              string `json:"role"`
	AllocationPercent int    `json:"allocationPercent"`
	IsActive          bool   `json:"isActive"`
	StartDate         string `json:"startDate,omitempty"`
	EndDate           string `json:"endDate,omitempty"`
}

// ListConsultants fetches every consultant.
func (c *Client) ListConsultants(ctx context.Context) ([]models.Consultant, error) {
	var consultants []models.Consultant
	if err := c.do(ctx, http.MethodGet, "/consultants", nil, &consultants); err != nil {
		return nil, err
	}
	return consultants, nil
}

// GetConsultant fetches a single consultant by identity.
func (c *Client) GetConsultant(ctx context.Context, id string) (*models.Consultant, error) {
	var consultant models.Consultant
	if err := c.do(ctx, http.MethodGet, "/consultants/"+url.PathEscape(id), nil, &consultant); err != nil {
		return nil, err
	}
	return &consultant, nil
}

// CreateConsultant creates a consultant and returns it with its
// backend-assigned identity.
func (c *Client) CreateConsultant(ctx context.Context, fields ConsultantFields) (*models.Consultant, error) {
	var consultant models.Consultant
	if err := c.do(ctx, http.MethodPost, "/consultants", fields, &consultant); err != nil {
		return nil, err
	}
	return &consultant, nil
}

// UpdateConsultant replaces a consultant's base fields.
func (c *Client) UpdateConsultant(ctx context.Context, id string, fields ConsultantFields) (*models.Consultant, error) {
	var consultant models.Consultant
	if err := c.do(ctx, http.MethodPut, "/consultants/"+url.PathEscape(id), fields, &consultant); err != nil {
		return nil, err
	}
	return &consultant, nil
}

// DeleteConsultant removes a consultant.
func (c *Client) DeleteConsultant(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/consultants/"+url.PathEscape(id), nil, nil)
}

// AddSkill associates a catalog skill with a consultant. The backend
// returns the updated consultant.
func (c *Client) AddSkill(ctx context.Context, consultantID string, req AddSkillRequest) (*models.Consultant, error) {
	var consultant models.Consultant
	path := "/consultants/" + url.PathEscape(consultantID) + "/skills"
	if err := c.do(ctx, http.MethodPost, path, req, &consultant); err != nil {
		return nil, err
	}
	return &consultant, nil
}

// AssignProject adds a project assignment to a consultant. The backend
// recomputes availability and returns the updated consultant.
func (c *Client) AssignProject(ctx context.Context, consultantID string, req AssignProjectRequest) (*models.Consultant, error) {
	var consultant models.Consultant
	path := "/consultants/" + url.PathEscape(consultantID) + "/projects"
	if err := c.do(ctx, http.MethodPost, path, req, &consultant); err != nil {
		return nil, err
	}
	return &consultant, nil
}

// DeactivateAssignment marks a project assignment inactive, preserving
// history. Availability is recomputed server-side.
func (c *Client) DeactivateAssignment(ctx context.Context, consultantID, projectID string) (*models.Consultant, error) {
	var consultant models.Consultant
	path := "/consultants/" + url.PathEscape(consultantID) + "/projects/" + url.PathEscape(projectID) + "/deactivate"
	if err := c.do(ctx, http.MethodPatch, path, nil, &consultant); err != nil {
		return nil, err
	}
	return &consultant, nil
}

// RemoveAssignment deletes a project assignment outright. Availability is
// recomputed server-side.
func (c *Client) RemoveAssignment(ctx context.Context, consultantID, projectID string) (*models.Consultant, error) {
	var consultant models.Consultant
	path := "/consultants/" + url.PathEscape(consultantID) + "/projects/" + url.PathEscape(projectID)
	if err := c.do(ctx, http.MethodDelete, path, nil, &consultant); err != nil {
		return nil, err
	}
	return &consultant, nil
}

// SearchConsultants runs a backend-side consultant search. Filtering and
// ranking are entirely server-side; the client only shapes the query.
func (c *Client) SearchConsultants(ctx context.Context, filters *search.Filters) ([]models.Consultant, error) {
	path := "/consultants/search"
	if filters != nil {
		if query := filters.Values().Encode(); query != "" {
			path += "?" + query
		}
	}
	var consultants []models.Consultant
	if err := c.do(ctx, http.MethodGet, path, nil, &consultants); err != nil {
		return nil, err
	}
	return consultants, nil
}
