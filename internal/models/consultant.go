package models

import "sort"

// SkillAssociation is a consultant's claimed proficiency in a catalog skill.
type SkillAssociation struct {
	SkillID                string `json:"skillId"`
	SkillName              string `json:"skillName"`
	SkillYearsOfExperience int    `json:"skillYearsOfExperience"`
}

// ProjectAssignment is a consultant's staffing record on a project.
type ProjectAssignment struct {
	ProjectID         string `json:"projectId"`
	ProjectName       string `json:"projectName"`
	Role              string `json:"role"`
	AllocationPercent int    `json:"allocationPercent"`
	IsActive          bool   `json:"isActive"`
	StartDate         string `json:"startDate,omitempty"`
	EndDate           string `json:"endDate,omitempty"`
}

// Consultant is a staffable person record with skills and project history.
// Availability is derived server-side from assignment state and is never
// set by the client.
type Consultant struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Email              string              `json:"email"`
	YearsOfExperience  int                 `json:"yearsOfExperience"`
	Availability       bool                `json:"availability"`
	WantsNewProject    bool                `json:"wantsNewProject"`
	OpenToRemote       bool                `json:"openToRemote"`
	Skills             []SkillAssociation  `json:"skills"`
	ProjectAssignments []ProjectAssignment `json:"projectAssignments"`
}

// HasSkill reports whether the consultant already has an association for
// the given skill ID.
func (c *Consultant) HasSkill(skillID string) bool {
	for _, s := range c.Skills {
		if s.SkillID == skillID {
			return true
		}
	}
	return false
}

// HasAssignment reports whether the consultant already has an assignment
// on the given project ID.
func (c *Consultant) HasAssignment(projectID string) bool {
	for _, a := range c.ProjectAssignments {
		if a.ProjectID == projectID {
			return true
		}
	}
	return false
}

// ActiveAssignments returns the number of currently active project
// assignments.
func (c *Consultant) ActiveAssignments() int {
	n := 0
	for _, a := range c.ProjectAssignments {
		if a.IsActive {
			n++
		}
	}
	return n
}

// UniqueRoles collects the distinct, sorted role labels appearing across
// the given consultants' project assignments.
func UniqueRoles(consultants []Consultant) []string {
	seen := map[string]struct{}{}
	for i := range consultants {
		for _, a := range consultants[i].ProjectAssignments {
			if a.Role != "" {
				seen[a.Role] = struct{}{}
			}
		}
	}
	roles := make([]string, 0, len(seen))
	for r := range seen {
		roles = append(roles, r)
	}
	sort.Strings(roles)
	return roles
}
