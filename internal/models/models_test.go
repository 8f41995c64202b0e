package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueRolesSortedAndDeduplicated(t *testing.T) {
	consultants := []Consultant{
		{ProjectAssignments: []ProjectAssignment{
			{Role: "Backend"},
			{Role: "Frontend"},
			{Role: ""},
		}},
		{ProjectAssignments: []ProjectAssignment{
			{Role: "Backend"},
			{Role: "Architect"},
		}},
	}

	assert.Equal(t, []string{"Architect", "Backend", "Frontend"}, UniqueRoles(consultants))
}

func TestProjectRoles(t *testing.T) {
	projects := []Project{
		{Roles: map[string]int{"Frontend": 2}},
		{Roles: map[string]int{"Backend": 1, "Frontend": 1}},
		{},
	}

	assert.Equal(t, []string{"Backend", "Frontend"}, ProjectRoles(projects))
}

func TestConsultantHelpers(t *testing.T) {
	c := Consultant{
		Skills: []SkillAssociation{{SkillID: "s-1", SkillName: "Go"}},
		ProjectAssignments: []ProjectAssignment{
			{ProjectID: "p-1", IsActive: true},
			{ProjectID: "p-2", IsActive: false},
		},
	}

	assert.True(t, c.HasSkill("s-1"))
	assert.False(t, c.HasSkill("s-2"))
	assert.True(t, c.HasAssignment("p-2"))
	assert.False(t, c.HasAssignment("p-3"))
	assert.Equal(t, 1, c.ActiveAssignments())
}

func TestConsultantWireFormat(t *testing.T) {
	payload := `{
		"id": "c-1",
		"name": "Kari Nordmann",
		"email": "kari@example.com",
		"yearsOfExperience": 6,
		"availability": false,
		"wantsNewProject": true,
		"openToRemote": false,
		"skills": [{"skillId": "s-1", "skillName": "Go", "skillYearsOfExperience": 4}],
		"projectAssignments": [{"projectId": "p-1", "projectName": "Atlas", "role": "Backend", "allocationPercent": 80, "isActive": true}]
	}`

	var c Consultant
	require.NoError(t, json.Unmarshal([]byte(payload), &c))

	assert.Equal(t, "Kari Nordmann", c.Name)
	assert.Equal(t, 6, c.YearsOfExperience)
	assert.True(t, c.WantsNewProject)
	require.Len(t, c.Skills, 1)
	assert.Equal(t, 4, c.Skills[0].SkillYearsOfExperience)
	require.Len(t, c.ProjectAssignments, 1)
	assert.Equal(t, 80, c.ProjectAssignments[0].AllocationPercent)
}

func TestSkillAndCompanyNames(t *testing.T) {
	assert.Equal(t, []string{"Go", "Rust"}, SkillNames([]Skill{{Name: "Rust"}, {Name: "Go"}}))
	assert.Equal(t, []string{"DNB", "Telenor"}, CompanyNames([]Company{{Name: "Telenor"}, {Name: "DNB"}}))
}
