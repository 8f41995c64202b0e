package models

import "sort"

// Skill is a catalog skill. Name is effectively unique within the catalog.
type Skill struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Synonyms []string `json:"synonyms"`
}

// Company is a client company that can own projects.
type Company struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Field string `json:"field"`
}

// Project is a staffable engagement, optionally owned by a company.
// Roles maps a role name to its headcount requirement.
type Project struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Requirements []string       `json:"requirements"`
	StartDate    string         `json:"startDate,omitempty"`
	EndDate      string         `json:"endDate,omitempty"`
	Company      *Company       `json:"company"`
	Roles        map[string]int `json:"roles,omitempty"`
}

// SkillNames returns the sorted names of the given skills.
func SkillNames(skills []Skill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}

// CompanyNames returns the sorted names of the given companies.
func CompanyNames(companies []Company) []string {
	names := make([]string, 0, len(companies))
	for _, c := range companies {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}

// ProjectRoles collects the distinct, sorted role names declared in the
// given projects' headcount requirements.
func ProjectRoles(projects []Project) []string {
	seen := map[string]struct{}{}
	for i := range projects {
		for role := range projects[i].Roles {
			seen[role] = struct{}{}
		}
	}
	roles := make([]string, 0, len(seen))
	for r := range seen {
		roles = append(roles, r)
	}
	sort.Strings(roles)
	return roles
}
