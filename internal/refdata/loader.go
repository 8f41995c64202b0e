// Package refdata loads the fixed vocabularies (skills, companies,
// projects, and optionally consultants) that selection widgets and forms
// are populated from. Loads fan out concurrently and join before any
// dependent UI is built; a single failed fetch fails the whole load, and
// the caller reports it without retrying.
package refdata

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/models"
)

// Source is the subset of the backend client the loader needs.
type Source interface {
	ListSkills(ctx context.Context) ([]models.Skill, error)
	ListCompanies(ctx context.Context) ([]models.Company, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListConsultants(ctx context.Context) ([]models.Consultant, error)
}

// Catalog holds one consistent snapshot of the reference data.
type Catalog struct {
	Skills      []models.Skill
	Companies   []models.Company
	Projects    []models.Project
	Consultants []models.Consultant
}

// Load fetches skills, companies, and projects concurrently. withConsultants
// additionally fetches the consultant collection, needed where role
// vocabularies are derived from existing assignments.
func Load(ctx context.Context, src Source, withConsultants bool) (*Catalog, error) {
	cat := &Catalog{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		skills, err := src.ListSkills(ctx)
		if err != nil {
			return fmt.Errorf("loading skills: %w", err)
		}
		cat.Skills = skills
		return nil
	})
	g.Go(func() error {
		companies, err := src.ListCompanies(ctx)
		if err != nil {
			return fmt.Errorf("loading companies: %w", err)
		}
		cat.Companies = companies
		return nil
	})
	g.Go(func() error {
		projects, err := src.ListProjects(ctx)
		if err != nil {
			return fmt.Errorf("loading projects: %w", err)
		}
		cat.Projects = projects
		return nil
	})
	if withConsultants {
		g.Go(func() error {
			consultants, err := src.ListConsultants(ctx)
			if err != nil {
				return fmt.Errorf("loading consultants: %w", err)
			}
			cat.Consultants = consultants
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cat, nil
}

// SkillNames returns the sorted skill name vocabulary.
func (c *Catalog) SkillNames() []string {
	return models.SkillNames(c.Skills)
}

// CompanyNames returns the sorted company name vocabulary.
func (c *Catalog) CompanyNames() []string {
	return models.CompanyNames(c.Companies)
}

// AssignmentRoles returns the sorted distinct role labels found across the
// loaded consultants' project assignments.
func (c *Catalog) AssignmentRoles() []string {
	return models.UniqueRoles(c.Consultants)
}

// DeclaredRoles returns the sorted distinct role names declared in project
// headcount requirements.
func (c *Catalog) DeclaredRoles() []string {
	return models.ProjectRoles(c.Projects)
}

// SkillByName resolves a catalog skill from its display name.
func (c *Catalog) SkillByName(name string) (*models.Skill, bool) {
	for i := range c.Skills {
		if c.Skills[i].Name == name {
			return &c.Skills[i], true
		}
	}
	return nil, false
}

// CompanyByName resolves a catalog company from its display name.
func (c *Catalog) CompanyByName(name string) (*models.Company, bool) {
	for i := range c.Companies {
		if c.Companies[i].Name == name {
			return &c.Companies[i], true
		}
	}
	return nil, false
}

// ProjectByID resolves a project from its identity.
func (c *Catalog) ProjectByID(id string) (*models.Project, bool) {
	for i := range c.Projects {
		if c.Projects[i].ID == id {
			return &c.Projects[i], true
		}
	}
	return nil, false
}

// ProjectByName resolves a project from its display name.
func (c *Catalog) ProjectByName(name string) (*models.Project, bool) {
	for i := range c.Projects {
		if c.Projects[i].Name == name {
			return &c.Projects[i], true
		}
	}
	return nil, false
}
