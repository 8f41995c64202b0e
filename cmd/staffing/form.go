package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/BachelorAccenture/datadrevet-staffing-web/cmd/staffing/ui"
	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/api"
	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/refdata"
	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/staging"
)

// consultantFlags are the base-field flags shared by add and edit.
type consultantFlags struct {
	name     string
	email    string
	years    int
	wantsNew bool
	remote   bool
}

func (f *consultantFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "consultant name")
	cmd.Flags().StringVar(&f.email, "email", "", "consultant email")
	cmd.Flags().IntVar(&f.years, "years", 0, "years of experience")
	cmd.Flags().BoolVar(&f.wantsNew, "wants-new-project", false, "consultant wants a new project")
	cmd.Flags().BoolVar(&f.remote, "open-to-remote", false, "consultant is open to remote work")
}

func (f *consultantFlags) set(cmd *cobra.Command) bool {
	for _, name := range []string{"name", "email", "years", "wants-new-project", "open-to-remote"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// overlay applies only the flags the user actually set, leaving the rest
// of the loaded record untouched.
func (f *consultantFlags) overlay(cmd *cobra.Command, fields *api.ConsultantFields) {
	if cmd.Flags().Changed("name") {
		fields.Name = f.name
	}
	if cmd.Flags().Changed("email") {
		fields.Email = f.email
	}
	if cmd.Flags().Changed("years") {
		fields.YearsOfExperience = f.years
	}
	if cmd.Flags().Changed("wants-new-project") {
		fields.WantsNewProject = f.wantsNew
	}
	if cmd.Flags().Changed("open-to-remote") {
		fields.OpenToRemote = f.remote
	}
}

// stagingFlags stage skill additions and one project assignment from the
// command line.
type stagingFlags struct {
	skills    []string
	newSkills []string

	project      string
	role         string
	allocation   int
	inactive     bool
	projectStart string
	projectEnd   string
}

func (f *stagingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.skills, "skill", nil, "stage an existing catalog skill as NAME or NAME=YEARS (repeatable)")
	cmd.Flags().StringArrayVar(&f.newSkills, "new-skill", nil, "stage a new skill as NAME or NAME=YEARS (repeatable)")
	cmd.Flags().StringVar(&f.project, "project", "", "stage an assignment on this project (name or id; unknown names create a project)")
	cmd.Flags().StringVar(&f.role, "role", "", "role for the staged assignment")
	cmd.Flags().IntVar(&f.allocation, "allocation", 100, "allocation percent for the staged assignment")
	cmd.Flags().BoolVar(&f.inactive, "inactive", false, "stage the assignment as inactive")
	cmd.Flags().StringVar(&f.projectStart, "project-start", "", "assignment start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.projectEnd, "project-end", "", "assignment end date (YYYY-MM-DD)")
}

func (f *stagingFlags) set(cmd *cobra.Command) bool {
	return len(f.skills) > 0 || len(f.newSkills) > 0 || f.project != ""
}

func (f *stagingFlags) apply(cs *staging.Changeset, catalog *refdata.Catalog) error {
	for _, spec := range f.skills {
		name, years := parseSkillSpec(spec)
		skill, ok := catalog.SkillByName(name)
		if !ok {
			return fmt.Errorf("unknown skill %q, use --new-skill to create it", name)
		}
		if err := cs.StageExistingSkill(*skill, years); err != nil {
			return err
		}
	}

	for _, spec := range f.newSkills {
		name, years := parseSkillSpec(spec)
		if err := cs.StageNewSkill(name, nil, years); err != nil {
			return err
		}
	}

	if f.project != "" {
		add := staging.AssignmentAddition{
			Role:              f.role,
			AllocationPercent: f.allocation,
			IsActive:          !f.inactive,
			StartDate:         f.projectStart,
			EndDate:           f.projectEnd,
		}
		if p, ok := catalog.ProjectByName(f.project); ok {
			add.ProjectID = p.ID
			add.ProjectName = p.Name
		} else if p, ok := catalog.ProjectByID(f.project); ok {
			add.ProjectID = p.ID
			add.ProjectName = p.Name
		} else {
			add.NewName = f.project
		}
		if err := cs.StageAssignment(add); err != nil {
			return err
		}
	}

	return nil
}

// parseSkillSpec splits "Rust=3" into ("Rust", 3); a bare name means 0
// years.
func parseSkillSpec(spec string) (string, int) {
	name, yearsPart, found := strings.Cut(spec, "=")
	if !found {
		return strings.TrimSpace(spec), 0
	}
	years, err := strconv.Atoi(strings.TrimSpace(yearsPart))
	if err != nil {
		years = 0
	}
	return strings.TrimSpace(name), years
}

// runForm drives the interactive add/edit form and reports its outcome.
func runForm(cs *staging.Changeset, catalog *refdata.Catalog, seq *staging.Sequencer) error {
	form := ui.NewForm(cs, catalog, seq)
	if _, err := tea.NewProgram(form).Run(); err != nil {
		return fmt.Errorf("form: %w", err)
	}

	outcome := form.Outcome()
	if outcome.Cancelled {
		fmt.Println("Cancelled, nothing saved.")
		return nil
	}
	return reportResult(outcome.Result)
}

// reportResult prints which commit steps landed. On failure the applied
// prefix is listed explicitly: those steps are not rolled back and will
// not be re-offered.
func reportResult(res *staging.Result) error {
	for _, step := range res.Applied {
		fmt.Printf("  ok: %s\n", step)
	}
	if res.Err != nil {
		if res.Failed != "" {
			fmt.Printf("  failed: %s\n", res.Failed)
		}
		if len(res.Applied) > 0 {
			fmt.Printf("%d step(s) were already applied and are not rolled back.\n", len(res.Applied))
		}
		return res.Err
	}
	fmt.Printf("Saved consultant %s.\n", res.ConsultantID)
	return nil
}
