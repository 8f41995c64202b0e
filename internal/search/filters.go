// Package search shapes consultant search requests. It performs no
// filtering itself; all matching and ranking happens in the staffing
// backend.
package search

import (
	"net/url"
	"strconv"
)

// Filters describes one consultant search. The zero value matches every
// consultant: a dimension is only sent to the backend when it carries a
// selected value. Boolean dimensions are tri-state — nil means "don't
// filter", a non-nil value is sent explicitly — so "filter on false"
// stays distinguishable from "no filter".
type Filters struct {
	SkillNames        []string
	Roles             []string
	PreviousCompanies []string

	MinYearsOfExperience *int

	Availability    *bool
	WantsNewProject *bool
	OpenToRemote    *bool

	// StartDate and EndDate are calendar dates in YYYY-MM-DD form.
	// They are widened to day boundaries on encoding.
	StartDate string
	EndDate   string
}

// Bool returns a pointer to b, for filling tri-state fields.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n.
func Int(n int) *int { return &n }

// IsEmpty reports whether no dimension carries a value.
func (f *Filters) IsEmpty() bool {
	return len(f.SkillNames) == 0 &&
		len(f.Roles) == 0 &&
		len(f.PreviousCompanies) == 0 &&
		f.MinYearsOfExperience == nil &&
		f.Availability == nil &&
		f.WantsNewProject == nil &&
		f.OpenToRemote == nil &&
		f.StartDate == "" &&
		f.EndDate == ""
}

// Values encodes the filters as backend query parameters. List-valued
// dimensions repeat the parameter once per value. Dates are normalized to
// day boundaries: start-of-day for the start date, end-of-day for the end
// date, matching the backend's datetime comparison semantics.
func (f *Filters) Values() url.Values {
	params := url.Values{}

	for _, name := range f.SkillNames {
		params.Add("skillNames", name)
	}
	for _, role := range f.Roles {
		params.Add("role", role)
	}
	for _, company := range f.PreviousCompanies {
		params.Add("previousCompanies", company)
	}

	if f.MinYearsOfExperience != nil {
		params.Set("minYearsOfExperience", strconv.Itoa(*f.MinYearsOfExperience))
	}

	if f.Availability != nil {
		params.Set("availability", strconv.FormatBool(*f.Availability))
	}
	if f.WantsNewProject != nil {
		params.Set("wantsNewProject", strconv.FormatBool(*f.WantsNewProject))
	}
	if f.OpenToRemote != nil {
		params.Set("openToRemote", strconv.FormatBool(*f.OpenToRemote))
	}

	if f.StartDate != "" {
		params.Set("startDate", f.StartDate+"T00:00:00")
	}
	if f.EndDate != "" {
		params.Set("endDate", f.EndDate+"T23:59:59")
	}

	return params
}
