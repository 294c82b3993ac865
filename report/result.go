package report

import "github.com/google/uuid"

// Result is one city's validation output, matching spec.md §6's
// "Validation result (output)" shape field-for-field.
type Result struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Continent string `json:"continent"`

	StationsExpected  int `json:"stations_expected"`
	SubwaylExpected   int `json:"subwayl_expected"`
	LightrlExpected   int `json:"lightrl_expected"`
	TransfersExpected int `json:"transfers_expected"`

	StationsFound  int `json:"stations_found"`
	SubwaylFound   int `json:"subwayl_found"`
	LightrlFound   int `json:"lightrl_found"`
	TransfersFound int `json:"transfers_found"`

	UnusedEntrances int `json:"unused_entrances"`
	Networks        int `json:"networks"`

	Warnings []string `json:"warnings"`
	Errors   []string `json:"errors"`
}

// IsGood reports whether this city's validation produced no errors.
func (r Result) IsGood() bool {
	return len(r.Errors) == 0
}

// Run groups the results of validating every city in one invocation under
// a stable identifier, the way the teacher's ValidationResult carries a
// ValidationReportID.
type Run struct {
	ID      string   `json:"id"`
	Results []Result `json:"results"`
}

// NewRun assigns a fresh run identifier to a set of per-city results.
func NewRun(results []Result) Run {
	return Run{ID: uuid.NewString(), Results: results}
}
