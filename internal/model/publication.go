package model

import "fmt"

// Publication is one deduplicated row of the loaded corpus. Text fields
// are never "missing": absence is the empty string (or the abstract
// sentinel set by the loader), so substring matching downstream never
// has to null-check.
type Publication struct {
	Title           string   `json:"title"`
	Abstract        string   `json:"abstract"`
	Link            string   `json:"link"`
	Results         string   `json:"results,omitempty"`
	Conclusion      string   `json:"conclusion,omitempty"`
	Authors         string   `json:"authors,omitempty"`
	Year            string   `json:"year,omitempty"`
	Organisms       []string `json:"organisms,omitempty"`
	ExperimentTypes []string `json:"experiment_types,omitempty"`
	Missions        []string `json:"missions,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
}

// Citation renders the publication as "Authors (Year). Title." with
// placeholders for rows that carry no author/year metadata.
func (p Publication) Citation() string {
	authors := p.Authors
	if authors == "" {
		authors = "Unknown Authors"
	}
	year := p.Year
	if year == "" {
		year = "N/A"
	}
	return fmt.Sprintf("%s (%s). %s.", authors, year, p.Title)
}
