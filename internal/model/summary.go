package model

import (
	"strings"
	"time"
)

// SummaryResult is the structured output of one generation call. A
// result is built once and never mutated; Error is non-empty exactly
// when generation failed, in which case every text field is empty and
// the result is terminal (callers decide whether to retry).
type SummaryResult struct {
	Introduction   string    `json:"introduction,omitempty"`
	Methods        string    `json:"methods,omitempty"`
	Results        string    `json:"results,omitempty"`
	Conclusion     string    `json:"conclusion,omitempty"`
	KeyFindings    []string  `json:"key_findings,omitempty"`
	RelevanceScore float64   `json:"relevance_score"`
	Backend        string    `json:"backend_used"`
	GeneratedAt    time.Time `json:"generated_at"`
	Error          string    `json:"error,omitempty"`
}

// Failed reports whether the generation call produced an error instead
// of content.
func (r SummaryResult) Failed() bool { return r.Error != "" }

// DisplayText picks the best single-string rendering of the result for
// a chat answer: key findings first, then the richest section.
func (r SummaryResult) DisplayText() string {
	switch {
	case r.Error != "":
		return "Error: " + r.Error
	case len(r.KeyFindings) > 0:
		return strings.Join(r.KeyFindings, "\n")
	case r.Results != "":
		return r.Results
	case r.Introduction != "":
		return r.Introduction
	case r.Conclusion != "":
		return r.Conclusion
	case r.Methods != "":
		return r.Methods
	}
	return ""
}

// ChatTurn is one question/answer exchange scoped to a publication
// within a session. Answer always carries the display text; Result is
// set when the answer came from the summarization gateway.
type ChatTurn struct {
	Question string         `json:"question"`
	Answer   string         `json:"answer"`
	Result   *SummaryResult `json:"result,omitempty"`
	AskedAt  time.Time      `json:"asked_at"`
}
