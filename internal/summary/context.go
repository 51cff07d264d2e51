// Package summary assembles publication context, drives the
// text-generation backends and parses their replies into structured
// results.
package summary

import (
	"strings"

	"github.com/lunarlife/spacebio/internal/model"
)

// DefaultMaxContextChars bounds the assembled context so backend
// request payloads stay finite.
const DefaultMaxContextChars = 2000

// AssembleOptions configure context assembly for one call.
type AssembleOptions struct {
	// Question, when non-empty, is appended as a labeled section.
	Question string
	// IncludeExtended appends the results and conclusion sections
	// when the record has them.
	IncludeExtended bool
	// MaxChars is the character budget applied after concatenation;
	// <= 0 means DefaultMaxContextChars.
	MaxChars int
}

// AssembleContext builds the bounded prompt context for a publication:
// abstract, optionally results and conclusion, and the question as a
// labeled section. Truncation happens at the character boundary after
// concatenation and trimming.
func AssembleContext(pub model.Publication, opts AssembleOptions) string {
	maxChars := opts.MaxChars
	if maxChars <= 0 {
		maxChars = DefaultMaxContextChars
	}

	parts := []string{pub.Abstract}
	if opts.IncludeExtended {
		if pub.Results != "" {
			parts = append(parts, pub.Results)
		}
		if pub.Conclusion != "" {
			parts = append(parts, pub.Conclusion)
		}
	}

	text := strings.TrimSpace(strings.Join(parts, " "))
	if q := strings.TrimSpace(opts.Question); q != "" {
		text += "\n\nQuestion: " + q
	}

	runes := []rune(text)
	if len(runes) > maxChars {
		text = string(runes[:maxChars])
	}
	return text
}
