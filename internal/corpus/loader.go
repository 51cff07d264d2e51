package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lunarlife/spacebio/internal/model"
)

// AbstractUnavailable is the sentinel stored for rows without an
// abstract, so downstream text operations always see a non-empty field.
const AbstractUnavailable = "Abstract not available."

// ErrMissingColumn reports that a required CSV column (title, abstract
// or link, under any accepted alias) is absent.
var ErrMissingColumn = errors.New("required column missing")

// columnAliases maps lowered header names onto canonical field names.
var columnAliases = map[string]string{
	"title":               "title",
	"abstract":            "abstract",
	"link":                "link",
	"url":                 "link",
	"results":             "results",
	"conclusion":          "conclusion",
	"results/conclusion":  "results_conclusion",
	"results_conclusion":  "results_conclusion",
	"authors":             "authors",
	"author":              "authors",
	"year":                "year",
	"organism":            "organism",
	"experiment_type":     "experiment_type",
	"experiment type":     "experiment_type",
	"mission":             "mission",
	"mission relevance":   "mission",
	"keywords":            "keywords",
}

var requiredColumns = []string{"title", "abstract", "link"}

// Loader reads a publications CSV into an ordered slice of records:
// headers are canonicalized through the alias table, text fields are
// normalized, rows whose title duplicates an earlier one are dropped
// (first occurrence wins), missing abstracts get the sentinel, and
// taxonomy tags are attached. Pure function of the file contents.
type Loader struct {
	// MaxKeywords bounds derived keywords per record; <= 0 uses
	// DefaultMaxKeywords.
	MaxKeywords int
}

// Load reads and cleans the corpus at path.
func (l Loader) Load(path string) ([]model.Publication, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading corpus header %s: %w", path, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if canonical, ok := columnAliases[key]; ok {
			if _, dup := cols[canonical]; !dup {
				cols[canonical] = i
			}
		}
	}
	for _, required := range requiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("corpus %s: %w: %s", path, ErrMissingColumn, required)
		}
	}

	var pubs []model.Publication
	seen := make(map[string]bool)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading corpus row %s: %w", path, err)
		}

		field := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return Normalize(row[idx])
		}

		title := field("title")
		if title == "" || seen[title] {
			continue
		}
		seen[title] = true

		abstract := field("abstract")
		if abstract == "" {
			abstract = AbstractUnavailable
		}

		results := field("results")
		if combined := field("results_conclusion"); combined != "" {
			if results == "" {
				results = combined
			} else {
				results = results + " " + combined
			}
		}

		pub := model.Publication{
			Title:      title,
			Abstract:   abstract,
			Link:       field("link"),
			Results:    results,
			Conclusion: field("conclusion"),
			Authors:    field("authors"),
			Year:       field("year"),
		}

		tags := Extract(title+" "+abstract, l.MaxKeywords)
		pub.Organisms = mergeTags(splitList(field("organism")), tags.Organisms)
		pub.ExperimentTypes = mergeTags(splitList(field("experiment_type")), tags.ExperimentTypes)
		pub.Missions = mergeTags(splitList(field("mission")), tags.Missions)
		if explicit := splitList(field("keywords")); len(explicit) > 0 {
			pub.Keywords = explicit
		} else {
			pub.Keywords = tags.Keywords
		}

		pubs = append(pubs, pub)
	}

	return pubs, nil
}

// splitList parses a comma-joined CSV cell into trimmed values.
func splitList(cell string) []string {
	if cell == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(cell, ",") {
		if v := strings.TrimSpace(part); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// mergeTags unions explicit column tags with derived tags, explicit
// first, case-insensitively deduplicated in first-seen order.
func mergeTags(explicit, derived []string) []string {
	seen := make(map[string]bool)
	var merged []string
	for _, list := range [][]string{explicit, derived} {
		for _, tag := range list {
			key := strings.ToLower(tag)
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, tag)
		}
	}
	return merged
}
