package corpus

import "strings"

// DefaultMaxKeywords bounds the number of derived keywords per record.
const DefaultMaxKeywords = 10

// minKeywordLen excludes short stopword-ish tokens from keywords.
const minKeywordLen = 4

// taxonomyEntry maps one tag to the substrings that trigger it.
// Tables are scanned in definition order so extracted tags keep a
// stable first-seen ordering.
type taxonomyEntry struct {
	Tag      string
	Triggers []string
}

var organismTaxonomy = []taxonomyEntry{
	{"mice", []string{"mouse", "mice", "murine", "rodent"}},
	{"plants", []string{"plant", "arabidopsis", "seedling"}},
	{"cells", []string{"cell culture", "cell line", "cells", "cellular"}},
	{"microbes", []string{"bacteria", "microbial", "microbe", "yeast"}},
	{"humans", []string{"astronaut", "human subject", "crew member"}},
}

var experimentTaxonomy = []taxonomyEntry{
	{"microgravity", []string{"microgravity", "weightlessness", "spaceflight"}},
	{"genomics", []string{"genom", "transcriptom", "gene expression"}},
	{"bone", []string{"bone", "osteop", "skeletal"}},
	{"immune", []string{"immune", "immuno"}},
	{"radiation", []string{"radiat", "ioniz", "cosmic ray"}},
}

var missionTaxonomy = []taxonomyEntry{
	{"ISS", []string{"iss", "international space station", "space station"}},
	{"Bion-M1", []string{"bion-m1", "bion-m 1", "bion m1"}},
	{"Shuttle", []string{"space shuttle", "shuttle"}},
	{"Mars", []string{"mars", "martian"}},
}

// Tags is the coarse metadata derived from a publication's text.
type Tags struct {
	Organisms       []string
	ExperimentTypes []string
	Missions        []string
	Keywords        []string
}

// Extract matches text case-insensitively against the fixed taxonomy
// tables and collects every matching tag per category, plus up to
// maxKeywords whitespace-delimited tokens longer than three characters
// in left-to-right order. maxKeywords <= 0 means DefaultMaxKeywords.
func Extract(text string, maxKeywords int) Tags {
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}
	lower := strings.ToLower(text)
	tokens := tokenize(lower)
	tokenSet := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = true
	}

	return Tags{
		Organisms:       matchTaxonomy(lower, tokenSet, organismTaxonomy),
		ExperimentTypes: matchTaxonomy(lower, tokenSet, experimentTaxonomy),
		Missions:        matchTaxonomy(lower, tokenSet, missionTaxonomy),
		Keywords:        deriveKeywords(tokens, maxKeywords),
	}
}

func matchTaxonomy(lower string, tokens map[string]bool, table []taxonomyEntry) []string {
	var tags []string
	for _, entry := range table {
		for _, trigger := range entry.Triggers {
			if triggerHit(lower, tokens, trigger) {
				tags = append(tags, entry.Tag)
				break
			}
		}
	}
	return tags
}

// triggerHit requires an exact token match for very short triggers
// ("iss" must not fire on "tissue"); longer triggers use a plain
// substring test.
func triggerHit(lower string, tokens map[string]bool, trigger string) bool {
	if len(trigger) <= 3 {
		return tokens[trigger]
	}
	return strings.Contains(lower, trigger)
}

func deriveKeywords(tokens []string, max int) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, tok := range tokens {
		if len(tok) < minKeywordLen || seen[tok] {
			continue
		}
		seen[tok] = true
		keywords = append(keywords, tok)
		if len(keywords) == max {
			break
		}
	}
	return keywords
}

// tokenize splits lowered text on whitespace and trims surrounding
// punctuation from each token.
func tokenize(lower string) []string {
	fields := strings.Fields(lower)
	tokens := fields[:0]
	for _, f := range fields {
		t := strings.Trim(f, ".,;:!?()[]{}\"'`")
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
