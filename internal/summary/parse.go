package summary

import (
	"regexp"
	"sort"
	"strings"

	"github.com/lunarlife/spacebio/internal/model"
)

// section labels recognized in replies, with their header aliases.
const (
	sectionIntroduction = "introduction"
	sectionMethods      = "methods"
	sectionResults      = "results"
	sectionConclusion   = "conclusion"
)

var sectionPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{sectionIntroduction, regexp.MustCompile(`(?i)\b(introduction|background)\b[:.]?`)},
	{sectionMethods, regexp.MustCompile(`(?i)\b(methods|methodology)\b[:.]?`)},
	{sectionResults, regexp.MustCompile(`(?i)\b(results|findings)\b[:.]?`)},
	{sectionConclusion, regexp.MustCompile(`(?i)\b(conclusion|conclusions|discussion|summary)\b[:.]?`)},
}

var bulletPattern = regexp.MustCompile(`^\s*(?:[-*•–]|\d+[.)])\s+(.+)$`)

// domainTermWeights score how strongly generated text touches
// space-mission terminology. Magnitudes are tuning constants.
var domainTermWeights = []struct {
	term   string
	weight float64
}{
	{"microgravity", 2.0},
	{"spaceflight", 1.8},
	{"mars", 1.5},
	{"radiation", 1.5},
	{"iss", 1.5},
	{"lunar", 1.4},
	{"astronaut", 1.2},
	{"orbit", 1.0},
	{"space", 1.0},
	{"gravity", 1.0},
}

// relevanceNorm divides the weighted term-hit sum before capping at
// 1.0; roughly three strong domain terms saturate the score.
const relevanceNorm = 6.0

var domainTermPatterns = compileDomainTerms()

func compileDomainTerms() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(domainTermWeights))
	for _, dt := range domainTermWeights {
		patterns[dt.term] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(dt.term) + `\b`)
	}
	return patterns
}

// parseReply slices a raw backend reply into a SummaryResult: content
// between consecutive header matches (ordered by first occurrence)
// fills the matching sections, bullet-marked lines become key findings
// and the heuristic relevance score is computed over the whole reply.
// A reply with no recognizable headers lands whole in Results so the
// text is not lost.
func parseReply(reply string) model.SummaryResult {
	var result model.SummaryResult

	type headerMatch struct {
		name       string
		start, end int
	}
	var matches []headerMatch
	for _, sp := range sectionPatterns {
		if loc := sp.pattern.FindStringIndex(reply); loc != nil {
			matches = append(matches, headerMatch{name: sp.name, start: loc[0], end: loc[1]})
		}
	}
	sort.Slice(matches, func(a, b int) bool { return matches[a].start < matches[b].start })

	sections := make(map[string]string)
	for i, m := range matches {
		end := len(reply)
		if i+1 < len(matches) {
			end = matches[i+1].start
		}
		content := strings.Trim(reply[m.end:end], " \t\n\r:*#-")
		if _, taken := sections[m.name]; !taken {
			sections[m.name] = content
		}
	}

	result.Introduction = sections[sectionIntroduction]
	result.Methods = sections[sectionMethods]
	result.Results = sections[sectionResults]
	result.Conclusion = sections[sectionConclusion]

	result.KeyFindings = extractKeyFindings(reply)
	result.RelevanceScore = relevanceScore(reply)

	if len(matches) == 0 {
		result.Results = strings.TrimSpace(reply)
	}
	return result
}

func extractKeyFindings(reply string) []string {
	var findings []string
	for _, line := range strings.Split(reply, "\n") {
		if m := bulletPattern.FindStringSubmatch(line); m != nil {
			if f := strings.TrimSpace(m[1]); f != "" {
				findings = append(findings, f)
			}
		}
	}
	return findings
}

// relevanceScore is a normalized weighted sum of domain-term
// occurrences, capped at 1.0.
func relevanceScore(text string) float64 {
	sum := 0.0
	for _, dt := range domainTermWeights {
		hits := len(domainTermPatterns[dt.term].FindAllStringIndex(text, -1))
		sum += float64(hits) * dt.weight
	}
	score := sum / relevanceNorm
	if score > 1.0 {
		score = 1.0
	}
	return score
}
