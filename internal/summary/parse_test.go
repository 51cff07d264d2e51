package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const structuredReply = `Introduction: Mice were studied during long-duration flight.
Methods: Twelve animals spent thirty days in orbit.
Findings:
- Significant loss of density was observed
- Microgravity reduced formation markers
Conclusion: Microgravity drives measurable degradation.`

func TestParseReplySections(t *testing.T) {
	result := parseReply(structuredReply)

	assert.Equal(t, "Mice were studied during long-duration flight.", result.Introduction)
	assert.Equal(t, "Twelve animals spent thirty days in orbit.", result.Methods)
	assert.Contains(t, result.Results, "Significant loss of density was observed")
	assert.Equal(t, "Microgravity drives measurable degradation.", result.Conclusion)
}

func TestParseReplyAliases(t *testing.T) {
	reply := "Background: why the study ran.\nDiscussion: what it means."
	result := parseReply(reply)

	assert.Equal(t, "why the study ran.", result.Introduction)
	assert.Equal(t, "what it means.", result.Conclusion)
	assert.Empty(t, result.Methods)
	assert.Empty(t, result.Results)
}

func TestParseReplyKeyFindings(t *testing.T) {
	result := parseReply(structuredReply)

	require.Len(t, result.KeyFindings, 2)
	assert.Equal(t, "Significant loss of density was observed", result.KeyFindings[0])
	assert.Equal(t, "Microgravity reduced formation markers", result.KeyFindings[1])
}

func TestParseReplyNumberedFindings(t *testing.T) {
	result := parseReply("1. first finding\n2) second finding\n* third finding")

	assert.Equal(t, []string{"first finding", "second finding", "third finding"}, result.KeyFindings)
}

func TestParseReplyNoHeadersKeepsText(t *testing.T) {
	result := parseReply("A single plain sentence about plants.")

	assert.Equal(t, "A single plain sentence about plants.", result.Results)
	assert.Empty(t, result.Introduction)
	assert.Empty(t, result.Conclusion)
}

func TestRelevanceScoreBounds(t *testing.T) {
	assert.Equal(t, 0.0, relevanceScore("nothing about the topic"))

	score := relevanceScore("microgravity on mars")
	assert.Greater(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)

	saturated := relevanceScore("microgravity microgravity mars mars radiation spaceflight iss")
	assert.Equal(t, 1.0, saturated)
}

func TestStructuredReplyScoresRelevance(t *testing.T) {
	result := parseReply(structuredReply)
	assert.Greater(t, result.RelevanceScore, 0.0)
	assert.LessOrEqual(t, result.RelevanceScore, 1.0)
}
