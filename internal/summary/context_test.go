package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lunarlife/spacebio/internal/model"
)

func TestAssembleAbstractOnly(t *testing.T) {
	pub := model.Publication{
		Abstract:   "Bone loss in mice.",
		Results:    "Density dropped.",
		Conclusion: "Countermeasures needed.",
	}

	got := AssembleContext(pub, AssembleOptions{})
	assert.Equal(t, "Bone loss in mice.", got)
}

func TestAssembleIncludesExtendedSections(t *testing.T) {
	pub := model.Publication{
		Abstract:   "Bone loss in mice.",
		Results:    "Density dropped.",
		Conclusion: "Countermeasures needed.",
	}

	got := AssembleContext(pub, AssembleOptions{IncludeExtended: true})
	assert.Equal(t, "Bone loss in mice. Density dropped. Countermeasures needed.", got)
}

func TestAssembleSkipsEmptyExtendedSections(t *testing.T) {
	pub := model.Publication{Abstract: "Bone loss in mice."}

	got := AssembleContext(pub, AssembleOptions{IncludeExtended: true})
	assert.Equal(t, "Bone loss in mice.", got)
}

func TestAssembleAppendsLabeledQuestion(t *testing.T) {
	pub := model.Publication{Abstract: "Bone loss in mice."}

	got := AssembleContext(pub, AssembleOptions{Question: "What caused it?"})
	assert.Equal(t, "Bone loss in mice.\n\nQuestion: What caused it?", got)
}

func TestAssembleTruncationBound(t *testing.T) {
	pub := model.Publication{
		Abstract:   strings.Repeat("word ", 1000),
		Results:    strings.Repeat("more ", 1000),
		Conclusion: strings.Repeat("text ", 1000),
	}

	got := AssembleContext(pub, AssembleOptions{Question: "Why?", IncludeExtended: true})
	assert.LessOrEqual(t, len([]rune(got)), DefaultMaxContextChars)

	got = AssembleContext(pub, AssembleOptions{IncludeExtended: true, MaxChars: 100})
	assert.LessOrEqual(t, len([]rune(got)), 100)
}
