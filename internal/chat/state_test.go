package chat

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarlife/spacebio/internal/model"
)

func TestAppendAndTurns(t *testing.T) {
	s := NewStore()

	s.Append("s1", "P1", model.ChatTurn{Question: "Q1", Answer: "A1"})

	turns := s.Turns("s1", "P1")
	require.Len(t, turns, 1)
	assert.Equal(t, "Q1", turns[0].Question)
	assert.Equal(t, "A1", turns[0].Answer)

	assert.Empty(t, s.Turns("s1", "P2"))
	assert.Empty(t, s.Turns("s2", "P1"))
}

func TestTurnsKeepOrder(t *testing.T) {
	s := NewStore()
	for i := 0; i < 5; i++ {
		s.Append("s1", "P1", model.ChatTurn{Question: fmt.Sprintf("Q%d", i)})
	}

	turns := s.Turns("s1", "P1")
	require.Len(t, turns, 5)
	for i, turn := range turns {
		assert.Equal(t, fmt.Sprintf("Q%d", i), turn.Question)
	}
}

func TestTurnsReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Append("s1", "P1", model.ChatTurn{Question: "Q1"})

	turns := s.Turns("s1", "P1")
	turns[0].Question = "mutated"

	assert.Equal(t, "Q1", s.Turns("s1", "P1")[0].Question)
}

func TestClearDropsWholeSession(t *testing.T) {
	s := NewStore()
	s.Append("s1", "P1", model.ChatTurn{Question: "Q1"})
	s.Append("s1", "P2", model.ChatTurn{Question: "Q2"})
	s.Append("s2", "P1", model.ChatTurn{Question: "Q3"})

	s.Clear("s1")

	assert.Empty(t, s.Turns("s1", "P1"))
	assert.Empty(t, s.Turns("s1", "P2"))
	assert.Len(t, s.Turns("s2", "P1"), 1)
}

func TestConcurrentAppends(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Append("s1", "P1", model.ChatTurn{Question: fmt.Sprintf("Q%d", i)})
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Turns("s1", "P1"), 50)
}
