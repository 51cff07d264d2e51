package corpus

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarlife/spacebio/internal/model"
)

func countingCache(calls *int) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		loader: func(path string) ([]model.Publication, error) {
			*calls++
			return []model.Publication{{Title: "cached"}}, nil
		},
	}
}

func TestCacheMemoizesPerPath(t *testing.T) {
	path := writeCSV(t, "Title,Abstract,Link\nA,text,link\n")

	calls := 0
	c := countingCache(&calls)

	for i := 0; i < 3; i++ {
		pubs, err := c.Load(path)
		require.NoError(t, err)
		assert.Len(t, pubs, 1)
	}
	assert.Equal(t, 1, calls)
}

func TestCacheReloadsOnModTimeChange(t *testing.T) {
	path := writeCSV(t, "Title,Abstract,Link\nA,text,link\n")

	calls := 0
	c := countingCache(&calls)

	_, err := c.Load(path)
	require.NoError(t, err)

	bumped := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, bumped, bumped))

	_, err = c.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCacheInvalidateForcesReload(t *testing.T) {
	path := writeCSV(t, "Title,Abstract,Link\nA,text,link\n")

	calls := 0
	c := countingCache(&calls)

	_, err := c.Load(path)
	require.NoError(t, err)

	c.Invalidate(path)

	_, err = c.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCacheMissingFile(t *testing.T) {
	c := NewCache(Loader{})
	_, err := c.Load(t.TempDir() + "/absent.csv")
	assert.Error(t, err)
}
