package catalog

import (
	"sync"
	"testing"

	"github.com/fizennn/Seejam-Server/internal/apperr"
	"github.com/fizennn/Seejam-Server/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type countingSource struct {
	mu        sync.Mutex
	cards     map[uint]game.Card
	getCalls  int
	manyCalls int
}

func (s *countingSource) GetCardByID(id uint) (*game.Card, error) {
	s.mu.Lock()
	s.getCalls++
	c, ok := s.cards[id]
	s.mu.Unlock()
	if !ok {
		return nil, apperr.NotFound("card %d not found", id)
	}
	return &c, nil
}

func (s *countingSource) GetCardsByIDs(ids []uint) ([]game.Card, error) {
	s.mu.Lock()
	s.manyCalls++
	s.mu.Unlock()
	out := make([]game.Card, 0, len(ids))
	for _, id := range ids {
		if c, ok := s.cards[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func newCountingSource() *countingSource {
	return &countingSource{cards: map[uint]game.Card{
		1: {Model: gorm.Model{ID: 1}, Name: "Slash"},
		2: {Model: gorm.Model{ID: 2}, Name: "War Cry"},
	}}
}

func TestCards_GetCachesHits(t *testing.T) {
	src := newCountingSource()
	cache := NewCards(src)

	first, err := cache.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Slash", first.Name)

	second, err := cache.Get(1)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, src.getCalls)
}

func TestCards_GetDoesNotCacheFailures(t *testing.T) {
	src := newCountingSource()
	cache := NewCards(src)

	_, err := cache.Get(99)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = cache.Get(99)
	require.Error(t, err)
	assert.Equal(t, 2, src.getCalls, "misses must go back to the source")
}

func TestCards_GetMany(t *testing.T) {
	src := newCountingSource()
	cache := NewCards(src)

	got, err := cache.GetMany([]uint{1, 2, 99})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Slash", got[1].Name)
	assert.Equal(t, "War Cry", got[2].Name)
	assert.NotContains(t, got, uint(99))

	// The second call is served from the cache for the known ids.
	_, err = cache.GetMany([]uint{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1, src.manyCalls)
}

func TestCards_ConcurrentGets(t *testing.T) {
	src := newCountingSource()
	cache := NewCards(src)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := cache.Get(2)
			assert.NoError(t, err)
			assert.Equal(t, "War Cry", c.Name)
		}()
	}
	wg.Wait()
	src.mu.Lock()
	calls := src.getCalls
	src.mu.Unlock()
	assert.LessOrEqual(t, calls, 16)
	assert.GreaterOrEqual(t, calls, 1)
}
