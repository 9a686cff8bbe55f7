// Package catalog caches card lookups in memory. Cards are effectively
// immutable at runtime (seeded from config at boot), so a read-through
// cache with a singleflight group keeps concurrent duel actions from
// hammering the database for the same card.
package catalog

import (
	"strconv"
	"sync"

	"github.com/fizennn/Seejam-Server/internal/game"

	"golang.org/x/sync/singleflight"
)

// CardSource is the minimal repository surface the cache reads through.
type CardSource interface {
	GetCardByID(id uint) (*game.Card, error)
	GetCardsByIDs(ids []uint) ([]game.Card, error)
}

// Cards is a read-through card cache.
type Cards struct {
	src   CardSource
	group singleflight.Group

	mu   sync.RWMutex
	byID map[uint]*game.Card
}

func NewCards(src CardSource) *Cards {
	return &Cards{src: src, byID: make(map[uint]*game.Card)}
}

// Get returns the card with the given id, fetching it at most once per
// concurrent burst. Lookup failures are not cached.
func (c *Cards) Get(id uint) (*game.Card, error) {
	c.mu.RLock()
	cached, ok := c.byID[id]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	v, err, _ := c.group.Do(strconv.FormatUint(uint64(id), 10), func() (interface{}, error) {
		card, err := c.src.GetCardByID(id)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.byID[id] = card
		c.mu.Unlock()
		return card, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*game.Card), nil
}

// GetMany returns the cards found for the given ids keyed by id. Missing
// ids are simply absent from the result.
func (c *Cards) GetMany(ids []uint) (map[uint]*game.Card, error) {
	out := make(map[uint]*game.Card, len(ids))
	missing := make([]uint, 0, len(ids))

	c.mu.RLock()
	for _, id := range ids {
		if card, ok := c.byID[id]; ok {
			out[id] = card
		} else {
			missing = append(missing, id)
		}
	}
	c.mu.RUnlock()

	if len(missing) == 0 {
		return out, nil
	}
	fetched, err := c.src.GetCardsByIDs(missing)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	for i := range fetched {
		card := fetched[i]
		c.byID[card.ID] = &card
		out[card.ID] = &card
	}
	c.mu.Unlock()
	return out, nil
}
