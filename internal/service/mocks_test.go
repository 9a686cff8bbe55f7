package service

import (
	"github.com/fizennn/Seejam-Server/internal/apperr"
	"github.com/fizennn/Seejam-Server/internal/game"

	"gorm.io/gorm"
)

// noShuffle leaves the deck in its declared order so tests can reason
// about exact deals.
type noShuffle struct{}

func (noShuffle) Shuffle(n int, swap func(i, j int)) {}

// reverseShuffle reverses the deck, enough to observe that the shuffler
// was actually consulted.
type reverseShuffle struct{}

func (reverseShuffle) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

type mockLookup struct {
	users     map[uint]*game.User
	npcs      map[uint]*game.Npc
	equipment map[uint]game.Equipment
}

func (m *mockLookup) GetUserByID(id uint) (*game.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperr.NotFound("user %d not found", id)
	}
	return u, nil
}

func (m *mockLookup) GetNpcByID(id uint) (*game.Npc, error) {
	n, ok := m.npcs[id]
	if !ok {
		return nil, apperr.NotFound("npc %d not found", id)
	}
	return n, nil
}

func (m *mockLookup) GetEquipmentByIDs(ids []uint) ([]game.Equipment, error) {
	out := make([]game.Equipment, 0, len(ids))
	for _, id := range ids {
		if e, ok := m.equipment[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

// mockDuelRepo keeps duels in memory and hands out copies, the same
// isolation a real row read gives. The update counter verifies the
// one-save-per-action contract.
type mockDuelRepo struct {
	duels   map[string]*game.Duel
	creates int
	updates int
}

func newMockDuelRepo() *mockDuelRepo {
	return &mockDuelRepo{duels: map[string]*game.Duel{}}
}

func (m *mockDuelRepo) CreateDuel(d *game.Duel) error {
	m.creates++
	m.duels[d.PublicID] = cloneDuel(d)
	return nil
}

func (m *mockDuelRepo) GetDuelByPublicID(publicID string) (*game.Duel, error) {
	d, ok := m.duels[publicID]
	if !ok {
		return nil, apperr.NotFound("duel %s not found", publicID)
	}
	return cloneDuel(d), nil
}

func (m *mockDuelRepo) UpdateDuel(d *game.Duel) error {
	if _, ok := m.duels[d.PublicID]; !ok {
		return apperr.NotFound("duel %s not found", d.PublicID)
	}
	m.updates++
	d.Version++
	m.duels[d.PublicID] = cloneDuel(d)
	return nil
}

func (m *mockDuelRepo) stored(publicID string) *game.Duel {
	return m.duels[publicID]
}

func cloneDuel(d *game.Duel) *game.Duel {
	c := *d
	c.Player1 = cloneSnapshot(d.Player1)
	c.Player2 = cloneSnapshot(d.Player2)
	c.BattleLog = append([]string(nil), d.BattleLog...)
	return &c
}

func cloneSnapshot(p game.PlayerSnapshot) game.PlayerSnapshot {
	p.Cards = append([]uint(nil), p.Cards...)
	p.CurrentCards = append([]uint(nil), p.CurrentCards...)
	p.DiscardPile = append([]uint(nil), p.DiscardPile...)
	return p
}

type mockCards struct {
	cards map[uint]*game.Card
}

func (m *mockCards) Get(id uint) (*game.Card, error) {
	c, ok := m.cards[id]
	if !ok {
		return nil, apperr.NotFound("card %d not found", id)
	}
	return c, nil
}

func (m *mockCards) GetMany(ids []uint) (map[uint]*game.Card, error) {
	out := make(map[uint]*game.Card, len(ids))
	for _, id := range ids {
		if c, ok := m.cards[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func testCard(id uint, name string, energy int, effect game.CardEffect) *game.Card {
	return &game.Card{
		Model:  gorm.Model{ID: id},
		Name:   name,
		Type:   game.CardTypeSkill,
		Energy: energy,
		Effect: effect,
	}
}

func damageCard(id uint, name string, energy, value int) *game.Card {
	return testCard(id, name, energy, game.CardEffect{Action: game.ActionDamage, Value: value, Target: game.TargetEnemy})
}

func buffAtkCard(id uint, name string, energy, value int) *game.Card {
	return testCard(id, name, energy, game.CardEffect{Action: game.ActionIncreaseAtk, Value: value, Target: game.TargetSelf})
}

func testSnapshot(ref game.OwnerRef, name string, hp, atk, def, energy int, pile, hand []uint) game.PlayerSnapshot {
	return game.PlayerSnapshot{
		ID:       ref.Tag(),
		FullName: name,
		Stats: game.Stats{
			HP:     game.StatValue{Max: hp, Current: hp},
			Atk:    game.StatGauge{Base: atk, Current: atk},
			Def:    game.StatGauge{Base: def, Current: def},
			Energy: energy,
		},
		Cards:        append([]uint(nil), pile...),
		CurrentCards: append([]uint(nil), hand...),
		DiscardPile:  []uint{},
	}
}

// multiset compares two id slices ignoring order.
func multiset(ids []uint) map[uint]int {
	m := map[uint]int{}
	for _, id := range ids {
		m[id]++
	}
	return m
}

func sameMultiset(a, b []uint) bool {
	ma, mb := multiset(a), multiset(b)
	if len(ma) != len(mb) {
		return false
	}
	for id, n := range ma {
		if mb[id] != n {
			return false
		}
	}
	return true
}
