package service

import (
	"github.com/fizennn/Seejam-Server/internal/apperr"
	"github.com/fizennn/Seejam-Server/internal/game"
)

// Shuffler is the injected randomness source for deck shuffling.
// *math/rand.Rand satisfies it; tests pass a seeded generator so shuffles
// are reproducible.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// LookupRepo is the repository surface needed to build a snapshot.
type LookupRepo interface {
	GetUserByID(id uint) (*game.User, error)
	GetNpcByID(id uint) (*game.Npc, error)
	GetEquipmentByIDs(ids []uint) ([]game.Equipment, error)
}

// openingHandSize is how many cards are dealt after the shuffle.
const openingHandSize = 4

// startingEnergy is each side's energy on turn 1.
const startingEnergy = 1

// BuildPlayerSnapshot resolves a combatant reference into the frozen
// starting state for one duel side: flattened and shuffled deck, opening
// hand, and equipment-adjusted stats. For users the deck id is required;
// NPCs always fight with their first defined deck.
func BuildPlayerSnapshot(repo LookupRepo, ref game.OwnerRef, deckID *uint, sh Shuffler) (game.PlayerSnapshot, error) {
	switch ref.Kind {
	case game.OwnerUser:
		return buildUserSnapshot(repo, ref, deckID, sh)
	case game.OwnerNpc:
		return buildNpcSnapshot(repo, ref, sh)
	}
	return game.PlayerSnapshot{}, apperr.InvalidArgument("unknown owner kind %q", ref.Kind)
}

func buildUserSnapshot(repo LookupRepo, ref game.OwnerRef, deckID *uint, sh Shuffler) (game.PlayerSnapshot, error) {
	if deckID == nil {
		return game.PlayerSnapshot{}, apperr.InvalidArgument("deckId is required for user players")
	}
	user, err := repo.GetUserByID(ref.ID)
	if err != nil {
		return game.PlayerSnapshot{}, err
	}
	var deck *game.Deck
	for i := range user.Decks {
		if user.Decks[i].ID == *deckID {
			deck = &user.Decks[i]
			break
		}
	}
	if deck == nil {
		return game.PlayerSnapshot{}, apperr.NotFound("deck %d not found on user %d", *deckID, ref.ID)
	}
	flat := flattenDeck(deck.Cards)
	if len(flat) == 0 {
		return game.PlayerSnapshot{}, apperr.InvalidArgument("deck %d has no cards", *deckID)
	}
	return assembleSnapshot(repo, ref, user.FullName, user.HP, user.Atk, user.Def, user.Equipment, flat, sh)
}

func buildNpcSnapshot(repo LookupRepo, ref game.OwnerRef, sh Shuffler) (game.PlayerSnapshot, error) {
	npc, err := repo.GetNpcByID(ref.ID)
	if err != nil {
		return game.PlayerSnapshot{}, err
	}
	if len(npc.Decks) == 0 {
		return game.PlayerSnapshot{}, apperr.InvalidState("npc %d has no decks defined", ref.ID)
	}
	flat := flattenDeck(npc.Decks[0].Cards)
	if len(flat) == 0 {
		return game.PlayerSnapshot{}, apperr.InvalidState("npc %d first deck has no cards", ref.ID)
	}
	return assembleSnapshot(repo, ref, npc.FullName, npc.HP, npc.Atk, npc.Def, npc.Equipment, flat, sh)
}

// flattenDeck expands quantity-bearing entries into a flat multiset of
// card id repetitions. A missing or non-positive quantity counts as one.
func flattenDeck(entries []game.DeckCard) []uint {
	out := make([]uint, 0, len(entries))
	for _, e := range entries {
		q := e.Quantity
		if q < 1 {
			q = 1
		}
		for i := 0; i < q; i++ {
			out = append(out, e.CardID)
		}
	}
	return out
}

func assembleSnapshot(repo LookupRepo, ref game.OwnerRef, fullName string, hp, atk, def int, equipped game.EquipmentSet, flat []uint, sh Shuffler) (game.PlayerSnapshot, error) {
	sh.Shuffle(len(flat), func(i, j int) { flat[i], flat[j] = flat[j], flat[i] })

	handSize := openingHandSize
	if len(flat) < handSize {
		handSize = len(flat)
	}
	hand := append([]uint(nil), flat[:handSize]...)
	pile := append([]uint(nil), flat[handSize:]...)

	if hp <= 0 {
		hp = game.DefaultHP
	}
	if atk <= 0 {
		atk = game.DefaultAtk
	}
	if def <= 0 {
		def = game.DefaultDef
	}
	bonusHP, bonusAtk, bonusDef, err := equipmentBonuses(repo, equipped)
	if err != nil {
		return game.PlayerSnapshot{}, err
	}
	hp += bonusHP
	atk += bonusAtk
	def += bonusDef

	return game.PlayerSnapshot{
		ID:           ref.Tag(),
		FullName:     fullName,
		Stats: game.Stats{
			HP:     game.StatValue{Max: hp, Current: hp},
			Atk:    game.StatGauge{Base: atk, Current: atk},
			Def:    game.StatGauge{Base: def, Current: def},
			Energy: startingEnergy,
		},
		Equipment:    equipped,
		Cards:        pile,
		CurrentCards: hand,
		DiscardPile:  []uint{},
	}, nil
}

// equipmentBonuses sums the stat bonuses of every equipped item. Ids that
// no longer resolve (gear deleted after being equipped) contribute zero.
func equipmentBonuses(repo LookupRepo, equipped game.EquipmentSet) (hp, atk, def int, err error) {
	ids := equipped.IDs()
	if len(ids) == 0 {
		return 0, 0, 0, nil
	}
	items, err := repo.GetEquipmentByIDs(ids)
	if err != nil {
		return 0, 0, 0, err
	}
	for _, it := range items {
		hp += it.HP
		atk += it.Atk
		def += it.Def
	}
	return hp, atk, def, nil
}
