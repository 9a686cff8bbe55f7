package service

import (
	"testing"

	"github.com/fizennn/Seejam-Server/internal/apperr"
	"github.com/fizennn/Seejam-Server/internal/game"

	"gorm.io/gorm"
)

func uintPtr(v uint) *uint { return &v }

func lookupWithUser(u *game.User) *mockLookup {
	return &mockLookup{
		users:     map[uint]*game.User{u.ID: u},
		npcs:      map[uint]*game.Npc{},
		equipment: map[uint]game.Equipment{},
	}
}

func TestBuildPlayerSnapshot_UserDealAndZones(t *testing.T) {
	user := &game.User{
		Model:    gorm.Model{ID: 7},
		FullName: "Rook",
		Decks: []game.Deck{{
			Model: gorm.Model{ID: 10},
			Name:  "main",
			Cards: []game.DeckCard{
				{CardID: 1, Quantity: 3},
				{CardID: 2, Quantity: 2},
				{CardID: 3, Quantity: 1},
			},
		}},
	}
	repo := lookupWithUser(user)

	snap, err := BuildPlayerSnapshot(repo, game.UserRef(7), uintPtr(10), noShuffle{})
	if err != nil {
		t.Fatalf("BuildPlayerSnapshot: %v", err)
	}

	if snap.ID != "user_7" {
		t.Errorf("ID = %q, want user_7", snap.ID)
	}
	if snap.FullName != "Rook" {
		t.Errorf("FullName = %q", snap.FullName)
	}
	if got, want := len(snap.CurrentCards), 4; got != want {
		t.Fatalf("hand size = %d, want %d", got, want)
	}
	if got, want := len(snap.Cards), 2; got != want {
		t.Fatalf("pile size = %d, want %d", got, want)
	}
	if len(snap.DiscardPile) != 0 {
		t.Errorf("discard pile not empty: %v", snap.DiscardPile)
	}
	all := append(append([]uint{}, snap.Cards...), snap.CurrentCards...)
	if !sameMultiset(all, []uint{1, 1, 1, 2, 2, 3}) {
		t.Errorf("zones do not cover the flattened deck: %v", all)
	}
}

func TestBuildPlayerSnapshot_ShufflerIsConsulted(t *testing.T) {
	user := &game.User{
		Model: gorm.Model{ID: 7},
		Decks: []game.Deck{{
			Model: gorm.Model{ID: 10},
			Cards: []game.DeckCard{
				{CardID: 1, Quantity: 1},
				{CardID: 2, Quantity: 1},
				{CardID: 3, Quantity: 1},
				{CardID: 4, Quantity: 1},
				{CardID: 5, Quantity: 1},
			},
		}},
	}
	repo := lookupWithUser(user)

	snap, err := BuildPlayerSnapshot(repo, game.UserRef(7), uintPtr(10), reverseShuffle{})
	if err != nil {
		t.Fatalf("BuildPlayerSnapshot: %v", err)
	}
	wantHand := []uint{5, 4, 3, 2}
	for i, id := range wantHand {
		if snap.CurrentCards[i] != id {
			t.Fatalf("hand = %v, want %v", snap.CurrentCards, wantHand)
		}
	}
	if len(snap.Cards) != 1 || snap.Cards[0] != 1 {
		t.Errorf("pile = %v, want [1]", snap.Cards)
	}
}

func TestBuildPlayerSnapshot_ShortDeckDealsEverything(t *testing.T) {
	user := &game.User{
		Model: gorm.Model{ID: 7},
		Decks: []game.Deck{{
			Model: gorm.Model{ID: 10},
			Cards: []game.DeckCard{{CardID: 1, Quantity: 3}},
		}},
	}
	repo := lookupWithUser(user)

	snap, err := BuildPlayerSnapshot(repo, game.UserRef(7), uintPtr(10), noShuffle{})
	if err != nil {
		t.Fatalf("BuildPlayerSnapshot: %v", err)
	}
	if got := len(snap.CurrentCards); got != 3 {
		t.Errorf("hand size = %d, want 3", got)
	}
	if got := len(snap.Cards); got != 0 {
		t.Errorf("pile size = %d, want 0", got)
	}
}

func TestBuildPlayerSnapshot_DefaultsAndEquipmentBonuses(t *testing.T) {
	user := &game.User{
		Model: gorm.Model{ID: 7},
		Equipment: game.EquipmentSet{
			Weapon: uintPtr(50),
			Armor:  uintPtr(51),
		},
		Decks: []game.Deck{{
			Model: gorm.Model{ID: 10},
			Cards: []game.DeckCard{{CardID: 1, Quantity: 4}},
		}},
	}
	repo := lookupWithUser(user)
	repo.equipment[50] = game.Equipment{Model: gorm.Model{ID: 50}, Type: game.SlotWeapon, Atk: 15}
	repo.equipment[51] = game.Equipment{Model: gorm.Model{ID: 51}, Type: game.SlotArmor, HP: 20, Def: 5}

	snap, err := BuildPlayerSnapshot(repo, game.UserRef(7), uintPtr(10), noShuffle{})
	if err != nil {
		t.Fatalf("BuildPlayerSnapshot: %v", err)
	}

	// Unset base stats fall back to defaults before bonuses apply.
	if got, want := snap.Stats.HP.Max, game.DefaultHP+20; got != want {
		t.Errorf("HP max = %d, want %d", got, want)
	}
	if snap.Stats.HP.Current != snap.Stats.HP.Max {
		t.Errorf("HP current = %d, want full", snap.Stats.HP.Current)
	}
	if got, want := snap.Stats.Atk.Base, game.DefaultAtk+15; got != want {
		t.Errorf("Atk base = %d, want %d", got, want)
	}
	if got, want := snap.Stats.Def.Base, game.DefaultDef+5; got != want {
		t.Errorf("Def base = %d, want %d", got, want)
	}
	if snap.Stats.Energy != 1 {
		t.Errorf("starting energy = %d, want 1", snap.Stats.Energy)
	}
}

func TestBuildPlayerSnapshot_UserErrors(t *testing.T) {
	user := &game.User{
		Model: gorm.Model{ID: 7},
		Decks: []game.Deck{{Model: gorm.Model{ID: 10}, Cards: []game.DeckCard{}}},
	}
	repo := lookupWithUser(user)

	if _, err := BuildPlayerSnapshot(repo, game.UserRef(7), nil, noShuffle{}); !apperr.IsKind(err, apperr.KindInvalidArgument) {
		t.Errorf("missing deck id: got %v, want invalid_argument", err)
	}
	if _, err := BuildPlayerSnapshot(repo, game.UserRef(7), uintPtr(99), noShuffle{}); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("unknown deck: got %v, want not_found", err)
	}
	if _, err := BuildPlayerSnapshot(repo, game.UserRef(7), uintPtr(10), noShuffle{}); !apperr.IsKind(err, apperr.KindInvalidArgument) {
		t.Errorf("empty deck: got %v, want invalid_argument", err)
	}
	if _, err := BuildPlayerSnapshot(repo, game.UserRef(99), uintPtr(10), noShuffle{}); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("unknown user: got %v, want not_found", err)
	}
}

func TestBuildPlayerSnapshot_NpcUsesFirstDeck(t *testing.T) {
	repo := &mockLookup{
		users: map[uint]*game.User{},
		npcs: map[uint]*game.Npc{
			3: {
				Model:    gorm.Model{ID: 3},
				FullName: "Training Dummy",
				HP:       80,
				Decks: []game.NpcDeck{
					{Name: "first", Cards: []game.DeckCard{{CardID: 1, Quantity: 5}}},
					{Name: "second", Cards: []game.DeckCard{{CardID: 9, Quantity: 5}}},
				},
			},
		},
		equipment: map[uint]game.Equipment{},
	}

	snap, err := BuildPlayerSnapshot(repo, game.NpcRef(3), nil, noShuffle{})
	if err != nil {
		t.Fatalf("BuildPlayerSnapshot: %v", err)
	}
	if snap.ID != "npc_3" {
		t.Errorf("ID = %q, want npc_3", snap.ID)
	}
	if snap.Stats.HP.Max != 80 {
		t.Errorf("HP max = %d, want 80", snap.Stats.HP.Max)
	}
	all := append(append([]uint{}, snap.Cards...), snap.CurrentCards...)
	if !sameMultiset(all, []uint{1, 1, 1, 1, 1}) {
		t.Errorf("npc did not fight with its first deck: %v", all)
	}
}

func TestBuildPlayerSnapshot_NpcWithoutDecks(t *testing.T) {
	repo := &mockLookup{
		users:     map[uint]*game.User{},
		npcs:      map[uint]*game.Npc{3: {Model: gorm.Model{ID: 3}}},
		equipment: map[uint]game.Equipment{},
	}
	if _, err := BuildPlayerSnapshot(repo, game.NpcRef(3), nil, noShuffle{}); !apperr.IsKind(err, apperr.KindInvalidState) {
		t.Errorf("got %v, want invalid_state", err)
	}
}

func TestFlattenDeck_NonPositiveQuantityCountsAsOne(t *testing.T) {
	flat := flattenDeck([]game.DeckCard{
		{CardID: 1, Quantity: 0},
		{CardID: 2, Quantity: -2},
		{CardID: 3, Quantity: 2},
	})
	if !sameMultiset(flat, []uint{1, 2, 3, 3}) {
		t.Errorf("flat = %v", flat)
	}
}
