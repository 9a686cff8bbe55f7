package service

import (
	"strings"

	"github.com/fizennn/Seejam-Server/internal/apperr"
	"github.com/fizennn/Seejam-Server/internal/game"
)

// UserRepo is the repository surface for profile, inventory and deck
// management.
type UserRepo interface {
	GetUserByID(id uint) (*game.User, error)
	SaveUser(u *game.User) error
	AddDeck(userID uint, deck *game.Deck) error
	GetEquipmentByIDs(ids []uint) ([]game.Equipment, error)
	GetCardsByIDs(ids []uint) ([]game.Card, error)
}

// AddInventory appends an equipment item to the user's collection after
// verifying the item exists in the catalog.
func AddInventory(repo UserRepo, userID, equipmentID uint) (*game.User, error) {
	items, err := repo.GetEquipmentByIDs([]uint{equipmentID})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperr.NotFound("equipment %d not found", equipmentID)
	}
	user, err := repo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	user.Inventory = append(user.Inventory, equipmentID)
	if err := repo.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// EquipItems assigns inventory items into gear slots. Each selection must
// reference an item the user owns whose catalog type matches the slot.
// Duel snapshots read the result as-is; level gating stays an inventory
// concern and is enforced here, not at duel time.
func EquipItems(repo UserRepo, userID uint, selections map[game.EquipmentType]uint) (*game.User, error) {
	user, err := repo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if len(selections) == 0 {
		return nil, apperr.InvalidArgument("no equipment selections provided")
	}

	owned := make(map[uint]bool, len(user.Inventory))
	for _, id := range user.Inventory {
		owned[id] = true
	}

	ids := make([]uint, 0, len(selections))
	for _, id := range selections {
		ids = append(ids, id)
	}
	items, err := repo.GetEquipmentByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*game.Equipment, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}

	for slot, id := range selections {
		if !owned[id] {
			return nil, apperr.InvalidArgument("equipment %d is not in the inventory", id)
		}
		item, ok := byID[id]
		if !ok {
			return nil, apperr.NotFound("equipment %d not found", id)
		}
		if item.Type != slot {
			return nil, apperr.InvalidArgument("equipment %d has type %q and cannot go into the %q slot", id, item.Type, slot)
		}
		if item.LevelReq > 0 && user.Level < item.LevelReq {
			return nil, apperr.InvalidArgument("equipment %d requires level %d", id, item.LevelReq)
		}
		target := user.Equipment.Slot(slot)
		if target == nil {
			return nil, apperr.InvalidArgument("unknown equipment slot %q", slot)
		}
		eid := id
		*target = &eid
	}

	if err := repo.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateDeck validates and stores a new named deck for the user. Every
// entry must reference an existing card with a positive quantity.
func CreateDeck(repo UserRepo, userID uint, name string, entries []game.DeckCard) (*game.Deck, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.InvalidArgument("deck name is required")
	}
	if len(entries) == 0 {
		return nil, apperr.InvalidArgument("a deck needs at least one card")
	}
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		if e.Quantity < 1 {
			return nil, apperr.InvalidArgument("card %d has non-positive quantity", e.CardID)
		}
		ids = append(ids, e.CardID)
	}
	found, err := repo.GetCardsByIDs(ids)
	if err != nil {
		return nil, err
	}
	known := make(map[uint]bool, len(found))
	for _, c := range found {
		known[c.ID] = true
	}
	for _, e := range entries {
		if !known[e.CardID] {
			return nil, apperr.NotFound("card %d not found", e.CardID)
		}
	}
	if _, err := repo.GetUserByID(userID); err != nil {
		return nil, err
	}

	deck := &game.Deck{Name: name, Cards: entries}
	if err := repo.AddDeck(userID, deck); err != nil {
		return nil, err
	}
	return deck, nil
}
