package storage

import (
	"github.com/fizennn/Seejam-Server/internal/game"
)

// Repository is the persistence surface of the backend. Duel updates are
// atomic and version-checked: a save whose base state is stale fails with
// a Conflict error instead of silently dropping a concurrent mutation.
type Repository interface {
	// Duels
	CreateDuel(d *game.Duel) error
	GetDuelByPublicID(publicID string) (*game.Duel, error)
	UpdateDuel(d *game.Duel) error

	// Card catalog
	GetCards() ([]game.Card, error)
	GetCardByID(id uint) (*game.Card, error)
	GetCardsByIDs(ids []uint) ([]game.Card, error)

	// Equipment catalog. Missing ids are simply absent from the result;
	// gear deleted after being equipped contributes zero bonus.
	GetEquipment() ([]game.Equipment, error)
	GetEquipmentByIDs(ids []uint) ([]game.Equipment, error)

	// NPCs
	GetNpcs() ([]game.Npc, error)
	GetNpcByID(id uint) (*game.Npc, error)

	// Users
	CreateUser(u *game.User) error
	GetUserByID(id uint) (*game.User, error)
	SaveUser(u *game.User) error
	AddDeck(userID uint, deck *game.Deck) error

	// SeedCatalog upserts cards, equipment and NPCs from the config file.
	// The config is the source of truth for catalog stats.
	SeedCatalog(cards []game.Card, equipment []game.Equipment, npcs []game.NpcSeed) error
}
