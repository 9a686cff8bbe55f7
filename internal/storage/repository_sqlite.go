package storage

import (
	"errors"

	"github.com/fizennn/Seejam-Server/internal/apperr"
	"github.com/fizennn/Seejam-Server/internal/game"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateDuel(d *game.Duel) error {
	if err := r.db.Create(d).Error; err != nil {
		return apperr.Internal(err, "failed to create duel")
	}
	return nil
}

func (r *sqliteRepository) GetDuelByPublicID(publicID string) (*game.Duel, error) {
	var d game.Duel
	err := r.db.Where("public_id = ?", publicID).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("duel %s not found", publicID)
	}
	if err != nil {
		return nil, apperr.Internal(err, "failed to load duel")
	}
	return &d, nil
}

// UpdateDuel saves the whole duel in one write, guarded by the version
// column. A stale base version affects zero rows and surfaces as Conflict
// so the caller can retry with fresh state.
func (r *sqliteRepository) UpdateDuel(d *game.Duel) error {
	prev := d.Version
	d.Version = prev + 1
	res := r.db.Model(&game.Duel{}).
		Where("id = ? AND version = ?", d.ID, prev).
		Select("player1", "player2", "turn", "status", "battle_log", "version").
		Updates(d)
	if res.Error != nil {
		d.Version = prev
		return apperr.Internal(res.Error, "failed to save duel")
	}
	if res.RowsAffected == 0 {
		d.Version = prev
		return apperr.Conflict("duel %s was modified concurrently", d.PublicID)
	}
	return nil
}

func (r *sqliteRepository) GetCards() ([]game.Card, error) {
	var cards []game.Card
	if err := r.db.Order("id").Find(&cards).Error; err != nil {
		return nil, apperr.Internal(err, "failed to list cards")
	}
	return cards, nil
}

func (r *sqliteRepository) GetCardByID(id uint) (*game.Card, error) {
	var c game.Card
	err := r.db.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("card %d not found", id)
	}
	if err != nil {
		return nil, apperr.Internal(err, "failed to load card")
	}
	return &c, nil
}

func (r *sqliteRepository) GetCardsByIDs(ids []uint) ([]game.Card, error) {
	var cards []game.Card
	if len(ids) == 0 {
		return cards, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&cards).Error; err != nil {
		return nil, apperr.Internal(err, "failed to load cards")
	}
	return cards, nil
}

func (r *sqliteRepository) GetEquipment() ([]game.Equipment, error) {
	var items []game.Equipment
	if err := r.db.Order("id").Find(&items).Error; err != nil {
		return nil, apperr.Internal(err, "failed to list equipment")
	}
	return items, nil
}

func (r *sqliteRepository) GetEquipmentByIDs(ids []uint) ([]game.Equipment, error) {
	var items []game.Equipment
	if len(ids) == 0 {
		return items, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, apperr.Internal(err, "failed to load equipment")
	}
	return items, nil
}

func (r *sqliteRepository) GetNpcs() ([]game.Npc, error) {
	var npcs []game.Npc
	if err := r.db.Order("id").Find(&npcs).Error; err != nil {
		return nil, apperr.Internal(err, "failed to list NPCs")
	}
	return npcs, nil
}

func (r *sqliteRepository) GetNpcByID(id uint) (*game.Npc, error) {
	var n game.Npc
	err := r.db.First(&n, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("npc %d not found", id)
	}
	if err != nil {
		return nil, apperr.Internal(err, "failed to load npc")
	}
	return &n, nil
}

func (r *sqliteRepository) CreateUser(u *game.User) error {
	if err := r.db.Create(u).Error; err != nil {
		return apperr.Internal(err, "failed to create user")
	}
	return nil
}

func (r *sqliteRepository) GetUserByID(id uint) (*game.User, error) {
	var u game.User
	err := r.db.Preload("Decks").First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("user %d not found", id)
	}
	if err != nil {
		return nil, apperr.Internal(err, "failed to load user")
	}
	return &u, nil
}

func (r *sqliteRepository) SaveUser(u *game.User) error {
	if err := r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(u).Error; err != nil {
		return apperr.Internal(err, "failed to save user")
	}
	return nil
}

func (r *sqliteRepository) AddDeck(userID uint, deck *game.Deck) error {
	deck.UserID = userID
	if err := r.db.Create(deck).Error; err != nil {
		return apperr.Internal(err, "failed to create deck")
	}
	return nil
}

// SeedCatalog upserts config-defined catalog rows keyed by name, then
// resolves NPC deck and equipment references (by name) into database ids.
func (r *sqliteRepository) SeedCatalog(cards []game.Card, equipment []game.Equipment, npcs []game.NpcSeed) error {
	cardIDByName := make(map[string]uint, len(cards))
	for i := range cards {
		var existing game.Card
		err := r.db.Where("name = ?", cards[i].Name).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := r.db.Create(&cards[i]).Error; err != nil {
				return apperr.Internal(err, "failed to seed card")
			}
			cardIDByName[cards[i].Name] = cards[i].ID
		case err != nil:
			return apperr.Internal(err, "failed to seed card")
		default:
			existing.Rarity = cards[i].Rarity
			existing.Type = cards[i].Type
			existing.Energy = cards[i].Energy
			existing.Effect = cards[i].Effect
			if err := r.db.Save(&existing).Error; err != nil {
				return apperr.Internal(err, "failed to seed card")
			}
			cardIDByName[existing.Name] = existing.ID
		}
	}

	equipIDByName := make(map[string]uint, len(equipment))
	for i := range equipment {
		var existing game.Equipment
		err := r.db.Where("name = ?", equipment[i].Name).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := r.db.Create(&equipment[i]).Error; err != nil {
				return apperr.Internal(err, "failed to seed equipment")
			}
			equipIDByName[equipment[i].Name] = equipment[i].ID
		case err != nil:
			return apperr.Internal(err, "failed to seed equipment")
		default:
			existing.Type = equipment[i].Type
			existing.Rarity = equipment[i].Rarity
			existing.LevelReq = equipment[i].LevelReq
			existing.Atk = equipment[i].Atk
			existing.Def = equipment[i].Def
			existing.HP = equipment[i].HP
			if err := r.db.Save(&existing).Error; err != nil {
				return apperr.Internal(err, "failed to seed equipment")
			}
			equipIDByName[existing.Name] = existing.ID
		}
	}

	for _, seed := range npcs {
		npc := game.Npc{
			FullName: seed.FullName,
			HP:       seed.HP,
			Atk:      seed.Atk,
			Def:      seed.Def,
		}
		for slot, name := range seed.Equipment {
			id, ok := equipIDByName[name]
			if !ok {
				return apperr.InvalidArgument("npc %s references unknown equipment %q", seed.FullName, name)
			}
			eid := id
			*npc.Equipment.Slot(slot) = &eid
		}
		for _, d := range seed.Decks {
			deck := game.NpcDeck{Name: d.Name}
			for _, dc := range d.Cards {
				id, ok := cardIDByName[dc.CardName]
				if !ok {
					return apperr.InvalidArgument("npc %s references unknown card %q", seed.FullName, dc.CardName)
				}
				deck.Cards = append(deck.Cards, game.DeckCard{CardID: id, Quantity: dc.Quantity})
			}
			npc.Decks = append(npc.Decks, deck)
		}

		var existing game.Npc
		err := r.db.Where("full_name = ?", npc.FullName).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := r.db.Create(&npc).Error; err != nil {
				return apperr.Internal(err, "failed to seed npc")
			}
		case err != nil:
			return apperr.Internal(err, "failed to seed npc")
		default:
			existing.HP = npc.HP
			existing.Atk = npc.Atk
			existing.Def = npc.Def
			existing.Equipment = npc.Equipment
			existing.Decks = npc.Decks
			if err := r.db.Save(&existing).Error; err != nil {
				return apperr.Internal(err, "failed to seed npc")
			}
		}
	}
	return nil
}
