package game

import (
	"gorm.io/gorm"
)

// CardType distinguishes active skills from passive-style buff cards.
type CardType string

const (
	CardTypeSkill CardType = "skill"
	CardTypeBuff  CardType = "buff"
)

// CardAction is the single effect a card applies when played.
type CardAction string

const (
	ActionDamage      CardAction = "damage"
	ActionIncreaseAtk CardAction = "increaseAtk"
	ActionIncreaseDef CardAction = "increaseDef"
)

// CardTarget records who the effect is aimed at. In the current rule set
// damage always hits the opponent and buffs always apply to the caster;
// the field is carried through for forward compatibility.
type CardTarget string

const (
	TargetSelf  CardTarget = "self"
	TargetEnemy CardTarget = "enemy"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// CardEffect describes what happens when the card resolves.
type CardEffect struct {
	Action CardAction `json:"action"`
	Value  int        `json:"value"`
	Target CardTarget `json:"target"`
}

// Card is a catalog entity. Read-only from the duel engine's perspective.
type Card struct {
	gorm.Model
	Name   string     `json:"name" gorm:"uniqueIndex"`
	Rarity Rarity     `json:"rarity"`
	Type   CardType   `json:"type"`
	Energy int        `json:"energy"`
	Effect CardEffect `json:"effect" gorm:"serializer:json"`
}

// Cost returns the energy cost of playing the card, defaulting to 1 when
// the catalog value is absent.
func (c *Card) Cost() int {
	if c.Energy < 1 {
		return 1
	}
	return c.Energy
}

// EquipmentType names one of the six gear slots.
type EquipmentType string

const (
	SlotWeapon   EquipmentType = "weapon"
	SlotArmor    EquipmentType = "armor"
	SlotHelmet   EquipmentType = "helmet"
	SlotBoots    EquipmentType = "boots"
	SlotNecklace EquipmentType = "necklace"
	SlotRing     EquipmentType = "ring"
)

// EquipmentTypes lists every slot in canonical order.
var EquipmentTypes = []EquipmentType{SlotWeapon, SlotArmor, SlotHelmet, SlotBoots, SlotNecklace, SlotRing}

// Equipment is a catalog entity whose stat bonuses are baked into duel
// snapshots at creation time.
type Equipment struct {
	gorm.Model
	Name     string        `json:"name" gorm:"uniqueIndex"`
	Type     EquipmentType `json:"type"`
	Rarity   Rarity        `json:"rarity"`
	LevelReq int           `json:"levelReq"`
	Atk      int           `json:"atk"`
	Def      int           `json:"def"`
	HP       int           `json:"hp"`
}

// DeckCard is a quantity-bearing deck entry. A quantity of 3 contributes
// three copies of the card to the flattened deck.
type DeckCard struct {
	CardID   uint `json:"cardId"`
	Quantity int  `json:"quantity"`
}

// Deck is a named, user-owned card list.
type Deck struct {
	gorm.Model
	UserID uint       `json:"-" gorm:"index"`
	Name   string     `json:"name"`
	Cards  []DeckCard `json:"cards" gorm:"serializer:json"`
}

// NpcDeck mirrors Deck but lives embedded in the NPC record; NPCs always
// fight with their first defined deck.
type NpcDeck struct {
	Name  string     `json:"name"`
	Cards []DeckCard `json:"cards"`
}

// EquipmentSet holds the six optional slot references of a combatant.
// Values are equipment IDs; nil means the slot is empty.
type EquipmentSet struct {
	Weapon   *uint `json:"weapon"`
	Armor    *uint `json:"armor"`
	Helmet   *uint `json:"helmet"`
	Boots    *uint `json:"boots"`
	Necklace *uint `json:"necklace"`
	Ring     *uint `json:"ring"`
}

// IDs returns the equipped ids, skipping empty slots.
func (e EquipmentSet) IDs() []uint {
	out := make([]uint, 0, 6)
	for _, p := range []*uint{e.Weapon, e.Armor, e.Helmet, e.Boots, e.Necklace, e.Ring} {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// Slot returns a pointer to the slot field for the given equipment type so
// callers can read or assign it generically.
func (e *EquipmentSet) Slot(t EquipmentType) **uint {
	switch t {
	case SlotWeapon:
		return &e.Weapon
	case SlotArmor:
		return &e.Armor
	case SlotHelmet:
		return &e.Helmet
	case SlotBoots:
		return &e.Boots
	case SlotNecklace:
		return &e.Necklace
	case SlotRing:
		return &e.Ring
	}
	return nil
}

// User stores account profile, base combat stats, gear and decks.
// Authentication and session issuance live outside this service.
type User struct {
	gorm.Model
	Email     string       `json:"email" gorm:"uniqueIndex"`
	FullName  string       `json:"fullName"`
	Level     int          `json:"level"`
	HP        int          `json:"hp"`
	Atk       int          `json:"atk"`
	Def       int          `json:"def"`
	Equipment EquipmentSet `json:"equipment" gorm:"serializer:json"`
	Inventory []uint       `json:"inventory" gorm:"serializer:json"`
	Decks     []Deck       `json:"decks"`
}

// Npc is a computer-controlled combatant definition.
type Npc struct {
	gorm.Model
	FullName  string       `json:"fullName" gorm:"uniqueIndex"`
	HP        int          `json:"hp"`
	Atk       int          `json:"atk"`
	Def       int          `json:"def"`
	Equipment EquipmentSet `json:"equipment" gorm:"serializer:json"`
	Decks     []NpcDeck    `json:"decks" gorm:"serializer:json"`
}

// Default base stats applied when a combatant record leaves them unset.
const (
	DefaultHP  = 100
	DefaultAtk = 30
	DefaultDef = 30
)
