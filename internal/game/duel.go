package game

import (
	"gorm.io/gorm"
)

// DuelStatus is the lifecycle state of a duel. Transitions are monotonic:
// once finished or cancelled a duel never mutates again.
type DuelStatus string

const (
	StatusOngoing   DuelStatus = "ongoing"
	StatusFinished  DuelStatus = "finished"
	StatusCancelled DuelStatus = "cancelled"
)

// StatValue is a capped gauge (hp).
type StatValue struct {
	Max     int `json:"max"`
	Current int `json:"current"`
}

// StatGauge is an uncapped gauge (atk, def); Current may exceed Base
// because buffs are additive and not capped.
type StatGauge struct {
	Base    int `json:"base"`
	Current int `json:"current"`
}

// Stats is one side's combat numbers. Max/Base are frozen at snapshot
// time (post-equipment); Current fields mutate during the duel.
type Stats struct {
	HP     StatValue `json:"hp"`
	Atk    StatGauge `json:"atk"`
	Def    StatGauge `json:"def"`
	Energy int       `json:"energy"`
}

// PlayerSnapshot is one side's complete in-duel state. The multiset union
// of Cards, CurrentCards and DiscardPile equals the originally shuffled
// deck for the whole life of the duel.
type PlayerSnapshot struct {
	ID           string       `json:"id"`
	FullName     string       `json:"fullName"`
	Stats        Stats        `json:"stats"`
	Equipment    EquipmentSet `json:"equipment"`
	Cards        []uint       `json:"cards"`
	CurrentCards []uint       `json:"currentCards"`
	DiscardPile  []uint       `json:"discardPile"`
}

// Owner resolves the snapshot's persisted id tag into an OwnerRef.
func (p *PlayerSnapshot) Owner() (OwnerRef, error) {
	return ParseOwnerTag(p.ID)
}

// IsDefeated reports whether this side has no hit points left.
func (p *PlayerSnapshot) IsDefeated() bool {
	return p.Stats.HP.Current <= 0
}

// HandIndex returns the position of cardID in the current hand, or -1.
func (p *PlayerSnapshot) HandIndex(cardID uint) int {
	for i, id := range p.CurrentCards {
		if id == cardID {
			return i
		}
	}
	return -1
}

// DiscardFromHand moves the card at hand index i into the discard pile.
func (p *PlayerSnapshot) DiscardFromHand(i int) uint {
	id := p.CurrentCards[i]
	p.CurrentCards = append(p.CurrentCards[:i], p.CurrentCards[i+1:]...)
	p.DiscardPile = append(p.DiscardPile, id)
	return id
}

// DrawOne moves the top card of the draw pile into the hand. Returns false
// when the draw pile is empty.
func (p *PlayerSnapshot) DrawOne() bool {
	if len(p.Cards) == 0 {
		return false
	}
	id := p.Cards[0]
	p.Cards = p.Cards[1:]
	p.CurrentCards = append(p.CurrentCards, id)
	return true
}

// Duel is the root aggregate of a single match. Player1 is always the
// human actor allowed to invoke play-card/end-turn.
type Duel struct {
	gorm.Model
	PublicID  string         `json:"publicId" gorm:"uniqueIndex"`
	Player1   PlayerSnapshot `json:"player1" gorm:"serializer:json"`
	Player2   PlayerSnapshot `json:"player2" gorm:"serializer:json"`
	Turn      int            `json:"turn"`
	Status    DuelStatus     `json:"status"`
	BattleLog []string       `json:"battleLog" gorm:"serializer:json"`
	// Version backs the optimistic concurrency check on saves; two
	// concurrent actions against the same duel cannot both commit.
	Version int64 `json:"-"`
}

// Log appends a battle-log line. The log is append-only audit data and is
// never consulted by game logic.
func (d *Duel) Log(line string) {
	d.BattleLog = append(d.BattleLog, line)
}

// ActionRecord describes a single resolved play for API responses.
type ActionRecord struct {
	Player          string          `json:"player"`
	Action          string          `json:"action"`
	CardName        string          `json:"cardName,omitempty"`
	Effect          *CardEffect     `json:"effect,omitempty"`
	Result          string          `json:"result,omitempty"`
	EnergyUsed      int             `json:"energyUsed,omitempty"`
	EnergyRemaining int             `json:"energyRemaining"`
	NpcActions      []ActionRecord  `json:"npcActions,omitempty"`
	TurnEnded       bool            `json:"turnEnded,omitempty"`
	NewTurn         int             `json:"newTurn,omitempty"`
	EnergyReset     *EnergyResetPair `json:"energyReset,omitempty"`
}

// EnergyResetPair reports both sides' energy after an end-of-turn reset.
type EnergyResetPair struct {
	Player1 int `json:"player1"`
	Player2 int `json:"player2"`
}
