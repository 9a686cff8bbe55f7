package service

import (
	"time"

	"github.com/fizennn/Seejam-Server/internal/game"
)

// SnapshotView is the client-facing projection of one side. For the side
// the viewer does not own, the hand and draw pile are replaced by counts
// and the raw arrays are omitted from the payload entirely. The viewer's
// own zones are always present, as `[]` when empty, so an empty own hand
// stays distinguishable from a redacted opponent zone. The discard pile
// and battle log are public knowledge and never redacted.
type SnapshotView struct {
	ID                string            `json:"id"`
	FullName          string            `json:"fullName"`
	Stats             game.Stats        `json:"stats"`
	Equipment         game.EquipmentSet `json:"equipment"`
	Cards             *[]uint           `json:"cards,omitempty"`
	CurrentCards      *[]uint           `json:"currentCards,omitempty"`
	DiscardPile       []uint            `json:"discardPile"`
	CardsCount        *int              `json:"cardsCount,omitempty"`
	CurrentCardsCount *int              `json:"currentCardsCount,omitempty"`
}

// DuelView is the sanitized duel representation returned by every read and
// write operation. It is built from copies, never aliased to the stored
// duel.
type DuelView struct {
	ID         string             `json:"id"`
	Player1    *SnapshotView      `json:"player1"`
	Player2    *SnapshotView      `json:"player2"`
	Turn       int                `json:"turn"`
	Status     game.DuelStatus    `json:"status"`
	BattleLog  []string           `json:"battleLog"`
	LastAction *game.ActionRecord `json:"lastAction,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// SanitizeForViewer redacts hidden information for the given viewer: only
// the side whose tag matches user_<viewerUserID> is returned in full. A
// viewer who owns neither side (a spectator) sees both sides redacted.
func SanitizeForViewer(d *game.Duel, viewerUserID uint) *DuelView {
	viewerTag := game.UserRef(viewerUserID).Tag()
	return &DuelView{
		ID:        d.PublicID,
		Player1:   snapshotView(&d.Player1, d.Player1.ID == viewerTag),
		Player2:   snapshotView(&d.Player2, d.Player2.ID == viewerTag),
		Turn:      d.Turn,
		Status:    d.Status,
		BattleLog: append([]string(nil), d.BattleLog...),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func snapshotView(p *game.PlayerSnapshot, visible bool) *SnapshotView {
	v := &SnapshotView{
		ID:          p.ID,
		FullName:    p.FullName,
		Stats:       p.Stats,
		Equipment:   p.Equipment,
		DiscardPile: copyIDs(p.DiscardPile),
	}
	if visible {
		pile := copyIDs(p.Cards)
		hand := copyIDs(p.CurrentCards)
		v.Cards = &pile
		v.CurrentCards = &hand
		return v
	}
	cardsCount := len(p.Cards)
	handCount := len(p.CurrentCards)
	v.CardsCount = &cardsCount
	v.CurrentCardsCount = &handCount
	return v
}

// copyIDs always yields a non-nil slice so empty zones serialize as []
// rather than null.
func copyIDs(ids []uint) []uint {
	return append(make([]uint, 0, len(ids)), ids...)
}
