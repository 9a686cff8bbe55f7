package service

import (
	"github.com/fizennn/Seejam-Server/internal/apperr"
	"github.com/fizennn/Seejam-Server/internal/engine"
	"github.com/fizennn/Seejam-Server/internal/game"
)

// PlayCard resolves one card play by the human occupant of player1. The
// whole mutation (energy debit, effect, zone move, log, termination)
// commits in a single version-checked save; on any failure nothing is
// persisted. Multiple plays per turn are allowed while energy lasts.
func PlayCard(repo DuelRepo, cards CardLookup, duelID string, userID uint, cardID uint) (*DuelView, error) {
	d, err := repo.GetDuelByPublicID(duelID)
	if err != nil {
		return nil, err
	}
	if d.Status != game.StatusOngoing {
		return nil, apperr.InvalidState("duel %s is %s", d.PublicID, d.Status)
	}
	if d.Player1.ID != game.UserRef(userID).Tag() {
		return nil, apperr.Forbidden("only the first player may play cards in this duel")
	}

	idx := d.Player1.HandIndex(cardID)
	if idx < 0 {
		return nil, apperr.InvalidArgument("card %d is not in the current hand", cardID)
	}
	card, err := cards.Get(cardID)
	if err != nil {
		return nil, err
	}
	cost := card.Cost()
	if d.Player1.Stats.Energy < cost {
		return nil, apperr.InvalidArgument("not enough energy: card costs %d, %d available", cost, d.Player1.Stats.Energy)
	}

	d.Player1.Stats.Energy -= cost
	out := engine.ApplyCardEffect(&d.Player1, &d.Player2, card)
	d.Player1.DiscardFromHand(idx)
	d.Log(d.Player1.FullName + " plays " + card.Name + " " + out.Describe())

	checkFinish(d)
	if err := repo.UpdateDuel(d); err != nil {
		return nil, err
	}

	effect := card.Effect
	view := SanitizeForViewer(d, userID)
	view.LastAction = &game.ActionRecord{
		Player:          "player1",
		Action:          "playCard",
		CardName:        card.Name,
		Effect:          &effect,
		Result:          out.Describe(),
		EnergyUsed:      cost,
		EnergyRemaining: d.Player1.Stats.Energy,
	}
	return view, nil
}
