package service

import (
	"fmt"

	"github.com/fizennn/Seejam-Server/internal/apperr"
	"github.com/fizennn/Seejam-Server/internal/engine"
	"github.com/fizennn/Seejam-Server/internal/game"
)

// EndTurn closes the human player's turn. If the opponent is an NPC its
// greedy plan runs to completion (or until the human is defeated) before
// the turn advances. When the duel survives the NPC's turn, both sides
// draw one card if their pile allows it, the turn counter increments and
// both energy pools reset to the new turn number: energy capacity scales
// linearly with elapsed turns instead of being a fixed allowance.
func EndTurn(repo DuelRepo, cards CardLookup, duelID string, userID uint) (*DuelView, error) {
	d, err := repo.GetDuelByPublicID(duelID)
	if err != nil {
		return nil, err
	}
	if d.Status != game.StatusOngoing {
		return nil, apperr.InvalidState("duel %s is %s", d.PublicID, d.Status)
	}
	if d.Player1.ID != game.UserRef(userID).Tag() {
		return nil, apperr.Forbidden("only the first player may end the turn in this duel")
	}

	// A prior action may have made the board lethal without closing the
	// turn; settle that before doing anything else.
	if checkFinish(d) {
		if err := repo.UpdateDuel(d); err != nil {
			return nil, err
		}
		return SanitizeForViewer(d, userID), nil
	}

	var npcActions []game.ActionRecord
	p2Owner, err := d.Player2.Owner()
	if err != nil {
		return nil, apperr.Internal(err, "corrupt player2 owner tag")
	}
	if p2Owner.IsNpc() {
		hand, err := cards.GetMany(d.Player2.CurrentCards)
		if err != nil {
			return nil, err
		}
		npcActions = engine.RunNpcTurn(d, hand)
		if checkFinish(d) {
			// The NPC won mid-turn: no draws, no turn increment.
			if err := repo.UpdateDuel(d); err != nil {
				return nil, err
			}
			view := SanitizeForViewer(d, userID)
			view.LastAction = &game.ActionRecord{
				Player:          "player2",
				Action:          "npcTurn",
				NpcActions:      npcActions,
				TurnEnded:       true,
				EnergyRemaining: d.Player2.Stats.Energy,
			}
			return view, nil
		}
	}

	// Draws are independent per side; one side running dry does not stop
	// the other from drawing.
	d.Player1.DrawOne()
	d.Player2.DrawOne()

	d.Turn++
	d.Player1.Stats.Energy = d.Turn
	d.Player2.Stats.Energy = d.Turn
	d.Log(fmt.Sprintf("End of turn. Turn %d begins", d.Turn))

	if err := repo.UpdateDuel(d); err != nil {
		return nil, err
	}

	view := SanitizeForViewer(d, userID)
	view.LastAction = &game.ActionRecord{
		Player:     "system",
		Action:     "endTurn",
		NpcActions: npcActions,
		TurnEnded:  true,
		NewTurn:    d.Turn,
		EnergyReset: &game.EnergyResetPair{
			Player1: d.Player1.Stats.Energy,
			Player2: d.Player2.Stats.Energy,
		},
		EnergyRemaining: d.Player1.Stats.Energy,
	}
	return view, nil
}
