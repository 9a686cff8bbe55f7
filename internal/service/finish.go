package service

import "github.com/fizennn/Seejam-Server/internal/game"

// checkFinish evaluates the shared termination condition: if either side
// is at zero hit points the duel becomes finished and a summary line names
// the winner. The transition is final; there is no undo. Returns true when
// the duel is (or already was) in a terminal state so callers can
// short-circuit.
func checkFinish(d *game.Duel) bool {
	if d.Status != game.StatusOngoing {
		return true
	}
	p1Dead := d.Player1.IsDefeated()
	p2Dead := d.Player2.IsDefeated()
	if !p1Dead && !p2Dead {
		return false
	}
	d.Status = game.StatusFinished
	switch {
	case p1Dead && p2Dead:
		d.Log("The duel is over. It ends in a draw.")
	case p1Dead:
		d.Log("The duel is over. player2 wins.")
	default:
		d.Log("The duel is over. player1 wins.")
	}
	return true
}
