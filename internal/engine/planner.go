package engine

import (
	"sort"

	"github.com/fizennn/Seejam-Server/internal/game"
)

// PlannedPlay is one candidate card play chosen by the NPC planner.
type PlannedPlay struct {
	CardID uint
	Card   *game.Card
}

// actionPriority ranks effects for the greedy NPC heuristic: damage first,
// then buffs, then anything else. Ties keep original hand order.
func actionPriority(c *game.Card) int {
	switch c.Effect.Action {
	case game.ActionDamage:
		return 3
	case game.ActionIncreaseAtk, game.ActionIncreaseDef:
		return 2
	}
	return 1
}

// PlanTurn selects every card in hand whose cost fits the energy budget
// and orders the candidates by priority. The plan is deterministic: the
// sort is stable, so equal-priority cards stay in hand order.
func PlanTurn(hand []uint, energy int, cards map[uint]*game.Card) []PlannedPlay {
	plays := make([]PlannedPlay, 0, len(hand))
	for _, id := range hand {
		c, ok := cards[id]
		if !ok {
			continue
		}
		if c.Cost() <= energy {
			plays = append(plays, PlannedPlay{CardID: id, Card: c})
		}
	}
	sort.SliceStable(plays, func(i, j int) bool {
		return actionPriority(plays[i].Card) > actionPriority(plays[j].Card)
	})
	return plays
}

// RunNpcTurn executes the NPC's greedy plan against the duel: each
// affordable candidate is played in priority order, its effect applied,
// the card discarded, energy debited and a battle-log line appended. The
// loop stops as soon as the human player is defeated or no further play
// is affordable. Player2 must be the NPC side.
func RunNpcTurn(d *game.Duel, cards map[uint]*game.Card) []game.ActionRecord {
	npc := &d.Player2
	plan := PlanTurn(npc.CurrentCards, npc.Stats.Energy, cards)

	actions := make([]game.ActionRecord, 0, len(plan))
	for _, play := range plan {
		cost := play.Card.Cost()
		if npc.Stats.Energy < cost {
			break
		}
		idx := npc.HandIndex(play.CardID)
		if idx < 0 {
			continue
		}

		out := ApplyCardEffect(npc, &d.Player1, play.Card)
		npc.Stats.Energy -= cost
		npc.DiscardFromHand(idx)
		d.Log(npc.FullName + " plays " + play.Card.Name + " " + out.Describe())

		effect := play.Card.Effect
		actions = append(actions, game.ActionRecord{
			Player:          "player2",
			Action:          "playCard",
			CardName:        play.Card.Name,
			Effect:          &effect,
			Result:          out.Describe(),
			EnergyUsed:      cost,
			EnergyRemaining: npc.Stats.Energy,
		})

		if d.Player1.IsDefeated() {
			break
		}
	}
	return actions
}
