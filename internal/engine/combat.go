package engine

import (
	"fmt"

	"github.com/fizennn/Seejam-Server/internal/game"
)

// ResolveDamage computes the damage a play deals given the card's base
// value and the combatants' current attack and defense:
//
//	damage = floor(base * atk / (atk + def))
//
// The degenerate atk+def == 0 case deals zero damage rather than dividing
// by zero. Results are clamped to >= 0.
func ResolveDamage(baseValue, attackerAtk, defenderDef int) int {
	total := attackerAtk + defenderDef
	if total == 0 {
		return 0
	}
	dmg := baseValue * attackerAtk / total
	if dmg < 0 {
		return 0
	}
	return dmg
}

// ApplyDamage subtracts damage from hp, flooring at zero.
func ApplyDamage(hp, damage int) int {
	if hp-damage < 0 {
		return 0
	}
	return hp - damage
}

// ApplyStatDelta adds a buff delta to a stat. Buffs are additive and not
// capped.
func ApplyStatDelta(stat, delta int) int {
	return stat + delta
}

// Outcome reports the numeric result of applying a card effect.
type Outcome struct {
	Action game.CardAction
	Value  int
	// Damage is the resolved damage for damage actions, zero otherwise.
	Damage int
	// TargetHP is the defender's hp after a damage action.
	TargetHP int
}

// Describe renders the human-readable suffix for battle-log lines.
func (o Outcome) Describe() string {
	switch o.Action {
	case game.ActionDamage:
		return fmt.Sprintf("deals %d damage (%d base), opponent HP left: %d", o.Damage, o.Value, o.TargetHP)
	case game.ActionIncreaseAtk:
		return fmt.Sprintf("gains %d ATK", o.Value)
	case game.ActionIncreaseDef:
		return fmt.Sprintf("gains %d DEF", o.Value)
	}
	return ""
}

// ApplyCardEffect applies a card's sole effect atomically: damage hits the
// opponent using the actor's current atk against the opponent's current
// def at the moment of the play; buffs apply to the actor. The effect's
// declared target is informational in the current rule set.
func ApplyCardEffect(actor, opponent *game.PlayerSnapshot, card *game.Card) Outcome {
	out := Outcome{Action: card.Effect.Action, Value: card.Effect.Value}
	switch card.Effect.Action {
	case game.ActionDamage:
		out.Damage = ResolveDamage(card.Effect.Value, actor.Stats.Atk.Current, opponent.Stats.Def.Current)
		opponent.Stats.HP.Current = ApplyDamage(opponent.Stats.HP.Current, out.Damage)
		out.TargetHP = opponent.Stats.HP.Current
	case game.ActionIncreaseAtk:
		actor.Stats.Atk.Current = ApplyStatDelta(actor.Stats.Atk.Current, card.Effect.Value)
	case game.ActionIncreaseDef:
		actor.Stats.Def.Current = ApplyStatDelta(actor.Stats.Def.Current, card.Effect.Value)
	}
	return out
}
