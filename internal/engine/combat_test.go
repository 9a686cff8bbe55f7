package engine

import (
	"testing"

	"github.com/fizennn/Seejam-Server/internal/game"
)

func TestResolveDamage(t *testing.T) {
	tests := []struct {
		name string
		base int
		atk  int
		def  int
		want int
	}{
		{"even ratio halves", 100, 50, 50, 50},
		{"zero atk and def deals nothing", 90, 0, 0, 0},
		{"no defense passes full damage", 90, 100, 0, 90},
		{"high defense shrinks damage", 100, 25, 75, 25},
		{"negative base clamps to zero", -10, 50, 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveDamage(tt.base, tt.atk, tt.def); got != tt.want {
				t.Fatalf("ResolveDamage(%d, %d, %d) = %d, want %d", tt.base, tt.atk, tt.def, got, tt.want)
			}
		})
	}
}

func TestApplyDamage_FloorsAtZero(t *testing.T) {
	if got := ApplyDamage(10, 3); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if got := ApplyDamage(5, 50); got != 0 {
		t.Fatalf("expected hp floored at 0, got %d", got)
	}
}

func TestApplyStatDelta_Uncapped(t *testing.T) {
	if got := ApplyStatDelta(30, 25); got != 55 {
		t.Fatalf("expected 55, got %d", got)
	}
}

func snapshotWithStats(atk, def, hp int) game.PlayerSnapshot {
	return game.PlayerSnapshot{
		Stats: game.Stats{
			HP:  game.StatValue{Max: hp, Current: hp},
			Atk: game.StatGauge{Base: atk, Current: atk},
			Def: game.StatGauge{Base: def, Current: def},
		},
	}
}

func TestApplyCardEffect_Damage(t *testing.T) {
	actor := snapshotWithStats(50, 10, 100)
	opponent := snapshotWithStats(20, 50, 100)
	card := &game.Card{Effect: game.CardEffect{Action: game.ActionDamage, Value: 100, Target: game.TargetEnemy}}

	out := ApplyCardEffect(&actor, &opponent, card)

	if out.Damage != 50 {
		t.Fatalf("expected 50 damage, got %d", out.Damage)
	}
	if opponent.Stats.HP.Current != 50 {
		t.Fatalf("expected opponent at 50 hp, got %d", opponent.Stats.HP.Current)
	}
	if out.TargetHP != 50 {
		t.Fatalf("expected outcome TargetHP 50, got %d", out.TargetHP)
	}
}

func TestApplyCardEffect_BuffsApplyToActor(t *testing.T) {
	actor := snapshotWithStats(30, 30, 100)
	opponent := snapshotWithStats(30, 30, 100)

	atkCard := &game.Card{Effect: game.CardEffect{Action: game.ActionIncreaseAtk, Value: 10, Target: game.TargetSelf}}
	ApplyCardEffect(&actor, &opponent, atkCard)
	if actor.Stats.Atk.Current != 40 {
		t.Fatalf("expected actor atk 40, got %d", actor.Stats.Atk.Current)
	}

	defCard := &game.Card{Effect: game.CardEffect{Action: game.ActionIncreaseDef, Value: 15, Target: game.TargetSelf}}
	ApplyCardEffect(&actor, &opponent, defCard)
	if actor.Stats.Def.Current != 45 {
		t.Fatalf("expected actor def 45, got %d", actor.Stats.Def.Current)
	}
	if opponent.Stats.Atk.Current != 30 || opponent.Stats.Def.Current != 30 {
		t.Fatalf("buffs must never touch the opponent")
	}
}

func TestApplyCardEffect_DamageUsesBuffedAtk(t *testing.T) {
	// A self-buff earlier in the turn raises the atk used by a later
	// damage play.
	actor := snapshotWithStats(50, 10, 100)
	opponent := snapshotWithStats(20, 50, 100)

	buff := &game.Card{Effect: game.CardEffect{Action: game.ActionIncreaseAtk, Value: 50, Target: game.TargetSelf}}
	ApplyCardEffect(&actor, &opponent, buff)

	hit := &game.Card{Effect: game.CardEffect{Action: game.ActionDamage, Value: 90, Target: game.TargetEnemy}}
	out := ApplyCardEffect(&actor, &opponent, hit)

	// floor(90 * 100 / 150) = 60
	if out.Damage != 60 {
		t.Fatalf("expected 60 damage with buffed atk, got %d", out.Damage)
	}
}
