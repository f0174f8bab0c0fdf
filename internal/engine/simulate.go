package engine

import (
	"fmt"
	"math"

	"github.com/kiran797979/monad-blitz-hyderabad/internal/arena"
)

// Rand supplies uniform draws in [0,1). *math/rand.Rand satisfies it;
// tests inject fixed sequences for reproducible battles.
type Rand interface {
	Float64() float64
}

const (
	startingHealth = 100
	maxRounds      = 10
)

// Simulate runs the stats-based fallback combat between two agents and always
// terminates with a winner. Each round both combatants draw an independent
// luck value; the first agent's damage lands before the second's, so a
// combatant dropped to zero does not counter-attack. The round cap is a hard
// bound and exact health ties are broken in favor of the lower agent id.
func Simulate(a, b *arena.Agent, rng Rand) arena.Verdict {
	log := []string{
		fmt.Sprintf("⚔️ Battle begins: %s vs %s!", a.Name, b.Name),
		"---",
	}

	profileA := arena.DeriveProfile(a)
	profileB := arena.DeriveProfile(b)

	healthA := startingHealth
	healthB := startingHealth

	for round := 1; round <= maxRounds; round++ {
		if healthA <= 0 || healthB <= 0 {
			break
		}
		log = append(log, fmt.Sprintf("Round %d:", round))

		luckA := rng.Float64()
		luckB := rng.Float64()

		damageAtoB := damage(profileA, profileB, luckA)
		damageBtoA := damage(profileB, profileA, luckB)

		healthB -= damageAtoB
		log = append(log,
			fmt.Sprintf("  %s attacks! (%d damage)", a.Name, damageAtoB),
			fmt.Sprintf("  %s health: %d/%d", b.Name, clampZero(healthB), startingHealth))
		if healthB <= 0 {
			break
		}

		healthA -= damageBtoA
		log = append(log,
			fmt.Sprintf("  %s counters! (%d damage)", b.Name, damageBtoA),
			fmt.Sprintf("  %s health: %d/%d", a.Name, clampZero(healthA), startingHealth))
		log = append(log, "---")
	}

	winner, loser, winnerHealth := decideWinner(a, b, healthA, healthB)
	log = append(log, fmt.Sprintf("🏆 %s wins via stats!", winner.Name))

	narrative := fmt.Sprintf(
		"📊 Stats-based combat:\n- Winner: %s (ID: %d)\n- Experience: %d battles\n- HP remaining: %d/%d",
		winner.Name, winner.ID, winner.TotalBattles, winnerHealth, startingHealth)

	return arena.Verdict{
		WinnerID:  winner.ID,
		LoserID:   loser.ID,
		Narrative: narrative,
		BattleLog: log,
	}
}

// damage computes one attack: the attacker's power and tactics plus scaled
// luck, reduced by the defender's tempo, never below 1.
func damage(att, def arena.StatProfile, luck float64) int {
	raw := int(math.Floor(float64(att.Power)*0.4+float64(att.Tactics)*0.3+luck*30)) -
		int(math.Floor(float64(def.Tempo)*0.3))
	if raw < 1 {
		return 1
	}
	return raw
}

// decideWinner applies the priority order: mutual knockout goes to the less
// negative health, a single knockout goes to the survivor, the round cap goes
// to the higher remaining health. Residual exact ties go to the lower id.
func decideWinner(a, b *arena.Agent, healthA, healthB int) (winner, loser *arena.Agent, winnerHealth int) {
	aWins := true
	switch {
	case healthA <= 0 && healthB <= 0:
		aWins = healthA > healthB || (healthA == healthB && a.ID < b.ID)
	case healthA <= 0:
		aWins = false
	case healthB <= 0:
		aWins = true
	default:
		aWins = healthA > healthB || (healthA == healthB && a.ID < b.ID)
	}
	if aWins {
		return a, b, healthA
	}
	return b, a, healthB
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
