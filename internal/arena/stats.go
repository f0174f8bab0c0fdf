package arena

// StatProfile is the set of combat attributes derived from an agent's
// historical record. Power scales with wins and experience, tactics with wins
// only, tempo with experience only.
type StatProfile struct {
	Power   int `json:"power"`
	Tactics int `json:"tactics"`
	Tempo   int `json:"tempo"`
}

// DeriveProfile maps an agent's record to combat attributes. Pure and
// deterministic; integer division is intentional.
func DeriveProfile(a *Agent) StatProfile {
	return StatProfile{
		Power:   10 + 2*a.Wins + a.TotalBattles/2,
		Tactics: 10 + 3*a.Wins,
		Tempo:   5 + a.TotalBattles/3,
	}
}

// WinRate returns the agent's win percentage, 0 for an agent with no battles.
func (a *Agent) WinRate() float64 {
	if a.TotalBattles == 0 {
		return 0
	}
	return float64(a.Wins) / float64(a.TotalBattles) * 100
}
