package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kiran797979/monad-blitz-hyderabad/internal/arena"
	"github.com/kiran797979/monad-blitz-hyderabad/internal/constants"
	"github.com/kiran797979/monad-blitz-hyderabad/internal/engine"
	"github.com/kiran797979/monad-blitz-hyderabad/internal/logging"
)

var (
	ErrFightNotFound   = errors.New("fight not found")
	ErrFightNotPending = errors.New("fight already resolved or in progress")
	ErrAgentMissing    = errors.New("agent record missing")
	ErrFatalResolution = errors.New("fight resolution failed")
)

// FightRepo is the persistence surface fight resolution needs.
type FightRepo interface {
	GetFightByID(id uint) (*arena.Fight, error)
	GetAgentByID(id uint) (*arena.Agent, error)
	ClaimPendingFight(id uint) (bool, error)
	SetFightOutcome(id uint, winnerID uint) error
	CancelFight(id uint) error
	UpdateAgentStats(id uint, wins, losses, totalBattles int) error
}

// Adjudicator is an optional external verdict provider. Any returned error is
// treated as "unavailable" and recovered by falling back to the simulator.
type Adjudicator interface {
	Adjudicate(ctx context.Context, a, b *arena.Agent) (*arena.Verdict, error)
}

// ResolveFight drives the fight state machine: claim the pending fight, ask
// the adjudicator, fall back to the stats-based simulator when it is
// unavailable, then complete the fight and update both agents' records.
//
// The pending -> in_progress claim is the serialization point; a concurrent
// duplicate request loses the claim and gets ErrFightNotPending. Any fatal
// condition mid-resolution (missing agent record, adjudicator panic, broken
// verdict) cancels the fight, which is terminal.
func ResolveFight(ctx context.Context, repo FightRepo, adj Adjudicator, rng engine.Rand, fightID uint) (*arena.Verdict, error) {
	f, err := repo.GetFightByID(fightID)
	if err != nil || f == nil {
		return nil, ErrFightNotFound
	}
	if f.Status != arena.FightPending {
		return nil, ErrFightNotPending
	}

	claimed, err := repo.ClaimPendingFight(fightID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrFightNotPending
	}

	agentA, errA := repo.GetAgentByID(f.AgentAID)
	agentB, errB := repo.GetAgentByID(f.AgentBID)
	if errA != nil || errB != nil || agentA == nil || agentB == nil {
		_ = repo.CancelFight(fightID)
		return nil, ErrAgentMissing
	}

	verdict, err := decide(ctx, adj, rng, agentA, agentB)
	if err != nil {
		_ = repo.CancelFight(fightID)
		return nil, err
	}
	// Invariant: the winner is one of the two fight participants.
	if verdict.WinnerID != agentA.ID && verdict.WinnerID != agentB.ID {
		_ = repo.CancelFight(fightID)
		return nil, ErrFatalResolution
	}

	if err := repo.SetFightOutcome(fightID, verdict.WinnerID); err != nil {
		_ = repo.CancelFight(fightID)
		return nil, err
	}

	winner, loser := agentA, agentB
	if verdict.WinnerID == agentB.ID {
		winner, loser = agentB, agentA
	}
	if err := repo.UpdateAgentStats(winner.ID, winner.Wins+1, winner.Losses, winner.TotalBattles+1); err != nil {
		return nil, fmt.Errorf("fight %d completed but winner stats not applied: %w", fightID, err)
	}
	if err := repo.UpdateAgentStats(loser.ID, loser.Wins, loser.Losses+1, loser.TotalBattles+1); err != nil {
		return nil, fmt.Errorf("fight %d completed but loser stats not applied: %w", fightID, err)
	}

	logging.Info("fight resolved", logging.Fields{
		constants.LogFieldFightID: fightID,
		constants.LogFieldAgentID: verdict.WinnerID,
	})
	return verdict, nil
}

// decide asks the adjudicator first and falls back to the simulator. A panic
// out of either collapses to ErrFatalResolution instead of crossing the
// service boundary.
func decide(ctx context.Context, adj Adjudicator, rng engine.Rand, a, b *arena.Agent) (v *arena.Verdict, err error) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("panic during fight resolution", fmt.Errorf("%v", r), nil)
			v, err = nil, ErrFatalResolution
		}
	}()

	if adj != nil {
		verdict, aerr := adj.Adjudicate(ctx, a, b)
		if aerr == nil && verdict != nil {
			return verdict, nil
		}
		logging.Warn("adjudicator unavailable, falling back to stats-based combat", aerr, logging.Fields{
			constants.LogFieldAgentID: a.ID,
		})
	}

	sim := engine.Simulate(a, b, rng)
	return &sim, nil
}
