package api

import (
	"time"

	"github.com/kiran797979/monad-blitz-hyderabad/internal/engine"
	"github.com/kiran797979/monad-blitz-hyderabad/internal/service"
	"github.com/kiran797979/monad-blitz-hyderabad/internal/storage"
)

// ArenaHandler groups all HTTP handlers for agents, fights and markets.
type ArenaHandler struct {
	repo    storage.Repository
	ledger  *service.Ledger
	adj     service.Adjudicator
	rng     engine.Rand
	started time.Time
}

// NewArenaHandler wires the repository, the optional external adjudicator and
// the randomness source used by the fallback combat simulator.
func NewArenaHandler(repo storage.Repository, adj service.Adjudicator, rng engine.Rand) *ArenaHandler {
	return &ArenaHandler{
		repo:    repo,
		ledger:  service.NewLedger(repo),
		adj:     adj,
		rng:     rng,
		started: time.Now(),
	}
}
