package storage

import (
	"github.com/shopspring/decimal"

	"github.com/kiran797979/monad-blitz-hyderabad/internal/arena"
)

// Repository is the persistence surface the arena backend depends on. The
// service layer narrows it to per-operation interfaces so tests can substitute
// small fakes.
type Repository interface {
	CreateAgent(a *arena.Agent) error
	GetAgentByID(id uint) (*arena.Agent, error)
	ListAgents() ([]arena.Agent, error)
	// GetTopAgents returns agents ordered by wins for the leaderboard.
	GetTopAgents(limit int) ([]arena.Agent, error)
	UpdateAgentStats(id uint, wins, losses, totalBattles int) error

	CreateFight(f *arena.Fight) error
	GetFightByID(id uint) (*arena.Fight, error)
	ListFights(status arena.FightStatus) ([]arena.Fight, error)
	// ClaimPendingFight atomically moves a pending fight to in_progress and
	// reports whether this caller won the claim. At most one caller per fight
	// id ever observes true.
	ClaimPendingFight(id uint) (bool, error)
	SetFightOutcome(id uint, winnerID uint) error
	CancelFight(id uint) error

	CreateMarket(m *arena.Market) error
	GetMarketByID(id uint) (*arena.Market, error)
	GetMarketByFightID(fightID uint) (*arena.Market, error)
	ListMarkets(status arena.MarketStatus) ([]arena.Market, error)
	UpdateMarketPools(id uint, poolA, poolB decimal.Decimal) error
	SetMarketOutcome(id uint, winnerID uint) error

	CreateBet(b *arena.Bet) error
	GetBetByID(id uint) (*arena.Bet, error)
	ListBetsByMarket(marketID uint) ([]arena.Bet, error)
	ListBetsByBettor(bettor string) ([]arena.Bet, error)
	// MarkBetClaimed flips the claimed flag and reports whether this caller
	// performed the flip. At most one caller per bet id ever observes true.
	MarkBetClaimed(id uint) (bool, error)

	// Ping reports whether the underlying database is reachable.
	Ping() error
}
