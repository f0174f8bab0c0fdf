package service

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/kiran797979/monad-blitz-hyderabad/internal/arena"
	"github.com/kiran797979/monad-blitz-hyderabad/internal/constants"
	"github.com/kiran797979/monad-blitz-hyderabad/internal/logging"
)

var (
	ErrMarketNotFound     = errors.New("market not found")
	ErrMarketExists       = errors.New("market already exists for this fight")
	ErrMarketNotOpen      = errors.New("market is not open")
	ErrMarketNotResolved  = errors.New("market is not resolved")
	ErrInvalidMarketAgent = errors.New("agent is not part of this market")
	ErrInvalidBetAmount   = errors.New("bet amount must be positive")
	ErrBetNotFound        = errors.New("bet not found")
	ErrBetAlreadyClaimed  = errors.New("bet already claimed")
	ErrBettorMismatch     = errors.New("bet belongs to a different bettor")
)

// MarketRepo is the persistence surface the market ledger needs.
type MarketRepo interface {
	GetFightByID(id uint) (*arena.Fight, error)
	CreateMarket(m *arena.Market) error
	GetMarketByID(id uint) (*arena.Market, error)
	GetMarketByFightID(fightID uint) (*arena.Market, error)
	CreateBet(b *arena.Bet) error
	GetBetByID(id uint) (*arena.Bet, error)
	UpdateMarketPools(id uint, poolA, poolB decimal.Decimal) error
	SetMarketOutcome(id uint, winnerID uint) error
	// MarkBetClaimed flips the claimed flag and reports whether this caller
	// performed the flip. At most one caller per bet ever observes true.
	MarkBetClaimed(id uint) (bool, error)
}

// Ledger owns pool accounting, odds and settlement for pari-mutuel markets.
// All pool mutations for one market go through that market's mutex, so
// concurrent bets cannot lose updates.
type Ledger struct {
	repo  MarketRepo
	locks *lockTable
}

func NewLedger(repo MarketRepo) *Ledger {
	return &Ledger{repo: repo, locks: newLockTable()}
}

// BetReceipt reports an accepted bet together with the pools it produced.
type BetReceipt struct {
	BetID    uint            `json:"bet_id"`
	MarketID uint            `json:"market_id"`
	AgentID  uint            `json:"agent_id"`
	Amount   decimal.Decimal `json:"amount"`
	PoolA    decimal.Decimal `json:"total_pool_a"`
	PoolB    decimal.Decimal `json:"total_pool_b"`
}

// OddsQuote is a point-in-time snapshot of a market's implied odds. The
// projected payouts are present only when a hypothetical stake was supplied.
type OddsQuote struct {
	AgentA uint            `json:"agent_a"`
	AgentB uint            `json:"agent_b"`
	OddsA  decimal.Decimal `json:"odds_a"`
	OddsB  decimal.Decimal `json:"odds_b"`
	PoolA  decimal.Decimal `json:"total_pool_a"`
	PoolB  decimal.Decimal `json:"total_pool_b"`
	Total  decimal.Decimal `json:"total_pool"`

	ProjectedPayoutA *decimal.Decimal `json:"projected_payout_a,omitempty"`
	ProjectedPayoutB *decimal.Decimal `json:"projected_payout_b,omitempty"`
}

// ClaimResult reports a settled bet claim.
type ClaimResult struct {
	BetID  uint            `json:"bet_id"`
	Won    bool            `json:"won"`
	Payout decimal.Decimal `json:"payout"`
}

// OpenMarket creates the market for a fight, mirroring the fight's agents.
// One market per fight: a second attempt is rejected.
func (l *Ledger) OpenMarket(fightID uint) (*arena.Market, error) {
	f, err := l.repo.GetFightByID(fightID)
	if err != nil || f == nil {
		return nil, ErrFightNotFound
	}
	if existing, err := l.repo.GetMarketByFightID(fightID); err == nil && existing != nil {
		return nil, ErrMarketExists
	}
	m := &arena.Market{
		FightID:  fightID,
		AgentAID: f.AgentAID,
		AgentBID: f.AgentBID,
		PoolA:    decimal.Zero,
		PoolB:    decimal.Zero,
		Status:   arena.MarketOpen,
	}
	if err := l.repo.CreateMarket(m); err != nil {
		// The unique index on fight_id backs the pre-check under races.
		return nil, ErrMarketExists
	}
	return m, nil
}

// PlaceBet admits a wager against an open market and grows the matching pool.
// A rejected bet leaves both the bet table and the pools untouched.
func (l *Ledger) PlaceBet(marketID uint, bettor string, agentID uint, amount decimal.Decimal) (*BetReceipt, error) {
	if amount.Cmp(decimal.Zero) <= 0 {
		return nil, ErrInvalidBetAmount
	}

	lock := l.locks.forMarket(marketID)
	lock.Lock()
	defer lock.Unlock()

	m, err := l.repo.GetMarketByID(marketID)
	if err != nil || m == nil {
		return nil, ErrMarketNotFound
	}
	if m.Status != arena.MarketOpen {
		return nil, ErrMarketNotOpen
	}
	if agentID != m.AgentAID && agentID != m.AgentBID {
		return nil, ErrInvalidMarketAgent
	}

	bet := &arena.Bet{
		MarketID: marketID,
		Bettor:   bettor,
		AgentID:  agentID,
		Amount:   amount,
	}
	if err := l.repo.CreateBet(bet); err != nil {
		return nil, err
	}

	poolA, poolB := m.PoolA, m.PoolB
	if agentID == m.AgentAID {
		poolA = poolA.Add(amount)
	} else {
		poolB = poolB.Add(amount)
	}
	if err := l.repo.UpdateMarketPools(marketID, poolA, poolB); err != nil {
		return nil, err
	}

	logging.Info("bet accepted", logging.Fields{
		constants.LogFieldMarketID: marketID,
		constants.LogFieldBetID:    bet.ID,
		constants.LogFieldAgentID:  agentID,
	})
	return &BetReceipt{
		BetID:    bet.ID,
		MarketID: marketID,
		AgentID:  agentID,
		Amount:   amount,
		PoolA:    poolA,
		PoolB:    poolB,
	}, nil
}

// Odds computes the implied probability of each side from the pools. An empty
// market quotes exactly even odds, and the pair always sums to exactly 1.
func (l *Ledger) Odds(marketID uint) (*OddsQuote, error) {
	m, err := l.repo.GetMarketByID(marketID)
	if err != nil || m == nil {
		return nil, ErrMarketNotFound
	}
	oddsA, oddsB := ComputeOdds(m.PoolA, m.PoolB)
	return &OddsQuote{
		AgentA: m.AgentAID,
		AgentB: m.AgentBID,
		OddsA:  oddsA,
		OddsB:  oddsB,
		PoolA:  m.PoolA,
		PoolB:  m.PoolB,
		Total:  m.PoolA.Add(m.PoolB),
	}, nil
}

// Quote is Odds extended with the payout a hypothetical stake on each side
// would return if that side won, at the current pools.
func (l *Ledger) Quote(marketID uint, stake decimal.Decimal) (*OddsQuote, error) {
	if stake.Cmp(decimal.Zero) <= 0 {
		return nil, ErrInvalidBetAmount
	}
	q, err := l.Odds(marketID)
	if err != nil {
		return nil, err
	}
	payoutA := ProjectPayout(q.PoolA, q.PoolB, stake)
	payoutB := ProjectPayout(q.PoolB, q.PoolA, stake)
	q.ProjectedPayoutA = &payoutA
	q.ProjectedPayoutB = &payoutB
	return q, nil
}

// ResolveMarket closes the market on the fight's outcome. Valid only while the
// market is open and for a winner that is one of its two agents;
// re-resolution is rejected because the status is no longer open.
func (l *Ledger) ResolveMarket(marketID, winnerID uint) (*arena.Market, error) {
	lock := l.locks.forMarket(marketID)
	lock.Lock()
	defer lock.Unlock()

	m, err := l.repo.GetMarketByID(marketID)
	if err != nil || m == nil {
		return nil, ErrMarketNotFound
	}
	if m.Status != arena.MarketOpen {
		return nil, ErrMarketNotOpen
	}
	if winnerID != m.AgentAID && winnerID != m.AgentBID {
		return nil, ErrInvalidMarketAgent
	}
	if err := l.repo.SetMarketOutcome(marketID, winnerID); err != nil {
		return nil, err
	}
	return l.repo.GetMarketByID(marketID)
}

// ClaimBet settles one bet against a resolved market. Winning bets receive
// their stake plus a share of the losing pool proportional to their weight in
// the winning pool; losing bets claim zero. Claims are one-shot: the claimed
// flag is flipped by a conditional update under the market's mutex before any
// payout is computed, so concurrent claims of the same bet yield exactly one
// payout.
func (l *Ledger) ClaimBet(betID uint, bettor string) (*ClaimResult, error) {
	bet, err := l.repo.GetBetByID(betID)
	if err != nil || bet == nil {
		return nil, ErrBetNotFound
	}

	lock := l.locks.forMarket(bet.MarketID)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the lock: another claim may have landed first.
	bet, err = l.repo.GetBetByID(betID)
	if err != nil || bet == nil {
		return nil, ErrBetNotFound
	}
	if bet.Bettor != bettor {
		return nil, ErrBettorMismatch
	}
	if bet.Claimed {
		return nil, ErrBetAlreadyClaimed
	}

	m, err := l.repo.GetMarketByID(bet.MarketID)
	if err != nil || m == nil {
		return nil, ErrMarketNotFound
	}
	if m.Status != arena.MarketResolved || m.WinnerID == nil {
		return nil, ErrMarketNotResolved
	}

	claimed, err := l.repo.MarkBetClaimed(betID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrBetAlreadyClaimed
	}

	result := &ClaimResult{BetID: betID, Payout: decimal.Zero}
	if bet.AgentID == *m.WinnerID {
		poolWin, poolLose := m.PoolA, m.PoolB
		if *m.WinnerID == m.AgentBID {
			poolWin, poolLose = m.PoolB, m.PoolA
		}
		result.Won = true
		// Post-bet form of the pari-mutuel projection: the stake is already
		// inside the winning pool here.
		result.Payout = bet.Amount
		if !poolWin.IsZero() {
			result.Payout = bet.Amount.Add(bet.Amount.Div(poolWin).Mul(poolLose))
		}
	}
	return result, nil
}

// ComputeOdds returns the implied odds for pools a and b. Both are exactly 0.5
// when the market is empty; otherwise oddsB is derived as 1 - oddsA so the
// pair sums to exactly 1 regardless of division rounding.
func ComputeOdds(poolA, poolB decimal.Decimal) (oddsA, oddsB decimal.Decimal) {
	total := poolA.Add(poolB)
	if total.IsZero() {
		half := decimal.NewFromFloat(0.5)
		return half, half
	}
	oddsA = poolA.Div(total)
	return oddsA, decimal.NewFromInt(1).Sub(oddsA)
}

// ProjectPayout quotes what a new stake on a side would return if that side
// wins: the stake plus a share of the opposing pool weighted by the stake's
// contribution to the winning pool including itself. A market with no money
// on the side and a zero stake returns the stake unchanged.
func ProjectPayout(poolSide, poolOther, stake decimal.Decimal) decimal.Decimal {
	den := poolSide.Add(stake)
	if den.IsZero() {
		return stake
	}
	return stake.Add(stake.Div(den).Mul(poolOther))
}
