package arena

import (
	"time"

	"github.com/shopspring/decimal"
)

// FightStatus is the one-way lifecycle of a fight. Only the resolution
// coordinator advances it past pending.
type FightStatus string

const (
	FightPending    FightStatus = "pending"
	FightInProgress FightStatus = "in_progress"
	FightCompleted  FightStatus = "completed"
	FightCancelled  FightStatus = "cancelled"
)

// MarketStatus is the lifecycle of a pari-mutuel market.
type MarketStatus string

const (
	MarketOpen     MarketStatus = "open"
	MarketClosed   MarketStatus = "closed"
	MarketResolved MarketStatus = "resolved"
)

// Agent is a registered combatant. Win/loss counters are mutated only after a
// fight completes; total_battles always equals wins + losses.
type Agent struct {
	ID           uint            `json:"id" gorm:"primarykey"`
	Name         string          `json:"name" gorm:"size:32;not null"`
	Owner        string          `json:"owner" gorm:"index;not null"`
	MetadataURI  string          `json:"metadata_uri"`
	Wins         int             `json:"wins" gorm:"not null;default:0"`
	Losses       int             `json:"losses" gorm:"not null;default:0"`
	TotalBattles int             `json:"total_battles" gorm:"not null;default:0"`
	StakedAmount decimal.Decimal `json:"staked_amount" gorm:"type:numeric(30,10);not null;default:0"`
	IsActive     bool            `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Fight is a contest between two distinct agents. Winner is set exactly once,
// by the coordinator, when the fight completes.
type Fight struct {
	ID          uint            `json:"id" gorm:"primarykey"`
	AgentAID    uint            `json:"agent_a" gorm:"column:agent_a;not null"`
	AgentBID    uint            `json:"agent_b" gorm:"column:agent_b;not null"`
	WinnerID    *uint           `json:"winner" gorm:"column:winner"`
	StakeAmount decimal.Decimal `json:"stake_amount" gorm:"type:numeric(30,10);not null;default:0"`
	Status      FightStatus     `json:"status" gorm:"index;not null;default:pending"`
	CreatedAt   time.Time       `json:"created_at"`
	CompletedAt *time.Time      `json:"completed_at"`
}

// Market is the wagering pool tied to one fight. Pools only grow via accepted
// bets; the unique index on fight_id enforces one market per fight.
type Market struct {
	ID         uint            `json:"id" gorm:"primarykey"`
	FightID    uint            `json:"fight_id" gorm:"uniqueIndex;not null"`
	AgentAID   uint            `json:"agent_a" gorm:"column:agent_a;not null"`
	AgentBID   uint            `json:"agent_b" gorm:"column:agent_b;not null"`
	PoolA      decimal.Decimal `json:"total_pool_a" gorm:"column:total_pool_a;type:numeric(30,10);not null;default:0"`
	PoolB      decimal.Decimal `json:"total_pool_b" gorm:"column:total_pool_b;type:numeric(30,10);not null;default:0"`
	WinnerID   *uint           `json:"winner" gorm:"column:winner"`
	Status     MarketStatus    `json:"status" gorm:"index;not null;default:open"`
	CreatedAt  time.Time       `json:"created_at"`
	ResolvedAt *time.Time      `json:"resolved_at"`
}

// Bet is immutable once accepted, except for the claimed flag.
type Bet struct {
	ID        uint            `json:"id" gorm:"primarykey"`
	MarketID  uint            `json:"market_id" gorm:"index;not null"`
	Bettor    string          `json:"bettor" gorm:"index;not null"`
	AgentID   uint            `json:"agent_id" gorm:"not null"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:numeric(30,10);not null"`
	Claimed   bool            `json:"claimed" gorm:"not null;default:false"`
	CreatedAt time.Time       `json:"created_at"`
}

// Verdict is a resolved fight outcome plus its supporting narrative.
type Verdict struct {
	WinnerID  uint     `json:"winner_id"`
	LoserID   uint     `json:"loser_id"`
	Narrative string   `json:"reasoning"`
	BattleLog []string `json:"battle_log"`
}
