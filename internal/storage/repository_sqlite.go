package storage

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kiran797979/monad-blitz-hyderabad/internal/arena"
)

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository wraps a gorm handle in the Repository interface.
func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateAgent(a *arena.Agent) error {
	return r.db.Create(a).Error
}

func (r *sqliteRepository) GetAgentByID(id uint) (*arena.Agent, error) {
	var a arena.Agent
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *sqliteRepository) ListAgents() ([]arena.Agent, error) {
	var agents []arena.Agent
	if err := r.db.Order("created_at desc").Find(&agents).Error; err != nil {
		return nil, err
	}
	return agents, nil
}

func (r *sqliteRepository) GetTopAgents(limit int) ([]arena.Agent, error) {
	var agents []arena.Agent
	if err := r.db.Order("wins desc, total_battles desc").Limit(limit).Find(&agents).Error; err != nil {
		return nil, err
	}
	return agents, nil
}

func (r *sqliteRepository) UpdateAgentStats(id uint, wins, losses, totalBattles int) error {
	return r.db.Model(&arena.Agent{}).Where("id = ?", id).Updates(map[string]interface{}{
		"wins":          wins,
		"losses":        losses,
		"total_battles": totalBattles,
	}).Error
}

func (r *sqliteRepository) CreateFight(f *arena.Fight) error {
	return r.db.Create(f).Error
}

func (r *sqliteRepository) GetFightByID(id uint) (*arena.Fight, error) {
	var f arena.Fight
	if err := r.db.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *sqliteRepository) ListFights(status arena.FightStatus) ([]arena.Fight, error) {
	var fights []arena.Fight
	q := r.db.Order("created_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&fights).Error; err != nil {
		return nil, err
	}
	return fights, nil
}

// ClaimPendingFight relies on the database to serialize the pending ->
// in_progress transition: the conditional UPDATE touches one row at most,
// and only for the first caller.
func (r *sqliteRepository) ClaimPendingFight(id uint) (bool, error) {
	res := r.db.Model(&arena.Fight{}).
		Where("id = ? AND status = ?", id, arena.FightPending).
		Update("status", arena.FightInProgress)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *sqliteRepository) SetFightOutcome(id uint, winnerID uint) error {
	now := time.Now()
	return r.db.Model(&arena.Fight{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       arena.FightCompleted,
		"winner":       winnerID,
		"completed_at": now,
	}).Error
}

func (r *sqliteRepository) CancelFight(id uint) error {
	return r.db.Model(&arena.Fight{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       arena.FightCancelled,
		"completed_at": time.Now(),
	}).Error
}

func (r *sqliteRepository) CreateMarket(m *arena.Market) error {
	return r.db.Create(m).Error
}

func (r *sqliteRepository) GetMarketByID(id uint) (*arena.Market, error) {
	var m arena.Market
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *sqliteRepository) GetMarketByFightID(fightID uint) (*arena.Market, error) {
	var m arena.Market
	if err := r.db.Where("fight_id = ?", fightID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *sqliteRepository) ListMarkets(status arena.MarketStatus) ([]arena.Market, error) {
	var markets []arena.Market
	q := r.db.Order("created_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&markets).Error; err != nil {
		return nil, err
	}
	return markets, nil
}

func (r *sqliteRepository) UpdateMarketPools(id uint, poolA, poolB decimal.Decimal) error {
	return r.db.Model(&arena.Market{}).Where("id = ?", id).Updates(map[string]interface{}{
		"total_pool_a": poolA,
		"total_pool_b": poolB,
	}).Error
}

func (r *sqliteRepository) SetMarketOutcome(id uint, winnerID uint) error {
	now := time.Now()
	return r.db.Model(&arena.Market{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":      arena.MarketResolved,
		"winner":      winnerID,
		"resolved_at": now,
	}).Error
}

func (r *sqliteRepository) CreateBet(b *arena.Bet) error {
	return r.db.Create(b).Error
}

func (r *sqliteRepository) GetBetByID(id uint) (*arena.Bet, error) {
	var b arena.Bet
	if err := r.db.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *sqliteRepository) ListBetsByMarket(marketID uint) ([]arena.Bet, error) {
	var bets []arena.Bet
	if err := r.db.Where("market_id = ?", marketID).Order("created_at asc").Find(&bets).Error; err != nil {
		return nil, err
	}
	return bets, nil
}

func (r *sqliteRepository) ListBetsByBettor(bettor string) ([]arena.Bet, error) {
	var bets []arena.Bet
	if err := r.db.Where("bettor = ?", bettor).Order("created_at desc").Find(&bets).Error; err != nil {
		return nil, err
	}
	return bets, nil
}

// MarkBetClaimed uses the same conditional-update shape as ClaimPendingFight:
// the WHERE clause admits only an unclaimed row, so the database serializes
// concurrent claims and exactly one caller sees RowsAffected == 1.
func (r *sqliteRepository) MarkBetClaimed(id uint) (bool, error) {
	res := r.db.Model(&arena.Bet{}).
		Where("id = ? AND claimed = ?", id, false).
		Update("claimed", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *sqliteRepository) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
