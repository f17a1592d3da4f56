package gorm

import (
	"fmt"
	"time"

	"github.com/segmentio/ksuid"
	"gorm.io/gorm"

	"github.com/rustysnake/rustysnake/pkg/server/store"
)

// GamesStore archives games and moves using GORM
type GamesStore struct {
	db *gorm.DB
}

// NewGamesStore creates a new GamesStore
func NewGamesStore(db *gorm.DB) *GamesStore {
	return &GamesStore{db: db}
}

// StartGame archives the start of a game. The record ID is assigned here.
func (s *GamesStore) StartGame(rec *store.GameRecord) error {
	if rec.ID == "" {
		rec.ID = ksuid.New().String()
	}
	if rec.StartedAt.IsZero() {
		rec.StartedAt = time.Now().UTC()
	}
	if err := s.db.Create(rec).Error; err != nil {
		return fmt.Errorf("failed to archive game start: %w", err)
	}
	return nil
}

// RecordMove archives one move decision
func (s *GamesStore) RecordMove(rec *store.MoveRecord) error {
	if rec.ID == "" {
		rec.ID = ksuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if err := s.db.Create(rec).Error; err != nil {
		return fmt.Errorf("failed to archive move: %w", err)
	}
	return nil
}

// FinishGame records the final outcome of a game
func (s *GamesStore) FinishGame(gameID, outcome, winner string, turns int) error {
	now := time.Now().UTC()
	result := s.db.Model(&store.GameRecord{}).
		Where("game_id = ?", gameID).
		Updates(map[string]interface{}{
			"ended_at": &now,
			"outcome":  outcome,
			"winner":   winner,
			"turns":    turns,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to archive game end: %w", result.Error)
	}
	return nil
}

// RecentGames returns the most recently started games
func (s *GamesStore) RecentGames(limit int) ([]store.GameRecord, error) {
	var games []store.GameRecord
	err := s.db.Order("started_at desc").Limit(limit).Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

// CheckConnectivity verifies database connectivity
func (s *GamesStore) CheckConnectivity() error {
	return s.db.Exec("SELECT 1").Error
}
