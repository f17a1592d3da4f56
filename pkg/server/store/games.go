package store

import "time"

// GameRecord is one archived game.
type GameRecord struct {
	ID        string `gorm:"primaryKey"`
	GameID    string
	SnakeID   string
	Ruleset   string
	Width     int
	Height    int
	Engine    string
	StartedAt time.Time
	EndedAt   *time.Time
	Outcome   string
	Winner    string
	Turns     int
}

// TableName sets the games table name
func (GameRecord) TableName() string {
	return "games"
}

// MoveRecord is one answered /move request within a game.
type MoveRecord struct {
	ID        string `gorm:"primaryKey"`
	GameID    string
	Turn      int
	Move      string
	Shout     string
	LatencyMs int64
	CreatedAt time.Time
}

// TableName sets the moves table name
func (MoveRecord) TableName() string {
	return "moves"
}

// GamesStore abstracts game archive operations
type GamesStore interface {
	// StartGame archives the start of a game
	StartGame(rec *GameRecord) error

	// RecordMove archives one move decision
	RecordMove(rec *MoveRecord) error

	// FinishGame records the final outcome of a game
	FinishGame(gameID, outcome, winner string, turns int) error

	// RecentGames returns the most recently started games
	RecentGames(limit int) ([]GameRecord, error)
}

// HealthStore abstracts connectivity checks
type HealthStore interface {
	// CheckConnectivity verifies the archive backend is reachable
	CheckConnectivity() error
}
