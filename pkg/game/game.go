package game

// Ruleset describes the game mode the arena is running.
type Ruleset struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Game identifies one match.
type Game struct {
	ID      string  `json:"id"`
	Ruleset Ruleset `json:"ruleset"`
	Timeout int     `json:"timeout"`
}

// GameState is the payload the arena POSTs to /start, /move and /end.
type GameState struct {
	Game  Game  `json:"game"`
	Turn  int   `json:"turn"`
	Board Board `json:"board"`
	You   Snake `json:"you"`
}
