package game

// MaxHealth is the health a snake is restored to when it eats.
const MaxHealth = 100

// Elimination causes recorded on a snake once it dies.
const (
	EliminatedGeneric = "DED"
	EliminatedBySelf  = "eliminated itself"
)

// Snake is one competitor on the board. The JSON shape follows the
// Battlesnake API; EliminatedCause is internal simulation state and never
// appears on the wire.
type Snake struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  int     `json:"health"`
	Body    []Coord `json:"body"`
	Head    Coord   `json:"head"`
	Length  int     `json:"length"`
	Latency string  `json:"latency"`
	Shout   string  `json:"shout"`

	EliminatedCause string `json:"-"`
}

// Eliminate marks the snake dead with the generic cause.
func (s *Snake) Eliminate() {
	s.EliminatedCause = EliminatedGeneric
}

// SelfEliminate marks the snake dead by its own doing.
func (s *Snake) SelfEliminate() {
	s.EliminatedCause = EliminatedBySelf
}

// IsEliminated reports whether the snake is out of the game.
func (s *Snake) IsEliminated() bool {
	return s.EliminatedCause != ""
}

// Feed restores the snake to full health and grows it by one segment,
// stacked on the current tail.
func (s *Snake) Feed() {
	s.Health = MaxHealth
	s.Body = append(s.Body, s.Body[len(s.Body)-1])
}

// ReduceHealth applies the per-turn health decay.
func (s *Snake) ReduceHealth() {
	s.Health--
}

// OutOfHealth reports whether the snake has starved.
func (s *Snake) OutOfHealth() bool {
	return s.Health <= 0
}

// OutOfBounds reports whether the snake's head left the board.
func (s *Snake) OutOfBounds(width, height int) bool {
	return !s.Body[0].InBounds(width, height)
}

// SelfCollision reports whether the snake's head landed on its own body.
func (s *Snake) SelfCollision() bool {
	return headCollidesBody(s.Head, s.Body)
}

// CollidesWith reports whether the snake dies against any of the given
// snakes: a losing head-to-head, or its head on another body. Eliminated
// snakes are pass-through.
func (s *Snake) CollidesWith(snakes []Snake) bool {
	for i := range snakes {
		other := &snakes[i]
		if other.IsEliminated() {
			continue
		}
		if s.diesHeadToHead(other) {
			return true
		}
		if other.ID != s.ID && headCollidesBody(s.Head, other.Body) {
			return true
		}
	}
	return false
}

// diesHeadToHead reports whether the snake loses a head-on collision:
// shared head cell and a strictly longer opponent.
func (s *Snake) diesHeadToHead(other *Snake) bool {
	return other.ID != s.ID && s.Head.Intersect(other.Head) && len(other.Body) > len(s.Body)
}

// headCollidesBody checks the head against every body segment but the
// first, which is the head cell itself.
func headCollidesBody(head Coord, body []Coord) bool {
	for i, segment := range body {
		if i == 0 {
			continue
		}
		if head.Intersect(segment) {
			return true
		}
	}
	return false
}
