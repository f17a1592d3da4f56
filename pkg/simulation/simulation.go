package simulation

import (
	"fmt"

	"github.com/rustysnake/rustysnake/pkg/game"
)

// Outcome classifies the state of a game.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeWinner
	OutcomeTie
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWinner:
		return "winner"
	case OutcomeTie:
		return "tie"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// EndState is the result of inspecting or advancing a board. Winner is set
// only when Outcome is OutcomeWinner.
type EndState struct {
	Outcome Outcome
	Winner  string
}

// Terminal reports whether the game is over.
func (e EndState) Terminal() bool {
	return e.Outcome != OutcomePlaying
}

// Action is one snake's move for the turn.
type Action struct {
	SnakeID string
	Dir     game.Direction
}

// ExecuteAction applies an action to the board. See Execute.
func ExecuteAction(b *game.Board, a Action, lastSnake bool) EndState {
	return Execute(b, a.SnakeID, a.Dir, lastSnake)
}

// Execute moves one snake and, when lastSnake is set, runs the end-of-turn
// bookkeeping: health decay, feeding, eliminations and collision
// resolution. The board is modified in place; a board that is already
// terminal is returned unchanged.
func Execute(b *game.Board, snakeID string, dir game.Direction, lastSnake bool) EndState {
	if end := EndStateOf(b); end.Terminal() {
		return end
	}

	moveSnake(b, snakeID, dir)
	eliminateSnakes(b)

	if !lastSnake {
		return EndState{Outcome: OutcomePlaying}
	}

	reduceSnakeHealth(b)
	feedSnakes(b)
	eliminateSnakes(b)
	eliminateViaCollisions(b)

	return EndStateOf(b)
}

// EndStateOf inspects the board without modifying it.
func EndStateOf(b *game.Board) EndState {
	remaining := 0
	aliveID := ""
	for i := range b.Snakes {
		if !b.Snakes[i].IsEliminated() {
			remaining++
			aliveID = b.Snakes[i].ID
		}
	}
	switch remaining {
	case 1:
		return EndState{Outcome: OutcomeWinner, Winner: aliveID}
	case 0:
		return EndState{Outcome: OutcomeTie}
	}
	return EndState{Outcome: OutcomePlaying}
}

// IsTerminal reports whether the game on the board is over.
func IsTerminal(b *game.Board) bool {
	return EndStateOf(b).Terminal()
}

// ValidActions marks which of the four directions are candidate moves for
// the snake. All four are candidates; the engines rank them.
func ValidActions(b *game.Board, snakeID string) [4]bool {
	if b.Snake(snakeID) == nil {
		panic("simulation: snake not found: " + snakeID)
	}
	return [4]bool{true, true, true, true}
}

// moveSnake advances the named snake one cell: the head moves into the new
// cell and every segment shifts toward the head. Moving an eliminated or
// empty snake is an engine bug, not a game state.
func moveSnake(b *game.Board, snakeID string, dir game.Direction) {
	snake := b.Snake(snakeID)
	if snake == nil {
		panic("simulation: snake not found: " + snakeID)
	}
	if len(snake.Body) == 0 {
		panic("simulation: trying to move a snake with zero length body")
	}
	if snake.IsEliminated() {
		panic("simulation: trying to move an eliminated snake")
	}

	newHead := snake.Body[0].Step(dir)
	for i := len(snake.Body) - 1; i > 0; i-- {
		snake.Body[i] = snake.Body[i-1]
	}
	snake.Body[0] = newHead
	snake.Head = newHead
}

// eliminateSnakes applies the single-snake death conditions: starvation,
// leaving the board, and self-collision.
func eliminateSnakes(b *game.Board) {
	for i := range b.Snakes {
		snake := &b.Snakes[i]
		if snake.IsEliminated() {
			continue
		}
		if len(snake.Body) == 0 {
			panic("simulation: zero length snake")
		}

		if snake.OutOfHealth() {
			snake.Eliminate()
			continue
		}
		if snake.OutOfBounds(b.Width, b.Height) {
			snake.Eliminate()
			continue
		}
		if snake.SelfCollision() {
			snake.SelfEliminate()
		}
	}
}

// eliminateViaCollisions resolves snake-versus-snake deaths simultaneously:
// every collision is decided against the pre-elimination board so that two
// snakes can take each other out on the same turn.
func eliminateViaCollisions(b *game.Board) {
	eliminated := make(map[string]bool, len(b.Snakes))
	for i := range b.Snakes {
		eliminated[b.Snakes[i].ID] = b.Snakes[i].CollidesWith(b.Snakes)
	}
	for i := range b.Snakes {
		if eliminated[b.Snakes[i].ID] {
			b.Snakes[i].Eliminate()
		}
	}
}

// feedSnakes feeds every live snake whose head reached food and removes the
// eaten food from the board.
func feedSnakes(b *game.Board) {
	remaining := b.Food[:0:0]
	for _, food := range b.Food {
		eaten := false
		for i := range b.Snakes {
			snake := &b.Snakes[i]
			if snake.IsEliminated() || len(snake.Body) == 0 {
				continue
			}
			if snake.Body[0].Intersect(food) {
				snake.Feed()
				eaten = true
			}
		}
		if !eaten {
			remaining = append(remaining, food)
		}
	}
	b.Food = remaining
}

func reduceSnakeHealth(b *game.Board) {
	for i := range b.Snakes {
		b.Snakes[i].ReduceHealth()
	}
}
