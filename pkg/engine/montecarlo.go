package engine

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/rustysnake/rustysnake/pkg/game"
	"github.com/rustysnake/rustysnake/pkg/simulation"
)

// DefaultIterations is the playout budget used when none is configured.
const DefaultIterations = 6000

// defaultHorizon caps how many turns a single playout may run.
const defaultHorizon = 50

// MonteCarlo ranks directions by the mean result of random playouts: the
// candidate direction is played first, then every snake moves uniformly at
// random until the game ends or the horizon is hit.
type MonteCarlo struct {
	// Iterations is the total playout budget, split across directions.
	Iterations int

	// Horizon caps playout length in turns.
	Horizon int

	// Seed fixes the random source; 0 seeds from the clock.
	Seed int64
}

// NewMonteCarlo creates a Monte Carlo engine with the given playout budget.
func NewMonteCarlo(iterations int) *MonteCarlo {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &MonteCarlo{Iterations: iterations, Horizon: defaultHorizon}
}

// Name returns the configured engine name
func (m *MonteCarlo) Name() string { return NameMonteCarlo }

// BestMove plays out each candidate direction and returns the one with the
// best mean result.
func (m *MonteCarlo) BestMove(board *game.Board, snakeID string) (game.Direction, error) {
	if board.Snake(snakeID) == nil {
		return game.DirectionUp, fmt.Errorf("snake %q not on the board", snakeID)
	}

	seed := m.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	horizon := m.Horizon
	if horizon <= 0 {
		horizon = defaultHorizon
	}

	dirs := game.DirectionValues()
	perDir := m.Iterations / len(dirs)
	if perDir < 1 {
		perDir = 1
	}

	best := game.DirectionUp
	bestMean := -1.0
	for _, dir := range dirs {
		total := 0.0
		for i := 0; i < perDir; i++ {
			total += m.playout(board, snakeID, dir, horizon, rng)
		}
		mean := total / float64(perDir)
		if mean > bestMean {
			bestMean = mean
			best = dir
		}
	}

	log.Printf("monte carlo picked %s with mean %.3f over %d playouts per direction", best, bestMean, perDir)
	return best, nil
}

// playout runs one random game from the board. Result: 1 win, 0 death,
// 0.5 tie, and at the horizon an even share of the credit among the
// snakes still alive.
func (m *MonteCarlo) playout(b *game.Board, snakeID string, first game.Direction, horizon int, rng *rand.Rand) float64 {
	board := b.Clone()

	for turn := 0; turn < horizon; turn++ {
		var live []string
		for i := range board.Snakes {
			if !board.Snakes[i].IsEliminated() {
				live = append(live, board.Snakes[i].ID)
			}
		}
		if len(live) == 0 {
			return 0.5
		}

		var end simulation.EndState
		for i, id := range live {
			dir := game.Direction(rng.Intn(4))
			if turn == 0 && id == snakeID {
				dir = first
			}
			end = simulation.Execute(board, id, dir, i == len(live)-1)
		}

		if end.Terminal() {
			switch end.Outcome {
			case simulation.OutcomeWinner:
				if end.Winner == snakeID {
					return 1.0
				}
				return 0
			case simulation.OutcomeTie:
				return 0.5
			}
		}
		if snake := board.Snake(snakeID); snake == nil || snake.IsEliminated() {
			return 0
		}
	}

	live := 0
	for i := range board.Snakes {
		if !board.Snakes[i].IsEliminated() {
			live++
		}
	}
	return 1.0 / float64(live)
}
