package engine

import (
	"fmt"
	"log"

	"github.com/rustysnake/rustysnake/pkg/floodfill"
	"github.com/rustysnake/rustysnake/pkg/game"
	"github.com/rustysnake/rustysnake/pkg/simulation"
)

// MaxScore is the total score mass distributed across snakes at every
// evaluated position. A confirmed winner takes all of it.
const MaxScore = 200000.0

// Heuristic weights for non-terminal positions.
const (
	fillWeight   = 1.0
	lifeWeight   = 1.0
	lengthWeight = 100.0
)

// DefaultMaxDepth is the search depth used when none is configured.
const DefaultMaxDepth = 10

// MiniMax is a max-n search over all snakes on the board with alpha
// pruning. Every snake maximizes its own component of the score vector.
type MiniMax struct {
	MaxDepth int
}

// NewMiniMax creates a minimax engine with the given search depth.
func NewMiniMax(maxDepth int) *MiniMax {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &MiniMax{MaxDepth: maxDepth}
}

// Name returns the configured engine name
func (m *MiniMax) Name() string { return NameMiniMax }

// BestMove searches from the given board and returns the best direction
// for the snake.
func (m *MiniMax) BestMove(board *game.Board, snakeID string) (game.Direction, error) {
	t := newTree(board, m.MaxDepth)
	if _, ok := t.index[snakeID]; !ok {
		return game.DirectionUp, fmt.Errorf("snake %q not on the board", snakeID)
	}

	alphas := make([]float64, len(board.Snakes))
	for i := range alphas {
		alphas[i] = MaxScore
	}
	scores, best := t.search(0, t.root, alphas, snakeID)

	log.Printf("board state:\n%s", t.root)
	log.Printf("found best move %s with score %v after exploring %d moves, pruned %d positions",
		best, scores, t.explored, t.pruned)

	return best, nil
}

// tree is the per-search state: turn order, root board and counters.
type tree struct {
	root     *game.Board
	order    []string
	index    map[string]int
	maxDepth int

	explored int64
	pruned   int64
}

func newTree(board *game.Board, maxDepth int) *tree {
	t := &tree{
		root:     board.Clone(),
		index:    make(map[string]int, len(board.Snakes)),
		maxDepth: maxDepth,
	}
	for i := range board.Snakes {
		id := board.Snakes[i].ID
		t.order = append(t.order, id)
		t.index[id] = i
	}
	return t
}

// nextSnake returns the snake that moves after the given one.
func (t *tree) nextSnake(id string) string {
	return t.order[(t.index[id]+1)%len(t.order)]
}

// isLastMover reports whether the snake closes out the turn: no live
// snake follows it in the board order. Eliminated snakes keep their slot
// but never move, so end-of-turn resolution must fire on the last live
// mover, not the last slot.
func (t *tree) isLastMover(board *game.Board, id string) bool {
	for i := t.index[id] + 1; i < len(t.order); i++ {
		if !board.Snake(t.order[i]).IsEliminated() {
			return false
		}
	}
	return true
}

// search returns the score vector of the best line found for the current
// snake and the direction that starts it. alphas holds, per snake, the
// score above which the parent stops caring; when the current snake's best
// already exceeds its alpha the remaining directions are pruned.
func (t *tree) search(depth int, board *game.Board, alphas []float64, current string) ([]float64, game.Direction) {
	bestDir := game.DirectionUp

	if depth == t.maxDepth || simulation.IsTerminal(board) {
		return t.scoreArray(board), bestDir
	}

	// Dead snakes keep their slot in the turn order but no longer move.
	if board.Snake(current).IsEliminated() {
		return t.search(depth+1, board, alphas, t.nextSnake(current))
	}

	newAlphas := append([]float64(nil), alphas...)
	idx := t.index[current]
	var maxScores []float64

	for _, dir := range game.DirectionValues() {
		if maxScores != nil && maxScores[idx] > alphas[idx] {
			t.pruned++
			break
		}
		t.explored++

		next := board.Clone()
		simulation.Execute(next, current, dir, t.isLastMover(board, current))

		scores, _ := t.search(depth+1, next, append([]float64(nil), newAlphas...), t.nextSnake(current))

		if maxScores == nil || scores[idx] > maxScores[idx] {
			bestDir = dir
			maxScores = scores
			for i := range newAlphas {
				if i == idx {
					newAlphas[i] = maxScores[idx]
				} else {
					newAlphas[i] = MaxScore - maxScores[idx]
				}
			}
		}
	}

	return maxScores, bestDir
}

// scoreArray evaluates the board into one score per snake, normalized so
// the vector sums to MaxScore. An all-dead board splits the mass evenly.
func (t *tree) scoreArray(board *game.Board) []float64 {
	end := simulation.EndStateOf(board)

	scores := make([]float64, len(board.Snakes))
	total := 0.0
	for i := range board.Snakes {
		scores[i] = rawScore(board, &board.Snakes[i], end)
		total += scores[i]
	}

	if total == 0 {
		for i := range scores {
			scores[i] = MaxScore / float64(len(scores))
		}
		return scores
	}

	for i := range scores {
		scores[i] = scores[i] / total * MaxScore
	}
	return scores
}

func rawScore(board *game.Board, snake *game.Snake, end simulation.EndState) float64 {
	switch end.Outcome {
	case simulation.OutcomeWinner:
		if end.Winner == snake.ID {
			return MaxScore
		}
		return 0
	case simulation.OutcomeTie:
		return 0
	}
	if snake.IsEliminated() {
		return 0
	}

	score := float64(snake.Health) * lifeWeight
	score += float64(len(snake.Body)) * lengthWeight
	score += float64(floodfill.Count(board, snake.ID)) * fillWeight
	return score
}
