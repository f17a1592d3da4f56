package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustysnake/rustysnake/pkg/game"
)

func newSnake(id string, health int, body ...game.Coord) game.Snake {
	return game.Snake{
		ID:     id,
		Name:   id,
		Health: health,
		Body:   body,
		Head:   body[0],
		Length: len(body),
	}
}

func newBoard(width, height int, food []game.Coord, snakes ...game.Snake) *game.Board {
	return &game.Board{
		Width:  width,
		Height: height,
		Food:   food,
		Snakes: snakes,
	}
}

func TestEndStateOf(t *testing.T) {
	t.Run("two live snakes keep playing", func(t *testing.T) {
		b := newBoard(5, 5, nil,
			newSnake("a", 100, game.Coord{X: 0, Y: 0}),
			newSnake("b", 100, game.Coord{X: 4, Y: 4}),
		)

		end := EndStateOf(b)
		assert.Equal(t, OutcomePlaying, end.Outcome)
		assert.False(t, end.Terminal())
	})

	t.Run("one survivor wins", func(t *testing.T) {
		b := newBoard(5, 5, nil,
			newSnake("a", 100, game.Coord{X: 0, Y: 0}),
			newSnake("b", 100, game.Coord{X: 4, Y: 4}),
		)
		b.Snake("b").Eliminate()

		end := EndStateOf(b)
		assert.Equal(t, OutcomeWinner, end.Outcome)
		assert.Equal(t, "a", end.Winner)
		assert.True(t, end.Terminal())
	})

	t.Run("no survivors is a tie", func(t *testing.T) {
		b := newBoard(5, 5, nil,
			newSnake("a", 100, game.Coord{X: 0, Y: 0}),
			newSnake("b", 100, game.Coord{X: 4, Y: 4}),
		)
		b.Snake("a").Eliminate()
		b.Snake("b").Eliminate()

		end := EndStateOf(b)
		assert.Equal(t, OutcomeTie, end.Outcome)
		assert.Empty(t, end.Winner)
	})
}

func TestExecuteMovesBody(t *testing.T) {
	b := newBoard(5, 5, nil,
		newSnake("a", 100, game.Coord{X: 1, Y: 1}, game.Coord{X: 1, Y: 0}, game.Coord{X: 0, Y: 0}),
		newSnake("b", 100, game.Coord{X: 4, Y: 4}, game.Coord{X: 4, Y: 3}),
	)

	end := Execute(b, "a", game.DirectionUp, false)

	assert.Equal(t, OutcomePlaying, end.Outcome)
	snake := b.Snake("a")
	assert.Equal(t, game.Coord{X: 1, Y: 2}, snake.Head)
	assert.Equal(t, []game.Coord{{X: 1, Y: 2}, {X: 1, Y: 1}, {X: 1, Y: 0}}, snake.Body)
}

func TestExecuteTerminalBoardUnchanged(t *testing.T) {
	b := newBoard(5, 5, nil,
		newSnake("a", 100, game.Coord{X: 1, Y: 1}, game.Coord{X: 1, Y: 0}),
		newSnake("b", 100, game.Coord{X: 4, Y: 4}),
	)
	b.Snake("b").Eliminate()

	end := Execute(b, "a", game.DirectionUp, true)

	assert.Equal(t, OutcomeWinner, end.Outcome)
	assert.Equal(t, "a", end.Winner)
	// The winning snake did not move.
	assert.Equal(t, game.Coord{X: 1, Y: 1}, b.Snake("a").Head)
}

func TestExecuteDiesMovingIntoNeck(t *testing.T) {
	b := newBoard(5, 5, nil,
		newSnake("a", 100, game.Coord{X: 2, Y: 2}, game.Coord{X: 2, Y: 3}, game.Coord{X: 2, Y: 4}),
		newSnake("b", 100, game.Coord{X: 0, Y: 0}, game.Coord{X: 1, Y: 0}),
	)

	Execute(b, "a", game.DirectionUp, false)

	snake := b.Snake("a")
	assert.True(t, snake.IsEliminated())
	assert.Equal(t, game.EliminatedBySelf, snake.EliminatedCause)
}

func TestExecuteDiesOutOfBounds(t *testing.T) {
	b := newBoard(5, 5, nil,
		newSnake("a", 100, game.Coord{X: 0, Y: 0}, game.Coord{X: 1, Y: 0}),
		newSnake("b", 100, game.Coord{X: 4, Y: 4}, game.Coord{X: 4, Y: 3}),
	)

	Execute(b, "a", game.DirectionLeft, false)

	snake := b.Snake("a")
	assert.True(t, snake.IsEliminated())
	assert.Equal(t, game.EliminatedGeneric, snake.EliminatedCause)
}

func TestExecuteStarvation(t *testing.T) {
	b := newBoard(5, 5, nil,
		newSnake("a", 1, game.Coord{X: 2, Y: 2}, game.Coord{X: 2, Y: 1}),
		newSnake("b", 100, game.Coord{X: 4, Y: 4}, game.Coord{X: 4, Y: 3}),
	)

	Execute(b, "a", game.DirectionUp, false)
	end := Execute(b, "b", game.DirectionLeft, true)

	assert.True(t, b.Snake("a").IsEliminated())
	assert.Equal(t, OutcomeWinner, end.Outcome)
	assert.Equal(t, "b", end.Winner)
}

func TestExecuteFeeding(t *testing.T) {
	food := game.Coord{X: 2, Y: 3}
	b := newBoard(5, 5, []game.Coord{food},
		newSnake("a", 50, game.Coord{X: 2, Y: 2}, game.Coord{X: 2, Y: 1}),
		newSnake("b", 100, game.Coord{X: 4, Y: 4}, game.Coord{X: 4, Y: 3}),
	)

	Execute(b, "a", game.DirectionUp, false)
	Execute(b, "b", game.DirectionLeft, true)

	snake := b.Snake("a")
	require.False(t, snake.IsEliminated())
	assert.Equal(t, game.MaxHealth, snake.Health)
	// Eating stacks a segment on the tail.
	assert.Equal(t, []game.Coord{{X: 2, Y: 3}, {X: 2, Y: 2}, {X: 2, Y: 2}}, snake.Body)
	assert.Empty(t, b.Food)
}

func TestExecuteDeadSnakesDoNotEat(t *testing.T) {
	food := game.Coord{X: 0, Y: 1}
	b := newBoard(5, 5, []game.Coord{food},
		newSnake("a", 1, game.Coord{X: 0, Y: 0}, game.Coord{X: 1, Y: 0}),
		newSnake("b", 100, game.Coord{X: 4, Y: 4}, game.Coord{X: 4, Y: 3}),
	)
	// Starve a on the same turn it reaches the food: health hits zero
	// before feeding, so the food must stay on the board.
	b.Snake("a").Health = 0

	Execute(b, "a", game.DirectionUp, false)
	Execute(b, "b", game.DirectionLeft, true)

	assert.True(t, b.Snake("a").IsEliminated())
	assert.Equal(t, []game.Coord{food}, b.Food)
}

func TestExecuteHeadToHead(t *testing.T) {
	t.Run("shorter snake dies", func(t *testing.T) {
		b := newBoard(7, 7, nil,
			newSnake("short", 100, game.Coord{X: 2, Y: 2}, game.Coord{X: 2, Y: 1}),
			newSnake("long", 100, game.Coord{X: 4, Y: 2}, game.Coord{X: 4, Y: 1}, game.Coord{X: 4, Y: 0}),
		)

		Execute(b, "short", game.DirectionRight, false)
		end := Execute(b, "long", game.DirectionLeft, true)

		assert.True(t, b.Snake("short").IsEliminated())
		assert.False(t, b.Snake("long").IsEliminated())
		assert.Equal(t, OutcomeWinner, end.Outcome)
		assert.Equal(t, "long", end.Winner)
	})

	t.Run("head onto body dies regardless of length", func(t *testing.T) {
		b := newBoard(7, 7, nil,
			newSnake("crasher", 100,
				game.Coord{X: 2, Y: 3}, game.Coord{X: 1, Y: 3}, game.Coord{X: 0, Y: 3}, game.Coord{X: 0, Y: 2}),
			newSnake("wall", 100,
				game.Coord{X: 3, Y: 4}, game.Coord{X: 3, Y: 3}, game.Coord{X: 3, Y: 2}),
		)

		Execute(b, "crasher", game.DirectionRight, false)
		end := Execute(b, "wall", game.DirectionUp, true)

		assert.True(t, b.Snake("crasher").IsEliminated())
		assert.Equal(t, "wall", end.Winner)
	})
}

func TestValidActions(t *testing.T) {
	b := newBoard(5, 5, nil, newSnake("a", 100, game.Coord{X: 2, Y: 2}))

	assert.Equal(t, [4]bool{true, true, true, true}, ValidActions(b, "a"))
	assert.Panics(t, func() { ValidActions(b, "ghost") })
}

func TestExecutePanicsOnBadMove(t *testing.T) {
	b := newBoard(5, 5, nil,
		newSnake("a", 100, game.Coord{X: 0, Y: 0}, game.Coord{X: 1, Y: 0}),
		newSnake("b", 100, game.Coord{X: 4, Y: 4}, game.Coord{X: 4, Y: 3}),
		newSnake("c", 100, game.Coord{X: 0, Y: 4}, game.Coord{X: 1, Y: 4}),
	)

	assert.Panics(t, func() { Execute(b, "ghost", game.DirectionUp, false) })

	b.Snake("a").Eliminate()
	assert.Panics(t, func() { Execute(b, "a", game.DirectionUp, false) })
}
