package engine

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

func TestMiniMaxAvoidsWallsAndNeck(t *testing.T) {
	// Our head sits on the top edge with the body hanging below: up is
	// out of bounds and down is the neck.
	b := &game.Board{
		Width:  5,
		Height: 5,
		Snakes: []game.Snake{
			newSnake("me", 90, game.Coord{X: 2, Y: 4}, game.Coord{X: 2, Y: 3}, game.Coord{X: 2, Y: 2}),
			newSnake("them", 90, game.Coord{X: 0, Y: 0}, game.Coord{X: 1, Y: 0}),
		},
	}

	dir, err := NewMiniMax(4).BestMove(b, "me")
	require.NoError(t, err)

	assert.NotEqual(t, game.DirectionUp, dir)
	assert.NotEqual(t, game.DirectionDown, dir)
}

func TestMiniMaxEatsWhenStarving(t *testing.T) {
	// One point of health left: the food below the head is the only
	// move that survives the turn.
	b := &game.Board{
		Width:  7,
		Height: 7,
		Food:   []game.Coord{{X: 3, Y: 2}},
		Snakes: []game.Snake{
			newSnake("hungry", 1, game.Coord{X: 3, Y: 3}, game.Coord{X: 3, Y: 4}, game.Coord{X: 3, Y: 5}),
			newSnake("other", 100, game.Coord{X: 6, Y: 6}, game.Coord{X: 6, Y: 5}),
		},
	}

	dir, err := NewMiniMax(4).BestMove(b, "hungry")
	require.NoError(t, err)

	assert.Equal(t, game.DirectionDown, dir)
}

func TestMiniMaxEatsWithTrailingDeadSnake(t *testing.T) {
	// Same starving position, but an eliminated snake holds the last
	// slot in the board order. End-of-turn resolution has to fire on the
	// last live mover, so eating is still the only move that survives.
	dead := newSnake("dead", 0, game.Coord{X: 0, Y: 6}, game.Coord{X: 0, Y: 5})
	dead.Eliminate()

	b := &game.Board{
		Width:  7,
		Height: 7,
		Food:   []game.Coord{{X: 3, Y: 2}},
		Snakes: []game.Snake{
			newSnake("hungry", 1, game.Coord{X: 3, Y: 3}, game.Coord{X: 3, Y: 4}, game.Coord{X: 3, Y: 5}),
			newSnake("other", 100, game.Coord{X: 6, Y: 6}, game.Coord{X: 6, Y: 5}),
			dead,
		},
	}

	dir, err := NewMiniMax(4).BestMove(b, "hungry")
	require.NoError(t, err)

	assert.Equal(t, game.DirectionDown, dir)
}

func TestLastMoverSkipsEliminatedTail(t *testing.T) {
	dead := newSnake("c", 0, game.Coord{X: 4, Y: 4}, game.Coord{X: 4, Y: 3})
	dead.Eliminate()

	b := &game.Board{
		Width:  5,
		Height: 5,
		Snakes: []game.Snake{
			newSnake("a", 100, game.Coord{X: 1, Y: 1}, game.Coord{X: 1, Y: 0}),
			newSnake("b", 100, game.Coord{X: 3, Y: 3}, game.Coord{X: 3, Y: 4}),
			dead,
		},
	}
	tr := newTree(b, 1)

	assert.False(t, tr.isLastMover(tr.root, "a"))
	assert.True(t, tr.isLastMover(tr.root, "b"))
	assert.True(t, tr.isLastMover(tr.root, "c"))
}

func TestMiniMaxAvoidsLosingHeadToHead(t *testing.T) {
	// The food between the heads is bait: a longer opponent reaches it
	// on the same turn.
	b := &game.Board{
		Width:  7,
		Height: 7,
		Food:   []game.Coord{{X: 3, Y: 2}},
		Snakes: []game.Snake{
			newSnake("me", 80,
				game.Coord{X: 2, Y: 2}, game.Coord{X: 1, Y: 2}, game.Coord{X: 0, Y: 2}),
			newSnake("bully", 80,
				game.Coord{X: 4, Y: 2}, game.Coord{X: 5, Y: 2}, game.Coord{X: 5, Y: 3},
				game.Coord{X: 5, Y: 4}, game.Coord{X: 5, Y: 5}),
		},
	}

	dir, err := NewMiniMax(4).BestMove(b, "me")
	require.NoError(t, err)

	assert.NotEqual(t, game.DirectionRight, dir)
}

func TestMiniMaxUnknownSnake(t *testing.T) {
	b := &game.Board{
		Width:  5,
		Height: 5,
		Snakes: []game.Snake{
			newSnake("a", 100, game.Coord{X: 2, Y: 2}, game.Coord{X: 2, Y: 1}),
		},
	}

	_, err := NewMiniMax(2).BestMove(b, "ghost")
	assert.Error(t, err)
}

func TestMiniMaxDepthDefault(t *testing.T) {
	assert.Equal(t, DefaultMaxDepth, NewMiniMax(0).MaxDepth)
	assert.Equal(t, 3, NewMiniMax(3).MaxDepth)
}

func TestScoreArrayNormalization(t *testing.T) {
	b := &game.Board{
		Width:  5,
		Height: 5,
		Snakes: []game.Snake{
			newSnake("a", 100, game.Coord{X: 1, Y: 1}, game.Coord{X: 1, Y: 0}),
			newSnake("b", 100, game.Coord{X: 3, Y: 3}, game.Coord{X: 3, Y: 4}),
		},
	}

	t.Run("live boards sum to the score mass", func(t *testing.T) {
		tr := newTree(b, 1)
		scores := tr.scoreArray(tr.root)

		total := 0.0
		for _, s := range scores {
			total += s
		}
		assert.InDelta(t, MaxScore, total, 0.001)
	})

	t.Run("winner takes everything", func(t *testing.T) {
		tr := newTree(b, 1)
		tr.root.Snake("b").Eliminate()
		scores := tr.scoreArray(tr.root)

		assert.Equal(t, MaxScore, scores[0])
		assert.Zero(t, scores[1])
	})

	t.Run("all-dead boards split evenly", func(t *testing.T) {
		tr := newTree(b, 1)
		tr.root.Snake("a").Eliminate()
		tr.root.Snake("b").Eliminate()
		scores := tr.scoreArray(tr.root)

		assert.Equal(t, MaxScore/2, scores[0])
		assert.Equal(t, MaxScore/2, scores[1])
	})
}
