package floodfill

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustysnake/rustysnake/pkg/game"
)

func TestCountOpenBoard(t *testing.T) {
	b := &game.Board{
		Width:  5,
		Height: 5,
		Snakes: []game.Snake{{
			ID:   "a",
			Body: []game.Coord{{X: 2, Y: 2}},
			Head: game.Coord{X: 2, Y: 2},
		}},
	}

	// Every cell except the head itself is reachable.
	assert.Equal(t, 24, Count(b, "a"))
}

func TestCountBodiesAreWalls(t *testing.T) {
	// A vertical wall splits the 5x5 board; the snake sits left of it.
	wall := make([]game.Coord, 0, 5)
	for y := 0; y < 5; y++ {
		wall = append(wall, game.Coord{X: 2, Y: y})
	}

	b := &game.Board{
		Width:  5,
		Height: 5,
		Snakes: []game.Snake{
			{
				ID:   "a",
				Body: []game.Coord{{X: 0, Y: 0}},
				Head: game.Coord{X: 0, Y: 0},
			},
			{
				ID:   "wall",
				Body: wall,
				Head: wall[0],
			},
		},
	}

	// The left columns hold 2x5 cells minus our own head.
	assert.Equal(t, 9, Count(b, "a"))
}

func TestCountIgnoresEliminatedBodies(t *testing.T) {
	wall := make([]game.Coord, 0, 5)
	for y := 0; y < 5; y++ {
		wall = append(wall, game.Coord{X: 2, Y: y})
	}

	b := &game.Board{
		Width:  5,
		Height: 5,
		Snakes: []game.Snake{
			{
				ID:   "a",
				Body: []game.Coord{{X: 0, Y: 0}},
				Head: game.Coord{X: 0, Y: 0},
			},
			{
				ID:   "wall",
				Body: wall,
				Head: wall[0],
			},
		},
	}
	b.Snake("wall").Eliminate()

	assert.Equal(t, 24, Count(b, "a"))
}

func TestCountBoxedIn(t *testing.T) {
	b := &game.Board{
		Width:  3,
		Height: 3,
		Snakes: []game.Snake{
			{
				ID:   "a",
				Body: []game.Coord{{X: 0, Y: 0}},
				Head: game.Coord{X: 0, Y: 0},
			},
			{
				ID:   "blocker",
				Body: []game.Coord{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
				Head: game.Coord{X: 1, Y: 0},
			},
		},
	}

	assert.Equal(t, 0, Count(b, "a"))
}

func TestCountMissingSnake(t *testing.T) {
	b := &game.Board{Width: 3, Height: 3}

	assert.Equal(t, 0, Count(b, "ghost"))
}
