package benchmark

import (
	"fmt"
	"testing"

	"github.com/rustysnake/rustysnake/pkg/engine"
	"github.com/rustysnake/rustysnake/pkg/game"
)

// midgameBoard is an 11x11 duel a few dozen turns in.
func midgameBoard() *game.Board {
	me := game.Snake{
		ID:     "me",
		Health: 74,
		Body: []game.Coord{
			{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 4, Y: 4}, {X: 3, Y: 4}, {X: 3, Y: 3},
		},
		Head:   game.Coord{X: 5, Y: 5},
		Length: 5,
	}
	them := game.Snake{
		ID:     "them",
		Health: 61,
		Body: []game.Coord{
			{X: 8, Y: 8}, {X: 8, Y: 7}, {X: 7, Y: 7}, {X: 7, Y: 6},
		},
		Head:   game.Coord{X: 8, Y: 8},
		Length: 4,
	}
	return &game.Board{
		Width:  11,
		Height: 11,
		Food:   []game.Coord{{X: 0, Y: 0}, {X: 6, Y: 9}, {X: 10, Y: 2}},
		Snakes: []game.Snake{me, them},
	}
}

func BenchmarkMiniMaxBestMove(b *testing.B) {
	for _, depth := range []int{2, 4, 6} {
		b.Run(fmt.Sprintf("depth=%d", depth), func(b *testing.B) {
			eng := engine.NewMiniMax(depth)
			board := midgameBoard()

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := eng.BestMove(board, "me"); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMonteCarloBestMove(b *testing.B) {
	for _, iterations := range []int{100, 400} {
		b.Run(fmt.Sprintf("iterations=%d", iterations), func(b *testing.B) {
			eng := engine.NewMonteCarlo(iterations)
			board := midgameBoard()

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := eng.BestMove(board, "me"); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}