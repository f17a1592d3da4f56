// Package floodfill scores how much of the board a snake can reach.
package floodfill

import "github.com/rustysnake/rustysnake/pkg/game"

// Count returns the number of free cells reachable from the snake's head
// using 4-neighborhood moves. Cells covered by any live snake body are
// walls. The head cell itself is not counted.
func Count(b *game.Board, snakeID string) int {
	snake := b.Snake(snakeID)
	if snake == nil || len(snake.Body) == 0 {
		return 0
	}

	occupied := make(map[game.Coord]bool)
	for i := range b.Snakes {
		if b.Snakes[i].IsEliminated() {
			continue
		}
		for _, segment := range b.Snakes[i].Body {
			occupied[segment] = true
		}
	}

	visited := map[game.Coord]bool{snake.Head: true}
	queue := []game.Coord{snake.Head}
	count := 0

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]

		for _, dir := range game.DirectionValues() {
			next := cell.Step(dir)
			if visited[next] || !next.InBounds(b.Width, b.Height) || occupied[next] {
				continue
			}
			visited[next] = true
			count++
			queue = append(queue, next)
		}
	}
	return count
}
