package game

import "strings"

// Board is the full arena state for one turn.
type Board struct {
	Height  int     `json:"height"`
	Width   int     `json:"width"`
	Food    []Coord `json:"food"`
	Hazards []Coord `json:"hazards"`
	Snakes  []Snake `json:"snakes"`
}

// Snake returns the snake with the given ID, or nil if it is not on the
// board.
func (b *Board) Snake(id string) *Snake {
	for i := range b.Snakes {
		if b.Snakes[i].ID == id {
			return &b.Snakes[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the board. Search engines mutate clones,
// never the original.
func (b *Board) Clone() *Board {
	clone := &Board{
		Height:  b.Height,
		Width:   b.Width,
		Food:    append([]Coord(nil), b.Food...),
		Hazards: append([]Coord(nil), b.Hazards...),
		Snakes:  make([]Snake, len(b.Snakes)),
	}
	for i := range b.Snakes {
		snake := b.Snakes[i]
		snake.Body = append([]Coord(nil), b.Snakes[i].Body...)
		clone.Snakes[i] = snake
	}
	return clone
}

// Occupied reports whether any live snake's body covers the cell.
func (b *Board) Occupied(c Coord) bool {
	for i := range b.Snakes {
		if b.Snakes[i].IsEliminated() {
			continue
		}
		for _, segment := range b.Snakes[i].Body {
			if segment.Intersect(c) {
				return true
			}
		}
	}
	return false
}

// String renders the board as an ASCII grid: @ head, # body, O food,
// . empty. Rows print top-down, so the highest Y comes first.
func (b *Board) String() string {
	grid := make([][]string, b.Height)
	for y := range grid {
		row := make([]string, b.Width)
		for x := range row {
			row[x] = "."
		}
		grid[y] = row
	}

	for i := range b.Snakes {
		snake := &b.Snakes[i]
		for _, segment := range snake.Body {
			icon := "#"
			if segment.Intersect(snake.Head) {
				icon = "@"
			}
			if segment.InBounds(b.Width, b.Height) {
				grid[segment.Y][segment.X] = icon
			}
		}
	}

	for _, food := range b.Food {
		if food.InBounds(b.Width, b.Height) {
			grid[food.Y][food.X] = "O"
		}
	}

	var sb strings.Builder
	for y := b.Height - 1; y >= 0; y-- {
		sb.WriteString(strings.Join(grid[y], ""))
		sb.WriteString("\n")
	}
	return sb.String()
}
