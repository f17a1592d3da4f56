package game

// Coord is a single cell on the board.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Intersect reports whether two coordinates refer to the same cell.
func (c Coord) Intersect(other Coord) bool {
	return c.X == other.X && c.Y == other.Y
}

// InBounds reports whether the coordinate lies inside a width x height board.
func (c Coord) InBounds(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// Step returns the neighboring cell in the given direction.
func (c Coord) Step(dir Direction) Coord {
	dx, dy := dir.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}
