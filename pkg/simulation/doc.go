// Package simulation advances a Battlesnake board by one move at a time.
//
// The arena resolves a turn in two phases: every snake moves, then the
// board-wide bookkeeping runs once (health decay, feeding, eliminations,
// collision resolution). Execute mirrors that: callers apply one snake's
// move, and pass lastSnake=true on the final snake of the turn to trigger
// the bookkeeping phase.
package simulation
