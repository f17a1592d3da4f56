// Package game defines the Battlesnake wire types and board primitives.
//
// The types mirror the payloads of the Battlesnake webhook API v1: every
// turn the arena POSTs a GameState to /move and the snake answers with a
// direction. Board carries the full arena state and supports deep cloning
// so search engines can explore moves on value copies.
//
// Coordinates follow the Battlesnake convention: (0,0) is the bottom-left
// corner and Y grows upward.
package game
