// Package engine chooses moves for the snake.
//
// Two engines are provided: a max-n minimax search with alpha pruning
// ("mini_max") and a random-playout Monte Carlo engine ("monte_carlo").
// Engines register themselves in a Registry so the server can select one
// by its configured name.
package engine
