// Package main implements snakectl, the CLI for the rustysnake Battlesnake server.
//
// rustysnake is a competitive Battlesnake that speaks the Battlesnake API v1
// and picks its moves with a max-n minimax search or Monte Carlo playouts.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: Battlesnake API endpoint handlers
//   - pkg/game: board, snake and coordinate types
//   - pkg/simulation: turn resolution and end state detection
//   - pkg/engine: move engines (mini_max, monte_carlo)
//   - pkg/floodfill: reachable-space estimation
//   - pkg/config: configuration management
//   - pkg/gamelog: structured game event logging
//   - pkg/pipeline: Cloud Build pipeline linting
//
// # Quick Start
//
//	# Run database migrations (optional, only needed for the game archive)
//	export DATABASE_URL=postgres://...
//	snakectl db migrate
//
//	# Start the server
//	snakectl server
//
//	# Wait for it to come up
//	snakectl wait
//
// # Environment Variables
//
//   - ENGINE: move engine (mini_max or monte_carlo)
//   - MINIMAX_DEPTH: minimax search depth in plies
//   - MONTE_CARLO_ITERATIONS: playout budget per move
//   - DATABASE_URL: PostgreSQL connection string (enables the game archive)
//   - RUSTYSNAKE_CONFIG_PATH: config directory (default: /etc/rustysnake/config)
//   - PORT: server port (default: 8000)
package main
