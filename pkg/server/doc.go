// Package server provides the HTTP server for the Battlesnake webhook API.
//
// It uses gorilla/mux for routing and wraps the router in an access
// logging handler.
//
// # Server Setup
//
//	srv := server.NewServer(eng, cfg, games, health, db, host, port)
//	endpoints.RegisterAll(srv)
//	log.Fatal(srv.Start())
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//   - GET  /       - snake metadata and appearance
//   - POST /start  - a game we are in has started
//   - POST /move   - answer with the next move
//   - POST /end    - the game is over
//   - GET  /status - health check
package server
