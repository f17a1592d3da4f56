// Package store provides storage abstractions for the game archive.
//
// This package defines interfaces for archive operations, allowing the
// server endpoints to be decoupled from the specific database
// implementation. This enables easier testing with mocks.
//
// # Available Stores
//
//   - GamesStore: game and move archival
//   - HealthStore: backend connectivity checks
package store
