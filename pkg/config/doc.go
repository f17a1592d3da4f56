// Package config manages rustysnake configuration.
//
// Configuration is resolved in three layers: built-in defaults, an
// optional YAML file (rustysnake.yml under RUSTYSNAKE_CONFIG_PATH), and
// environment variables, which win. The engine knobs keep their historic
// environment names: ENGINE, MINIMAX_DEPTH, MONTE_CARLO_ITERATIONS.
//
// Each attribute remembers where its value came from; "snakectl config
// show" prints the resolved values with their sources.
package config
