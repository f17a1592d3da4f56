// Package gamelog emits structured game events in RFC5424 syslog format.
//
// Every game lifecycle transition (start, move decision, end) is logged as
// one line with structured data, so a log pipeline can reconstruct what
// the snake did and why a game went the way it did. Persistence of game
// history lives in the archive store, not here.
package gamelog
