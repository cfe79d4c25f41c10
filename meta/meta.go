// meta/meta.go
package meta

// GO_ROUTINES defines the number of games played in parallel during self-play.
const GO_ROUTINES = 8

// GAMES defines the number of self-play games in a batch.
const GAMES = 100

// MAX_TURNS caps a single game, skips included.
const MAX_TURNS = 300
