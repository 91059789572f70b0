package core

import "time"

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // Step calls per second
	Seed     int64 // 0 picks a time-based seed
}

// WithDefaults fills zero fields: an 80x24 screen, DefaultTickRate and a
// time-based seed.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = 80
	}
	if c.ScreenH <= 0 {
		c.ScreenH = 24
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// GameState is the part of a game the platform reads after each Step.
type GameState struct {
	Score     int
	Chain     int // longest cascade this game
	Level     int // 1-based campaign level, 0 in endless
	MovesLeft int // -1 when moves are unlimited
	GameOver  bool
	Won       bool
	Paused    bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
	Busy  bool // a swap is still playing back
}
