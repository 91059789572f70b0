package crush

import (
	"github.com/vovakirdan/tui-crush/internal/config"
	"github.com/vovakirdan/tui-crush/internal/games/crush/engine"
)

// scoreResult converts a resolved swap into points. Every clear is worth the
// base tile value plus a bonus per cascade step; every detonation adds a flat
// bonus.
func scoreResult(res engine.Result, s config.CrushScoring) int {
	points := 0
	for _, ef := range res.Effects {
		switch ef.Action {
		case engine.ActionClear:
			points += s.PerTile + s.ChainBonus*ef.Step
		case engine.ActionRowDetonate, engine.ActionColumnDetonate, engine.ActionAreaDetonate:
			points += s.SpecialBonus
		}
	}
	return points
}

// chainLength is the number of cascade rounds that cleared tiles.
func chainLength(res engine.Result) int {
	if res.Cleared == 0 {
		return 0
	}
	return res.MaxStep + 1
}
