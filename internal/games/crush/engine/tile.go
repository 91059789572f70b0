package engine

import (
	"fmt"
	"time"
)

// TileType identifies a tile color. Zero means "no type".
type TileType uint8

const (
	TypeNone TileType = iota
	TypeA
	TypeB
	TypeC
	TypeD
	TypeE
	TypeF
	TypeWildcard // Color-bomb type; never drawn from the pool
)

// BaseTypeCount is the size of the ordinary color palette.
const BaseTypeCount = 6

// Letter returns the single-letter name of the type ('*' for the wildcard).
func (t TileType) Letter() byte {
	switch {
	case t == TypeWildcard:
		return '*'
	case t >= TypeA && t <= TypeF:
		return 'A' + byte(t-TypeA)
	default:
		return '.'
	}
}

// String returns the type name.
func (t TileType) String() string {
	return string(t.Letter())
}

// Ordinary reports whether t is one of the base palette colors.
func (t TileType) Ordinary() bool {
	return t >= TypeA && t <= TypeF
}

// Status is the special kind of a tile. It is set once when the tile spawns.
type Status uint8

const (
	StatusOrdinary Status = iota
	StatusRowClear
	StatusColumnClear
	StatusAreaClear
	StatusColorBomb
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOrdinary:
		return "ordinary"
	case StatusRowClear:
		return "row-clear"
	case StatusColumnClear:
		return "column-clear"
	case StatusAreaClear:
		return "area-clear"
	case StatusColorBomb:
		return "color-bomb"
	default:
		return "unknown"
	}
}

// Special reports whether the status grants a detonation.
func (s Status) Special() bool {
	return s != StatusOrdinary
}

// Rank orders statuses by how large a combo they represent.
// Row and column clears share a rank.
func (s Status) Rank() int {
	switch s {
	case StatusRowClear, StatusColumnClear:
		return 1
	case StatusAreaClear:
		return 2
	case StatusColorBomb:
		return 3
	default:
		return 0
	}
}

// CommandKind identifies a scheduled tile animation.
type CommandKind uint8

const (
	CmdMove CommandKind = iota
	CmdMoveAndRevert
	CmdShake
	CmdDespawn
	CmdVisible
)

// String returns the command name.
func (k CommandKind) String() string {
	switch k {
	case CmdMove:
		return "move"
	case CmdMoveAndRevert:
		return "move-revert"
	case CmdShake:
		return "shake"
	case CmdDespawn:
		return "despawn"
	case CmdVisible:
		return "visible"
	default:
		return "unknown"
	}
}

// Command is one entry of a tile's animation schedule.
type Command struct {
	Kind     CommandKind
	At       time.Duration // Virtual time the command starts
	Duration time.Duration // Zero for instantaneous commands
	Target   Coord         // Move destination
	Visible  bool          // CmdVisible only
}

// Tile is a single piece on the board. The engine mutates it in place and
// records animation commands for an external renderer to replay.
type Tile struct {
	ID       uint64
	Pos      Coord
	Start    Coord // Where the renderer draws the tile when the current timeline begins
	Type     TileType
	Status   Status
	Commands []Command
}

// String returns a compact description used in logs and test failures.
func (t *Tile) String() string {
	return fmt.Sprintf("#%d %s%s@%s", t.ID, t.Type, statusSuffix(t.Status), t.Pos)
}

// MoveTo schedules a move to target and updates the logical position.
func (t *Tile) MoveTo(target Coord, at, d time.Duration) {
	t.Commands = append(t.Commands, Command{Kind: CmdMove, At: at, Duration: d, Target: target})
	t.Pos = target
}

// MoveToAndRevert schedules a move to target and straight back.
// The logical position is unchanged.
func (t *Tile) MoveToAndRevert(target Coord, at, d time.Duration) {
	t.Commands = append(t.Commands, Command{Kind: CmdMoveAndRevert, At: at, Duration: d, Target: target})
}

// ShakeAt schedules a shake animation.
func (t *Tile) ShakeAt(at, d time.Duration) {
	t.Commands = append(t.Commands, Command{Kind: CmdShake, At: at, Duration: d, Target: t.Pos})
}

// DespawnAt schedules the tile's removal animation.
func (t *Tile) DespawnAt(at time.Duration) {
	t.Commands = append(t.Commands, Command{Kind: CmdDespawn, At: at, Target: t.Pos})
}

// SetVisibleAt schedules a visibility change.
func (t *Tile) SetVisibleAt(at time.Duration, visible bool) {
	t.Commands = append(t.Commands, Command{Kind: CmdVisible, At: at, Target: t.Pos, Visible: visible})
}

// End returns the virtual time at which the last scheduled command finishes.
func (t *Tile) End() time.Duration {
	var end time.Duration
	for _, c := range t.Commands {
		d := c.Duration
		if c.Kind == CmdMoveAndRevert {
			d *= 2
		}
		if c.At+d > end {
			end = c.At + d
		}
	}
	return end
}

func statusSuffix(s Status) string {
	switch s {
	case StatusRowClear:
		return "-"
	case StatusColumnClear:
		return "|"
	case StatusAreaClear:
		return "+"
	default:
		return ""
	}
}
