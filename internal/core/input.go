package core

// Action is a player intent, already mapped from keys by the platform.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // cursor up one row
	ActionDown           // cursor down one row
	ActionLeft           // cursor left one column
	ActionRight          // cursor right one column
	ActionSelect         // tap the tile under the cursor
	ActionHint           // highlight an available swap
	ActionBack           // leave the game
	ActionRestart        // new game after game over
	ActionQuit
	ActionPause
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionSelect:  "Select",
	ActionHint:    "Hint",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// Click is a left mouse press in screen cells.
type Click struct {
	X, Y int
}

// InputFrame collects what happened between two ticks. The platform reuses
// one frame and clears it after every Step, so games must not keep it.
type InputFrame struct {
	Actions map[Action]bool
	Clicks  []Click // arrival order
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks a as triggered this tick.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a was triggered this tick.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// AddClick records a mouse press.
func (f *InputFrame) AddClick(x, y int) {
	f.Clicks = append(f.Clicks, Click{X: x, Y: y})
}

// Clear empties the frame for the next tick, keeping its storage.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Clicks = f.Clicks[:0]
}
