package core

// RuntimeConfig contains configuration passed to the game at initialization.
// It is fixed for the lifetime of a game; nothing is negotiated at runtime.
type RuntimeConfig struct {
	BoardW          int     // Board width in cells
	BoardH          int     // Board height in cells
	CellSize        int     // Cell size in pixels
	TickRate        int     // Simulation ticks per second (default 20)
	Seed            int64   // RNG seed for deterministic gameplay
	MaxFoodAttempts int     // Random draws before food placement falls back to a scan
	Palette         Palette // Colors of the drawable state
}

// Palette holds the colors of the drawable state.
type Palette struct {
	Snake      Color
	Food       Color
	Background Color
}

// DefaultPalette matches the classic look: green snake, red food, black board.
func DefaultPalette() Palette {
	return Palette{
		Snake:      ColorBrightGreen,
		Food:       ColorBrightRed,
		Background: ColorBlack,
	}
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		BoardW:          32,
		BoardH:          24,
		CellSize:        20,
		TickRate:        20,
		Seed:            0, // 0 means use current time in platform layer
		MaxFoodAttempts: 1024,
		Palette:         DefaultPalette(),
	}
}

// Phase is the state of the game's tick state machine.
type Phase int

const (
	PhaseRunning    Phase = iota
	PhaseResetting        // transient, only observable within a tick
	PhaseTerminated       // absorbing; the loop stops scheduling ticks
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseResetting:
		return "resetting"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase  Phase  // Current state machine phase
	Tick   uint64 // Ticks processed so far
	Length int    // Current snake body length
	Resets int    // Self-collisions since start
}

// Terminated reports whether the loop should stop.
func (s GameState) Terminated() bool {
	return s.Phase == PhaseTerminated
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the events that occurred.
type StepResult struct {
	State GameState
	Ate   bool // The snake consumed the food this tick
	Reset bool // The snake collided with itself and the game was reset
}
