package client

import (
	"time"

	"github.com/tomz197/starwave/internal/input"
	"github.com/tomz197/starwave/internal/loop"
)

// Mode is which screen the client shows on top of the playfield.
type Mode int

const (
	ModePlaying   Mode = iota // Simulation running
	ModeNameEntry             // New high score, typing a name
	ModeGameOver              // Final result until restart
)

// ClientState holds per-connection presentation state. The simulation
// itself lives in the loop.Game.
type ClientState struct {
	Mode     Mode
	prevMode Mode

	Frame    loop.Frame // Last frame handed to Render
	hasFrame bool

	Held input.Input // Keys held this frame

	Name      []rune
	NameScore int
	nameDone  func(string)

	Over   loop.GameOver
	overAt time.Time
}

// NewClientState creates the state for a fresh connection.
func NewClientState() *ClientState {
	return &ClientState{Mode: ModePlaying}
}
