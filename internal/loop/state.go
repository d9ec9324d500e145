package loop

import (
	"math"

	"github.com/tomz197/starwave/internal/highscore"
	"github.com/tomz197/starwave/internal/loop/config"
	"github.com/tomz197/starwave/internal/object"
)

// Status is the orchestrator's state machine position.
type Status int

const (
	StatusSpawning  Status = iota // Pending wave descending into formation
	StatusActive                  // Enemies in play
	StatusAdvancing               // Both lists empty; next phase starts this tick
	StatusDefeated                // Player was hit; terminal
)

func (s Status) String() string {
	switch s {
	case StatusSpawning:
		return "spawning"
	case StatusActive:
		return "active"
	case StatusAdvancing:
		return "advancing"
	case StatusDefeated:
		return "defeated"
	default:
		return "unknown"
	}
}

// State holds all mutable simulation state. It is owned by a Game and only
// mutated inside Tick.
type State struct {
	Player      *object.Player
	Enemies     []object.Enemy // Ready enemies in play
	Pending     []object.Enemy // Current wave still descending
	Lasers      []*object.Projectile
	EnemyLasers []*object.Projectile
	Score       float64
	Multiplier  float64
	Phase       int
	WaveStarted bool // Set while a freshly spawned wave is entering
	Status      Status
	Best        highscore.Record // Record read when the game started
	Ticks       uint64

	fireCooldown int // Ticks until the player may fire again
	attackTimer  int // Ticks since the last enemy attack round
}

// NewState creates the state of a fresh game at phase 1 with no wave yet.
func NewState() *State {
	return &State{
		Player:     object.NewPlayer(),
		Multiplier: config.InitialMultiplier,
		Phase:      1,
		Status:     StatusSpawning,
	}
}

// DisplayScore returns the score floored to an integer.
func (s *State) DisplayScore() int {
	return int(math.Floor(s.Score))
}

// refreshStatus derives the status from the wave lists. Defeat is sticky.
func (s *State) refreshStatus() {
	switch {
	case s.Status == StatusDefeated:
	case len(s.Pending) > 0:
		s.Status = StatusSpawning
	case len(s.Enemies) > 0:
		s.Status = StatusActive
	default:
		s.Status = StatusAdvancing
	}
}
