// Package loop provides the game orchestrator: the per-tick simulation,
// wave and phase progression, and the game-over flow.
package loop

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/starwave/internal/event"
	"github.com/tomz197/starwave/internal/highscore"
	"github.com/tomz197/starwave/internal/loop/config"
	"github.com/tomz197/starwave/internal/object"
)

// Input is the held state of the game controls for one tick.
type Input struct {
	Left  bool
	Right bool
	Fire  bool
}

// InputSource is polled once per tick.
type InputSource interface {
	Poll() Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() Input

// Poll calls f.
func (f InputFunc) Poll() Input { return f() }

// Frame is everything a renderer needs to draw one tick. Slices and
// pointers alias the live state and must not be modified or retained.
type Frame struct {
	Player      *object.Player
	Enemies     []object.Enemy
	Pending     []object.Enemy
	Lasers      []*object.Projectile
	EnemyLasers []*object.Projectile
	Score       float64
	Multiplier  float64
	Phase       int
	WaveStarted bool
	Status      Status
	Best        highscore.Record
}

// Renderer draws frames. It has no way to feed back into the simulation.
type Renderer interface {
	Render(f Frame)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(f Frame)

// Render calls f(frame).
func (f RendererFunc) Render(frame Frame) { f(frame) }

// NamePrompter asks the player for a name after a new high score.
// done must be called exactly once, on the frame goroutine.
type NamePrompter interface {
	PromptName(score int, done func(name string))
}

// GameOver is shown after defeat.
type GameOver struct {
	Score     int              // Final score, floored
	Best      highscore.Record // Record after this game
	NewRecord bool             // This game set the record
}

// GameOverScreen shows the final result until the game restarts.
type GameOverScreen interface {
	ShowGameOver(g GameOver)
}

// Options configures a Game. Scheduler is required; everything else has a default.
type Options struct {
	Scheduler Scheduler
	Clock     Clock // Defaults to the scheduler when it is a Clock, else system time
	Input     InputSource
	Renderer  Renderer
	Rand      object.Rand
	Store     highscore.Store
	Prompt    NamePrompter
	GameOver  GameOverScreen
	Events    *event.Dispatcher
	Logger    *log.Logger
}

// Game owns the simulation state and advances it one tick per scheduled
// callback until the player is defeated.
type Game struct {
	sched    Scheduler
	clock    Clock
	input    InputSource
	renderer Renderer
	rng      object.Rand
	store    highscore.Store
	prompt   NamePrompter
	over     GameOverScreen
	events   *event.Dispatcher
	logger   *log.Logger

	spawner *object.WaveSpawner
	state   *State
	round   int // Incremented on every start; stale callbacks compare against it
}

// New creates a game. Call Start to schedule the first tick.
func New(opts Options) *Game {
	if opts.Scheduler == nil {
		panic("loop: nil scheduler")
	}
	g := &Game{
		sched:    opts.Scheduler,
		clock:    opts.Clock,
		input:    opts.Input,
		renderer: opts.Renderer,
		rng:      opts.Rand,
		store:    opts.Store,
		prompt:   opts.Prompt,
		over:     opts.GameOver,
		events:   opts.Events,
		logger:   opts.Logger,
	}
	if g.clock == nil {
		if c, ok := opts.Scheduler.(Clock); ok {
			g.clock = c
		} else {
			g.clock = systemClock{}
		}
	}
	if g.input == nil {
		g.input = InputFunc(func() Input { return Input{} })
	}
	if g.renderer == nil {
		g.renderer = RendererFunc(func(Frame) {})
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.store == nil {
		g.store = highscore.NewMemoryStore()
	}
	if g.prompt == nil {
		g.prompt = anonymousPrompt{}
	}
	if g.events == nil {
		g.events = event.NewDispatcher()
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	g.spawner = object.NewWaveSpawner(g.rng)
	g.state = NewState()
	return g
}

// State returns the live simulation state.
func (g *Game) State() *State {
	return g.state
}

// Events returns the dispatcher the game publishes to.
func (g *Game) Events() *event.Dispatcher {
	return g.events
}

// Start resets to a fresh game at phase 1 and schedules the first tick.
func (g *Game) Start() {
	g.round++
	g.state = NewState()
	g.state.Best = g.readBest()
	g.state.Pending = g.spawner.CreateWave(object.WaveSize(g.state.Phase), g.state.Phase)
	g.logger.Debug("game started", "best", g.state.Best.Score, "wave", len(g.state.Pending))
	g.sched.ScheduleNextTick(g.Tick)
}

// Tick advances the simulation by one frame.
func (g *Game) Tick() {
	s := g.state
	if s.Status == StatusDefeated {
		return
	}
	s.Ticks++

	in := g.input.Poll()
	s.Player.Steer(in.Left, in.Right, config.ViewWidth)
	g.fire(in.Fire)
	g.advanceLasers()
	g.enemyAttacks()

	if g.advanceEnemyLasers() {
		g.defeat()
		return
	}

	g.advanceWave()

	g.advanceEnemies()
	if g.checkKamikazeHits() {
		g.defeat()
		return
	}

	s.refreshStatus()
	g.renderer.Render(g.frame())
	g.sched.ScheduleNextTick(g.Tick)
}

func (g *Game) frame() Frame {
	s := g.state
	return Frame{
		Player:      s.Player,
		Enemies:     s.Enemies,
		Pending:     s.Pending,
		Lasers:      s.Lasers,
		EnemyLasers: s.EnemyLasers,
		Score:       s.Score,
		Multiplier:  s.Multiplier,
		Phase:       s.Phase,
		WaveStarted: s.WaveStarted,
		Status:      s.Status,
		Best:        s.Best,
	}
}

// defeat renders the final frame and runs the end-of-game flow.
// No further ticks are scheduled.
func (g *Game) defeat() {
	s := g.state
	s.Status = StatusDefeated
	x, y := s.Player.Rect().Center()
	g.events.Dispatch(event.Event{Type: event.Defeated, Phase: s.Phase, X: x, Y: y})
	g.logger.Info("player defeated", "score", s.DisplayScore(), "phase", s.Phase)
	g.renderer.Render(g.frame())
	g.finish()
}

// finish compares the final score with the stored record and asks for a
// name when it was beaten. The displayed record is always re-read from the
// store when it was not beaten.
func (g *Game) finish() {
	s := g.state
	final := s.DisplayScore()
	best := g.readBest()

	if s.Score <= float64(best.Score) {
		g.showGameOver(GameOver{Score: final, Best: best})
		return
	}

	round := g.round
	answered := false
	g.prompt.PromptName(final, func(name string) {
		if answered || round != g.round {
			return
		}
		answered = true
		rec := highscore.Record{Score: final, Name: NormalizeName(name)}
		if err := g.store.Write(context.Background(), rec); err != nil {
			g.logger.Error("saving high score", "err", err)
		} else {
			g.logger.Info("new high score", "score", rec.Score, "name", rec.Name)
		}
		g.showGameOver(GameOver{Score: final, Best: rec, NewRecord: true})
	})
}

func (g *Game) showGameOver(over GameOver) {
	if g.over != nil {
		g.over.ShowGameOver(over)
	}
	round := g.round
	g.sched.After(config.RestartDelay, func() {
		if round != g.round {
			return
		}
		g.Start()
		g.events.Dispatch(event.Event{Type: event.Restarted, Phase: g.state.Phase})
	})
}

// readBest reads the stored record. Errors are logged and read as no record.
func (g *Game) readBest() highscore.Record {
	rec, err := g.store.Read(context.Background())
	if err != nil {
		g.logger.Error("reading high score", "err", err)
		return highscore.Record{}
	}
	return rec
}

// NormalizeName trims a high-score name, caps its length and substitutes
// AnonymousName for an empty one.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if r := []rune(name); len(r) > config.MaxNameLength {
		name = string(r[:config.MaxNameLength])
	}
	if name == "" {
		return config.AnonymousName
	}
	return name
}

type anonymousPrompt struct{}

func (anonymousPrompt) PromptName(_ int, done func(string)) { done("") }
