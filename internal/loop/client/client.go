// Package client runs one terminal session: it owns the frame loop, feeds
// input to a loop.Game and draws its frames.
package client

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tomz197/starwave/internal/draw"
	"github.com/tomz197/starwave/internal/event"
	"github.com/tomz197/starwave/internal/highscore"
	"github.com/tomz197/starwave/internal/input"
	"github.com/tomz197/starwave/internal/loop"
	"github.com/tomz197/starwave/internal/loop/config"
	"github.com/tomz197/starwave/internal/object"
)

// Client handles rendering and input for a single connection.
type Client struct {
	game         *loop.Game
	sched        *loop.FrameScheduler
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	styles       styles
	writer       io.Writer
	inputStream  *input.Stream
	username     string
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	stopped      atomic.Bool
	points       []draw.Point
	particles    []*object.Particle
	fxRand       *rand.Rand // Visual effects only; never the game's source
	detach       []func()   // Removes opts.Listeners once Run returns
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string // Pre-fills the high-score name prompt
	Store        highscore.Store
	Rand         object.Rand
	Logger       *log.Logger
	Listeners    []event.Listener // Subscribed to every game event
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := draw.ClampTermSize(termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ViewWidth, config.ViewHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	c := &Client{
		sched:        loop.NewFrameScheduler(time.Now()),
		state:        NewClientState(),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		styles:       newStyles(lipgloss.NewRenderer(w)),
		writer:       w,
		inputStream:  input.StartStream(r),
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		logger:       logger,
		fxRand:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	c.game = loop.New(loop.Options{
		Scheduler: c.sched,
		Input:     c,
		Renderer:  c,
		Rand:      opts.Rand,
		Store:     opts.Store,
		Prompt:    c,
		GameOver:  c,
		Logger:    logger,
	})
	events := c.game.Events()
	events.Subscribe(event.Restarted, event.ListenerFunc(c.onRestart))
	events.Subscribe(event.EnemyDestroyed, event.ListenerFunc(c.onExplosion))
	events.Subscribe(event.Defeated, event.ListenerFunc(c.onExplosion))
	for _, l := range opts.Listeners {
		c.detach = append(c.detach, events.SubscribeAll(l))
	}
	return c
}

// Game returns the game driven by this client.
func (c *Client) Game() *loop.Game {
	return c.game
}

// Stop ends Run after the current frame. Safe to call from any goroutine.
func (c *Client) Stop() {
	c.stopped.Store(true)
}

func (c *Client) running() bool {
	return !c.stopped.Load()
}

// Run starts the game and the frame loop. Blocks until the player quits,
// the input ends or Stop is called.
func (c *Client) Run() error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	defer c.detachListeners()
	draw.ClearScreen(c.writer)

	c.game.Start()

	for c.running() {
		frameStart := time.Now()

		c.processInput(frameStart)
		c.updateScreen()
		c.sched.RunFrame(frameStart)
		c.updateParticles()

		if err := c.drawFrame(frameStart); err != nil {
			return fmt.Errorf("drawing frame: %w", err)
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

func (c *Client) detachListeners() {
	for _, unsubscribe := range c.detach {
		unsubscribe()
	}
	c.detach = nil
}

// processInput reads the keys for this frame.
func (c *Client) processInput(now time.Time) {
	in := c.inputStream.Read(now)
	if c.inputStream.Closed() {
		c.Stop()
	}
	c.handleInput(in)
}

func (c *Client) handleInput(in input.Input) {
	c.state.Held = in

	if c.state.Mode == ModeNameEntry {
		name, submitted := input.EditLine(c.state.Name, in.Pressed, config.MaxNameLength)
		c.state.Name = name
		if submitted && c.state.nameDone != nil {
			done := c.state.nameDone
			c.state.nameDone = nil
			done(string(name))
		}
		return
	}

	if in.Quit {
		c.Stop()
	}
}

// Poll implements loop.InputSource.
func (c *Client) Poll() loop.Input {
	if c.state.Mode != ModePlaying {
		return loop.Input{}
	}
	return loop.Input{
		Left:  c.state.Held.Left,
		Right: c.state.Held.Right,
		Fire:  c.state.Held.Fire,
	}
}

// Render implements loop.Renderer. Drawing happens once per frame in drawFrame.
func (c *Client) Render(f loop.Frame) {
	c.state.Frame = f
	c.state.hasFrame = true
}

// PromptName implements loop.NamePrompter.
func (c *Client) PromptName(score int, done func(string)) {
	name := []rune(c.username)
	if len(name) > config.MaxNameLength {
		name = name[:config.MaxNameLength]
	}
	c.state.Mode = ModeNameEntry
	c.state.Name = name
	c.state.NameScore = score
	c.state.nameDone = done
}

// ShowGameOver implements loop.GameOverScreen.
func (c *Client) ShowGameOver(g loop.GameOver) {
	c.state.Mode = ModeGameOver
	c.state.Over = g
	c.state.overAt = c.sched.Now()
}

func (c *Client) onRestart(event.Event) {
	c.state.Mode = ModePlaying
	input.ResetKeyInput(c.inputStream)
	c.clearParticles()
}

func (c *Client) onExplosion(e event.Event) {
	count, speed := 12, 6.0
	if e.Type == event.Defeated {
		count, speed = 40, 10
	}
	c.particles = object.SpawnExplosion(c.particles, e.X, e.Y, count, speed, 30, c.fxRand)
}

// updateParticles advances explosion debris by one frame.
func (c *Client) updateParticles() {
	kept := c.particles[:0]
	for _, p := range c.particles {
		if p.Advance() {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	clear(c.particles[len(kept):])
	c.particles = kept
}

func (c *Client) clearParticles() {
	for _, p := range c.particles {
		p.Release()
	}
	clear(c.particles)
	c.particles = c.particles[:0]
}

// updateScreen handles terminal resize, clamping to max render resolution.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := draw.ClampTermSize(termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.chunkWriter.ClearScreen()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

var (
	_ loop.InputSource    = (*Client)(nil)
	_ loop.Renderer       = (*Client)(nil)
	_ loop.NamePrompter   = (*Client)(nil)
	_ loop.GameOverScreen = (*Client)(nil)
)
