package client

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/starwave/internal/draw"
	"github.com/tomz197/starwave/internal/loop"
	"github.com/tomz197/starwave/internal/loop/config"
	"github.com/tomz197/starwave/internal/object"
)

type styles struct {
	panel  lipgloss.Style
	title  lipgloss.Style
	accent lipgloss.Style
	dim    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("13")).
			Padding(1, 4).
			Align(lipgloss.Center),
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		accent: r.NewStyle().Foreground(lipgloss.Color("14")),
		dim:    r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// drawFrame draws the current frame.
func (c *Client) drawFrame(now time.Time) error {
	// A full clear on screen changes removes the previous overlay.
	if c.state.Mode != c.state.prevMode {
		c.chunkWriter.ClearScreen()
		c.canvas.ForceRedraw()
		c.state.prevMode = c.state.Mode
	}

	c.canvas.Clear()
	if c.state.hasFrame {
		c.drawEntities(c.state.Frame)
	}
	c.canvas.Render(c.chunkWriter)
	c.canvas.RenderBorder(c.chunkWriter)

	if c.state.hasFrame {
		c.drawHUD(c.state.Frame)
	}

	top := 0
	switch c.state.Mode {
	case ModePlaying:
		c.drawBanners(c.state.Frame)
	case ModeNameEntry:
		top = c.drawNameEntry()
	case ModeGameOver:
		top = c.drawGameOver(now)
	}
	// The defeat frame stays under the result panels until restart.
	if top > 0 && c.state.hasFrame && c.state.Frame.Status == loop.StatusDefeated {
		c.writeCentered(max(top-2, 1), c.styles.title.Render("YOU LOST!"))
	}

	return c.chunkWriter.Flush()
}

func (c *Client) drawEntities(f loop.Frame) {
	for _, e := range f.Pending {
		c.drawEnemy(e)
	}
	for _, e := range f.Enemies {
		c.drawEnemy(e)
	}
	for _, l := range f.Lasers {
		c.canvas.FillRect(l.X, l.Y, l.Width, l.Height, draw.ColorGreen)
	}
	for _, l := range f.EnemyLasers {
		c.canvas.FillRect(l.X, l.Y, l.Width, l.Height, draw.ColorRed)
	}
	for _, p := range c.particles {
		if !p.Faded() {
			c.canvas.FillRect(p.X-3, p.Y-3, 6, 6, draw.ColorYellow)
		}
	}
	if f.Player != nil && f.Status != loop.StatusDefeated {
		r := f.Player.Rect()
		c.drawShape(r.X, r.Y, r.Width, r.Height, shipShape, draw.ColorCyan)
	}
}

// Shapes are unit-square outlines scaled into an entity's rectangle.
var (
	shipShape     = []draw.Point{{X: 0.5, Y: 0}, {X: 1, Y: 1}, {X: 0.5, Y: 0.75}, {X: 0, Y: 1}}
	fighterShape  = []draw.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0.5, Y: 1}}
	kamikazeShape = []draw.Point{{X: 0.5, Y: 0}, {X: 1, Y: 0.5}, {X: 0.5, Y: 1}, {X: 0, Y: 0.5}}
	bossShape     = []draw.Point{{X: 0.25, Y: 0}, {X: 0.75, Y: 0}, {X: 1, Y: 0.5}, {X: 0.75, Y: 1}, {X: 0.25, Y: 1}, {X: 0, Y: 0.5}}
)

func (c *Client) drawEnemy(e object.Enemy) {
	r := e.Rect()
	switch e.Kind() {
	case object.KindBoss:
		c.drawShape(r.X, r.Y, r.Width, r.Height, bossShape, draw.ColorMagenta)
		if b, ok := e.(*object.Boss); ok {
			frac := float64(b.HitPoints) / config.BossHitPoints
			c.canvas.FillRect(r.X, r.Y-12, r.Width*frac, 6, draw.ColorRed)
		}
	case object.KindKamikaze:
		c.drawShape(r.X, r.Y, r.Width, r.Height, kamikazeShape, draw.ColorYellow)
	default:
		c.drawShape(r.X, r.Y, r.Width, r.Height, fighterShape, draw.ColorRed)
	}
}

func (c *Client) drawShape(x, y, w, h float64, shape []draw.Point, color draw.Color) {
	c.points = c.points[:0]
	for _, p := range shape {
		c.points = append(c.points, draw.Point{X: x + p.X*w, Y: y + p.Y*h})
	}
	c.canvas.DrawPolygon(c.points, true, color)
}

// writeText writes s at a 1-based canvas position and marks the cells so
// the canvas repaints them once the text is gone.
func (c *Client) writeText(col, row int, s string) {
	if row < 1 || row > c.canvas.TerminalHeight() {
		return
	}
	col = max(col, 1)
	c.chunkWriter.WriteAt(col, row, s)
	c.canvas.MarkTextDirty(col, row, lipgloss.Width(s))
}

func (c *Client) writeCentered(row int, s string) {
	c.writeText((c.canvas.TerminalWidth()-lipgloss.Width(s))/2+1, row, s)
}

// drawHUD draws score, phase and record. Fields are fixed-width so shrinking
// values leave no residue.
func (c *Client) drawHUD(f loop.Frame) {
	width := c.canvas.TerminalWidth()

	score := fmt.Sprintf("Score: %-8d x%-4.1f", int(math.Floor(f.Score)), f.Multiplier)
	c.writeText(2, 1, score)

	phase := fmt.Sprintf("Phase %-3d", f.Phase)
	c.writeCentered(1, phase)

	best := fmt.Sprintf("Best: %d", f.Best.Score)
	if f.Best.Name != "" {
		best += " by " + f.Best.Name
	}
	best = fmt.Sprintf("%-*s", 10+config.MaxNameLength, best)
	c.writeText(width-lipgloss.Width(best), 1, best)

	hint := c.styles.dim.Render("A/D move  SPACE fire  Q quit")
	c.writeText(2, c.canvas.TerminalHeight(), hint)
}

func (c *Client) drawBanners(f loop.Frame) {
	if !f.WaveStarted {
		return
	}
	row := c.canvas.TerminalHeight() / 3
	c.writeCentered(row, c.styles.title.Render("NEW WAVE!"))
	c.writeCentered(row+1, c.styles.accent.Render(fmt.Sprintf("Phase %d", f.Phase)))
}

func (c *Client) drawNameEntry() int {
	lines := []string{
		c.styles.title.Render("NEW HIGH SCORE!"),
		fmt.Sprintf("Score: %d", c.state.NameScore),
		"",
		"Enter your name:",
		c.styles.accent.Render(fmt.Sprintf("> %-*s", config.MaxNameLength+1, string(c.state.Name)+"_")),
		"",
		c.styles.dim.Render("ENTER to save"),
	}
	return c.drawPanel(lines)
}

func (c *Client) drawGameOver(now time.Time) int {
	over := c.state.Over
	lines := []string{
		c.styles.title.Render("GAME OVER"),
		fmt.Sprintf("Score: %d", over.Score),
		"",
	}
	if over.NewRecord {
		lines = append(lines, c.styles.accent.Render("New high score by "+over.Best.Name+"!"))
	} else {
		lines = append(lines, fmt.Sprintf("High score: %d by %s", over.Best.Score, bestName(over)))
	}

	remaining := config.RestartDelay - now.Sub(c.state.overAt)
	secs := max(int(math.Ceil(remaining.Seconds())), 0)
	lines = append(lines, "", c.styles.dim.Render(fmt.Sprintf("Restarting in %ds...", secs)))
	return c.drawPanel(lines)
}

func bestName(over loop.GameOver) string {
	if over.Best.Name == "" {
		return "nobody"
	}
	return over.Best.Name
}

// drawPanel draws a bordered box centered on the playfield and returns its
// top row.
func (c *Client) drawPanel(lines []string) int {
	panel := c.styles.panel.Render(strings.Join(lines, "\n"))
	rows := strings.Split(panel, "\n")
	col := (c.canvas.TerminalWidth()-lipgloss.Width(panel))/2 + 1
	row := (c.canvas.TerminalHeight()-len(rows))/2 + 1
	for i, line := range rows {
		c.writeText(col, row+i, line)
	}
	return row
}
