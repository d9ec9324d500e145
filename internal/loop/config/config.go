// Package config centralizes all tunable game parameters.
package config

import "time"

// Viewport - fixed logical coordinate space in pixels.
// Renderers scale it to whatever surface they draw on.
const (
	ViewWidth  = 1000
	ViewHeight = 800
)

// Player
const (
	PlayerWidth    = 50
	PlayerHeight   = 50
	PlayerStartX   = ViewWidth/2 - PlayerWidth/2
	PlayerStartY   = ViewHeight - 60
	PlayerSpeed    = 6  // px per tick
	FireCooldown   = 15 // ticks between shots
	MaxNameLength  = 16 // Maximum length of a high-score name
	AnonymousName  = "anonymous"
	PlayerLaserVel = 10 // px per tick, upward
)

// Projectiles
const (
	LaserWidth    = 4
	LaserHeight   = 20
	EnemyLaserVel = 6 // px per tick, downward
	LaserDrift    = 3 // px per tick sideways for left/right lanes
)

// Enemies
const (
	EnemySize        = 50
	BossSize         = 80
	BossHitPoints    = 5
	DescentSpeed     = 2 // px per tick while moving into formation
	WanderSpeed      = 2 // px per tick
	WanderDelay      = 2000 * time.Millisecond
	WanderMinY       = 50
	KamikazeSpeed    = 7  // px per tick
	KamikazePadding  = 10 // px added on every side of the lethal hitbox
	StandardFireProb = 0.3
	BossFireProb     = 0.5
	KamikazeProb     = 0.3
	EnemyAttackTicks = 60 // ticks between enemy attack rounds
)

// Waves
const (
	BaseWaveSize    = 5 // wave size is BaseWaveSize + phase
	BossPhaseEvery  = 3
	BossX           = ViewWidth/2 - BossSize/2
	BossEntryY      = -150
	BossTargetY     = 100
	FlankSpacing    = 80
	EntryMinDepth   = 50  // enemies enter between -EntryMinDepth and -(EntryMinDepth+EntryDepthRange)
	EntryDepthRange = 150
	TargetMinY      = 80
	TargetRangeY    = 120
	SpawnMarginLeft = 50
	SpawnMarginSum  = 150 // left + right margin for random x positions
)

// Scoring
const (
	InitialMultiplier = 2.0
	MultiplierStep    = 0.2
	ScoreStandard     = 1
	ScoreBoss         = 10
)

// Game over
const (
	RestartDelay = 3000 * time.Millisecond
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Terminal size limits for the render area.
const (
	MaxTermWidth  = 200
	MaxTermHeight = 60
)
