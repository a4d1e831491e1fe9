// Package neotris implements the falling-block puzzle game: board and
// piece simulation, the heuristic move advisor, and the performance-
// adaptive difficulty controller. The package is pure logic with no
// Bubble Tea dependency; the platform drives it through the registry
// Game interface.
package neotris

import (
	"math/rand"
	"time"

	"github.com/teodorv/neotris/internal/config"
	"github.com/teodorv/neotris/internal/core"
	"github.com/teodorv/neotris/internal/registry"
)

// Package-level variables for CLI-provided config: set before the game
// is created, consumed on Reset.
var (
	configPath       string
	difficultyPreset string
	selectedTheme    string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset: easy, normal, hard, fixed.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetTheme overrides the configured starting theme by name.
func SetTheme(name string) {
	selectedTheme = name
}

// Game owns the board and pieces and drives the timed fall. It implements
// the registry.Game interface.
type Game struct {
	cfg      config.NeotrisConfig
	rng      *rand.Rand
	clock    func() time.Time
	tick     uint64
	tickRate int

	board   *Board
	current *Piece
	next    *Piece

	advisor *Advisor
	tracker *Tracker

	// suggestion is the advisor's pick for the current piece, recomputed
	// on spawn and on toggle, never per tick. suggestionPiece is the same
	// move positioned for rendering.
	suggestion      *Move
	suggestionPiece *Piece

	themeIdx int

	score int
	level int
	lines int

	gameOver bool
	paused   bool
	tooSmall bool

	advisorOn  bool
	ghostOn    bool
	adaptiveOn bool

	dropInterval time.Duration
	dropTicker   int

	screenW int
	screenH int

	cues []core.Cue
}

// New creates a new game using the wall clock.
func New() *Game {
	return NewWithClock(time.Now)
}

// NewWithClock creates a game with an injected clock, so tests can control
// the difficulty controller's timing.
func NewWithClock(now func() time.Time) *Game {
	return &Game{clock: now}
}

func init() {
	registry.Register("neotris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "neotris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Neotris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadNeotris(configPath)
	if err != nil {
		cfg = config.DefaultNeotrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	width := cfg.Board.Width
	height := cfg.Board.Height
	if width <= 0 || height <= 0 {
		width, height = DefaultBoardWidth, DefaultBoardHeight
	}
	g.board = NewBoard(width, height)

	g.advisor = NewAdvisor()
	g.tracker = NewTracker(g.clock)
	g.tracker.SetIntervals(
		time.Duration(cfg.Timing.BaseDropMS)*time.Millisecond,
		time.Duration(cfg.Timing.MinDropMS)*time.Millisecond,
	)
	g.dropInterval = g.tracker.DropInterval()
	g.dropTicker = 0

	theme := cfg.Theme
	if selectedTheme != "" {
		theme = selectedTheme
	}
	g.themeIdx = themeIndexByName(theme)

	g.score = 0
	g.level = 1
	g.lines = 0
	g.gameOver = false
	g.paused = false

	g.advisorOn = cfg.Features.Advisor
	g.ghostOn = cfg.Features.Ghost
	g.adaptiveOn = cfg.Adaptive.Enabled

	g.current = nil
	g.next = nil
	g.cues = nil
	g.spawnPiece()

	g.checkScreenSize()
}

// theme returns the active theme preset.
func (g *Game) theme() Theme {
	return themes[g.themeIdx]
}

// checkScreenSize checks if the screen fits the board plus sidebar.
func (g *Game) checkScreenSize() {
	minW := g.board.Width()*2 + sidebarWidth + 6
	minH := g.board.Height() + 3
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// spawnPiece promotes the next piece (or creates the first pair), applies
// theme colors, and recomputes the advisor suggestion if assistance is on.
func (g *Game) spawnPiece() {
	if g.next != nil {
		g.current = g.next
	} else {
		g.current = NewPiece(g.rng)
	}
	g.next = NewPiece(g.rng)

	g.applyThemeColors()

	g.suggestion = nil
	g.suggestionPiece = nil
	if g.advisorOn {
		g.computeSuggestion()
	}
}

// applyThemeColors recolors the live pieces for the active theme.
func (g *Game) applyThemeColors() {
	theme := g.theme()
	if g.current != nil {
		g.current.Color = theme.PieceColors[g.current.Kind]
	}
	if g.next != nil {
		g.next.Color = theme.PieceColors[g.next.Kind]
	}
}

// computeSuggestion runs the placement search for the current piece.
// This is the most expensive core operation; it runs on spawn and on
// toggle only.
func (g *Game) computeSuggestion() {
	move, ok := g.advisor.BestMove(g.board, g.current)
	if !ok {
		g.suggestion = nil
		g.suggestionPiece = nil
		return
	}
	g.suggestion = &move

	ghost := g.current.Clone()
	ghost.Rotation = move.Rotation
	ghost.X = move.X
	ghost.Y = move.Y
	g.suggestionPiece = ghost
}

// cue appends a named audio event to this tick's result.
func (g *Game) cue(c core.Cue) {
	g.cues = append(g.cues, c)
}

// dropIntervalTicks converts the current fall interval to whole ticks.
func (g *Game) dropIntervalTicks() int {
	ticks := int(g.dropInterval * time.Duration(g.tickRate) / time.Second)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.cues = nil

	// Restart after game over, reusing the session RNG for a fresh seed.
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return g.result()
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return g.result()
	}

	g.handleInput(in)
	if g.gameOver {
		// A hard drop can end the game within the same tick.
		return g.result()
	}

	// Cooperative gravity: at most one downward step (or one commit) per
	// tick, never catching up after a stall.
	g.dropTicker++
	if g.dropTicker >= g.dropIntervalTicks() {
		g.dropTicker = 0
		if !g.current.MoveDown(g.board) {
			g.lockPiece()
		}
	}

	return g.result()
}

// handleInput performs the piece operations requested this frame and emits
// cues for the ones that succeeded.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		if g.current.MoveLeft(g.board) {
			g.cue(core.CueMove)
		}
	}
	if in.Has(core.ActionRight) {
		if g.current.MoveRight(g.board) {
			g.cue(core.CueMove)
		}
	}
	if in.Has(core.ActionSoftDrop) {
		if g.current.MoveDown(g.board) {
			g.cue(core.CueMove)
		}
	}
	if in.Has(core.ActionRotate) {
		// Rotation failure is distinct from success so no cue plays on a
		// fully reverted rotate.
		if g.current.Rotate(g.board) {
			g.cue(core.CueRotate)
		}
	}
	if in.Has(core.ActionHardDrop) {
		g.current.HardDrop(g.board)
		g.cue(core.CueDrop)
		g.lockPiece()
		return
	}
	if in.Has(core.ActionToggleAdvisor) {
		g.advisorOn = !g.advisorOn
		if g.advisorOn {
			g.computeSuggestion()
		} else {
			g.suggestion = nil
			g.suggestionPiece = nil
		}
	}
	if in.Has(core.ActionToggleGhost) {
		g.ghostOn = !g.ghostOn
	}
	if in.Has(core.ActionCycleTheme) {
		g.themeIdx = (g.themeIdx + 1) % len(themes)
		g.applyThemeColors()
		if g.suggestionPiece != nil {
			g.suggestionPiece.Color = g.theme().PieceColors[g.suggestionPiece.Kind]
		}
	}
}

// lockPiece bakes the current piece into the board, handles line clears,
// scoring and difficulty, then spawns the next piece. A spawn collision is
// the terminal game-over condition.
func (g *Game) lockPiece() {
	if g.advisorOn && g.suggestion != nil {
		g.tracker.RecordMove(
			g.current.X, g.current.Rotation,
			g.suggestion.X, g.suggestion.Rotation,
		)
	}

	g.board.Place(g.current)
	g.current.State = Committed

	cleared := g.board.ClearLines()
	if cleared > 0 {
		g.cue(core.CueClear)
		g.lines += cleared
		g.score += cleared * 100 * g.level
		g.level = 1 + g.lines/10

		g.tracker.RecordScore(g.score, g.lines)

		if g.adaptiveOn {
			g.dropInterval = g.tracker.AdjustDifficulty()
		} else {
			g.dropInterval = g.classicInterval()
		}
	}

	g.spawnPiece()

	if g.board.Collides(g.current) {
		g.gameOver = true
		g.cue(core.CueGameOver)
	}
}

// classicInterval is the non-adaptive progression: a fixed speedup per
// level down to the configured floor.
func (g *Game) classicInterval() time.Duration {
	base := time.Duration(g.cfg.Timing.BaseDropMS) * time.Millisecond
	min := time.Duration(g.cfg.Timing.MinDropMS) * time.Millisecond
	interval := base - time.Duration(g.level*g.cfg.Timing.LevelSpeedupMS)*time.Millisecond
	if interval < min {
		return min
	}
	return interval
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Cues: g.cues}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Lines:    g.lines,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
