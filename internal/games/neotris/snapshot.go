package neotris

// GameStateType represents the current game phase.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick  uint64
	Score int
	Level int
	Lines int

	Board []string // '#' occupied, '.' empty, one string per row

	CurrentKind     Kind
	CurrentRotation int
	CurrentX        int
	CurrentY        int
	NextKind        Kind

	AdvisorOn  bool
	GhostOn    bool
	Difficulty float64
	Theme      string

	State GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	rows := make([]string, g.board.Height())
	for y := 0; y < g.board.Height(); y++ {
		row := make([]byte, g.board.Width())
		for x := 0; x < g.board.Width(); x++ {
			if g.board.Occupied(x, y) {
				row[x] = '#'
			} else {
				row[x] = '.'
			}
		}
		rows[y] = string(row)
	}

	return Snapshot{
		Tick:            g.tick,
		Score:           g.score,
		Level:           g.level,
		Lines:           g.lines,
		Board:           rows,
		CurrentKind:     g.current.Kind,
		CurrentRotation: g.current.Rotation,
		CurrentX:        g.current.X,
		CurrentY:        g.current.Y,
		NextKind:        g.next.Kind,
		AdvisorOn:       g.advisorOn,
		GhostOn:         g.ghostOn,
		Difficulty:      g.tracker.DifficultyFactor(),
		Theme:           g.theme().Name,
		State:           state,
	}
}
