package core

// Cue names a discrete audio event emitted by the game. The core only ever
// names cues; realization is left to a CuePlayer supplied by the platform.
type Cue string

const (
	CueMove     Cue = "move"
	CueRotate   Cue = "rotate"
	CueDrop     Cue = "drop"
	CueClear    Cue = "clear"
	CueGameOver Cue = "game_over"
)

// CuePlayer realizes named cues. Implementations must tolerate cues they
// do not know about.
type CuePlayer interface {
	Play(cue Cue)
}
