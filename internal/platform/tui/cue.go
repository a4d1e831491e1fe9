package tui

import (
	"io"

	"github.com/teodorv/neotris/internal/core"
)

// TerminalBeeper realizes audio cues as the terminal bell. Only the
// high-salience cues ring; movement cues would be constant noise at 60
// ticks per second.
type TerminalBeeper struct {
	out io.Writer
}

var _ core.CuePlayer = (*TerminalBeeper)(nil)

// NewTerminalBeeper creates a beeper writing the BEL character to out.
func NewTerminalBeeper(out io.Writer) *TerminalBeeper {
	return &TerminalBeeper{out: out}
}

// Play rings the bell for clear and game-over cues and ignores the rest.
func (b *TerminalBeeper) Play(cue core.Cue) {
	if b.out == nil {
		return
	}
	switch cue {
	case core.CueClear, core.CueGameOver:
		b.out.Write([]byte{'\a'}) //nolint:errcheck // Best-effort bell
	}
}
