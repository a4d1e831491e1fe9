package neotris

import (
	"time"

	"github.com/teodorv/neotris/internal/core"
)

// Tracker tuning. The adjustment cadence and factor clamps come from play
// testing; the controller is pull-based and only re-evaluates once per
// window even if asked every tick.
const (
	defaultBaseDropInterval = 1000 * time.Millisecond
	defaultMinDropInterval  = 100 * time.Millisecond
	adjustWindow            = 30 * time.Second
	accuracyWindow          = 20

	// Rate samples are meaningless in the first few seconds of a session.
	minSampleTime = 6 * time.Second
)

type rateSample struct {
	at    time.Time
	value int
}

type movePair struct {
	at         time.Time
	playerX    int
	playerRot  int
	advisedX   int
	advisedRot int
}

// Tracker observes player performance (score rate, line rate, and how
// closely placements follow the advisor) and derives a fall-speed
// multiplier from it. Logs are append-only during a session and zeroed on
// Reset. The clock is injected so tests can control time.
type Tracker struct {
	now func() time.Time

	baseInterval time.Duration
	minInterval  time.Duration

	startTime time.Time
	lastCheck time.Time

	scoreLog []rateSample
	linesLog []rateSample
	pairs    []movePair

	difficulty float64
}

// NewTracker creates a tracker using the given clock. A nil clock means
// time.Now.
func NewTracker(now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	t := &Tracker{
		now:          now,
		baseInterval: defaultBaseDropInterval,
		minInterval:  defaultMinDropInterval,
	}
	t.Reset()
	return t
}

// SetIntervals overrides the base and minimum drop intervals.
func (t *Tracker) SetIntervals(base, min time.Duration) {
	if base > 0 {
		t.baseInterval = base
	}
	if min > 0 {
		t.minInterval = min
	}
}

// Reset zeroes all logs and timers, as on a new game.
func (t *Tracker) Reset() {
	t.startTime = t.now()
	t.lastCheck = t.startTime
	t.scoreLog = nil
	t.linesLog = nil
	t.pairs = nil
	t.difficulty = 1.0
}

// RecordScore appends the cumulative score and total lines cleared.
func (t *Tracker) RecordScore(score, totalLines int) {
	at := t.now()
	t.scoreLog = append(t.scoreLog, rateSample{at: at, value: score})
	t.linesLog = append(t.linesLog, rateSample{at: at, value: totalLines})
}

// RecordMove appends a placement made while assistance was active, pairing
// what the player did with what the advisor suggested.
func (t *Tracker) RecordMove(playerX, playerRot, advisedX, advisedRot int) {
	t.pairs = append(t.pairs, movePair{
		at:         t.now(),
		playerX:    playerX,
		playerRot:  playerRot,
		advisedX:   advisedX,
		advisedRot: advisedRot,
	})
}

// ScorePerMinute returns the latest cumulative score divided by elapsed
// session minutes. Returns 0 with no samples or before enough session time
// has passed for the rate to be stable.
func (t *Tracker) ScorePerMinute() float64 {
	return t.perMinute(t.scoreLog)
}

// LinesPerMinute returns the latest cumulative line count divided by
// elapsed session minutes, with the same stability guard as ScorePerMinute.
func (t *Tracker) LinesPerMinute() float64 {
	return t.perMinute(t.linesLog)
}

func (t *Tracker) perMinute(log []rateSample) float64 {
	if len(log) == 0 {
		return 0
	}

	elapsed := t.now().Sub(t.startTime)
	if elapsed < minSampleTime {
		return 0
	}

	latest := log[len(log)-1].value
	return float64(latest) / elapsed.Minutes()
}

// MoveAccuracy returns the fraction of the most recent placements (up to
// accuracyWindow of them) where the player's column and rotation both
// matched the advisor exactly. Defaults to 0.5 when no pairs exist.
func (t *Tracker) MoveAccuracy() float64 {
	if len(t.pairs) == 0 {
		return 0.5
	}

	recent := t.pairs
	if len(recent) > accuracyWindow {
		recent = recent[len(recent)-accuracyWindow:]
	}

	matches := 0
	for _, p := range recent {
		if p.playerX == p.advisedX && p.playerRot == p.advisedRot {
			matches++
		}
	}

	return float64(matches) / float64(len(recent))
}

// DifficultyFactor returns the current combined difficulty multiplier,
// always in [0.5, 2.0].
func (t *Tracker) DifficultyFactor() float64 {
	return t.difficulty
}

// AdjustDifficulty re-evaluates the difficulty factor if at least one
// adjustment window has elapsed since the last check, then returns the
// effective drop interval. Between windows it returns the previously
// computed interval unchanged.
func (t *Tracker) AdjustDifficulty() time.Duration {
	current := t.now()
	if current.Sub(t.lastCheck) < adjustWindow {
		return t.DropInterval()
	}
	t.lastCheck = current

	spm := t.ScorePerMinute()
	lpm := t.LinesPerMinute()
	accuracy := t.MoveAccuracy()

	scoreFactor := core.ClampF(spm/1000, 0.5, 1.5)
	linesFactor := core.ClampF(lpm/5, 0.5, 1.5)
	// Following the advisor closely earns a faster game.
	accuracyFactor := 1.0 + (accuracy - 0.5)

	t.difficulty = core.ClampF(
		0.5*scoreFactor+0.3*linesFactor+0.2*accuracyFactor,
		0.5, 2.0,
	)

	return t.DropInterval()
}

// DropInterval returns the effective fall interval for the current
// difficulty factor, clamped to [minInterval, baseInterval].
func (t *Tracker) DropInterval() time.Duration {
	interval := time.Duration(float64(t.baseInterval) / t.difficulty)
	if interval < t.minInterval {
		return t.minInterval
	}
	if interval > t.baseInterval {
		return t.baseInterval
	}
	return interval
}
