package neotris

import "math"

// Heuristic weights for board evaluation. These are empirically tuned
// constants; the exact values matter, do not round or "clean up".
const (
	weightAggregateHeight = -0.510066
	weightCompleteLines   = 0.760666
	weightHoles           = -0.35663
	weightBumpiness       = -0.184483
)

// Move is a candidate placement produced by the search: a rotation index,
// an anchor column, the landing row a hard drop ends on, and the heuristic
// score of the resulting board. Higher scores are better.
type Move struct {
	Rotation int
	X        int
	Y        int
	Score    float64
}

// Advisor ranks candidate placements for the falling piece. It is pure:
// it only ever works on cloned boards and pieces.
type Advisor struct{}

// NewAdvisor creates a move advisor.
func NewAdvisor() *Advisor {
	return &Advisor{}
}

// Evaluate scores a hypothetical board after a placement as a fixed linear
// combination of aggregate height, complete (uncleared) lines, holes and
// bumpiness.
func (a *Advisor) Evaluate(b *Board) float64 {
	return weightAggregateHeight*float64(b.AggregateHeight()) +
		weightCompleteLines*float64(b.CompleteLines()) +
		weightHoles*float64(b.Holes()) +
		weightBumpiness*float64(b.Bumpiness())
}

// BestMove exhaustively searches all legal (rotation, column) pairs for the
// piece's kind, ignoring its live position, and returns the maximum-scoring
// landing. The column range deliberately over-generates two columns past
// either edge to tolerate asymmetric bounding boxes; illegal candidates are
// filtered by the collision check, not the range. Ties go to the first
// candidate in iteration order (rotation ascending, then column ascending),
// which callers rely on for stable suggestions.
//
// Returns false if no legal placement exists.
func (a *Advisor) BestMove(b *Board, p *Piece) (Move, bool) {
	best := Move{Score: math.Inf(-1)}
	found := false

	for rotation := 0; rotation < p.NumRotations(); rotation++ {
		probe := p.Clone()
		probe.Rotation = rotation
		pieceWidth := probe.Width()

		for x := -2; x <= b.Width()-pieceWidth+2; x++ {
			candidate := p.Clone()
			candidate.Rotation = rotation
			candidate.X = x
			candidate.Y = 0

			// Skip positions that collide at spawn height.
			if b.Collides(candidate) {
				continue
			}

			landingY := a.dropRow(b, candidate)

			scratch := b.Clone()
			candidate.Y = landingY
			if scratch.Collides(candidate) {
				continue
			}
			scratch.Place(candidate)

			score := a.Evaluate(scratch)
			if score > best.Score {
				best = Move{Rotation: rotation, X: x, Y: landingY, Score: score}
				found = true
			}
		}
	}

	return best, found
}

// dropRow simulates a hard drop of the piece (mutating it) and returns the
// landing row: one above the first collision point.
func (a *Advisor) dropRow(b *Board, p *Piece) int {
	for !b.Collides(p) {
		p.Y++
	}
	p.Y--
	return p.Y
}

// Ghost returns a copy of the piece at the row where it would land if
// hard-dropped now, with no rotation or column change. Used for the plain
// landing indicator, independent of the heuristic search.
func (a *Advisor) Ghost(b *Board, p *Piece) *Piece {
	ghost := p.Clone()
	ghost.Y = a.dropRow(b, p.Clone())
	return ghost
}
