package neotris

import (
	"math/rand"

	"github.com/teodorv/neotris/internal/core"
)

// Kind identifies one of the seven canonical tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ

	// KindCount is the number of tetromino kinds.
	KindCount = 7
)

// String returns the canonical one-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// shapeFilled marks an occupied cell in a rotation bitmap.
const shapeFilled = 'X'

// rotationTables holds the fixed, precomputed rotation states per kind.
// Bitmaps are square except for O, which has a single 3-row, 4-wide state
// so that its spawn anchor centers it in a 10-wide well.
var rotationTables = [KindCount][][]string{
	KindI: {
		{
			"....",
			"XXXX",
			"....",
			"....",
		},
		{
			"..X.",
			"..X.",
			"..X.",
			"..X.",
		},
		{
			"....",
			"....",
			"XXXX",
			"....",
		},
		{
			".X..",
			".X..",
			".X..",
			".X..",
		},
	},
	KindJ: {
		{
			"X..",
			"XXX",
			"...",
		},
		{
			".XX",
			".X.",
			".X.",
		},
		{
			"...",
			"XXX",
			"..X",
		},
		{
			".X.",
			".X.",
			"XX.",
		},
	},
	KindL: {
		{
			"..X",
			"XXX",
			"...",
		},
		{
			".X.",
			".X.",
			".XX",
		},
		{
			"...",
			"XXX",
			"X..",
		},
		{
			"XX.",
			".X.",
			".X.",
		},
	},
	KindO: {
		{
			".XX.",
			".XX.",
			"....",
		},
	},
	KindS: {
		{
			".XX",
			"XX.",
			"...",
		},
		{
			".X.",
			".XX",
			"..X",
		},
		{
			"...",
			".XX",
			"XX.",
		},
		{
			"X..",
			"XX.",
			".X.",
		},
	},
	KindT: {
		{
			".X.",
			"XXX",
			"...",
		},
		{
			".X.",
			".XX",
			".X.",
		},
		{
			"...",
			"XXX",
			".X.",
		},
		{
			".X.",
			"XX.",
			".X.",
		},
	},
	KindZ: {
		{
			"XX.",
			".XX",
			"...",
		},
		{
			"..X",
			".XX",
			".X.",
		},
		{
			"...",
			"XX.",
			".XX",
		},
		{
			".X.",
			"XX.",
			"X..",
		},
	},
}

// defaultKindColors are the built-in piece colors; themes override them.
var defaultKindColors = [KindCount]core.Color{
	KindI: core.ColorCyan,
	KindJ: core.ColorBlue,
	KindL: core.ColorOrange,
	KindO: core.ColorYellow,
	KindS: core.ColorGreen,
	KindT: core.ColorMagenta,
	KindZ: core.ColorRed,
}

// wallKickOffsets are the horizontal corrections tried, in order, when a
// rotation collides. The two-column kicks exist for the I piece.
var wallKickOffsets = [...]int{1, -1, 2, -2}

// PieceState tracks the piece lifecycle. A piece only ever moves forward:
// Falling -> Landed -> Committed.
type PieceState int

const (
	// Falling: the piece is live and player-controllable.
	Falling PieceState = iota
	// Landed: a downward move was blocked; the piece rests on support.
	Landed
	// Committed: the piece has been baked into the board and is inert.
	Committed
)

// spawn anchor: top-center of a 10-wide well.
const (
	spawnX = 3
	spawnY = 0
)

// Piece is one falling tetromino: a kind, an active rotation index, an
// anchor position (the bitmap's bounding-box origin) and a display color.
// The anchor may transiently sit off-grid to the left or right during
// search; it is never committed in that state.
type Piece struct {
	Kind     Kind
	Rotation int
	X, Y     int
	Color    core.Color
	State    PieceState
}

// NewPiece spawns a piece of a random kind at the top-center anchor.
// The randomness source is injected so tests can reproduce sequences.
func NewPiece(rng *rand.Rand) *Piece {
	return NewPieceOfKind(Kind(rng.Intn(KindCount)))
}

// NewPieceOfKind spawns a piece of the given kind at the top-center anchor.
func NewPieceOfKind(k Kind) *Piece {
	return &Piece{
		Kind:     k,
		Rotation: 0,
		X:        spawnX,
		Y:        spawnY,
		Color:    defaultKindColors[k],
		State:    Falling,
	}
}

// NumRotations returns how many rotation states the piece's kind has.
func (p *Piece) NumRotations() int {
	return len(rotationTables[p.Kind])
}

// Shape returns the bitmap at the active rotation index.
func (p *Piece) Shape() []string {
	return rotationTables[p.Kind][p.Rotation]
}

// Width returns the trimmed bounding-box width of the active rotation:
// the span between the leftmost and rightmost occupied columns.
func (p *Piece) Width() int {
	shape := p.Shape()
	minX := len(shape[0])
	maxX := -1

	for _, row := range shape {
		for x, ch := range row {
			if ch == shapeFilled {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
			}
		}
	}

	if maxX < minX {
		return 0
	}
	return maxX - minX + 1
}

// Clone returns an independent copy of the piece.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// MoveLeft shifts the piece one column left if the board allows it.
func (p *Piece) MoveLeft(b *Board) bool {
	p.X--
	if b.Collides(p) {
		p.X++
		return false
	}
	return true
}

// MoveRight shifts the piece one column right if the board allows it.
func (p *Piece) MoveRight(b *Board) bool {
	p.X++
	if b.Collides(p) {
		p.X--
		return false
	}
	return true
}

// MoveDown shifts the piece one row down if the board allows it.
// A blocked downward move transitions the piece to Landed.
func (p *Piece) MoveDown(b *Board) bool {
	p.Y++
	if b.Collides(p) {
		p.Y--
		if p.State == Falling {
			p.State = Landed
		}
		return false
	}
	return true
}

// HardDrop repeats downward unit steps until blocked, leaving the piece
// one row above the first collision point.
func (p *Piece) HardDrop(b *Board) {
	for p.MoveDown(b) {
	}
}

// Rotate advances the rotation index modulo the kind's rotation count.
// If the new orientation collides, the wall-kick offsets are tried in
// order and the first non-colliding one is accepted. If every kick fails,
// rotation and position are fully reverted and Rotate reports false so
// the caller can distinguish a blocked rotation from a successful one.
func (p *Piece) Rotate(b *Board) bool {
	oldRotation := p.Rotation
	p.Rotation = (p.Rotation + 1) % p.NumRotations()

	if !b.Collides(p) {
		return true
	}

	originalX := p.X
	for _, kick := range wallKickOffsets {
		p.X = originalX + kick
		if !b.Collides(p) {
			return true
		}
	}

	p.X = originalX
	p.Rotation = oldRotation
	return false
}
