package neotris

import (
	"math/rand"
	"testing"

	"github.com/teodorv/neotris/internal/core"
)

// fillCell occupies a single board cell directly, bypassing Place.
func fillCell(b *Board, x, y int, c core.Color) {
	b.cells[b.idx(x, y)] = true
	b.colors[b.idx(x, y)] = c
}

// fillRow occupies an entire row except the listed columns.
func fillRow(b *Board, y int, except ...int) {
	skip := make(map[int]bool)
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !skip[x] {
			fillCell(b, x, y, core.ColorWhite)
		}
	}
}

func TestClearSingleRow(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 19)
	fillCell(b, 0, 18, core.ColorRed) // Marker above the full row

	cleared := b.ClearLines()
	if cleared != 1 {
		t.Fatalf("ClearLines() = %d, expected 1", cleared)
	}

	// The marker row shifted down into row 19.
	if !b.Occupied(0, 19) {
		t.Error("Row 18 should have shifted into row 19")
	}
	if b.ColorAt(0, 19) != core.ColorRed {
		t.Error("Cell color should shift together with occupancy")
	}
	for x := 1; x < 10; x++ {
		if b.Occupied(x, 19) {
			t.Errorf("Cell (%d, 19) should be empty after shift", x)
		}
	}

	// Top row is reset to empty.
	for x := 0; x < 10; x++ {
		if b.Occupied(x, 0) {
			t.Errorf("Cell (%d, 0) should be empty after clear", x)
		}
	}
}

func TestClearStackedRows(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 19)
	fillRow(b, 18)
	fillCell(b, 3, 17, core.ColorBlue)

	cleared := b.ClearLines()
	if cleared != 2 {
		t.Fatalf("ClearLines() = %d, expected 2", cleared)
	}

	// The stray cell ends up at the bottom; the same row index must be
	// re-checked after a shift, or the second full row survives.
	if !b.Occupied(3, 19) {
		t.Error("Surviving cell should have shifted to the bottom row")
	}
	total := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 10; x++ {
			if b.Occupied(x, y) {
				total++
			}
		}
	}
	if total != 1 {
		t.Errorf("Expected exactly 1 occupied cell after clearing, got %d", total)
	}
}

func TestClearPreservesRowOrder(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 19)
	fillCell(b, 0, 18, core.ColorRed)
	fillCell(b, 1, 17, core.ColorGreen)

	b.ClearLines()

	// Rows 17/18 keep their relative vertical order after shifting down.
	if b.ColorAt(0, 19) != core.ColorRed {
		t.Error("Lower surviving row should stay below")
	}
	if b.ColorAt(1, 18) != core.ColorGreen {
		t.Error("Upper surviving row should stay above")
	}
}

func TestCollidesIsPure(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 19, 0)
	p := NewPieceOfKind(KindT)
	p.X = 3
	p.Y = 17

	before := b.Clone()
	pBefore := *p

	for i := 0; i < 10; i++ {
		b.Collides(p)
	}

	for y := 0; y < 20; y++ {
		for x := 0; x < 10; x++ {
			if b.Occupied(x, y) != before.Occupied(x, y) {
				t.Fatalf("Collides mutated the board at (%d, %d)", x, y)
			}
		}
	}
	if *p != pBefore {
		t.Error("Collides mutated the piece")
	}
}

func TestCollidesBounds(t *testing.T) {
	b := NewBoard(10, 20)

	tests := []struct {
		name string
		kind Kind
		x, y int
		want bool
	}{
		{"inside", KindO, 3, 0, false},
		{"above grid is allowed", KindO, 3, -1, false},
		{"left wall", KindO, -2, 0, true},
		{"right wall", KindO, 8, 0, true},
		{"below bottom", KindO, 3, 19, true},
	}

	for _, tt := range tests {
		p := NewPieceOfKind(tt.kind)
		p.X = tt.x
		p.Y = tt.y
		if got := b.Collides(p); got != tt.want {
			t.Errorf("%s: Collides = %v, expected %v", tt.name, got, tt.want)
		}
	}
}

func TestCollidesOverlap(t *testing.T) {
	b := NewBoard(10, 20)
	fillCell(b, 4, 10, core.ColorWhite)

	p := NewPieceOfKind(KindO) // Occupies columns x+1, x+2
	p.X = 3
	p.Y = 9
	if !b.Collides(p) {
		t.Error("Piece overlapping an occupied cell should collide")
	}

	p.Y = 7
	if b.Collides(p) {
		t.Error("Piece clear of occupied cells should not collide")
	}
}

func TestPlaceDropsCellsAboveTop(t *testing.T) {
	b := NewBoard(10, 20)
	p := NewPieceOfKind(KindO)
	p.X = 3
	p.Y = -1 // Top bitmap row projects above the well

	b.Place(p)

	count := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 10; x++ {
			if b.Occupied(x, y) {
				count++
			}
		}
	}
	// Only the second bitmap row (y = 0) lands inside the well.
	if count != 2 {
		t.Errorf("Expected 2 placed cells, got %d", count)
	}
	if !b.Occupied(4, 0) || !b.Occupied(5, 0) {
		t.Error("In-bounds cells should be placed at row 0")
	}
}

func TestPlaceKeepsColorInLockStep(t *testing.T) {
	b := NewBoard(10, 20)
	p := NewPieceOfKind(KindZ)
	p.Y = 17
	b.Place(p)

	for y := 0; y < 20; y++ {
		for x := 0; x < 10; x++ {
			occupied := b.Occupied(x, y)
			colored := b.ColorAt(x, y) != core.ColorDefault
			if occupied != colored {
				t.Errorf("Cell (%d, %d): occupied=%v but colored=%v", x, y, occupied, colored)
			}
		}
	}
}

func TestColumnHeightsAndAggregate(t *testing.T) {
	b := NewBoard(10, 20)
	fillCell(b, 0, 19, core.ColorWhite) // Height 1
	fillCell(b, 2, 15, core.ColorWhite) // Height 5, with a gap below
	fillCell(b, 2, 19, core.ColorWhite)

	heights := b.ColumnHeights()
	want := []int{1, 0, 5, 0, 0, 0, 0, 0, 0, 0}
	for i, h := range heights {
		if h != want[i] {
			t.Errorf("ColumnHeights[%d] = %d, expected %d", i, h, want[i])
		}
	}
	if got := b.AggregateHeight(); got != 6 {
		t.Errorf("AggregateHeight() = %d, expected 6", got)
	}
}

func TestHoles(t *testing.T) {
	b := NewBoard(10, 20)
	if b.Holes() != 0 {
		t.Error("Empty board should have no holes")
	}

	// Column 2: block at 15, empty 16..18, block at 19 -> 3 holes
	fillCell(b, 2, 15, core.ColorWhite)
	fillCell(b, 2, 19, core.ColorWhite)
	if got := b.Holes(); got != 3 {
		t.Errorf("Holes() = %d, expected 3", got)
	}

	// A block with nothing above it is not a hole.
	fillCell(b, 5, 19, core.ColorWhite)
	if got := b.Holes(); got != 3 {
		t.Errorf("Holes() = %d after surface block, expected 3", got)
	}
}

func TestBumpiness(t *testing.T) {
	b := NewBoard(4, 10)
	fillCell(b, 0, 9, core.ColorWhite) // heights: 1, 0, 3, 0
	fillCell(b, 2, 7, core.ColorWhite)

	// |1-0| + |0-3| + |3-0| = 7
	if got := b.Bumpiness(); got != 7 {
		t.Errorf("Bumpiness() = %d, expected 7", got)
	}
}

func TestCompleteLinesCountsBeforeClearing(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 19)
	fillRow(b, 17)

	if got := b.CompleteLines(); got != 2 {
		t.Errorf("CompleteLines() = %d, expected 2", got)
	}
	// Counting must not clear.
	if got := b.CompleteLines(); got != 2 {
		t.Errorf("CompleteLines() second call = %d, expected 2", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard(10, 20)
	fillCell(b, 3, 10, core.ColorGreen)

	clone := b.Clone()
	fillCell(clone, 7, 5, core.ColorRed)

	if b.Occupied(7, 5) {
		t.Error("Mutating a clone must not affect the original")
	}
	if !clone.Occupied(3, 10) {
		t.Error("Clone should carry the original's cells")
	}
}

func TestHolesNeverDecreaseWithoutClear(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewBoard(10, 20)

	for i := 0; i < 200; i++ {
		p := NewPiece(rng)
		p.Rotation = rng.Intn(p.NumRotations())
		p.X = rng.Intn(12) - 2
		p.Y = 0
		if b.Collides(p) {
			continue
		}
		p.HardDrop(b)

		holesBefore := b.Holes()
		b.Place(p)
		holesAfter := b.Holes()

		if holesAfter < holesBefore {
			t.Fatalf("Placement alone reduced holes from %d to %d", holesBefore, holesAfter)
		}

		// Keep the board playable for the next iterations.
		b.ClearLines()
	}
}
