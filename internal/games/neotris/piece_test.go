package neotris

import (
	"math/rand"
	"testing"
)

func TestRotationCycleReturnsToStart(t *testing.T) {
	b := NewBoard(10, 20)

	for k := Kind(0); k < KindCount; k++ {
		p := NewPieceOfKind(k)
		p.Y = 5 // Away from walls and floor so no kicks trigger

		n := p.NumRotations()
		for i := 0; i < n; i++ {
			if !p.Rotate(b) {
				t.Fatalf("%s: rotation %d failed on an open board", k, i)
			}
		}

		if p.Rotation != 0 {
			t.Errorf("%s: after %d rotations Rotation = %d, expected 0", k, n, p.Rotation)
		}
		if p.X != spawnX || p.Y != 5 {
			t.Errorf("%s: full rotation cycle moved the anchor to (%d, %d)", k, p.X, p.Y)
		}
	}
}

func TestRotationCounts(t *testing.T) {
	counts := map[Kind]int{
		KindI: 4, KindJ: 4, KindL: 4, KindO: 1, KindS: 4, KindT: 4, KindZ: 4,
	}
	for k, want := range counts {
		if got := NewPieceOfKind(k).NumRotations(); got != want {
			t.Errorf("%s: NumRotations() = %d, expected %d", k, got, want)
		}
	}
}

func TestPieceWidth(t *testing.T) {
	tests := []struct {
		kind     Kind
		rotation int
		want     int
	}{
		{KindI, 0, 4},
		{KindI, 1, 1},
		{KindO, 0, 2},
		{KindT, 0, 3},
		{KindT, 1, 2},
	}
	for _, tt := range tests {
		p := NewPieceOfKind(tt.kind)
		p.Rotation = tt.rotation
		if got := p.Width(); got != tt.want {
			t.Errorf("%s rotation %d: Width() = %d, expected %d", tt.kind, tt.rotation, got, tt.want)
		}
	}
}

func TestWallKickAtRightWall(t *testing.T) {
	b := NewBoard(10, 20)

	// Vertical I occupies column x+2; at x=8 that is off-grid, the +1 kick
	// is worse, and the -1 kick resolves it.
	p := NewPieceOfKind(KindI)
	p.X = 8
	p.Y = 5

	if !p.Rotate(b) {
		t.Fatal("Rotation at the wall should succeed via a kick")
	}
	if p.Rotation != 1 {
		t.Errorf("Rotation = %d, expected 1", p.Rotation)
	}
	if p.X != 7 {
		t.Errorf("X = %d, expected kick to 7", p.X)
	}
	if b.Collides(p) {
		t.Error("Kicked piece should not collide")
	}
}

func TestRotateBlockedRevertsFully(t *testing.T) {
	b := NewBoard(10, 20)

	// Fill the whole board except the exact cells a spawn-rotation T
	// occupies at (3, 10). Every rotated orientation, kicked or not, then
	// overlaps something.
	free := map[[2]int]bool{
		{4, 10}: true, {3, 11}: true, {4, 11}: true, {5, 11}: true,
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 10; x++ {
			if !free[[2]int{x, y}] {
				fillCell(b, x, y, 1)
			}
		}
	}

	p := NewPieceOfKind(KindT)
	p.X = 3
	p.Y = 10
	if b.Collides(p) {
		t.Fatal("Setup is wrong: piece should fit in the carved pocket")
	}

	if p.Rotate(b) {
		t.Fatal("Rotation should be blocked")
	}
	if p.Rotation != 0 || p.X != 3 || p.Y != 10 {
		t.Errorf("Blocked rotation left piece at rotation=%d (%d, %d), expected full revert",
			p.Rotation, p.X, p.Y)
	}
	if b.Collides(p) {
		t.Error("Reverted piece should still fit")
	}
}

func TestMoveRollback(t *testing.T) {
	b := NewBoard(10, 20)

	p := NewPieceOfKind(KindO) // Leftmost occupied column is x+1
	p.X = -1
	p.Y = 5
	if p.MoveLeft(b) {
		t.Error("MoveLeft at the left wall should fail")
	}
	if p.X != -1 {
		t.Errorf("Failed MoveLeft changed X to %d", p.X)
	}

	p.X = 7 // Rightmost occupied column is x+2 = 9
	if p.MoveRight(b) {
		t.Error("MoveRight at the right wall should fail")
	}
	if p.X != 7 {
		t.Errorf("Failed MoveRight changed X to %d", p.X)
	}
}

func TestMoveDownTransitionsToLanded(t *testing.T) {
	b := NewBoard(10, 20)
	p := NewPieceOfKind(KindO) // Occupies bitmap rows 0 and 1

	p.Y = 18
	if p.State != Falling {
		t.Fatal("Fresh piece should be Falling")
	}
	if p.MoveDown(b) {
		t.Error("MoveDown at the floor should fail")
	}
	if p.Y != 18 {
		t.Errorf("Failed MoveDown changed Y to %d", p.Y)
	}
	if p.State != Landed {
		t.Errorf("State = %v after blocked descent, expected Landed", p.State)
	}
}

func TestHardDropRestsOnFloor(t *testing.T) {
	b := NewBoard(10, 20)
	p := NewPieceOfKind(KindO)

	p.HardDrop(b)

	// O occupies bitmap rows 0 and 1, so the lowest legal anchor is 18.
	if p.Y != 18 {
		t.Errorf("HardDrop left Y = %d, expected 18", p.Y)
	}
	if p.State != Landed {
		t.Error("HardDrop should end Landed")
	}
	if b.Collides(p) {
		t.Error("Dropped piece should not collide")
	}
}

func TestHardDropRestsOnStack(t *testing.T) {
	b := NewBoard(10, 20)
	fillCell(b, 4, 15, 1)

	p := NewPieceOfKind(KindO) // Columns 4 and 5
	p.HardDrop(b)

	// Lowest occupied bitmap row is 1, so anchor Y+1 = 14.
	if p.Y != 13 {
		t.Errorf("HardDrop onto a stack left Y = %d, expected 13", p.Y)
	}
}

func TestNewPieceIsDeterministicPerSeed(t *testing.T) {
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		pa := NewPiece(a)
		pb := NewPiece(b)
		if pa.Kind != pb.Kind {
			t.Fatalf("Piece %d diverged: %s vs %s", i, pa.Kind, pb.Kind)
		}
		if pa.X != spawnX || pa.Y != spawnY {
			t.Fatalf("Piece spawned at (%d, %d), expected (%d, %d)", pa.X, pa.Y, spawnX, spawnY)
		}
	}
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	p := NewPieceOfKind(KindT)
	c := p.Clone()
	c.X = 7
	c.Rotation = 2

	if p.X != spawnX || p.Rotation != 0 {
		t.Error("Mutating a clone must not affect the original piece")
	}
}
