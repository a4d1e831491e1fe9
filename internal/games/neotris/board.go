package neotris

import (
	"github.com/teodorv/neotris/internal/core"
)

// DefaultBoardWidth and DefaultBoardHeight are the conventional well
// dimensions. The board itself is fully parameterizable.
const (
	DefaultBoardWidth  = 10
	DefaultBoardHeight = 20
)

// Board is the game well: a width×height grid of cell occupancy plus a
// parallel grid of cell colors, kept in lock-step (a cell has a color iff
// it is occupied). The board is mutated only through Place and ClearLines;
// everything else is a read-only query.
type Board struct {
	width  int
	height int
	cells  []bool
	colors []core.Color
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
		colors: make([]core.Color, width*height),
	}
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b *Board) Height() int {
	return b.height
}

func (b *Board) idx(x, y int) int {
	return y*b.width + x
}

// Occupied reports whether the cell at (x, y) is filled.
// Out-of-bounds coordinates report false.
func (b *Board) Occupied(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.cells[b.idx(x, y)]
}

// ColorAt returns the color of the cell at (x, y).
// Unoccupied or out-of-bounds cells return the default color.
func (b *Board) ColorAt(x, y int) core.Color {
	if !b.Occupied(x, y) {
		return core.ColorDefault
	}
	return b.colors[b.idx(x, y)]
}

// Collides reports whether the piece, at its current rotation and anchor,
// overlaps an occupied cell or leaves the well horizontally or through the
// bottom. Rows above the visible grid (negative y) never collide on their
// own; pieces are allowed to spawn partially above the well.
// Collides never mutates the board or the piece.
func (b *Board) Collides(p *Piece) bool {
	shape := p.Shape()
	for dy, row := range shape {
		for dx, ch := range row {
			if ch != shapeFilled {
				continue
			}
			x := p.X + dx
			y := p.Y + dy

			if x < 0 || x >= b.width || y >= b.height {
				return true
			}
			if y >= 0 && b.cells[b.idx(x, y)] {
				return true
			}
		}
	}
	return false
}

// Place bakes the piece into the board, writing occupancy and color for
// every in-bounds cell. Cells projecting above row 0 are silently dropped,
// consistent with spawning above the visible well.
func (b *Board) Place(p *Piece) {
	shape := p.Shape()
	for dy, row := range shape {
		for dx, ch := range row {
			if ch != shapeFilled {
				continue
			}
			x := p.X + dx
			y := p.Y + dy

			if x >= 0 && x < b.width && y >= 0 && y < b.height {
				b.cells[b.idx(x, y)] = true
				b.colors[b.idx(x, y)] = p.Color
			}
		}
	}
}

// rowFull reports whether every cell in row y is occupied.
func (b *Board) rowFull(y int) bool {
	for x := 0; x < b.width; x++ {
		if !b.cells[b.idx(x, y)] {
			return false
		}
	}
	return true
}

// ClearLines removes every complete row and returns how many were removed.
// Rows are scanned bottom-to-top; when a row clears, everything above it
// shifts down one and the same row index is re-checked, since a new row
// slides into it. Relative order of non-cleared rows is preserved.
func (b *Board) ClearLines() int {
	cleared := 0
	y := b.height - 1

	for y >= 0 {
		if b.rowFull(y) {
			for y2 := y; y2 > 0; y2-- {
				copy(b.cells[b.idx(0, y2):b.idx(0, y2)+b.width], b.cells[b.idx(0, y2-1):b.idx(0, y2-1)+b.width])
				copy(b.colors[b.idx(0, y2):b.idx(0, y2)+b.width], b.colors[b.idx(0, y2-1):b.idx(0, y2-1)+b.width])
			}
			for x := 0; x < b.width; x++ {
				b.cells[b.idx(x, 0)] = false
				b.colors[b.idx(x, 0)] = core.ColorDefault
			}
			cleared++
		} else {
			y--
		}
	}

	return cleared
}

// CompleteLines counts rows that are currently full, without clearing them.
// The move evaluator scores hypothetical boards before clearing.
func (b *Board) CompleteLines() int {
	count := 0
	for y := 0; y < b.height; y++ {
		if b.rowFull(y) {
			count++
		}
	}
	return count
}

// ColumnHeights returns, per column, the distance from the floor to the
// topmost occupied cell (0 for an empty column).
func (b *Board) ColumnHeights() []int {
	heights := make([]int, b.width)
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			if b.cells[b.idx(x, y)] {
				heights[x] = b.height - y
				break
			}
		}
	}
	return heights
}

// AggregateHeight returns the sum of all column heights.
func (b *Board) AggregateHeight() int {
	total := 0
	for _, h := range b.ColumnHeights() {
		total += h
	}
	return total
}

// Holes counts empty cells that sit strictly below the topmost occupied
// cell of their column. A hole requires a covering block above it.
func (b *Board) Holes() int {
	holes := 0
	for x := 0; x < b.width; x++ {
		covered := false
		for y := 0; y < b.height; y++ {
			if b.cells[b.idx(x, y)] {
				covered = true
			} else if covered {
				holes++
			}
		}
	}
	return holes
}

// Bumpiness returns the sum of absolute differences between adjacent
// column heights.
func (b *Board) Bumpiness() int {
	heights := b.ColumnHeights()
	total := 0
	for i := 0; i < len(heights)-1; i++ {
		total += core.Abs(heights[i] - heights[i+1])
	}
	return total
}

// Clone returns an independent scratch copy of the board. The placement
// search places pieces on clones so the live board is never aliased by
// hypothetical state.
func (b *Board) Clone() *Board {
	clone := NewBoard(b.width, b.height)
	copy(clone.cells, b.cells)
	copy(clone.colors, b.colors)
	return clone
}
