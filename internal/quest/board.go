package quest

import (
	"fmt"
	"math/rand"
	"strings"
)

// Cell is a single goal slot on the board.
type Cell struct {
	// ID is the cell's linear index at generation time. It travels with the
	// cell on Shuffle, so it is not a position.
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Icon      Icon   `json:"icon"`
}

// Filled reports whether the cell has non-blank goal text.
func (c Cell) Filled() bool {
	return strings.TrimSpace(c.Text) != ""
}

// Board is the row-major sequence of cells. The cell at row r, column c
// lives at index r*size + c, and len(board) is always size*size.
type Board []Cell

// Generate creates an empty board for the given grid size.
func Generate(gridSize int) Board {
	if gridSize <= 0 {
		return Board{}
	}
	b := make(Board, gridSize*gridSize)
	for i := range b {
		b[i] = Cell{ID: i}
	}
	return b
}

// Size returns the grid dimension of the board (0 for an empty board).
func (b Board) Size() int {
	n := len(b)
	for s := 1; s*s <= n; s++ {
		if s*s == n {
			return s
		}
	}
	return 0
}

// At returns the cell at row r, column c.
func (b Board) At(r, c int) Cell {
	size := b.Size()
	return b[b.mustIndex(r*size+c)]
}

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	if b == nil {
		return nil
	}
	out := make(Board, len(b))
	copy(out, b)
	return out
}

// UpdateCell replaces the cell text. The icon is replaced only when a
// non-empty icon is given; otherwise the existing icon is kept.
func (b Board) UpdateCell(index int, text string, icon Icon) {
	i := b.mustIndex(index)
	b[i].Text = text
	if icon != IconNone {
		b[i].Icon = icon
	}
}

// ToggleCompleted flips the completed flag of a filled cell.
// Blank cells can never be completed; it returns false for them.
func (b Board) ToggleCompleted(index int) bool {
	i := b.mustIndex(index)
	if !b[i].Filled() {
		return false
	}
	b[i].Completed = !b[i].Completed
	return true
}

// Shuffle permutes whole cells in place using Fisher-Yates.
func (b Board) Shuffle(rng *rand.Rand) {
	for i := len(b) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		b[i], b[j] = b[j], b[i]
	}
}

// IsFullyFilled reports whether every cell has non-blank text.
// An empty board is never fully filled.
func (b Board) IsFullyFilled() bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if !c.Filled() {
			return false
		}
	}
	return true
}

// CompletedCount returns the number of completed cells.
func (b Board) CompletedCount() int {
	n := 0
	for _, c := range b {
		if c.Completed {
			n++
		}
	}
	return n
}

// mustIndex panics on an out-of-range index. Callers own index validity.
func (b Board) mustIndex(index int) int {
	if index < 0 || index >= len(b) {
		panic(fmt.Sprintf("quest: cell index %d out of range [0,%d)", index, len(b)))
	}
	return index
}
