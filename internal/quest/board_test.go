package quest

import (
	"math/rand"
	"testing"
)

func TestGenerate(t *testing.T) {
	for _, size := range GridSizes {
		b := Generate(size)
		if len(b) != size*size {
			t.Fatalf("Generate(%d) has %d cells, want %d", size, len(b), size*size)
		}
		if b.Size() != size {
			t.Errorf("Generate(%d).Size() = %d", size, b.Size())
		}
		for i, c := range b {
			if c.ID != i || c.Text != "" || c.Completed || c.Icon != IconNone {
				t.Errorf("Generate(%d)[%d] = %+v, want blank cell with id %d", size, i, c, i)
			}
		}
	}
}

func TestUpdateCellKeepsIconWhenEmpty(t *testing.T) {
	b := Generate(3)

	b.UpdateCell(4, "Run 5k", IconShoe)
	if b[4].Text != "Run 5k" || b[4].Icon != IconShoe {
		t.Fatalf("UpdateCell set %+v", b[4])
	}

	b.UpdateCell(4, "Run 10k", IconNone)
	if b[4].Text != "Run 10k" {
		t.Errorf("Expected text replaced, got %q", b[4].Text)
	}
	if b[4].Icon != IconShoe {
		t.Errorf("Expected icon kept as Shoe, got %q", b[4].Icon)
	}

	b.UpdateCell(4, "", IconNone)
	if b[4].Text != "" {
		t.Errorf("Expected text cleared unconditionally, got %q", b[4].Text)
	}
}

func TestUpdateCellOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for out-of-range index")
		}
	}()
	Generate(3).UpdateCell(9, "x", IconNone)
}

func TestToggleCompletedBlankCell(t *testing.T) {
	b := Generate(3)
	if b.ToggleCompleted(0) {
		t.Error("Blank cell should not toggle")
	}
	if b[0].Completed {
		t.Error("Blank cell must never be completed")
	}

	b.UpdateCell(0, "   ", IconNone)
	if b.ToggleCompleted(0) {
		t.Error("Whitespace-only cell should not toggle")
	}

	b.UpdateCell(0, "Read", IconNone)
	if !b.ToggleCompleted(0) || !b[0].Completed {
		t.Error("Filled cell should toggle on")
	}
	if !b.ToggleCompleted(0) || b[0].Completed {
		t.Error("Filled cell should toggle off")
	}
}

func TestShuffleMovesWholeCells(t *testing.T) {
	b := Generate(4)
	for i := range b {
		b.UpdateCell(i, string(rune('a'+i)), IconNone)
	}

	b.Shuffle(rand.New(rand.NewSource(7)))

	if len(b) != 16 {
		t.Fatalf("Shuffle changed length to %d", len(b))
	}
	moved := false
	seen := make(map[int]bool)
	for i, c := range b {
		// Content and id stay paired.
		if c.Text != string(rune('a'+c.ID)) {
			t.Errorf("Cell id %d carries text %q", c.ID, c.Text)
		}
		if c.ID != i {
			moved = true
		}
		seen[c.ID] = true
	}
	if len(seen) != 16 {
		t.Errorf("Shuffle lost or duplicated cells: %v", seen)
	}
	if !moved {
		t.Error("Expected at least one cell to move with seed 7")
	}
}

func TestIsFullyFilled(t *testing.T) {
	b := Generate(3)
	if b.IsFullyFilled() {
		t.Error("Blank board should not be fully filled")
	}

	for i := range b {
		b.UpdateCell(i, "goal", IconNone)
	}
	if !b.IsFullyFilled() {
		t.Error("Board with all goals should be fully filled")
	}

	b.UpdateCell(5, " \t ", IconNone)
	if b.IsFullyFilled() {
		t.Error("Whitespace-only cell should break fully filled")
	}

	if (Board{}).IsFullyFilled() {
		t.Error("Empty board should not be fully filled")
	}
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		completed []int
		all       bool
		want      int
	}{
		{"empty board", 0, nil, false, 0},
		{"nothing done", 3, nil, false, 0},
		{"one of nine", 3, []int{0}, false, 11},
		{"two of three rounds up", 3, []int{0, 1, 2, 3, 4, 5}, false, 67},
		{"half of sixteen", 4, []int{0, 1, 2, 3, 4, 5, 6, 7}, false, 50},
		{"all done", 5, nil, true, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Generate(tt.size)
			for _, i := range tt.completed {
				b[i].Completed = true
			}
			if tt.all {
				for i := range b {
					b[i].Completed = true
				}
			}
			if got := ProgressPercent(b); got != tt.want {
				t.Errorf("ProgressPercent() = %d, want %d", got, tt.want)
			}
		})
	}
}
