package quest

import "fmt"

// Line identifies a row, column or diagonal of the board.
type Line string

const (
	LineDiagMain Line = "diag-main" // top-left to bottom-right
	LineDiagAnti Line = "diag-anti" // top-right to bottom-left
)

// RowLine returns the identifier of row i.
func RowLine(i int) Line { return Line(fmt.Sprintf("row-%d", i)) }

// ColLine returns the identifier of column i.
func ColLine(i int) Line { return Line(fmt.Sprintf("col-%d", i)) }

// MaxLines returns how many lines a board of the given size has.
func MaxLines(gridSize int) int {
	if gridSize <= 0 {
		return 0
	}
	return 2*gridSize + 2
}

// DetectLines returns every fully completed line, rows first, then columns,
// then the main and anti diagonals. Cells missing from a short board count
// as not completed.
func DetectLines(b Board, gridSize int) []Line {
	if gridSize <= 0 {
		return nil
	}

	done := func(idx int) bool {
		return idx >= 0 && idx < len(b) && b[idx].Completed
	}

	var lines []Line

	for r := 0; r < gridSize; r++ {
		full := true
		for c := 0; c < gridSize && full; c++ {
			full = done(r*gridSize + c)
		}
		if full {
			lines = append(lines, RowLine(r))
		}
	}

	for c := 0; c < gridSize; c++ {
		full := true
		for r := 0; r < gridSize && full; r++ {
			full = done(c + r*gridSize)
		}
		if full {
			lines = append(lines, ColLine(c))
		}
	}

	main, anti := true, true
	for i := 0; i < gridSize; i++ {
		main = main && done(i*gridSize+i)
		anti = anti && done(i*gridSize+(gridSize-1-i))
	}
	if main {
		lines = append(lines, LineDiagMain)
	}
	if anti {
		lines = append(lines, LineDiagAnti)
	}

	return lines
}

// LineCells returns the board indices that make up a line, or nil if the
// identifier does not belong to a board of this size.
func LineCells(line Line, gridSize int) []int {
	var n int
	switch {
	case line == LineDiagMain:
		out := make([]int, gridSize)
		for i := range out {
			out[i] = i*gridSize + i
		}
		return out
	case line == LineDiagAnti:
		out := make([]int, gridSize)
		for i := range out {
			out[i] = i*gridSize + (gridSize - 1 - i)
		}
		return out
	}

	if _, err := fmt.Sscanf(string(line), "row-%d", &n); err == nil && n >= 0 && n < gridSize {
		out := make([]int, gridSize)
		for c := range out {
			out[c] = n*gridSize + c
		}
		return out
	}
	if _, err := fmt.Sscanf(string(line), "col-%d", &n); err == nil && n >= 0 && n < gridSize {
		out := make([]int, gridSize)
		for r := range out {
			out[r] = n + r*gridSize
		}
		return out
	}
	return nil
}
