package quest

import "math"

// ProgressPercent returns the share of completed cells, rounded to a whole
// percent. An empty board is 0%.
func ProgressPercent(b Board) int {
	if len(b) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(b.CompletedCount()) / float64(len(b))))
}
