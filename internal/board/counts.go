package board

// ComputeCounts returns, for every cell of a square hazard layer, the number
// of hazards among its up to 8 neighbors. The cell itself is never counted.
func ComputeCounts(hazard [][]bool) [][]int {
	size := len(hazard)
	counts := newLayer[int](size)
	for r := range hazard {
		for c := range hazard[r] {
			for _, n := range (Point{Row: r, Col: c}).Neighbors(size) {
				if hazard[n.Row][n.Col] {
					counts[r][c]++
				}
			}
		}
	}
	return counts
}
