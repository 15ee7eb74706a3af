package gridgraph

// Regions finds all contiguous regions of walkable cells under
// 4-connectivity. Regions are listed in row-major order of their first
// cell; each region lists its cells in BFS order from that cell.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Regions() [][]Coord {
	seen := make([]bool, g.rows*g.cols)
	var regions [][]Coord

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			i0 := g.index(r, c)
			if seen[i0] || !g.cells[r][c].Walkable() {
				continue
			}
			seen[i0] = true
			regions = append(regions, g.flood(i0, seen))
		}
	}

	return regions
}

// Connected reports whether a and b lie in the same walkable region.
func (g *Grid) Connected(a, b Coord) bool {
	ca, cb := g.At(a), g.At(b)
	if ca == nil || cb == nil || !ca.Walkable() || !cb.Walkable() {
		return false
	}
	seen := make([]bool, g.rows*g.cols)
	i0 := g.index(a.Row, a.Col)
	seen[i0] = true
	g.flood(i0, seen)

	return seen[g.index(b.Row, b.Col)]
}

// flood collects the walkable region containing index i0 (already marked seen).
func (g *Grid) flood(i0 int, seen []bool) []Coord {
	queue := []int{i0}
	var region []Coord
	for qi := 0; qi < len(queue); qi++ {
		u := g.coordinate(queue[qi])
		region = append(region, u)
		for _, d := range neighborOffsets {
			vr, vc := u.Row+d[0], u.Col+d[1]
			if !g.InBounds(vr, vc) || !g.cells[vr][vc].Walkable() {
				continue
			}
			vi := g.index(vr, vc)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return region
}
