package gridgraph

import (
	"container/list"
	"fmt"
)

// Carve opens the cheapest route from a to b, where entering an open cell
// costs 0 and entering a wall costs 1, and turns every wall on that route
// into Empty. It returns the route (a and b included) and the number of
// walls removed.
//
// Behavior:
//  1. Validate endpoints.
//  2. 0-1 BFS from a: cost-0 moves go to the deque front, cost-1 to the back.
//  3. Stop when b is popped.
//  4. Reconstruct via predecessors and clear walls along the route.
//
// Returns ErrOutOfBounds for bad endpoints. ErrNoPath cannot occur on a
// connected rectangle but is kept for degenerate inputs.
//
// Complexity: O(R·C) on average. Memory: O(R·C).
func (g *Grid) Carve(a, b Coord) ([]Coord, int, error) {
	if g.At(a) == nil || g.At(b) == nil {
		return nil, 0, fmt.Errorf("carve %v -> %v: %w", a, b, ErrOutOfBounds)
	}

	n := g.rows * g.cols
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := g.index(a.Row, a.Col), g.index(b.Row, b.Col)
	dist[src] = 0
	dq := list.New()
	dq.PushFront(src)

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			target = u
			break
		}
		uc := g.coordinate(u)
		for _, d := range neighborOffsets {
			vr, vc := uc.Row+d[0], uc.Col+d[1]
			if !g.InBounds(vr, vc) {
				continue
			}
			v := g.index(vr, vc)
			w := 0
			if !g.cells[vr][vc].Walkable() {
				w = 1
			}
			if nd := dist[u] + w; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if w == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}
	if target < 0 {
		return nil, 0, ErrNoPath
	}

	var path []Coord
	for at := target; at >= 0; at = prev[at] {
		path = append(path, g.coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for _, p := range path {
		if cell := g.At(p); cell.Type == Wall {
			cell.Type = Empty
		}
	}

	return path, dist[target], nil
}
