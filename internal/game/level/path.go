package level

// Reachable reports whether goal can be reached from start by orthogonal
// steps through non-obstacle cells. Each cell is enqueued at most once, so
// the search is O(W*H).
func Reachable(g *Grid, start, goal Coord) bool {
	if !g.Passable(start) || !g.Passable(goal) {
		return false
	}
	if start == goal {
		return true
	}

	visited := make([]bool, g.W*g.H)
	queue := make([]Coord, 0, g.W*g.H)
	queue = append(queue, start)
	visited[g.index(start)] = true

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, d := range Neighbors4 {
			next := cur.Add(d)
			if !g.Passable(next) || visited[g.index(next)] {
				continue
			}
			if next == goal {
				return true
			}
			visited[g.index(next)] = true
			queue = append(queue, next)
		}
	}
	return false
}
