package dungeon

import "container/heap"

// Pathfinding runs over a 4-connected grid: walls are impassable, every
// other tile costs 1 to enter. Ties between equal-distance frontier nodes
// are broken by the smaller row-major index, which makes the discovered
// path stable for a given map.

// neighborOffsets is the fixed expansion order: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Solve computes the shortest entrance-to-exit path with Dijkstra's
// algorithm and returns it, entrance and exit included. The path is also
// retained for HotPath.
func (d *Dungeon) Solve() ([]Coord, error) {
	if !d.hasEntrance {
		return nil, ErrNoEntrance
	}
	if !d.hasExit {
		return nil, ErrNoExit
	}

	rows, cols := d.Rows(), d.Cols()
	n := rows * cols
	const inf = int(^uint(0) >> 1)

	dist := make([]int, n)
	prev := make([]int32, n)
	for k := range dist {
		dist[k] = inf
		prev[k] = -1
	}

	start := d.entrance.Row*cols + d.entrance.Col
	goal := d.exit.Row*cols + d.exit.Col
	dist[start] = 0

	pq := &nodeQueue{{dist: 0, idx: start}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(node)
		if cur.dist > dist[cur.idx] {
			continue // stale entry
		}
		if cur.idx == goal {
			break
		}

		ci, cj := cur.idx/cols, cur.idx%cols
		for _, off := range neighborOffsets {
			ni, nj := ci+off[0], cj+off[1]
			if ni < 0 || ni >= rows || nj < 0 || nj >= cols {
				continue
			}
			t, _ := d.tiles.At(ni, nj)
			if !t.Passable() {
				continue
			}
			next := ni*cols + nj
			nd := cur.dist + 1
			if nd < dist[next] {
				dist[next] = nd
				prev[next] = int32(cur.idx)
				heap.Push(pq, node{dist: nd, idx: next})
			}
		}
	}

	if dist[goal] == inf {
		d.hotPath = nil
		return nil, ErrNoPath
	}

	// Walk the predecessor chain back from the exit.
	path := make([]Coord, 0, dist[goal]+1)
	for idx := goal; idx != -1; idx = int(prev[idx]) {
		path = append(path, At(idx/cols, idx%cols))
		if idx == start {
			break
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	d.hotPath = path
	return path, nil
}

// FindPathDijkstra reports whether a passable route joins the entrance and
// the exit. On success the route is available from HotPath.
func (d *Dungeon) FindPathDijkstra() bool {
	_, err := d.Solve()
	return err == nil
}

// HotPath returns a copy of the most recently discovered path, ordered from
// entrance to exit. It returns nil before any successful search and after a
// regeneration invalidated the previous result.
func (d *Dungeon) HotPath() []Coord {
	if d.hotPath == nil {
		return nil
	}
	out := make([]Coord, len(d.hotPath))
	copy(out, d.hotPath)
	return out
}

// node is a priority queue entry.
type node struct {
	dist int
	idx  int // row-major cell index, doubles as the tie-breaker
}

type nodeQueue []node

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(a, b int) bool {
	if q[a].dist != q[b].dist {
		return q[a].dist < q[b].dist
	}
	return q[a].idx < q[b].idx
}

func (q nodeQueue) Swap(a, b int) { q[a], q[b] = q[b], q[a] }

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(node)) }

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
