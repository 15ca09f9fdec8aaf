package game

import "fmt"

// MazeDistancer precomputes shortest-path distances between every pair of
// open cells with one breadth-first search per cell.
type MazeDistancer struct {
	index map[Cell]int
	dist  [][]int // -1 marks unreachable pairs
}

func NewMazeDistancer(l *Layout) *MazeDistancer {
	cells := l.OpenCells()
	d := &MazeDistancer{
		index: make(map[Cell]int, len(cells)),
		dist:  make([][]int, len(cells)),
	}
	for i, c := range cells {
		d.index[c] = i
	}
	for i, c := range cells {
		d.dist[i] = d.bfs(l, c)
	}
	return d
}

func (d *MazeDistancer) bfs(l *Layout, source Cell) []int {
	dist := make([]int, len(d.index))
	for i := range dist {
		dist[i] = -1
	}
	dist[d.index[source]] = 0
	queue := []Cell{source}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, dir := range Actions {
			if dir == Stop {
				continue
			}
			n := c.Add(dir)
			if l.IsWall(n) {
				continue
			}
			if j := d.index[n]; dist[j] < 0 {
				dist[j] = dist[d.index[c]] + 1
				queue = append(queue, n)
			}
		}
	}
	return dist
}

func (d *MazeDistancer) Distance(a, b Cell) (int, error) {
	i, ok := d.index[a]
	if !ok {
		return 0, fmt.Errorf("cell %v is not open: %w", a, ErrUnreachable)
	}
	j, ok := d.index[b]
	if !ok {
		return 0, fmt.Errorf("cell %v is not open: %w", b, ErrUnreachable)
	}
	if d.dist[i][j] < 0 {
		return 0, fmt.Errorf("no path from %v to %v: %w", a, b, ErrUnreachable)
	}
	return d.dist[i][j], nil
}
