package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/goblocks/util/collections"
)

type NeighborGetter func(Point) []Point

// flood returns every point reachable from starts through getNeighbors,
// starts included. Points are expanded breadth-first, each exactly once.
func flood(starts []Point, getNeighbors NeighborGetter) collections.Set[Point] {
	visited := make(collections.Set[Point])
	var visitQueue deque.Deque

	enqueue := func(p Point) {
		// Don't visit, if already visited
		if visited.Contains(p) {
			return
		}
		visited.Add(p)
		visitQueue.PushBack(p)
	}

	for _, start := range starts {
		enqueue(start)
	}

	for visitQueue.Len() > 0 {
		p := visitQueue.PopFront().(Point)
		for _, neighbor := range getNeighbors(p) {
			enqueue(neighbor)
		}
	}

	return visited
}

var orthogonal = [...]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

func (board *Board) emptyNeighbors(p Point) []Point {
	neighbors := make([]Point, 0, len(orthogonal))
	for _, offset := range orthogonal {
		neighbor := p.Add(offset)
		if board.Inside(neighbor) && board.grid[neighbor.Y][neighbor.X] == 0 {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

// Holes returns the empty cells that cannot be reached from the top row by
// stepping between orthogonally adjacent empty cells.
func (board *Board) Holes() []Point {
	var starts []Point
	for x := 0; x < board.width; x++ {
		if board.grid[0][x] == 0 {
			starts = append(starts, Point{x, 0})
		}
	}

	reachable := flood(starts, board.emptyNeighbors)

	var holes []Point
	for y, row := range board.grid {
		for x, value := range row {
			p := Point{x, y}
			if value == 0 && !reachable.Contains(p) {
				holes = append(holes, p)
			}
		}
	}
	return holes
}
