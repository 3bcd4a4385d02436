package tilemap

import (
	"container/heap"
)

var neighborDirections = []Coord{
	{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1},
}

// AStar находит кратчайший путь по проходимым клеткам от start до goal.
// Возвращает nil, если пути нет.
func AStar(start, goal Coord, m *Map) []Coord {
	pq := &PriorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &Node{Coord: start, Cost: 0, Parent: nil})
	costSoFar := make(map[Coord]int)
	costSoFar[start] = 0
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.Coord == goal {
			return reconstructPath(current)
		}
		for _, d := range neighborDirections {
			neighbor := Coord{X: current.Coord.X + d.X, Y: current.Coord.Y + d.Y}
			if !m.IsPassable(neighbor) {
				continue
			}
			newCost := costSoFar[current.Coord] + 1
			if old, exists := costSoFar[neighbor]; !exists || newCost < old {
				costSoFar[neighbor] = newCost
				priority := newCost + manhattan(neighbor, goal)
				heap.Push(pq, &Node{Coord: neighbor, Cost: priority, Parent: current})
			}
		}
	}
	return nil
}

// PriorityQueue для A*
type PriorityQueue []*Node

type Node struct {
	Coord  Coord
	Cost   int
	Parent *Node
}

func (pq PriorityQueue) Len() int           { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool { return pq[i].Cost < pq[j].Cost }
func (pq PriorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) []Coord {
	path := []Coord{}
	for node != nil {
		path = append([]Coord{node.Coord}, path...)
		node = node.Parent
	}
	return path
}

func manhattan(a, b Coord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
