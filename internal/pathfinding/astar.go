// Package pathfinding finds least-cost routes over the hex overworld and the
// square battle grid with a single generic A* search.
package pathfinding

import (
	"container/heap"

	"github.com/zyedidia/generic/mapset"
)

// Edge is a step to a neighbor and what it costs to take it
type Edge[N comparable] struct {
	To   N
	Cost float64
}

// Graph is anything A* can search
type Graph[N comparable] interface {
	// Contains reports whether n is on the graph at all
	Contains(n N) bool
	// Passable reports whether n can be entered
	Passable(n N) bool
	// Neighbors lists enterable neighbors of n
	Neighbors(n N) []Edge[N]
	// Heuristic estimates the remaining cost from a to b
	Heuristic(a, b N) float64
}

type node[N comparable] struct {
	id     N
	g, f   float64
	parent *node[N]
	seq    int
	index  int
}

type openSet[N comparable] []*node[N]

func (o openSet[N]) Len() int { return len(o) }

func (o openSet[N]) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].seq < o[j].seq
}

func (o openSet[N]) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}

func (o *openSet[N]) Push(x any) {
	n := x.(*node[N])
	n.index = len(*o)
	*o = append(*o, n)
}

func (o *openSet[N]) Pop() any {
	old := *o
	n := old[len(old)-1]
	old[len(old)-1] = nil
	n.index = -1
	*o = old[:len(old)-1]
	return n
}

// FindPath returns the cheapest route from start to goal. The path excludes
// start and ends on goal. A goal that is off the graph or impassable fails
// immediately; start == goal succeeds with an empty path.
func FindPath[N comparable](g Graph[N], start, goal N) ([]N, bool) {
	if !g.Contains(goal) || !g.Passable(goal) {
		return nil, false
	}
	if start == goal {
		return []N{}, true
	}

	seq := 0
	first := &node[N]{id: start, f: g.Heuristic(start, goal), seq: seq}
	open := &openSet[N]{}
	heap.Push(open, first)
	inOpen := map[N]*node[N]{start: first}
	closed := mapset.New[N]()

	for open.Len() > 0 {
		current := heap.Pop(open).(*node[N])
		delete(inOpen, current.id)

		if current.id == goal {
			return walkBack(current), true
		}
		closed.Put(current.id)

		for _, edge := range g.Neighbors(current.id) {
			if closed.Has(edge.To) {
				continue
			}
			tentative := current.g + edge.Cost

			if existing, ok := inOpen[edge.To]; ok {
				if tentative >= existing.g {
					continue
				}
				existing.g = tentative
				existing.f = tentative + g.Heuristic(edge.To, goal)
				existing.parent = current
				heap.Fix(open, existing.index)
				continue
			}

			seq++
			n := &node[N]{
				id:     edge.To,
				g:      tentative,
				f:      tentative + g.Heuristic(edge.To, goal),
				parent: current,
				seq:    seq,
			}
			heap.Push(open, n)
			inOpen[edge.To] = n
		}
	}
	return nil, false
}

func walkBack[N comparable](end *node[N]) []N {
	var path []N
	for n := end; n.parent != nil; n = n.parent {
		path = append(path, n.id)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Cost sums the edge costs along path from start
func Cost[N comparable](g Graph[N], start N, path []N) float64 {
	total := 0.0
	prev := start
	for _, step := range path {
		for _, e := range g.Neighbors(prev) {
			if e.To == step {
				total += e.Cost
				break
			}
		}
		prev = step
	}
	return total
}
