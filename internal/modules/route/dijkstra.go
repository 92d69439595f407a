// README: Uninformed label-setting shortest path (Dijkstra).
package route

import (
	"container/heap"
	"math"
)

// Dijkstra computes the shortest path between two airport codes. Weights
// must be non-negative; use BellmanFord when they are not.
func Dijkstra(g *Graph, from, to string) (RouteResult, error) {
	if !g.hasNode(from) || !g.hasNode(to) {
		return RouteResult{}, ErrNoRoute
	}
	if from == to {
		return singleNode(from), nil
	}

	dist := make(map[string]float64, len(g.Codes()))
	for _, code := range g.Codes() {
		dist[code] = math.Inf(1)
	}
	dist[from] = 0

	prev := make(map[string]string)
	visited := make(map[string]bool)

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{code: from, priority: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		current := item.code
		if visited[current] {
			continue
		}
		visited[current] = true
		if current == to {
			break
		}

		for _, e := range g.Neighbors(current) {
			if visited[e.To] {
				continue
			}
			tentative := dist[current] + e.DistanceKm
			if tentative < dist[e.To] {
				dist[e.To] = tentative
				prev[e.To] = current
				heap.Push(pq, &pqItem{code: e.To, priority: tentative})
			}
		}
	}

	if math.IsInf(dist[to], 1) {
		return RouteResult{}, ErrNoRoute
	}
	return buildFromPredecessors(g, prev, from, to)
}

type pqItem struct {
	code     string
	priority float64
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].priority < pq[j].priority }
func (pq priorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(*pqItem))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}
