package solver

import (
	"container/heap"

	"github.com/aretw0/hedge/pkg/domain"
)

// frontierNode is one candidate on a priority frontier. cost is the
// cost-so-far (g); priority is what the heap orders by (g for Dijkstra,
// g+h for A*). seq breaks priority ties by insertion order so exploration
// stays stable.
type frontierNode struct {
	point    domain.Point
	cost     int
	priority int
	seq      int
}

// frontier is a min-heap of frontierNodes implementing container/heap.
type frontier struct {
	nodes []frontierNode
	seq   int
}

func (f *frontier) Len() int { return len(f.nodes) }

func (f *frontier) Less(i, j int) bool {
	if f.nodes[i].priority != f.nodes[j].priority {
		return f.nodes[i].priority < f.nodes[j].priority
	}
	return f.nodes[i].seq < f.nodes[j].seq
}

func (f *frontier) Swap(i, j int) { f.nodes[i], f.nodes[j] = f.nodes[j], f.nodes[i] }

func (f *frontier) Push(x any) { f.nodes = append(f.nodes, x.(frontierNode)) }

func (f *frontier) Pop() any {
	old := f.nodes
	n := len(old)
	item := old[n-1]
	f.nodes = old[:n-1]
	return item
}

// push enqueues a candidate with the next sequence number.
func (f *frontier) push(p domain.Point, cost, priority int) {
	f.seq++
	heap.Push(f, frontierNode{point: p, cost: cost, priority: priority, seq: f.seq})
}

// pop dequeues the lowest-priority candidate.
func (f *frontier) pop() frontierNode {
	return heap.Pop(f).(frontierNode)
}
