package pathfind

import "warehousebots/internal/domain/grid"

type searchNode struct {
	pos    grid.Position
	g      int
	f      int
	seq    uint64
	index  int
	parent *searchNode
}

// searchQueue orders by f, then by discovery sequence so equal-f nodes leave
// the frontier in the order they entered it.
type searchQueue []*searchNode

func (q searchQueue) Len() int { return len(q) }

func (q searchQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q searchQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *searchQueue) Push(x any) {
	n := len(*q)
	item := x.(*searchNode)
	item.index = n
	*q = append(*q, item)
}

func (q *searchQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}
