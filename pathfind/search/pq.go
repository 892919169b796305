package search

// openItem is one open-set entry: a cell's arena index with the F cost it
// carried when pushed. Entries are never updated in place; relaxing a cell
// pushes a fresh entry and the stale one is skipped on pop.
type openItem struct {
	index int
	f     int
}

// openSet is a min-heap over F cost implementing heap.Interface.
type openSet []openItem

func (q openSet) Len() int           { return len(q) }
func (q openSet) Less(i, j int) bool { return q[i].f < q[j].f }
func (q openSet) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *openSet) Push(x any) {
	*q = append(*q, x.(openItem))
}

func (q *openSet) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
