package pathfind

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// openItem is a cell waiting for expansion. F is copied in because a cell's
// cost never changes once it is open.
type openItem struct {
	index int
	f     int
	seq   int
}

// openSet orders candidates by ascending F, then by discovery order.
type openSet struct {
	queue   *heap.Heap[openItem]
	members mapset.Set[int]
	nextSeq int
}

func newOpenSet() *openSet {
	return &openSet{
		queue: heap.New[openItem](func(a, b openItem) bool {
			if a.f != b.f {
				return a.f < b.f
			}
			return a.seq < b.seq
		}),
		members: mapset.New[int](),
	}
}

func (o *openSet) push(index, f int) {
	o.queue.Push(openItem{index: index, f: f, seq: o.nextSeq})
	o.members.Put(index)
	o.nextSeq++
}

func (o *openSet) peek() (openItem, bool) {
	return o.queue.Peek()
}

func (o *openSet) pop() (openItem, bool) {
	item, ok := o.queue.Pop()
	if ok {
		o.members.Remove(item.index)
	}
	return item, ok
}

func (o *openSet) has(index int) bool {
	return o.members.Has(index)
}

func (o *openSet) len() int {
	return o.queue.Size()
}
