package sample

import (
	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/internal/logging"
)

// DefaultCapacity is the number of series a Sampler keeps.
const DefaultCapacity = 64

type key struct {
	graph string
	x     axis.Axis
}

// Stats reports cache effectiveness.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Sampler caches Series per graph name and X axis state with LRU eviction.
//
// A Sampler is not safe for concurrent use; like the axes it serves, it
// belongs to the event-dispatch goroutine.
type Sampler struct {
	capacity int
	entries  map[key]*lruNode
	lru      lruList

	hits, misses, evictions uint64
}

// NewSampler returns a sampler holding up to capacity series.
// If capacity <= 0, DefaultCapacity is used.
func NewSampler(capacity int) *Sampler {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Sampler{
		capacity: capacity,
		entries:  make(map[key]*lruNode),
	}
}

// Sample returns the cached series for graph over x, evaluating f on a miss.
// Callers must not modify the returned slices.
func (s *Sampler) Sample(graph string, f Func, x axis.Axis) Series {
	k := key{graph: graph, x: x}
	if n, ok := s.entries[k]; ok {
		s.hits++
		s.lru.moveToFront(n)
		return n.series
	}
	s.misses++

	series := Sample(f, x)
	for s.lru.len >= s.capacity {
		oldest := s.lru.removeOldest()
		delete(s.entries, oldest.key)
		s.evictions++
		logging.Logger().Debug("sample: evicted series", "graph", oldest.key.graph)
	}
	s.entries[k] = s.lru.pushFront(k, series)
	return series
}

// Forget drops every cached series of graph, e.g. after its function changed.
func (s *Sampler) Forget(graph string) {
	for k, n := range s.entries {
		if k.graph == graph {
			s.lru.remove(n)
			delete(s.entries, k)
		}
	}
}

// Clear removes all entries.
func (s *Sampler) Clear() {
	s.entries = make(map[key]*lruNode)
	s.lru = lruList{}
}

// Len returns the number of cached series.
func (s *Sampler) Len() int { return len(s.entries) }

// Stats returns current cache statistics.
func (s *Sampler) Stats() Stats {
	return Stats{
		Len:       len(s.entries),
		Capacity:  s.capacity,
		Hits:      s.hits,
		Misses:    s.misses,
		Evictions: s.evictions,
	}
}

// lruNode is an entry of the recency list; the front is most recent.
type lruNode struct {
	key        key
	series     Series
	prev, next *lruNode
}

type lruList struct {
	head, tail *lruNode
	len        int
}

func (l *lruList) pushFront(k key, s Series) *lruNode {
	n := &lruNode{key: k, series: s, next: l.head}
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
	return n
}

func (l *lruList) remove(n *lruNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--
}

func (l *lruList) moveToFront(n *lruNode) {
	if l.head == n {
		return
	}
	l.remove(n)
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
}

func (l *lruList) removeOldest() *lruNode {
	n := l.tail
	if n != nil {
		l.remove(n)
	}
	return n
}
