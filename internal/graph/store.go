package graph

import (
	"cmp"
	"slices"
	"time"
)

// IDAllocator hands out box ids. Ids are never reused, even after the box
// they named is deleted.
type IDAllocator struct {
	next int
}

func (a *IDAllocator) Next() int {
	id := a.next
	a.next++
	return id
}

// EdgeKey identifies a directed connection: Parent is the box whose top
// strip was used, Child the box whose bottom strip was used.
type EdgeKey struct {
	Parent int
	Child  int
}

// Connection is a committed edge.
type Connection struct {
	EdgeKey
}

// EdgeChange reports what a toggle did to the edge set.
type EdgeChange int

const (
	EdgeUnchanged EdgeChange = iota
	EdgeAdded
	EdgeRemoved
)

func (c EdgeChange) String() string {
	switch c {
	case EdgeAdded:
		return "added"
	case EdgeRemoved:
		return "removed"
	default:
		return "unchanged"
	}
}

// Store holds the boxes in z-order (last is topmost) and the edge set.
type Store struct {
	ids     IDAllocator
	metrics Metrics
	measure TextMeasurer
	now     Clock

	boxes []*Box
	edges map[EdgeKey]Connection
}

// NewStore returns an empty store whose boxes use the given geometry and
// text metrics.
func NewStore(metrics Metrics, measure TextMeasurer, now Clock) *Store {
	if measure == nil {
		measure = FixedAdvance(0.5)
	}
	if now == nil {
		now = time.Now
	}
	return &Store{
		metrics: metrics.withDefaults(),
		measure: measure,
		now:     now,
		edges:   make(map[EdgeKey]Connection),
	}
}

// Metrics returns the geometry every box in the store shares.
func (s *Store) Metrics() Metrics {
	return s.metrics
}

// NewBox creates a box at pos and places it on top of the z-order.
func (s *Store) NewBox(kind Kind, pos Point) *Box {
	b := newBox(s.ids.Next(), kind, pos, s.metrics, s.measure, s.now)
	s.boxes = append(s.boxes, b)
	return b
}

// Boxes returns a snapshot of the boxes in z-order, bottom first.
func (s *Store) Boxes() []*Box {
	return slices.Clone(s.boxes)
}

func (s *Store) Len() int {
	return len(s.boxes)
}

// Box looks up a box by id.
func (s *Store) Box(id int) (*Box, bool) {
	if i := s.index(id); i >= 0 {
		return s.boxes[i], true
	}
	return nil, false
}

// Raise moves the box to the top of the z-order.
func (s *Store) Raise(id int) {
	i := s.index(id)
	if i < 0 || i == len(s.boxes)-1 {
		return
	}
	b := s.boxes[i]
	s.boxes = append(slices.Delete(s.boxes, i, i+1), b)
}

// Remove deletes the box and every edge that references it. It returns the
// number of edges dropped.
func (s *Store) Remove(id int) (int, bool) {
	i := s.index(id)
	if i < 0 {
		return 0, false
	}
	s.boxes = slices.Delete(s.boxes, i, i+1)
	dropped := 0
	for k := range s.edges {
		if k.Parent == id || k.Child == id {
			delete(s.edges, k)
			dropped++
		}
	}
	return dropped, true
}

// Toggle inserts key if absent and removes it if present. Self-loops and
// keys naming unknown boxes are ignored.
func (s *Store) Toggle(key EdgeKey) EdgeChange {
	if key.Parent == key.Child {
		return EdgeUnchanged
	}
	if s.index(key.Parent) < 0 || s.index(key.Child) < 0 {
		return EdgeUnchanged
	}
	if _, ok := s.edges[key]; ok {
		delete(s.edges, key)
		return EdgeRemoved
	}
	s.edges[key] = Connection{EdgeKey: key}
	return EdgeAdded
}

func (s *Store) HasEdge(key EdgeKey) bool {
	_, ok := s.edges[key]
	return ok
}

// Edges returns the committed edges ordered by parent then child.
func (s *Store) Edges() []Connection {
	out := make([]Connection, 0, len(s.edges))
	for _, c := range s.edges {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Connection) int {
		if c := cmp.Compare(a.Parent, b.Parent); c != 0 {
			return c
		}
		return cmp.Compare(a.Child, b.Child)
	})
	return out
}

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.boxes, func(b *Box) bool { return b.ID == id })
}
