package engine

import (
	"sort"
)

// CollisionState tells whether two sprites started or stopped overlapping.
type CollisionState int

const (
	CollisionBegin CollisionState = iota
	CollisionEnd
)

// String returns a human-readable name for the state.
func (s CollisionState) String() string {
	if s == CollisionBegin {
		return "Begin"
	}
	return "End"
}

// CollisionPair holds the labels of two colliding sprites.
type CollisionPair [2]string

// NewCollisionPair returns a pair with its labels in sorted order.
func NewCollisionPair(a, b string) CollisionPair {
	if b < a {
		a, b = b, a
	}
	return CollisionPair{a, b}
}

// Contains returns true if either member equals label.
func (p CollisionPair) Contains(label string) bool {
	return p[0] == label || p[1] == label
}

// Either returns true if either member satisfies pred.
func (p CollisionPair) Either(pred func(label string) bool) bool {
	return pred(p[0]) || pred(p[1])
}

// CollisionEvent is queued by the engine and drained by game logic.
type CollisionEvent struct {
	State CollisionState
	Pair  CollisionPair
}

// collisionTracker remembers which pairs overlapped last frame so it can
// report only the transitions.
type collisionTracker struct {
	active map[CollisionPair]bool
}

func newCollisionTracker() *collisionTracker {
	return &collisionTracker{active: make(map[CollisionPair]bool)}
}

// detect compares every pair of collidable sprites and returns Begin events
// for new overlaps and End events for overlaps that stopped. Pairs whose
// sprites were removed are forgotten without an event. Events are ordered by
// pair so runs are deterministic.
func (t *collisionTracker) detect(sprites map[string]*Sprite) []CollisionEvent {
	labels := make([]string, 0, len(sprites))
	for label, s := range sprites {
		if s.Collision {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)

	current := make(map[CollisionPair]bool)
	var events []CollisionEvent
	for i := 0; i < len(labels); i++ {
		a := sprites[labels[i]].Collider()
		for j := i + 1; j < len(labels); j++ {
			if !a.Overlaps(sprites[labels[j]].Collider()) {
				continue
			}
			pair := CollisionPair{labels[i], labels[j]}
			current[pair] = true
			if !t.active[pair] {
				events = append(events, CollisionEvent{State: CollisionBegin, Pair: pair})
			}
		}
	}

	var ended []CollisionPair
	for pair := range t.active {
		if current[pair] {
			continue
		}
		_, okA := sprites[pair[0]]
		_, okB := sprites[pair[1]]
		if okA && okB {
			ended = append(ended, pair)
		}
	}
	sort.Slice(ended, func(i, j int) bool {
		if ended[i][0] != ended[j][0] {
			return ended[i][0] < ended[j][0]
		}
		return ended[i][1] < ended[j][1]
	})
	for _, pair := range ended {
		events = append(events, CollisionEvent{State: CollisionEnd, Pair: pair})
	}

	t.active = current
	return events
}
