package lift

import (
	"fmt"
	"slices"
)

// PassQueueSet holds one car's stops split by the sweep they belong to.
// Current is the sweep in Dir, Next the sweep after one reversal, NextNext
// the sweep after two. A floor may sit in more than one tier: InsertNextNext
// seeds Next with the same floor, and a stop is needed on each of those sweeps.
type PassQueueSet struct {
	Dir      Direction
	Current  []Floor
	Next     []Floor
	NextNext []Floor
}

// All cars start at the bottom, so they start out indicating up.
func NewPassQueueSet() *PassQueueSet {
	return &PassQueueSet{
		Dir:      UP,
		Current:  []Floor{},
		Next:     []Floor{},
		NextNext: []Floor{},
	}
}

func (q *PassQueueSet) InsertCurrent(floor Floor) {
	q.Current = appendUnique(q.Current, floor)
	q.Sort()
}

func (q *PassQueueSet) InsertNext(floor Floor) {
	q.Next = appendUnique(q.Next, floor)
	q.Sort()
}

// InsertNextNext also seeds an empty Next with floor, so the car turns to the
// intermediate direction and picks up matching requests on the way. This can
// cost one redundant stop.
// FUTURE: mark the seeded entry and drop it if a real Next stop arrives.
func (q *PassQueueSet) InsertNextNext(floor Floor) {
	if len(q.Next) == 0 {
		q.Next = append(q.Next, floor)
	}
	q.NextNext = appendUnique(q.NextNext, floor)
	q.Sort()
}

// Sort orders Current toward Dir, Next against it and NextNext toward it
// again, so the furthest floor of each sweep comes last. The sort is stable
// on floor*dir, which keeps floors already passed apart from floors ahead.
func (q *PassQueueSet) Sort() {
	sortToward(q.Current, q.Dir)
	sortToward(q.Next, q.Dir.Opposite())
	sortToward(q.NextNext, q.Dir)
}

// Remove drops every occurrence of floor from Current.
func (q *PassQueueSet) Remove(floor Floor) {
	q.Current = slices.DeleteFunc(q.Current, func(f Floor) bool { return f == floor })
}

// Whether it is safe and prudent to trash Current and cycle the others in.
// If all are empty, this returns false.
func (q *PassQueueSet) CanCycle() bool {
	return len(q.Current) == 0 && (len(q.Next) != 0 || len(q.NextNext) != 0)
}

// Cycle promotes Next to Current and NextNext to Next, then flips Dir.
// Returns false, changing nothing, unless CanCycle.
func (q *PassQueueSet) Cycle() bool {
	if !q.CanCycle() {
		return false
	}
	q.Dir = q.Dir.Opposite()
	q.Current = q.Next
	q.Next = q.NextNext
	q.NextNext = []Floor{}
	q.Sort()
	return true
}

// Destinations is a copy of Current, the list handed to the car.
func (q *PassQueueSet) Destinations() []Floor {
	return slices.Clone(q.Current)
}

func (q *PassQueueSet) Empty() bool {
	return len(q.Current) == 0 && len(q.Next) == 0 && len(q.NextNext) == 0
}

func (q *PassQueueSet) String() string {
	return fmt.Sprintf("%s curr=%v next=%v nextNext=%v", q.Dir.Arrow(), q.Current, q.Next, q.NextNext)
}

func sortToward(floors []Floor, dir Direction) {
	slices.SortStableFunc(floors, func(a, b Floor) int {
		return int(a)*int(dir) - int(b)*int(dir)
	})
}

func appendUnique(floors []Floor, floor Floor) []Floor {
	if slices.Contains(floors, floor) {
		return floors
	}
	return append(floors, floor)
}
