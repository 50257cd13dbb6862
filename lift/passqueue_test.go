package lift

import "testing"

func TestSortFollowsDirection(t *testing.T) {
	q := NewPassQueueSet()
	for _, f := range []Floor{7, 2, 5} {
		q.InsertCurrent(f)
		q.InsertNext(f)
	}
	q.InsertNextNext(4)
	q.InsertNextNext(1)

	equalFloors(t, "Current going up", q.Current, []Floor{2, 5, 7})
	equalFloors(t, "Next going up", q.Next, []Floor{7, 5, 2})
	equalFloors(t, "NextNext going up", q.NextNext, []Floor{1, 4})

	q.Dir = DOWN
	q.Sort()
	equalFloors(t, "Current going down", q.Current, []Floor{7, 5, 2})
	equalFloors(t, "Next going down", q.Next, []Floor{2, 5, 7})
	equalFloors(t, "NextNext going down", q.NextNext, []Floor{4, 1})
}

func TestInsertCollapsesDuplicatesInTier(t *testing.T) {
	q := NewPassQueueSet()
	q.InsertCurrent(3)
	q.InsertCurrent(3)
	q.InsertNext(6)
	q.InsertNext(6)
	equalFloors(t, "Current", q.Current, []Floor{3})
	equalFloors(t, "Next", q.Next, []Floor{6})
}

func TestInsertNextNextSeedsEmptyNext(t *testing.T) {
	q := NewPassQueueSet()
	q.InsertNextNext(4)
	equalFloors(t, "Next", q.Next, []Floor{4})
	equalFloors(t, "NextNext", q.NextNext, []Floor{4})

	q.InsertNextNext(6)
	equalFloors(t, "Next after second insert", q.Next, []Floor{4})
	equalFloors(t, "NextNext after second insert", q.NextNext, []Floor{4, 6})
}

func TestCanCycle(t *testing.T) {
	q := NewPassQueueSet()
	if q.CanCycle() {
		t.Errorf("CanCycle() = true with all queues empty")
	}
	q.InsertNext(2)
	if !q.CanCycle() {
		t.Errorf("CanCycle() = false with Current empty and Next %v", q.Next)
	}
	q.InsertCurrent(5)
	if q.CanCycle() {
		t.Errorf("CanCycle() = true with Current %v", q.Current)
	}
}

func TestCycle(t *testing.T) {
	q := NewPassQueueSet()
	q.Next = []Floor{2, 6}
	q.NextNext = []Floor{1, 3}

	if !q.Cycle() {
		t.Fatalf("Cycle() = false, expected a rotation")
	}
	if q.Dir != DOWN {
		t.Errorf("Dir = %v, expected DOWN", q.Dir)
	}
	equalFloors(t, "Current", q.Current, []Floor{6, 2})
	equalFloors(t, "Next", q.Next, []Floor{1, 3})
	equalFloors(t, "NextNext", q.NextNext, []Floor{})
}

func TestCycleIsNoOpUnlessAllowed(t *testing.T) {
	q := NewPassQueueSet()
	q.InsertCurrent(4)
	q.InsertNext(1)
	if q.Cycle() {
		t.Errorf("Cycle() = true with Current %v", q.Current)
	}
	if q.Dir != UP {
		t.Errorf("Dir = %v, expected UP untouched", q.Dir)
	}
	equalFloors(t, "Current", q.Current, []Floor{4})
	equalFloors(t, "Next", q.Next, []Floor{1})
}

func TestRemove(t *testing.T) {
	q := NewPassQueueSet()
	q.Current = []Floor{3, 5, 3}
	q.Remove(3)
	equalFloors(t, "Current", q.Current, []Floor{5})
	q.Remove(9)
	equalFloors(t, "Current after removing absent floor", q.Current, []Floor{5})
}

func TestDestinationsIsACopy(t *testing.T) {
	q := NewPassQueueSet()
	q.InsertCurrent(4)
	dest := q.Destinations()
	dest[0] = 9
	equalFloors(t, "Current", q.Current, []Floor{4})
}

// A seeded floor sits on two tiers after the cycle; stopping there empties
// both sweeps in turn.
func TestCycleKeepsSeededFloorOnBothTiers(t *testing.T) {
	q := NewPassQueueSet()
	q.InsertCurrent(8)
	q.InsertNextNext(2)

	q.Remove(8)
	if !q.Cycle() {
		t.Fatalf("Cycle() = false with Next %v", q.Next)
	}
	if q.Dir != DOWN {
		t.Errorf("Dir = %v, expected DOWN", q.Dir)
	}
	equalFloors(t, "Current", q.Current, []Floor{2})
	equalFloors(t, "Next", q.Next, []Floor{2})
	equalFloors(t, "NextNext", q.NextNext, []Floor{})

	// The stop at F2: remove, cycle, remove.
	q.Remove(2)
	if !q.Cycle() {
		t.Fatalf("Cycle() = false at F2 with Next %v", q.Next)
	}
	q.Remove(2)
	if q.Dir != UP || !q.Empty() {
		t.Errorf("after stop at F2: %v, expected ↑ with every tier empty", q)
	}
}
