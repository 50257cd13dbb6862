package sim

import (
	"testing"

	"github.com/delliston/liftdispatch/lift"
)

func TestCarString(t *testing.T) {
	c := NewCar(2, 10)
	c.SetIndicators(true, false)
	if got, expected := c.String(), "Elevator-2 @ F0 ↑ riders=0"; got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}

	c.board(NewPassenger(0, 7, 0))
	c.board(NewPassenger(0, 3, 0))
	expected := "Elevator-2 @ F0 ↑ riders=2 pressed=[3 7] (F3..F7)"
	if got := c.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestCarUnloadsOnlyAtPressedFloor(t *testing.T) {
	c := NewCar(0, 10)
	c.SetIndicators(true, false)
	p := NewPassenger(0, 3, 0)
	if !c.board(p) {
		t.Errorf("board() = false for the first rider to F3")
	}
	if c.board(NewPassenger(0, 3, 0)) {
		t.Errorf("board() = true for a second rider to F3")
	}

	c.SetDestinationQueue([]lift.Floor{3})
	for !c.advance() {
	}
	if c.CurrentFloor() != 3 {
		t.Fatalf("car at F%v, expected F3", c.CurrentFloor())
	}
	off := c.unload()
	if len(off) != 2 || off[0] != p || c.Riders() != 0 {
		t.Errorf("unloaded %v with %d riders left, expected both off", off, c.Riders())
	}
	if len(c.PressedFloors()) != 0 {
		t.Errorf("pressed %v after unloading, expected none", c.PressedFloors())
	}
	if off := c.unload(); off != nil {
		t.Errorf("second unload returned %v", off)
	}
}

func TestLandingWaiting(t *testing.T) {
	l := &Landing{floor: 4}
	l.waiting = append(l.waiting, NewPassenger(4, 6, 0), NewPassenger(4, 1, 0), NewPassenger(4, 9, 0))
	l.press(lift.UP)
	l.press(lift.DOWN)

	if taken := l.take(lift.UP); len(taken) != 2 {
		t.Errorf("took %d going up, expected 2", len(taken))
	}
	if l.Waiting() != 1 || l.Lit(lift.UP) || !l.Lit(lift.DOWN) {
		t.Errorf("waiting=%d up=%v down=%v, expected 1 false true", l.Waiting(), l.Lit(lift.UP), l.Lit(lift.DOWN))
	}
}
