package sim

import (
	"fmt"
	"slices"

	"github.com/delliston/liftdispatch/lift"
)

// Car is a simulated elevator. It knows its floor, its lit indicators and
// in-car buttons, and drains the destination queue its controller sets,
// moving one floor per step toward the head of the queue.
// It's not possible to skip a floor or stop between floors.
type Car struct {
	id       int
	floor    lift.Floor
	up, down bool
	pressed  *lift.FloorSet
	queue    []lift.Floor
	riders   []*Passenger
	idle     bool // idle already reported for the current idle period
	parked   bool // stopped or idle at floor since the last move
}

func NewCar(id, numFloors int) *Car {
	return &Car{id: id, floor: 0, pressed: lift.NewFloorSet(numFloors), parked: true}
}

func (c *Car) ID() int                                { return c.id }
func (c *Car) CurrentFloor() lift.Floor               { return c.floor }
func (c *Car) GoingUpIndicator() bool                 { return c.up }
func (c *Car) GoingDownIndicator() bool               { return c.down }
func (c *Car) PressedFloors() []lift.Floor            { return c.pressed.Floors() }
func (c *Car) SetIndicators(up, down bool)            { c.up, c.down = up, down }
func (c *Car) SetDestinationQueue(queue []lift.Floor) { c.queue = slices.Clone(queue) }

func (c *Car) DestinationQueue() []lift.Floor { return slices.Clone(c.queue) }

func (c *Car) Riders() int { return len(c.riders) }

// Indicator is the direction a waiting passenger sees lit.
func (c *Car) Indicator() lift.Direction {
	switch {
	case c.up:
		return lift.UP
	case c.down:
		return lift.DOWN
	default:
		return lift.IDLE
	}
}

func (c *Car) String() string {
	s := fmt.Sprintf("Elevator-%d @ F%s %s riders=%d", c.id, c.floor, c.Indicator().Arrow(), c.Riders())
	if !c.pressed.Empty() {
		s += fmt.Sprintf(" pressed=%v (F%s..F%s)", c.pressed.Floors(), c.pressed.Lowest(), c.pressed.Highest())
	}
	return s
}

// advance moves one floor toward the head of the queue. Returns true if the
// car is now stopped at that head floor.
func (c *Car) advance() bool {
	if len(c.queue) == 0 {
		return false
	}
	dest := c.queue[0]
	if c.floor == dest {
		return true
	}
	dir := c.floor.DirectionTo(dest)
	c.floor = c.floor.Next(dir)
	c.parked = false
	if c.floor != dest {
		Log.Debug().Msgf("Elevator-%d passing %s %s", c.id, c.floor, dir)
	}
	return c.floor == dest
}

// unload lets off the riders bound for the current floor.
func (c *Car) unload() []*Passenger {
	// Every rider's floor stays pressed until the car stops there.
	if !c.pressed.IsSet(c.floor) {
		return nil
	}
	c.pressed.Clear(c.floor)
	var off []*Passenger
	c.riders = slices.DeleteFunc(c.riders, func(p *Passenger) bool {
		if p.Dest == c.floor {
			off = append(off, p)
			return true
		}
		return false
	})
	return off
}

// board takes on a passenger and lights their button. Returns true if the
// button was newly lit.
func (c *Car) board(p *Passenger) bool {
	c.riders = append(c.riders, p)
	return !c.pressed.Set(p.Dest)
}
