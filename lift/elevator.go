package lift

import (
	"fmt"

	"github.com/delliston/liftdispatch/logger"
	"github.com/tiendc/go-deepcopy"
)

var Log = logger.GetLogger()

// Controller steers one Car:
//   - owns the car's PassQueueSet and direction indicator.
//   - classifies and inserts requests the Dispatcher hands it.
//   - reacts to the car's own events (in-car button, stop, idle).
//
// After every change the car gets a fresh copy of Current as its destination
// queue, and its indicators are set from Dir.
// Not safe for concurrent use; the host calls it from one event loop.
type Controller struct {
	car    Car
	queues *PassQueueSet
}

func NewController(car Car) *Controller {
	c := &Controller{car: car, queues: NewPassQueueSet()}
	c.publish()
	return c
}

func (c *Controller) ID() int { return c.car.ID() }

// CarState, as seen by the classifier. Indicators come from our own Dir.
func (c *Controller) CurrentFloor() Floor      { return c.car.CurrentFloor() }
func (c *Controller) GoingUpIndicator() bool   { return c.queues.Dir == UP }
func (c *Controller) GoingDownIndicator() bool { return c.queues.Dir == DOWN }
func (c *Controller) PressedFloors() []Floor   { return c.car.PressedFloors() }

func (c *Controller) Direction() Direction { return c.queues.Dir }

// DestinationQueue is the list last handed to the car.
func (c *Controller) DestinationQueue() []Floor { return c.queues.Destinations() }

func (c *Controller) Serviceability(dir Direction, floor Floor) Pass {
	return Classify(dir, c, floor)
}

// isIdleAt: sitting at floor with no riders and nothing left on this sweep.
func (c *Controller) isIdleAt(floor Floor) bool {
	return IsIdleAt(c, floor) && len(c.queues.Current) == 0
}

// InsertCurrent puts floor on the current sweep. No-op if we are already
// idle there, which would otherwise cost a round trip.
func (c *Controller) InsertCurrent(floor Floor) {
	if c.isIdleAt(floor) {
		Log.Debug().Msgf("E%d already idle at F%s", c.ID(), floor)
		return
	}
	c.queues.InsertCurrent(floor)
	c.publish()
}

func (c *Controller) InsertNext(floor Floor) {
	c.queues.InsertNext(floor)
	c.publish()
}

func (c *Controller) InsertNextNext(floor Floor) {
	c.queues.InsertNextNext(floor)
	c.publish()
}

// InsertDestinationUp inserts floor for an up request on as early a pass as
// possible, and returns that pass.
func (c *Controller) InsertDestinationUp(floor Floor) Pass {
	return c.insertDestination(floor, c.Serviceability(UP, floor))
}

// InsertDestinationDown is the mirror of InsertDestinationUp.
func (c *Controller) InsertDestinationDown(floor Floor) Pass {
	return c.insertDestination(floor, c.Serviceability(DOWN, floor))
}

func (c *Controller) insertDestination(floor Floor, pass Pass) Pass {
	switch pass {
	case CurrentPass:
		c.InsertCurrent(floor)
	case NextPass:
		c.InsertNext(floor)
	case NextNextPass:
		c.InsertNextNext(floor)
	default:
		panic(fmt.Sprintf("Programming error: E%d cannot insert F%s on %v", c.ID(), floor, pass))
	}
	// Current may have been empty, in which case we can start moving now.
	c.CycleIfPossible()
	return pass
}

// CycleIfPossible rotates the queues and flips direction once the current
// sweep is done and something is waiting on a later one.
func (c *Controller) CycleIfPossible() bool {
	was := c.queues.Dir
	if !c.queues.Cycle() {
		return false
	}
	Log.Info().Msgf("E%d was (%s), now (%s)", c.ID(), was.Arrow(), c.queues.Dir.Arrow())
	c.publish()
	return true
}

// OnFloorButtonPressed handles a rider's in-car press. The rider only got on
// because the indicator pointed their way, so the floor is on this sweep.
func (c *Controller) OnFloorButtonPressed(floor Floor) {
	Log.Info().Msgf("Pressed: F%s inside E%d", floor, c.ID())
	c.logQueues("before press")
	c.InsertCurrent(floor)
	c.logQueues("after press")
}

// OnStoppedAtFloor prunes floor from the current sweep. It is pruned again
// after cycling, since the floor may also open the next sweep.
func (c *Controller) OnStoppedAtFloor(floor Floor) {
	Log.Info().Msgf("E%d stopped at F%s", c.ID(), floor)
	c.logQueues("before stop")
	c.queues.Remove(floor)
	c.CycleIfPossible()
	c.queues.Remove(floor)
	c.publish()
	c.logQueues("after stop")
}

func (c *Controller) OnIdle() {
	if c.CycleIfPossible() {
		c.logQueues("after idle")
	}
}

// QueueSnapshot is a detached copy of a controller's queues.
type QueueSnapshot struct {
	Car          int
	Floor        Floor
	Queues       PassQueueSet
	Destinations []Floor
}

func (s QueueSnapshot) String() string {
	return fmt.Sprintf("E%d @ F%s %s", s.Car, s.Floor, s.Queues.String())
}

func (c *Controller) Snapshot() QueueSnapshot {
	snap := QueueSnapshot{Car: c.ID(), Floor: c.CurrentFloor()}
	if err := deepcopy.Copy(&snap.Queues, c.queues); err != nil {
		panic(fmt.Sprintf("Failed to copy queues of E%d: %v", c.ID(), err))
	}
	snap.Destinations = snap.Queues.Destinations()
	return snap
}

func (c *Controller) publish() {
	c.car.SetIndicators(c.queues.Dir == UP, c.queues.Dir == DOWN)
	c.car.SetDestinationQueue(c.queues.Destinations())
}

func (c *Controller) logQueues(when string) {
	Log.Debug().Msgf("E%d %s: %s", c.ID(), when, c.queues.String())
}
