package lift

import "fmt"

// Dispatcher owns one Controller per car plus the landings, and answers
// every hall call by handing it to the car able to serve it on the earliest
// pass. The host delivers events through the On* methods, one at a time.
type Dispatcher struct {
	controllers []*Controller
	byID        map[int]*Controller
	landings    []Landing
	maxFloor    Floor
}

func NewDispatcher(cars []Car, landings []Landing) *Dispatcher {
	d := &Dispatcher{
		controllers: make([]*Controller, 0, len(cars)),
		byID:        make(map[int]*Controller, len(cars)),
		landings:    landings,
		maxFloor:    InvalidFloor,
	}
	for _, car := range cars {
		if _, dup := d.byID[car.ID()]; dup {
			panic(fmt.Sprintf("duplicate car id E%d", car.ID()))
		}
		c := NewController(car)
		d.controllers = append(d.controllers, c)
		d.byID[car.ID()] = c
	}
	for _, l := range landings {
		if l.FloorNum() > d.maxFloor {
			d.maxFloor = l.FloorNum()
		}
	}
	return d
}

func (d *Dispatcher) Controllers() []*Controller { return d.controllers }

func (d *Dispatcher) Landings() []Landing { return d.landings }

// MaxFloor is the top landing, or InvalidFloor with no landings.
func (d *Dispatcher) MaxFloor() Floor { return d.maxFloor }

func (d *Dispatcher) Controller(carID int) *Controller {
	c, ok := d.byID[carID]
	if !ok {
		panic(fmt.Sprintf("unknown car id E%d", carID))
	}
	return c
}

// BestController gives idle cars in the wrong phase a chance to cycle, then
// picks the car with the lowest pass for the request. Ties go to the car
// listed first.
func (d *Dispatcher) BestController(floor Floor, dir Direction) (*Controller, Pass) {
	for _, c := range d.controllers {
		c.CycleIfPossible()
	}

	var best *Controller
	bestPass := NextNextPass
	for _, c := range d.controllers {
		pass := c.Serviceability(dir, floor)
		if best == nil || pass < bestPass {
			best, bestPass = c, pass
		}
	}
	return best, bestPass
}

// OnHallCall assigns the request to exactly one car and returns it.
// Panics with no cars.
func (d *Dispatcher) OnHallCall(floor Floor, dir Direction) *Controller {
	if len(d.controllers) == 0 {
		panic(fmt.Sprintf("no cars to answer F%s(%s)", floor, dir.Arrow()))
	}
	Log.Info().Msgf("Request: F%s(%s)", floor, dir.Arrow())

	best, pass := d.BestController(floor, dir)
	Log.Info().Msgf("%s (F%s): assigned to E%d (@ F%s) on %v pass",
		dir.Arrow(), floor, best.ID(), best.CurrentFloor(), pass)

	best.logQueues("before assignment")
	switch dir {
	case UP:
		best.InsertDestinationUp(floor)
	case DOWN:
		best.InsertDestinationDown(floor)
	default:
		panic(fmt.Sprintf("hall call F%s must be UP or DOWN, got %v", floor, dir))
	}
	best.logQueues("after assignment")
	return best
}

func (d *Dispatcher) OnUpButtonPressed(l Landing) *Controller {
	return d.OnHallCall(l.FloorNum(), UP)
}

func (d *Dispatcher) OnDownButtonPressed(l Landing) *Controller {
	return d.OnHallCall(l.FloorNum(), DOWN)
}

func (d *Dispatcher) OnFloorButtonPressed(carID int, floor Floor) {
	d.Controller(carID).OnFloorButtonPressed(floor)
}

func (d *Dispatcher) OnStoppedAtFloor(carID int, floor Floor) {
	d.Controller(carID).OnStoppedAtFloor(floor)
}

func (d *Dispatcher) OnIdle(carID int) {
	d.Controller(carID).OnIdle()
}

// Snapshot copies every controller's queues, in car order.
func (d *Dispatcher) Snapshot() []QueueSnapshot {
	snaps := make([]QueueSnapshot, 0, len(d.controllers))
	for _, c := range d.controllers {
		snaps = append(snaps, c.Snapshot())
	}
	return snaps
}
