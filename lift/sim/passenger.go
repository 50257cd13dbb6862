package sim

import (
	"fmt"

	"github.com/delliston/liftdispatch/lift"
	"github.com/google/uuid"
)

// Passenger waits at Start, rides to Dest, and records the step of each
// milestone. Boarded and Delivered stay -1 until they happen.
type Passenger struct {
	ID        string
	Start     lift.Floor
	Dest      lift.Floor
	Spawned   int
	Boarded   int
	Delivered int
	Car       int
}

func NewPassenger(start, dest lift.Floor, step int) *Passenger {
	if start == dest {
		panic(fmt.Sprintf("passenger start %s == dest %s", start, dest))
	}
	return &Passenger{
		ID:        uuid.New().String(),
		Start:     start,
		Dest:      dest,
		Spawned:   step,
		Boarded:   -1,
		Delivered: -1,
		Car:       -1,
	}
}

func (p *Passenger) Dir() lift.Direction { return p.Start.DirectionTo(p.Dest) }

func (p *Passenger) String() string {
	return fmt.Sprintf("Pass-%s(%s→%s)", p.ID[:8], p.Start, p.Dest)
}
