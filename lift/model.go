package lift

import (
	"fmt"
	"strconv"
)

// The floors start at zero
type Floor int

func (f Floor) String() string { return strconv.Itoa(int(f)) }

func (f Floor) Next(dir Direction) Floor {
	return Floor(int(f) + int(dir))
}

func (f Floor) DirectionTo(dest Floor) Direction {
	if f == dest {
		return IDLE
	} else if dest > f {
		return UP
	} else {
		return DOWN
	}
}

// Direction
type Direction int

const (
	UP   Direction = 1
	IDLE Direction = 0
	DOWN Direction = -1
)

func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case DOWN:
		return UP
	default:
		panic(fmt.Sprintf("Cannot determine opposite of direction %d", d))
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "UP"
	case DOWN:
		return "DOWN"
	case IDLE:
		return "IDLE"
	default:
		panic(fmt.Sprintf("Unknown direction: %d", d))
	}
}

// Arrow is the compact form used in request and assignment logs.
func (d Direction) Arrow() string {
	switch d {
	case UP:
		return "↑"
	case DOWN:
		return "↓"
	default:
		return "-"
	}
}

// Pass is the sweep on which a car could serve a request. Lower is sooner.
type Pass int

const (
	CurrentPass Pass = iota
	NextPass
	NextNextPass
)

func (p Pass) String() string {
	switch p {
	case CurrentPass:
		return "Current"
	case NextPass:
		return "Next"
	case NextNextPass:
		return "NextNext"
	default:
		return "Pass(" + strconv.Itoa(int(p)) + ")"
	}
}

// CarState is the read-only view of a car the classifier needs.
type CarState interface {
	CurrentFloor() Floor
	GoingUpIndicator() bool
	GoingDownIndicator() bool
	PressedFloors() []Floor
}

// Car is the external elevator a Controller steers. The host engine drains
// the destination queue as it moves.
type Car interface {
	CarState
	ID() int
	SetIndicators(up, down bool)
	SetDestinationQueue(queue []Floor)
}

// Landing is a floor's hall button panel.
type Landing interface {
	FloorNum() Floor
}
