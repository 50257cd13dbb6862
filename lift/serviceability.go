package lift

import "fmt"

// Classify returns the earliest pass on which the car could answer a hall
// request at floor for direction requested. A car indicating the opposite
// way gets it on its next pass; one indicating the same way gets it now if
// the floor is still ahead, else after turning around twice.
//
// Panics unless exactly one of the car's indicators is lit.
func Classify(requested Direction, car CarState, floor Floor) Pass {
	if car.GoingUpIndicator() == car.GoingDownIndicator() {
		panic(fmt.Sprintf("Programming error: car indicators up=%v down=%v, exactly one must be lit",
			car.GoingUpIndicator(), car.GoingDownIndicator()))
	}

	var onCurrent, onNext, onNextNext bool
	switch requested {
	case UP:
		onCurrent = floorIsOnCurrentPass(car, floor, UP)
		onNext = car.GoingDownIndicator()
		onNextNext = car.GoingUpIndicator()
	case DOWN:
		onCurrent = floorIsOnCurrentPass(car, floor, DOWN)
		onNext = car.GoingUpIndicator()
		onNextNext = car.GoingDownIndicator()
	default:
		panic(fmt.Sprintf("Programming error: cannot classify a %v request for F%s", requested, floor))
	}

	switch {
	case onCurrent:
		return CurrentPass
	case onNext:
		return NextPass
	case onNextNext:
		return NextNextPass
	}
	panic(fmt.Sprintf("Programming error: unable to determine request serviceability for F%s (%s)", floor, requested.Arrow()))
}

func floorIsOnCurrentPass(car CarState, floor Floor, dir Direction) bool {
	if indicates(car, dir.Opposite()) {
		return false
	}

	current := car.CurrentFloor()
	if current == floor {
		// currentFloor is discretized: with riders aboard we may already be
		// past this floor, and stopping would mean turning back.
		return len(car.PressedFloors()) == 0
	}
	return current.DirectionTo(floor) == dir
}

func indicates(car CarState, dir Direction) bool {
	if dir == UP {
		return car.GoingUpIndicator()
	}
	return car.GoingDownIndicator()
}

// IsIdleAt reports whether the car sits at floor with no rider destinations.
func IsIdleAt(car CarState, floor Floor) bool {
	return len(car.PressedFloors()) == 0 && car.CurrentFloor() == floor
}
