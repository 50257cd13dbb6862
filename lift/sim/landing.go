package sim

import "github.com/delliston/liftdispatch/lift"

// Landing is one floor's hall panel. A lit button is not pressed again until
// a car takes its passengers.
type Landing struct {
	floor   lift.Floor
	upLit   bool
	downLit bool
	upCar   int // car the lit up button was assigned to
	downCar int
	waiting []*Passenger
}

func (l *Landing) FloorNum() lift.Floor { return l.floor }

func (l *Landing) Lit(dir lift.Direction) bool {
	if dir == lift.UP {
		return l.upLit
	}
	return l.downLit
}

func (l *Landing) Waiting() int { return len(l.waiting) }

// press lights the button for dir, reporting whether it was dark before.
func (l *Landing) press(dir lift.Direction) bool {
	if l.Lit(dir) {
		return false
	}
	l.setLit(dir, true)
	return true
}

func (l *Landing) assign(dir lift.Direction, carID int) {
	if dir == lift.UP {
		l.upCar = carID
	} else {
		l.downCar = carID
	}
}

func (l *Landing) assignee(dir lift.Direction) int {
	if dir == lift.UP {
		return l.upCar
	}
	return l.downCar
}

func (l *Landing) setLit(dir lift.Direction, on bool) {
	if dir == lift.UP {
		l.upLit = on
	} else {
		l.downLit = on
	}
}

// take removes and returns the waiting passengers headed dir, and darkens
// that button.
func (l *Landing) take(dir lift.Direction) []*Passenger {
	var taken, left []*Passenger
	for _, p := range l.waiting {
		if p.Dir() == dir {
			taken = append(taken, p)
		} else {
			left = append(left, p)
		}
	}
	l.waiting = left
	if len(taken) > 0 {
		l.setLit(dir, false)
	}
	return taken
}
