package lift

// Maintains the on/off state of an arr of floors.
// Used for the lit in-car buttons of a car.
type FloorSet struct {
	arr []bool
}

func NewFloorSet(count int) *FloorSet {
	return &FloorSet{make([]bool, count)}
}

// Set returns the previous value.
func (fs *FloorSet) Set(floor Floor) bool {
	prev := fs.arr[floor]
	fs.arr[floor] = true
	return prev
}

// Clear returns the previous value.
func (fs *FloorSet) Clear(floor Floor) bool {
	prev := fs.arr[floor]
	fs.arr[floor] = false
	return prev
}

func (fs *FloorSet) IsSet(floor Floor) bool {
	return floor >= 0 && int(floor) < len(fs.arr) && fs.arr[floor]
}

func (fs *FloorSet) Empty() bool {
	return fs.Lowest() == InvalidFloor
}

// Floors lists the set floors, lowest first.
func (fs *FloorSet) Floors() []Floor {
	floors := []Floor{}
	for i, on := range fs.arr {
		if on {
			floors = append(floors, Floor(i))
		}
	}
	return floors
}

func (fs *FloorSet) Lowest() Floor {
	for i := 0; i < len(fs.arr); i++ {
		if fs.arr[i] {
			return Floor(i)
		}
	}
	return InvalidFloor
}

func (fs *FloorSet) Highest() Floor {
	for i := len(fs.arr) - 1; i >= 0; i-- {
		if fs.arr[i] {
			return Floor(i)
		}
	}
	return InvalidFloor
}

const InvalidFloor Floor = -1
