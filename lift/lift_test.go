package lift

import (
	"slices"
	"testing"

	"github.com/delliston/liftdispatch/logger"
	"github.com/rs/zerolog"
)

// stubCar records what the controller pushes to it.
type stubCar struct {
	id       int
	floor    Floor
	up, down bool
	pressed  []Floor
	queue    []Floor
}

func (s *stubCar) ID() int                           { return s.id }
func (s *stubCar) CurrentFloor() Floor               { return s.floor }
func (s *stubCar) GoingUpIndicator() bool            { return s.up }
func (s *stubCar) GoingDownIndicator() bool          { return s.down }
func (s *stubCar) PressedFloors() []Floor            { return s.pressed }
func (s *stubCar) SetIndicators(up, down bool)       { s.up, s.down = up, down }
func (s *stubCar) SetDestinationQueue(queue []Floor) { s.queue = queue }

type stubLanding Floor

func (l stubLanding) FloorNum() Floor { return Floor(l) }

func quiet() {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
}

func equalFloors(t *testing.T, what string, actual, expected []Floor) {
	t.Helper()
	if !slices.Equal(actual, expected) {
		t.Errorf("%s = %v, expected %v", what, actual, expected)
	}
}
