package sim

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/delliston/liftdispatch/config"
	"github.com/delliston/liftdispatch/lift"
	"github.com/delliston/liftdispatch/logger"
)

var Log = logger.GetLogger()

// Building is the host the dispatcher runs in. Each Step is one tick of the
// simulation clock: passengers arrive and press hall buttons, then every car
// moves a floor or stops, and the resulting events are delivered to the
// dispatcher in order, synchronously.
type Building struct {
	name       string
	dispatcher *lift.Dispatcher
	cars       []*Car
	landings   []*Landing
	passengers []*Passenger

	rng        *rand.Rand
	step       int
	spawnEvery int
	budget     int // passengers left to spawn
}

func NewBuilding(cfg config.Config) *Building {
	b := &Building{
		name:       cfg.RunName,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		spawnEvery: cfg.SpawnEvery,
		budget:     cfg.Passengers,
	}
	if b.spawnEvery < 1 {
		b.spawnEvery = 1
	}

	cars := make([]lift.Car, 0, cfg.NumElevators)
	for id := 0; id < cfg.NumElevators; id++ {
		car := NewCar(id, cfg.NumFloors)
		b.cars = append(b.cars, car)
		cars = append(cars, car)
	}
	landings := make([]lift.Landing, 0, cfg.NumFloors)
	for f := 0; f < cfg.NumFloors; f++ {
		l := &Landing{floor: lift.Floor(f)}
		b.landings = append(b.landings, l)
		landings = append(landings, l)
	}
	b.dispatcher = lift.NewDispatcher(cars, landings)
	return b
}

func (b *Building) Name() string                 { return b.name }
func (b *Building) Dispatcher() *lift.Dispatcher { return b.dispatcher }
func (b *Building) Cars() []*Car                 { return b.cars }
func (b *Building) Passengers() []*Passenger     { return b.passengers }
func (b *Building) StepCount() int               { return b.step }

func (b *Building) Landing(floor lift.Floor) *Landing {
	return b.landings[floor]
}

// Inject puts a passenger at start, bound for dest, and presses the hall
// button for them.
func (b *Building) Inject(start, dest lift.Floor) (*Passenger, error) {
	top := b.dispatcher.MaxFloor()
	if start < 0 || start > top || dest < 0 || dest > top {
		return nil, fmt.Errorf("floors must be within 0..%s, got %s→%s", top, start, dest)
	}
	if start == dest {
		return nil, fmt.Errorf("passenger already at F%s", dest)
	}

	p := NewPassenger(start, dest, b.step)
	b.passengers = append(b.passengers, p)
	l := b.landings[start]
	l.waiting = append(l.waiting, p)
	Log.Info().Msgf("%v waiting at F%s", p, start)

	b.pressHallButton(l, p.Dir())
	return p, nil
}

func (b *Building) pressHallButton(l *Landing, dir lift.Direction) {
	if !l.press(dir) {
		return
	}
	var c *lift.Controller
	switch dir {
	case lift.UP:
		c = b.dispatcher.OnUpButtonPressed(l)
	case lift.DOWN:
		c = b.dispatcher.OnDownButtonPressed(l)
	}
	l.assign(dir, c.ID())
}

func (b *Building) Step() {
	b.step++
	b.spawn()
	b.repress()
	for _, car := range b.cars {
		b.stepCar(car)
	}
}

// Run steps until the step budget is used, everyone has been delivered, or
// ctx is cancelled. With tick > 0 each step waits for one tick first.
func (b *Building) Run(ctx context.Context, steps int, tick time.Duration) error {
	for i := 0; i < steps && !b.Done(); i++ {
		if tick > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(tick):
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		b.Step()
	}
	return nil
}

// Done reports whether every passenger has spawned and been delivered.
func (b *Building) Done() bool {
	if b.budget > 0 {
		return false
	}
	for _, p := range b.passengers {
		if p.Delivered < 0 {
			return false
		}
	}
	return true
}

func (b *Building) spawn() {
	if b.budget <= 0 || b.step%b.spawnEvery != 0 {
		return
	}
	n := len(b.landings)
	start := b.rng.Intn(n)
	dest := b.rng.Intn(n - 1)
	if dest >= start {
		dest++
	}
	b.budget--
	if _, err := b.Inject(lift.Floor(start), lift.Floor(dest)); err != nil {
		panic(fmt.Sprintf("spawned an invalid passenger: %v", err))
	}
}

// repress lights a dark button again for anyone still waiting behind it.
func (b *Building) repress() {
	for _, l := range b.landings {
		for _, p := range l.waiting {
			if !l.Lit(p.Dir()) {
				Log.Debug().Msgf("%v presses F%s(%s) again", p, l.floor, p.Dir().Arrow())
				b.pressHallButton(l, p.Dir())
			}
		}
	}
}

func (b *Building) stepCar(car *Car) {
	if len(car.queue) == 0 {
		b.boardAt(car)
		if len(car.queue) == 0 && !car.idle {
			car.idle = true
			b.dispatcher.OnIdle(car.id)
			b.boardAt(car)
		}
		return
	}
	car.idle = false
	if car.parked {
		// Whoever turned up while the doors were open gets on before we leave.
		b.boardAt(car)
		b.leaveBehind(car)
	}
	if car.advance() {
		b.stop(car)
	}
}

// leaveBehind darkens any button at the car's floor that was assigned to the
// car but is still lit as it departs. A controller already idle at a floor
// does not queue a call there, and the car may have turned around since, so
// the call goes back to the dispatcher on the next repress.
func (b *Building) leaveBehind(car *Car) {
	l := b.landings[car.floor]
	for _, dir := range []lift.Direction{lift.UP, lift.DOWN} {
		if l.Lit(dir) && l.assignee(dir) == car.id {
			Log.Debug().Msgf("Elevator-%d leaving F%s(%s) behind", car.id, l.floor, dir.Arrow())
			l.setLit(dir, false)
		}
	}
}

// stop lets riders off, boards anyone going the way the car arrived, reports
// the stop, then boards again in case the stop turned the car around.
func (b *Building) stop(car *Car) {
	car.parked = true
	for _, p := range car.unload() {
		p.Delivered = b.step
		Log.Info().Msgf("%v arrived at F%s in Elevator-%d", p, car.floor, car.id)
	}
	b.boardAt(car)
	b.dispatcher.OnStoppedAtFloor(car.id, car.floor)
	b.boardAt(car)
}

func (b *Building) boardAt(car *Car) {
	dir := car.Indicator()
	if dir == lift.IDLE {
		return
	}
	for _, p := range b.landings[car.floor].take(dir) {
		p.Boarded = b.step
		p.Car = car.id
		Log.Info().Msgf("%v boarded Elevator-%d at F%s %s", p, car.id, car.floor, dir)
		if car.board(p) {
			b.dispatcher.OnFloorButtonPressed(car.id, p.Dest)
		}
	}
}

type Stats struct {
	Steps     int
	Spawned   int
	Delivered int
	Riding    int
	Waiting   int
	AvgWait   float64 // steps from spawn to boarding
	AvgRide   float64 // steps from boarding to arrival
}

func (s Stats) String() string {
	return fmt.Sprintf("steps=%d spawned=%d delivered=%d riding=%d waiting=%d avgWait=%.1f avgRide=%.1f",
		s.Steps, s.Spawned, s.Delivered, s.Riding, s.Waiting, s.AvgWait, s.AvgRide)
}

func (b *Building) Stats() Stats {
	s := Stats{Steps: b.step, Spawned: len(b.passengers)}
	var wait, ride int
	for _, p := range b.passengers {
		switch {
		case p.Delivered >= 0:
			s.Delivered++
			wait += p.Boarded - p.Spawned
			ride += p.Delivered - p.Boarded
		case p.Boarded >= 0:
			s.Riding++
		default:
			s.Waiting++
		}
	}
	if s.Delivered > 0 {
		s.AvgWait = float64(wait) / float64(s.Delivered)
		s.AvgRide = float64(ride) / float64(s.Delivered)
	}
	return s
}
