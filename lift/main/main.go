package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/delliston/liftdispatch/config"
	"github.com/delliston/liftdispatch/lift"
	"github.com/delliston/liftdispatch/lift/sim"
	"github.com/delliston/liftdispatch/logger"
	"github.com/eiannone/keyboard"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	envPath := flag.String("env", ".env", "dotenv file with LIFT_* overrides")
	interactive := flag.Bool("interactive", false, "drive the building from the keyboard")
	steps := flag.Int("steps", 0, "step budget, overrides the config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cfg.ApplyEnv(*envPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *steps > 0 {
		cfg.Steps = *steps
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.GetLoggerConfigured(cfg.Level())
	log.Info().Msgf("Run %s: %d floors, %d elevators, %d passengers",
		cfg.RunName, cfg.NumFloors, cfg.NumElevators, cfg.Passengers)

	b := sim.NewBuilding(cfg)
	if *interactive {
		if err := drive(b, cfg.Seed); err != nil {
			log.Error().Err(err).Msg("Reading keyboard")
			os.Exit(1)
		}
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := b.Run(ctx, cfg.Steps, cfg.Tick); err != nil {
			log.Warn().Err(err).Msg("Run interrupted")
		}
	}
	if stats := b.Stats(); !b.Done() {
		log.Warn().Msgf("%d passengers riding, %d waiting at end of run", stats.Riding, stats.Waiting)
	}
	report(b)
}

func report(b *sim.Building) {
	fmt.Printf("--- %s after %d steps ---\n", b.Name(), b.StepCount())
	for i, snap := range b.Dispatcher().Snapshot() {
		fmt.Printf("%v\n    %v\n", b.Cars()[i], snap)
	}
	for f := lift.Floor(0); f <= b.Dispatcher().MaxFloor(); f++ {
		if l := b.Landing(f); l.Waiting() > 0 {
			fmt.Printf("F%s: %d waiting (↑ %v, ↓ %v)\n", f, l.Waiting(), l.Lit(lift.UP), l.Lit(lift.DOWN))
		}
	}
	fmt.Println(b.Stats())
}

// drive reads single keys until q or Ctrl-C:
//
//	u, d    direction for the next passenger
//	0-9     passenger waiting at that floor, random destination
//	space   one step
//	s       queues and stats
func drive(b *sim.Building, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	dir := lift.UP
	top := int(b.Dispatcher().MaxFloor())
	fmt.Println("u/d: direction, 0-9: passenger, space: step, s: status, q: quit")

	for {
		char, key, err := keyboard.GetSingleKey()
		if err != nil {
			return err
		}
		if key == keyboard.KeyCtrlC || char == 'q' || char == 'Q' {
			fmt.Println("Exit")
			return nil
		}

		switch {
		case char == 'u' || char == 'U':
			dir = lift.UP
			fmt.Println("Next passenger goes", dir)
		case char == 'd' || char == 'D':
			dir = lift.DOWN
			fmt.Println("Next passenger goes", dir)
		case char >= '0' && char <= '9':
			start := int(char - '0')
			if start > top {
				fmt.Printf("No F%d, top floor is F%d\n", start, top)
				continue
			}
			dest, ok := pickDest(rng, start, top, dir)
			if !ok {
				fmt.Printf("Nowhere to go %s from F%d\n", dir, start)
				continue
			}
			if _, err := b.Inject(lift.Floor(start), lift.Floor(dest)); err != nil {
				fmt.Println(err)
			}
		case key == keyboard.KeySpace || char == ' ':
			b.Step()
		case char == 's' || char == 'S':
			report(b)
		}
	}
}

func pickDest(rng *rand.Rand, start, top int, dir lift.Direction) (int, bool) {
	if dir == lift.UP {
		if start >= top {
			return 0, false
		}
		return start + 1 + rng.Intn(top-start), true
	}
	if start <= 0 {
		return 0, false
	}
	return rng.Intn(start), true
}
