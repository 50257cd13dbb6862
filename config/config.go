package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/delliston/liftdispatch/logger"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/xyproto/randomstring"
	"gopkg.in/yaml.v3"
)

var Log = logger.GetLogger()

const RUN_NAME_LEN = 8

type Config struct {
	NumFloors    int           `yaml:"num_floors"`
	NumElevators int           `yaml:"num_elevators"`
	Steps        int           `yaml:"steps"`       // step budget for a batch run
	SpawnEvery   int           `yaml:"spawn_every"` // steps between passengers
	Passengers   int           `yaml:"passengers"`
	Seed         int64         `yaml:"seed"`
	Tick         time.Duration `yaml:"tick"` // wall time per step, 0 runs flat out
	LogLevel     string        `yaml:"log_level"`
	RunName      string        `yaml:"run_name"`
}

func Default() Config {
	return Config{
		NumFloors:    10,
		NumElevators: 3,
		Steps:        500,
		SpawnEvery:   3,
		Passengers:   40,
		Seed:         1,
		Tick:         0,
		LogLevel:     "info",
	}
}

// Load decodes the YAML file at path over the defaults. An empty path gives
// the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("reading config %s: %w", path, err)
	}
	defer file.Close()

	err = yaml.NewDecoder(file).Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return c, nil
}

// ApplyEnv overrides fields from the LIFT_* keys of a dotenv file.
// A missing file is not an error.
func (c *Config) ApplyEnv(path string) error {
	if path == "" {
		return nil
	}
	env, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		Log.Debug().Msgf("No env file at %s", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading env file %s: %w", path, err)
	}

	ints := map[string]*int{
		"LIFT_NUM_FLOORS":    &c.NumFloors,
		"LIFT_NUM_ELEVATORS": &c.NumElevators,
		"LIFT_STEPS":         &c.Steps,
		"LIFT_SPAWN_EVERY":   &c.SpawnEvery,
		"LIFT_PASSENGERS":    &c.Passengers,
	}
	for key, field := range ints {
		value, ok := env[key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*field = n
	}

	if value, ok := env["LIFT_SEED"]; ok {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("LIFT_SEED: %w", err)
		}
		c.Seed = seed
	}
	if value, ok := env["LIFT_TICK"]; ok {
		tick, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("LIFT_TICK: %w", err)
		}
		c.Tick = tick
	}
	if value, ok := env["LIFT_LOG_LEVEL"]; ok {
		c.LogLevel = value
	}
	if value, ok := env["LIFT_RUN_NAME"]; ok {
		c.RunName = value
	}
	return nil
}

func (c *Config) Validate() error {
	switch {
	case c.NumFloors < 2:
		return fmt.Errorf("num_floors must be at least 2, got %d", c.NumFloors)
	case c.NumElevators < 1:
		return fmt.Errorf("num_elevators must be at least 1, got %d", c.NumElevators)
	case c.Steps < 0:
		return fmt.Errorf("steps must not be negative, got %d", c.Steps)
	case c.SpawnEvery < 1:
		return fmt.Errorf("spawn_every must be at least 1, got %d", c.SpawnEvery)
	case c.Passengers < 0:
		return fmt.Errorf("passengers must not be negative, got %d", c.Passengers)
	case c.Tick < 0:
		return fmt.Errorf("tick must not be negative, got %v", c.Tick)
	}

	if c.RunName == "" {
		c.RunName = randomstring.EnglishFrequencyString(RUN_NAME_LEN)
		Log.Warn().Msgf("No run name provided, generated random name \"%v\"", c.RunName)
	}
	return nil
}

// Level maps LogLevel onto zerolog, falling back to info.
func (c *Config) Level() zerolog.Level {
	if c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		Log.Warn().Msgf("Unknown log level %q, using info", c.LogLevel)
		return zerolog.InfoLevel
	}
	return level
}
