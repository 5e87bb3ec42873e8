// Package config loads the runtime settings shared by the tetris front-ends.
//
// Settings are layered: built-in defaults, then a .env file, then TETRIS_*
// environment variables, then command-line flags. Later layers win.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/Valerolactone/Tetris/tetris"
	"github.com/joho/godotenv"
)

// ErrInvalid is wrapped by every validation failure returned from Load.
var ErrInvalid = errors.New("invalid config")

// EnvPrefix prefixes the environment variable of every flag. The flag
// "move-repeat" is read from TETRIS_MOVE_REPEAT.
const EnvPrefix = "TETRIS_"

// EnvFileVar names the environment variable holding the .env file path.
const EnvFileVar = EnvPrefix + "ENV_FILE"

type Config struct {
	Columns      int
	Rows         int
	Gravity      time.Duration
	MoveRepeat   time.Duration
	RotateRepeat time.Duration

	// Seed drives the random shape source. Zero picks a fresh seed.
	Seed uint64
	// Preview is the number of upcoming shapes kept for the preview panel.
	Preview int

	CellSize int
	TickRate time.Duration
	Sound    bool
	Volume   float64
	Debug    bool
	Verbose  bool
	// LogFile receives log output when set. The terminal front-end discards
	// logs without it since they would overwrite the screen.
	LogFile string
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	board := tetris.DefaultConfig()
	return Config{
		Columns:      board.Columns,
		Rows:         board.Rows,
		Gravity:      board.Gravity,
		MoveRepeat:   board.MoveRepeat,
		RotateRepeat: board.RotateRepeat,
		Preview:      3,
		CellSize:     40,
		TickRate:     time.Second / 60,
		Sound:        true,
		Volume:       0.3,
	}
}

// Board converts the config into the board engine's settings.
func (c Config) Board() tetris.Config {
	return tetris.Config{
		Columns:      c.Columns,
		Rows:         c.Rows,
		Gravity:      c.Gravity,
		MoveRepeat:   c.MoveRepeat,
		RotateRepeat: c.RotateRepeat,
	}
}

// OpenLog opens LogFile for appending. It returns a nil file when no log
// file is configured.
func (c Config) OpenLog() (*os.File, error) {
	if c.LogFile == "" {
		return nil, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Columns < 4:
		return fmt.Errorf("%w: columns must be at least 4, got %d", ErrInvalid, c.Columns)
	case c.Rows < 4:
		return fmt.Errorf("%w: rows must be at least 4, got %d", ErrInvalid, c.Rows)
	case c.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive, got %s", ErrInvalid, c.Gravity)
	case c.MoveRepeat <= 0:
		return fmt.Errorf("%w: move repeat must be positive, got %s", ErrInvalid, c.MoveRepeat)
	case c.RotateRepeat <= 0:
		return fmt.Errorf("%w: rotate repeat must be positive, got %s", ErrInvalid, c.RotateRepeat)
	case c.Preview < 0:
		return fmt.Errorf("%w: preview must not be negative, got %d", ErrInvalid, c.Preview)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalid, c.CellSize)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick rate must be positive, got %s", ErrInvalid, c.TickRate)
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("%w: volume must be within [0, 1], got %g", ErrInvalid, c.Volume)
	}
	return nil
}

// Load builds a Config from defaults, the .env file, the environment and
// the given command-line arguments (without the program name). A missing
// .env file is not an error.
func Load(name string, args []string) (Config, error) {
	cfg := Default()

	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	cfg.bind(fset)

	dotenv, err := readEnvFile()
	if err != nil {
		return cfg, err
	}

	var envErr error
	fset.VisitAll(func(f *flag.Flag) {
		if envErr != nil {
			return
		}
		key := EnvKey(f.Name)
		value, ok := os.LookupEnv(key)
		if !ok {
			value, ok = dotenv[key]
		}
		if !ok {
			return
		}
		if err := fset.Set(f.Name, value); err != nil {
			envErr = fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, value, err)
		}
	})
	if envErr != nil {
		return cfg, envErr
	}

	if err := fset.Parse(args); err != nil {
		return cfg, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) bind(fset *flag.FlagSet) {
	fset.IntVar(&c.Columns, "columns", c.Columns, "Board width in cells.")
	fset.IntVar(&c.Rows, "rows", c.Rows, "Board height in cells.")
	fset.DurationVar(&c.Gravity, "gravity", c.Gravity, "Initial time between gravity steps.")
	fset.DurationVar(&c.MoveRepeat, "move-repeat", c.MoveRepeat, "Delay between repeated horizontal moves.")
	fset.DurationVar(&c.RotateRepeat, "rotate-repeat", c.RotateRepeat, "Delay between repeated rotations.")
	fset.Uint64Var(&c.Seed, "seed", c.Seed, "Seed for the shape sequence, 0 for a random one.")
	fset.IntVar(&c.Preview, "preview", c.Preview, "Number of upcoming shapes to show.")
	fset.IntVar(&c.CellSize, "cell-size", c.CellSize, "Cell size in pixels for the window front-end.")
	fset.DurationVar(&c.TickRate, "tick-rate", c.TickRate, "Frame interval for the terminal front-end.")
	fset.BoolVar(&c.Sound, "sound", c.Sound, "Play sound effects.")
	fset.Float64Var(&c.Volume, "volume", c.Volume, "Sound effect volume between 0 and 1.")
	fset.BoolVar(&c.Debug, "debug", c.Debug, "Show the debug overlay on start.")
	fset.BoolVar(&c.Verbose, "verbose", c.Verbose, "Log every spawned piece.")
	fset.StringVar(&c.LogFile, "log-file", c.LogFile, "Append log output to this file.")
}

// EnvKey returns the environment variable read for a flag.
func EnvKey(flagName string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

func readEnvFile() (map[string]string, error) {
	path := ".env"
	if p, ok := os.LookupEnv(EnvFileVar); ok && p != "" {
		path = p
	}

	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return values, nil
}
