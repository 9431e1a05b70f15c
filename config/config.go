// Package config loads runtime settings for the lab command from an
// optional .env file, the environment, and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	// ErrInvalidValue indicates an environment variable that does not parse.
	ErrInvalidValue = errors.New("config: invalid value")
	// ErrInvalidConfig indicates a setting outside its allowed range.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Environment variable names.
const (
	EnvWindowWidth  = "LAB_WIN_WIDTH"
	EnvWindowHeight = "LAB_WIN_HEIGHT"
	EnvCellSize     = "LAB_CELL_SIZE"
	EnvSeed         = "LAB_SEED"
	EnvOutput       = "LAB_OUTPUT"
	EnvFormat       = "LAB_FORMAT"
	EnvStyle        = "LAB_STYLE"
)

// Output formats understood by the lab command.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatText = "txt"
)

// Config holds the lab command's settings.
type Config struct {
	WindowWidth  int    // Picture width in pixels
	WindowHeight int    // Picture height in pixels
	CellSize     int    // Side of one maze cell in pixels
	Seed         int64  // Generator seed; 0 asks the command to pick one
	Output       string // Output file path, "-" for stdout
	Format       string // png, svg or txt
	Style        string // reference or walls
}

// Default returns an 800×600 picture of 20px cells.
func Default() Config {
	return Config{
		WindowWidth:  800,
		WindowHeight: 600,
		CellSize:     20,
		Seed:         0,
		Output:       "maze.png",
		Format:       FormatPNG,
		Style:        "reference",
	}
}

// Load starts from Default, loads the given .env files (".env" when none
// are named) and overlays every LAB_* variable that is set.
// A missing .env file is logged and ignored.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[LAB] [INFO] .env file not found or could not be loaded: %v", err)
	}

	cfg := Default()
	var err error
	if cfg.WindowWidth, err = getEnvAsInt(EnvWindowWidth, cfg.WindowWidth); err != nil {
		return Config{}, err
	}
	if cfg.WindowHeight, err = getEnvAsInt(EnvWindowHeight, cfg.WindowHeight); err != nil {
		return Config{}, err
	}
	if cfg.CellSize, err = getEnvAsInt(EnvCellSize, cfg.CellSize); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = getEnvAsInt64(EnvSeed, cfg.Seed); err != nil {
		return Config{}, err
	}
	cfg.Output = getEnvWithDefault(EnvOutput, cfg.Output)
	cfg.Format = strings.ToLower(getEnvWithDefault(EnvFormat, cfg.Format))
	cfg.Style = strings.ToLower(getEnvWithDefault(EnvStyle, cfg.Style))

	return cfg, nil
}

// Columns returns the number of maze columns that fit the window.
func (c Config) Columns() int {
	if c.CellSize <= 0 {
		return 0
	}
	return c.WindowWidth / c.CellSize
}

// Rows returns the number of maze rows that fit the window.
func (c Config) Rows() int {
	if c.CellSize <= 0 {
		return 0
	}
	return c.WindowHeight / c.CellSize
}

// Validate checks sizes, format and style.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	}
	if c.Columns() < 1 || c.Rows() < 1 {
		return fmt.Errorf("%w: %dx%d window holds no %dpx cell", ErrInvalidConfig, c.WindowWidth, c.WindowHeight, c.CellSize)
	}
	switch c.Format {
	case FormatPNG, FormatSVG, FormatText:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format)
	}
	switch c.Style {
	case "reference", "walls":
	default:
		return fmt.Errorf("%w: style %q", ErrInvalidConfig, c.Style)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: empty output path", ErrInvalidConfig)
	}
	return nil
}

// getEnvWithDefault returns the variable's value, or def when unset or empty.
func getEnvWithDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvAsInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, key, v, err)
	}
	return n, nil
}

func getEnvAsInt64(key string, def int64) (int64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, key, v, err)
	}
	return n, nil
}
