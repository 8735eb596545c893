// Package config handles application configuration and command-line argument parsing.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/bmatcuk/doublestar/v4"
)

// DeleteMode represents which selection of venv folders is offered for deletion
type DeleteMode int

const (
	// DeleteNone - analysis only, nothing is offered for deletion
	DeleteNone DeleteMode = iota
	// DeleteTopLargest - offer the top 5 largest venv folders
	DeleteTopLargest
	// DeleteUnused - offer every venv folder older than the unused-days threshold
	DeleteUnused
)

// TopLargestCount is how many of the largest folders the top-largest mode offers.
const TopLargestCount = 5

// String returns the string representation of DeleteMode
func (dm DeleteMode) String() string {
	switch dm {
	case DeleteNone:
		return "none"
	case DeleteTopLargest:
		return "top-largest"
	case DeleteUnused:
		return "unused"
	default:
		return "unknown"
	}
}

// ParseDeleteMode parses a string into a DeleteMode
func ParseDeleteMode(s string) (DeleteMode, error) {
	s = strings.ToLower(s)
	switch s {
	case "none", "":
		return DeleteNone, nil
	case "top-largest", "largest", "top":
		return DeleteTopLargest, nil
	case "unused", "stale":
		return DeleteUnused, nil
	default:
		return DeleteNone, fmt.Errorf("invalid delete mode: %s (valid: none, top-largest, unused; aliases: largest|top, stale)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for go-arg
func (dm *DeleteMode) UnmarshalText(text []byte) error {
	parsed, err := ParseDeleteMode(string(text))
	if err != nil {
		return err
	}
	*dm = parsed

	return nil
}

// Config holds the application configuration
type Config struct {
	RootPath   string     `arg:"positional" default:"." help:"Directory to analyze (default: current directory)"`
	MaxDepth   int        `arg:"--max-depth" default:"-1" help:"Maximum depth to search (-1 = unlimited)"`
	UnusedDays int        `arg:"--unused-days" default:"-1" help:"Days without access after which a venv counts as unused (-1 = disabled)"`
	Exclude    string     `arg:"--exclude" help:"Glob pattern of directories to skip, relative to the root (e.g. '**/node_modules')"`
	Verbose    bool       `arg:"-v,--verbose" help:"Show every venv folder instead of the top 5"`
	Delete     DeleteMode `arg:"--delete" default:"none" help:"Offer deletion after analysis: none|top-largest|unused (aliases: largest|top, stale)"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "Find Python virtual environment folders and reclaim their disk space"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "venv-sweep 1.0.0"
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := &Config{
		RootPath:   ".",
		MaxDepth:   -1,
		UnusedDays: -1,
		Delete:     DeleteNone,
	}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// PostProcessConfig applies post-processing logic to a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	if err := cfg.ValidateRoot(); err != nil {
		return nil, err
	}

	if err := cfg.ValidateOptions(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidateRoot validates that the root path exists and is a directory
func (cfg *Config) ValidateRoot() error {
	if cfg.RootPath == "" {
		return fmt.Errorf("root path is required")
	}

	info, err := os.Stat(cfg.RootPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist: %s", cfg.RootPath)
	}
	if err != nil {
		return fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", cfg.RootPath)
	}

	return nil
}

// ValidateOptions validates flag combinations and values
func (cfg *Config) ValidateOptions() error {
	if cfg.MaxDepth < -1 {
		return fmt.Errorf("max-depth must be -1 (unlimited) or >= 0, got %d", cfg.MaxDepth)
	}

	if cfg.UnusedDays < -1 {
		return fmt.Errorf("unused-days must be -1 (disabled) or >= 0, got %d", cfg.UnusedDays)
	}

	// The unused selection cannot exist without a staleness threshold
	if cfg.Delete == DeleteUnused && cfg.UnusedDays < 0 {
		return fmt.Errorf("--delete unused requires --unused-days")
	}

	if cfg.Exclude != "" && !doublestar.ValidatePattern(cfg.Exclude) {
		return fmt.Errorf("invalid exclude pattern: %s", cfg.Exclude)
	}

	return nil
}
