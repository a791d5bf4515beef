package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/huangsam/gad/schema"
)

// Default values for configuration.
const (
	DefaultDurationWeeks   = 12
	DefaultAutoDetectCount = 5
	MaxDurationWeeks       = 520
)

// DefaultWorkers is the default number of concurrent repository workers.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// RenderConfig holds the resolved display options for one render pass.
// It is immutable once built and passed by reference into the renderer.
type RenderConfig struct {
	Border      schema.BorderStyle
	Display     schema.DisplayType
	Orientation schema.Orientation
	Legend      bool
	Totals      bool
	Width       int // Max grid columns per table (0 = no bound)
}

// Config holds the runtime configuration for one invocation.
// This struct remains the "final, validated" config.
type Config struct {
	Repositories []string // Repository paths in configured order, ~ expanded
	Authors      []string // Explicit author identifiers in configured order
	AutoDetect   int      // Top-N author auto-detection (0 = disabled)
	Duration     int      // Visualization window in weeks
	Fetch        bool     // Update repositories before querying
	Clear        bool     // Clear the screen before display
	Exceptions   bool     // Show full error detail on failure
	Workers      int      // Concurrent repository workers
	Verbosity    int      // Log verbosity level

	Render RenderConfig
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	Repositories []string `mapstructure:"repositories"`
	Authors      []string `mapstructure:"authors"`
	AutoDetect   int      `mapstructure:"auto-detect"`
	Border       string   `mapstructure:"border"`
	Clear        bool     `mapstructure:"clear"`
	Duration     int      `mapstructure:"duration"`
	Display      string   `mapstructure:"display"`
	Exceptions   bool     `mapstructure:"exceptions"`
	Fetch        bool     `mapstructure:"fetch"`
	Legend       bool     `mapstructure:"legend"`
	Orientation  string   `mapstructure:"orientation"`
	Totals       bool     `mapstructure:"totals"`
	Verbose      int      `mapstructure:"verbose"`
	Width        int      `mapstructure:"width"`
	Workers      int      `mapstructure:"workers"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Duration validation ---
	if input.Duration < 1 || input.Duration > MaxDurationWeeks {
		return &ConfigError{
			Field: "duration",
			Msg:   fmt.Sprintf("must be between 1 and %d weeks (received %d)", MaxDurationWeeks, input.Duration),
		}
	}
	cfg.Duration = input.Duration

	// --- 2. Auto-detect validation ---
	if input.AutoDetect < 0 {
		return &ConfigError{
			Field: "auto-detect",
			Msg:   fmt.Sprintf("author count must be positive (received %d)", input.AutoDetect),
		}
	}
	cfg.AutoDetect = input.AutoDetect

	// --- 3. Workers validation ---
	if input.Workers <= 0 {
		return &ConfigError{
			Field: "workers",
			Msg:   fmt.Sprintf("must be greater than 0 (received %d)", input.Workers),
		}
	}
	cfg.Workers = input.Workers

	// --- 4. Display option validation ---
	border := schema.BorderStyle(strings.ToLower(input.Border))
	if _, ok := schema.ValidBorderStyles[border]; !ok {
		return &ConfigError{Field: "border", Msg: fmt.Sprintf("must be ascii, single or double (received %q)", input.Border)}
	}
	display := schema.DisplayType(strings.ToLower(input.Display))
	if _, ok := schema.ValidDisplayTypes[display]; !ok {
		return &ConfigError{Field: "display", Msg: fmt.Sprintf("must be numeric or block (received %q)", input.Display)}
	}
	orientation := schema.Orientation(strings.ToLower(input.Orientation))
	if _, ok := schema.ValidOrientations[orientation]; !ok {
		return &ConfigError{Field: "orientation", Msg: fmt.Sprintf("must be vertical or horizontal (received %q)", input.Orientation)}
	}
	if input.Width < 0 {
		return &ConfigError{Field: "width", Msg: fmt.Sprintf("must not be negative (received %d)", input.Width)}
	}
	cfg.Render = RenderConfig{
		Border:      border,
		Display:     display,
		Orientation: orientation,
		Legend:      input.Legend,
		Totals:      input.Totals,
		Width:       input.Width,
	}

	// --- 5. Repositories ---
	repos := input.Repositories
	if len(repos) == 0 {
		repos = []string{"."}
	}
	cfg.Repositories = make([]string, 0, len(repos))
	for _, r := range repos {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		cfg.Repositories = append(cfg.Repositories, ExpandHome(r))
	}
	if len(cfg.Repositories) == 0 {
		return &ConfigError{Field: "repositories", Msg: "no repository paths configured"}
	}

	// --- 6. Authors ---
	cfg.Authors = make([]string, 0, len(input.Authors))
	for _, a := range input.Authors {
		if a = strings.TrimSpace(a); a != "" {
			cfg.Authors = append(cfg.Authors, a)
		}
	}

	// --- 7. Simple passthrough flags ---
	cfg.Fetch = input.Fetch
	cfg.Clear = input.Clear
	cfg.Exceptions = input.Exceptions
	cfg.Verbosity = input.Verbose

	return nil
}

// ExpandHome expands a leading ~ in a filesystem path to the user's
// home directory. Paths without a leading ~ are returned unchanged.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}
