// Package burrsolvecfg loads tuning parameters for the burrsolve CLI
// from a YAML file, environment overrides, or an in-memory reader.
// Nothing under the solver's own packages imports this package — they
// take plain functional options instead — so a change here never
// ripples into the search itself.
package burrsolvecfg

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds every tunable the burrsolve CLI reads at startup. The
// CLI applies only Log.Level; the Search and Output values are loaded
// and validated but nothing in this module passes them on to the
// disassembler or the output code.
type Config struct {
	Search SearchConfig `mapstructure:"search"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// SearchConfig describes limits for the three-front BFS the
// disassembler runs; the disassembler itself does not read them (see
// Config).
type SearchConfig struct {
	// GroupCapFraction caps PhaseRemoveGroup/PhaseSlide's co-moving
	// piece count as a fraction of the piece count (n/GroupCapFraction,
	// integer division); the legacy algorithm's fixed n/2 is
	// GroupCapFraction: 2.
	GroupCapFraction int `mapstructure:"group_cap_fraction"`
	// MergeCap bounds how many earlier same-direction slides PhaseMerge
	// will try pairing against the latest one, per popped node.
	MergeCap int `mapstructure:"merge_cap"`
	// CancelPollNodes is how many popped BFS nodes pass between checks
	// of the cancellation context.
	CancelPollNodes int `mapstructure:"cancel_poll_nodes"`
	// TimeoutSeconds bounds the whole disassembly; zero means no limit.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	// AllowMirror registers all 48 signed-permutation orientations
	// instead of the 24 proper rotations when reading a puzzle file.
	AllowMirror bool `mapstructure:"allow_mirror"`
}

// OutputConfig controls how a solved Separation is rendered.
type OutputConfig struct {
	// Format selects the rendering: "text" or "json".
	Format string `mapstructure:"format"`
	// SuppressTrailingNewline matches the CLI's -n flag's default.
	SuppressTrailingNewline bool `mapstructure:"suppress_trailing_newline"`
}

// LogConfig controls burrlog.DefaultLogger's verbosity.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from configPath, falling back to defaults
// (and standard search locations) when configPath is empty or the file
// does not exist. Environment variables with a BURRSOLVE_ prefix
// override any key, e.g. BURRSOLVE_SEARCH_TIMEOUT_SECONDS.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("burrsolve")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/burrsolve")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// fall through on defaults
		} else if os.IsNotExist(err) {
			// fall through on defaults
		} else {
			return nil, fmt.Errorf("burrsolvecfg: reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("BURRSOLVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("burrsolvecfg: unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("burrsolvecfg: %w", err)
	}
	return &cfg, nil
}

// LoadFromReader loads configuration from in-memory content of the
// given viper config type ("yaml", "json", ...), skipping any file
// lookup. Useful for tests.
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("burrsolvecfg: reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("burrsolvecfg: unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("burrsolvecfg: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("search.group_cap_fraction", 2)
	v.SetDefault("search.merge_cap", 64)
	v.SetDefault("search.cancel_poll_nodes", 1)
	v.SetDefault("search.timeout_seconds", 0)
	v.SetDefault("search.allow_mirror", false)

	v.SetDefault("output.format", "text")
	v.SetDefault("output.suppress_trailing_newline", false)

	v.SetDefault("log.level", "info")
}

// Validate checks invariants Unmarshal cannot enforce on its own.
func (c *Config) Validate() error {
	if c.Search.GroupCapFraction < 1 {
		return fmt.Errorf("search.group_cap_fraction must be at least 1")
	}
	if c.Search.MergeCap < 0 {
		return fmt.Errorf("search.merge_cap must not be negative")
	}
	if c.Search.CancelPollNodes < 1 {
		return fmt.Errorf("search.cancel_poll_nodes must be at least 1")
	}
	if c.Search.TimeoutSeconds < 0 {
		return fmt.Errorf("search.timeout_seconds must not be negative")
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported output format: %s", c.Output.Format)
	}
	return nil
}
