package invariant

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/LerianStudio/lib-invariant/invariant/assert"
	"github.com/LerianStudio/lib-invariant/invariant/backtrace"
	"github.com/LerianStudio/lib-invariant/invariant/highlight"
	"github.com/LerianStudio/lib-invariant/invariant/log"
	"github.com/LerianStudio/lib-invariant/invariant/panics"
)

// Config holds the process-wide settings of the library.
type Config struct {
	// ColorMode is auto, always or never.
	ColorMode string `env:"INVARIANT_COLOR" validate:"omitempty,oneof=auto always never"`
	// PaletteFile is a YAML palette registered over the default colors.
	PaletteFile string `env:"INVARIANT_PALETTE_FILE" validate:"omitempty,file"`
	// Production redacts panic values and stacks in telemetry and logs.
	Production bool `env:"INVARIANT_PRODUCTION"`
	// ContractsDebugOnly skips pre- and post-conditions in release builds.
	ContractsDebugOnly bool `env:"INVARIANT_CONTRACTS_DEBUG_ONLY"`
	// BacktraceDepth caps captured frames. Zero means backtrace.DefaultMaxDepth.
	BacktraceDepth int `env:"INVARIANT_BACKTRACE_DEPTH" validate:"gte=0,lte=4096"`
}

// LoadConfig reads Config from the environment and validates it.
func LoadConfig() (Config, error) {
	var cfg Config

	if err := SetConfigFromEnvVars(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.ColorMode == "" {
		cfg.ColorMode = highlight.ModeAuto.String()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the config's fields.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid invariant config: %w", err)
	}

	return nil
}

// Apply installs the config process-wide: color mode and palette, production
// mode, contract checking and backtrace depth. The depth only applies to the
// runtime provider; a custom backtrace.Provider is left in place. Nothing is
// changed when the config is invalid or the palette cannot be loaded.
func (c Config) Apply() error {
	if err := c.Validate(); err != nil {
		return err
	}

	mode, err := highlight.ParseMode(c.ColorMode)
	if err != nil {
		return err
	}

	var palette []highlight.Highlight

	if c.PaletteFile != "" {
		palette, err = highlight.LoadPaletteFile(c.PaletteFile)
		if err != nil {
			return fmt.Errorf("apply invariant config: %w", err)
		}
	}

	highlight.SetMode(mode)
	highlight.RegisterAll(palette...)
	panics.SetProductionMode(c.Production)
	assert.SetContractsDebugOnly(c.ContractsDebugOnly)

	if _, ok := backtrace.DefaultProvider().(backtrace.RuntimeProvider); ok {
		backtrace.SetProvider(backtrace.RuntimeProvider{MaxDepth: c.BacktraceDepth})
	}

	return nil
}

// Setup loads and applies the config from the environment. A non-nil
// logger also receives every failure before the default handler runs.
func Setup(logger log.Logger) (Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Apply(); err != nil {
		return Config{}, err
	}

	if logger != nil {
		if err := panics.SetHandler(panics.LoggingHandler(logger, nil)); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}
