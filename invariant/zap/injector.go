package zap

import (
	"fmt"
	"strings"

	constant "github.com/LerianStudio/lib-invariant/invariant/constants"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const callerSkipFrames = 1

// Environment controls the baseline logger profile.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentDevelopment Environment = "development"
	EnvironmentLocal       Environment = "local"
)

// Config contains the logger initialization inputs.
type Config struct {
	Environment Environment `validate:"required,oneof=production staging development local"`
	Level       string      `validate:"omitempty,oneof=debug info warn error"`
	// OTelLibraryName names the instrumentation scope of the otelzap bridge.
	// Empty uses the library's own scope name.
	OTelLibraryName string
	// Console selects the human-readable encoder instead of JSON.
	Console bool
}

var configValidator = validator.New()

// New creates a structured logger and returns it with a runtime-adjustable level handle.
func New(cfg Config) (*Logger, zap.AtomicLevel, error) {
	if err := configValidator.Struct(cfg); err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid zap config: %w", err)
	}

	if cfg.OTelLibraryName == "" {
		cfg.OTelLibraryName = constant.TelemetrySDKName
	}

	level, err := resolveLevel(cfg)
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	base := buildConfig(cfg)
	base.Level = level
	base.DisableStacktrace = true

	built, err := base.Build(
		zap.AddCallerSkip(callerSkipFrames),
		zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, otelzap.NewCore(cfg.OTelLibraryName))
		}),
	)
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("failed to build logger: %w", err)
	}

	return &Logger{logger: built, atomicLevel: level}, level, nil
}

func resolveLevel(cfg Config) (zap.AtomicLevel, error) {
	if strings.TrimSpace(cfg.Level) != "" {
		var parsed zapcore.Level
		if err := parsed.Set(cfg.Level); err != nil {
			return zap.AtomicLevel{}, fmt.Errorf("invalid level %q: %w", cfg.Level, err)
		}

		return zap.NewAtomicLevelAt(parsed), nil
	}

	if isDevelopment(cfg.Environment) {
		return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
	}

	return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
}

func isDevelopment(environment Environment) bool {
	return environment == EnvironmentDevelopment || environment == EnvironmentLocal
}

func buildConfig(cfg Config) zap.Config {
	var zc zap.Config
	if isDevelopment(cfg.Environment) {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}

	zc.Encoding = "json"
	if cfg.Console {
		zc.Encoding = "console"
	}

	zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return zc
}
