package config

import (
	"errors"
	"fmt"
	"maps"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	envFiles    []string
	environment map[string]string
}

// WithEnvFiles loads the given .env files before parsing. Missing files are
// an error. Without this option a ".env" in the working directory is loaded
// when present.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, files...)
	}
}

// WithEnvironment parses from env instead of the process environment.
// Values from env files are used only for keys missing in env.
func WithEnvironment(env map[string]string) Option {
	return func(o *options) {
		if o.environment == nil {
			o.environment = make(map[string]string, len(env))
		}
		maps.Copy(o.environment, env)
	}
}

// Load reads and validates the configuration.
func Load(opts ...Option) (Config, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var cfg Config
	if o.environment != nil {
		environment := make(map[string]string)
		if len(o.envFiles) > 0 {
			fromFiles, err := godotenv.Read(o.envFiles...)
			if err != nil {
				return Config{}, errors.Join(ErrLoadingEnvFile, err)
			}
			maps.Copy(environment, fromFiles)
		}
		maps.Copy(environment, o.environment)

		if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
			return Config{}, errors.Join(ErrParsingConfig, err)
		}
	} else {
		if len(o.envFiles) > 0 {
			if err := godotenv.Load(o.envFiles...); err != nil {
				return Config{}, errors.Join(ErrLoadingEnvFile, err)
			}
		} else {
			// the default .env file is optional
			_ = godotenv.Load()
		}

		if err := env.Parse(&cfg); err != nil {
			return Config{}, errors.Join(ErrParsingConfig, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad works like Load but panics on failure.
func MustLoad(opts ...Option) Config {
	cfg, err := Load(opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}
