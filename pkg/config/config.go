package config

import (
	"fmt"
	"strings"
	"time"
)

// Storage drivers.
const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// Config is the full buildmat configuration.
type Config struct {
	AppEnv        string `env:"APP_ENV" envDefault:"development"`
	ServiceName   string `env:"SERVICE_NAME" envDefault:"buildmat"`
	LogLevel      string `env:"LOG_LEVEL"`  // empty: chosen by AppEnv
	LogFormat     string `env:"LOG_FORMAT"` // empty: chosen by AppEnv
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`

	Image   ImageConfig   `envPrefix:"IMAGE_"`
	Storage StorageConfig `envPrefix:"STORAGE_"`
}

// ImageConfig is the image reference policy.
type ImageConfig struct {
	MaxBytes     int64    `env:"MAX_BYTES" envDefault:"5242880"`
	AllowedTypes []string `env:"ALLOWED_TYPES" envSeparator:"," envDefault:"image/jpeg,image/jpg,image/png,image/webp"`
}

// StorageConfig selects where image references are resolved.
type StorageConfig struct {
	Driver   string   `env:"DRIVER" envDefault:"local"`
	LocalDir string   `env:"LOCAL_DIR" envDefault:"."`
	S3       S3Config `envPrefix:"S3_"`
}

type S3Config struct {
	Bucket         string        `env:"BUCKET"`
	Region         string        `env:"REGION"`
	AccessKeyID    string        `env:"ACCESS_KEY_ID"`
	SecretKey      string        `env:"SECRET_KEY"`
	Endpoint       string        `env:"ENDPOINT"`
	ForcePathStyle bool          `env:"FORCE_PATH_STYLE" envDefault:"false"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// IsProduction reports whether AppEnv names a production environment.
func (c Config) IsProduction() bool {
	switch strings.ToLower(c.AppEnv) {
	case "production", "prod":
		return true
	}
	return false
}

// Validate checks values the environment parser cannot.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "", "json", "text":
	default:
		return fmt.Errorf("%w: LOG_FORMAT must be json or text, got %q", ErrInvalidConfig, c.LogFormat)
	}

	if c.Image.MaxBytes <= 0 {
		return fmt.Errorf("%w: IMAGE_MAX_BYTES must be positive", ErrInvalidConfig)
	}
	if len(c.Image.AllowedTypes) == 0 {
		return fmt.Errorf("%w: IMAGE_ALLOWED_TYPES must not be empty", ErrInvalidConfig)
	}

	switch strings.ToLower(c.Storage.Driver) {
	case DriverLocal:
		if c.Storage.LocalDir == "" {
			return fmt.Errorf("%w: STORAGE_LOCAL_DIR is required for the local driver", ErrInvalidConfig)
		}
	case DriverS3:
		if c.Storage.S3.Bucket == "" || c.Storage.S3.Region == "" {
			return fmt.Errorf("%w: STORAGE_S3_BUCKET and STORAGE_S3_REGION are required for the s3 driver", ErrInvalidConfig)
		}
		if c.Storage.S3.RequestTimeout < 0 {
			return fmt.Errorf("%w: STORAGE_S3_REQUEST_TIMEOUT must not be negative", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown STORAGE_DRIVER %q", ErrInvalidConfig, c.Storage.Driver)
	}

	return nil
}
