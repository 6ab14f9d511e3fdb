package buildmat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/buildmat/pkg/config"
	"github.com/dmitrymomot/buildmat/pkg/content"
	"github.com/dmitrymomot/buildmat/pkg/logger"
	"github.com/dmitrymomot/buildmat/pkg/messages"
	"github.com/dmitrymomot/buildmat/pkg/securityaudit"
	"github.com/dmitrymomot/buildmat/pkg/validator"
)

// ErrUnknownField is returned by ValidateField for unregistered field names.
var ErrUnknownField = errors.New("unknown field")

// Kit bundles the configured collaborators.
type Kit struct {
	Config   config.Config
	Logger   *slog.Logger
	Resolver content.Resolver
	Images   *validator.ImageValidator
	Messages *messages.Catalog
}

// Option configures New.
type Option func(*options)

type options struct {
	logger       *slog.Logger
	resolver     content.Resolver
	s3Options    []content.S3Option
	translations map[string]map[string]any
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithResolver replaces the resolver built from the storage configuration.
func WithResolver(r content.Resolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// WithS3Options passes extra options to the S3 resolver.
func WithS3Options(opts ...content.S3Option) Option {
	return func(o *options) {
		o.s3Options = append(o.s3Options, opts...)
	}
}

// WithTranslations merges extra translations into the message catalog.
func WithTranslations(translations map[string]map[string]any) Option {
	return func(o *options) {
		o.translations = translations
	}
}

// New builds a Kit from cfg.
func New(ctx context.Context, cfg config.Config, opts ...Option) (*Kit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	log := o.logger
	if log == nil {
		log = NewLogger(cfg)
	}

	resolver := o.resolver
	if resolver == nil {
		var err error
		resolver, err = newResolver(ctx, cfg.Storage, o.s3Options)
		if err != nil {
			return nil, err
		}
	}

	catalogOpts := []messages.Option{
		messages.WithDefaultLanguage(cfg.DefaultLocale),
		messages.WithLogger(log.With(logger.Component("messages"))),
	}
	if o.translations != nil {
		catalogOpts = append(catalogOpts, messages.WithTranslations(o.translations))
	}
	catalog, err := messages.New(catalogOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load message catalog: %w", err)
	}

	images := validator.NewImageValidator(resolver,
		validator.WithMaxImageBytes(cfg.Image.MaxBytes),
		validator.WithAllowedImageTypes(cfg.Image.AllowedTypes...),
		validator.WithImageLogger(log.With(logger.Component("image_validator"))),
	)

	log.DebugContext(ctx, "kit initialized",
		slog.String("storage_driver", cfg.Storage.Driver),
		slog.String("default_locale", catalog.DefaultLanguage()),
		slog.Int64("image_max_bytes", cfg.Image.MaxBytes),
	)

	return &Kit{
		Config:   cfg,
		Logger:   log,
		Resolver: resolver,
		Images:   images,
		Messages: catalog,
	}, nil
}

// NewLogger builds the logger described by cfg. Explicit LOG_LEVEL and
// LOG_FORMAT values override the environment defaults. Audit run IDs found in
// the context are added to every record.
func NewLogger(cfg config.Config, opts ...logger.Option) *slog.Logger {
	base := []logger.Option{
		logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
		logger.WithContextExtractors(securityaudit.RunIDExtractor),
	}
	if cfg.LogLevel != "" {
		base = append(base, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	if cfg.LogFormat != "" {
		base = append(base, logger.WithFormat(logger.ParseFormat(cfg.LogFormat)))
	}
	return logger.New(append(base, opts...)...)
}

func newResolver(ctx context.Context, cfg config.StorageConfig, s3Opts []content.S3Option) (content.Resolver, error) {
	switch strings.ToLower(cfg.Driver) {
	case config.DriverS3:
		opts := append([]content.S3Option{content.WithRequestTimeout(cfg.S3.RequestTimeout)}, s3Opts...)
		s3Resolver, err := content.NewS3Resolver(ctx, content.S3Config{
			Bucket:         cfg.S3.Bucket,
			Region:         cfg.S3.Region,
			AccessKeyID:    cfg.S3.AccessKeyID,
			SecretKey:      cfg.S3.SecretKey,
			Endpoint:       cfg.S3.Endpoint,
			ForcePathStyle: cfg.S3.ForcePathStyle,
		}, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create s3 resolver: %w", err)
		}
		return content.NewRouter(s3Resolver, map[string]content.Resolver{"s3": s3Resolver}), nil

	default:
		local, err := content.NewLocalResolver(cfg.LocalDir)
		if err != nil {
			return nil, fmt.Errorf("failed to create local resolver: %w", err)
		}
		return content.NewRouter(local, map[string]content.Resolver{"file": local}), nil
	}
}

// ValidateField runs the validator registered for field on value.
func (k *Kit) ValidateField(field, value string) (validator.Outcome, error) {
	fn, ok := validator.ForField(field)
	if !ok {
		return validator.Outcome{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownField, field, strings.Join(validator.FieldNames(), ", "))
	}
	return fn(value), nil
}

// ValidateImage checks an image reference with the configured policy.
func (k *Kit) ValidateImage(ctx context.Context, ref string) validator.ImageOutcome {
	return k.Images.Validate(ctx, ref)
}

// Audit runs the built-in security probes.
func (k *Kit) Audit(ctx context.Context, opts ...securityaudit.Option) securityaudit.Report {
	opts = append([]securityaudit.Option{securityaudit.WithLogger(k.Logger)}, opts...)
	return securityaudit.Run(ctx, securityaudit.DefaultProbes(), opts...)
}
