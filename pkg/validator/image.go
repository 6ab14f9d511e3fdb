package validator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/buildmat/pkg/content"
	"github.com/dmitrymomot/buildmat/pkg/logger"
)

// DefaultMaxImageBytes is the default image size limit (5 MiB).
const DefaultMaxImageBytes int64 = 5 << 20

// DefaultAllowedImageTypes lists the MIME types accepted by default.
var DefaultAllowedImageTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

var imageFormatLabels = map[string]string{
	"image/jpeg": "JPEG",
	"image/jpg":  "JPEG",
	"image/png":  "PNG",
	"image/webp": "WebP",
	"image/gif":  "GIF",
	"image/heic": "HEIC",
	"image/heif": "HEIF",
	"image/avif": "AVIF",
}

// ImageValidator checks user-selected image references before they are
// attached to a project or material. It never rewrites the image.
// Safe for concurrent use.
type ImageValidator struct {
	resolver     content.Resolver
	maxBytes     int64
	allowedTypes []string
	logger       *slog.Logger
}

// ImageOption configures an ImageValidator.
type ImageOption func(*ImageValidator)

// WithMaxImageBytes sets the maximum accepted image size. Non-positive values are ignored.
func WithMaxImageBytes(n int64) ImageOption {
	return func(v *ImageValidator) {
		if n > 0 {
			v.maxBytes = n
		}
	}
}

// WithAllowedImageTypes replaces the accepted MIME types. Empty lists are ignored.
func WithAllowedImageTypes(types ...string) ImageOption {
	return func(v *ImageValidator) {
		normalized := make([]string, 0, len(types))
		for _, t := range types {
			if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
				normalized = append(normalized, t)
			}
		}
		if len(normalized) > 0 {
			v.allowedTypes = normalized
		}
	}
}

// WithImageLogger sets the logger used to report resolver failures.
func WithImageLogger(l *slog.Logger) ImageOption {
	return func(v *ImageValidator) {
		if l != nil {
			v.logger = l
		}
	}
}

// NewImageValidator creates an image validator reading through resolver.
func NewImageValidator(resolver content.Resolver, opts ...ImageOption) *ImageValidator {
	v := &ImageValidator{
		resolver:     resolver,
		maxBytes:     DefaultMaxImageBytes,
		allowedTypes: slices.Clone(DefaultAllowedImageTypes),
		logger:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateImageReference validates ref with the default image policy.
func ValidateImageReference(ctx context.Context, resolver content.Resolver, ref string) ImageOutcome {
	return NewImageValidator(resolver).Validate(ctx, ref)
}

// Validate checks the referenced image. An empty reference means no image was
// selected and is accepted. Otherwise the reference is opened for reading,
// its size and declared MIME type are checked against the policy, and the
// MIME type must map to a known file extension. The read stream is closed on
// every path. Resolver failures are reported as rejections, never as errors.
//
// Validate blocks on I/O; event-loop callers should use ValidateAsync.
func (v *ImageValidator) Validate(ctx context.Context, ref string) ImageOutcome {
	if strings.TrimSpace(ref) == "" {
		return acceptImage()
	}

	if v.resolver == nil {
		v.logger.WarnContext(ctx, "image validation without resolver", logger.Ref(ref))
		return rejectImage(ReasonImageInaccessible, "Cannot access selected image", nil)
	}

	rc, err := v.resolver.Open(ctx, ref)
	if err != nil {
		v.logger.WarnContext(ctx, "cannot open image reference",
			logger.Ref(ref),
			logger.Error(err),
		)
		if errors.Is(err, content.ErrPermissionDenied) {
			return rejectImage(ReasonImagePermissionDenied, "Permission denied to access image", nil)
		}
		return rejectImage(ReasonImageInaccessible, "Cannot access selected image", nil)
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			v.logger.WarnContext(ctx, "failed to close image stream",
				logger.Ref(ref),
				logger.Error(cerr),
			)
		}
	}()

	size, err := v.resolver.Size(ctx, ref)
	if err != nil {
		return v.ioError(ctx, ref, err)
	}
	if size > v.maxBytes {
		return rejectImage(ReasonImageTooLarge,
			fmt.Sprintf("Image file too large (max %s)", formatBytes(v.maxBytes)),
			map[string]string{"max": formatBytes(v.maxBytes)},
		)
	}

	mimeType, err := v.resolver.MIMEType(ctx, ref)
	if err != nil {
		return v.ioError(ctx, ref, err)
	}
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if !slices.Contains(v.allowedTypes, mimeType) {
		formats := v.formatList()
		return rejectImage(ReasonImageUnsupportedType,
			"Unsupported image format. Use "+formats,
			map[string]string{"formats": formats, "type": mimeType},
		)
	}

	if content.ExtensionForMIMEType(mimeType) == "" {
		return rejectImage(ReasonImageInvalid, "Invalid image file", map[string]string{"type": mimeType})
	}

	return acceptImage()
}

// ValidateAsync runs Validate on a separate goroutine. The returned channel
// receives exactly one outcome and is then closed.
func (v *ImageValidator) ValidateAsync(ctx context.Context, ref string) <-chan ImageOutcome {
	ch := make(chan ImageOutcome, 1)
	go func() {
		defer close(ch)
		ch <- v.Validate(ctx, ref)
	}()
	return ch
}

func (v *ImageValidator) ioError(ctx context.Context, ref string, err error) ImageOutcome {
	v.logger.WarnContext(ctx, "image reference read failed",
		logger.Ref(ref),
		logger.Error(err),
	)
	if errors.Is(err, content.ErrPermissionDenied) {
		return rejectImage(ReasonImagePermissionDenied, "Permission denied to access image", nil)
	}
	return rejectImage(ReasonImageIOError,
		"Error validating image: "+err.Error(),
		map[string]string{"error": err.Error()},
	)
}

// formatList renders the allowed types as "JPEG, PNG, or WebP".
func (v *ImageValidator) formatList() string {
	var labels []string
	for _, t := range v.allowedTypes {
		label, ok := imageFormatLabels[t]
		if !ok {
			label = strings.ToUpper(strings.TrimPrefix(t, "image/"))
		}
		if !slices.Contains(labels, label) {
			labels = append(labels, label)
		}
	}

	switch len(labels) {
	case 0:
		return ""
	case 1:
		return labels[0]
	case 2:
		return labels[0] + " or " + labels[1]
	default:
		return strings.Join(labels[:len(labels)-1], ", ") + ", or " + labels[len(labels)-1]
	}
}

// formatBytes renders whole mebibytes as "5MB" and anything else in bytes.
func formatBytes(n int64) string {
	const mib = 1 << 20
	if n >= mib && n%mib == 0 {
		return strconv.FormatInt(n/mib, 10) + "MB"
	}
	return strconv.FormatInt(n, 10) + " bytes"
}
