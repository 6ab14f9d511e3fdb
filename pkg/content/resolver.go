package content

import (
	"context"
	"io"
	"mime"
	"strings"
)

// Resolver gives read access to the content behind a reference.
// Implementations must be safe for concurrent use.
type Resolver interface {
	// Open returns a stream over the referenced content. Callers must close it.
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
	// Size returns the content length in bytes.
	Size(ctx context.Context, ref string) (int64, error)
	// MIMEType returns the declared media type without parameters,
	// or an empty string when the backend declares none.
	MIMEType(ctx context.Context, ref string) (string, error)
}

var mimeExtensions = map[string]string{
	"image/jpeg":      ".jpg",
	"image/jpg":       ".jpg",
	"image/pjpeg":     ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"image/gif":       ".gif",
	"image/bmp":       ".bmp",
	"image/tiff":      ".tiff",
	"image/heic":      ".heic",
	"image/heif":      ".heif",
	"image/avif":      ".avif",
	"image/svg+xml":   ".svg",
	"application/pdf": ".pdf",
}

// ExtensionForMIMEType returns the canonical extension (with dot) for mimeType,
// or an empty string when the type is unknown. Parameters such as charset are
// ignored and the comparison is case-insensitive.
func ExtensionForMIMEType(mimeType string) string {
	return mimeExtensions[normalizeMIMEType(mimeType)]
}

// normalizeMIMEType lowercases the media type and drops any parameters.
func normalizeMIMEType(mimeType string) string {
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" {
		return ""
	}
	if mediaType, _, err := mime.ParseMediaType(mimeType); err == nil {
		return mediaType
	}
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
