package content

import "errors"

var (
	// Reference errors
	ErrInvalidRef        = errors.New("invalid content reference") // Empty refs and path traversal attempts
	ErrUnsupportedScheme = errors.New("unsupported content reference scheme")
	ErrNotFound          = errors.New("content not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrIsDirectory       = errors.New("content reference points to a directory")
	ErrFailedToOpen      = errors.New("failed to open content")
	ErrFailedToStat      = errors.New("failed to stat content")
	ErrFailedToRead      = errors.New("failed to read content")
	ErrFailedToAbsPath   = errors.New("failed to get absolute path")

	// S3-specific errors
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrRequestTimeout     = errors.New("request timed out")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")

	// Context and cancellation errors
	ErrOperationTimeout  = errors.New("operation timed out")
	ErrOperationCanceled = errors.New("operation canceled")

	// Configuration errors
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")
)
