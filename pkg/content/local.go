package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// sniffLen is the maximum number of bytes http.DetectContentType looks at.
const sniffLen = 512

// LocalResolver implements Resolver for files on the local filesystem.
// All references are confined to baseDir to prevent path traversal attacks.
// Symlinks are followed only while their target stays inside baseDir.
type LocalResolver struct {
	baseDir string // Absolute path with symlinks resolved
}

// NewLocalResolver creates a resolver rooted at baseDir.
// baseDir is resolved to an absolute, symlink-free path and must already exist.
func NewLocalResolver(baseDir string) (*LocalResolver, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve base directory: %v", ErrFailedToAbsPath, err)
	}

	info, err := os.Stat(absBaseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidConfig, absBaseDir)
	}

	realBaseDir, err := filepath.EvalSymlinks(absBaseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &LocalResolver{baseDir: realBaseDir}, nil
}

// Open opens the referenced file for reading.
func (r *LocalResolver) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, classifyContextError(err, "open")
	}

	path, err := r.resolvePath(ref)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, classifyFSError(err, ErrFailedToOpen)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, classifyFSError(err, ErrFailedToStat)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, ref)
	}

	return f, nil
}

// Size returns the size of the referenced file in bytes.
func (r *LocalResolver) Size(ctx context.Context, ref string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, classifyContextError(err, "stat")
	}

	path, err := r.resolvePath(ref)
	if err != nil {
		return 0, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, classifyFSError(err, ErrFailedToStat)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%w: %s", ErrIsDirectory, ref)
	}

	return info.Size(), nil
}

// MIMEType detects the media type from the file's leading bytes.
// Detection relies on magic numbers rather than the file extension, so a
// renamed executable is never reported as an image. Generic results
// (application/octet-stream) are reported as undeclared.
func (r *LocalResolver) MIMEType(ctx context.Context, ref string) (string, error) {
	rc, err := r.Open(ctx, ref)
	if err != nil {
		return "", err
	}
	defer func() { _ = rc.Close() }()

	buffer := make([]byte, sniffLen)
	n, err := io.ReadFull(rc, buffer)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("%w: %v", ErrFailedToRead, err)
	}
	if n == 0 {
		return "", nil
	}

	detected := normalizeMIMEType(http.DetectContentType(buffer[:n]))
	if detected == "application/octet-stream" {
		return "", nil
	}
	return detected, nil
}

// resolvePath validates and resolves a reference within the base directory.
// Both absolute-looking and relative references are treated as relative to
// baseDir; anything escaping it, lexically or through a symlink, is rejected.
func (r *LocalResolver) resolvePath(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.ContainsRune(ref, 0) {
		return "", ErrInvalidRef
	}

	cleaned := filepath.Clean(filepath.FromSlash(ref))
	absPath, err := filepath.Abs(filepath.Join(r.baseDir, cleaned))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToAbsPath, err)
	}

	if !r.contains(absPath) {
		return "", fmt.Errorf("%w: %s", ErrInvalidRef, ref)
	}

	realPath, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Missing files and dangling links surface as ErrNotFound on open.
			return absPath, nil
		}
		return "", classifyFSError(err, ErrFailedToStat)
	}
	if !r.contains(realPath) {
		return "", fmt.Errorf("%w: %s links outside the base directory", ErrInvalidRef, ref)
	}

	return realPath, nil
}

func (r *LocalResolver) contains(path string) bool {
	return path == r.baseDir || strings.HasPrefix(path, r.baseDir+string(filepath.Separator))
}

// classifyFSError maps filesystem errors onto package sentinels.
func classifyFSError(err error, fallback error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	default:
		return fmt.Errorf("%w: %v", fallback, err)
	}
}

func classifyContextError(err error, operation string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s operation", ErrOperationTimeout, operation)
	}
	return fmt.Errorf("%w: %s operation", ErrOperationCanceled, operation)
}
