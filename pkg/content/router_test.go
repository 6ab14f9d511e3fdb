package content_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/buildmat/pkg/content"
)

// recordingResolver remembers the last reference it received.
type recordingResolver struct {
	name    string
	lastRef string
}

func (r *recordingResolver) Open(_ context.Context, ref string) (io.ReadCloser, error) {
	r.lastRef = ref
	return io.NopCloser(strings.NewReader(r.name)), nil
}

func (r *recordingResolver) Size(_ context.Context, ref string) (int64, error) {
	r.lastRef = ref
	return int64(len(r.name)), nil
}

func (r *recordingResolver) MIMEType(_ context.Context, ref string) (string, error) {
	r.lastRef = ref
	return "image/" + r.name, nil
}

func TestRouter(t *testing.T) {
	ctx := context.Background()
	local := &recordingResolver{name: "local"}
	remote := &recordingResolver{name: "remote"}
	router := content.NewRouter(local, map[string]content.Resolver{
		"file": local,
		"S3":   remote,
	})

	t.Run("routes by scheme", func(t *testing.T) {
		mimeType, err := router.MIMEType(ctx, "s3://projects/42/slab.jpg")
		require.NoError(t, err)
		assert.Equal(t, "image/remote", mimeType)
		assert.Equal(t, "projects/42/slab.jpg", remote.lastRef)
	})

	t.Run("scheme match is case-insensitive", func(t *testing.T) {
		size, err := router.Size(ctx, "FILE://photos/a.png")
		require.NoError(t, err)
		assert.Equal(t, int64(len("local")), size)
		assert.Equal(t, "photos/a.png", local.lastRef)
	})

	t.Run("no scheme uses fallback", func(t *testing.T) {
		rc, err := router.Open(ctx, "photos/b.png")
		require.NoError(t, err)
		defer func() { _ = rc.Close() }()
		assert.Equal(t, "photos/b.png", local.lastRef)
	})

	t.Run("unknown scheme", func(t *testing.T) {
		_, err := router.Open(ctx, "content://media/1")
		assert.ErrorIs(t, err, content.ErrUnsupportedScheme)
	})

	t.Run("empty reference", func(t *testing.T) {
		_, err := router.Size(ctx, "")
		assert.ErrorIs(t, err, content.ErrInvalidRef)
	})

	t.Run("no fallback", func(t *testing.T) {
		strict := content.NewRouter(nil, map[string]content.Resolver{"s3": remote})
		_, err := strict.MIMEType(ctx, "photos/c.png")
		assert.ErrorIs(t, err, content.ErrUnsupportedScheme)
	})
}
