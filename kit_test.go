package buildmat_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/buildmat"
	"github.com/dmitrymomot/buildmat/pkg/config"
	"github.com/dmitrymomot/buildmat/pkg/content"
	"github.com/dmitrymomot/buildmat/pkg/logger"
	"github.com/dmitrymomot/buildmat/pkg/validator"
)

func loadConfig(t *testing.T, env map[string]string) config.Config {
	t.Helper()
	cfg, err := config.Load(config.WithEnvironment(env))
	require.NoError(t, err)
	return cfg
}

func writeJPEG(t *testing.T, dir, name string, size int) {
	t.Helper()
	data := make([]byte, size)
	copy(data, "\xff\xd8\xff\xe0\x00\x10JFIF\x00")
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func TestNew_LocalStorage(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeJPEG(t, dir, "slab.jpg", 2048)
	writeJPEG(t, dir, "big.jpg", 4096)

	cfg := loadConfig(t, map[string]string{
		"STORAGE_LOCAL_DIR": dir,
		"IMAGE_MAX_BYTES":   "3000",
		"DEFAULT_LOCALE":    "es",
	})

	kit, err := buildmat.New(context.Background(), cfg, buildmat.WithLogger(logger.Discard()))
	require.NoError(t, err)
	ctx := context.Background()

	assert.True(t, kit.ValidateImage(ctx, "slab.jpg").Accepted)
	assert.True(t, kit.ValidateImage(ctx, "file://slab.jpg").Accepted)
	assert.True(t, kit.ValidateImage(ctx, "").Accepted)

	out := kit.ValidateImage(ctx, "big.jpg")
	assert.Equal(t, validator.ReasonImageTooLarge, out.Reason)
	assert.Equal(t, "Image file too large (max 3000 bytes)", out.Message)

	assert.Equal(t, validator.ReasonImageInaccessible, kit.ValidateImage(ctx, "s3://slab.jpg").Reason)
	assert.Equal(t, validator.ReasonImageInaccessible, kit.ValidateImage(ctx, "missing.jpg").Reason)

	assert.Equal(t, "es", kit.Messages.DefaultLanguage())
	assert.Equal(t, "Imagen demasiado grande (máximo 3000 bytes)", kit.Messages.Image("", out))
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	t.Run("validation", func(t *testing.T) {
		cfg := loadConfig(t, nil)
		cfg.Storage.Driver = "ftp"
		_, err := buildmat.New(context.Background(), cfg)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("missing local dir", func(t *testing.T) {
		cfg := loadConfig(t, map[string]string{"STORAGE_LOCAL_DIR": filepath.Join(t.TempDir(), "nope")})
		_, err := buildmat.New(context.Background(), cfg, buildmat.WithLogger(logger.Discard()))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "local resolver")
	})

	t.Run("unsupported locale", func(t *testing.T) {
		cfg := loadConfig(t, map[string]string{"DEFAULT_LOCALE": "de", "STORAGE_LOCAL_DIR": t.TempDir()})
		_, err := buildmat.New(context.Background(), cfg, buildmat.WithLogger(logger.Discard()))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "message catalog")
	})

	t.Run("extra locale", func(t *testing.T) {
		cfg := loadConfig(t, map[string]string{"DEFAULT_LOCALE": "de", "STORAGE_LOCAL_DIR": t.TempDir()})
		kit, err := buildmat.New(context.Background(), cfg,
			buildmat.WithLogger(logger.Discard()),
			buildmat.WithTranslations(map[string]map[string]any{
				"de": {"validation": map[string]any{"invalid_number": "Ungültiges Zahlenformat"}},
			}),
		)
		require.NoError(t, err)
		out, err := kit.ValidateField(validator.FieldPrice, ".")
		require.NoError(t, err)
		assert.Equal(t, "Ungültiges Zahlenformat", kit.Messages.Outcome("de", out))
	})
}

type fakeS3 struct {
	objects map[string]string
	types   map[string]string
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	body, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &smithy.GenericAPIError{Code: "NotFound", Message: "Not Found"}
	}
	return &s3.HeadObjectOutput{
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(f.types[aws.ToString(in.Key)]),
	}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &smithy.GenericAPIError{Code: "NotFound", Message: "Not Found"}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestNew_S3Storage(t *testing.T) {
	t.Parallel()

	client := &fakeS3{
		objects: map[string]string{"uploads/a.png": "png-bytes", "uploads/doc.pdf": "pdf"},
		types:   map[string]string{"uploads/a.png": "image/png", "uploads/doc.pdf": "application/pdf"},
	}
	cfg := loadConfig(t, map[string]string{
		"STORAGE_DRIVER":    "s3",
		"STORAGE_S3_BUCKET": "materials",
		"STORAGE_S3_REGION": "eu-west-1",
	})

	kit, err := buildmat.New(context.Background(), cfg,
		buildmat.WithLogger(logger.Discard()),
		buildmat.WithS3Options(content.WithS3Client(client)),
	)
	require.NoError(t, err)
	ctx := context.Background()

	assert.True(t, kit.ValidateImage(ctx, "uploads/a.png").Accepted)
	assert.True(t, kit.ValidateImage(ctx, "s3://uploads/a.png").Accepted)
	assert.Equal(t, validator.ReasonImageUnsupportedType, kit.ValidateImage(ctx, "uploads/doc.pdf").Reason)
	assert.Equal(t, validator.ReasonImageInaccessible, kit.ValidateImage(ctx, "uploads/none.png").Reason)
	assert.Equal(t, validator.ReasonImageInaccessible, kit.ValidateImage(ctx, "file://uploads/a.png").Reason)
}

func TestKit_ValidateField(t *testing.T) {
	t.Parallel()
	kit, err := buildmat.New(context.Background(), loadConfig(t, map[string]string{"STORAGE_LOCAL_DIR": t.TempDir()}),
		buildmat.WithLogger(logger.Discard()),
	)
	require.NoError(t, err)

	out, err := kit.ValidateField(validator.FieldProjectName, "  Torre  Norte ")
	require.NoError(t, err)
	assert.Equal(t, "Torre Norte", out.Value)

	_, err = kit.ValidateField("colour", "red")
	assert.ErrorIs(t, err, buildmat.ErrUnknownField)
}

func TestKit_Audit(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	cfg := loadConfig(t, map[string]string{"STORAGE_LOCAL_DIR": t.TempDir(), "APP_ENV": "production"})

	kit, err := buildmat.New(context.Background(), cfg,
		buildmat.WithLogger(buildmat.NewLogger(cfg, logger.WithOutput(buf))),
	)
	require.NoError(t, err)

	report := kit.Audit(context.Background())
	require.NoError(t, report.Err())
	assert.Contains(t, buf.String(), `"msg":"security audit finished"`)
	assert.Contains(t, buf.String(), `"run_id":"`+report.RunID+`"`)
	assert.Contains(t, buf.String(), `"env":"production"`)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cfg := loadConfig(t, map[string]string{"APP_ENV": "production", "LOG_LEVEL": "warn", "LOG_FORMAT": "text"})
	log := buildmat.NewLogger(cfg, logger.WithOutput(buf))

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "service=buildmat")
}
