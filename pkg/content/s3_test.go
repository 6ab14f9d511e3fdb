package content_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/buildmat/pkg/content"
)

// MockS3Client is a mock implementation of the S3Client interface
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.HeadObjectOutput), args.Error(1)
}

func (m *MockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func newTestS3Resolver(t *testing.T, client *MockS3Client, opts ...content.S3Option) *content.S3Resolver {
	t.Helper()
	opts = append(opts, content.WithS3Client(client))
	resolver, err := content.NewS3Resolver(context.Background(), content.S3Config{
		Bucket: "site-photos",
		Region: "eu-west-1",
	}, opts...)
	require.NoError(t, err)
	return resolver
}

func headInput(key string) any {
	return mock.MatchedBy(func(in *s3.HeadObjectInput) bool {
		return aws.ToString(in.Bucket) == "site-photos" && aws.ToString(in.Key) == key
	})
}

func TestNewS3Resolver(t *testing.T) {
	t.Run("requires bucket and region", func(t *testing.T) {
		_, err := content.NewS3Resolver(context.Background(), content.S3Config{Bucket: "b"})
		assert.ErrorIs(t, err, content.ErrInvalidConfig)

		_, err = content.NewS3Resolver(context.Background(), content.S3Config{Region: "us-east-1"})
		assert.ErrorIs(t, err, content.ErrInvalidConfig)
	})

	t.Run("builds real client from config", func(t *testing.T) {
		resolver, err := content.NewS3Resolver(context.Background(), content.S3Config{
			Bucket:         "site-photos",
			Region:         "us-east-1",
			AccessKeyID:    "key",
			SecretKey:      "secret",
			Endpoint:       "http://localhost:9000",
			ForcePathStyle: true,
		})
		require.NoError(t, err)
		assert.NotNil(t, resolver)
	})
}

func TestS3Resolver_SizeAndMIMEType(t *testing.T) {
	client := new(MockS3Client)
	client.On("HeadObject", mock.Anything, headInput("projects/42/slab.jpg"), mock.Anything).
		Return(&s3.HeadObjectOutput{
			ContentLength: aws.Int64(1024),
			ContentType:   aws.String("Image/JPEG"),
		}, nil)
	resolver := newTestS3Resolver(t, client, content.WithRequestTimeout(time.Second))

	size, err := resolver.Size(context.Background(), "/projects/42/slab.jpg")
	require.NoError(t, err)
	assert.Equal(t, int64(1024), size)

	mimeType, err := resolver.MIMEType(context.Background(), "projects/42/slab.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mimeType)

	client.AssertExpectations(t)
}

func TestS3Resolver_Open(t *testing.T) {
	client := new(MockS3Client)
	client.On("GetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return aws.ToString(in.Key) == "slab.png"
	}), mock.Anything).Return(&s3.GetObjectOutput{
		Body: io.NopCloser(strings.NewReader("png-bytes")),
	}, nil)
	resolver := newTestS3Resolver(t, client)

	rc, err := resolver.Open(context.Background(), "slab.png")
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestS3Resolver_InvalidRef(t *testing.T) {
	resolver := newTestS3Resolver(t, new(MockS3Client))

	_, err := resolver.Open(context.Background(), "")
	assert.ErrorIs(t, err, content.ErrInvalidRef)

	_, err = resolver.Size(context.Background(), "photos/../../secrets")
	assert.ErrorIs(t, err, content.ErrInvalidRef)
}

func TestS3Resolver_ErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "no such key", err: &types.NoSuchKey{}, expected: content.ErrNotFound},
		{name: "not found", err: &types.NotFound{}, expected: content.ErrNotFound},
		{name: "no such bucket", err: &types.NoSuchBucket{}, expected: content.ErrBucketNotFound},
		{name: "access denied", err: &smithy.GenericAPIError{Code: "AccessDenied"}, expected: content.ErrPermissionDenied},
		{name: "forbidden", err: &smithy.GenericAPIError{Code: "Forbidden"}, expected: content.ErrPermissionDenied},
		{name: "throttled", err: &smithy.GenericAPIError{Code: "SlowDown"}, expected: content.ErrServiceUnavailable},
		{name: "request timeout", err: &smithy.GenericAPIError{Code: "RequestTimeout"}, expected: content.ErrRequestTimeout},
		{name: "deadline", err: context.DeadlineExceeded, expected: content.ErrOperationTimeout},
		{name: "canceled", err: context.Canceled, expected: content.ErrOperationCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockS3Client)
			client.On("HeadObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)
			client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)
			resolver := newTestS3Resolver(t, client)

			_, err := resolver.Size(context.Background(), "slab.jpg")
			assert.ErrorIs(t, err, tt.expected)

			_, err = resolver.Open(context.Background(), "slab.jpg")
			assert.ErrorIs(t, err, tt.expected)
		})
	}

	t.Run("unknown api error keeps code", func(t *testing.T) {
		client := new(MockS3Client)
		client.On("HeadObject", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "InternalError", Message: "boom"})
		resolver := newTestS3Resolver(t, client)

		_, err := resolver.MIMEType(context.Background(), "slab.jpg")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "InternalError")

		var apiErr smithy.APIError
		assert.True(t, errors.As(err, &apiErr))
	})
}
