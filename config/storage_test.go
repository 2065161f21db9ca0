package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3Config(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "test-key")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test-secret")
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("S3_BUCKET_NAME", "")
	t.Setenv("S3_BUCKET_PRIVATE", "")

	cfg, err := NewS3Config(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "forkful-recipe-photos", cfg.BucketName)
	assert.False(t, cfg.PrivateBucket)

	t.Setenv("S3_BUCKET_NAME", "my-photos")
	t.Setenv("S3_BUCKET_PRIVATE", "true")
	cfg, err = NewS3Config(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "my-photos", cfg.BucketName)
	assert.True(t, cfg.PrivateBucket)
}

func TestGeneratePresignedURL(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "test-key")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test-secret")
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("S3_BUCKET_NAME", "my-photos")

	cfg, err := NewS3Config(context.Background())
	require.NoError(t, err)

	// presigning is a local signature computation, no network involved
	url, err := cfg.GeneratePresignedURL(context.Background(), "recipe-photos/abc.jpg", time.Hour)
	require.NoError(t, err)
	assert.Contains(t, url, "my-photos")
	assert.Contains(t, url, "recipe-photos/abc.jpg")
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=3600")
}
