package upload

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/forkful/forkful-client/config"
)

// PhotoUploader pushes recipe photos to S3 before the recipe itself is
// created, so the create payload can carry a plain image URL
type PhotoUploader struct {
	s3Config *config.S3Config
}

// NewPhotoUploader creates a PhotoUploader backed by the given S3 config
func NewPhotoUploader(s3Config *config.S3Config) *PhotoUploader {
	return &PhotoUploader{s3Config: s3Config}
}

// UploadFile reads a local image file and uploads it, returning the public URL
func (u *PhotoUploader) UploadFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read photo: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		ext = ".jpg"
	}
	fileName := fmt.Sprintf("recipe-photos/%s%s", uuid.New().String(), ext)

	return u.Upload(ctx, data, fileName)
}

// presignTTL is how long photo URLs from private buckets stay valid
const presignTTL = 7 * 24 * time.Hour

// Upload uploads image data under fileName and returns its URL: the public
// bucket URL, or a presigned GET when the bucket is private
func (u *PhotoUploader) Upload(ctx context.Context, data []byte, fileName string) (string, error) {
	_, err := u.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(http.DetectContentType(data)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	if u.s3Config.PrivateBucket {
		url, err := u.s3Config.GeneratePresignedURL(ctx, fileName, presignTTL)
		if err != nil {
			return "", fmt.Errorf("failed to presign photo URL: %w", err)
		}
		log.Printf("[PhotoUploader] uploaded %s (presigned)", fileName)
		return url, nil
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", u.s3Config.BucketName, fileName)
	log.Printf("[PhotoUploader] uploaded %s", publicURL)

	return publicURL, nil
}
