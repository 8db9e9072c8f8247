package s3

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"member-service/app/config"
	"member-service/app/port"
)

const uploadTimeout = 30 * time.Second

// S3API is the subset of the S3 client used by the uploader
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader implements port.FileUploader over S3. Objects are stored under
// <dir>/<uuid><ext> and addressed through the configured public base URL.
type Uploader struct {
	api           S3API
	bucket        string
	publicBaseURL string
	logger        *slog.Logger
}

// NewUploader creates an S3-backed file uploader
func NewUploader(cfg *config.Config, logger *slog.Logger) (*Uploader, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.S3Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	publicBaseURL := cfg.S3PublicBaseURL
	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &Uploader{
		api:           s3.NewFromConfig(awsCfg),
		bucket:        cfg.S3Bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		logger:        logger.With("component", "s3_uploader"),
	}, nil
}

// NewUploaderWithAPI creates an uploader with an injected API (useful for testing)
func NewUploaderWithAPI(api S3API, bucket, publicBaseURL string, logger *slog.Logger) port.FileUploader {
	return &Uploader{
		api:           api,
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		logger:        logger.With("component", "s3_uploader"),
	}
}

// Upload stores the object and returns its public URL
func (u *Uploader) Upload(ctx context.Context, dir, filename, contentType string, body io.Reader) (string, error) {
	key := buildKey(dir, filename)

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	_, err := u.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		u.logger.Error("failed to upload object", "key", key, "error", err)
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	url := u.publicBaseURL + "/" + key
	u.logger.Info("object uploaded", "key", key)
	return url, nil
}

// buildKey namespaces the object under dir with a fresh uuid, keeping the
// original extension so content type survives a round trip.
func buildKey(dir, filename string) string {
	ext := ""
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		ext = filename[idx:]
	}
	return fmt.Sprintf("%s/%s%s", strings.Trim(dir, "/"), uuid.New().String(), ext)
}
