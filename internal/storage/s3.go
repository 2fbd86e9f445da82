package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	apperrors "github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/errors"
)

const (
	// MaxDownloadTTL is the hard ceiling for presigned download URLs.
	// Caller-supplied TTLs are clamped, never rejected.
	MaxDownloadTTL = 24 * time.Hour

	// UploadURLTTL is how long a presigned upload URL stays usable.
	UploadURLTTL = 15 * time.Minute
)

// Config holds the bucket connection settings. Endpoint may point at any
// S3-compatible server (MinIO in development).
type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
}

// Gateway owns the binary object lifecycle: the database stores only keys
// and URLs, never bytes.
type Gateway struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// New builds a gateway. Missing credentials are a configuration failure and
// surface here, at startup, not on first use.
func New(ctx context.Context, cfg Config) (*Gateway, error) {
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("storage: access credentials are required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	return &Gateway{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
	}, nil
}

// NewUploadKey returns a date-partitioned random object key.
func NewUploadKey() string {
	d := time.Now()
	return fmt.Sprintf("uploads/%d/%02d/%v", d.Year(), d.Month(), uuid.New())
}

// PresignUpload returns a fresh key and a presigned PUT URL for it.
func (g *Gateway) PresignUpload(ctx context.Context, contentType string) (string, string, error) {
	key := NewUploadKey()

	req, err := g.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(UploadURLTTL))
	if err != nil {
		return "", "", fmt.Errorf("presign upload: %w", err)
	}

	return key, req.URL, nil
}

// PresignDownload returns a presigned GET URL for the key, with the TTL
// clamped to MaxDownloadTTL.
func (g *Gateway) PresignDownload(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := g.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ClampDownloadTTL(ttl)))
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}

	return req.URL, nil
}

// ClampDownloadTTL normalizes a caller-supplied TTL into (0, MaxDownloadTTL].
func ClampDownloadTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 || ttl > MaxDownloadTTL {
		return MaxDownloadTTL
	}
	return ttl
}

// Fetch streams an object so the server can proxy it without exposing
// storage credentials. The caller must close the reader.
func (g *Gateway) Fetch(ctx context.Context, key string) (io.ReadCloser, string, error) {
	out, err := g.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, "", apperrors.ErrObjectNotFound
		}
		return nil, "", fmt.Errorf("get object: %w", err)
	}

	contentType := "application/octet-stream"
	if out.ContentType != nil {
		contentType = *out.ContentType
	}
	return out.Body, contentType, nil
}

// Delete removes an object. Best effort: there is no retry, the caller
// surfaces failure as-is.
func (g *Gateway) Delete(ctx context.Context, key string) error {
	_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}
