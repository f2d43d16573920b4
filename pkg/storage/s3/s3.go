// Package s3 implements the S3-compatible object storage adapter.
// It supports AWS S3, Aliyun OSS, MinIO and other S3-compatible services.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/commercegrid/mediabridge/pkg/storage"
)

// ErrCredentialsMissing is returned when the adapter is constructed without
// an access key / secret key pair. Callers surface this as a configuration
// error instead of silently falling back to the local platform.
var ErrCredentialsMissing = errors.New("s3 access key and secret key are required")

// DefaultPageSize is the page size used when the caller does not bound
// ListObjects.
const DefaultPageSize = 1000

// Config holds S3 storage configuration.
type Config struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PathStyle     bool // Use path-style URLs (required for MinIO)
	PublicBaseURL string
}

// Storage implements the storage.Storage interface using S3-compatible
// object storage.
type Storage struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// New creates a new S3 storage adapter.
func New(cfg Config) (*Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, ErrCredentialsMissing
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	var optFns []func(*awsconfig.LoadOptions) error
	optFns = append(optFns, awsconfig.WithRegion(cfg.Region))
	optFns = append(optFns, awsconfig.WithCredentialsProvider(
		credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	))

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), optFns...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	var s3OptFns []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3OptFns = append(s3OptFns, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}
	if cfg.PathStyle {
		s3OptFns = append(s3OptFns, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	return &Storage{
		client:        s3.NewFromConfig(awsCfg, s3OptFns...),
		bucket:        cfg.Bucket,
		publicBaseURL: publicBase(cfg),
	}, nil
}

func publicBase(cfg Config) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimSuffix(cfg.PublicBaseURL, "/")
	}
	if cfg.Endpoint != "" {
		endpoint := strings.TrimSuffix(cfg.Endpoint, "/")
		if cfg.PathStyle {
			return fmt.Sprintf("%s/%s", endpoint, cfg.Bucket)
		}
		return endpoint
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

// PutObject uploads a file to S3. An existing object at the same key is
// overwritten.
func (s *Storage) PutObject(ctx context.Context, key string, data io.Reader, contentType string, size int64) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        data,
		ContentType: aws.String(contentType),
	}

	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	_, err := s.client.PutObject(ctx, input)
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}

	return nil
}

// GetObject retrieves a file from S3.
func (s *Storage) GetObject(ctx context.Context, key string) (io.ReadCloser, error) {
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}

	return output.Body, nil
}

// DeleteObject removes a file from S3. S3 treats deleting a missing key as
// success, which matches the idempotent-delete contract.
func (s *Storage) DeleteObject(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}

	return nil
}

// ObjectExists checks if an object exists in S3.
func (s *Storage) ObjectExists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if strings.Contains(err.Error(), "NotFound") || strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, fmt.Errorf("head object: %w", err)
	}

	return true, nil
}

// ListObjects returns one page of objects under prefix using ListObjectsV2
// continuation tokens.
func (s *Storage) ListObjects(ctx context.Context, prefix string, cursor string, limit int32) (*storage.ListPage, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	input := &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		MaxKeys: aws.Int32(limit),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}
	if cursor != "" {
		input.ContinuationToken = aws.String(cursor)
	}

	output, err := s.client.ListObjectsV2(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}

	page := &storage.ListPage{
		Objects: make([]storage.ObjectInfo, 0, len(output.Contents)),
	}
	for _, obj := range output.Contents {
		info := storage.ObjectInfo{Key: aws.ToString(obj.Key)}
		if obj.Size != nil {
			info.Size = *obj.Size
		}
		if obj.LastModified != nil {
			info.LastModified = *obj.LastModified
		}
		page.Objects = append(page.Objects, info)
	}
	if aws.ToBool(output.IsTruncated) {
		page.HasMore = true
		page.NextCursor = aws.ToString(output.NextContinuationToken)
	}

	return page, nil
}

// GenerateURL returns the public URL of the object.
func (s *Storage) GenerateURL(ctx context.Context, key string) (string, error) {
	return s.publicBaseURL + "/" + strings.TrimPrefix(key, "/"), nil
}

// PublicBaseURL returns the absolute URL prefix of public objects. The
// service layer uses it to recognise cloud URLs during delete and migrate.
func (s *Storage) PublicBaseURL() string {
	return s.publicBaseURL
}

// Type returns "s3" as the storage type identifier.
func (s *Storage) Type() string {
	return storage.TypeS3
}
