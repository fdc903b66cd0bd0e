// Package storage keeps uploaded images in an S3-compatible bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/parley-chat/parley/internal/domain/shared"
	sharedConfig "github.com/parley-chat/parley/internal/shared/config"
	"github.com/parley-chat/parley/internal/shared/logger"
)

// Seams for tests.
var (
	loadDefaultAWSConfig  = config.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// objectAPI is the subset of *s3.Client the store needs.
type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Object is one file to upload.
type Object struct {
	Body        io.Reader
	Size        int64
	ContentType string
	Filename    string
}

type S3ObjectStore struct {
	api     objectAPI
	bucket  string
	baseURL string
	logger  logger.Interface
}

func NewS3ObjectStore(ctx context.Context, cfg sharedConfig.StorageConfig, log logger.Interface) (*S3ObjectStore, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &S3ObjectStore{
		api:     client,
		bucket:  cfg.Bucket,
		baseURL: publicBaseURL(cfg),
		logger:  log.Named("storage.s3"),
	}, nil
}

// publicBaseURL is the prefix clients load objects from.
func publicBaseURL(cfg sharedConfig.StorageConfig) string {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	case cfg.Endpoint != "" && cfg.UsePathStyle:
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	case cfg.Endpoint != "":
		return strings.TrimRight(cfg.Endpoint, "/")
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}

// Upload stores obj under folder with a random name and returns where it
// can be fetched.
func (s *S3ObjectStore) Upload(ctx context.Context, folder string, obj Object) (shared.ImageRef, error) {
	key := storageKey(folder, obj.Filename, obj.ContentType)

	in := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        obj.Body,
		ContentType: aws.String(obj.ContentType),
	}
	if obj.Size > 0 {
		in.ContentLength = aws.Int64(obj.Size)
	}

	if _, err := s.api.PutObject(ctx, in); err != nil {
		s.logger.Errorw("failed to upload object", "key", key, "error", err)
		return shared.ImageRef{}, fmt.Errorf("failed to upload object: %w", err)
	}

	s.logger.Debugw("object uploaded", "key", key, "size", obj.Size)
	return shared.ImageRef{URL: s.baseURL + "/" + key, StorageID: key}, nil
}

func (s *S3ObjectStore) Delete(ctx context.Context, storageID string) error {
	if storageID == "" {
		return nil
	}
	_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storageID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", storageID, err)
	}
	return nil
}

func storageKey(folder, filename, contentType string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			ext = exts[0]
		}
	}
	return path.Join(folder, uuid.NewString()+ext)
}
