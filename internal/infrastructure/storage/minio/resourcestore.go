// Package minio stores the downloadable resource library (funding guides,
// frameworks) and issues presigned download links for granted resources.
package minio

import (
	"context"
	"io"
	"net/url"
	"path"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/culturiq/engine/internal/config"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/pkg/errors"
)

// MinIOAPI abstracts the minio client for testing.
type MinIOAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expiry time.Duration, reqParams url.Values) (*url.URL, error)
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// ResourceStore serves the resource library from one bucket.
type ResourceStore struct {
	client MinIOAPI
	cfg    config.MinIOConfig
	logger logging.Logger
}

// NewResourceStore connects and makes sure the bucket exists.
func NewResourceStore(cfg config.MinIOConfig, log logging.Logger) (*ResourceStore, error) {
	applyDefaults(&cfg)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create minio client")
	}

	store := &ResourceStore{client: client, cfg: cfg, logger: log}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.ensureBucket(ctx); err != nil {
		return nil, err
	}

	log.Info("MinIO resource store connected",
		logging.String("endpoint", cfg.Endpoint),
		logging.String("bucket", cfg.Bucket))
	return store, nil
}

// NewResourceStoreWithClient injects a client, used by tests.
func NewResourceStoreWithClient(client MinIOAPI, cfg config.MinIOConfig, log logging.Logger) *ResourceStore {
	applyDefaults(&cfg)
	return &ResourceStore{client: client, cfg: cfg, logger: log}
}

func applyDefaults(cfg *config.MinIOConfig) {
	if cfg.Bucket == "" {
		cfg.Bucket = "culturiq-resources"
	}
	if cfg.PresignExpiry == 0 {
		cfg.PresignExpiry = time.Hour
	}
}

func (s *ResourceStore) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeServiceUnavailable, "failed to reach minio")
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to create resource bucket")
	}
	return nil
}

// PresignedDownload returns a time-limited URL for a stored resource file.
// The link forces a download with the file's own name.
func (s *ResourceStore) PresignedDownload(ctx context.Context, storagePath string) (string, error) {
	if _, err := s.client.StatObject(ctx, s.cfg.Bucket, storagePath, minio.StatObjectOptions{}); err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return "", errors.New(errors.ErrCodeResourceNotFound, "resource file not found").
				WithDetail(storagePath)
		}
		return "", errors.Wrap(err, errors.ErrCodeExternalService, "failed to stat resource file")
	}

	params := url.Values{}
	params.Set("response-content-disposition", `attachment; filename="`+path.Base(storagePath)+`"`)

	u, err := s.client.PresignedGetObject(ctx, s.cfg.Bucket, storagePath, s.cfg.PresignExpiry, params)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeExternalService, "failed to presign resource download")
	}
	return u.String(), nil
}

// Upload writes or replaces a resource file.
func (s *ResourceStore) Upload(ctx context.Context, storagePath string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.cfg.Bucket, storagePath, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeExternalService, "failed to upload resource file")
	}
	s.logger.Info("resource uploaded", logging.String("path", storagePath))
	return nil
}

// HealthCheck verifies the bucket is reachable.
func (s *ResourceStore) HealthCheck(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeServiceUnavailable, "minio unreachable")
	}
	if !exists {
		return errors.New(errors.ErrCodeServiceUnavailable, "resource bucket missing").
			WithDetail(s.cfg.Bucket)
	}
	return nil
}
