// Package objectstore wraps the S3-compatible object store holding project
// file attachments.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/mosala-labs/mosala-backend/pkg/config"
	"github.com/mosala-labs/mosala-backend/pkg/logutils"
)

type Store struct {
	client *minio.Client
	bucket string
}

var (
	once  sync.Once
	store *Store
)

// GetStore returns the singleton object store, creating the bucket on first
// use when it does not exist yet.
func GetStore() *Store {
	once.Do(func() {
		cfg := config.GetConfig().ObjectStore
		client, err := minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			panic(err)
		}

		ctx := context.Background()
		exists, err := client.BucketExists(ctx, cfg.Bucket)
		if err != nil {
			panic(err)
		}
		if !exists {
			if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
				panic(err)
			}
			logutils.Log.Infof("Created bucket %s", cfg.Bucket)
		}
		store = &Store{client: client, bucket: cfg.Bucket}
	})
	return store
}

// Upload stores one attachment under a generated key and returns the key.
func (s *Store) Upload(ctx context.Context, projectID uint, filename string, r io.Reader, size int64, contentType string) (string, error) {
	objectKey := fmt.Sprintf("projects/%d/%s-%s", projectID, uuid.NewString(), filename)
	_, err := s.client.PutObject(ctx, s.bucket, objectKey, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return objectKey, nil
}

// Remove deletes the given object keys, continuing past individual
// failures so a half-deleted batch still shrinks.
func (s *Store) Remove(ctx context.Context, keys []string) error {
	var lastErr error
	for _, key := range keys {
		if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
			logutils.Log.Warnf("failed to remove object %s: %v", key, err)
			lastErr = err
		}
	}
	return lastErr
}
