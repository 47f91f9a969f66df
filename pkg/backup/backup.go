// Package backup snapshots the record store to S3-compatible object
// storage. Each snapshot uploads every record under a timestamped
// prefix, so restores pick a point in time and read the objects back.
package backup

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/liftlog-dev/liftlog/pkg/store"
)

// recordKeys are the store records a snapshot covers.
var recordKeys = []string{store.KeyWorkouts, store.KeyPlan}

// ObjectStorage is the slice of the S3 client a snapshot needs.
type ObjectStorage interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ClientConfig holds the connection settings for an S3-compatible
// endpoint.
type ClientConfig struct {
	Region    string
	Endpoint  string // optional, for MinIO and friends
	AccessKey string
	SecretKey string
}

// NewClient builds an S3 client from explicit settings, without the
// shared-config loading chain.
func NewClient(cfg ClientConfig) *s3.Client {
	opts := s3.Options{
		Region: cfg.Region,
		Credentials: aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     cfg.AccessKey,
				SecretAccessKey: cfg.SecretKey,
			}, nil
		}),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

// Snapshotter uploads record snapshots.
type Snapshotter struct {
	client ObjectStorage
	store  store.Store
	bucket string
	prefix string
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Snapshotter writing under prefix in bucket.
func New(client ObjectStorage, st store.Store, bucket, prefix string, logger *slog.Logger) *Snapshotter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Snapshotter{
		client: client,
		store:  st,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
		now:    time.Now,
	}
}

// Snapshot uploads every present record under a shared timestamp prefix
// and returns the object keys written. Records absent from the store
// are skipped, not errors. Any upload failure aborts the snapshot.
func (s *Snapshotter) Snapshot(ctx context.Context) ([]string, error) {
	stamp := s.now().UTC().Format("2006-01-02T15-04-05Z")

	var written []string
	for _, record := range recordKeys {
		data, err := s.store.Get(ctx, record)
		if err != nil {
			return written, fmt.Errorf("read record %s: %w", record, err)
		}
		if data == nil {
			s.logger.Debug("skipping absent record", "record", record)
			continue
		}

		key := path.Join(s.prefix, stamp, record+".json")
		_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String("application/json"),
		})
		if err != nil {
			return written, fmt.Errorf("upload %s: %w", key, err)
		}

		s.logger.Info("uploaded snapshot object", "key", key, "bytes", len(data))
		written = append(written, key)
	}
	return written, nil
}
