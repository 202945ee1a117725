package backup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"filestorage/core/remote"
	"filestorage/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const contentType = "application/octet-stream"

// Report summarizes a backup run.
type Report struct {
	Uploaded int   `json:"uploaded"`
	Skipped  int   `json:"skipped"`
	Bytes    int64 `json:"bytes"`
}

// Service uploads the contents of a local engine to a remote bucket.
type Service struct {
	engine *storage.Engine
	client remote.Client
	bucket string
	cfg    Config
	logger *zap.Logger
}

// NewService creates a new backup service.
func NewService(engine *storage.Engine, client remote.Client, bucket string, cfg Config, logger *zap.Logger) *Service {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &Service{
		engine: engine,
		client: client,
		bucket: bucket,
		cfg:    cfg,
		logger: logger,
	}
}

// Run performs a single backup pass.
func (s *Service) Run(ctx context.Context) (Report, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return Report{}, err
	}

	var keys []string
	if err := s.engine.Walk(func(key string, _ int64) error {
		keys = append(keys, key)
		return nil
	}); err != nil {
		return Report{}, fmt.Errorf("failed to list local objects: %w", err)
	}
	s.logger.Info("Starting backup", zap.Int("objects", len(keys)), zap.String("bucket", s.bucket))

	var limiter *rate.Limiter
	if s.cfg.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(s.cfg.RatePerSecond), 1)
	}

	var uploaded, skipped, total atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)

	for _, key := range keys {
		key := key
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if limiter != nil {
				if err := limiter.Wait(gctx); err != nil {
					return err
				}
			}

			data, err := s.engine.Get(key)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					s.logger.Debug("Object removed before upload", zap.String("key", key))
					skipped.Add(1)
					return nil
				}
				return fmt.Errorf("failed to read %s: %w", key, err)
			}

			_, err = s.client.PutObject(gctx, s.bucket, s.cfg.Prefix+key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
				ContentType: contentType,
			})
			if err != nil {
				return fmt.Errorf("failed to upload %s: %w", key, err)
			}

			uploaded.Add(1)
			total.Add(int64(len(data)))
			return nil
		})
	}

	err := g.Wait()
	report := Report{
		Uploaded: int(uploaded.Load()),
		Skipped:  int(skipped.Load()),
		Bytes:    total.Load(),
	}
	if err != nil {
		return report, err
	}

	s.logger.Info("Backup completed",
		zap.Int("uploaded", report.Uploaded),
		zap.Int("skipped", report.Skipped),
		zap.Int64("bytes", report.Bytes))

	return report, nil
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}

	s.logger.Info("Creating backup bucket", zap.String("bucket", s.bucket))
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}
