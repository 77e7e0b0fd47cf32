// Package publish uploads installer artifacts to S3 compatible storage.
package publish

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/bakito/releaser/pkg/log"
	"github.com/bakito/releaser/pkg/types"
)

const contentType = "application/zip"

// Publisher uploads artifacts and prunes old ones.
type Publisher struct {
	config *types.Config
	l      log.YALI
}

// New create a publisher. The config must carry an s3 section.
func New(config *types.Config) (*Publisher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.S3 == nil {
		return nil, fmt.Errorf("no s3 config defined")
	}
	if config.S3.Endpoint == "" || config.S3.Bucket == "" {
		return nil, fmt.Errorf("s3 endpoint and bucket must be set")
	}
	return &Publisher{
		config: config,
		l:      config.Logger(),
	}, nil
}

// Upload put the artifact into the bucket and prune artifacts older than the
// configured retention.
func (p *Publisher) Upload(ctx context.Context, artifact string) error {
	cfg := p.config.S3
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.Token),
		Secure: cfg.Secure,
	})
	if err != nil {
		return err
	}

	_, err = client.FPutObject(ctx, cfg.Bucket, filepath.Base(artifact), artifact,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return err
	}
	p.l.Checkf("uploaded %s to %s\n", filepath.Base(artifact), cfg.Bucket)

	if cfg.RetentionDays > 0 {
		return p.prune(ctx, client)
	}
	return nil
}

func (p *Publisher) prune(ctx context.Context, client *minio.Client) error {
	cfg := p.config.S3
	deleteOlderThan := time.Now().AddDate(0, 0, -cfg.RetentionDays)

	objectCh := client.ListObjects(ctx, cfg.Bucket, minio.ListObjectsOptions{Prefix: p.config.Name})
	for object := range objectCh {
		if object.Err != nil {
			continue
		}
		if object.LastModified.Before(deleteOlderThan) {
			if err := client.RemoveObject(ctx, cfg.Bucket, object.Key, minio.RemoveObjectOptions{}); err != nil {
				return err
			}
			p.l.Printf("pruned %s\n", object.Key)
		}
	}
	return nil
}
