package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"

	"scholarpress-backend/internal/repo"
)

type Asset struct {
	client *minio.Client
	// publicBase — внешний адрес хранилища, от него строятся публичные URL
	publicBase string
}

// NewAsset создаёт репозиторий ассетов, предварительно убедившись,
// что все бакеты классов ассетов существуют.
func NewAsset(client *minio.Client, publicBase string, buckets []string) (repo.Asset, error) {
	ctx := context.TODO()
	for _, bucket := range buckets {
		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			return nil, err
		}
		if !exists {
			err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
			if err != nil {
				return nil, err
			}
		}
	}
	if publicBase == "" {
		publicBase = client.EndpointURL().String()
	}
	return &Asset{
		client:     client,
		publicBase: strings.TrimRight(publicBase, "/"),
	}, nil
}

func (a *Asset) Upload(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error {
	_, err := a.client.PutObject(ctx, bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (a *Asset) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", a.publicBase, bucket, key)
}
