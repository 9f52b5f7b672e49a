package storage

import (
	"context"
	"fmt"
	"io"
	"quantiri/quantiri/config"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOClient archives the raw CSV text of every ingested dataset. The
// database only keeps a bounded preview; the archive holds the original.
type MinIOClient struct {
	client *minio.Client
	bucket string
}

func NewMinIOClient(cfg config.Config) (*MinIOClient, error) {
	bucket := cfg.MinIOBucket
	client, err := minio.New(
		cfg.MinIOEndpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: false,
		},
	)
	if err != nil {
		return nil, err
	}
	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	return &MinIOClient{client: client, bucket: bucket}, nil
}

// UploadCSV stores the original CSV text under the dataset's ID and
// returns the object key.
func (m *MinIOClient) UploadCSV(ctx context.Context, datasetID, text string) (string, error) {
	key := fmt.Sprintf("datasets/%s.csv", datasetID)
	_, err := m.client.PutObject(ctx, m.bucket, key,
		strings.NewReader(text), int64(len(text)),
		minio.PutObjectOptions{ContentType: "text/csv"})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (m *MinIOClient) GetCSV(ctx context.Context, datasetID string) (string, error) {
	key := fmt.Sprintf("datasets/%s.csv", datasetID)
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return "", err
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
