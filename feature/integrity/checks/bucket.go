package checks

import (
	"context"
	"fmt"
	"strings"

	"data-studio/core/storage"
	"data-studio/feature/datasets"

	"github.com/minio/minio-go/v7"
)

// BucketReport describes the dataset bucket.
type BucketReport struct {
	Bucket   string `json:"bucket"`
	Exists   bool   `json:"exists"`
	Created  bool   `json:"created"`
	Datasets int    `json:"datasets"`
}

// CheckBucket reports whether the bucket exists and how many datasets it holds.
// With fix set, a missing bucket is created.
func CheckBucket(ctx context.Context, client storage.Client, bucket, region string, fix bool) (*BucketReport, error) {
	report := &BucketReport{Bucket: bucket}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists && fix {
		created, err := storage.EnsureBucket(ctx, client, bucket, region)
		if err != nil {
			return nil, err
		}
		report.Created = created
		exists = true
	}
	report.Exists = exists
	if !exists {
		return report, nil
	}

	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: datasets.Prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list datasets: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, "/") {
			report.Datasets++
		}
	}
	return report, nil
}
