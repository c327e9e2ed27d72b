package checks

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"data-studio/core/storage"
	"data-studio/feature/datasets"
	"data-studio/feature/datasets/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoDatabase is returned by checks that need the metadata database.
var ErrNoDatabase = errors.New("database is not connected")

// MetadataReport compares stored objects with metadata rows.
type MetadataReport struct {
	// Missing objects have no metadata row.
	Missing []string `json:"missing"`
	// Orphaned rows have no object.
	Orphaned []string `json:"orphaned"`
	// Stale rows record a different size than the object.
	Stale []string `json:"stale"`
}

// Clean reports whether storage and metadata agree.
func (r *MetadataReport) Clean() bool {
	return len(r.Missing) == 0 && len(r.Orphaned) == 0 && len(r.Stale) == 0
}

// Indexer rewrites or removes metadata rows.
type Indexer interface {
	Reindex(ctx context.Context, filename string) (*models.Info, error)
	Forget(ctx context.Context, filename string) error
}

// CheckMetadata reconciles the dataset objects in bucket with the rows in db.
func CheckMetadata(ctx context.Context, client storage.Client, bucket string, db *gorm.DB) (*MetadataReport, error) {
	if db == nil {
		return nil, ErrNoDatabase
	}

	objects := make(map[string]int64)
	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: datasets.Prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list datasets: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		objects[path.Base(obj.Key)] = obj.Size
	}

	var rows []models.Dataset
	if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read dataset metadata: %w", err)
	}

	report := &MetadataReport{Missing: []string{}, Orphaned: []string{}, Stale: []string{}}
	indexed := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		indexed[row.Filename] = struct{}{}
		size, ok := objects[row.Filename]
		switch {
		case !ok:
			report.Orphaned = append(report.Orphaned, row.Filename)
		case size != row.Size:
			report.Stale = append(report.Stale, row.Filename)
		}
	}
	for name := range objects {
		if _, ok := indexed[name]; !ok {
			report.Missing = append(report.Missing, name)
		}
	}
	sort.Strings(report.Missing)
	sort.Strings(report.Orphaned)
	sort.Strings(report.Stale)
	return report, nil
}

// FixMetadata reindexes missing and stale datasets and forgets orphaned rows.
// It returns the filenames it repaired.
func FixMetadata(ctx context.Context, indexer Indexer, logger *zap.Logger, report *MetadataReport) ([]string, error) {
	fixed := []string{}
	for _, name := range append(append([]string{}, report.Missing...), report.Stale...) {
		if _, err := indexer.Reindex(ctx, name); err != nil {
			logger.Error("Failed to reindex dataset", zap.String("filename", name), zap.Error(err))
			return fixed, err
		}
		logger.Info("Reindexed dataset", zap.String("filename", name))
		fixed = append(fixed, name)
	}
	for _, name := range report.Orphaned {
		if err := indexer.Forget(ctx, name); err != nil {
			logger.Error("Failed to forget dataset", zap.String("filename", name), zap.Error(err))
			return fixed, err
		}
		logger.Info("Removed orphaned metadata", zap.String("filename", name))
		fixed = append(fixed, name)
	}
	return fixed, nil
}
