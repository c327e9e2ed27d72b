package integrity

import (
	"context"

	"data-studio/core/storage"
	"data-studio/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	region  string
	logger  *zap.Logger
	db      *gorm.DB
	indexer checks.Indexer
}

// NewService creates a new integrity service. db may be nil, in which case
// the metadata and schema checks report an error.
func NewService(client storage.Client, bucket, region string, logger *zap.Logger, db *gorm.DB, indexer checks.Indexer) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		region:  region,
		logger:  logger,
		db:      db,
		indexer: indexer,
	}
}

// CheckBucket reports on the dataset bucket, creating it when fix is set.
func (s *Service) CheckBucket(ctx context.Context, fix bool) (*checks.BucketReport, error) {
	return checks.CheckBucket(ctx, s.client, s.bucket, s.region, fix)
}

// CheckMetadata compares stored datasets with their metadata rows.
func (s *Service) CheckMetadata(ctx context.Context) (*checks.MetadataReport, error) {
	return checks.CheckMetadata(ctx, s.client, s.bucket, s.db)
}

// FixMetadata repairs the differences found by CheckMetadata.
func (s *Service) FixMetadata(ctx context.Context, report *checks.MetadataReport) ([]string, error) {
	return checks.FixMetadata(ctx, s.indexer, s.logger, report)
}

// CheckSchema verifies the metadata table.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}
