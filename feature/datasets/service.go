package datasets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"data-studio/core/frame"
	"data-studio/core/storage"
	"data-studio/feature/datasets/models"

	"github.com/agnivade/levenshtein"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// Prefix is the object key prefix for datasets.
	Prefix = "datasets/"
	// ContentType is stored with every dataset object.
	ContentType = "text/csv"
	// MaxSuggestionDistance bounds the edit distance of not-found suggestions.
	MaxSuggestionDistance = 3
)

// Service stores CSV datasets in object storage and keeps their metadata in
// the database when one is connected.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a dataset service. db may be nil.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		db:     db,
	}
}

// Migrate creates or updates the datasets table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Dataset{}); err != nil {
		return fmt.Errorf("failed to migrate datasets table: %w", err)
	}
	return nil
}

// ObjectKey returns the storage key of a dataset.
func ObjectKey(filename string) string {
	return Prefix + filename
}

// Upload parses r as CSV and stores it under filename, replacing any dataset
// with the same name.
func (s *Service) Upload(ctx context.Context, filename string, r io.Reader) (*models.Info, error) {
	if err := ValidateName(filename); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	f, err := frame.ReadCSV(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidCSV, filename, err)
	}
	return s.put(ctx, filename, data, f)
}

// Save writes f as CSV under filename.
func (s *Service) Save(ctx context.Context, filename string, f *frame.Frame) (*models.Info, error) {
	if err := ValidateName(filename); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := f.WriteCSV(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return s.put(ctx, filename, buf.Bytes(), f)
}

func (s *Service) put(ctx context.Context, filename string, data []byte, f *frame.Frame) (*models.Info, error) {
	key := ObjectKey(filename)
	upload, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store %s: %w", filename, err)
	}

	rows, cols := f.Shape()
	info := &models.Info{
		Filename:     filename,
		ObjectKey:    key,
		Size:         int64(len(data)),
		Rows:         rows,
		Columns:      cols,
		LastModified: upload.LastModified,
	}
	if err := s.record(ctx, info); err != nil {
		s.logger.Warn("Failed to record dataset metadata", zap.String("filename", filename), zap.Error(err))
	}
	s.logger.Info("Stored dataset",
		zap.String("filename", filename),
		zap.Int("rows", rows),
		zap.Int("columns", cols),
	)
	return info, nil
}

func (s *Service) record(ctx context.Context, info *models.Info) error {
	if s.db == nil {
		return nil
	}
	row := models.Dataset{
		Filename:  info.Filename,
		ObjectKey: info.ObjectKey,
		Size:      info.Size,
		Rows:      info.Rows,
		Columns:   info.Columns,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "filename"}},
		DoUpdates: clause.AssignmentColumns([]string{"object_key", "size", "rows", "columns", "updated_at"}),
	}).Create(&row).Error
}

// Load reads a dataset into a frame.
func (s *Service) Load(ctx context.Context, filename string) (*frame.Frame, error) {
	if _, err := s.stat(ctx, filename); err != nil {
		return nil, err
	}
	obj, err := s.client.GetObject(ctx, s.bucket, ObjectKey(filename), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer obj.Close()

	f, err := frame.ReadCSV(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return f, nil
}

// Get returns the stored dataset's info.
func (s *Service) Get(ctx context.Context, filename string) (*models.Info, error) {
	obj, err := s.stat(ctx, filename)
	if err != nil {
		return nil, err
	}
	info := infoFrom(obj)
	if meta, err := s.metadata(ctx); err != nil {
		s.logger.Warn("Failed to read dataset metadata", zap.Error(err))
	} else if m, ok := meta[filename]; ok {
		info.Rows, info.Columns = m.Rows, m.Columns
	}
	return &info, nil
}

// List returns every stored dataset sorted by filename.
func (s *Service) List(ctx context.Context) ([]models.Info, error) {
	out := []models.Info{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: Prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list datasets: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		out = append(out, infoFrom(obj))
	}

	meta, err := s.metadata(ctx)
	if err != nil {
		s.logger.Warn("Failed to read dataset metadata", zap.Error(err))
	}
	for i := range out {
		if m, ok := meta[out[i].Filename]; ok {
			out[i].Rows, out[i].Columns = m.Rows, m.Columns
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Filename < out[j].Filename })
	return out, nil
}

// Preview returns the first rows of a dataset.
func (s *Service) Preview(ctx context.Context, filename string, rows int) (*models.Preview, error) {
	f, err := s.Load(ctx, filename)
	if err != nil {
		return nil, err
	}
	head := f.Head(rows)
	return &models.Preview{
		Filename: filename,
		Rows:     f.Len(),
		Columns:  f.Names(),
		DTypes:   f.DTypes(),
		Missing:  f.MissingCounts(),
		Shown:    head.Len(),
		Data:     head.Records(),
	}, nil
}

// Delete removes a dataset and its metadata.
func (s *Service) Delete(ctx context.Context, filename string) error {
	if _, err := s.stat(ctx, filename); err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, ObjectKey(filename), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete %s: %w", filename, err)
	}
	if err := s.Forget(ctx, filename); err != nil {
		s.logger.Warn("Failed to delete dataset metadata", zap.String("filename", filename), zap.Error(err))
	}
	s.logger.Info("Deleted dataset", zap.String("filename", filename))
	return nil
}

// Reindex reads a stored dataset and rewrites its metadata row.
func (s *Service) Reindex(ctx context.Context, filename string) (*models.Info, error) {
	obj, err := s.stat(ctx, filename)
	if err != nil {
		return nil, err
	}
	f, err := s.Load(ctx, filename)
	if err != nil {
		return nil, err
	}
	info := infoFrom(obj)
	info.Rows, info.Columns = f.Shape()
	if err := s.record(ctx, &info); err != nil {
		return nil, fmt.Errorf("failed to record %s: %w", filename, err)
	}
	return &info, nil
}

// Forget deletes the metadata row of a dataset.
func (s *Service) Forget(ctx context.Context, filename string) error {
	if s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Where("filename = ?", filename).Delete(&models.Dataset{}).Error
}

func (s *Service) stat(ctx context.Context, filename string) (minio.ObjectInfo, error) {
	if err := ValidateName(filename); err != nil {
		return minio.ObjectInfo{}, err
	}
	obj, err := s.client.StatObject(ctx, s.bucket, ObjectKey(filename), minio.StatObjectOptions{})
	if err == nil {
		return obj, nil
	}
	if !storage.IsNotFound(err) {
		return minio.ObjectInfo{}, fmt.Errorf("failed to stat %s: %w", filename, err)
	}
	return minio.ObjectInfo{}, &NotFoundError{Filename: filename, Suggestions: s.suggest(ctx, filename)}
}

// suggest returns known filenames within MaxSuggestionDistance edits, closest first.
func (s *Service) suggest(ctx context.Context, filename string) []string {
	list, err := s.List(ctx)
	if err != nil {
		return nil
	}
	type candidate struct {
		name string
		dist int
	}
	var candidates []candidate
	for _, info := range list {
		d := levenshtein.ComputeDistance(strings.ToLower(filename), strings.ToLower(info.Filename))
		if d <= MaxSuggestionDistance {
			candidates = append(candidates, candidate{info.Filename, d})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}

func (s *Service) metadata(ctx context.Context) (map[string]models.Dataset, error) {
	if s.db == nil {
		return nil, nil
	}
	var rows []models.Dataset
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]models.Dataset, len(rows))
	for _, r := range rows {
		out[r.Filename] = r
	}
	return out, nil
}

func infoFrom(obj minio.ObjectInfo) models.Info {
	return models.Info{
		Filename:     path.Base(obj.Key),
		ObjectKey:    obj.Key,
		Size:         obj.Size,
		LastModified: obj.LastModified,
	}
}
