package checks_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"data-studio/core/database"
	"data-studio/core/storage/mocks"
	"data-studio/feature/datasets"
	"data-studio/feature/datasets/models"
	"data-studio/feature/integrity/checks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const bucket = "datasets"

func listing(objs ...minio.ObjectInfo) func(context.Context, string, minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	return func(context.Context, string, minio.ListObjectsOptions) <-chan minio.ObjectInfo {
		ch := make(chan minio.ObjectInfo, len(objs))
		for _, o := range objs {
			ch <- o
		}
		close(ch)
		return ch
	}
}

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, datasets.Migrate(db))
	return db
}

func TestCheckBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, bucket).Return(true, nil)
	client.On("ListObjects", mock.Anything, bucket, mock.Anything).
		Return(listing(minio.ObjectInfo{Key: "datasets/"}, minio.ObjectInfo{Key: "datasets/a.csv"}))

	report, err := checks.CheckBucket(context.Background(), client, bucket, "", false)
	require.NoError(t, err)
	assert.True(t, report.Exists)
	assert.False(t, report.Created)
	assert.Equal(t, 1, report.Datasets)
}

func TestCheckBucketFix(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, bucket).Return(false, nil)
	client.On("MakeBucket", mock.Anything, bucket, minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)
	client.On("ListObjects", mock.Anything, bucket, mock.Anything).Return(listing())

	report, err := checks.CheckBucket(context.Background(), client, bucket, "eu-west-1", false)
	require.NoError(t, err)
	assert.False(t, report.Exists)
	client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)

	report, err = checks.CheckBucket(context.Background(), client, bucket, "eu-west-1", true)
	require.NoError(t, err)
	assert.True(t, report.Exists)
	assert.True(t, report.Created)
}

func TestCheckBucketError(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, bucket).Return(false, errors.New("connection refused"))

	_, err := checks.CheckBucket(context.Background(), client, bucket, "", false)
	assert.ErrorContains(t, err, "connection refused")
}

func TestCheckAndFixMetadata(t *testing.T) {
	db := newDB(t)
	require.NoError(t, db.Create(&models.Dataset{Filename: "kept.csv", ObjectKey: "datasets/kept.csv", Size: 10}).Error)
	require.NoError(t, db.Create(&models.Dataset{Filename: "stale.csv", ObjectKey: "datasets/stale.csv", Size: 1}).Error)
	require.NoError(t, db.Create(&models.Dataset{Filename: "gone.csv", ObjectKey: "datasets/gone.csv", Size: 5}).Error)

	const newCSV = "a,b\n1,2\n3,4\n"
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, bucket, mock.Anything).Return(listing(
		minio.ObjectInfo{Key: "datasets/kept.csv", Size: 10},
		minio.ObjectInfo{Key: "datasets/stale.csv", Size: int64(len(newCSV))},
		minio.ObjectInfo{Key: "datasets/new.csv", Size: int64(len(newCSV))},
	))

	report, err := checks.CheckMetadata(context.Background(), client, bucket, db)
	require.NoError(t, err)
	assert.False(t, report.Clean())
	assert.Equal(t, []string{"new.csv"}, report.Missing)
	assert.Equal(t, []string{"gone.csv"}, report.Orphaned)
	assert.Equal(t, []string{"stale.csv"}, report.Stale)

	for _, name := range []string{"new.csv", "stale.csv"} {
		key := "datasets/" + name
		client.On("StatObject", mock.Anything, bucket, key, mock.Anything).
			Return(minio.ObjectInfo{Key: key, Size: int64(len(newCSV))}, nil)
		client.On("GetObject", mock.Anything, bucket, key, mock.Anything).
			Return(io.NopCloser(strings.NewReader(newCSV)), nil)
	}

	svc := datasets.NewService(client, bucket, zap.NewNop(), db)
	fixed, err := checks.FixMetadata(context.Background(), svc, zap.NewNop(), report)
	require.NoError(t, err)
	assert.Equal(t, []string{"new.csv", "stale.csv", "gone.csv"}, fixed)

	after, err := checks.CheckMetadata(context.Background(), client, bucket, db)
	require.NoError(t, err)
	assert.True(t, after.Clean())

	var row models.Dataset
	require.NoError(t, db.Where("filename = ?", "new.csv").First(&row).Error)
	assert.Equal(t, 2, row.Rows)
	assert.Equal(t, 2, row.Columns)
}

func TestCheckMetadataWithoutDatabase(t *testing.T) {
	_, err := checks.CheckMetadata(context.Background(), new(mocks.Client), bucket, nil)
	assert.ErrorIs(t, err, checks.ErrNoDatabase)

	_, err = checks.CheckSchema(nil)
	assert.ErrorIs(t, err, checks.ErrNoDatabase)
}

func TestCheckSchema(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	report, err := checks.CheckSchema(db)
	require.NoError(t, err)
	assert.Equal(t, "datasets", report.Table)
	assert.False(t, report.Exists)
	assert.False(t, report.Matched)

	require.NoError(t, db.Exec("CREATE TABLE datasets (id text primary key, filename text)").Error)
	report, err = checks.CheckSchema(db)
	require.NoError(t, err)
	assert.True(t, report.Exists)
	assert.False(t, report.Matched)
	assert.Contains(t, report.MissingColumns, "object_key")
	assert.NotContains(t, report.MissingColumns, "filename")

	require.NoError(t, datasets.Migrate(db))
	report, err = checks.CheckSchema(db)
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Empty(t, report.MissingColumns)
}
