package integrity

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"data-studio/core/storage/mocks"
	"data-studio/feature/datasets/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type noopIndexer struct{}

func (noopIndexer) Reindex(context.Context, string) (*models.Info, error) { return &models.Info{}, nil }
func (noopIndexer) Forget(context.Context, string) error                  { return nil }

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	t.Helper()
	client := new(mocks.Client)
	feature := NewFeature(client, "test-bucket", "", zap.NewNop(), nil, noopIndexer{})
	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app, client
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleBucketCheck(t *testing.T) {
	app, client := setupTestApp(t)
	client.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	client.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	status, body := getJSON(t, app, "/integrity/bucket")
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["exists"])
	assert.Equal(t, 0.0, body["datasets"])
}

func TestHandleMetadataCheckWithoutDatabase(t *testing.T) {
	app, _ := setupTestApp(t)

	status, body := getJSON(t, app, "/integrity/metadata?fix=true")
	assert.Equal(t, 500, status)
	assert.Equal(t, "database is not connected", body["error"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, client := setupTestApp(t)
	client.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)

	status, body := getJSON(t, app, "/integrity")
	assert.Equal(t, 200, status)
	assert.Equal(t, false, body["bucket"].(map[string]any)["exists"])
	assert.Equal(t, "error", body["metadata"].(map[string]any)["status"])
	assert.Equal(t, "error", body["schema"].(map[string]any)["status"])
}
