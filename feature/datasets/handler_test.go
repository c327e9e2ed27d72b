package datasets_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"data-studio/core/frame"
	"data-studio/core/storage/mocks"
	"data-studio/feature/datasets"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func loadFrame(t *testing.T, csv string) *frame.Frame {
	t.Helper()
	f, err := frame.ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	return f
}

func newApp(client *mocks.Client) *fiber.App {
	app := fiber.New()
	feature := datasets.NewFeature(client, bucket, zap.NewNop(), nil)
	_ = feature.Load(app.Group("/api"))
	return app
}

func decode(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestLoader(t *testing.T) {
	feature := datasets.NewFeature(new(mocks.Client), bucket, zap.NewNop(), nil)
	assert.Equal(t, "datasets", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())
	assert.NoError(t, feature.Load(fiber.New()))
}

func TestHandleUpload(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, bucket, "datasets/sales.csv", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	app := newApp(client)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "sales.csv")
	require.NoError(t, err)
	_, _ = part.Write([]byte(salesCSV))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/datasets", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out := decode(t, resp.Body)
	assert.Equal(t, "sales.csv", out["filename"])
	assert.Equal(t, 3.0, out["rows"])
}

func TestHandleUploadRequiresFile(t *testing.T) {
	app := newApp(new(mocks.Client))
	req := httptest.NewRequest("POST", "/api/datasets", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleUploadRejectsNonCSV(t *testing.T) {
	app := newApp(new(mocks.Client))

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, _ := w.CreateFormFile("file", "notes.txt")
	_, _ = part.Write([]byte("hello"))
	_ = w.Close()

	req := httptest.NewRequest("POST", "/api/datasets", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandlePreview(t *testing.T) {
	client := new(mocks.Client)
	client.On("StatObject", mock.Anything, bucket, "datasets/sales.csv", mock.Anything).
		Return(minio.ObjectInfo{Key: "datasets/sales.csv"}, nil)
	client.On("GetObject", mock.Anything, bucket, "datasets/sales.csv", mock.Anything).
		Return(io.NopCloser(strings.NewReader(salesCSV)), nil)
	app := newApp(client)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/datasets/sales.csv/preview?rows=1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode(t, resp.Body)
	assert.Equal(t, 1.0, out["shown"])
	assert.Equal(t, 3.0, out["rows"])
}

func TestHandlePreviewRowsClamped(t *testing.T) {
	tests := []struct {
		query string
		shown float64
	}{
		{"rows=0", 1},
		{"rows=-5", 1},
		{"rows=1000", 3},
		{"", 3},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			client := new(mocks.Client)
			client.On("StatObject", mock.Anything, bucket, "datasets/sales.csv", mock.Anything).
				Return(minio.ObjectInfo{Key: "datasets/sales.csv"}, nil)
			client.On("GetObject", mock.Anything, bucket, "datasets/sales.csv", mock.Anything).
				Return(io.NopCloser(strings.NewReader(salesCSV)), nil)
			app := newApp(client)

			resp, err := app.Test(httptest.NewRequest("GET", "/api/datasets/sales.csv/preview?"+tt.query, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.shown, decode(t, resp.Body)["shown"])
		})
	}
}

func TestHandleGetNotFound(t *testing.T) {
	client := new(mocks.Client)
	client.On("StatObject", mock.Anything, bucket, "datasets/sale.csv", mock.Anything).
		Return(minio.ObjectInfo{}, notFound)
	client.On("ListObjects", mock.Anything, bucket, mock.Anything).Return(objects("datasets/sales.csv"))
	app := newApp(client)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/datasets/sale.csv", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	out := decode(t, resp.Body)
	assert.Equal(t, []any{"sales.csv"}, out["suggestions"])
}

func TestHandleDelete(t *testing.T) {
	client := new(mocks.Client)
	client.On("StatObject", mock.Anything, bucket, "datasets/a b.csv", mock.Anything).
		Return(minio.ObjectInfo{Key: "datasets/a b.csv"}, nil)
	client.On("RemoveObject", mock.Anything, bucket, "datasets/a b.csv", mock.Anything).Return(nil)
	app := newApp(client)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/datasets/a%20b.csv", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	client.AssertCalled(t, "RemoveObject", mock.Anything, bucket, "datasets/a b.csv", mock.Anything)
}
