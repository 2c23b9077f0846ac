package image_controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tahir1605/frame-theory/models"
	"github.com/Tahir1605/frame-theory/repository"
	"github.com/Tahir1605/frame-theory/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImageRepo struct {
	images    map[string]*models.Image
	createErr error
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: make(map[string]*models.Image)}
}

func (r *fakeImageRepo) Create(_ context.Context, image *models.Image) error {
	if r.createErr != nil {
		return r.createErr
	}
	if image.ID == uuid.Nil {
		image.ID = uuid.Must(uuid.NewV7())
	}
	cp := *image
	r.images[image.ID.String()] = &cp
	return nil
}

func (r *fakeImageRepo) FindByID(_ context.Context, id string) (*models.Image, error) {
	img, ok := r.images[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *img
	return &cp, nil
}

func (r *fakeImageRepo) List(_ context.Context) ([]models.Image, error) {
	out := make([]models.Image, 0, len(r.images))
	for _, img := range r.images {
		out = append(out, *img)
	}
	return out, nil
}

func (r *fakeImageRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.images[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.images, id)
	return nil
}

type fakeStore struct {
	uploads []services.UploadedAsset
	deleted []string
}

func (f *fakeStore) Upload(_ context.Context, _ []byte, _, folder string) (services.UploadedAsset, error) {
	asset := services.UploadedAsset{
		FileID: folder + "/file-" + uuid.NewString()[:8],
		URL:    "https://cdn.test/" + folder + "/rendered.webp",
	}
	f.uploads = append(f.uploads, asset)
	return asset, nil
}

func (f *fakeStore) Delete(_ context.Context, fileID string) error {
	f.deleted = append(f.deleted, fileID)
	return nil
}

func setupImageTest(t *testing.T) (*fakeImageRepo, *fakeStore, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newFakeImageRepo()
	store := &fakeStore{}
	stage := services.NewUploadStage(t.TempDir())
	Init(repo, services.NewAssetLifecycle(store, stage))

	router := gin.New()
	router.POST("/admin/image-add", ImageAdd)
	router.GET("/admin/image-list", ImageList)
	router.DELETE("/admin/image-delete", ImageDelete)
	return repo, store, router
}

func addImageRequest(t *testing.T, fields map[string]string, withFile bool) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withFile {
		part, err := w.CreateFormFile("image", "photo.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake-jpeg-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/admin/image-add", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func deleteImageRequest(t *testing.T, id string) *http.Request {
	t.Helper()
	data, err := json.Marshal(models.DeleteRequest{ID: id})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodDelete, "/admin/image-delete", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ApiResponse {
	t.Helper()
	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestImageAdd(t *testing.T) {
	fields := map[string]string{"name": "Sunset shoot", "category": "wedding"}

	t.Run("uploads and persists", func(t *testing.T) {
		repo, store, router := setupImageTest(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, addImageRequest(t, fields, true))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Image added successfully", decodeResponse(t, rec).Message)
		require.Len(t, repo.images, 1)
		require.Len(t, store.uploads, 1)
		for _, img := range repo.images {
			assert.Equal(t, store.uploads[0].FileID, img.FileID)
			assert.Equal(t, store.uploads[0].URL, img.Image)
		}
	})

	t.Run("rejects missing name or category", func(t *testing.T) {
		_, store, router := setupImageTest(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, addImageRequest(t, map[string]string{"name": "Sunset shoot"}, true))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Name and category is required", decodeResponse(t, rec).Message)
		assert.Empty(t, store.uploads)
	})

	t.Run("rejects missing file", func(t *testing.T) {
		_, store, router := setupImageTest(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, addImageRequest(t, fields, false))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Image is required", decodeResponse(t, rec).Message)
		assert.Empty(t, store.uploads)
	})

	t.Run("rolls back the upload when the insert fails", func(t *testing.T) {
		repo, store, router := setupImageTest(t)
		repo.createErr = errors.New("connection reset")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, addImageRequest(t, fields, true))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Empty(t, repo.images)
		require.Len(t, store.uploads, 1)
		assert.Equal(t, []string{store.uploads[0].FileID}, store.deleted)
	})
}

func TestImageDelete(t *testing.T) {
	seed := func(t *testing.T, repo *fakeImageRepo) *models.Image {
		img := &models.Image{Name: "Sunset shoot", Category: "wedding",
			Image: "https://cdn.test/images/rendered.webp", FileID: "images/file-seed"}
		require.NoError(t, repo.Create(context.Background(), img))
		return img
	}

	t.Run("deletes record and remote asset", func(t *testing.T) {
		repo, store, router := setupImageTest(t)
		img := seed(t, repo)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, deleteImageRequest(t, img.ID.String()))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Image deleted successfully", decodeResponse(t, rec).Message)
		assert.Empty(t, repo.images)
		assert.Equal(t, []string{img.FileID}, store.deleted)
	})

	t.Run("second delete is not found with no remote calls", func(t *testing.T) {
		repo, store, router := setupImageTest(t)
		img := seed(t, repo)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, deleteImageRequest(t, img.ID.String()))
		require.Equal(t, http.StatusOK, rec.Code)
		remoteDeletes := len(store.deleted)

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, deleteImageRequest(t, img.ID.String()))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Image not found", decodeResponse(t, rec).Message)
		assert.Len(t, store.deleted, remoteDeletes)
	})

	t.Run("rejects empty id", func(t *testing.T) {
		_, _, router := setupImageTest(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, deleteImageRequest(t, ""))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Image id is required", decodeResponse(t, rec).Message)
	})
}

func TestImageList(t *testing.T) {
	repo, _, router := setupImageTest(t)
	require.NoError(t, repo.Create(context.Background(), &models.Image{
		Name: "Sunset shoot", Category: "wedding",
		Image: "https://cdn.test/images/rendered.webp", FileID: "images/file-seed",
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/image-list", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Sunset shoot")
	assert.NotContains(t, body, "file_id")
	assert.NotContains(t, body, "images/file-seed")
}
