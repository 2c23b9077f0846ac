package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeaderFor builds a real multipart.FileHeader the way gin would see it.
func fileHeaderFor(t *testing.T, fieldName, fileName string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	headers := req.MultipartForm.File[fieldName]
	require.Len(t, headers, 1)
	return headers[0]
}

func TestUploadStage(t *testing.T) {
	stage := NewUploadStage(t.TempDir())

	t.Run("stage then read round-trips the bytes", func(t *testing.T) {
		fh := fileHeaderFor(t, "image", "portrait.jpg", []byte("jpeg-bytes"))

		staged, err := stage.Stage(fh)
		require.NoError(t, err)
		assert.Equal(t, "portrait.jpg", staged.OriginalName)

		data, err := stage.Read(staged)
		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg-bytes"), data)

		stage.Discard(staged)
	})

	t.Run("rejects files over the 5 MB cap", func(t *testing.T) {
		big := make([]byte, MaxUploadSize+1)
		fh := fileHeaderFor(t, "image", "huge.jpg", big)

		_, err := stage.Stage(fh)
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("discard removes the staged copy", func(t *testing.T) {
		fh := fileHeaderFor(t, "image", "one.jpg", []byte("x"))
		staged, err := stage.Stage(fh)
		require.NoError(t, err)

		stage.Discard(staged)
		_, statErr := os.Stat(staged.Path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("discard of an already-removed file is quiet", func(t *testing.T) {
		fh := fileHeaderFor(t, "image", "two.jpg", []byte("x"))
		staged, err := stage.Stage(fh)
		require.NoError(t, err)

		stage.Discard(staged)
		stage.Discard(staged) // no panic, no error surfaced
	})

	t.Run("read of a discarded file fails", func(t *testing.T) {
		fh := fileHeaderFor(t, "image", "three.jpg", []byte("x"))
		staged, err := stage.Stage(fh)
		require.NoError(t, err)

		stage.Discard(staged)
		_, err = stage.Read(staged)
		assert.Error(t, err)
	})
}
