package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAssetStore records uploads and deletes and can fail on demand.
type fakeAssetStore struct {
	uploads   []string // folders in upload order
	deleted   []string
	failAfter int   // fail uploads once this many have succeeded; -1 never
	deleteErr error // returned by Delete when set
	nextID    int
}

func newFakeAssetStore() *fakeAssetStore {
	return &fakeAssetStore{failAfter: -1}
}

func (f *fakeAssetStore) Upload(_ context.Context, _ []byte, _, folder string) (UploadedAsset, error) {
	if f.failAfter >= 0 && len(f.uploads) >= f.failAfter {
		return UploadedAsset{}, errors.New("store unavailable")
	}
	f.nextID++
	f.uploads = append(f.uploads, folder)
	id := fmt.Sprintf("%s/file-%d", folder, f.nextID)
	return UploadedAsset{
		FileID: id,
		URL:    "https://cdn.test/upload/q_auto,f_webp,w_1280/" + id,
	}, nil
}

func (f *fakeAssetStore) Delete(_ context.Context, fileID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, fileID)
	return nil
}

func stagedFixture(t *testing.T, stage *UploadStage, name string) *StagedFile {
	t.Helper()
	fh := fileHeaderFor(t, "image", name, []byte("content-of-"+name))
	staged, err := stage.Stage(fh)
	require.NoError(t, err)
	t.Cleanup(func() { stage.Discard(staged) })
	return staged
}

func TestUploadStaged(t *testing.T) {
	stage := NewUploadStage(t.TempDir())
	store := newFakeAssetStore()
	m := NewAssetLifecycle(store, stage)

	staged := stagedFixture(t, stage, "a.jpg")
	asset, err := m.UploadStaged(context.Background(), staged, FolderImages)
	require.NoError(t, err)
	assert.NotEmpty(t, asset.FileID)
	assert.Contains(t, asset.URL, asset.FileID)
	assert.Equal(t, []string{FolderImages}, store.uploads)
}

func TestUploadStagedPair(t *testing.T) {
	t.Run("uploads before then after", func(t *testing.T) {
		stage := NewUploadStage(t.TempDir())
		store := newFakeAssetStore()
		m := NewAssetLifecycle(store, stage)

		before := stagedFixture(t, stage, "before.jpg")
		after := stagedFixture(t, stage, "after.jpg")

		b, a, err := m.UploadStagedPair(context.Background(), before, after)
		require.NoError(t, err)
		assert.Equal(t, []string{FolderEditBefore, FolderEditAfter}, store.uploads)
		assert.NotEqual(t, b.FileID, a.FileID)
		assert.Empty(t, store.deleted)
	})

	t.Run("rolls back the before asset when the after upload fails", func(t *testing.T) {
		stage := NewUploadStage(t.TempDir())
		store := newFakeAssetStore()
		store.failAfter = 1 // first upload succeeds, second fails
		m := NewAssetLifecycle(store, stage)

		before := stagedFixture(t, stage, "before.jpg")
		after := stagedFixture(t, stage, "after.jpg")

		_, _, err := m.UploadStagedPair(context.Background(), before, after)
		require.Error(t, err)

		// The lone before upload must not survive the failed pair.
		require.Len(t, store.deleted, 1)
		assert.Contains(t, store.deleted[0], FolderEditBefore)
	})

	t.Run("fails cleanly when the first upload fails", func(t *testing.T) {
		stage := NewUploadStage(t.TempDir())
		store := newFakeAssetStore()
		store.failAfter = 0
		m := NewAssetLifecycle(store, stage)

		before := stagedFixture(t, stage, "before.jpg")
		after := stagedFixture(t, stage, "after.jpg")

		_, _, err := m.UploadStagedPair(context.Background(), before, after)
		require.Error(t, err)
		assert.Empty(t, store.deleted)
	})
}

func TestRollback(t *testing.T) {
	t.Run("deletes every uploaded asset", func(t *testing.T) {
		stage := NewUploadStage(t.TempDir())
		store := newFakeAssetStore()
		m := NewAssetLifecycle(store, stage)

		a1, _ := store.Upload(context.Background(), nil, "x", FolderImages)
		a2, _ := store.Upload(context.Background(), nil, "y", FolderImages)

		m.Rollback(context.Background(), a1, a2)
		assert.Equal(t, []string{a1.FileID, a2.FileID}, store.deleted)
	})

	t.Run("skips zero-value assets", func(t *testing.T) {
		stage := NewUploadStage(t.TempDir())
		store := newFakeAssetStore()
		m := NewAssetLifecycle(store, stage)

		m.Rollback(context.Background(), UploadedAsset{})
		assert.Empty(t, store.deleted)
	})

	t.Run("swallows store delete failures", func(t *testing.T) {
		stage := NewUploadStage(t.TempDir())
		store := newFakeAssetStore()
		store.deleteErr = errors.New("gone already")
		m := NewAssetLifecycle(store, stage)

		// Must not panic or surface the error; it is logged only.
		m.Rollback(context.Background(), UploadedAsset{FileID: "dangling"})
	})
}

func TestRemove(t *testing.T) {
	stage := NewUploadStage(t.TempDir())
	store := newFakeAssetStore()
	m := NewAssetLifecycle(store, stage)

	m.Remove(context.Background(), "id-1", "", "id-2")
	assert.Equal(t, []string{"id-1", "id-2"}, store.deleted)
}
