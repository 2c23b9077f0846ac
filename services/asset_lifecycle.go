package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
)

// Asset Store folders, one per entity kind.
const (
	FolderAdmins     = "admins"
	FolderImages     = "images"
	FolderEditBefore = "edit-images/before"
	FolderEditAfter  = "edit-images/after"
	FolderReviews    = "reviews"
	FolderBlogs      = "blogs"
)

// AssetLifecycle ties the local stage, the Asset Store and record
// persistence together. Its single job is keeping the invariant that a
// persisted record's remote reference always points at a live object:
// any upload that cannot be followed by a successful persist is rolled
// back before the request ends.
type AssetLifecycle struct {
	store AssetStore
	stage *UploadStage
}

func NewAssetLifecycle(store AssetStore, stage *UploadStage) *AssetLifecycle {
	return &AssetLifecycle{store: store, stage: stage}
}

// StageFile passes through to the local stage so handlers hold a single
// lifecycle dependency.
func (m *AssetLifecycle) StageFile(fh *multipart.FileHeader) (*StagedFile, error) {
	return m.stage.Stage(fh)
}

// UploadStaged reads a staged file and ships it to the Asset Store under
// folder. The returned URL is the fixed-transform display URL.
func (m *AssetLifecycle) UploadStaged(ctx context.Context, staged *StagedFile, folder string) (UploadedAsset, error) {
	data, err := m.stage.Read(staged)
	if err != nil {
		return UploadedAsset{}, fmt.Errorf("read staged file: %w", err)
	}
	return m.store.Upload(ctx, data, staged.OriginalName, folder)
}

// UploadStagedPair uploads the before image, then the after image. The two
// assets exist as a pair or not at all: if the second upload fails the
// first is rolled back before the error is reported.
func (m *AssetLifecycle) UploadStagedPair(ctx context.Context, before, after *StagedFile) (UploadedAsset, UploadedAsset, error) {
	beforeAsset, err := m.UploadStaged(ctx, before, FolderEditBefore)
	if err != nil {
		return UploadedAsset{}, UploadedAsset{}, err
	}

	afterAsset, err := m.UploadStaged(ctx, after, FolderEditAfter)
	if err != nil {
		m.Rollback(ctx, beforeAsset)
		return UploadedAsset{}, UploadedAsset{}, err
	}

	return beforeAsset, afterAsset, nil
}

// Rollback deletes assets uploaded earlier in an operation that failed
// downstream. Best-effort: a failed rollback is logged and the original
// failure is what surfaces to the client.
func (m *AssetLifecycle) Rollback(ctx context.Context, assets ...UploadedAsset) {
	for _, asset := range assets {
		if asset.FileID == "" {
			continue
		}
		if err := m.store.Delete(ctx, asset.FileID); err != nil {
			log.Printf("[ERROR] rollback failed for remote asset %s: %v", asset.FileID, err)
		}
	}
}

// Remove deletes remote objects during a user-initiated delete or after a
// replacement has been committed. Failures are logged and never block the
// record operation: a dangling remote object is acceptable, a record
// pointing at a dead asset is not.
func (m *AssetLifecycle) Remove(ctx context.Context, fileIDs ...string) {
	for _, fileID := range fileIDs {
		if fileID == "" {
			continue
		}
		if err := m.store.Delete(ctx, fileID); err != nil {
			log.Printf("[WARN] failed to delete remote asset %s: %v", fileID, err)
		}
	}
}

// Discard clears staged files whatever the outcome of the request.
func (m *AssetLifecycle) Discard(files ...*StagedFile) {
	for _, f := range files {
		m.stage.Discard(f)
	}
}
