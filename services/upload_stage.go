package services

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
)

// MaxUploadSize caps a single incoming file at 5 MiB. Oversized files are
// rejected before any remote or database work happens.
const MaxUploadSize = 5 << 20

// ErrFileTooLarge is returned when a part exceeds MaxUploadSize.
var ErrFileTooLarge = errors.New("file exceeds the 5 MB upload limit")

// StagedFile is a request-scoped temp copy of an uploaded part. It is
// owned by the handler that staged it and always discarded before the
// response goes out.
type StagedFile struct {
	Path         string
	OriginalName string
}

// UploadStage holds incoming multipart files on local disk until they are
// shipped to the Asset Store.
type UploadStage struct {
	dir string
}

// NewUploadStage stages files under dir, or the OS temp dir when empty.
func NewUploadStage(dir string) *UploadStage {
	if dir == "" {
		dir = os.TempDir()
	}
	return &UploadStage{dir: dir}
}

// Stage writes one multipart part to the holding directory.
func (s *UploadStage) Stage(fh *multipart.FileHeader) (*StagedFile, error) {
	if fh.Size > MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.CreateTemp(s.dir, "staged-upload-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create staged file: %w", err)
	}
	defer dst.Close()

	// Copy one byte past the cap so a lying Size header is still caught.
	written, err := io.Copy(dst, io.LimitReader(src, MaxUploadSize+1))
	if err != nil {
		os.Remove(dst.Name())
		return nil, fmt.Errorf("failed to write staged file: %w", err)
	}
	if written > MaxUploadSize {
		os.Remove(dst.Name())
		return nil, ErrFileTooLarge
	}

	return &StagedFile{
		Path:         dst.Name(),
		OriginalName: fh.Filename,
	}, nil
}

// Read returns the staged bytes. A missing file here means the stage was
// discarded early or tampered with; callers treat it as a server error.
func (s *UploadStage) Read(f *StagedFile) ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read staged file %s: %w", f.Path, err)
	}
	return data, nil
}

// Discard removes a staged copy. Best-effort: a stale temp file is a
// cleanup concern, not a correctness concern, so failure is only logged.
func (s *UploadStage) Discard(f *StagedFile) {
	if f == nil {
		return
	}
	if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] failed to discard staged file %s: %v", f.Path, err)
	}
}
