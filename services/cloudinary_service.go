package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadedAsset is the Asset Store's handle for one stored object:
// the id used to destroy it and the transformed display URL.
type UploadedAsset struct {
	FileID string
	URL    string
}

// AssetStore is the remote CDN surface the lifecycle manager talks to.
type AssetStore interface {
	Upload(ctx context.Context, file []byte, fileName, folder string) (UploadedAsset, error)
	Delete(ctx context.Context, fileID string) error
}

// displayTransform is the fixed delivery policy applied to every asset of
// every kind, a bandwidth choice rather than a per-entity option.
const displayTransform = "q_auto,f_webp,w_1280"

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// Upload ships file bytes to Cloudinary under the given folder and returns
// the destroy handle plus the display URL.
func (s *CloudinaryService) Upload(ctx context.Context, file []byte, fileName, folder string) (UploadedAsset, error) {
	// Use pointer booleans as required by the cloudinary SDK
	unique := true
	overwrite := false
	uploadParams := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if fileName != "" {
		uploadParams.PublicID = fileName
	}

	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(file), uploadParams)
	if err != nil {
		return UploadedAsset{}, fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" || result.PublicID == "" {
		return UploadedAsset{}, fmt.Errorf("upload successful but response incomplete")
	}

	return UploadedAsset{
		FileID: result.PublicID,
		URL:    DisplayURL(result.SecureURL),
	}, nil
}

// Delete destroys an image on Cloudinary using its public ID.
func (s *CloudinaryService) Delete(ctx context.Context, fileID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: fileID,
	})
	return err
}

// DisplayURL inserts the fixed delivery transformation into a Cloudinary
// secure URL. Pure string construction; transformation happens on delivery
// so uploads stay fast.
func DisplayURL(secureURL string) string {
	const marker = "/upload/"
	i := strings.Index(secureURL, marker)
	if i < 0 {
		return secureURL
	}
	return secureURL[:i+len(marker)] + displayTransform + "/" + secureURL[i+len(marker):]
}
