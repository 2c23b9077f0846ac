package image_controller

import (
	"github.com/Tahir1605/frame-theory/repository"
	"github.com/Tahir1605/frame-theory/services"
)

var (
	imageRepo repository.ImageRepository
	lifecycle *services.AssetLifecycle
)

// Init wires the handler dependencies at startup, or with doubles in tests.
func Init(repo repository.ImageRepository, lc *services.AssetLifecycle) {
	imageRepo = repo
	lifecycle = lc
}
