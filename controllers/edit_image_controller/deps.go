package edit_image_controller

import (
	"github.com/Tahir1605/frame-theory/repository"
	"github.com/Tahir1605/frame-theory/services"
)

var (
	editImageRepo repository.EditImageRepository
	lifecycle     *services.AssetLifecycle
)

// Init wires the handler dependencies at startup, or with doubles in tests.
func Init(repo repository.EditImageRepository, lc *services.AssetLifecycle) {
	editImageRepo = repo
	lifecycle = lc
}
