package review_controller

import (
	"github.com/Tahir1605/frame-theory/repository"
	"github.com/Tahir1605/frame-theory/services"
)

var (
	reviewRepo repository.ReviewRepository
	lifecycle  *services.AssetLifecycle
)

// Init wires the handler dependencies at startup, or with doubles in tests.
func Init(repo repository.ReviewRepository, lc *services.AssetLifecycle) {
	reviewRepo = repo
	lifecycle = lc
}
