package blog_controller

import (
	"github.com/Tahir1605/frame-theory/repository"
	"github.com/Tahir1605/frame-theory/services"
)

var (
	blogRepo  repository.BlogRepository
	lifecycle *services.AssetLifecycle
)

// Init wires the handler dependencies at startup, or with doubles in tests.
func Init(repo repository.BlogRepository, lc *services.AssetLifecycle) {
	blogRepo = repo
	lifecycle = lc
}
