package admin_controller

import (
	"github.com/Tahir1605/frame-theory/repository"
	"github.com/Tahir1605/frame-theory/services"
)

var (
	adminRepo   repository.AdminRepository
	lifecycle   *services.AssetLifecycle
	authService = services.NewAdminAuthService()
)

// Init wires the handler dependencies at startup, or with doubles in tests.
func Init(repo repository.AdminRepository, lc *services.AssetLifecycle) {
	adminRepo = repo
	lifecycle = lc
}
