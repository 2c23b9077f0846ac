package admin_controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Tahir1605/frame-theory/models"
	"github.com/Tahir1605/frame-theory/repository"
	"github.com/Tahir1605/frame-theory/services"
	"github.com/gin-gonic/gin"
)

// AddAdmin godoc
// @Summary Create a new admin
// @Description Create an admin with an avatar uploaded to the Asset Store
// @Tags Admins
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Admin name"
// @Param email formData string true "Admin email"
// @Param password formData string true "Admin password"
// @Param image formData file true "Admin avatar"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/add-admin [post]
func AddAdmin(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	req := models.AddAdminRequest{
		Name:     strings.TrimSpace(c.PostForm("name")),
		Email:    strings.TrimSpace(c.PostForm("email")),
		Password: c.PostForm("password"),
	}
	fileHeader, ferr := c.FormFile("image")
	req.HasImage = ferr == nil && fileHeader != nil

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	// Pre-insert existence check. The unique index on email is the real
	// guard; this only gives the common case a friendlier path.
	if _, err := adminRepo.FindByEmail(ctx, req.Email); err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Admin already exists"))
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		log.Printf("[ERROR] admin lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	staged, err := lifecycle.StageFile(fileHeader)
	if err != nil {
		if errors.Is(err, services.ErrFileTooLarge) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		log.Printf("[ERROR] failed to stage admin image: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}
	defer lifecycle.Discard(staged)

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		log.Printf("[ERROR] failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	asset, err := lifecycle.UploadStaged(ctx, staged, services.FolderAdmins)
	if err != nil {
		log.Printf("[ERROR] failed to upload admin image: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	admin := &models.Admin{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Image:    asset.URL,
		FileID:   asset.FileID,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		// The remote object must not outlive a failed insert.
		lifecycle.Rollback(ctx, asset)
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Admin already exists"))
			return
		}
		log.Printf("[ERROR] failed to create admin: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Admin added successfully"))
}
