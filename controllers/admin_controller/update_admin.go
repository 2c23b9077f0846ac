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

// UpdateAdmin godoc
// @Summary Update an admin
// @Description Update any subset of name, email, password and avatar. A replaced avatar is destroyed remotely only after the new reference is committed.
// @Tags Admins
// @Accept multipart/form-data
// @Produce json
// @Param adminId formData string true "Admin ID"
// @Param name formData string false "New name"
// @Param email formData string false "New email"
// @Param password formData string false "New password"
// @Param image formData file false "New avatar"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/update-admin [post]
func UpdateAdmin(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	req := models.UpdateAdminRequest{
		AdminID:  strings.TrimSpace(c.PostForm("adminId")),
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

	admin, err := adminRepo.FindByID(ctx, req.AdminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Admin not found"))
			return
		}
		log.Printf("[ERROR] admin lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	if req.Name != "" {
		admin.Name = req.Name
	}
	if req.Email != "" {
		admin.Email = req.Email
	}
	if req.Password != "" {
		hashed, err := authService.HashPassword(req.Password)
		if err != nil {
			log.Printf("[ERROR] failed to hash password: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
			return
		}
		admin.Password = hashed
	}

	// Replacement ordering: upload new, commit record, then drop the old
	// remote object. Worst case is a short-lived orphan on the store,
	// never a record pointing at nothing.
	var newAsset services.UploadedAsset
	oldFileID := ""
	if req.HasImage {
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

		newAsset, err = lifecycle.UploadStaged(ctx, staged, services.FolderAdmins)
		if err != nil {
			log.Printf("[ERROR] failed to upload admin image: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
			return
		}
		oldFileID = admin.FileID
		admin.Image = newAsset.URL
		admin.FileID = newAsset.FileID
	}

	if err := adminRepo.Save(ctx, admin); err != nil {
		lifecycle.Rollback(ctx, newAsset)
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Admin already exists"))
			return
		}
		log.Printf("[ERROR] failed to update admin: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	if oldFileID != "" {
		lifecycle.Remove(ctx, oldFileID)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin updated successfully"))
}
