package image_controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Tahir1605/frame-theory/models"
	"github.com/Tahir1605/frame-theory/services"
	"github.com/gin-gonic/gin"
)

// ImageAdd godoc
// @Summary Add a gallery photo
// @Description Upload a photo to the Asset Store and persist its record
// @Tags Images
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Photo name"
// @Param category formData string true "Photo category"
// @Param image formData file true "Photo file"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/image-add [post]
func ImageAdd(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	req := models.AddImageRequest{
		Name:     strings.TrimSpace(c.PostForm("name")),
		Category: strings.TrimSpace(c.PostForm("category")),
	}
	fileHeader, ferr := c.FormFile("image")
	req.HasImage = ferr == nil && fileHeader != nil

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	staged, err := lifecycle.StageFile(fileHeader)
	if err != nil {
		if errors.Is(err, services.ErrFileTooLarge) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		log.Printf("[ERROR] failed to stage image: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}
	defer lifecycle.Discard(staged)

	asset, err := lifecycle.UploadStaged(ctx, staged, services.FolderImages)
	if err != nil {
		log.Printf("[ERROR] failed to upload image: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	image := &models.Image{
		Name:     req.Name,
		Category: req.Category,
		Image:    asset.URL,
		FileID:   asset.FileID,
	}
	if err := imageRepo.Create(ctx, image); err != nil {
		lifecycle.Rollback(ctx, asset)
		log.Printf("[ERROR] failed to create image record: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Image added successfully"))
}
