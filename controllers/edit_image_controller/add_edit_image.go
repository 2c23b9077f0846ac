package edit_image_controller

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

// AddEditImage godoc
// @Summary Add a before/after showcase
// @Description Upload the before and after photos as an atomic pair; if the second upload fails the first is rolled back
// @Tags Edit Images
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Showcase name"
// @Param category formData string true "Showcase category"
// @Param beforeImage formData file true "Before photo"
// @Param afterImage formData file true "After photo"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/add-edit-image [post]
func AddEditImage(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	req := models.AddEditImageRequest{
		Name:     strings.TrimSpace(c.PostForm("name")),
		Category: strings.TrimSpace(c.PostForm("category")),
	}
	beforeHeader, berr := c.FormFile("beforeImage")
	afterHeader, aerr := c.FormFile("afterImage")
	req.HasBefore = berr == nil && beforeHeader != nil
	req.HasAfter = aerr == nil && afterHeader != nil

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	stagedBefore, err := lifecycle.StageFile(beforeHeader)
	if err != nil {
		if errors.Is(err, services.ErrFileTooLarge) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		log.Printf("[ERROR] failed to stage before image: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}
	defer lifecycle.Discard(stagedBefore)

	stagedAfter, err := lifecycle.StageFile(afterHeader)
	if err != nil {
		if errors.Is(err, services.ErrFileTooLarge) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		log.Printf("[ERROR] failed to stage after image: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}
	defer lifecycle.Discard(stagedAfter)

	beforeAsset, afterAsset, err := lifecycle.UploadStagedPair(ctx, stagedBefore, stagedAfter)
	if err != nil {
		log.Printf("[ERROR] failed to upload before/after pair: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	editImage := &models.EditImage{
		Name:         req.Name,
		Category:     req.Category,
		BeforeImage:  beforeAsset.URL,
		AfterImage:   afterAsset.URL,
		BeforeFileID: beforeAsset.FileID,
		AfterFileID:  afterAsset.FileID,
	}
	if err := editImageRepo.Create(ctx, editImage); err != nil {
		// Both halves go: the pair is created and destroyed atomically.
		lifecycle.Rollback(ctx, beforeAsset, afterAsset)
		log.Printf("[ERROR] failed to create edit image record: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Edit image added successfully"))
}
