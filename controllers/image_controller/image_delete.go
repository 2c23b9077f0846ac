package image_controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Tahir1605/frame-theory/models"
	"github.com/Tahir1605/frame-theory/repository"
	"github.com/gin-gonic/gin"
)

// ImageDelete godoc
// @Summary Delete a gallery photo
// @Description Delete a photo record and its remote asset
// @Tags Images
// @Accept json
// @Produce json
// @Param request body models.DeleteRequest true "Photo id"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/image-delete [delete]
func ImageDelete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	var req models.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image id is required"))
		return
	}

	image, err := imageRepo.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Image not found"))
			return
		}
		log.Printf("[ERROR] image lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	lifecycle.Remove(ctx, image.FileID)

	if err := imageRepo.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Image not found"))
			return
		}
		log.Printf("[ERROR] failed to delete image record: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image deleted successfully"))
}
