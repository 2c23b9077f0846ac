package edit_image_controller

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

// EditImageDelete godoc
// @Summary Delete a before/after showcase
// @Description Delete the record and both remote assets together
// @Tags Edit Images
// @Accept json
// @Produce json
// @Param request body models.DeleteRequest true "Showcase id"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/edit-image-delete [delete]
func EditImageDelete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	var req models.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image id is required"))
		return
	}

	editImage, err := editImageRepo.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Image not found"))
			return
		}
		log.Printf("[ERROR] edit image lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	lifecycle.Remove(ctx, editImage.BeforeFileID, editImage.AfterFileID)

	if err := editImageRepo.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Image not found"))
			return
		}
		log.Printf("[ERROR] failed to delete edit image record: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Edit image deleted successfully"))
}
