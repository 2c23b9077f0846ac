package edit_image_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Tahir1605/frame-theory/models"
	"github.com/gin-gonic/gin"
)

// EditImageList godoc
// @Summary List before/after showcases
// @Description List all showcases, newest first
// @Tags Edit Images
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/edit-image-list [get]
func EditImageList(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	editImages, err := editImageRepo.List(ctx)
	if err != nil {
		log.Printf("[ERROR] failed to fetch edit images: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch images"))
		return
	}

	c.JSON(http.StatusOK, models.DataResponse(c, editImages))
}
