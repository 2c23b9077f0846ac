package image_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Tahir1605/frame-theory/models"
	"github.com/gin-gonic/gin"
)

// ImageList godoc
// @Summary List gallery photos
// @Description List all photos, newest first
// @Tags Images
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/image-list [get]
func ImageList(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	images, err := imageRepo.List(ctx)
	if err != nil {
		log.Printf("[ERROR] failed to fetch images: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch images"))
		return
	}

	c.JSON(http.StatusOK, models.DataResponse(c, images))
}
