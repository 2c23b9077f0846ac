package video_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Tahir1605/frame-theory/models"
	"github.com/gin-gonic/gin"
)

// VideoList godoc
// @Summary List videos
// @Description List all videos, newest first
// @Tags Videos
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/video-list [get]
func VideoList(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	videos, err := videoRepo.List(ctx)
	if err != nil {
		log.Printf("[ERROR] failed to fetch videos: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	c.JSON(http.StatusOK, models.DataResponse(c, videos))
}
