package video_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Tahir1605/frame-theory/models"
	"github.com/gin-gonic/gin"
)

// VideoAdd godoc
// @Summary Add a video
// @Description Register an externally hosted video by link
// @Tags Videos
// @Accept json
// @Produce json
// @Param request body models.AddVideoRequest true "Video details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/video-add [post]
func VideoAdd(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	var req models.AddVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Name, video link and category are required"))
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	video := &models.Video{
		Name:     req.Name,
		Link:     req.Link,
		Category: req.Category,
	}
	if err := videoRepo.Create(ctx, video); err != nil {
		log.Printf("[ERROR] failed to create video record: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Video added successfully"))
}
