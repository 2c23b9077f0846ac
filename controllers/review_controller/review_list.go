package review_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Tahir1605/frame-theory/models"
	"github.com/gin-gonic/gin"
)

// ReviewList godoc
// @Summary List reviews
// @Description List all reviews, newest first, including unapproved ones for the dashboard
// @Tags Reviews
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/review-list [get]
func ReviewList(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	reviews, err := reviewRepo.List(ctx)
	if err != nil {
		log.Printf("[ERROR] failed to fetch reviews: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	c.JSON(http.StatusOK, models.DataResponse(c, reviews))
}
