package blog_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Tahir1605/frame-theory/models"
	"github.com/gin-gonic/gin"
)

// BlogList godoc
// @Summary List blog posts
// @Description List all posts, newest first
// @Tags Blogs
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/blog-list [get]
func BlogList(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	blogs, err := blogRepo.List(ctx)
	if err != nil {
		log.Printf("[ERROR] failed to fetch blogs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	c.JSON(http.StatusOK, models.DataResponse(c, blogs))
}
