package blog_controller

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

// BlogDelete godoc
// @Summary Delete a blog post
// @Description Delete the post record and its remote cover image
// @Tags Blogs
// @Accept json
// @Produce json
// @Param request body models.DeleteRequest true "Post id"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/blog-delete [delete]
func BlogDelete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	var req models.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Blog id is required"))
		return
	}

	blog, err := blogRepo.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Blog not found"))
			return
		}
		log.Printf("[ERROR] blog lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	lifecycle.Remove(ctx, blog.FileID)

	if err := blogRepo.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Blog not found"))
			return
		}
		log.Printf("[ERROR] failed to delete blog record: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Blog deleted successfully"))
}
