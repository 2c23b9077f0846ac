package blog_controller

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

// BlogAdd godoc
// @Summary Add a blog post
// @Description Upload the cover image and persist the post
// @Tags Blogs
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Post title"
// @Param category formData string true "Post category"
// @Param content formData string true "Post body"
// @Param image formData file true "Cover image"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/blog-add [post]
func BlogAdd(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	req := models.AddBlogRequest{
		Title:    strings.TrimSpace(c.PostForm("title")),
		Category: strings.TrimSpace(c.PostForm("category")),
		Content:  strings.TrimSpace(c.PostForm("content")),
	}
	fileHeader, ferr := c.FormFile("image")
	req.HasImage = ferr == nil && fileHeader != nil

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	staged, err := lifecycle.StageFile(fileHeader)
	if err != nil {
		if errors.Is(err, services.ErrFileTooLarge) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		log.Printf("[ERROR] failed to stage blog image: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}
	defer lifecycle.Discard(staged)

	asset, err := lifecycle.UploadStaged(ctx, staged, services.FolderBlogs)
	if err != nil {
		log.Printf("[ERROR] failed to upload blog image: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	blog := &models.Blog{
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
		Image:    asset.URL,
		FileID:   asset.FileID,
	}
	if err := blogRepo.Create(ctx, blog); err != nil {
		lifecycle.Rollback(ctx, asset)
		log.Printf("[ERROR] failed to create blog record: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Blog added successfully"))
}
