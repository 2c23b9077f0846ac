package review_controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Tahir1605/frame-theory/models"
	"github.com/Tahir1605/frame-theory/services"
	"github.com/gin-gonic/gin"
)

// ReviewAdd godoc
// @Summary Add a customer review
// @Description Upload a reviewer portrait and persist the testimonial
// @Tags Reviews
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Reviewer name"
// @Param rating formData int true "Rating 1-5"
// @Param review formData string true "Review text"
// @Param image formData file true "Reviewer portrait"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/review-add [post]
func ReviewAdd(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	rating, _ := strconv.Atoi(c.PostForm("rating"))
	req := models.AddReviewRequest{
		Name:   strings.TrimSpace(c.PostForm("name")),
		Rating: rating,
		Review: strings.TrimSpace(c.PostForm("review")),
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
		log.Printf("[ERROR] failed to stage review image: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}
	defer lifecycle.Discard(staged)

	asset, err := lifecycle.UploadStaged(ctx, staged, services.FolderReviews)
	if err != nil {
		log.Printf("[ERROR] failed to upload review image: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	review := &models.Review{
		Name:   req.Name,
		Rating: req.Rating,
		Review: req.Review,
		Image:  asset.URL,
		FileID: asset.FileID,
		Status: true,
	}
	if err := reviewRepo.Create(ctx, review); err != nil {
		lifecycle.Rollback(ctx, asset)
		log.Printf("[ERROR] failed to create review record: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Review added successfully"))
}
