package contact_controller

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

// ContactDelete godoc
// @Summary Delete a contact enquiry
// @Description Remove a handled contact form submission
// @Tags Contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.DeleteRequest true "Contact id"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/contact-delete [delete]
func ContactDelete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	var req models.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Contact id is required"))
		return
	}

	if err := contactRepo.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Contact not found"))
			return
		}
		log.Printf("[ERROR] failed to delete contact record: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Contact deleted successfully"))
}
