package contact_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Tahir1605/frame-theory/models"
	"github.com/gin-gonic/gin"
)

// ContactList godoc
// @Summary List contact enquiries
// @Description List all contact form submissions, newest first
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/contact-list [get]
func ContactList(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	contacts, err := contactRepo.List(ctx)
	if err != nil {
		log.Printf("[ERROR] failed to fetch contacts: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	c.JSON(http.StatusOK, models.DataResponse(c, contacts))
}
