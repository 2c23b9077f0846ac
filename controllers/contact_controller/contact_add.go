package contact_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Tahir1605/frame-theory/models"
	"github.com/Tahir1605/frame-theory/services"
	"github.com/gin-gonic/gin"
)

// ContactAdd godoc
// @Summary Submit a contact enquiry
// @Description Save a public contact form submission and notify the studio inbox
// @Tags Contacts
// @Accept json
// @Produce json
// @Param request body models.AddContactRequest true "Contact details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/contact/add [post]
func ContactAdd(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	var req models.AddContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Name, email and message are required"))
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := contactRepo.Create(ctx, contact); err != nil {
		log.Printf("[ERROR] failed to create contact record: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	// Notify in the background; the submission is already saved.
	if mailer != nil {
		go func(data services.ContactEmailData) {
			if err := mailer.SendContactNotification(data); err != nil {
				log.Printf("[WARN] contact notification failed: %v", err)
			}
		}(services.ContactEmailData{
			Name:    contact.Name,
			Email:   contact.Email,
			Phone:   contact.Phone,
			Message: contact.Message,
		})
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Message sent successfully"))
}
