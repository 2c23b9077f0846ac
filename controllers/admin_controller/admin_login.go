package admin_controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Tahir1605/frame-theory/models"
	"github.com/Tahir1605/frame-theory/repository"
	"github.com/Tahir1605/frame-theory/services"
	"github.com/gin-gonic/gin"
)

// AdminLogin godoc
// @Summary Admin login
// @Description Verify credentials and issue a JWT for the dashboard session
// @Tags Admins
// @Accept json
// @Produce json
// @Param request body models.AdminLoginRequest true "Login credentials"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /api/admin/login [post]
func AdminLogin(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	admin, err := adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Same message as a bad password: no account enumeration.
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		log.Printf("[ERROR] admin lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	if !authService.VerifyPassword(admin.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, err := services.GenerateAdminJWT(admin.ID.String(), admin.Email)
	if err != nil {
		log.Printf("[ERROR] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	c.JSON(http.StatusOK, models.DataResponse(c, models.AdminLoginResponse{
		Admin: *admin,
		Token: token,
	}))
}
