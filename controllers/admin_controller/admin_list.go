package admin_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Tahir1605/frame-theory/models"
	"github.com/gin-gonic/gin"
)

// AdminList godoc
// @Summary List admins
// @Description List all admins, newest first. Password hashes and Asset Store ids are never serialized.
// @Tags Admins
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/admin-list [get]
func AdminList(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	admins, err := adminRepo.List(ctx)
	if err != nil {
		log.Printf("[ERROR] failed to fetch admin list: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch admin list"))
		return
	}

	c.JSON(http.StatusOK, models.DataResponse(c, admins))
}
