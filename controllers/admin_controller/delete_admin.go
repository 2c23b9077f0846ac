package admin_controller

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

// DeleteAdmin godoc
// @Summary Delete an admin
// @Description Delete an admin and its remote avatar. Remote cleanup is best-effort; the record delete is what must succeed.
// @Tags Admins
// @Accept json
// @Produce json
// @Param request body models.DeleteRequest true "Admin id"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/delete-admin [delete]
func DeleteAdmin(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	var req models.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Admin ID is required"))
		return
	}

	admin, err := adminRepo.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Admin not found"))
			return
		}
		log.Printf("[ERROR] admin lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	lifecycle.Remove(ctx, admin.FileID)

	if err := adminRepo.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Admin not found"))
			return
		}
		log.Printf("[ERROR] failed to delete admin: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin deleted successfully"))
}
