package routes

import (
	"github.com/Tahir1605/frame-theory/controllers/admin_controller"
	"github.com/Tahir1605/frame-theory/controllers/blog_controller"
	"github.com/Tahir1605/frame-theory/controllers/contact_controller"
	"github.com/Tahir1605/frame-theory/controllers/edit_image_controller"
	"github.com/Tahir1605/frame-theory/controllers/image_controller"
	"github.com/Tahir1605/frame-theory/controllers/review_controller"
	"github.com/Tahir1605/frame-theory/controllers/video_controller"
	"github.com/Tahir1605/frame-theory/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers every dashboard endpoint under /admin.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")

	// Auth
	admin.POST("/login", admin_controller.AdminLogin)

	// Admins
	admin.POST("/add-admin", admin_controller.AddAdmin)
	admin.GET("/admin-list", admin_controller.AdminList)
	admin.POST("/update-admin", admin_controller.UpdateAdmin)
	admin.DELETE("/delete-admin", admin_controller.DeleteAdmin)

	// Gallery photos
	admin.POST("/image-add", image_controller.ImageAdd)
	admin.GET("/image-list", image_controller.ImageList)
	admin.DELETE("/image-delete", image_controller.ImageDelete)

	// Before/after showcases
	admin.POST("/add-edit-image", edit_image_controller.AddEditImage)
	admin.GET("/edit-image-list", edit_image_controller.EditImageList)
	admin.DELETE("/edit-image-delete", edit_image_controller.EditImageDelete)

	// Videos
	admin.POST("/video-add", video_controller.VideoAdd)
	admin.GET("/video-list", video_controller.VideoList)
	admin.DELETE("/video-delete", video_controller.VideoDelete)

	// Reviews
	admin.POST("/review-add", review_controller.ReviewAdd)
	admin.GET("/review-list", review_controller.ReviewList)
	admin.POST("/review-status", review_controller.ReviewStatus)
	admin.DELETE("/review-delete", review_controller.ReviewDelete)

	// Blogs
	admin.POST("/blog-add", blog_controller.BlogAdd)
	admin.GET("/blog-list", blog_controller.BlogList)
	admin.DELETE("/blog-delete", blog_controller.BlogDelete)

	// Contact inbox (JWT required)
	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		protected.GET("/contact-list", contact_controller.ContactList)
		protected.DELETE("/contact-delete", contact_controller.ContactDelete)
	}
}

// SetupPublicRoutes registers the endpoints the public site talks to.
func SetupPublicRoutes(rg *gin.RouterGroup) {
	contact := rg.Group("/contact")
	contact.POST("/add", contact_controller.ContactAdd)
}
