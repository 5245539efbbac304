package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TroyMoses/walker-furniture-sub000/config"
	cartControllers "github.com/TroyMoses/walker-furniture-sub000/controllers/cart"
	contactControllers "github.com/TroyMoses/walker-furniture-sub000/controllers/contact"
	newsletterControllers "github.com/TroyMoses/walker-furniture-sub000/controllers/newsletter"
	orderControllers "github.com/TroyMoses/walker-furniture-sub000/controllers/order"
	productControllers "github.com/TroyMoses/walker-furniture-sub000/controllers/product"
	reviewControllers "github.com/TroyMoses/walker-furniture-sub000/controllers/review"
	testimonialControllers "github.com/TroyMoses/walker-furniture-sub000/controllers/testimonial"
	userControllers "github.com/TroyMoses/walker-furniture-sub000/controllers/user"
	"github.com/TroyMoses/walker-furniture-sub000/middleware"
)

// SetupAdminRoutes registers the back-office endpoints. All of them need
// a valid token carrying the admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(cfg.JWT.Secret), middleware.RequireAdmin)
	{
		// ──────────────── Products & Categories ────────────────
		adminGroup.POST("/products", productControllers.CreateProduct(db))
		adminGroup.PUT("/products/:id", productControllers.UpdateProduct(db))
		adminGroup.DELETE("/products/:id", productControllers.DeleteProduct(db))
		adminGroup.GET("/products/export", productControllers.ExportProductsToExcel(db))
		adminGroup.POST("/categories", productControllers.CreateCategory(db))
		adminGroup.PUT("/categories/:id", productControllers.UpdateCategory(db))
		adminGroup.DELETE("/categories/:id", productControllers.DeleteCategory(db))

		// ──────────────── Orders ────────────────
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		adminGroup.GET("/orders/export", orderControllers.ExportOrdersToExcel(db))
		adminGroup.GET("/orders/ws", orderControllers.OrderFeedHandler)
		adminGroup.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))

		// ──────────────── Customers & Carts ────────────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.GET("/carts/:user_id", cartControllers.GetAdminUserCart(db))

		// ──────────────── Content Moderation ────────────────
		adminGroup.DELETE("/reviews/:id", reviewControllers.DeleteReview(db))
		adminGroup.GET("/testimonials", testimonialControllers.GetAllTestimonials(db))
		adminGroup.POST("/testimonials", testimonialControllers.CreateTestimonial(db))
		adminGroup.PUT("/testimonials/:id", testimonialControllers.UpdateTestimonial(db))
		adminGroup.DELETE("/testimonials/:id", testimonialControllers.DeleteTestimonial(db))
		adminGroup.GET("/contacts", contactControllers.GetContactMessages(db))
		adminGroup.PUT("/contacts/:id/resolve", contactControllers.ResolveContactMessage(db))
		adminGroup.DELETE("/contacts/:id", contactControllers.DeleteContactMessage(db))
		adminGroup.GET("/newsletter", newsletterControllers.GetSubscriptions(db))
	}
}
