package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	contactControllers "github.com/TroyMoses/walker-furniture-sub000/controllers/contact"
	newsletterControllers "github.com/TroyMoses/walker-furniture-sub000/controllers/newsletter"
	productControllers "github.com/TroyMoses/walker-furniture-sub000/controllers/product"
	reviewControllers "github.com/TroyMoses/walker-furniture-sub000/controllers/review"
	testimonialControllers "github.com/TroyMoses/walker-furniture-sub000/controllers/testimonial"
)

// SetupPublicRoutes registers the unauthenticated storefront endpoints.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))
	r.GET("/products/:id/reviews", reviewControllers.GetProductReviews(db))
	r.GET("/categories", productControllers.GetCategories(db))
	r.GET("/testimonials", testimonialControllers.GetTestimonials(db))

	r.POST("/contact", contactControllers.CreateContactMessage(db))
	r.POST("/newsletter/subscribe", newsletterControllers.Subscribe(db))
	r.POST("/newsletter/unsubscribe", newsletterControllers.Unsubscribe(db))
}
