package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TroyMoses/walker-furniture-sub000/config"
	cartControllers "github.com/TroyMoses/walker-furniture-sub000/controllers/cart"
	orderControllers "github.com/TroyMoses/walker-furniture-sub000/controllers/order"
	reviewControllers "github.com/TroyMoses/walker-furniture-sub000/controllers/review"
	userControllers "github.com/TroyMoses/walker-furniture-sub000/controllers/user"
	"github.com/TroyMoses/walker-furniture-sub000/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(cfg.JWT.Secret))
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))               // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(db))              // POST /user/cart
			cartGroup.PUT("/:line_id", cartControllers.UpdateCartItem(db))    // PUT /user/cart/:line_id
			cartGroup.DELETE("/:line_id", cartControllers.DeleteCartItem(db)) // DELETE /user/cart/:line_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))          // DELETE /user/cart
		}

		// ──────────────── Checkout & Order History ────────────────
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("/", orderControllers.PlaceOrderHandler(db))         // POST /user/orders
			orderGroup.GET("/", orderControllers.GetUserOrdersHandler(db))       // GET /user/orders
			orderGroup.GET("/:orderID", orderControllers.GetOrderByIDHandler(db)) // GET /user/orders/:orderID
		}

		// ──────────────── Product Reviews ────────────────
		userGroup.POST("/products/:id/reviews", reviewControllers.CreateReview(db)) // POST /user/products/:id/reviews
	}
}
