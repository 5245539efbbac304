package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TroyMoses/walker-furniture-sub000/config"
)

// SetupRoutes is the single entry-point that wires up the public, user,
// admin, and webhook route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Public storefront routes (no middleware)
	SetupPublicRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db, cfg)

	// Admin routes (JWT + admin role)
	SetupAdminRoutes(r, db, cfg)

	// Identity-provider webhook (shared secret)
	SetupWebhookRoutes(r, db, cfg)
}
