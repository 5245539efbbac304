package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TroyMoses/walker-furniture-sub000/config"
	userControllers "github.com/TroyMoses/walker-furniture-sub000/controllers/user"
	"github.com/TroyMoses/walker-furniture-sub000/middleware"
)

// SetupWebhookRoutes registers the identity-provider callback.
func SetupWebhookRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	webhooks := r.Group("/webhooks")
	webhooks.Use(middleware.ValidateWebhookSecret(cfg.Webhook.Secret))
	{
		webhooks.POST("/identity", userControllers.IdentityWebhookHandler(db))
	}
}
