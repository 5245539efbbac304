package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/TroyMoses/walker-furniture-sub000/config"
	"github.com/TroyMoses/walker-furniture-sub000/logger"
	"github.com/TroyMoses/walker-furniture-sub000/metrics"
	"github.com/TroyMoses/walker-furniture-sub000/models"
	"github.com/TroyMoses/walker-furniture-sub000/routes"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()

	db := initDatabase(cfg, log)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Category{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.Testimonial{},
		&models.ContactMessage{},
		&models.NewsletterSubscription{},
	); err != nil {
		log.Fatal("auto-migrate failed", zap.Error(err))
	}

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), metrics.Middleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Webhook-Secret"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupRoutes(r, db, cfg)

	log.Info("server starting",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func initDatabase(cfg *config.Config, log *zap.Logger) *gorm.DB {
	// No FK constraints from carts/orders into the catalog: product
	// removals must not cascade or be blocked; reads tolerate dangling ids.
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	return db
}
