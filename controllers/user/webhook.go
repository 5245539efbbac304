package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TroyMoses/walker-furniture-sub000/models"
)

type IdentityWebhookInput struct {
	ID      string `json:"id" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Role    string `json:"role"`
}

// POST /webhooks/identity
//
// The identity provider pushes account events here; this is the only
// place user records are created. Upsert keyed on the provider's stable
// id so replayed events are harmless.
func IdentityWebhookHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input IdentityWebhookInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		role := models.RoleCustomer
		if input.Role == string(models.RoleAdmin) {
			role = models.RoleAdmin
		}

		user := models.User{
			ID:      input.ID,
			Email:   input.Email,
			Name:    input.Name,
			Picture: input.Picture,
			Role:    role,
		}

		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "name", "picture", "role", "updated_at"}),
		}).Create(&user).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to provision user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User provisioned"})
	}
}
