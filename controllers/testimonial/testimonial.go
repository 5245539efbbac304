package testimonialControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TroyMoses/walker-furniture-sub000/models"
)

type TestimonialInput struct {
	Name      string `json:"name" binding:"required"`
	Title     string `json:"title"`
	Message   string `json:"message" binding:"required"`
	Picture   string `json:"picture"`
	Published *bool  `json:"published"`
}

// GET /testimonials — only published entries for the storefront.
func GetTestimonials(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var testimonials []models.Testimonial
		if err := db.Where("published = ?", true).
			Order("created_at DESC").Find(&testimonials).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
			return
		}
		c.JSON(http.StatusOK, testimonials)
	}
}

// GET /admin/testimonials
func GetAllTestimonials(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var testimonials []models.Testimonial
		if err := db.Order("created_at DESC").Find(&testimonials).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
			return
		}
		c.JSON(http.StatusOK, testimonials)
	}
}

// POST /admin/testimonials
func CreateTestimonial(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TestimonialInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		testimonial := models.Testimonial{
			Name:    input.Name,
			Title:   input.Title,
			Message: input.Message,
			Picture: input.Picture,
		}
		if input.Published != nil {
			testimonial.Published = *input.Published
		}

		if err := db.Create(&testimonial).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create testimonial"})
			return
		}
		c.JSON(http.StatusCreated, testimonial)
	}
}

// PUT /admin/testimonials/:id
func UpdateTestimonial(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var testimonial models.Testimonial
		if err := db.First(&testimonial, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonial"})
			return
		}

		var input TestimonialInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		testimonial.Name = input.Name
		testimonial.Title = input.Title
		testimonial.Message = input.Message
		testimonial.Picture = input.Picture
		if input.Published != nil {
			testimonial.Published = *input.Published
		}

		if err := db.Save(&testimonial).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update testimonial"})
			return
		}
		c.JSON(http.StatusOK, testimonial)
	}
}

// DELETE /admin/testimonials/:id
func DeleteTestimonial(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.Testimonial{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete testimonial"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
	}
}
