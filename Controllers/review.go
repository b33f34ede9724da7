package Controllers

import (
	"net/http"

	"EnasClinic/Models"
	"EnasClinic/SSE"

	"github.com/gin-gonic/gin"
)

// SubmitReview is public: the review link sent to clients posts here.
func SubmitReview(c *gin.Context) {
	var input struct {
		ClientID uint   `json:"client_id" binding:"required"`
		Rating   int    `json:"rating" binding:"required"`
		Comment  string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Rating < 1 || input.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	var client Models.Client
	if err := Models.DB.Model(&Models.Client{}).Where("id = ?", input.ClientID).First(&client).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client not found"})
		return
	}

	review := Models.Review{
		ClientID:   client.ID,
		ClientName: client.Name,
		Rating:     input.Rating,
		Comment:    input.Comment,
		Source:     "web",
	}
	if err := Models.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	SSE.Updates.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Thank you for your review"})
}

func FetchReviews(c *gin.Context) {
	var reviews []Models.Review
	if err := Models.DB.Model(&Models.Review{}).Order("created_at desc").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func FetchClientReviews(c *gin.Context) {
	var input struct {
		ClientID uint `json:"client_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var reviews []Models.Review
	if err := Models.DB.Model(&Models.Review{}).Where("client_id = ?", input.ClientID).Find(&reviews).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func DeleteReview(c *gin.Context) {
	var input struct {
		ReviewID uint `json:"review_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Delete(&Models.Review{}, "id = ?", input.ReviewID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Review Deleted Successfully",
	})
}
