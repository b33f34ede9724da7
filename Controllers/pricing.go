package Controllers

import (
	"net/http"

	"EnasClinic/Models"

	"github.com/gin-gonic/gin"
)

func FetchRegionCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, Models.RegionCatalog)
}

func FetchRegionPrices(c *gin.Context) {
	var prices []Models.RegionPrice
	if err := Models.DB.Model(&Models.RegionPrice{}).Find(&prices).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prices)
}

func SetRegionPrice(c *gin.Context) {
	var input struct {
		RegionKey string  `json:"region_key" binding:"required"`
		Price     float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !Models.RegionExists(input.RegionKey) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown region"})
		return
	}
	if input.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}

	var price Models.RegionPrice
	err := Models.DB.Model(&Models.RegionPrice{}).Where("region_key = ?", input.RegionKey).First(&price).Error
	if err != nil {
		price = Models.RegionPrice{RegionKey: input.RegionKey, Price: input.Price}
		if err := Models.DB.Create(&price).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		price.Price = input.Price
		if err := Models.DB.Save(&price).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Price Saved Successfully",
	})
}

// ImportRegionPrices replaces the whole price table from a raw key->value
// mapping. Non-numeric values degrade to 0 rather than failing the import.
func ImportRegionPrices(c *gin.Context) {
	var input struct {
		Prices map[string]interface{} `json:"prices" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table := Models.NormalizePrices(input.Prices)

	tx := Models.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Unscoped().Where("1 = 1").Delete(&Models.RegionPrice{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for key, value := range table {
		if !Models.RegionExists(key) {
			continue
		}
		if err := tx.Create(&Models.RegionPrice{RegionKey: key, Price: value}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Prices Imported Successfully",
	})
}

func DeleteRegionPrice(c *gin.Context) {
	var input struct {
		RegionKey string `json:"region_key"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Delete(&Models.RegionPrice{}, "region_key = ?", input.RegionKey).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Price Deleted Successfully",
	})
}

func FetchDiscounts(c *gin.Context) {
	var discounts []Models.Discount
	if err := Models.DB.Model(&Models.Discount{}).Find(&discounts).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, discounts)
}

func AddDiscount(c *gin.Context) {
	var input Models.Discount
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Percentage < 0 || input.Percentage > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Percentage must be between 0 and 100"})
		return
	}
	if err := Models.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Discount Created Successfully",
	})
}

func EditDiscount(c *gin.Context) {
	var input Models.Discount
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Discount Edited Successfully",
	})
}

func DeleteDiscount(c *gin.Context) {
	var input struct {
		DiscountID uint `json:"discount_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Delete(&Models.Discount{}, "id = ?", input.DiscountID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Discount Deleted Successfully",
	})
}
