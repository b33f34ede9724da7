package Controllers

import (
	"log"
	"net/http"
	"strings"

	"EnasClinic/Models"
	"EnasClinic/SSE"

	"github.com/gin-gonic/gin"
)

func FetchClients(c *gin.Context) {
	var clients []Models.Client
	if err := Models.DB.Model(&Models.Client{}).Find(&clients).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clients)
}

func FetchClient(c *gin.Context) {
	var input struct {
		ClientID uint `json:"client_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var client Models.Client
	if err := Models.DB.Model(&Models.Client{}).Where("id = ?", input.ClientID).First(&client).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, client)
}

func CreateClient(c *gin.Context) {
	var input Models.Client

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.Phone != "" && !strings.HasPrefix(input.Phone, "+") {
		input.Phone = "+2" + input.Phone
	}

	if err := Models.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	SSE.Updates.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Client created successfully", "client_id": input.ID})
}

func UpdateClient(c *gin.Context) {
	var input struct {
		ID                   uint   `json:"id"`
		Name                 string `json:"name"`
		Phone                string `json:"phone"`
		Gender               string `json:"gender"`
		Age                  int    `json:"age"`
		Address              string `json:"address"`
		Notes                string `json:"notes"`
		HasDiabetes          bool   `json:"has_diabetes"`
		HasHeartCondition    bool   `json:"has_heart_condition"`
		HasHighBloodPressure bool   `json:"has_high_blood_pressure"`
		IsPregnant           bool   `json:"is_pregnant"`
		Allergies            string `json:"allergies"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var client Models.Client
	if err := Models.DB.Model(&Models.Client{}).Where("id = ?", input.ID).First(&client).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.Phone != "" && !strings.HasPrefix(input.Phone, "+") {
		input.Phone = "+2" + input.Phone
	}

	client.Name = input.Name
	client.Phone = input.Phone
	client.Gender = input.Gender
	client.Age = input.Age
	client.Address = input.Address
	client.Notes = input.Notes
	client.HasDiabetes = input.HasDiabetes
	client.HasHeartCondition = input.HasHeartCondition
	client.HasHighBloodPressure = input.HasHighBloodPressure
	client.IsPregnant = input.IsPregnant
	client.Allergies = input.Allergies

	if err := Models.DB.Save(&client).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	SSE.Updates.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Client updated successfully"})
}

// DeleteClient is the bulk deletion path: a client's session records live and
// die with the client, so they go in the same transaction.
func DeleteClient(c *gin.Context) {
	var input struct {
		ClientID uint `json:"client_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, err)
		return
	}

	tx := Models.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback() // Rollback the transaction in case of panic
		}
	}()

	if err := tx.Delete(&Models.SessionRecord{}, "client_id = ?", input.ClientID).Error; err != nil {
		log.Println(err)
		tx.Rollback()
		c.JSON(http.StatusBadRequest, err)
		return
	}

	if err := tx.Delete(&Models.Review{}, "client_id = ?", input.ClientID).Error; err != nil {
		log.Println(err)
		tx.Rollback()
		c.JSON(http.StatusBadRequest, err)
		return
	}

	if err := tx.Delete(&Models.Client{}, "id = ?", input.ClientID).Error; err != nil {
		log.Println(err)
		tx.Rollback()
		c.JSON(http.StatusBadRequest, err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Println(err)
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	SSE.Updates.Broadcast("refresh")
	SSE.Updates.BroadcastSessions(input.ClientID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Client Deleted Successfully",
	})
}
