package Whatsapp

import (
	"EnasClinic/Constants"
	"EnasClinic/Models"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	whatsapp_chatbot_golang "github.com/green-api/whatsapp-chatbot-golang"
)

// Listen runs the green-api bot so clients can reply to review requests in
// the same chat. Replies with structured sender data arrive through the
// bridge webhook (ReceiveMessage); the bot just acknowledges.
func Listen() {
	instanceID := os.Getenv("GREEN_API_INSTANCE_ID")
	apiToken := os.Getenv("GREEN_API_TOKEN")
	if instanceID == "" || apiToken == "" {
		log.Println("GREEN_API credentials not set, WhatsApp listener disabled")
		return
	}

	bot := whatsapp_chatbot_golang.NewBot(instanceID, apiToken)

	bot.SetStartScene(ReviewScene{})

	bot.StartReceivingNotifications()
}

type ReviewScene struct {
}

func (s ReviewScene) Start(bot *whatsapp_chatbot_golang.Bot) {
	bot.IncomingMessageHandler(func(message *whatsapp_chatbot_golang.Notification) {
		text, _ := message.Text()
		log.Println("whatsapp message received:", text)
		message.AnswerWithText("Thank you! Your feedback has been passed to the clinic.")
	})
}

// ReceiveMessage is the bridge webhook: the WhatsApp service posts inbound
// messages here with the sender's phone. A message from a known client phone
// is stored as a review.
func ReceiveMessage(c *gin.Context) {
	var input struct {
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var client Models.Client
	if err := Models.DB.Model(&Models.Client{}).Where("phone = ?", input.Phone).First(&client).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"message": "Sender is not a known client"})
		return
	}

	review := Models.Review{
		ClientID:   client.ID,
		ClientName: client.Name,
		Comment:    input.Message,
		Source:     "whatsapp",
	}
	if err := Models.DB.Create(&review).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review Saved"})
}

func CheckLogin(c *gin.Context) {
	client := &http.Client{}
	method := "GET"

	url := Constants.WhatsappGoService + "/app/devices"
	req, err := http.NewRequest(method, url, nil)

	if err != nil {
		fmt.Println(err)
	}
	req.Header.Add("Content-Type", "application/json")

	res, err := client.Do(req)
	if err != nil {
		fmt.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "WhatsApp service unreachable"})
		return
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Println(err)
		return
	}
	var output struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Results []struct {
			Name   string `json:"name"`
			Device string `json:"device"`
		}
	}
	if err = json.Unmarshal(body, &output); err != nil {
		log.Println(err)
		return
	}

	if len(output.Results) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Not Logged In"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged In"})
}

func GetQRCode(c *gin.Context) {
	client := &http.Client{}
	method := "GET"

	urlLogin := Constants.WhatsappGoService + "/app/login"
	req, err := http.NewRequest(method, urlLogin, nil)

	if err != nil {
		fmt.Println(err)
	}
	req.Header.Add("Content-Type", "application/json")

	res, err := client.Do(req)
	if err != nil {
		fmt.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "WhatsApp service unreachable"})
		return
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Println(err)
	}

	var output struct {
		Results struct {
			QRLink string `json:"qr_link"`
		} `json:"results"`
	}

	if err = json.Unmarshal(body, &output); err != nil {
		log.Println(err)
	}

	req, err = http.NewRequest(method, output.Results.QRLink, nil)

	if err != nil {
		fmt.Println(err)
	}
	req.Header.Add("Content-Type", "application/json")

	res, err = client.Do(req)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer res.Body.Close()

	body, err = io.ReadAll(res.Body)
	if err != nil {
		fmt.Println(err)
	}
	c.Header("Content-Disposition", "attachment; filename=qr.png")
	c.Data(http.StatusOK, "application/octet-stream", body)
}

func SendMessage(phone, message string) error {
	client := &http.Client{}
	method := "POST"

	url := Constants.WhatsappGoService + "/send/message"
	payload, err := json.Marshal(map[string]string{"phone": phone, "message": message})
	if err != nil {
		return err
	}
	req, err := http.NewRequest(method, url, bytes.NewBuffer(payload))

	if err != nil {
		fmt.Println(err)
		return err
	}
	req.Header.Add("Content-Type", "application/json")

	res, err := client.Do(req)
	if err != nil {
		fmt.Println(err)
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Println(err)
		return err
	}
	log.Println("whatsapp send response:", string(body))
	return nil
}
