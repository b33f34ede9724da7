package CronJobs

import (
	"EnasClinic/Models"
	"EnasClinic/Whatsapp"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// ReviewRequester sends a review ask over WhatsApp to clients who had a
// session the previous day.
type ReviewRequester struct {
	DB *gorm.DB
}

func NewReviewRequester(db *gorm.DB) *ReviewRequester {
	return &ReviewRequester{
		DB: db,
	}
}

// StartReviewCron starts the daily job that sends review requests.
func (rr *ReviewRequester) StartReviewCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(1).Day().At("10:00").Do(func() {
		log.Println("Running review request check...")
		if err := rr.SendReviewRequests(); err != nil {
			log.Printf("Error sending review requests: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Review request cron job started")

	return scheduler
}

func (rr *ReviewRequester) SendReviewRequests() error {
	date := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	var records []Models.SessionRecord
	result := rr.DB.Model(&Models.SessionRecord{}).
		Where("date = ?", date).
		Find(&records)

	if result.Error != nil {
		return fmt.Errorf("failed to query sessions for %s: %w", date, result.Error)
	}

	seen := map[uint]bool{}
	for _, record := range records {
		if seen[record.ClientID] {
			continue
		}
		seen[record.ClientID] = true

		// One request per client per session date.
		var existing Models.ReviewRequest
		err := rr.DB.Where("client_id = ? AND date = ?", record.ClientID, date).First(&existing).Error
		if err == nil {
			continue
		}

		var reviewed int64
		rr.DB.Model(&Models.Review{}).Where("client_id = ?", record.ClientID).Count(&reviewed)
		if reviewed > 0 {
			continue
		}

		var client Models.Client
		if err := rr.DB.First(&client, record.ClientID).Error; err != nil {
			log.Printf("Failed to find client for session record ID %d: %v", record.ID, err)
			continue
		}

		if client.Phone == "" {
			continue
		}

		message := fmt.Sprintf(
			"Hello %s, thank you for visiting us yesterday. "+
				"We would love to hear how your session went, you can reply here or leave a review at %s.",
			client.Name,
			reviewLink(client.ID),
		)

		if err := Whatsapp.SendMessage(client.Phone, message); err != nil {
			log.Printf("Failed to send review request to client %s: %v", client.Name, err)
			continue
		}

		request := Models.ReviewRequest{ClientID: client.ID, Date: date}
		if err := rr.DB.Create(&request).Error; err != nil {
			log.Printf("Failed to log review request for client %s: %v", client.Name, err)
		}

		log.Printf("Review request sent to %s for session on %s", client.Name, date)
	}

	return nil
}

func reviewLink(clientID uint) string {
	base := os.Getenv("REVIEW_BASE_URL")
	if base == "" {
		base = "http://localhost:3005/Web/review"
	}
	return fmt.Sprintf("%s?client_id=%v", base, clientID)
}
