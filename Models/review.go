package Models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	ClientID   uint   `json:"client_id"`
	ClientName string `json:"client_name"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Source     string `json:"source"` // "web" or "whatsapp"
}

// ReviewRequest logs that a client was asked for a review for a given capture
// date, so the cron job asks at most once per date.
type ReviewRequest struct {
	gorm.Model
	ClientID uint   `json:"client_id"`
	Date     string `json:"date"`
}
