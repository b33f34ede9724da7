package Models

import "gorm.io/gorm"

// SessionRecord is one region's treatment within a capture event. Records are
// created once and never updated; the only deletion path is the client bulk
// delete. TotalPrice is the event-level total and is duplicated across every
// region recorded in the same submit, mirroring the stored data shape the web
// client expects; CaptureID ties the records of one submit back together.
type SessionRecord struct {
	gorm.Model
	UID           string  `json:"uid" gorm:"uniqueIndex"`
	CaptureID     string  `json:"capture_id" gorm:"index"`
	ClientID      uint    `json:"client_id"`
	ClientName    string  `json:"client_name"`
	Region        string  `json:"region"`
	Date          string  `json:"date"` // 2006-01-02
	Notes         string  `json:"notes"`
	PaymentMethod string  `json:"payment_method"`
	TotalPrice    float64 `json:"total_price"`
	Paid          float64 `json:"paid"`
	Remaining     float64 `json:"remaining"`
	PaymentStatus string  `json:"payment_status"`
	StaffName     string  `json:"staff_name"`
}
