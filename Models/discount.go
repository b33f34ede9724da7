package Models

import (
	"gorm.io/gorm"
)

type Discount struct {
	gorm.Model
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"` // e.g., 10 for 10%
}
