package Models

import (
	"gorm.io/gorm"
)

type Client struct {
	gorm.Model
	Name                 string          `json:"name"`
	Phone                string          `json:"phone"`
	Gender               string          `json:"gender"`
	Age                  int             `json:"age"`
	Address              string          `json:"address"`
	Notes                string          `json:"notes"`
	HasDiabetes          bool            `json:"has_diabetes"`
	HasHeartCondition    bool            `json:"has_heart_condition"`
	HasHighBloodPressure bool            `json:"has_high_blood_pressure"`
	IsPregnant           bool            `json:"is_pregnant"`
	Allergies            string          `json:"allergies"`
	Sessions             []SessionRecord `json:"sessions" gorm:"foreignKey:ClientID"`
	Reviews              []Review        `json:"reviews" gorm:"foreignKey:ClientID"`
}
