package models

import "time"

type Driver struct {
	ID                 uint               `json:"id" gorm:"primaryKey"`
	UserID             uint               `json:"user_id" gorm:"not null;uniqueIndex"`
	User               User               `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Firstname          string             `json:"firstname" gorm:"not null"`
	Lastname           string             `json:"lastname"`
	Tel                string             `json:"tel" gorm:"not null"`
	Vehicle            string             `json:"vehicle" gorm:"not null"`
	Licence            string             `json:"licence" gorm:"not null"`
	FeeRate            float64            `json:"fee_rate" gorm:"default:0.1"`
	VerificationStatus VerificationStatus `json:"verification_status" gorm:"not null;default:'pending'"`
	IsAvailable        bool               `json:"is_available" gorm:"default:false"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}
