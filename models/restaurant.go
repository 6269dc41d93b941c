package models

import "time"

type Restaurant struct {
	ID                 uint               `json:"id" gorm:"primaryKey"`
	UserID             uint               `json:"user_id" gorm:"not null;uniqueIndex"`
	User               User               `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Name               string             `json:"name" gorm:"not null"`
	Tel                string             `json:"tel" gorm:"not null"`
	Location           string             `json:"location" gorm:"not null"`
	Detail             string             `json:"detail"`
	FeeRate            float64            `json:"fee_rate" gorm:"default:0.1"`
	VerificationStatus VerificationStatus `json:"verification_status" gorm:"not null;default:'pending'"`
	IsAvailable        bool               `json:"is_available" gorm:"default:false"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}
