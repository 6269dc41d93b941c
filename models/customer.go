package models

import "time"

type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex"`
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Firstname string    `json:"firstname" gorm:"not null"`
	Lastname  string    `json:"lastname"`
	Tel       string    `json:"tel" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
