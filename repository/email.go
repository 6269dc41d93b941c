package repository

import (
	"errors"
	"time"

	"meowth-deli-api/models"

	"gorm.io/gorm"
)

// EmailRepository stores single-use email verification tokens.
type EmailRepository struct {
	db *gorm.DB
}

func NewEmailRepository(db *gorm.DB) *EmailRepository {
	return &EmailRepository{db: db}
}

func (r *EmailRepository) CreateToken(userID uint, token string, expiresAt time.Time) error {
	return r.db.Create(&models.VerifyToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	}).Error
}

// FindToken returns nil, nil when the token is unknown.
func (r *EmailRepository) FindToken(token string) (*models.VerifyToken, error) {
	var vt models.VerifyToken
	err := r.db.Where("token = ?", token).First(&vt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vt, nil
}

func (r *EmailRepository) DeleteToken(token string) error {
	return r.db.Where("token = ?", token).Delete(&models.VerifyToken{}).Error
}
