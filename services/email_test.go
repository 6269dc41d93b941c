package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meowth-deli-api/apperrors"
	"meowth-deli-api/models"
	"meowth-deli-api/repository"
)

type capturedMail struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// captureSender records outgoing mail instead of delivering it.
type captureSender struct {
	sent []capturedMail
}

func (s *captureSender) Send(to, subject, text, html string) error {
	s.sent = append(s.sent, capturedMail{To: to, Subject: subject, Text: text, HTML: html})
	return nil
}

func TestVerificationEmailFlow(t *testing.T) {
	db := newTestDB(t)
	authRepo := repository.NewAuthRepository(db)
	sender := &captureSender{}
	svc := NewEmailService(repository.NewEmailRepository(db), authRepo, sender, "http://localhost:8080")

	user := models.User{Email: "inbox@deli.test", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	require.NoError(t, svc.SendVerificationEmail(user.ID, user.Email))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "inbox@deli.test", sender.sent[0].To)
	assert.Contains(t, sender.sent[0].Text, "/api/auth/verify-email?token=")

	var vt models.VerifyToken
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&vt).Error)
	assert.Contains(t, sender.sent[0].HTML, vt.Token)

	require.NoError(t, svc.ConfirmToken(vt.Token))

	var verified models.User
	require.NoError(t, db.First(&verified, user.ID).Error)
	assert.True(t, verified.Verified)
}

func TestConfirmTokenIsSingleUse(t *testing.T) {
	db := newTestDB(t)
	authRepo := repository.NewAuthRepository(db)
	svc := NewEmailService(repository.NewEmailRepository(db), authRepo, &captureSender{}, "http://localhost:8080")

	user := models.User{Email: "once@deli.test", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	token, err := svc.BuildToken(user.ID)
	require.NoError(t, err)

	require.NoError(t, svc.ConfirmToken(token))

	err = svc.ConfirmToken(token)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.StatusCode)
	assert.Equal(t, "Invalid token", appErr.Message)
}

func TestConfirmTokenExpired(t *testing.T) {
	db := newTestDB(t)
	authRepo := repository.NewAuthRepository(db)
	emailRepo := repository.NewEmailRepository(db)
	svc := NewEmailService(emailRepo, authRepo, &captureSender{}, "http://localhost:8080")

	user := models.User{Email: "late@deli.test", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, emailRepo.CreateToken(user.ID, "stale-token", time.Now().Add(-time.Minute)))

	err := svc.ConfirmToken("stale-token")
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.StatusCode)
	assert.Equal(t, "Token expired", appErr.Message)

	// The expired token is consumed too.
	found, err := emailRepo.FindToken("stale-token")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestConfirmUnknownToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmailService(repository.NewEmailRepository(db), repository.NewAuthRepository(db), &captureSender{}, "http://localhost:8080")

	err := svc.ConfirmToken("never-issued")
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.StatusCode)
	assert.Equal(t, "Invalid token", appErr.Message)
}
