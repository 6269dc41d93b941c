package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/smtp"
	"time"

	"meowth-deli-api/apperrors"
	"meowth-deli-api/repository"
)

const tokenTTL = time.Hour

// Sender delivers a single email. The SMTP implementation lives behind this
// interface so tests can capture outgoing mail instead of sending it.
type Sender interface {
	Send(to, subject, text, html string) error
}

// SMTPSender delivers mail over SMTP with PLAIN auth.
type SMTPSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func (s *SMTPSender) Send(to, subject, text, html string) error {
	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	auth := smtp.PlainAuth("", s.User, s.Password, s.Host)
	msg := []byte("From: " + s.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		html)
	return smtp.SendMail(addr, auth, s.From, []string{to}, msg)
}

// EmailService issues single-use verification tokens and mails the
// confirmation link.
type EmailService struct {
	repo    *repository.EmailRepository
	auth    *repository.AuthRepository
	sender  Sender
	baseURL string
}

func NewEmailService(repo *repository.EmailRepository, auth *repository.AuthRepository, sender Sender, baseURL string) *EmailService {
	return &EmailService{repo: repo, auth: auth, sender: sender, baseURL: baseURL}
}

// BuildToken mints a random token bound to the user, valid for one hour.
func (s *EmailService) BuildToken(userID uint) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := hex.EncodeToString(raw)
	if err := s.repo.CreateToken(userID, token, time.Now().Add(tokenTTL)); err != nil {
		return "", err
	}
	return token, nil
}

// SendVerificationEmail mints a token and mails the confirmation link.
func (s *EmailService) SendVerificationEmail(userID uint, email string) error {
	token, err := s.BuildToken(userID)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/api/auth/verify-email?token=%s", s.baseURL, token)
	html := verificationEmailBody(url)
	return s.sender.Send(email, "Verify your Meowth Deli account", "Verify your email: "+url, html)
}

// ConfirmToken validates a token, consumes it and marks the user verified.
// Tokens are single-use: expired ones are deleted on sight.
func (s *EmailService) ConfirmToken(token string) error {
	vt, err := s.repo.FindToken(token)
	if err != nil {
		return apperrors.Internal("Failed to look up token")
	}
	if vt == nil {
		return apperrors.BadRequest("Invalid token")
	}
	if vt.ExpiresAt.Before(time.Now()) {
		_ = s.repo.DeleteToken(token)
		return apperrors.BadRequest("Token expired")
	}
	if err := s.repo.DeleteToken(token); err != nil {
		return apperrors.Internal("Failed to consume token")
	}
	if err := s.auth.MarkUserVerified(vt.UserID); err != nil {
		return apperrors.Internal("Failed to verify user")
	}
	return nil
}

func verificationEmailBody(url string) string {
	return `<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>Welcome to Meowth Deli 🐱</h2>
  <p>Click the button below to verify your email address. The link expires in one hour.</p>
  <p><a href="` + url + `" style="background: #f59e0b; color: #fff; padding: 12px 24px; border-radius: 6px; text-decoration: none;">Verify email</a></p>
  <p>If the button does not work, open this link: ` + url + `</p>
</div>`
}
