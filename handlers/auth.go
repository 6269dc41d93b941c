package handlers

import (
	"log"
	"net/http"

	"meowth-deli-api/apperrors"
	"meowth-deli-api/middleware"
	"meowth-deli-api/models"
	"meowth-deli-api/services"

	"github.com/gin-gonic/gin"
)

// AuthHandler adapts the signup/signin flows to HTTP.
type AuthHandler struct {
	auth  *services.AuthService
	email *services.EmailService
}

func NewAuthHandler(auth *services.AuthService, email *services.EmailService) *AuthHandler {
	return &AuthHandler{auth: auth, email: email}
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type CustomerSignupRequest struct {
	Email                 string `json:"email" binding:"required,email"`
	Password              string `json:"password" binding:"required,min=6"`
	Firstname             string `json:"firstname" binding:"required"`
	Lastname              string `json:"lastname"`
	Tel                   string `json:"tel" binding:"required"`
	AcceptedTermOfService bool   `json:"accepted_term_of_service"`
	AcceptedPDPA          bool   `json:"accepted_pdpa"`
	AcceptedCookies       bool   `json:"accepted_cookie_tracking"`
}

type DriverSignupRequest struct {
	Email                 string  `json:"email" binding:"required,email"`
	Password              string  `json:"password" binding:"required,min=6"`
	Firstname             string  `json:"firstname" binding:"required"`
	Lastname              string  `json:"lastname"`
	Tel                   string  `json:"tel" binding:"required"`
	Vehicle               string  `json:"vehicle" binding:"required"`
	Licence               string  `json:"licence" binding:"required"`
	FeeRate               float64 `json:"fee_rate"`
	AcceptedTermOfService bool    `json:"accepted_term_of_service"`
	AcceptedPDPA          bool    `json:"accepted_pdpa"`
	AcceptedCookies       bool    `json:"accepted_cookie_tracking"`
}

type RestaurantSignupRequest struct {
	Email                 string  `json:"email" binding:"required,email"`
	Password              string  `json:"password" binding:"required,min=6"`
	Name                  string  `json:"name" binding:"required"`
	Tel                   string  `json:"tel" binding:"required"`
	Location              string  `json:"location" binding:"required"`
	Detail                string  `json:"detail"`
	FeeRate               float64 `json:"fee_rate"`
	AcceptedTermOfService bool    `json:"accepted_term_of_service"`
	AcceptedPDPA          bool    `json:"accepted_pdpa"`
	AcceptedCookies       bool    `json:"accepted_cookie_tracking"`
}

// sendVerificationEmail fires the confirmation mail without failing the
// signup when delivery does not work.
func (h *AuthHandler) sendVerificationEmail(user *models.User) {
	if err := h.email.SendVerificationEmail(user.ID, user.Email); err != nil {
		log.Printf("Failed to send verification email to %s: %v", user.Email, err)
	}
}

// Signup creates a bare account with no role attached.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.BadRequest(err.Error()))
		return
	}
	user, err := h.auth.Signup(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	h.sendVerificationEmail(user)
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": user})
}

// Signin authenticates and returns a JWT.
func (h *AuthHandler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.BadRequest(err.Error()))
		return
	}
	role := models.Role("")
	if req.Role != "" {
		parsed, err := models.ParseRole(req.Role)
		if err != nil {
			respondError(c, apperrors.BadRequest("Invalid role. Must be: customer, restaurant, driver, or admin"))
			return
		}
		role = parsed
	}
	result, err := h.auth.Signin(req.Email, req.Password, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SignupCustomer registers a customer account with its profile.
func (h *AuthHandler) SignupCustomer(c *gin.Context) {
	var req CustomerSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.BadRequest(err.Error()))
		return
	}
	user, customer, err := h.auth.SignupCustomer(services.CustomerSignup{
		Email:                 req.Email,
		Password:              req.Password,
		Firstname:             req.Firstname,
		Lastname:              req.Lastname,
		Tel:                   req.Tel,
		AcceptedTermOfService: req.AcceptedTermOfService,
		AcceptedPDPA:          req.AcceptedPDPA,
		AcceptedCookies:       req.AcceptedCookies,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.sendVerificationEmail(user)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Customer created successfully",
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"roles":    user.Roles,
			"customer": customer,
		},
	})
}

// SignupDriver registers a driver account; the application starts pending.
func (h *AuthHandler) SignupDriver(c *gin.Context) {
	var req DriverSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.BadRequest(err.Error()))
		return
	}
	user, driver, err := h.auth.SignupDriver(services.DriverSignup{
		Email:                 req.Email,
		Password:              req.Password,
		Firstname:             req.Firstname,
		Lastname:              req.Lastname,
		Tel:                   req.Tel,
		Vehicle:               req.Vehicle,
		Licence:               req.Licence,
		FeeRate:               req.FeeRate,
		AcceptedTermOfService: req.AcceptedTermOfService,
		AcceptedPDPA:          req.AcceptedPDPA,
		AcceptedCookies:       req.AcceptedCookies,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.sendVerificationEmail(user)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Driver created successfully",
		"user": gin.H{
			"id":     user.ID,
			"email":  user.Email,
			"roles":  user.Roles,
			"driver": driver,
		},
	})
}

// SignupRestaurant registers a restaurant account; the application starts
// pending and the restaurant stays unavailable until approved.
func (h *AuthHandler) SignupRestaurant(c *gin.Context) {
	var req RestaurantSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.BadRequest(err.Error()))
		return
	}
	user, restaurant, err := h.auth.SignupRestaurant(services.RestaurantSignup{
		Email:                 req.Email,
		Password:              req.Password,
		Name:                  req.Name,
		Tel:                   req.Tel,
		Location:              req.Location,
		Detail:                req.Detail,
		FeeRate:               req.FeeRate,
		AcceptedTermOfService: req.AcceptedTermOfService,
		AcceptedPDPA:          req.AcceptedPDPA,
		AcceptedCookies:       req.AcceptedCookies,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.sendVerificationEmail(user)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Restaurant created successfully",
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"roles":      user.Roles,
			"restaurant": restaurant,
		},
	})
}

// VerifyEmail consumes a verification token from the emailed link.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		respondError(c, apperrors.BadRequest("Token is required"))
		return
	}
	if err := h.email.ConfirmToken(token); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}

// GetProfile returns the authenticated user's account.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	user, err := h.auth.GetUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
