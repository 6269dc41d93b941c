package services

import (
	"meowth-deli-api/apperrors"
	"meowth-deli-api/middleware"
	"meowth-deli-api/models"
	"meowth-deli-api/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService owns credential checks, password hashing and the role-specific
// signup flows. Token signing is delegated to the middleware package so the
// issuance and verification sites share one Claims type.
type AuthService struct {
	repo       *repository.AuthRepository
	jwtSecret  []byte
	bcryptCost int
}

func NewAuthService(repo *repository.AuthRepository, jwtSecret []byte, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, bcryptCost: bcryptCost}
}

// SigninResult is what a successful credential check returns.
type SigninResult struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// Signin checks the credentials and issues a JWT. The role claim is taken
// from the user's stored roles, never from the request: the requested role
// is honored only when the user actually holds it, otherwise the first
// stored role wins and a bare account falls back to customer.
func (s *AuthService) Signin(email, password string, requested models.Role) (*SigninResult, error) {
	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return nil, apperrors.Internal("Failed to look up user")
	}
	if user == nil {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	role := models.RoleCustomer
	if len(user.Roles) > 0 {
		role = user.Roles[0].Role
	}
	if requested != "" && user.HasRole(requested) {
		role = requested
	}

	token, err := middleware.GenerateToken(user, role, s.jwtSecret)
	if err != nil {
		return nil, apperrors.Internal("Failed to generate token")
	}

	return &SigninResult{ID: user.ID, Email: user.Email, Token: token}, nil
}

// GetUser loads a user with role rows, for the profile endpoint.
func (s *AuthService) GetUser(id uint) (*models.User, error) {
	user, err := s.repo.FindUserByID(id)
	if err != nil {
		return nil, apperrors.NotFound("User not found")
	}
	return user, nil
}

func (s *AuthService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ensureNewEmail rejects signups for an email that already has an account.
func (s *AuthService) ensureNewEmail(email string) error {
	existing, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return apperrors.Internal("Failed to look up user")
	}
	if existing != nil {
		return apperrors.BadRequest("User already exists")
	}
	return nil
}

// Signup creates a bare account with no role.
func (s *AuthService) Signup(email, password string) (*models.User, error) {
	if err := s.ensureNewEmail(email); err != nil {
		return nil, err
	}
	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, apperrors.Internal("Failed to hash password")
	}
	user := &models.User{Email: email, PasswordHash: hash}
	if err := s.repo.CreateUser(user); err != nil {
		return nil, apperrors.Internal("Failed to create user")
	}
	return user, nil
}

// CustomerSignup carries everything a customer registration needs.
type CustomerSignup struct {
	Email                 string
	Password              string
	Firstname             string
	Lastname              string
	Tel                   string
	AcceptedTermOfService bool
	AcceptedPDPA          bool
	AcceptedCookies       bool
}

func (s *AuthService) SignupCustomer(in CustomerSignup) (*models.User, *models.Customer, error) {
	if err := s.ensureNewEmail(in.Email); err != nil {
		return nil, nil, err
	}
	hash, err := s.hashPassword(in.Password)
	if err != nil {
		return nil, nil, apperrors.Internal("Failed to hash password")
	}

	user := &models.User{
		Email:                 in.Email,
		PasswordHash:          hash,
		AcceptedTermOfService: in.AcceptedTermOfService,
		AcceptedPDPA:          in.AcceptedPDPA,
		AcceptedCookies:       in.AcceptedCookies,
	}
	customer := &models.Customer{
		Firstname: in.Firstname,
		Lastname:  in.Lastname,
		Tel:       in.Tel,
	}
	if err := s.repo.CreateCustomer(user, customer); err != nil {
		return nil, nil, apperrors.Internal("Failed to create customer")
	}
	return user, customer, nil
}

// DriverSignup carries everything a driver registration needs. The driver
// application starts pending and must be approved by an admin.
type DriverSignup struct {
	Email                 string
	Password              string
	Firstname             string
	Lastname              string
	Tel                   string
	Vehicle               string
	Licence               string
	FeeRate               float64
	AcceptedTermOfService bool
	AcceptedPDPA          bool
	AcceptedCookies       bool
}

func (s *AuthService) SignupDriver(in DriverSignup) (*models.User, *models.Driver, error) {
	if err := s.ensureNewEmail(in.Email); err != nil {
		return nil, nil, err
	}
	hash, err := s.hashPassword(in.Password)
	if err != nil {
		return nil, nil, apperrors.Internal("Failed to hash password")
	}

	feeRate := in.FeeRate
	if feeRate == 0 {
		feeRate = 0.1
	}
	user := &models.User{
		Email:                 in.Email,
		PasswordHash:          hash,
		AcceptedTermOfService: in.AcceptedTermOfService,
		AcceptedPDPA:          in.AcceptedPDPA,
		AcceptedCookies:       in.AcceptedCookies,
	}
	driver := &models.Driver{
		Firstname:          in.Firstname,
		Lastname:           in.Lastname,
		Tel:                in.Tel,
		Vehicle:            in.Vehicle,
		Licence:            in.Licence,
		FeeRate:            feeRate,
		VerificationStatus: models.VerificationPending,
	}
	if err := s.repo.CreateDriver(user, driver); err != nil {
		return nil, nil, apperrors.Internal("Failed to create driver")
	}
	return user, driver, nil
}

// RestaurantSignup carries everything a restaurant registration needs. Like
// drivers, restaurants start pending and unavailable.
type RestaurantSignup struct {
	Email                 string
	Password              string
	Name                  string
	Tel                   string
	Location              string
	Detail                string
	FeeRate               float64
	AcceptedTermOfService bool
	AcceptedPDPA          bool
	AcceptedCookies       bool
}

func (s *AuthService) SignupRestaurant(in RestaurantSignup) (*models.User, *models.Restaurant, error) {
	if err := s.ensureNewEmail(in.Email); err != nil {
		return nil, nil, err
	}
	hash, err := s.hashPassword(in.Password)
	if err != nil {
		return nil, nil, apperrors.Internal("Failed to hash password")
	}

	feeRate := in.FeeRate
	if feeRate == 0 {
		feeRate = 0.1
	}
	user := &models.User{
		Email:                 in.Email,
		PasswordHash:          hash,
		AcceptedTermOfService: in.AcceptedTermOfService,
		AcceptedPDPA:          in.AcceptedPDPA,
		AcceptedCookies:       in.AcceptedCookies,
	}
	restaurant := &models.Restaurant{
		Name:               in.Name,
		Tel:                in.Tel,
		Location:           in.Location,
		Detail:             in.Detail,
		FeeRate:            feeRate,
		VerificationStatus: models.VerificationPending,
		IsAvailable:        false,
	}
	if err := s.repo.CreateRestaurant(user, restaurant); err != nil {
		return nil, nil, apperrors.Internal("Failed to create restaurant")
	}
	return user, restaurant, nil
}
