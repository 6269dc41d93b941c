package repository

import (
	"errors"

	"meowth-deli-api/models"

	"gorm.io/gorm"
)

// AuthRepository handles user lookup and role-specific signup writes.
type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// FindUserByEmail returns nil, nil when no user exists with that email.
func (r *AuthRepository) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Roles").Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepository) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Roles").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a bare account with no role or profile attached.
func (r *AuthRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// CreateCustomer creates the user, its customer role row and the customer
// profile in one transaction so a half-signed-up account can never exist.
func (r *AuthRepository) CreateCustomer(user *models.User, customer *models.Customer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		role := models.UserRole{UserID: user.ID, Role: models.RoleCustomer}
		if err := tx.Create(&role).Error; err != nil {
			return err
		}
		user.Roles = append(user.Roles, role)
		customer.UserID = user.ID
		return tx.Create(customer).Error
	})
}

// CreateDriver creates the user, driver role and driver application row.
// The application starts pending and unavailable by column default.
func (r *AuthRepository) CreateDriver(user *models.User, driver *models.Driver) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		role := models.UserRole{UserID: user.ID, Role: models.RoleDriver}
		if err := tx.Create(&role).Error; err != nil {
			return err
		}
		user.Roles = append(user.Roles, role)
		driver.UserID = user.ID
		return tx.Create(driver).Error
	})
}

// CreateRestaurant is the restaurant counterpart of CreateDriver.
func (r *AuthRepository) CreateRestaurant(user *models.User, restaurant *models.Restaurant) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		role := models.UserRole{UserID: user.ID, Role: models.RoleRestaurant}
		if err := tx.Create(&role).Error; err != nil {
			return err
		}
		user.Roles = append(user.Roles, role)
		restaurant.UserID = user.ID
		return tx.Create(restaurant).Error
	})
}

// MarkUserVerified flips the email verification flag.
func (r *AuthRepository) MarkUserVerified(userID uint) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("verified", true).Error
}
