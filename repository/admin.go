package repository

import (
	"meowth-deli-api/models"

	"gorm.io/gorm"
)

// VerificationFilter narrows list queries to one persisted status. The
// availability flag rides along because it is written together with the
// status and the pair must stay consistent.
type VerificationFilter struct {
	Status      models.VerificationStatus
	IsAvailable bool
}

// AdminRepository issues the read and write queries behind the admin
// verification endpoints. It owns no business rules: filters arrive already
// validated and mapped to the persisted vocabulary.
type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// ownerProjection limits the joined user to id, email and role rows —
// the admin dashboard never needs consent flags or password hashes.
func ownerProjection(db *gorm.DB) *gorm.DB {
	return db.Select("id", "email")
}

func (r *AdminRepository) listQuery(filter *VerificationFilter) *gorm.DB {
	q := r.db.
		Preload("User", ownerProjection).
		Preload("User.Roles").
		Order("id desc")
	if filter != nil {
		q = q.Where("verification_status = ? AND is_available = ?", filter.Status, filter.IsAvailable)
	}
	return q
}

func (r *AdminRepository) ListRestaurants(filter *VerificationFilter) ([]models.Restaurant, error) {
	restaurants := make([]models.Restaurant, 0) // non-nil so an empty list renders as []
	if err := r.listQuery(filter).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *AdminRepository) ListDrivers(filter *VerificationFilter) ([]models.Driver, error) {
	drivers := make([]models.Driver, 0)
	if err := r.listQuery(filter).Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

// UpdateRestaurantStatus writes the status/availability pair on a single row
// and returns the updated row with its owner joined. A missing id surfaces
// as gorm.ErrRecordNotFound.
func (r *AdminRepository) UpdateRestaurantStatus(id uint, status models.VerificationStatus, available bool) (*models.Restaurant, error) {
	res := r.db.Model(&models.Restaurant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"verification_status": status,
			"is_available":        available,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var restaurant models.Restaurant
	err := r.db.
		Preload("User", ownerProjection).
		Preload("User.Roles").
		First(&restaurant, id).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// UpdateDriverStatus is the driver counterpart of UpdateRestaurantStatus.
func (r *AdminRepository) UpdateDriverStatus(id uint, status models.VerificationStatus, available bool) (*models.Driver, error) {
	res := r.db.Model(&models.Driver{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"verification_status": status,
			"is_available":        available,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var driver models.Driver
	err := r.db.
		Preload("User", ownerProjection).
		Preload("User.Roles").
		First(&driver, id).Error
	if err != nil {
		return nil, err
	}
	return &driver, nil
}
