package services

import (
	"errors"

	"meowth-deli-api/apperrors"
	"meowth-deli-api/models"
	"meowth-deli-api/repository"
	"meowth-deli-api/verification"

	"gorm.io/gorm"
)

// AdminService orchestrates the verification workflow: validate the admin
// status, map it to the persisted vocabulary, delegate to the repository.
type AdminService struct {
	repo *repository.AdminRepository
}

func NewAdminService(repo *repository.AdminRepository) *AdminService {
	return &AdminService{repo: repo}
}

// buildFilter turns an optional admin status into a repository filter.
// An empty status means no filter at all.
func buildFilter(status verification.AdminStatus) *repository.VerificationFilter {
	if status == "" {
		return nil
	}
	return &repository.VerificationFilter{
		Status:      verification.MapStatus(status),
		IsAvailable: verification.Availability(status),
	}
}

// ListRestaurants returns restaurant applications, newest first, optionally
// narrowed to one status. Pass the zero value to list everything.
func (s *AdminService) ListRestaurants(status verification.AdminStatus) ([]models.Restaurant, error) {
	if status != "" {
		if err := verification.ValidateStatus(status); err != nil {
			return nil, err
		}
	}
	restaurants, err := s.repo.ListRestaurants(buildFilter(status))
	if err != nil {
		return nil, apperrors.Internal("Failed to list restaurants")
	}
	return restaurants, nil
}

// VerifyRestaurant records the admin's decision on one restaurant. The
// availability flag is re-derived on every transition; it is never written
// independently of the status.
func (s *AdminService) VerifyRestaurant(id uint, status verification.AdminStatus) (*models.Restaurant, error) {
	if err := verification.ValidateStatus(status); err != nil {
		return nil, err
	}
	restaurant, err := s.repo.UpdateRestaurantStatus(id, verification.MapStatus(status), verification.Availability(status))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Restaurant not found")
	}
	if err != nil {
		return nil, apperrors.Internal("Failed to verify restaurant")
	}
	return restaurant, nil
}

// ListDrivers is the driver counterpart of ListRestaurants.
func (s *AdminService) ListDrivers(status verification.AdminStatus) ([]models.Driver, error) {
	if status != "" {
		if err := verification.ValidateStatus(status); err != nil {
			return nil, err
		}
	}
	drivers, err := s.repo.ListDrivers(buildFilter(status))
	if err != nil {
		return nil, apperrors.Internal("Failed to list drivers")
	}
	return drivers, nil
}

// VerifyDriver is the driver counterpart of VerifyRestaurant.
func (s *AdminService) VerifyDriver(id uint, status verification.AdminStatus) (*models.Driver, error) {
	if err := verification.ValidateStatus(status); err != nil {
		return nil, err
	}
	driver, err := s.repo.UpdateDriverStatus(id, verification.MapStatus(status), verification.Availability(status))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Driver not found")
	}
	if err != nil {
		return nil, apperrors.Internal("Failed to verify driver")
	}
	return driver, nil
}
