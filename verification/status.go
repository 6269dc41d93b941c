package verification

import (
	"meowth-deli-api/apperrors"
	"meowth-deli-api/models"
)

// AdminStatus is the vocabulary the admin API speaks. It is deliberately
// distinct from the persisted models.VerificationStatus: an admin "approves"
// an application, the database records "success".
type AdminStatus string

const (
	StatusPending  AdminStatus = "pending"
	StatusApproved AdminStatus = "approved"
	StatusRejected AdminStatus = "rejected"
)

// allowedStatuses in the order they appear in error messages.
var allowedStatuses = []AdminStatus{StatusPending, StatusApproved, StatusRejected}

// ValidateStatus rejects anything outside the three admin values. It runs
// before every filter build and before every write, so MapStatus never sees
// unrecognized input in practice.
func ValidateStatus(status AdminStatus) error {
	for _, s := range allowedStatuses {
		if status == s {
			return nil
		}
	}
	return apperrors.BadRequest("Invalid status. Allowed: pending, approved, rejected")
}

// MapStatus converts an admin-facing status to the persisted representation.
// Pure and total; unrecognized input falls back to pending.
func MapStatus(status AdminStatus) models.VerificationStatus {
	switch status {
	case StatusApproved:
		return models.VerificationSuccess
	case StatusRejected:
		return models.VerificationRejected
	case StatusPending:
		return models.VerificationPending
	default:
		return models.VerificationPending
	}
}

// Availability derives the availability flag that accompanies every status
// write: an entity may receive orders only while approved.
func Availability(status AdminStatus) bool {
	return status == StatusApproved
}
