package models

// VerificationStatus is the persisted verification state of a driver or
// restaurant application. The admin API speaks a different vocabulary
// (see the verification package); this one is what the database stores.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationSuccess  VerificationStatus = "success"
	VerificationRejected VerificationStatus = "rejected"
)
