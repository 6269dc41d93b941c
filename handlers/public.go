package handlers

import (
	"net/http"

	"meowth-deli-api/verification"

	"github.com/gin-gonic/gin"
)

// GetVerificationMachineInfo documents the admin verification workflow —
// handy for Postman and the admin frontend.
func GetVerificationMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"states":      []verification.AdminStatus{verification.StatusPending, verification.StatusApproved, verification.StatusRejected},
		"initial":     verification.StatusPending,
		"transitions": verification.GetAllTransitions(),
		"notes": []string{
			"Restaurants and drivers share the same machine.",
			"approved is stored as 'success'; availability is derived from it.",
			"No state is terminal: an admin can always change a decision.",
		},
	})
}
