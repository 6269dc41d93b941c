package handlers

import (
	"net/http"
	"strconv"

	"meowth-deli-api/apperrors"
	"meowth-deli-api/services"
	"meowth-deli-api/verification"

	"github.com/gin-gonic/gin"
)

// AdminHandler adapts the verification service to HTTP. It parses input,
// delegates, and translates errors; all business rules live below it.
type AdminHandler struct {
	admin *services.AdminService
}

func NewAdminHandler(admin *services.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

type verifyRequest struct {
	Status verification.AdminStatus `json:"status"`
}

// parseEntityID rejects non-numeric path ids with an entity-specific message.
func parseEntityID(c *gin.Context, message string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, apperrors.BadRequest(message))
		return 0, false
	}
	return uint(id), true
}

// ListRestaurants handles GET /api/admin/restaurants?status=
func (h *AdminHandler) ListRestaurants(c *gin.Context) {
	status := verification.AdminStatus(c.Query("status"))
	restaurants, err := h.admin.ListRestaurants(status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// VerifyRestaurant handles PATCH /api/admin/restaurants/:id/verify
func (h *AdminHandler) VerifyRestaurant(c *gin.Context) {
	id, ok := parseEntityID(c, "Invalid restaurant ID")
	if !ok {
		return
	}
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.BadRequest("Invalid request body"))
		return
	}
	restaurant, err := h.admin.VerifyRestaurant(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Restaurant verification updated",
		"data":    restaurant,
	})
}

// ListDrivers handles GET /api/admin/drivers?status=
func (h *AdminHandler) ListDrivers(c *gin.Context) {
	status := verification.AdminStatus(c.Query("status"))
	drivers, err := h.admin.ListDrivers(status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// VerifyDriver handles PATCH /api/admin/drivers/:id/verify
func (h *AdminHandler) VerifyDriver(c *gin.Context) {
	id, ok := parseEntityID(c, "Invalid driver ID")
	if !ok {
		return
	}
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.BadRequest("Invalid request body"))
		return
	}
	driver, err := h.admin.VerifyDriver(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Driver verification updated",
		"data":    driver,
	})
}
