package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"meowth-deli-api/config"
	"meowth-deli-api/middleware"
	"meowth-deli-api/models"
	"meowth-deli-api/repository"
	"meowth-deli-api/services"
)

var testSecret = []byte("handler-test-secret")

// buildTestRouter wires the admin verification routes against an in-memory
// database, including the real auth middleware stack.
func buildTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	adminHandler := NewAdminHandler(services.NewAdminService(repository.NewAdminRepository(db)))

	r := gin.New()
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(testSecret), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/restaurants", adminHandler.ListRestaurants)
		admin.PATCH("/restaurants/:id/verify", adminHandler.VerifyRestaurant)
		admin.GET("/drivers", adminHandler.ListDrivers)
		admin.PATCH("/drivers/:id/verify", adminHandler.VerifyDriver)
	}
	return r, db
}

func signTestToken(t *testing.T, role models.Role) string {
	t.Helper()
	user := &models.User{ID: 1, Email: "admin@deli.test"}
	token, err := middleware.GenerateToken(user, role, testSecret)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func seedRestaurantRow(t *testing.T, db *gorm.DB, email string, status models.VerificationStatus, available bool) models.Restaurant {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.UserRole{UserID: user.ID, Role: models.RoleRestaurant}).Error)
	restaurant := models.Restaurant{
		UserID:             user.ID,
		Name:               "Resto " + email,
		Tel:                "0800000000",
		Location:           "Bangkok",
		VerificationStatus: status,
		IsAvailable:        available,
	}
	require.NoError(t, db.Create(&restaurant).Error)
	return restaurant
}

func seedDriverRow(t *testing.T, db *gorm.DB, email string, status models.VerificationStatus) models.Driver {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.UserRole{UserID: user.ID, Role: models.RoleDriver}).Error)
	driver := models.Driver{
		UserID:             user.ID,
		Firstname:          "Driver",
		Tel:                "0811111111",
		Vehicle:            "motorbike",
		Licence:            "L-" + email,
		VerificationStatus: status,
	}
	require.NoError(t, db.Create(&driver).Error)
	return driver
}

func TestAdminRoutesRBAC(t *testing.T) {
	r, _ := buildTestRouter(t)

	// No token
	resp := doRequest(t, r, http.MethodGet, "/api/admin/restaurants", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// Customer token
	resp = doRequest(t, r, http.MethodGet, "/api/admin/restaurants", signTestToken(t, models.RoleCustomer), nil)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	// Admin token
	resp = doRequest(t, r, http.MethodGet, "/api/admin/restaurants", signTestToken(t, models.RoleAdmin), nil)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestVerifyRestaurantApprovesPendingRow(t *testing.T) {
	r, db := buildTestRouter(t)
	token := signTestToken(t, models.RoleAdmin)
	seeded := seedRestaurantRow(t, db, "r1@deli.test", models.VerificationPending, false)

	path := fmt.Sprintf("/api/admin/restaurants/%d/verify", seeded.ID)
	resp := doRequest(t, r, http.MethodPatch, path, token, gin.H{"status": "approved"})
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Message string            `json:"message"`
		Data    models.Restaurant `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Restaurant verification updated", body.Message)
	assert.Equal(t, models.VerificationSuccess, body.Data.VerificationStatus)
	assert.True(t, body.Data.IsAvailable)
}

func TestVerifyRestaurantNotFoundLeavesRowsUntouched(t *testing.T) {
	r, db := buildTestRouter(t)
	token := signTestToken(t, models.RoleAdmin)
	seeded := seedRestaurantRow(t, db, "r2@deli.test", models.VerificationPending, false)

	resp := doRequest(t, r, http.MethodPatch, "/api/admin/restaurants/999/verify", token, gin.H{"status": "approved"})
	require.Equal(t, http.StatusNotFound, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Restaurant not found", body["message"])

	var untouched models.Restaurant
	require.NoError(t, db.First(&untouched, seeded.ID).Error)
	assert.Equal(t, models.VerificationPending, untouched.VerificationStatus)
}

func TestVerifyDriverRejectsBogusStatus(t *testing.T) {
	r, db := buildTestRouter(t)
	token := signTestToken(t, models.RoleAdmin)
	seeded := seedDriverRow(t, db, "d1@deli.test", models.VerificationPending)

	path := fmt.Sprintf("/api/admin/drivers/%d/verify", seeded.ID)
	resp := doRequest(t, r, http.MethodPatch, path, token, gin.H{"status": "bogus"})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Invalid status. Allowed: pending, approved, rejected", body["message"])
}

func TestListRestaurantsFilterReturnsMatchingRowsDescending(t *testing.T) {
	r, db := buildTestRouter(t)
	token := signTestToken(t, models.RoleAdmin)

	seedRestaurantRow(t, db, "pending@deli.test", models.VerificationPending, false)
	rej1 := seedRestaurantRow(t, db, "rej1@deli.test", models.VerificationRejected, false)
	rej2 := seedRestaurantRow(t, db, "rej2@deli.test", models.VerificationRejected, false)

	resp := doRequest(t, r, http.MethodGet, "/api/admin/restaurants?status=rejected", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var got []models.Restaurant
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, rej2.ID, got[0].ID)
	assert.Equal(t, rej1.ID, got[1].ID)
	for _, row := range got {
		assert.Equal(t, models.VerificationRejected, row.VerificationStatus)
	}
}

func TestVerifyRestaurantNonNumericID(t *testing.T) {
	r, _ := buildTestRouter(t)
	token := signTestToken(t, models.RoleAdmin)

	resp := doRequest(t, r, http.MethodPatch, "/api/admin/restaurants/abc/verify", token, gin.H{"status": "approved"})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Invalid restaurant ID", body["message"])
}

func TestVerifyDriverNonNumericID(t *testing.T) {
	r, _ := buildTestRouter(t)
	token := signTestToken(t, models.RoleAdmin)

	resp := doRequest(t, r, http.MethodPatch, "/api/admin/drivers/abc/verify", token, gin.H{"status": "approved"})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Invalid driver ID", body["message"])
}

func TestListDriversNoFilterReturnsAll(t *testing.T) {
	r, db := buildTestRouter(t)
	token := signTestToken(t, models.RoleAdmin)

	seedDriverRow(t, db, "da@deli.test", models.VerificationPending)
	seedDriverRow(t, db, "db@deli.test", models.VerificationRejected)

	resp := doRequest(t, r, http.MethodGet, "/api/admin/drivers", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var got []models.Driver
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}
