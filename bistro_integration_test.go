package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adiwidjaja/bistro-orders/models"
	"github.com/adiwidjaja/bistro-orders/router"
	"github.com/adiwidjaja/bistro-orders/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestEndToEndOrderFlow walks the whole platform:
// 1. Seed admin + menu, register and log in a customer
// 2. Browse the menu, check out a cart
// 3. Customer sees own order; admin sees all orders
// 4. Admin walks the order pending -> preparing -> ready -> completed
// 5. Terminal state rejects further transitions
func TestEndToEndOrderFlow(t *testing.T) {
	db := setupTestDB()
	r := router.SetupRouter(db)

	customerToken := registerAndLogin(t, r, "budi@example.com", "secret123")
	adminToken := login(t, r, "admin@example.com", "admin-password")

	itemPrice := browseMenu(t, r)
	orderID := checkout(t, r, customerToken, itemPrice)

	assertCustomerSeesOrder(t, r, customerToken, orderID, itemPrice*2)
	assertAdminSeesOrder(t, r, adminToken, orderID)

	walkStatusLifecycle(t, r, adminToken, orderID)
}

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	db.Create(&models.User{Email: "admin@example.com", Password: string(hashed), IsAdmin: true})

	db.Create(&models.Category{Name: "Mains"})
	catID := uint(1)
	db.Create(&models.MenuItem{Name: "Nasi Campur", Price: 6.25, CategoryID: &catID, IsAvailable: true})
	return db
}

func request(t *testing.T, r *gin.Engine, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&buf).Encode(payload); err != nil {
			t.Fatalf("failed to encode payload: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, _ := resp["data"].(map[string]interface{})
	return data
}

func registerAndLogin(t *testing.T, r *gin.Engine, email, password string) string {
	w := request(t, r, "POST", "/register", "", gin.H{"email": email, "password": password})
	assert.Equal(t, http.StatusCreated, w.Code)
	return login(t, r, email, password)
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	w := request(t, r, "POST", "/login", "", gin.H{"email": email, "password": password})
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	token, _ := data["token"].(string)
	assert.NotEmpty(t, token)
	return token
}

func browseMenu(t *testing.T, r *gin.Engine) float64 {
	w := request(t, r, "GET", "/menu-items", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	assert.Len(t, items, 1)

	item := items[0].(map[string]interface{})
	assert.Equal(t, "Nasi Campur", item["name"])
	return item["price"].(float64)
}

func checkout(t *testing.T, r *gin.Engine, token string, price float64) int {
	w := request(t, r, "POST", "/orders", token, gin.H{
		"order_type": "dine_in",
		"notes":      "table by the window",
		"items": []gin.H{
			{"menu_item_id": 1, "unit_price": price, "quantity": 2},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	data := decodeData(t, w)
	return int(data["order_id"].(float64))
}

func assertCustomerSeesOrder(t *testing.T, r *gin.Engine, token string, orderID int, expectedTotal float64) {
	w := request(t, r, "GET", "/orders", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	orders := resp["data"].([]interface{})
	assert.Len(t, orders, 1)

	order := orders[0].(map[string]interface{})
	assert.Equal(t, float64(orderID), order["id"])
	assert.Equal(t, "pending", order["status"])
	assert.Equal(t, expectedTotal, order["total_price"])
}

func assertAdminSeesOrder(t *testing.T, r *gin.Engine, token string, orderID int) {
	w := request(t, r, "GET", "/admin/orders", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	orders := resp["data"].([]interface{})
	assert.Len(t, orders, 1)
	assert.Equal(t, float64(orderID), orders[0].(map[string]interface{})["id"])
}

func walkStatusLifecycle(t *testing.T, r *gin.Engine, token string, orderID int) {
	url := fmt.Sprintf("/admin/orders/%d/status", orderID)

	version := 1
	for _, status := range []string{"preparing", "ready", "completed"} {
		w := request(t, r, "PATCH", url, token, gin.H{"status": status, "version": version})
		assert.Equalf(t, http.StatusOK, w.Code, "transition to %s: %s", status, w.Body.String())
		version++
	}

	// completed is terminal: nothing moves it back
	w := request(t, r, "PATCH", url, token, gin.H{"status": "preparing", "version": version})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
