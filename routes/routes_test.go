package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"backend/configs"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, configs.Migrate(db))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, db)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// The full placement flow: customer and restaurant onboarding, a priced menu
// item, an order of three, then a status change that touches nothing else.
func TestOrderLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/customers", gin.H{
		"name": "A", "email": "a@x.com", "phoneNumber": "555", "address": "1 Main St",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var customer struct {
		ID    uint
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	decode(t, w, &customer)
	assert.NotZero(t, customer.ID)
	assert.Equal(t, "A", customer.Name)
	assert.Equal(t, "a@x.com", customer.Email)

	w = doJSON(t, r, http.MethodPost, "/restaurants", gin.H{"name": "R", "location": "L"})
	require.Equal(t, http.StatusCreated, w.Code)
	var restaurant struct{ ID uint }
	decode(t, w, &restaurant)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/restaurants/%d/menu", restaurant.ID), gin.H{
		"name": "Pizza", "price": 10, "isAvailable": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var menuItem struct{ ID uint }
	decode(t, w, &menuItem)

	w = doJSON(t, r, http.MethodPost, "/orders", gin.H{
		"customerId":   customer.ID,
		"restaurantId": restaurant.ID,
		"items":        []gin.H{{"menuItemId": menuItem.ID, "quantity": 3}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var order struct {
		ID         uint
		TotalPrice float64 `json:"totalPrice"`
		Status     string  `json:"status"`
	}
	decode(t, w, &order)
	assert.Equal(t, 30.0, order.TotalPrice)
	assert.Equal(t, "Placed", order.Status)

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/orders/%d/status", order.ID), gin.H{"status": "Delivered"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated struct {
		TotalPrice float64 `json:"totalPrice"`
		Status     string  `json:"status"`
	}
	decode(t, w, &updated)
	assert.Equal(t, "Delivered", updated.Status)
	assert.Equal(t, 30.0, updated.TotalPrice)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/orders/%d", order.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Items []struct {
			MenuItemID uint `json:"menuItemId"`
			Quantity   int  `json:"quantity"`
		} `json:"orderItems"`
	}
	decode(t, w, &detail)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, menuItem.ID, detail.Items[0].MenuItemID)
	assert.Equal(t, 3, detail.Items[0].Quantity)
}

func TestCreateOrderRejectsUnknownMenuItem(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/customers", gin.H{"name": "A", "email": "a@x.com"})
	require.Equal(t, http.StatusCreated, w.Code)
	var customer struct{ ID uint }
	decode(t, w, &customer)

	w = doJSON(t, r, http.MethodPost, "/orders", gin.H{
		"customerId":   customer.ID,
		"restaurantId": 1,
		"items":        []gin.H{{"menuItemId": 9999, "quantity": 1}},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid menu item"}`, w.Body.String())

	// nothing was persisted
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/customers/%d/orders", customer.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetMissingCustomerIs404(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/customers/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
}

func TestMenuListingHidesUnavailableItems(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/restaurants", gin.H{"name": "R", "location": "L"})
	require.Equal(t, http.StatusCreated, w.Code)
	var restaurant struct{ ID uint }
	decode(t, w, &restaurant)

	menuPath := fmt.Sprintf("/restaurants/%d/menu", restaurant.ID)
	w = doJSON(t, r, http.MethodPost, menuPath, gin.H{"name": "Pizza", "price": 10, "isAvailable": true})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, menuPath, gin.H{"name": "Secret", "price": 7, "isAvailable": false})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, menuPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []struct {
		Name string `json:"name"`
	}
	decode(t, w, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "Pizza", items[0].Name)
}

func TestRevenueDefaultsToZero(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/restaurants", gin.H{"name": "R", "location": "L"})
	require.Equal(t, http.StatusCreated, w.Code)
	var restaurant struct{ ID uint }
	decode(t, w, &restaurant)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/restaurants/%d/revenue", restaurant.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalRevenue":0}`, w.Body.String())
}

func TestTopReportsAreReachable(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/menu/top-items", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/customers/top", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestPartialMenuItemUpdate(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/restaurants", gin.H{"name": "R", "location": "L"})
	require.Equal(t, http.StatusCreated, w.Code)
	var restaurant struct{ ID uint }
	decode(t, w, &restaurant)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/restaurants/%d/menu", restaurant.ID), gin.H{
		"name": "Pizza", "price": 10, "isAvailable": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var menuItem struct{ ID uint }
	decode(t, w, &menuItem)

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/menu/%d", menuItem.ID), gin.H{"price": 12.5})
	require.Equal(t, http.StatusOK, w.Code)
	var updated struct {
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		IsAvailable bool    `json:"isAvailable"`
	}
	decode(t, w, &updated)
	assert.Equal(t, "Pizza", updated.Name)
	assert.Equal(t, 12.5, updated.Price)
	assert.True(t, updated.IsAvailable)

	w = doJSON(t, r, http.MethodPatch, "/menu/9999", gin.H{"price": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatusRejectsUnknownValue(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/orders", gin.H{"customerId": 1, "restaurantId": 1})
	require.Equal(t, http.StatusCreated, w.Code)
	var order struct{ ID uint }
	decode(t, w, &order)

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/orders/%d/status", order.ID), gin.H{"status": "Teleported"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
