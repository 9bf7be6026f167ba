package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ternurin/paletas-api/internal/auth"
	"github.com/ternurin/paletas-api/internal/models"
	"github.com/ternurin/paletas-api/internal/services"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Paleta{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	return NewRouter(gdb), gdb
}

func perform(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedPaleta(t *testing.T, gdb *gorm.DB, nombre string, precio float64) *models.Paleta {
	t.Helper()
	paleta := models.Paleta{Nombre: nombre, Precio: decimal.NewFromFloat(precio)}
	require.NoError(t, gdb.Create(&paleta).Error)
	return &paleta
}

type cartItemResponse struct {
	ID       uint            `json:"id"`
	UserID   uint            `json:"user_id"`
	PaletaID *uint           `json:"paleta_id"`
	Nombre   string          `json:"nombre"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func TestAddCartItemAndMerge(t *testing.T) {
	r, gdb := newTestRouter(t)
	paleta := seedPaleta(t, gdb, "Paleta Uva", 12.0)

	w := perform(t, r, http.MethodPost, "/cart/add", gin.H{
		"user_id": 1, "paleta_id": paleta.ID, "quantity": 2,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var item cartItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, uint(1), item.UserID)
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.Subtotal.Equal(decimal.NewFromFloat(24.0)), "subtotal %s", item.Subtotal)

	w = perform(t, r, http.MethodPost, "/cart/add", gin.H{
		"user_id": 1, "paleta_id": paleta.ID, "quantity": 3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, 4, item.Quantity)
	assert.True(t, item.Subtotal.Equal(decimal.NewFromFloat(48.0)), "subtotal %s", item.Subtotal)
}

func TestAddCartItemPaletaNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := perform(t, r, http.MethodPost, "/cart/add", gin.H{
		"user_id": 1, "paleta_id": 999, "quantity": 1,
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Paleta no encontrada.", body["detail"])
}

func TestRemoveCartItemFlow(t *testing.T) {
	r, gdb := newTestRouter(t)
	paleta := seedPaleta(t, gdb, "Paleta a Eliminar", 5.0)

	w := perform(t, r, http.MethodPost, "/cart/add", gin.H{
		"user_id": 1, "paleta_id": paleta.ID, "quantity": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var item cartItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))

	w = perform(t, r, http.MethodDelete, fmt.Sprintf("/cart/remove/%d", item.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = perform(t, r, http.MethodGet, "/cart/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = perform(t, r, http.MethodDelete, "/cart/remove/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Ítem del carrito no encontrado.", body["detail"])
}

func TestDecreaseCartItemEndpoint(t *testing.T) {
	r, gdb := newTestRouter(t)
	paleta := seedPaleta(t, gdb, "Paleta Fresa", 10.0)

	w := perform(t, r, http.MethodPost, "/cart/add", gin.H{
		"user_id": 1, "paleta_id": paleta.ID, "quantity": 3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	path := fmt.Sprintf("/cart/decrease?user_id=1&paleta_id=%d", paleta.ID)

	w = perform(t, r, http.MethodPatch, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var updated struct {
		Message string           `json:"message"`
		Item    cartItemResponse `json:"item"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Cantidad actualizada", updated.Message)
	assert.Equal(t, 2, updated.Item.Quantity)

	perform(t, r, http.MethodPatch, path, nil)
	w = perform(t, r, http.MethodPatch, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var removed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &removed))
	assert.Equal(t, "Ítem eliminado porque la cantidad llegó a cero.", removed["message"])

	w = perform(t, r, http.MethodPatch, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearCartIsIdempotent(t *testing.T) {
	r, _ := newTestRouter(t)

	w := perform(t, r, http.MethodDelete, "/cart/clear/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCheckoutEndpoint(t *testing.T) {
	r, gdb := newTestRouter(t)

	w := perform(t, r, http.MethodPost, "/orders", gin.H{"user_id": 1})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "El carrito está vacío.", body["detail"])

	paleta := seedPaleta(t, gdb, "Paleta Uva", 12.0)
	w = perform(t, r, http.MethodPost, "/cart/add", gin.H{
		"user_id": 1, "paleta_id": paleta.ID, "quantity": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(t, r, http.MethodPost, "/orders", gin.H{"user_id": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	var order struct {
		ID       uint `json:"id"`
		UserID   uint `json:"user_id"`
		Attended bool `json:"attended"`
		Items    []struct {
			Nombre   string `json:"nombre"`
			Quantity int    `json:"quantity"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.False(t, order.Attended)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Paleta Uva", order.Items[0].Nombre)
	assert.Equal(t, 2, order.Items[0].Quantity)

	w = perform(t, r, http.MethodGet, "/cart/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = perform(t, r, http.MethodPatch, fmt.Sprintf("/orders/%d/attend", order.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(t, r, http.MethodGet, fmt.Sprintf("/orders/%d", order.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched struct {
		Attended bool `json:"attended"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.True(t, fetched.Attended)
}

func TestPaletaMutationRequiresAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	r, gdb := newTestRouter(t)

	payload := gin.H{"nombre": "Paleta de Mango", "precio": 20.0}

	w := perform(t, r, http.MethodPost, "/paletas", payload)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	cliente, err := services.CreateUser(gdb, services.UserInput{Email: "cliente@ternurin.mx", Password: "secreto123"})
	require.NoError(t, err)
	clienteToken, err := auth.GenerateJWT(cliente.ID, cliente.Email)
	require.NoError(t, err)

	w = perform(t, r, http.MethodPost, "/paletas", payload, "Authorization", "Bearer "+clienteToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin, err := services.CreateUser(gdb, services.UserInput{Email: "admin@ternurin.mx", Password: "secreto123", IsAdmin: true})
	require.NoError(t, err)
	adminToken, err := auth.GenerateJWT(admin.ID, admin.Email)
	require.NoError(t, err)

	w = perform(t, r, http.MethodPost, "/paletas", payload, "Authorization", "Bearer "+adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Duplicate name is rejected.
	w = perform(t, r, http.MethodPost, "/paletas", payload, "Authorization", "Bearer "+adminToken)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Ya existe una paleta con este nombre.", body["detail"])
}

func TestCreatePaletaRejectsNonPositivePrice(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	r, gdb := newTestRouter(t)
	admin, err := services.CreateUser(gdb, services.UserInput{Email: "admin@ternurin.mx", Password: "secreto123", IsAdmin: true})
	require.NoError(t, err)
	token, err := auth.GenerateJWT(admin.ID, admin.Email)
	require.NoError(t, err)

	w := perform(t, r, http.MethodPost, "/paletas", gin.H{"nombre": "Paleta Gratis", "precio": -1.0},
		"Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginAndMe(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	r, _ := newTestRouter(t)

	w := perform(t, r, http.MethodPost, "/users", gin.H{
		"email": "ana@ternurin.mx", "password": "secreto123", "username": "ana",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = perform(t, r, http.MethodPost, "/auth/login", gin.H{
		"email": "ana@ternurin.mx", "password": "secreto123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)
	assert.Equal(t, "ana@ternurin.mx", login.User.Email)

	w = perform(t, r, http.MethodGet, "/auth/me", nil, "Authorization", "Bearer "+login.Token)
	require.Equal(t, http.StatusOK, w.Code)

	var me struct {
		User struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "ana", me.User.Username)

	w = perform(t, r, http.MethodPost, "/auth/login", gin.H{
		"email": "ana@ternurin.mx", "password": "incorrecta",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPaletaEndpoints(t *testing.T) {
	r, gdb := newTestRouter(t)

	w := perform(t, r, http.MethodGet, "/paletas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	paleta := seedPaleta(t, gdb, "Paleta Limón", 17.0)

	w = perform(t, r, http.MethodGet, fmt.Sprintf("/paletas/%d", paleta.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Paleta
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Paleta Limón", got.Nombre)

	w = perform(t, r, http.MethodGet, "/paletas/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
