package menuControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knsalim/paanshop-api/models"
	"github.com/knsalim/paanshop-api/store"
)

func menuRouter(st store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/menu/:category", GetMenuItems(st))
	r.GET("/menu/:category/:itemID", GetMenuItemByID(st))
	r.POST("/menu/:category", CreateMenuItem(st))
	r.PUT("/menu/:category/:itemID", UpdateMenuItem(st))
	r.DELETE("/menu/:category/:itemID", DeleteMenuItem(st))
	return r
}

func TestMenuCRUDOverRouter(t *testing.T) {
	st := store.NewMemory()
	r := menuRouter(st)

	body := `{"name":"Sweet Paan","description":"classic","price":50,"isVeg":true}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/menu/paan", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.MenuItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "paan", created.Category)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu/paan", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.MenuItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Sweet Paan", items[0].Name)

	update := `{"name":"Sweet Paan","description":"classic","price":60,"isVeg":true}`
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/menu/paan/"+created.ID, strings.NewReader(update)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu/paan/"+created.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.MenuItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 60.0, got.Price)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/menu/paan/"+created.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu/paan/"+created.ID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMenuRejectsUnknownCategory(t *testing.T) {
	r := menuRouter(store.NewMemory())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu/desserts", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/menu/desserts", strings.NewReader(`{"name":"x","price":1}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMenuCategoriesAreIsolated(t *testing.T) {
	st := store.NewMemory()
	r := menuRouter(st)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/menu/chaat", strings.NewReader(`{"name":"Dahi Chaat","price":80}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu/beverages", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.MenuItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Empty(t, items)
}
