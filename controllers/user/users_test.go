package userControllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	userControllers "github.com/glowify/ecommerce-api/controllers/user"
	"github.com/glowify/ecommerce-api/middleware"
	"github.com/glowify/ecommerce-api/storage"
)

func newUserRouter(t *testing.T) (*gin.Engine, *storage.Store, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	user, err := store.CreateUser("Ada", "ada@example.com", "hashed-secret")
	require.NoError(t, err)

	r := gin.New()
	users := r.Group("/api/users", func(c *gin.Context) {
		c.Set(middleware.CtxUserIDKey, user.ID)
		c.Next()
	})
	users.GET("/profile", userControllers.GetProfile(store))
	users.PUT("/profile", userControllers.UpdateProfile(store))
	users.GET("", userControllers.GetAllUsers(store))
	users.GET("/:id", userControllers.GetUserByID(store))
	return r, store, user.ID
}

func request(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func assertNoPasswordKey(t *testing.T, body []byte) {
	t.Helper()
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	require.NotContains(t, decoded, "password")
}

func TestGetProfileStripsPassword(t *testing.T) {
	r, _, _ := newUserRouter(t)

	w := request(t, r, http.MethodGet, "/api/users/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	assertNoPasswordKey(t, w.Body.Bytes())
}

func TestUpdateProfileDropsProtectedFields(t *testing.T) {
	r, store, userID := newUserRouter(t)

	// id and password in the payload are ignored, not errors.
	body := `{"name": "Ada Lovelace", "id": "evil", "password": "newpass"}`
	w := request(t, r, http.MethodPut, "/api/users/profile", body)
	require.Equal(t, http.StatusOK, w.Code)
	assertNoPasswordKey(t, w.Body.Bytes())

	stored, err := store.UserByID(userID)
	require.NoError(t, err)
	require.Equal(t, "Ada Lovelace", stored.Name)
	require.Equal(t, "hashed-secret", stored.Password)
}

func TestGetAllUsersStripped(t *testing.T) {
	r, store, _ := newUserRouter(t)

	_, err := store.CreateUser("Bob", "bob@example.com", "h2")
	require.NoError(t, err)

	w := request(t, r, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)

	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 2)
	for _, u := range users {
		require.NotContains(t, u, "password")
	}
}

func TestGetUserByID(t *testing.T) {
	r, _, userID := newUserRouter(t)

	w := request(t, r, http.MethodGet, "/api/users/"+userID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assertNoPasswordKey(t, w.Body.Bytes())

	w = request(t, r, http.MethodGet, "/api/users/missing", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
