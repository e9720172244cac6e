package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/foodfolio/backend/internal/api"
	"github.com/foodfolio/backend/internal/router"
	"github.com/foodfolio/backend/internal/service"
	"github.com/foodfolio/backend/internal/testhelpers"
)

type testAPI struct {
	router   *gin.Engine
	auth     *service.AuthService
	recipes  *testhelpers.MockRecipeAPI
	favorite *service.FavoriteService
}

func setupTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, nil, "test-secret")
	profileSvc := service.NewProfileService(db)
	favoriteSvc := service.NewFavoriteService(db)
	recipes := new(testhelpers.MockRecipeAPI)

	r := router.SetupRouter(
		api.NewAuthHandler(authSvc),
		api.NewProfileHandler(profileSvc, nil, authSvc),
		api.NewRecipeHandler(recipes),
		api.NewFavoriteHandler(favoriteSvc, authSvc),
	)

	return &testAPI{
		router:   r,
		auth:     authSvc,
		recipes:  recipes,
		favorite: favoriteSvc,
	}
}

func (a *testAPI) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// signup creates an account over the wire and returns its session token.
func (a *testAPI) signup(t *testing.T, email string) string {
	t.Helper()

	w := a.request(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"first_name": "Test",
		"last_name":  "User",
		"email":      email,
		"password":   "password123",
		"confirm":    "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
