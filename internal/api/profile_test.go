package api_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/foodfolio/backend/internal/api"
	"github.com/foodfolio/backend/internal/router"
	"github.com/foodfolio/backend/internal/service"
	"github.com/foodfolio/backend/internal/testhelpers"
)

func TestGetProfileEndpoint(t *testing.T) {
	a := setupTestAPI(t)
	token := a.signup(t, "me@x.com")

	w := a.request(t, http.MethodGet, "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "me@x.com", body["email"])
	assert.Equal(t, "Test", body["first_name"])
	assert.NotContains(t, w.Body.String(), "password")
}

func TestGetProfileRequiresAuth(t *testing.T) {
	a := setupTestAPI(t)

	w := a.request(t, http.MethodGet, "/api/v1/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfileEndpoint(t *testing.T) {
	a := setupTestAPI(t)
	token := a.signup(t, "edit@x.com")

	w := a.request(t, http.MethodPut, "/api/v1/profile", token, gin.H{
		"first_name": "Edited",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "Edited", body["first_name"])
	// Untouched fields keep their values.
	assert.Equal(t, "User", body["last_name"])
	assert.Equal(t, "edit@x.com", body["email"])
}

func TestUpdateProfileDuplicateEmailEndpoint(t *testing.T) {
	a := setupTestAPI(t)
	a.signup(t, "claimed@x.com")
	token := a.signup(t, "wants-it@x.com")

	w := a.request(t, http.MethodPut, "/api/v1/profile", token, gin.H{
		"email": "claimed@x.com",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUploadPictureWithoutStorage(t *testing.T) {
	a := setupTestAPI(t)
	token := a.signup(t, "nopic@x.com")

	body, contentType := pictureForm(t, "avatar.png", []byte("fake png bytes"))
	w := uploadPicture(t, a.router, token, body, contentType)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestUploadPictureEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, nil, "test-secret")
	profileSvc := service.NewProfileService(db)
	images := new(testhelpers.MockImageService)
	images.On("UploadProfilePicture", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("https://bucket.s3.amazonaws.com/profile-pictures/1/abc.png", nil)

	recipes := new(testhelpers.MockRecipeAPI)
	r := router.SetupRouter(
		api.NewAuthHandler(authSvc),
		api.NewProfileHandler(profileSvc, images, authSvc),
		api.NewRecipeHandler(recipes),
		api.NewFavoriteHandler(service.NewFavoriteService(db), authSvc),
	)
	a := &testAPI{router: r, auth: authSvc, recipes: recipes}
	token := a.signup(t, "pic@x.com")

	body, contentType := pictureForm(t, "avatar.png", []byte("fake png bytes"))
	w := uploadPicture(t, r, token, body, contentType)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeBody(t, w)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/profile-pictures/1/abc.png", resp["picture_url"])

	// The stored url shows up on the profile afterwards.
	w = a.request(t, http.MethodGet, "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decodeBody(t, w)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/profile-pictures/1/abc.png", profile["picture_url"])
	images.AssertExpectations(t)
}

func pictureForm(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("picture", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func uploadPicture(t *testing.T, r *gin.Engine, token string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/api/v1/profile/picture", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
