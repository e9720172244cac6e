package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSignupEndpoint(t *testing.T) {
	a := setupTestAPI(t)

	w := a.request(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"first_name": "Jane",
		"email":      "jane@x.com",
		"password":   "password123",
		"confirm":    "password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "jane@x.com", user["email"])
	// The password hash never leaves the server.
	assert.NotContains(t, w.Body.String(), "password")
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	a := setupTestAPI(t)
	a.signup(t, "dup@x.com")

	w := a.request(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"first_name": "Other",
		"email":      "dup@x.com",
		"password":   "password123",
		"confirm":    "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignupRejectsBadInput(t *testing.T) {
	a := setupTestAPI(t)

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing first name", gin.H{"email": "a@x.com", "password": "password123", "confirm": "password123"}},
		{"invalid email", gin.H{"first_name": "A", "email": "nope", "password": "password123", "confirm": "password123"}},
		{"short password", gin.H{"first_name": "A", "email": "a@x.com", "password": "tiny", "confirm": "tiny"}},
		{"confirmation mismatch", gin.H{"first_name": "A", "email": "a@x.com", "password": "password123", "confirm": "different456"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := a.request(t, http.MethodPost, "/api/v1/auth/signup", "", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestLoginEndpoint(t *testing.T) {
	a := setupTestAPI(t)
	a.signup(t, "login@x.com")

	w := a.request(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "login@x.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	a := setupTestAPI(t)
	a.signup(t, "login2@x.com")

	w := a.request(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "login2@x.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	a := setupTestAPI(t)

	w := a.request(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "nobody@x.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutRequiresToken(t *testing.T) {
	a := setupTestAPI(t)

	w := a.request(t, http.MethodPost, "/api/v1/auth/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutWithToken(t *testing.T) {
	a := setupTestAPI(t)
	token := a.signup(t, "logout@x.com")

	w := a.request(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
