package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupReturnsAccount(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{
		"name":     "Ana",
		"email":    "Ana@Example.com",
		"password": "secret1",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Account created successfully", body["message"])
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ana@example.com", user["email"])
	assert.Equal(t, "Ana", user["name"])
	assert.Contains(t, user["avatar"], "ui-avatars.com")
	// the password hash must never appear in a response
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestSignupValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{
		"name": "Ana",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "All fields are required")

	rec = doJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "short",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password must be at least 6 characters")
}

func TestSignupDuplicateEmail(t *testing.T) {
	router, _ := newTestRouter(t)
	signupUser(t, router, "ana@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{
		"name":     "Other",
		"email":    "ANA@example.com",
		"password": "secret2",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already registered")
}

func TestLoginRoundtrip(t *testing.T) {
	router, _ := newTestRouter(t)
	signupUser(t, router, "ana@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "ana@EXAMPLE.com",
		"password": "secret1",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "Login successful", body["message"])
	assert.NotEmpty(t, body["token"])
}

func TestLoginBadCredentials(t *testing.T) {
	router, _ := newTestRouter(t)
	signupUser(t, router, "ana@example.com")

	for _, creds := range []gin.H{
		{"email": "nobody@example.com", "password": "secret1"},
		{"email": "ana@example.com", "password": "wrong"},
	} {
		rec := doJSON(t, router, http.MethodPost, "/api/auth/login", creds, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid email or password")
	}
}

func TestMeRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/auth/me", nil, "not-a-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMeReturnsProfile(t *testing.T) {
	router, _ := newTestRouter(t)
	token := signupUser(t, router, "ana@example.com")

	rec := doJSON(t, router, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ana@example.com", user["email"])

	prefs, ok := user["preferences"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "none", prefs["diet"])
}

func TestUpdatePreferences(t *testing.T) {
	router, _ := newTestRouter(t)
	token := signupUser(t, router, "ana@example.com")

	rec := doJSON(t, router, http.MethodPatch, "/api/auth/preferences", gin.H{
		"diet":      "vegetarian",
		"allergies": []string{"peanuts"},
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	user := body["user"].(map[string]interface{})
	prefs := user["preferences"].(map[string]interface{})
	assert.Equal(t, "vegetarian", prefs["diet"])
	assert.Equal(t, []interface{}{"peanuts"}, prefs["allergies"])
}
