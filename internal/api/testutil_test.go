package api_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smartchef/smartchef-v4/backend/config"
	"github.com/smartchef/smartchef-v4/backend/internal/api"
	"github.com/smartchef/smartchef-v4/backend/internal/testhelpers"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	cfg := &config.Config{JWTSecret: "test-secret"}

	router := gin.New()
	api.RegisterRoutes(router, db, cfg, nil, nil, zap.NewNop())
	return router, db
}

// doJSON performs a JSON request against the router. token is attached as a
// bearer credential when non-empty.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// signupUser creates an account through the public endpoint and returns its
// token.
func signupUser(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": "secret1",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// uploadScan posts a multipart photo to /api/scan.
func uploadScan(t *testing.T, router *gin.Engine, fileName string, size int, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", fileName)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte{0x42}, size))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/scan", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// seedRecipeSlugs runs one anonymous scan so listing tests have data, and
// returns the slugs it produced.
func seedRecipeSlugs(t *testing.T, router *gin.Engine) []string {
	t.Helper()

	rec := uploadScan(t, router, "seed.jpg", 128, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	raw, ok := body["recipes"].([]interface{})
	require.True(t, ok, "recipes missing: %s", rec.Body.String())

	slugs := make([]string, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]interface{})
		require.True(t, ok)
		slug, _ := m["slug"].(string)
		require.NotEmpty(t, slug)
		slugs = append(slugs, slug)
	}
	return slugs
}
