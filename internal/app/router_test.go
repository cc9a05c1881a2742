package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"watchparty_backend/internal/config"
	"watchparty_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "router-test-secret"
	cfg.JWT.TTL = 60
	cfg.Notify.Timeout = time.Second
	config.AppConfig = cfg

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Member{},
		&models.Channel{},
		&models.ChannelMember{},
		&models.Party{},
		&models.PartyGuest{},
		&models.Reaction{},
		&models.MessageReaction{},
		&models.Notification{},
	))

	return SetupRouter(cfg, db), db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerMember(t *testing.T, router *gin.Engine, email string) (token, memberID string) {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/register", "", map[string]interface{}{
		"email":      email,
		"password":   "correct-horse",
		"first_name": "Casey",
		"last_name":  "Tester",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		Member      struct {
			ID string `json:"id"`
		} `json:"member"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.AccessToken, resp.Member.ID
}

func TestRegisterLoginFlow(t *testing.T) {
	router, _ := setupTestApp(t)

	token, memberID := registerMember(t, router, "casey@example.com")
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, memberID)

	w := doJSON(t, router, http.MethodPost, "/login", "", map[string]string{
		"email":    "casey@example.com",
		"password": "correct-horse",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/login", "", map[string]string{
		"email":    "casey@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPartyEndpoints(t *testing.T) {
	router, _ := setupTestApp(t)
	token, _ := registerMember(t, router, "casey@example.com")

	party := map[string]interface{}{
		"title":        "MLS Cup Final",
		"datetime":     time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"datetime_end": time.Now().Add(26 * time.Hour).Format(time.RFC3339),
		"is_public":    true,
	}

	// Mutations without a token are rejected before any work happens.
	w := doJSON(t, router, http.MethodPost, "/parties", "", party)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/parties", token, party)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodGet, "/parties/"+created.ID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/parties/no-such-party", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/parties/myupcoming", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/parties/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestToggleStatusCodes(t *testing.T) {
	router, db := setupTestApp(t)
	token, _ := registerMember(t, router, "casey@example.com")

	reaction := &models.Reaction{Name: "like"}
	require.NoError(t, db.Create(reaction).Error)

	w := doJSON(t, router, http.MethodPost, "/parties", token, map[string]interface{}{
		"title":        "Watchalong",
		"datetime":     time.Now().Add(time.Hour).Format(time.RFC3339),
		"datetime_end": time.Now().Add(3 * time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var party struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &party))

	toggle := map[string]string{
		"party_id":    party.ID,
		"reaction_id": reaction.ID,
		"message_id":  "msg-1",
	}

	w = doJSON(t, router, http.MethodPost, "/messagereactions", token, toggle)
	assert.Equal(t, http.StatusCreated, w.Code, "first toggle adds")

	w = doJSON(t, router, http.MethodPost, "/messagereactions", token, toggle)
	assert.Equal(t, http.StatusResetContent, w.Code, "second toggle removes")

	w = doJSON(t, router, http.MethodGet, "/messagereactions?party="+party.ID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/messagereactions", "", toggle)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidationErrors(t *testing.T) {
	router, _ := setupTestApp(t)
	token, _ := registerMember(t, router, "casey@example.com")

	// end before start fails field validation
	w := doJSON(t, router, http.MethodPost, "/parties", token, map[string]interface{}{
		"title":        "Backwards",
		"datetime":     time.Now().Add(3 * time.Hour).Format(time.RFC3339),
		"datetime_end": time.Now().Add(time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/register", "", map[string]string{
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupTestApp(t)

	w := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
