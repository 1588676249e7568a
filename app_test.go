package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type payload = map[string]interface{}

type testApp struct {
	app             *Application
	router          *gin.Engine
	databaseService *DatabaseService
	authService     *AuthService
}

// setupTestApp wires the full production routing against throwaway
// sqlite files. externalBaseURL points the external feed client at a
// test server; empty is fine for tests that never touch it.
func setupTestApp(t *testing.T, externalBaseURL string) *testApp {
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	config := &Config{
		Port:              "0",
		DatabaseName:      filepath.Join(dir, "twitter.db"),
		LoggingDBPath:     filepath.Join(dir, "logs.db"),
		JWTKey:            "test-jwt-key",
		TwitterAPIBaseURL: externalBaseURL,
	}

	databaseService, err := NewDatabaseService(config.DatabaseName)
	require.NoError(t, err)

	loggingService, err := NewLoggingService(config.LoggingDBPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		databaseService.Close()
		loggingService.Close()
	})

	authService := ProvideAuthService(config)
	ownershipService := ProvideOwnershipService(databaseService)
	twitterAPI := ProvideTwitterAPI(config)
	notificationService, err := ProvideNotificationService(config)
	require.NoError(t, err)

	middleware := ProvideMiddleware(authService, ownershipService, loggingService)
	app, err := NewApplication(
		config,
		databaseService,
		loggingService,
		middleware,
		ProvideTweetsHandler(databaseService, twitterAPI),
		ProvideUsersHandler(databaseService, authService, notificationService),
		ProvideStatusHandler(databaseService, loggingService),
		ProvideCleanupScheduler(loggingService),
	)
	require.NoError(t, err)

	return &testApp{
		app:             app,
		router:          app.Router(),
		databaseService: databaseService,
		authService:     authService,
	}
}

// registerUser creates a user directly in the store with a working
// password and returns it.
func (ta *testApp) registerUser(t *testing.T, username, password string) UserModel {
	hash, err := ta.authService.HashPassword(password)
	require.NoError(t, err)

	user := UserModel{
		ID:       username + "-id",
		Username: username,
		Email:    username + "@example.com",
		Name:     "User " + username,
		Password: hash,
		Active:   true,
	}
	require.NoError(t, ta.databaseService.CreateUser(&user))
	return user
}

// request performs one request against the router. A non-empty asUserID
// attaches a valid session cookie for that principal.
func (ta *testApp) request(t *testing.T, method, path string, body interface{}, asUserID string) *httptest.ResponseRecorder {
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

	if asUserID != "" {
		token, err := ta.authService.GenerateToken(asUserID)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: TOKEN_COOKIE, Value: token})
	}

	w := httptest.NewRecorder()
	ta.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
