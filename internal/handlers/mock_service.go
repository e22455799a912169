package handlers

import (
	"context"
	"net/http"

	"fintrack/internal/models"
	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID    int
	signUpErr   error
	signInUser  *models.User
	signInToken string
	signInErr   error
	authUserID  int
	authErr     error
	signOutErr  error

	lastSignUpName     string
	lastSignUpEmail    string
	lastSignUpPassword string
	lastSignInEmail    string
	lastSignInPassword string
	lastAuthToken      string
	lastSignOutToken   string
}

func (m *mockAuth) SignUp(ctx context.Context, name, email, password string) (int, error) {
	m.lastSignUpName = name
	m.lastSignUpEmail = email
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	m.lastSignInEmail = email
	m.lastSignInPassword = password
	return m.signInUser, m.signInToken, m.signInErr
}

func (m *mockAuth) Authenticate(ctx context.Context, token string) (int, error) {
	m.lastAuthToken = token
	return m.authUserID, m.authErr
}

func (m *mockAuth) SignOut(ctx context.Context, token string) error {
	m.lastSignOutToken = token
	return m.signOutErr
}

type mockLedger struct {
	recordID     int64
	recordErr    error
	summary      service.Summary
	summarizeErr error

	recordCalls         int
	lastRecordUserID    int
	lastRecordDesc      string
	lastRecordValue     int64
	lastRecordType      string
	lastSummarizeUserID int
}

func (m *mockLedger) Record(ctx context.Context, userID int, description string, value int64, entryType string) (int64, error) {
	m.recordCalls++
	m.lastRecordUserID = userID
	m.lastRecordDesc = description
	m.lastRecordValue = value
	m.lastRecordType = entryType
	return m.recordID, m.recordErr
}

func (m *mockLedger) Summarize(ctx context.Context, userID int) (service.Summary, error) {
	m.lastSummarizeUserID = userID
	return m.summary, m.summarizeErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
