package feedback

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskpro/controller/auth"
	"taskpro/middleware"
	"taskpro/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubMailer struct {
	to      string
	subject string
	body    string
	err     error
}

func (m *stubMailer) Send(to, subject, htmlBody string) error {
	m.to = to
	m.subject = subject
	m.body = htmlBody
	return m.err
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`CREATE TABLE users (
		user_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL,
		avatar_url TEXT DEFAULT '',
		theme TEXT DEFAULT 'light',
		token_hash TEXT DEFAULT '',
		created_at DATETIME
	)`).Error)
	return db
}

func newRouter(db *gorm.DB, mailer *stubMailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	FeedbackController(router, db, mailer)
	return router
}

func loggedInUser(t *testing.T, db *gorm.DB) string {
	t.Helper()
	user := model.User{Name: "Tester", Email: "alice@example.com", HashedPassword: "x", Theme: model.ThemeLight}
	require.NoError(t, db.Create(&user).Error)
	token, err := auth.CreateAccessToken(user.UserID)
	require.NoError(t, err)
	require.NoError(t, db.Model(&user).Update("token_hash", middleware.HashToken(token)).Error)
	return token
}

func postFeedback(router *gin.Engine, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSendFeedback(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	db := setupDB(t)
	mailer := &stubMailer{}
	router := newRouter(db, mailer)
	token := loggedInUser(t, db)

	rec := postFeedback(router, `{"email":"alice@example.com","comment":"Love the app"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email sent successfully")

	assert.Equal(t, "taskpro.project@gmail.com", mailer.to)
	assert.Equal(t, "Help Request", mailer.subject)
	assert.Contains(t, mailer.body, "alice@example.com")
	assert.Contains(t, mailer.body, "Love the app")
}

func TestSendFeedback_MailerFailure(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	db := setupDB(t)
	mailer := &stubMailer{err: errors.New("smtp down")}
	router := newRouter(db, mailer)
	token := loggedInUser(t, db)

	rec := postFeedback(router, `{"email":"alice@example.com","comment":"Love the app"}`, token)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to send email")
}

func TestSendFeedback_RequiresAuth(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	db := setupDB(t)
	mailer := &stubMailer{}
	router := newRouter(db, mailer)

	rec := postFeedback(router, `{"email":"alice@example.com","comment":"Love the app"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, mailer.to)
}

func TestSendFeedback_Validation(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	db := setupDB(t)
	mailer := &stubMailer{}
	router := newRouter(db, mailer)
	token := loggedInUser(t, db)

	rec := postFeedback(router, `{"comment":"no email"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, mailer.to)
}
