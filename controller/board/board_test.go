package board

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskpro/controller/auth"
	"taskpro/controller/card"
	"taskpro/controller/column"
	"taskpro/middleware"
	"taskpro/model"
	"taskpro/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testSchema = []string{
	`CREATE TABLE users (
		user_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL,
		avatar_url TEXT DEFAULT '',
		theme TEXT DEFAULT 'light',
		token_hash TEXT DEFAULT '',
		created_at DATETIME
	)`,
	`CREATE TABLE boards (
		board_id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		icon TEXT,
		background TEXT,
		user_id INTEGER NOT NULL,
		created_at DATETIME
	)`,
	`CREATE TABLE columns (
		column_id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		board_id INTEGER NOT NULL,
		created_at DATETIME
	)`,
	`CREATE TABLE cards (
		card_id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		priority TEXT DEFAULT 'none',
		deadline INTEGER NOT NULL,
		reminder_sent BOOLEAN DEFAULT 0,
		column_id INTEGER NOT NULL,
		created_at DATETIME
	)`,
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	for _, ddl := range testSchema {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	rt := services.NoopRealtime{}
	BoardController(router, db, rt)
	CreateBoardController(router, db, rt)
	DeleteBoardController(router, db, rt)
	column.ColumnController(router, db, rt)
	card.CardController(router, db, rt)
	return router
}

func loggedInUser(t *testing.T, db *gorm.DB, email string) (*model.User, string) {
	t.Helper()
	user := model.User{Name: "Tester", Email: email, HashedPassword: "x", Theme: model.ThemeLight}
	require.NoError(t, db.Create(&user).Error)
	token, err := auth.CreateAccessToken(user.UserID)
	require.NoError(t, err)
	require.NoError(t, db.Model(&user).Update("token_hash", middleware.HashToken(token)).Error)
	return &user, token
}

func doJSON(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeID(t *testing.T, rec *httptest.ResponseRecorder) uint {
	t.Helper()
	var response struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotZero(t, response.ID)
	return response.ID
}

func TestCreateBoard_AppliesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	db := setupDB(t)
	router := newRouter(db)
	_, token := loggedInUser(t, db, "alice@example.com")

	rec := doJSON(router, http.MethodPost, "/api/boards", `{"title":"Groceries"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var response struct {
		Title      string `json:"title"`
		Icon       string `json:"icon"`
		Background string `json:"background"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Groceries", response.Title)
	assert.Equal(t, model.DefaultBoardIcon, response.Icon)
	assert.Equal(t, model.DefaultBoardBackground, response.Background)
}

func TestCreateBoard_ShortTitleRejected(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	db := setupDB(t)
	router := newRouter(db)
	_, token := loggedInUser(t, db, "alice@example.com")

	rec := doJSON(router, http.MethodPost, "/api/boards", `{"title":"ab"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListBoards_OnlyOwn(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	db := setupDB(t)
	router := newRouter(db)
	_, aliceToken := loggedInUser(t, db, "alice@example.com")
	_, bobToken := loggedInUser(t, db, "bob@example.com")

	doJSON(router, http.MethodPost, "/api/boards", `{"title":"Alice board"}`, aliceToken)
	doJSON(router, http.MethodPost, "/api/boards", `{"title":"Bob board"}`, bobToken)

	rec := doJSON(router, http.MethodGet, "/api/boards", "", aliceToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var boards []struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &boards))
	require.Len(t, boards, 1)
	assert.Equal(t, "Alice board", boards[0].Title)
}

func TestUpdateBoard_EmptyBodyChangesNothing(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	db := setupDB(t)
	router := newRouter(db)
	_, token := loggedInUser(t, db, "alice@example.com")

	boardID := decodeID(t, doJSON(router, http.MethodPost, "/api/boards", `{"title":"Groceries"}`, token))

	rec := doJSON(router, http.MethodPatch, fmt.Sprintf("/api/boards/%d", boardID), `{}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var board model.Board
	require.NoError(t, db.First(&board, boardID).Error)
	assert.Equal(t, "Groceries", board.Title)
}

func TestUpdateBoard_ForeignBoardIsNotFound(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	db := setupDB(t)
	router := newRouter(db)
	_, aliceToken := loggedInUser(t, db, "alice@example.com")
	_, bobToken := loggedInUser(t, db, "bob@example.com")

	boardID := decodeID(t, doJSON(router, http.MethodPost, "/api/boards", `{"title":"Alice board"}`, aliceToken))

	rec := doJSON(router, http.MethodPatch, fmt.Sprintf("/api/boards/%d", boardID), `{"title":"Hijacked"}`, bobToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	missing := doJSON(router, http.MethodPatch, "/api/boards/424242", `{"title":"Hijacked"}`, bobToken)
	assert.Equal(t, missing.Body.String(), rec.Body.String())

	var board model.Board
	require.NoError(t, db.First(&board, boardID).Error)
	assert.Equal(t, "Alice board", board.Title)
}

func TestUpdateBoard_GarbageID(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	db := setupDB(t)
	router := newRouter(db)
	_, token := loggedInUser(t, db, "alice@example.com")

	rec := doJSON(router, http.MethodPatch, "/api/boards/notanumber", `{"title":"Whatever"}`, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteBoard_CascadesColumnsAndCards(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	db := setupDB(t)
	router := newRouter(db)
	_, token := loggedInUser(t, db, "alice@example.com")

	boardID := decodeID(t, doJSON(router, http.MethodPost, "/api/boards", `{"title":"Project"}`, token))
	columnID := decodeID(t, doJSON(router, http.MethodPost, fmt.Sprintf("/api/boards/columns/%d", boardID), `{"title":"To do"}`, token))
	cardBody := fmt.Sprintf(`{"title":"Write docs","description":"All of them","deadline":%d}`, model.DeadlineFloor)
	cardID := decodeID(t, doJSON(router, http.MethodPost, fmt.Sprintf("/api/boards/cards/%d", columnID), cardBody, token))

	rec := doJSON(router, http.MethodDelete, fmt.Sprintf("/api/boards/%d", boardID), "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	db.Model(&model.Column{}).Where("board_id = ?", boardID).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.Card{}).Where("card_id = ?", cardID).Count(&count)
	assert.Zero(t, count)

	rec = doJSON(router, http.MethodGet, fmt.Sprintf("/api/boards/columns/%d", boardID), "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/boards/%d", boardID), "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteBoard_LeavesSiblingsAlone(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	db := setupDB(t)
	router := newRouter(db)
	_, token := loggedInUser(t, db, "alice@example.com")

	doomedID := decodeID(t, doJSON(router, http.MethodPost, "/api/boards", `{"title":"Doomed"}`, token))
	keptID := decodeID(t, doJSON(router, http.MethodPost, "/api/boards", `{"title":"Kept"}`, token))
	keptColumnID := decodeID(t, doJSON(router, http.MethodPost, fmt.Sprintf("/api/boards/columns/%d", keptID), `{"title":"Backlog"}`, token))

	rec := doJSON(router, http.MethodDelete, fmt.Sprintf("/api/boards/%d", doomedID), "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var column model.Column
	assert.NoError(t, db.First(&column, keptColumnID).Error)
	var board model.Board
	assert.NoError(t, db.First(&board, keptID).Error)
}
