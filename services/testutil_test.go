package services

import (
	"fmt"
	"strings"
	"testing"

	"taskpro/model"

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

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := model.User{Name: "Tester", Email: email, HashedPassword: "x", Theme: model.ThemeLight}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedBoard(t *testing.T, db *gorm.DB, userID uint, title string) *model.Board {
	t.Helper()
	board := model.Board{Title: title, Icon: model.DefaultBoardIcon, Background: model.DefaultBoardBackground, UserID: userID}
	require.NoError(t, db.Create(&board).Error)
	return &board
}

func seedColumn(t *testing.T, db *gorm.DB, boardID uint, title string) *model.Column {
	t.Helper()
	column := model.Column{Title: title, BoardID: boardID}
	require.NoError(t, db.Create(&column).Error)
	return &column
}

func seedCard(t *testing.T, db *gorm.DB, columnID uint, title string) *model.Card {
	t.Helper()
	card := model.Card{Title: title, Description: "desc", Priority: model.PriorityNone, Deadline: model.DeadlineFloor, ColumnID: columnID}
	require.NoError(t, db.Create(&card).Error)
	return &card
}
