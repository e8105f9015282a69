package services

import (
	"errors"

	"taskpro/httperr"
	"taskpro/model"

	"gorm.io/gorm"
)

// Ownership is resolved by walking the full chain up to the board owner.
// A column or card id on its own proves nothing: the board at the root of
// the chain must belong to the caller. Missing entities and entities owned
// by someone else produce the same not-found error so that one user cannot
// probe for the existence of another user's data.

func AuthorizeBoard(db *gorm.DB, userID uint, boardID uint) (*model.Board, error) {
	var board model.Board
	if err := db.Where("board_id = ?", boardID).First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Board not found")
		}
		return nil, httperr.Internal("Database error")
	}
	if board.UserID != userID {
		return nil, httperr.NotFound("Board not found")
	}
	return &board, nil
}

func AuthorizeColumn(db *gorm.DB, userID uint, columnID uint) (*model.Column, error) {
	var column model.Column
	if err := db.Where("column_id = ?", columnID).First(&column).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Column not found")
		}
		return nil, httperr.Internal("Database error")
	}
	if _, err := AuthorizeBoard(db, userID, column.BoardID); err != nil {
		return nil, httperr.NotFound("Column not found")
	}
	return &column, nil
}

func AuthorizeCard(db *gorm.DB, userID uint, cardID uint) (*model.Card, error) {
	var card model.Card
	if err := db.Where("card_id = ?", cardID).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Card not found")
		}
		return nil, httperr.Internal("Database error")
	}
	if _, err := AuthorizeColumn(db, userID, card.ColumnID); err != nil {
		return nil, httperr.NotFound("Card not found")
	}
	return &card, nil
}
