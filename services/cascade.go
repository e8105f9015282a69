package services

import (
	"taskpro/httperr"
	"taskpro/model"

	"gorm.io/gorm"
)

// CascadeDeleteBoard removes the board together with every column owned by
// it and every card owned by those columns. The fan-out read completes
// before any delete starts; the deletes themselves run child-first inside
// one transaction, so a failure partway leaves the hierarchy untouched
// rather than half-cascaded.
func CascadeDeleteBoard(db *gorm.DB, boardID uint) error {
	var columnIDs []uint
	if err := db.Model(&model.Column{}).Where("board_id = ?", boardID).
		Pluck("column_id", &columnIDs).Error; err != nil {
		return httperr.Internal("Database error")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if len(columnIDs) > 0 {
			if err := tx.Where("column_id IN ?", columnIDs).Delete(&model.Card{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("board_id = ?", boardID).Delete(&model.Column{}).Error; err != nil {
			return err
		}
		return tx.Where("board_id = ?", boardID).Delete(&model.Board{}).Error
	})
	if err != nil {
		return httperr.Internal("Failed to delete board")
	}
	return nil
}

// CascadeDeleteColumn removes the column and every card owned by it.
func CascadeDeleteColumn(db *gorm.DB, columnID uint) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("column_id = ?", columnID).Delete(&model.Card{}).Error; err != nil {
			return err
		}
		return tx.Where("column_id = ?", columnID).Delete(&model.Column{}).Error
	})
	if err != nil {
		return httperr.Internal("Failed to delete column")
	}
	return nil
}
