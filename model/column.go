package model

import (
	"time"
)

type Column struct {
	ColumnID  uint      `gorm:"column:column_id;primaryKey;autoIncrement"`
	Title     string    `gorm:"column:title;type:varchar(255);not null"`
	BoardID   uint      `gorm:"column:board_id;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relations
	Board Board `gorm:"foreignKey:BoardID;references:BoardID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (Column) TableName() string {
	return "columns"
}
