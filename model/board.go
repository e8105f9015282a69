package model

import (
	"time"
)

const (
	DefaultBoardIcon       = "default-icon-url"
	DefaultBoardBackground = "default-background-url"
)

type Board struct {
	BoardID    uint      `gorm:"column:board_id;primaryKey;autoIncrement"`
	Title      string    `gorm:"column:title;type:varchar(255);not null"`
	Icon       string    `gorm:"column:icon;type:varchar(255)"`
	Background string    `gorm:"column:background;type:varchar(255)"`
	UserID     uint      `gorm:"column:user_id;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relations
	Owner User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (Board) TableName() string {
	return "boards"
}
