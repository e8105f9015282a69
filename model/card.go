package model

import (
	"time"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityNone   = "none"
)

// DeadlineFloor is the earliest accepted card deadline, in unix
// milliseconds (2024-01-01 UTC).
var DeadlineFloor = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).UnixMilli()

type Card struct {
	CardID       uint      `gorm:"column:card_id;primaryKey;autoIncrement"`
	Title        string    `gorm:"column:title;type:varchar(255);not null"`
	Description  string    `gorm:"column:description;type:text;not null"`
	Priority     string    `gorm:"column:priority;type:enum('low','medium','high','none');default:'none'"`
	Deadline     int64     `gorm:"column:deadline;not null"`
	ReminderSent bool      `gorm:"column:reminder_sent;default:false"`
	ColumnID     uint      `gorm:"column:column_id;not null;index"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relations
	Column Column `gorm:"foreignKey:ColumnID;references:ColumnID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (Card) TableName() string {
	return "cards"
}
