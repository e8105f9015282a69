package model

import (
	"time"
)

type Contact struct {
	ContactID uint      `gorm:"column:contact_id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;type:varchar(30);not null"`
	Email     string    `gorm:"column:email;type:varchar(255);not null"`
	Phone     string    `gorm:"column:phone;type:varchar(32);not null"`
	Favorite  bool      `gorm:"column:favorite;default:false"`
	UserID    uint      `gorm:"column:user_id;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relations
	Owner User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (Contact) TableName() string {
	return "contacts"
}
