package model

import (
	"time"
)

const (
	ThemeDark   = "dark"
	ThemeLight  = "light"
	ThemeViolet = "violet"
)

type User struct {
	UserID         uint      `gorm:"column:user_id;primaryKey;autoIncrement"`
	Name           string    `gorm:"column:name;type:varchar(255);not null"`
	Email          string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	HashedPassword string    `gorm:"column:hashed_password;type:varchar(255);not null"`
	AvatarURL      string    `gorm:"column:avatar_url;type:varchar(255);default:''"`
	Theme          string    `gorm:"column:theme;type:enum('dark','light','violet');default:'light'"`
	TokenHash      string    `gorm:"column:token_hash;type:varchar(64);default:''"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}

// HasSession reports whether the user currently holds an active session.
func (u *User) HasSession() bool {
	return u.TokenHash != ""
}
