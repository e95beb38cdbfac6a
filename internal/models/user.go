package models

import "time"

// User is an administered account identified by username and email.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"type:text;not null" json:"username"`
	Email     string    `gorm:"type:text;not null" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`

	Roles []Role `gorm:"many2many:user_roles" json:"-"`
}
