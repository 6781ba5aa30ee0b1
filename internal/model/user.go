package model

import (
	"time"
)

// Роли пользователей учёта
const (
	RoleAdmin     = "admin" // Администратор
	RoleDirector  = "dir"   // Начальник подразделения
	RoleAccounter = "acc"   // Учётчик
)

// User represents an account that can log into the accounting panel
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Login        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"login"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"` // Omit digest from JSON responses
	Role         string `gorm:"type:varchar(50);not null" json:"role"`
}

// RoleRus returns the display label for the user's role
func (u *User) RoleRus() string {
	switch u.Role {
	case RoleAdmin:
		return "Администратор"
	case RoleDirector:
		return "Начальник"
	case RoleAccounter:
		return "Учётчик"
	default:
		return ""
	}
}

func (u *User) IsAdmin() bool     { return u.Role == RoleAdmin }
func (u *User) IsDirector() bool  { return u.Role == RoleDirector }
func (u *User) IsAccounter() bool { return u.Role == RoleAccounter }

// Session is a server-side login record with a fixed expiry.
// The identifier is an opaque UUID handed to the client after login.
type Session struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	IP        string    `gorm:"type:varchar(45)" json:"ip"`
}

// IsValid reports whether the session has not expired yet.
// Equality counts as expired.
func (s *Session) IsValid() bool {
	return s.ExpiresAt.After(time.Now())
}
