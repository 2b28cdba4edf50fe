package models

import "time"

// Status is the externally visible form of the is_active flag.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// ParseStatus maps an API status value to the is_active flag.
// The second return is false for anything other than "active"/"inactive".
func ParseStatus(s string) (bool, bool) {
	switch Status(s) {
	case StatusActive:
		return true, true
	case StatusInactive:
		return false, true
	default:
		return false, false
	}
}

// User is a panel account. PasswordHash is never serialized.
type User struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	Username     string    `gorm:"column:username" json:"username"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	RealName     string    `gorm:"column:real_name" json:"real_name"`
	Email        string    `gorm:"column:email" json:"email"`
	Phone        string    `gorm:"column:phone" json:"phone"`
	IsActive     bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string { return "users" }

// Status derives the API status value from is_active.
func (u *User) Status() Status {
	if u.IsActive {
		return StatusActive
	}
	return StatusInactive
}
