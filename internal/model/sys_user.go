package model

import "time"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// SysUser backs the thin authentication store. Passwords are bcrypt hashes.
type SysUser struct {
	BaseModel
	Username string `gorm:"size:100;uniqueIndex;not null"`
	Password string `gorm:"size:255;not null"`
	Email    string `gorm:"size:100"`

	// Role: admin (back-office access) or customer.
	Role string `gorm:"size:20;default:'customer'"`

	IsActive    bool `gorm:"default:true"`
	LastLoginAt *time.Time
}

func (SysUser) TableName() string { return "sys_users" }
