package model

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an authenticated account. Mutation access is gated on Role.
type User struct {
	ID           uint      `gorm:"primaryKey"                              json:"id"`
	Name         string    `gorm:"type:varchar(100);not null"              json:"name"`
	Email        string    `gorm:"type:varchar(320);not null;uniqueIndex"  json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"              json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"` // user | admin
	LastSignedIn time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"      json:"last_signed_in"`
	BaseModel
}

func (User) TableName() string { return "users" }
