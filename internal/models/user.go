package models

import "time"

// Roles assignable to an account. Registration always produces RoleUser;
// RoleAdmin is only reachable through the admin account-management path.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Address holds the optional postal address of a user profile.
type Address struct {
	Street     string `json:"street" gorm:"type:varchar(255)"`
	PostalCode string `json:"postalCode" gorm:"type:varchar(20)"`
	City       string `json:"city" gorm:"type:varchar(100)"`
	Country    string `json:"country" gorm:"type:varchar(100)"`
}

// User represents a customer or admin account.
// Password holds the bcrypt hash and is never serialized.
type User struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username    string     `json:"username" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password    string     `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Role        string     `json:"role" gorm:"type:varchar(10);default:user" validate:"omitempty,oneof=user admin"`
	FirstName   string     `json:"firstName" gorm:"type:varchar(100)"`
	LastName    string     `json:"lastName" gorm:"type:varchar(100)"`
	BirthDate   *time.Time `json:"birthDate,omitempty"`
	PhoneNumber string     `json:"phoneNumber" gorm:"type:varchar(30)"`
	Address     Address    `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Sanitized returns a copy safe to hand back to clients, with the
// password hash blanked.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
