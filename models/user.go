package models

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// User mirrors an identity-provider account. Records are provisioned by
// the provider's webhook, never lazily by cart/order code; ID is the
// provider's stable subject token.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Picture   string    `json:"picture"`
	Role      UserRole  `gorm:"type:VARCHAR(20);default:'customer'" json:"role"`
	Address   Address   `gorm:"embedded" json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Address model embedded in User
type Address struct {
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
