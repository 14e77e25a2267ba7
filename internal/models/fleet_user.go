package models

import (
	"fmt"
	"time"
)

const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// UserRole is the role referenced by a user
type UserRole struct {
	UserRoleID  int64  `gorm:"column:user_role_id;primaryKey;autoIncrement" json:"user_role_id"`
	Name        string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Description string `gorm:"column:description;type:varchar(255)" json:"description"`
}

func (r *UserRole) TableName() string {
	return "user_roles"
}

type User struct {
	UserID         int64     `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	CustomerID     int64     `gorm:"column:customer_id;not null;index" json:"customer_id"`
	FirstName      string    `gorm:"column:first_name;type:varchar(100);not null" json:"first_name"`
	LastName       string    `gorm:"column:last_name;type:varchar(100);not null" json:"last_name"`
	Email          string    `gorm:"column:email;type:varchar(255);not null" json:"email"`
	PhoneNumber    string    `gorm:"column:phone_number;type:varchar(30)" json:"phone_number"`
	Designation    string    `gorm:"column:designation;type:varchar(100)" json:"designation"`
	Status         string    `gorm:"column:status;type:varchar(20);not null;default:'active'" json:"status"`
	IsCustomerUser bool      `gorm:"column:is_customer_user;not null;default:true" json:"is_customer_user"`
	UserRoleID     *int64    `gorm:"column:user_role_id" json:"user_role_id"`
	CreatedAt      time.Time `gorm:"column:created_at;not null" json:"created_at"`
	CreatedBy      *int64    `gorm:"column:created_by" json:"created_by"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
	UpdatedBy      *int64    `gorm:"column:updated_by" json:"updated_by"`

	Role *UserRole `gorm:"foreignKey:UserRoleID;references:UserRoleID" json:"role,omitempty"`

	// AssignedAccountIDs is loaded from user_accounts; it is a set, order carries no meaning.
	AssignedAccountIDs []int64 `gorm:"-" json:"assigned_account_ids"`
}

func (u *User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// RoleName returns the role name or an empty string when no role is loaded
func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}

// UserAccount assigns an account to a user
type UserAccount struct {
	UserID    int64 `gorm:"column:user_id;primaryKey" json:"user_id"`
	AccountID int64 `gorm:"column:account_id;primaryKey;index" json:"account_id"`
}

func (ua *UserAccount) TableName() string {
	return "user_accounts"
}
