package models

import (
	"fmt"
	"time"
)

const UserTable = "chem_users"

// Role is self-declared at login. Credential-free by design of the current
// demo surface; a hardened deployment would verify an external claim instead.
type Role string

const (
	RoleUser       Role = "user"
	RoleSupervisor Role = "supervisor"
	RoleLab        Role = "lab"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleSupervisor, RoleLab:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// User is the audit registry: upserted on login, read back when dashboards
// display who requested, approved or issued. Not an authorization source.
type User struct {
	Username string `gorm:"primaryKey;size:255" json:"username"`
	FullName string `gorm:"size:255" json:"fullName"`
	Role     Role   `gorm:"size:20;not null;default:'user'" json:"role"`

	LastLoginAt *time.Time `gorm:"index" json:"lastLoginAt,omitempty"`
	LastSeenAt  *time.Time `gorm:"index" json:"lastSeenAt,omitempty"`
	LoginCount  int64      `gorm:"not null;default:0" json:"loginCount"`
	LastLoginIP string     `gorm:"size:45" json:"-"`
	LastLoginUA string     `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return UserTable }
