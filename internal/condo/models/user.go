// Package models defines the domain entities of the condominium registry.
// All entities use UUID primary keys and carry created_by/updated_by audit
// references; partial updates use pointer-field Update structs.
package models

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is a closed role tag attached to a user. Staff (superuser) is a
// separate boolean flag, not a role.
type Role string

const (
	RoleSindico  Role = "sindico"
	RolePortaria Role = "portaria"
	RoleMorador  Role = "morador"
)

// User is a person known to the system: resident, front desk, manager or
// platform staff. CPF and phone are stored display-formatted; the validators
// normalize them before formatting on write.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"size:150;uniqueIndex" json:"username"`
	FullName     string    `gorm:"size:255" json:"full_name"`
	CPF          string    `gorm:"size:14;uniqueIndex" json:"cpf"`
	Phone        string    `gorm:"size:15" json:"phone"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	Roles        []Role    `gorm:"serializer:json" json:"roles"`
	Staff        bool      `json:"staff"`
	// FirstAccess is true until the user changes the initial password.
	FirstAccess  bool           `gorm:"default:true" json:"first_access"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	CondominioID *uuid.UUID     `gorm:"type:uuid;index" json:"condominio_id"`
	UnidadeID    *uuid.UUID     `gorm:"type:uuid;index" json:"unidade_id"`
	CreatedByID  *uuid.UUID     `gorm:"type:uuid" json:"created_by_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// HasRole reports whether the user carries the given role tag.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// NormalizeFullName title-cases each word of a full name, the same rule the
// registry applies on every user write.
func NormalizeFullName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// UserUpdate carries the updatable user fields. Nil means "leave unchanged".
type UserUpdate struct {
	ID           uuid.UUID
	FullName     *string
	CPF          *string
	Phone        *string
	PasswordHash *string
	Roles        *[]Role
	IsActive     *bool
	FirstAccess  *bool
	UnidadeID    *uuid.UUID
}
