package model

import (
	"hotel/shared/model"
	"time"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
)

// User is a guest or an administrator. Role is one of constant.RoleUser or constant.RoleAdmin.
type User struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	Role      string     `db:"role"`
	Active    bool       `db:"active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}
