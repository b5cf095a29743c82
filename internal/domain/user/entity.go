package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Accounts are provisioned through the identity handoff or by
// an admin creating a technician; there are no local credentials.
type User struct {
	id        uuid.UUID
	email     string
	name      string
	picture   *string
	role      Role
	pushToken *string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(email, name string, picture *string, role Role) *User {
	return &User{
		id:       uuid.New(),
		email:    email,
		name:     name,
		picture:  picture,
		role:     role,
		isActive: true,
	}
}

func (u *User) ID() uuid.UUID      { return u.id }
func (u *User) Email() string      { return u.email }
func (u *User) Name() string       { return u.name }
func (u *User) Picture() *string   { return u.picture }
func (u *User) Role() Role         { return u.role }
func (u *User) PushToken() *string { return u.pushToken }
func (u *User) IsActive() bool     { return u.isActive }
