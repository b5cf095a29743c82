//go:build unit || e2e

package builder

import (
	"time"

	"glass-dispatch/internal/domain/user"
	"glass-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email     string
	Name      string
	Picture   *string
	Role      string
	PushToken *string
	IsActive  bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:    "tech@example.com",
		Name:     "Test Technician",
		Role:     "technician",
		IsActive: true,
	}
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(u.Email, u.Name, u.Picture, role), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        uuid.New(),
		Email:     u.Email,
		Name:      u.Name,
		Picture:   u.Picture,
		Role:      u.Role,
		PushToken: u.PushToken,
		IsActive:  u.IsActive,
		CreatedAt: time.Now().UTC(),
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPushToken(token string) *UserBuilder {
	u.PushToken = &token
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
