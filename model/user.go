package model

import "github.com/google/uuid"

type User struct {
	Id           uuid.UUID
	Name         string
	Email        string
	PasswordHash []byte
	CreatedAt    int64
	UpdatedAt    int64
}

// PublicUser is the API facing representation of a user. The password hash
// stays inside the store boundary.
type PublicUser struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt int64     `json:"createdAt"`
	UpdatedAt int64     `json:"updatedAt"`
}

func (user User) Public() PublicUser {
	return PublicUser{
		Id:        user.Id,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
