package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is a row of the usuarios table. SenhaHash never leaves the server.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	SenhaHash string    `json:"-"`
	Nome      string    `json:"nome,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicUser is the user shape returned by the auth endpoints.
type PublicUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Nome  string `json:"nome,omitempty"`
}

// Public strips the credential fields.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Nome: u.Nome}
}

// Claims is the JWT payload: user id and email, plus the registered claims
// carrying the 7-day expiry.
type Claims struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}
