package model

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// User is the identity anchor. Connections and publish logs hang off it.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReqLogin struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ReqRegister struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// UserClaims carries the user id in Issuer, matching what the auth
// middleware puts into the gin context as "user_id".
type UserClaims struct {
	jwt.StandardClaims
	Email string `json:"email"`
}
